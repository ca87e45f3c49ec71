package models

// WallPost is an announcement on the household wall.
type WallPost struct {
	ID          string `json:"id"`
	HouseholdID string `json:"householdId"`
	AuthorID    string `json:"authorId"`
	Content     string `json:"content"`
	CreatedAt   int64  `json:"createdAt"`
}
