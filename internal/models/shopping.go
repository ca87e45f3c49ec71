package models

// ShoppingItem is an entry on the household shopping list.
type ShoppingItem struct {
	ID          string `json:"id"`
	HouseholdID string `json:"householdId"`
	Name        string `json:"name"`
	AddedBy     string `json:"addedBy"`
	IsPurchased bool   `json:"isPurchased"`
	CreatedAt   int64  `json:"createdAt"`
}
