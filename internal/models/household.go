package models

// Household represents a group of users sharing chores, expenses,
// a shopping list and a wall.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string `json:"id"`

	// Name is the display name of the household (e.g. "Maple St 12").
	Name string `json:"name"`

	// InviteCode is the opaque code other users present to join.
	// Generated on creation, unique across households.
	InviteCode string `json:"inviteCode"`

	// Members is the list of users belonging to the household, in
	// membership order (oldest first). Populated on read; not every
	// query hydrates it.
	Members []User `json:"members,omitempty"`

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64 `json:"createdAt"`
}

// MemberIDs returns the IDs of the household members in membership order.
func (h *Household) MemberIDs() []string {
	ids := make([]string, len(h.Members))
	for i, m := range h.Members {
		ids[i] = m.ID
	}
	return ids
}

// HasMember reports whether the given user belongs to the household.
func (h *Household) HasMember(userID string) bool {
	for _, m := range h.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
