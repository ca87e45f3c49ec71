package models

// NotificationType identifies the event a notification was created for.
type NotificationType string

const (
	NotificationExpenseAdded      NotificationType = "expense_added"
	NotificationChoreCompleted    NotificationType = "chore_completed"
	NotificationWallPost          NotificationType = "wall_post"
	NotificationShoppingItemAdded NotificationType = "shopping_item_added"
)

// Notification is a per-recipient event record. Fan-out creates one row
// per household member other than the acting user.
type Notification struct {
	// ID is the unique identifier for the notification (UUID format).
	ID string `json:"id"`

	// UserID is the recipient.
	UserID string `json:"userId"`

	// Type is the kind of event that produced the notification.
	Type NotificationType `json:"type"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// RelatedID references the entity the event was about (expense,
	// chore, post or shopping item). Empty when not applicable.
	RelatedID string `json:"relatedId,omitempty"`

	// IsRead marks the notification as seen by the recipient.
	IsRead bool `json:"isRead"`

	// CreatedAt is the Unix timestamp when the notification was created.
	CreatedAt int64 `json:"createdAt"`
}
