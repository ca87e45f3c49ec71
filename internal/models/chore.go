package models

// RecurrencePattern describes how often a recurring chore comes due.
type RecurrencePattern string

const (
	RecurrenceNone    RecurrencePattern = "none"
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// Valid reports whether p is one of the known patterns.
func (p RecurrencePattern) Valid() bool {
	switch p {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Chore represents a household task, optionally recurring and optionally
// assigned through a rotation of members.
type Chore struct {
	// ID is the unique identifier for the chore (UUID format).
	ID string `json:"id"`

	// HouseholdID is the household the chore belongs to.
	HouseholdID string `json:"householdId"`

	// Title is the human-readable name of the chore.
	Title string `json:"title"`

	// AssignedTo is the user ID of the current assignee.
	// Empty if the chore is unassigned. When UseRotation is true this
	// always names the current position in RotationOrder.
	AssignedTo string `json:"assignedTo,omitempty"`

	// IsComplete marks the chore as done. Recurring chores never rest
	// in the completed state: completion immediately re-arms them.
	IsComplete bool `json:"isComplete"`

	// DueDate is the Unix timestamp the chore is due. Zero means none.
	DueDate int64 `json:"dueDate,omitempty"`

	// IsRecurring marks the chore as repeating per RecurrencePattern.
	IsRecurring bool `json:"isRecurring"`

	// RecurrencePattern is how often the chore recurs.
	RecurrencePattern RecurrencePattern `json:"recurrencePattern"`

	// RecurrenceDayOfWeek is the weekday (0=Sunday .. 6=Saturday) a
	// weekly chore is due. -1 when not set; required iff the pattern
	// is weekly.
	RecurrenceDayOfWeek int `json:"recurrenceDayOfWeek"`

	// UseRotation assigns the chore to household members in turn.
	UseRotation bool `json:"useRotation"`

	// RotationOrder is the authoritative cycle of assignee user IDs.
	// Only meaningful when UseRotation is true.
	RotationOrder []string `json:"rotationOrder,omitempty"`

	// CompletedAt is the Unix timestamp of the terminal completion.
	// Zero for pending chores and always zero for recurring ones.
	CompletedAt int64 `json:"completedAt,omitempty"`

	// Comments are the chore's comments, oldest first. Append-only.
	Comments []ChoreComment `json:"comments,omitempty"`

	// CreatedAt is the Unix timestamp when the chore was created.
	CreatedAt int64 `json:"createdAt"`
}

// ChoreComment is an immutable comment on a chore.
type ChoreComment struct {
	ID        string `json:"id"`
	ChoreID   string `json:"choreId"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}
