package models

// Expense represents a shared cost paid by one household member.
// Immutable after creation except through its shares' settlement flags.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// HouseholdID is the household the expense belongs to.
	HouseholdID string `json:"householdId"`

	// Description is the human-readable label (e.g. "Groceries").
	Description string `json:"description"`

	// Amount is the total amount paid, in currency units. Always > 0.
	Amount float64 `json:"amount"`

	// Category is an optional free-form category label.
	Category string `json:"category,omitempty"`

	// ReceiptRef is an optional opaque reference to a stored receipt.
	ReceiptRef string `json:"receiptRef,omitempty"`

	// PaidBy is the user ID of the member who paid.
	PaidBy string `json:"paidBy"`

	// Shares are the per-participant owed portions. Created atomically
	// with the expense; their amounts sum to Amount within 0.01.
	Shares []ExpenseShare `json:"shares"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt"`
}

// ExpenseShare is one participant's owed portion of an expense.
// Settlement is the only mutation a share ever sees.
type ExpenseShare struct {
	// ID is the unique identifier for the share (UUID format).
	ID string `json:"id"`

	// ExpenseID is the parent expense.
	ExpenseID string `json:"expenseId"`

	// UserID is the member who owes this share.
	UserID string `json:"userId"`

	// Amount is the owed amount, in currency units.
	Amount float64 `json:"amount"`

	// IsSettled marks the share as paid back. Only the owing user may
	// toggle it.
	IsSettled bool `json:"isSettled"`
}
