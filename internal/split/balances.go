package split

import "github.com/shopspring/decimal"

// ShareForBalance is a share with the minimal information needed for
// balance aggregation.
type ShareForBalance struct {
	UserID    string
	Amount    float64
	IsSettled bool
}

// ExpenseForBalance is an expense with the minimal information needed
// for balance aggregation.
type ExpenseForBalance struct {
	PaidBy string
	Shares []ShareForBalance
}

// Balance is the two-direction money position of one user.
type Balance struct {
	// OwedToYou is what other members still owe the user across
	// expenses the user paid.
	OwedToYou float64 `json:"owedToYou"`

	// YouOwe is what the user still owes across expenses paid by
	// other members.
	YouOwe float64 `json:"youOwe"`
}

// ComputeBalance aggregates the unsettled shares of the given expenses
// from userID's point of view. Settled shares contribute nothing in
// either direction, so the result must be recomputed after any
// settlement rather than cached.
func ComputeBalance(userID string, expenses []ExpenseForBalance) Balance {
	owedToYou := decimal.Zero
	youOwe := decimal.Zero

	for _, e := range expenses {
		for _, s := range e.Shares {
			if s.IsSettled {
				continue
			}
			amount := decimal.NewFromFloat(s.Amount)
			switch {
			case e.PaidBy == userID && s.UserID != userID:
				owedToYou = owedToYou.Add(amount)
			case e.PaidBy != userID && s.UserID == userID:
				youOwe = youOwe.Add(amount)
			}
		}
	}

	return Balance{
		OwedToYou: owedToYou.Round(2).InexactFloat64(),
		YouOwe:    youOwe.Round(2).InexactFloat64(),
	}
}
