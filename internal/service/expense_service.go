package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/notify"
	"github.com/nkale/homeboard/internal/split"
	"github.com/nkale/homeboard/internal/storage"
)

// ExpenseService manages shared expenses and their settlement.
type ExpenseService struct {
	store    storage.Store
	notifier *notify.Notifier
}

// NewExpenseService creates an ExpenseService.
func NewExpenseService(store storage.Store, notifier *notify.Notifier) *ExpenseService {
	return &ExpenseService{store: store, notifier: notifier}
}

// ExpenseCreate holds the inputs for recording an expense.
type ExpenseCreate struct {
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	ReceiptRef  string             `json:"receiptRef"`
	SplitNames  []string           `json:"splitBetween"`
	Strategy    string             `json:"strategy"`
	Details     map[string]float64 `json:"details"`
}

// List returns the requester's household expenses with shares, newest
// first.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]*models.Expense, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, household.ID)
}

// Get returns one expense with its shares.
func (s *ExpenseService) Get(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.HouseholdID != household.ID {
		return nil, apperr.New(apperr.KindForbidden, "access denied")
	}
	return expense, nil
}

// Create computes the split and persists the expense with its shares
// atomically. Participants outside the payer's household are rejected
// before anything is written.
func (s *ExpenseService) Create(ctx context.Context, payerID string, in ExpenseCreate) (*models.Expense, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperr.New(apperr.KindValidation, "expense description is required")
	}
	if len(in.SplitNames) == 0 {
		return nil, apperr.New(apperr.KindValidation, "splitBetween must name at least one participant")
	}

	household, err := requireHousehold(ctx, s.store, payerID)
	if err != nil {
		return nil, err
	}
	for _, id := range in.SplitNames {
		if !household.HasMember(id) {
			return nil, apperr.New(apperr.KindForbidden, "all participants must belong to the same household")
		}
	}

	strategy := split.Strategy(in.Strategy)
	if in.Strategy == "" {
		strategy = split.StrategyEqual
	}

	shares, err := split.ComputeShares(in.Amount, in.SplitNames, strategy, in.Details)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		HouseholdID: household.ID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		ReceiptRef:  strings.TrimSpace(in.ReceiptRef),
		PaidBy:      payerID,
	}
	for _, sh := range shares {
		expense.Shares = append(expense.Shares, models.ExpenseShare{
			UserID: sh.UserID,
			Amount: sh.Amount,
		})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"household_id", household.ID,
		"amount", expense.Amount,
		"strategy", strategy,
		"participants", len(expense.Shares),
	)

	payerName := payerID
	if payer, err := s.store.GetUserByID(ctx, payerID); err == nil {
		payerName = payer.Name
	}
	s.notifier.Notify(ctx, household, payerID, models.NotificationExpenseAdded,
		fmt.Sprintf("%s added expense %q (%.2f)", payerName, expense.Description, expense.Amount), expense.ID)

	return expense, nil
}

// SettleShare toggles one share's settlement flag. Only the owing user
// may settle their own share; repeating the same state is a no-op.
func (s *ExpenseService) SettleShare(ctx context.Context, requesterID, shareID string, settled bool) (*models.ExpenseShare, error) {
	share, err := s.store.GetExpenseShare(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if share.UserID != requesterID {
		return nil, apperr.New(apperr.KindForbidden, "only the owing user can settle their share")
	}

	if share.IsSettled == settled {
		return share, nil
	}

	if err := s.store.SetShareSettled(ctx, shareID, settled); err != nil {
		return nil, err
	}
	share.IsSettled = settled
	return share, nil
}

// Balance recomputes the requester's two-direction balance from the
// household's expenses. Never cached: every settlement changes it.
func (s *ExpenseService) Balance(ctx context.Context, userID string) (split.Balance, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return split.Balance{}, err
	}

	expenses, err := s.store.ListExpenses(ctx, household.ID)
	if err != nil {
		return split.Balance{}, err
	}

	forBalance := make([]split.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		fb := split.ExpenseForBalance{PaidBy: e.PaidBy}
		for _, sh := range e.Shares {
			fb.Shares = append(fb.Shares, split.ShareForBalance{
				UserID:    sh.UserID,
				Amount:    sh.Amount,
				IsSettled: sh.IsSettled,
			})
		}
		forBalance[i] = fb
	}

	return split.ComputeBalance(userID, forBalance), nil
}
