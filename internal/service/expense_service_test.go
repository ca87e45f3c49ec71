package service

import (
	"context"
	"math"
	"testing"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/split"
)

func TestExpenseCreateEqualSplit(t *testing.T) {
	store := setupStore(t)
	_, users := seedHousehold(t, store, 3)
	svc := NewExpenseService(store, newTestNotifier(store))
	ctx := context.Background()

	expense, err := svc.Create(ctx, users[0].ID, ExpenseCreate{
		Description: "Groceries",
		Amount:      100,
		SplitNames:  []string{users[0].ID, users[1].ID, users[2].ID},
		Strategy:    "equal",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(expense.Shares) != 3 {
		t.Fatalf("shares = %d, want 3", len(expense.Shares))
	}

	// Shares must sum exactly to the total; the leftover cent goes to
	// the first participant.
	sum := 0.0
	for _, sh := range expense.Shares {
		sum += sh.Amount
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("share sum = %v, want 100", sum)
	}
	if expense.Shares[0].Amount != 33.34 {
		t.Errorf("first share = %v, want 33.34", expense.Shares[0].Amount)
	}

	if expense.PaidBy != users[0].ID {
		t.Errorf("paidBy = %s, want %s", expense.PaidBy, users[0].ID)
	}
}

func TestExpenseCreateDefaultsToEqual(t *testing.T) {
	store := setupStore(t)
	_, users := seedHousehold(t, store, 2)
	svc := NewExpenseService(store, newTestNotifier(store))

	expense, err := svc.Create(context.Background(), users[0].ID, ExpenseCreate{
		Description: "Internet",
		Amount:      60,
		SplitNames:  []string{users[0].ID, users[1].ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, sh := range expense.Shares {
		if sh.Amount != 30 {
			t.Errorf("share = %v, want 30", sh.Amount)
		}
	}
}

func TestExpenseCreateRejections(t *testing.T) {
	store := setupStore(t)
	household, users := seedHousehold(t, store, 2)
	outsider := seedUser(t, store, "outsider@example.com", "Outsider")
	svc := NewExpenseService(store, newTestNotifier(store))
	ctx := context.Background()

	tests := []struct {
		name     string
		in       ExpenseCreate
		wantKind apperr.Kind
	}{
		{
			name:     "empty description",
			in:       ExpenseCreate{Amount: 10, SplitNames: []string{users[0].ID}},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "no participants",
			in:       ExpenseCreate{Description: "x", Amount: 10},
			wantKind: apperr.KindValidation,
		},
		{
			name: "participant outside household",
			in: ExpenseCreate{
				Description: "x",
				Amount:      10,
				SplitNames:  []string{users[0].ID, outsider.ID},
			},
			wantKind: apperr.KindForbidden,
		},
		{
			name: "zero amount",
			in: ExpenseCreate{
				Description: "x",
				Amount:      0,
				SplitNames:  []string{users[0].ID},
			},
			wantKind: apperr.KindValidation,
		},
		{
			name: "exact split not summing to total",
			in: ExpenseCreate{
				Description: "x",
				Amount:      10,
				SplitNames:  []string{users[0].ID, users[1].ID},
				Strategy:    "exact",
				Details:     map[string]float64{users[0].ID: 4, users[1].ID: 4},
			},
			wantKind: apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, users[0].ID, tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if kind := apperr.KindOf(err); kind != tt.wantKind {
				t.Errorf("kind = %v, want %v (err: %v)", kind, tt.wantKind, err)
			}
		})
	}

	// Rejections must not leave partial rows behind.
	expenses, err := store.ListExpenses(ctx, household.ID)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expenses after rejections = %d, want 0", len(expenses))
	}
}

func TestExpenseCreateNotifiesOthers(t *testing.T) {
	store := setupStore(t)
	_, users := seedHousehold(t, store, 3)
	svc := NewExpenseService(store, newTestNotifier(store))
	ctx := context.Background()

	expense, err := svc.Create(ctx, users[1].ID, ExpenseCreate{
		Description: "Pizza",
		Amount:      30,
		SplitNames:  []string{users[0].ID, users[1].ID, users[2].ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	actorNotifs, err := store.ListNotifications(ctx, users[1].ID, false, 10)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(actorNotifs) != 0 {
		t.Errorf("payer notifications = %d, want 0", len(actorNotifs))
	}

	notifs, err := store.ListNotifications(ctx, users[0].ID, false, 10)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(notifs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifs))
	}
	if notifs[0].Type != models.NotificationExpenseAdded || notifs[0].RelatedID != expense.ID {
		t.Errorf("unexpected notification: %+v", notifs[0])
	}
}

func TestSettleShare(t *testing.T) {
	store := setupStore(t)
	_, users := seedHousehold(t, store, 2)
	svc := NewExpenseService(store, newTestNotifier(store))
	ctx := context.Background()

	expense, err := svc.Create(ctx, users[0].ID, ExpenseCreate{
		Description: "Rent",
		Amount:      1000,
		SplitNames:  []string{users[0].ID, users[1].ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var owedShare models.ExpenseShare
	for _, sh := range expense.Shares {
		if sh.UserID == users[1].ID {
			owedShare = sh
		}
	}
	if owedShare.ID == "" {
		t.Fatal("missing share for second user")
	}

	// Only the owing user may settle their share.
	if _, err := svc.SettleShare(ctx, users[0].ID, owedShare.ID, true); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("payer settling someone else's share: kind = %v, want forbidden", apperr.KindOf(err))
	}

	settled, err := svc.SettleShare(ctx, users[1].ID, owedShare.ID, true)
	if err != nil {
		t.Fatalf("SettleShare failed: %v", err)
	}
	if !settled.IsSettled {
		t.Error("share not settled")
	}

	// Settling an already-settled share is a no-op.
	again, err := svc.SettleShare(ctx, users[1].ID, owedShare.ID, true)
	if err != nil {
		t.Fatalf("repeat SettleShare failed: %v", err)
	}
	if !again.IsSettled {
		t.Error("repeat settle lost the flag")
	}

	// And it can be undone.
	undone, err := svc.SettleShare(ctx, users[1].ID, owedShare.ID, false)
	if err != nil {
		t.Fatalf("unsettle failed: %v", err)
	}
	if undone.IsSettled {
		t.Error("share still settled after undo")
	}
}

func TestBalanceReflectsSettlement(t *testing.T) {
	store := setupStore(t)
	_, users := seedHousehold(t, store, 2)
	svc := NewExpenseService(store, newTestNotifier(store))
	ctx := context.Background()

	expense, err := svc.Create(ctx, users[0].ID, ExpenseCreate{
		Description: "Utilities",
		Amount:      80,
		SplitNames:  []string{users[0].ID, users[1].ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	checkBalance := func(userID string, want split.Balance) {
		t.Helper()
		got, err := svc.Balance(ctx, userID)
		if err != nil {
			t.Fatalf("Balance failed: %v", err)
		}
		if got != want {
			t.Errorf("balance for %s = %+v, want %+v", userID, got, want)
		}
	}

	// Payer is owed the other member's half; the payer's own share
	// never counts.
	checkBalance(users[0].ID, split.Balance{OwedToYou: 40})
	checkBalance(users[1].ID, split.Balance{YouOwe: 40})

	// Settlement zeroes both directions.
	var owedShare models.ExpenseShare
	for _, sh := range expense.Shares {
		if sh.UserID == users[1].ID {
			owedShare = sh
		}
	}
	if _, err := svc.SettleShare(ctx, users[1].ID, owedShare.ID, true); err != nil {
		t.Fatalf("SettleShare failed: %v", err)
	}

	checkBalance(users[0].ID, split.Balance{})
	checkBalance(users[1].ID, split.Balance{})
}
