package service

import (
	"context"
	"testing"

	"github.com/nkale/homeboard/internal/apperr"
)

func TestHouseholdCreateAndJoin(t *testing.T) {
	store := setupStore(t)
	svc := NewHouseholdService(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice@example.com", "Alice")
	bob := seedUser(t, store, "bob@example.com", "Bob")

	household, err := svc.Create(ctx, alice.ID, "Maple St 12")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if household.InviteCode == "" {
		t.Fatal("expected an invite code")
	}
	if len(household.Members) != 1 || household.Members[0].ID != alice.ID {
		t.Fatalf("unexpected members: %+v", household.Members)
	}

	joined, err := svc.Join(ctx, bob.ID, household.InviteCode)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if len(joined.Members) != 2 {
		t.Fatalf("members after join = %d, want 2", len(joined.Members))
	}
	// Membership order: creator first.
	if joined.Members[0].ID != alice.ID || joined.Members[1].ID != bob.ID {
		t.Errorf("unexpected member order: %+v", joined.Members)
	}
}

func TestHouseholdJoinInvalidCode(t *testing.T) {
	store := setupStore(t)
	svc := NewHouseholdService(store)

	user := seedUser(t, store, "alice@example.com", "Alice")
	_, err := svc.Join(context.Background(), user.ID, "no-such-code")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestHouseholdSingleMembership(t *testing.T) {
	store := setupStore(t)
	svc := NewHouseholdService(store)
	ctx := context.Background()

	_, users := seedHousehold(t, store, 1)

	if _, err := svc.Create(ctx, users[0].ID, "Second House"); apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("second Create kind = %v, want conflict", apperr.KindOf(err))
	}

	other := seedUser(t, store, "other@example.com", "Other")
	otherHouse, err := svc.Create(ctx, other.ID, "Other House")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Join(ctx, users[0].ID, otherHouse.InviteCode); apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("Join while member kind = %v, want conflict", apperr.KindOf(err))
	}
}

func TestHouseholdLeaveCleansUp(t *testing.T) {
	store := setupStore(t)
	svc := NewHouseholdService(store)
	choreSvc := NewChoreService(store, newTestNotifier(store))
	ctx := context.Background()

	household, users := seedHousehold(t, store, 3)

	chore, err := choreSvc.Create(ctx, users[0].ID, ChoreCreate{
		Title:             "Dishes",
		IsRecurring:       true,
		RecurrencePattern: "daily",
		UseRotation:       true,
		RotationOrder:     []string{users[1].ID, users[0].ID, users[2].ID},
	})
	if err != nil {
		t.Fatalf("chore Create failed: %v", err)
	}
	if chore.AssignedTo != users[1].ID {
		t.Fatalf("assignee = %s, want %s", chore.AssignedTo, users[1].ID)
	}

	if err := svc.Leave(ctx, users[1].ID); err != nil {
		t.Fatalf("Leave failed: %v", err)
	}

	// The leaver's chore is unassigned and they are gone from the
	// rotation.
	got, err := store.GetChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if got.AssignedTo != "" {
		t.Errorf("assignee after leave = %s, want empty", got.AssignedTo)
	}
	for _, id := range got.RotationOrder {
		if id == users[1].ID {
			t.Error("leaver still in rotation")
		}
	}

	reloaded, err := store.GetHousehold(ctx, household.ID)
	if err != nil {
		t.Fatalf("GetHousehold failed: %v", err)
	}
	if len(reloaded.Members) != 2 {
		t.Errorf("members after leave = %d, want 2", len(reloaded.Members))
	}

	// Leaving twice is a validation error: no household anymore.
	if err := svc.Leave(ctx, users[1].ID); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("second Leave kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestHouseholdMe(t *testing.T) {
	store := setupStore(t)
	svc := NewHouseholdService(store)
	expenseSvc := NewExpenseService(store, newTestNotifier(store))
	ctx := context.Background()

	loner := seedUser(t, store, "loner@example.com", "Loner")
	view, err := svc.Me(ctx, loner.ID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if view.Household != nil {
		t.Errorf("expected nil household for user without one, got %+v", view.Household)
	}

	_, users := seedHousehold(t, store, 2)
	if _, err := expenseSvc.Create(ctx, users[0].ID, ExpenseCreate{
		Description: "Groceries",
		Amount:      40,
		SplitNames:  []string{users[0].ID, users[1].ID},
	}); err != nil {
		t.Fatalf("expense Create failed: %v", err)
	}

	view, err = svc.Me(ctx, users[1].ID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if view.Household == nil {
		t.Fatal("expected household in view")
	}
	if len(view.Expenses) != 1 {
		t.Errorf("expenses in view = %d, want 1", len(view.Expenses))
	}
	if len(view.Expenses[0].Shares) != 2 {
		t.Errorf("shares in view = %d, want 2", len(view.Expenses[0].Shares))
	}
}
