package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedMembers(t *testing.T, store *SQLiteStore, n int) (*models.Household, []*models.User) {
	t.Helper()

	ctx := context.Background()
	users := make([]*models.User, n)
	for i := range users {
		users[i] = models.NewUser(fmt.Sprintf("u%d@example.com", i), fmt.Sprintf("User %d", i), "hash")
		if err := store.CreateUser(ctx, users[i]); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	household := &models.Household{Name: "House", InviteCode: "invite-1234"}
	if err := store.CreateHousehold(ctx, household, users[0].ID); err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}
	for _, u := range users[1:] {
		if err := store.AddHouseholdMember(ctx, household.ID, u.ID); err != nil {
			t.Fatalf("AddHouseholdMember failed: %v", err)
		}
	}

	household, err := store.GetHousehold(ctx, household.ID)
	if err != nil {
		t.Fatalf("GetHousehold failed: %v", err)
	}
	return household, users
}

func TestCreateUserAssignsIDAndRejectsDuplicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("a@b.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" || user.CreatedAt == 0 {
		t.Errorf("expected generated ID and CreatedAt, got %q / %d", user.ID, user.CreatedAt)
	}

	dup := models.NewUser("a@b.com", "Alias", "hash")
	err := store.CreateUser(ctx, dup)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("duplicate email kind = %v, want conflict", apperr.KindOf(err))
	}

	got, err := store.GetUserByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != user.ID || got.Name != "Alice" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := store.GetUserByID(ctx, "missing"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing user kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestHouseholdMembershipOrder(t *testing.T) {
	store := newTestStore(t)
	household, users := seedMembers(t, store, 3)

	if len(household.Members) != 3 {
		t.Fatalf("members = %d, want 3", len(household.Members))
	}
	for i, u := range users {
		if household.Members[i].ID != u.ID {
			t.Errorf("member[%d] = %s, want %s", i, household.Members[i].ID, u.ID)
		}
		if household.Members[i].HouseholdID != household.ID {
			t.Errorf("member[%d] missing household id", i)
		}
	}
}

func TestGetHouseholdByInviteCode(t *testing.T) {
	store := newTestStore(t)
	household, _ := seedMembers(t, store, 1)
	ctx := context.Background()

	got, err := store.GetHouseholdByInviteCode(ctx, household.InviteCode)
	if err != nil {
		t.Fatalf("GetHouseholdByInviteCode failed: %v", err)
	}
	if got.ID != household.ID {
		t.Errorf("household = %s, want %s", got.ID, household.ID)
	}

	if _, err := store.GetHouseholdByInviteCode(ctx, "nope"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("bad code kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestChoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	household, users := seedMembers(t, store, 3)
	ctx := context.Background()

	chore := &models.Chore{
		HouseholdID:         household.ID,
		Title:               "Dishes",
		AssignedTo:          users[1].ID,
		IsRecurring:         true,
		RecurrencePattern:   models.RecurrenceWeekly,
		RecurrenceDayOfWeek: 2,
		UseRotation:         true,
		RotationOrder:       []string{users[1].ID, users[2].ID, users[0].ID},
	}
	if err := store.CreateChore(ctx, chore); err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}

	got, err := store.GetChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if got.Title != "Dishes" || got.AssignedTo != users[1].ID {
		t.Errorf("unexpected chore: %+v", got)
	}
	if got.RecurrencePattern != models.RecurrenceWeekly || got.RecurrenceDayOfWeek != 2 {
		t.Errorf("recurrence = %s/%d, want weekly/2", got.RecurrencePattern, got.RecurrenceDayOfWeek)
	}
	if len(got.RotationOrder) != 3 || got.RotationOrder[0] != users[1].ID {
		t.Errorf("unexpected rotation: %v", got.RotationOrder)
	}

	// Unset day-of-week round-trips as -1.
	plain := &models.Chore{HouseholdID: household.ID, Title: "Mop"}
	if err := store.CreateChore(ctx, plain); err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	got, err = store.GetChore(ctx, plain.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if got.RecurrenceDayOfWeek != -1 {
		t.Errorf("day of week = %d, want -1", got.RecurrenceDayOfWeek)
	}
	if got.AssignedTo != "" {
		t.Errorf("assignee = %q, want empty", got.AssignedTo)
	}

	// A non-weekly pattern never keeps a day of week, even when the
	// struct's zero value would read as Sunday.
	daily := &models.Chore{
		HouseholdID:       household.ID,
		Title:             "Trash",
		IsRecurring:       true,
		RecurrencePattern: models.RecurrenceDaily,
	}
	if err := store.CreateChore(ctx, daily); err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	got, err = store.GetChore(ctx, daily.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if got.RecurrenceDayOfWeek != -1 {
		t.Errorf("daily chore day of week = %d, want -1", got.RecurrenceDayOfWeek)
	}
}

func TestDeleteChoreCascades(t *testing.T) {
	store := newTestStore(t)
	household, users := seedMembers(t, store, 2)
	ctx := context.Background()

	chore := &models.Chore{
		HouseholdID:   household.ID,
		Title:         "Dishes",
		UseRotation:   true,
		RotationOrder: []string{users[0].ID, users[1].ID},
	}
	if err := store.CreateChore(ctx, chore); err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	if err := store.AddChoreComment(ctx, &models.ChoreComment{
		ChoreID: chore.ID, AuthorID: users[0].ID, Content: "soon",
	}); err != nil {
		t.Fatalf("AddChoreComment failed: %v", err)
	}

	if err := store.DeleteChore(ctx, chore.ID); err != nil {
		t.Fatalf("DeleteChore failed: %v", err)
	}
	if _, err := store.GetChore(ctx, chore.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not found", apperr.KindOf(err))
	}
	if err := store.DeleteChore(ctx, chore.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("second delete kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestRemoveHouseholdMemberCleansChores(t *testing.T) {
	store := newTestStore(t)
	household, users := seedMembers(t, store, 3)
	ctx := context.Background()

	chore := &models.Chore{
		HouseholdID:   household.ID,
		Title:         "Dishes",
		AssignedTo:    users[1].ID,
		UseRotation:   true,
		RotationOrder: []string{users[0].ID, users[1].ID, users[2].ID},
	}
	if err := store.CreateChore(ctx, chore); err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}

	if err := store.RemoveHouseholdMember(ctx, household.ID, users[1].ID); err != nil {
		t.Fatalf("RemoveHouseholdMember failed: %v", err)
	}

	got, err := store.GetChore(ctx, chore.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if got.AssignedTo != "" {
		t.Errorf("assignee = %q, want unassigned", got.AssignedTo)
	}
	wantRotation := []string{users[0].ID, users[2].ID}
	if len(got.RotationOrder) != 2 || got.RotationOrder[0] != wantRotation[0] || got.RotationOrder[1] != wantRotation[1] {
		t.Errorf("rotation = %v, want %v", got.RotationOrder, wantRotation)
	}

	left, err := store.GetUserByID(ctx, users[1].ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if left.HouseholdID != "" {
		t.Errorf("household id = %q, want empty", left.HouseholdID)
	}
}

func TestExpenseWithSharesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	household, users := seedMembers(t, store, 2)
	ctx := context.Background()

	expense := &models.Expense{
		HouseholdID: household.ID,
		Description: "Groceries",
		Amount:      100,
		Category:    "food",
		PaidBy:      users[0].ID,
		Shares: []models.ExpenseShare{
			{UserID: users[0].ID, Amount: 50},
			{UserID: users[1].ID, Amount: 50},
		},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	if expense.Shares[0].ID == "" || expense.Shares[0].ExpenseID != expense.ID {
		t.Errorf("share not linked: %+v", expense.Shares[0])
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if got.Category != "food" || got.ReceiptRef != "" {
		t.Errorf("unexpected expense: %+v", got)
	}
	if len(got.Shares) != 2 {
		t.Fatalf("shares = %d, want 2", len(got.Shares))
	}
	// Insertion order is preserved.
	if got.Shares[0].UserID != users[0].ID || got.Shares[1].UserID != users[1].ID {
		t.Errorf("unexpected share order: %+v", got.Shares)
	}

	if err := store.SetShareSettled(ctx, got.Shares[1].ID, true); err != nil {
		t.Fatalf("SetShareSettled failed: %v", err)
	}
	share, err := store.GetExpenseShare(ctx, got.Shares[1].ID)
	if err != nil {
		t.Fatalf("GetExpenseShare failed: %v", err)
	}
	if !share.IsSettled {
		t.Error("share not settled")
	}

	if err := store.SetShareSettled(ctx, "missing", true); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing share kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestNotificationsLifecycle(t *testing.T) {
	store := newTestStore(t)
	_, users := seedMembers(t, store, 2)
	ctx := context.Background()

	batch := []*models.Notification{
		{UserID: users[0].ID, Type: models.NotificationWallPost, Message: "one"},
		{UserID: users[0].ID, Type: models.NotificationExpenseAdded, Message: "two"},
		{UserID: users[1].ID, Type: models.NotificationWallPost, Message: "other user"},
	}
	if err := store.CreateNotifications(ctx, batch); err != nil {
		t.Fatalf("CreateNotifications failed: %v", err)
	}

	notifs, err := store.ListNotifications(ctx, users[0].ID, false, 10)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(notifs) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifs))
	}

	if err := store.SetNotificationRead(ctx, notifs[0].ID, true); err != nil {
		t.Fatalf("SetNotificationRead failed: %v", err)
	}
	unread, err := store.ListNotifications(ctx, users[0].ID, true, 10)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(unread) != 1 {
		t.Errorf("unread = %d, want 1", len(unread))
	}

	if err := store.MarkAllNotificationsRead(ctx, users[0].ID); err != nil {
		t.Fatalf("MarkAllNotificationsRead failed: %v", err)
	}
	unread, err = store.ListNotifications(ctx, users[0].ID, true, 10)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("unread after mark all = %d, want 0", len(unread))
	}

	// The other user's feed is untouched.
	other, err := store.ListNotifications(ctx, users[1].ID, true, 10)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("other user's unread = %d, want 1", len(other))
	}

	// Limit applies.
	capped, err := store.ListNotifications(ctx, users[0].ID, false, 1)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(capped) != 1 {
		t.Errorf("capped = %d, want 1", len(capped))
	}
}

func TestShoppingAndWallRoundTrip(t *testing.T) {
	store := newTestStore(t)
	household, users := seedMembers(t, store, 1)
	ctx := context.Background()

	item := &models.ShoppingItem{HouseholdID: household.ID, Name: "Milk", AddedBy: users[0].ID}
	if err := store.CreateShoppingItem(ctx, item); err != nil {
		t.Fatalf("CreateShoppingItem failed: %v", err)
	}
	item.IsPurchased = true
	if err := store.UpdateShoppingItem(ctx, item); err != nil {
		t.Fatalf("UpdateShoppingItem failed: %v", err)
	}
	got, err := store.GetShoppingItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetShoppingItem failed: %v", err)
	}
	if !got.IsPurchased {
		t.Error("item not purchased after update")
	}
	if err := store.DeleteShoppingItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteShoppingItem failed: %v", err)
	}
	if _, err := store.GetShoppingItem(ctx, item.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not found", apperr.KindOf(err))
	}

	post := &models.WallPost{HouseholdID: household.ID, AuthorID: users[0].ID, Content: "hello"}
	if err := store.CreateWallPost(ctx, post); err != nil {
		t.Fatalf("CreateWallPost failed: %v", err)
	}
	posts, err := store.ListWallPosts(ctx, household.ID)
	if err != nil {
		t.Fatalf("ListWallPosts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Content != "hello" {
		t.Errorf("unexpected posts: %+v", posts)
	}
	if err := store.DeleteWallPost(ctx, post.ID); err != nil {
		t.Fatalf("DeleteWallPost failed: %v", err)
	}
	if err := store.DeleteWallPost(ctx, post.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("second delete kind = %v, want not found", apperr.KindOf(err))
	}
}
