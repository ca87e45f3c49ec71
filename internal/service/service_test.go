package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/notify"
	"github.com/nkale/homeboard/internal/storage/sqlite"
)

// setupStore creates a fresh SQLite store backed by a temp file.
func setupStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedUser inserts a user directly, bypassing password hashing.
func seedUser(t *testing.T, store *sqlite.SQLiteStore, email, name string) *models.User {
	t.Helper()

	user := models.NewUser(email, name, "x")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

// seedHousehold creates a household with n members and returns it with
// the members in membership order.
func seedHousehold(t *testing.T, store *sqlite.SQLiteStore, n int) (*models.Household, []*models.User) {
	t.Helper()

	ctx := context.Background()
	users := make([]*models.User, n)
	for i := range users {
		users[i] = seedUser(t, store, fmt.Sprintf("member%d@example.com", i), fmt.Sprintf("Member %d", i))
	}

	household := &models.Household{Name: "Test House", InviteCode: fmt.Sprintf("code-%s", users[0].ID[:8])}
	if err := store.CreateHousehold(ctx, household, users[0].ID); err != nil {
		t.Fatalf("failed to seed household: %v", err)
	}
	for _, u := range users[1:] {
		if err := store.AddHouseholdMember(ctx, household.ID, u.ID); err != nil {
			t.Fatalf("failed to add member: %v", err)
		}
	}

	household, err := store.GetHousehold(ctx, household.ID)
	if err != nil {
		t.Fatalf("failed to reload household: %v", err)
	}
	return household, users
}

// newTestNotifier returns a notifier without an event publisher.
func newTestNotifier(store *sqlite.SQLiteStore) *notify.Notifier {
	return notify.New(store, nil)
}
