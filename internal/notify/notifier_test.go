package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/nkale/homeboard/internal/models"
)

type recordingStore struct {
	created []*models.Notification
	err     error
}

func (r *recordingStore) CreateNotifications(_ context.Context, notifications []*models.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, notifications...)
	return nil
}

func testHousehold() *models.Household {
	return &models.Household{
		ID: "h1",
		Members: []models.User{
			{ID: "alice"},
			{ID: "bob"},
			{ID: "carol"},
		},
	}
}

func TestNotifyExcludesActor(t *testing.T) {
	store := &recordingStore{}
	n := New(store, nil)

	n.Notify(context.Background(), testHousehold(), "bob", models.NotificationChoreCompleted, "Bob completed a chore", "chore-1")

	if len(store.created) != 2 {
		t.Fatalf("created %d notifications, want 2", len(store.created))
	}
	for _, row := range store.created {
		if row.UserID == "bob" {
			t.Error("actor received their own notification")
		}
		if row.Type != models.NotificationChoreCompleted {
			t.Errorf("type = %q, want chore_completed", row.Type)
		}
		if row.RelatedID != "chore-1" {
			t.Errorf("related id = %q, want chore-1", row.RelatedID)
		}
	}
}

func TestNotifySwallowsStoreErrors(t *testing.T) {
	store := &recordingStore{err: errors.New("disk full")}
	n := New(store, nil)

	// Must not panic or propagate anything.
	n.Notify(context.Background(), testHousehold(), "alice", models.NotificationWallPost, "Alice posted", "post-1")
}

func TestNotifySingleMemberHousehold(t *testing.T) {
	store := &recordingStore{}
	n := New(store, nil)

	household := &models.Household{ID: "h1", Members: []models.User{{ID: "alice"}}}
	n.Notify(context.Background(), household, "alice", models.NotificationExpenseAdded, "Alice added an expense", "exp-1")

	if len(store.created) != 0 {
		t.Errorf("created %d notifications, want 0 for a lone member", len(store.created))
	}
}
