// Package notify fans household events out to the other members.
//
// Notifications are a side effect of an already-successful operation, so
// nothing here ever propagates an error to the caller: failures are
// logged and swallowed.
package notify

import (
	"context"
	"log/slog"

	"github.com/nkale/homeboard/internal/models"
)

// NotificationStore is the slice of storage the notifier needs.
type NotificationStore interface {
	CreateNotifications(ctx context.Context, notifications []*models.Notification) error
}

// Notifier creates per-recipient notification rows and, when configured,
// publishes the event to the message broker.
type Notifier struct {
	store     NotificationStore
	publisher *Publisher // nil when event publishing is disabled
}

// New creates a Notifier. publisher may be nil.
func New(store NotificationStore, publisher *Publisher) *Notifier {
	return &Notifier{store: store, publisher: publisher}
}

// Notify records a notification for every household member except the
// acting user and publishes the event. Never fails: a lost notification
// must not abort the operation that triggered it.
func (n *Notifier) Notify(ctx context.Context, household *models.Household, actorID string, typ models.NotificationType, message, relatedID string) {
	var rows []*models.Notification
	for _, member := range household.Members {
		if member.ID == actorID {
			continue
		}
		rows = append(rows, &models.Notification{
			UserID:    member.ID,
			Type:      typ,
			Message:   message,
			RelatedID: relatedID,
		})
	}

	if err := n.store.CreateNotifications(ctx, rows); err != nil {
		slog.Error("Failed to create notifications",
			"type", typ,
			"household_id", household.ID,
			"recipients", len(rows),
			"error", err,
		)
	}

	if n.publisher != nil {
		if err := n.publisher.Publish(ctx, Event{
			Type:        string(typ),
			HouseholdID: household.ID,
			ActorID:     actorID,
			RelatedID:   relatedID,
			Message:     message,
		}); err != nil {
			slog.Warn("Failed to publish event", "type", typ, "error", err)
		}
	}
}
