package service

import (
	"context"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/storage"
)

// defaultNotificationLimit caps a notification listing.
const defaultNotificationLimit = 50

// NotificationService exposes a user's notification feed.
type NotificationService struct {
	store storage.Store
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(store storage.Store) *NotificationService {
	return &NotificationService{store: store}
}

// List returns the requester's notifications, newest first, capped at
// defaultNotificationLimit. With unreadOnly set, read notifications are
// filtered out.
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]*models.Notification, error) {
	return s.store.ListNotifications(ctx, userID, unreadOnly, defaultNotificationLimit)
}

// MarkRead flags one notification as read. Only the recipient may do
// so.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.store.GetNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return apperr.New(apperr.KindForbidden, "access denied")
	}
	return s.store.SetNotificationRead(ctx, notificationID, true)
}

// MarkAllRead flags every notification of the requester as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.store.MarkAllNotificationsRead(ctx, userID)
}
