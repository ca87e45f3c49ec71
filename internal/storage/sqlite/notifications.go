package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
)

// CreateNotifications persists a batch of notification rows in one
// transaction.
func (s *SQLiteStore) CreateNotifications(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt == 0 {
			n.CreatedAt = now
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO notifications (id, user_id, type, message, related_id, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			n.ID, n.UserID, string(n.Type), n.Message, nullStr(n.RelatedID), n.IsRead, n.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListNotifications retrieves up to limit of the user's most recent
// notifications, optionally unread only.
func (s *SQLiteStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error) {
	query := `SELECT id, user_id, type, message, related_id, is_read, created_at
	          FROM notifications WHERE user_id = ?`
	if unreadOnly {
		query += " AND is_read = 0"
	}
	query += " ORDER BY created_at DESC, id LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		var relatedID sql.NullString
		var typ string
		if err := rows.Scan(&n.ID, &n.UserID, &typ, &n.Message, &relatedID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Type = models.NotificationType(typ)
		n.RelatedID = relatedID.String
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return notifications, nil
}

// GetNotification retrieves a notification.
func (s *SQLiteStore) GetNotification(ctx context.Context, id string) (*models.Notification, error) {
	n := &models.Notification{}
	var relatedID sql.NullString
	var typ string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, type, message, related_id, is_read, created_at FROM notifications WHERE id = ?",
		id,
	).Scan(&n.ID, &n.UserID, &typ, &n.Message, &relatedID, &n.IsRead, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "notification not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	n.Type = models.NotificationType(typ)
	n.RelatedID = relatedID.String
	return n, nil
}

// SetNotificationRead updates one notification's read flag.
func (s *SQLiteStore) SetNotificationRead(ctx context.Context, id string, read bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = ? WHERE id = ?",
		read, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "notification not found")
	}
	return nil
}

// MarkAllNotificationsRead marks every unread notification of the user as read.
func (s *SQLiteStore) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = 1 WHERE user_id = ? AND is_read = 0",
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
