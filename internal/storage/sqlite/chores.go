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

// CreateChore persists a chore together with its rotation order.
func (s *SQLiteStore) CreateChore(ctx context.Context, chore *models.Chore) error {
	if chore.ID == "" {
		chore.ID = uuid.New().String()
	}
	if chore.CreatedAt == 0 {
		chore.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Only weekly chores carry a day of week; anything else is stored
	// as NULL so a zero-value struct reads back as unset (-1).
	var dayOfWeek interface{}
	if chore.RecurrencePattern == models.RecurrenceWeekly && chore.RecurrenceDayOfWeek >= 0 {
		dayOfWeek = chore.RecurrenceDayOfWeek
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO chores (id, household_id, title, assigned_to, is_complete, due_date,
		                     is_recurring, recurrence_pattern, recurrence_day_of_week,
		                     use_rotation, completed_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		chore.ID, chore.HouseholdID, chore.Title, nullStr(chore.AssignedTo), chore.IsComplete,
		nullInt(chore.DueDate), chore.IsRecurring, string(chore.RecurrencePattern), dayOfWeek,
		chore.UseRotation, nullInt(chore.CompletedAt), chore.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chore: %w", err)
	}

	for i, userID := range chore.RotationOrder {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO chore_rotation (chore_id, position, user_id) VALUES (?, ?, ?)",
			chore.ID, i, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rotation entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetChore retrieves a chore with its rotation order and comments.
func (s *SQLiteStore) GetChore(ctx context.Context, id string) (*models.Chore, error) {
	chore, err := s.scanChoreRow(s.db.QueryRowContext(ctx,
		choreColumns+" FROM chores WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if err := s.hydrateChores(ctx, []*models.Chore{chore}); err != nil {
		return nil, err
	}
	return chore, nil
}

// ListChores retrieves a household's chores, newest first, with rotation
// orders and comments.
func (s *SQLiteStore) ListChores(ctx context.Context, householdID string) ([]*models.Chore, error) {
	rows, err := s.db.QueryContext(ctx,
		choreColumns+" FROM chores WHERE household_id = ? ORDER BY created_at DESC, id",
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}
	defer rows.Close()

	var chores []*models.Chore
	for rows.Next() {
		chore, err := s.scanChoreRow(rows)
		if err != nil {
			return nil, err
		}
		chores = append(chores, chore)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chores: %w", err)
	}

	if err := s.hydrateChores(ctx, chores); err != nil {
		return nil, err
	}
	return chores, nil
}

// UpdateChore writes the chore's mutable fields as a single-row update.
// Rotation order and comments are not touched here.
func (s *SQLiteStore) UpdateChore(ctx context.Context, chore *models.Chore) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE chores
		 SET title = ?, assigned_to = ?, is_complete = ?, due_date = ?, completed_at = ?
		 WHERE id = ?`,
		chore.Title, nullStr(chore.AssignedTo), chore.IsComplete,
		nullInt(chore.DueDate), nullInt(chore.CompletedAt), chore.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update chore: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "chore not found")
	}
	return nil
}

// DeleteChore removes a chore; rotation entries and comments cascade.
func (s *SQLiteStore) DeleteChore(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM chores WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete chore: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "chore not found")
	}
	return nil
}

// AddChoreComment appends a comment to a chore.
func (s *SQLiteStore) AddChoreComment(ctx context.Context, comment *models.ChoreComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt == 0 {
		comment.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO chore_comments (id, chore_id, author_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		comment.ID, comment.ChoreID, comment.AuthorID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chore comment: %w", err)
	}
	return nil
}

const choreColumns = `SELECT id, household_id, title, assigned_to, is_complete, due_date,
       is_recurring, recurrence_pattern, recurrence_day_of_week, use_rotation,
       completed_at, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *SQLiteStore) scanChoreRow(row rowScanner) (*models.Chore, error) {
	chore := &models.Chore{}
	var (
		assignedTo  sql.NullString
		dueDate     sql.NullInt64
		dayOfWeek   sql.NullInt64
		completedAt sql.NullInt64
		pattern     string
	)

	err := row.Scan(&chore.ID, &chore.HouseholdID, &chore.Title, &assignedTo, &chore.IsComplete,
		&dueDate, &chore.IsRecurring, &pattern, &dayOfWeek, &chore.UseRotation,
		&completedAt, &chore.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "chore not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan chore: %w", err)
	}

	chore.AssignedTo = assignedTo.String
	chore.DueDate = dueDate.Int64
	chore.CompletedAt = completedAt.Int64
	chore.RecurrencePattern = models.RecurrencePattern(pattern)
	chore.RecurrenceDayOfWeek = -1
	if dayOfWeek.Valid {
		chore.RecurrenceDayOfWeek = int(dayOfWeek.Int64)
	}
	return chore, nil
}

// hydrateChores attaches rotation orders and comments to the given chores.
func (s *SQLiteStore) hydrateChores(ctx context.Context, chores []*models.Chore) error {
	if len(chores) == 0 {
		return nil
	}

	byID := make(map[string]*models.Chore, len(chores))
	args := make([]interface{}, len(chores))
	for i, c := range chores {
		byID[c.ID] = c
		args[i] = c.ID
	}
	in := "(?" + repeatPlaceholder(len(chores)-1) + ")"

	rows, err := s.db.QueryContext(ctx,
		"SELECT chore_id, user_id FROM chore_rotation WHERE chore_id IN "+in+" ORDER BY chore_id, position",
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get rotations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var choreID, userID string
		if err := rows.Scan(&choreID, &userID); err != nil {
			return fmt.Errorf("failed to scan rotation entry: %w", err)
		}
		if c := byID[choreID]; c != nil {
			c.RotationOrder = append(c.RotationOrder, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate rotations: %w", err)
	}

	commentRows, err := s.db.QueryContext(ctx,
		`SELECT id, chore_id, author_id, content, created_at
		 FROM chore_comments WHERE chore_id IN `+in+` ORDER BY created_at, id`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var comment models.ChoreComment
		if err := commentRows.Scan(&comment.ID, &comment.ChoreID, &comment.AuthorID,
			&comment.Content, &comment.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		if c := byID[comment.ChoreID]; c != nil {
			c.Comments = append(c.Comments, comment)
		}
	}
	if err := commentRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate comments: %w", err)
	}

	return nil
}
