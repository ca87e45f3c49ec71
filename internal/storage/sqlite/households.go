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

// CreateHousehold persists a new household and makes creatorID its first member.
func (s *SQLiteStore) CreateHousehold(ctx context.Context, household *models.Household, creatorID string) error {
	if household.ID == "" {
		household.ID = uuid.New().String()
	}
	if household.CreatedAt == 0 {
		household.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO households (id, name, invite_code, created_at) VALUES (?, ?, ?, ?)",
		household.ID, household.Name, household.InviteCode, household.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert household: %w", err)
	}

	// Nanosecond resolution keeps membership order stable for joins
	// within the same second.
	res, err := tx.ExecContext(ctx,
		"UPDATE users SET household_id = ?, household_joined_at = ? WHERE id = ?",
		household.ID, time.Now().UnixNano(), creatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to add creator to household: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetHousehold retrieves a household with its members in membership order.
func (s *SQLiteStore) GetHousehold(ctx context.Context, id string) (*models.Household, error) {
	return s.getHousehold(ctx, "id = ?", id)
}

// GetHouseholdByInviteCode retrieves a household by its invite code, with members.
func (s *SQLiteStore) GetHouseholdByInviteCode(ctx context.Context, code string) (*models.Household, error) {
	return s.getHousehold(ctx, "invite_code = ?", code)
}

func (s *SQLiteStore) getHousehold(ctx context.Context, where string, arg interface{}) (*models.Household, error) {
	household := &models.Household{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, invite_code, created_at FROM households WHERE "+where,
		arg,
	).Scan(&household.ID, &household.Name, &household.InviteCode, &household.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "household not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM users WHERE household_id = ?
		 ORDER BY household_joined_at, created_at, rowid`,
		household.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get household members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var member models.User
		if err := rows.Scan(&member.ID, &member.Email, &member.Name, &member.PasswordHash, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		member.HouseholdID = household.ID
		household.Members = append(household.Members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return household, nil
}

// AddHouseholdMember adds a user to a household.
func (s *SQLiteStore) AddHouseholdMember(ctx context.Context, householdID, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET household_id = ?, household_joined_at = ? WHERE id = ?",
		householdID, time.Now().UnixNano(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add household member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}

// RemoveHouseholdMember unassigns the user's chores, removes the user from
// chore rotations and clears the membership, all in one transaction.
func (s *SQLiteStore) RemoveHouseholdMember(ctx context.Context, householdID, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"UPDATE chores SET assigned_to = NULL WHERE household_id = ? AND assigned_to = ?",
		householdID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to unassign chores: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM chore_rotation
		 WHERE user_id = ?
		 AND chore_id IN (SELECT id FROM chores WHERE household_id = ?)`,
		userID, householdID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove user from rotations: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE users SET household_id = NULL, household_joined_at = NULL WHERE id = ? AND household_id = ?",
		userID, householdID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
