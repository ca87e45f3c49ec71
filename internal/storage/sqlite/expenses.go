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

// CreateExpense persists an expense and all of its shares in a single
// transaction. A partially created expense is never observable.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, household_id, description, amount, category, receipt_ref, paid_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.HouseholdID, expense.Description, expense.Amount,
		nullStr(expense.Category), nullStr(expense.ReceiptRef), expense.PaidBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Shares {
		share := &expense.Shares[i]
		if share.ID == "" {
			share.ID = uuid.New().String()
		}
		share.ExpenseID = expense.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_shares (id, expense_id, user_id, amount, is_settled) VALUES (?, ?, ?, ?, ?)",
			share.ID, share.ExpenseID, share.UserID, share.Amount, share.IsSettled,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense with its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expense, err := s.scanExpenseRow(s.db.QueryRowContext(ctx,
		expenseColumns+" FROM expenses WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if err := s.hydrateExpenses(ctx, []*models.Expense{expense}); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves a household's expenses with shares, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, householdID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		expenseColumns+" FROM expenses WHERE household_id = ? ORDER BY created_at DESC, id",
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := s.scanExpenseRow(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if err := s.hydrateExpenses(ctx, expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetExpenseShare retrieves a single expense share.
func (s *SQLiteStore) GetExpenseShare(ctx context.Context, id string) (*models.ExpenseShare, error) {
	share := &models.ExpenseShare{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, expense_id, user_id, amount, is_settled FROM expense_shares WHERE id = ?",
		id,
	).Scan(&share.ID, &share.ExpenseID, &share.UserID, &share.Amount, &share.IsSettled)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "expense share not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense share: %w", err)
	}
	return share, nil
}

// SetShareSettled updates one share's settlement flag.
func (s *SQLiteStore) SetShareSettled(ctx context.Context, shareID string, settled bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expense_shares SET is_settled = ? WHERE id = ?",
		settled, shareID,
	)
	if err != nil {
		return fmt.Errorf("failed to update share: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "expense share not found")
	}
	return nil
}

const expenseColumns = `SELECT id, household_id, description, amount, category, receipt_ref, paid_by, created_at`

func (s *SQLiteStore) scanExpenseRow(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var category, receiptRef sql.NullString

	err := row.Scan(&expense.ID, &expense.HouseholdID, &expense.Description, &expense.Amount,
		&category, &receiptRef, &expense.PaidBy, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "expense not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense: %w", err)
	}

	expense.Category = category.String
	expense.ReceiptRef = receiptRef.String
	return expense, nil
}

// hydrateExpenses attaches shares to the given expenses.
func (s *SQLiteStore) hydrateExpenses(ctx context.Context, expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[string]*models.Expense, len(expenses))
	args := make([]interface{}, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		args[i] = e.ID
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expense_id, user_id, amount, is_settled
		 FROM expense_shares WHERE expense_id IN (?`+repeatPlaceholder(len(expenses)-1)+`)
		 ORDER BY expense_id, rowid`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var share models.ExpenseShare
		if err := rows.Scan(&share.ID, &share.ExpenseID, &share.UserID, &share.Amount, &share.IsSettled); err != nil {
			return fmt.Errorf("failed to scan share: %w", err)
		}
		if e := byID[share.ExpenseID]; e != nil {
			e.Shares = append(e.Shares, share)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate shares: %w", err)
	}
	return nil
}
