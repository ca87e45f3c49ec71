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

// CreateShoppingItem persists a new shopping list entry.
func (s *SQLiteStore) CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO shopping_items (id, household_id, name, added_by, is_purchased, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.HouseholdID, item.Name, item.AddedBy, item.IsPurchased, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping item: %w", err)
	}
	return nil
}

// ListShoppingItems retrieves a household's shopping list, newest first.
func (s *SQLiteStore) ListShoppingItems(ctx context.Context, householdID string) ([]*models.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, household_id, name, added_by, is_purchased, created_at
		 FROM shopping_items WHERE household_id = ? ORDER BY created_at DESC, id`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	var items []*models.ShoppingItem
	for rows.Next() {
		item := &models.ShoppingItem{}
		if err := rows.Scan(&item.ID, &item.HouseholdID, &item.Name, &item.AddedBy,
			&item.IsPurchased, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping items: %w", err)
	}
	return items, nil
}

// GetShoppingItem retrieves a shopping list entry.
func (s *SQLiteStore) GetShoppingItem(ctx context.Context, id string) (*models.ShoppingItem, error) {
	item := &models.ShoppingItem{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, household_id, name, added_by, is_purchased, created_at
		 FROM shopping_items WHERE id = ?`,
		id,
	).Scan(&item.ID, &item.HouseholdID, &item.Name, &item.AddedBy, &item.IsPurchased, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "shopping item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}
	return item, nil
}

// UpdateShoppingItem writes the item's name and purchased flag.
func (s *SQLiteStore) UpdateShoppingItem(ctx context.Context, item *models.ShoppingItem) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE shopping_items SET name = ?, is_purchased = ? WHERE id = ?",
		item.Name, item.IsPurchased, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "shopping item not found")
	}
	return nil
}

// DeleteShoppingItem removes a shopping list entry.
func (s *SQLiteStore) DeleteShoppingItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM shopping_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "shopping item not found")
	}
	return nil
}
