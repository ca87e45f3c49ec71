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

// CreateWallPost persists a new wall post.
func (s *SQLiteStore) CreateWallPost(ctx context.Context, post *models.WallPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt == 0 {
		post.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO wall_posts (id, household_id, author_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		post.ID, post.HouseholdID, post.AuthorID, post.Content, post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wall post: %w", err)
	}
	return nil
}

// ListWallPosts retrieves a household's wall posts, newest first.
func (s *SQLiteStore) ListWallPosts(ctx context.Context, householdID string) ([]*models.WallPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, household_id, author_id, content, created_at
		 FROM wall_posts WHERE household_id = ? ORDER BY created_at DESC, id`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wall posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.WallPost
	for rows.Next() {
		post := &models.WallPost{}
		if err := rows.Scan(&post.ID, &post.HouseholdID, &post.AuthorID, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wall post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wall posts: %w", err)
	}
	return posts, nil
}

// GetWallPost retrieves a wall post.
func (s *SQLiteStore) GetWallPost(ctx context.Context, id string) (*models.WallPost, error) {
	post := &models.WallPost{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, household_id, author_id, content, created_at FROM wall_posts WHERE id = ?",
		id,
	).Scan(&post.ID, &post.HouseholdID, &post.AuthorID, &post.Content, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "wall post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wall post: %w", err)
	}
	return post, nil
}

// DeleteWallPost removes a wall post.
func (s *SQLiteStore) DeleteWallPost(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM wall_posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete wall post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.KindNotFound, "wall post not found")
	}
	return nil
}
