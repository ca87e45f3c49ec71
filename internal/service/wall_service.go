package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/notify"
	"github.com/nkale/homeboard/internal/storage"
)

// WallService manages the household message wall.
type WallService struct {
	store    storage.Store
	notifier *notify.Notifier
}

// NewWallService creates a WallService.
func NewWallService(store storage.Store, notifier *notify.Notifier) *WallService {
	return &WallService{store: store, notifier: notifier}
}

// List returns the requester's household wall posts, newest first.
func (s *WallService) List(ctx context.Context, userID string) ([]*models.WallPost, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListWallPosts(ctx, household.ID)
}

// Create publishes a post to the household wall.
func (s *WallService) Create(ctx context.Context, userID, content string) (*models.WallPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.New(apperr.KindValidation, "post content is required")
	}

	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	post := &models.WallPost{
		HouseholdID: household.ID,
		AuthorID:    userID,
		Content:     strings.TrimSpace(content),
	}
	if err := s.store.CreateWallPost(ctx, post); err != nil {
		return nil, err
	}

	authorName := userID
	if author, err := s.store.GetUserByID(ctx, userID); err == nil {
		authorName = author.Name
	}
	s.notifier.Notify(ctx, household, userID, models.NotificationWallPost,
		fmt.Sprintf("%s posted on the wall", authorName), post.ID)

	return post, nil
}

// Delete removes a post. Only its author may delete it.
func (s *WallService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.store.GetWallPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return apperr.New(apperr.KindForbidden, "only the author can delete a post")
	}
	return s.store.DeleteWallPost(ctx, postID)
}
