package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/notify"
	"github.com/nkale/homeboard/internal/recurrence"
	"github.com/nkale/homeboard/internal/storage"
)

// ChoreService manages chores, their recurrence and their rotation.
type ChoreService struct {
	store    storage.Store
	notifier *notify.Notifier
}

// NewChoreService creates a ChoreService.
func NewChoreService(store storage.Store, notifier *notify.Notifier) *ChoreService {
	return &ChoreService{store: store, notifier: notifier}
}

// ChoreCreate holds the inputs for creating a chore.
type ChoreCreate struct {
	Title               string   `json:"title"`
	AssignedTo          string   `json:"assignedTo"`
	DueDate             int64    `json:"dueDate"`
	IsRecurring         bool     `json:"isRecurring"`
	RecurrencePattern   string   `json:"recurrencePattern"`
	RecurrenceDayOfWeek *int     `json:"recurrenceDayOfWeek"`
	UseRotation         bool     `json:"useRotation"`
	RotationOrder       []string `json:"rotationOrder"`
}

// ChoreUpdate holds the patchable chore fields; nil means "leave as is".
type ChoreUpdate struct {
	Title      *string `json:"title"`
	IsComplete *bool   `json:"isComplete"`
	AssignedTo *string `json:"assignedTo"`
	DueDate    *int64  `json:"dueDate"`
}

// List returns the requester's household chores, newest first.
func (s *ChoreService) List(ctx context.Context, userID string) ([]*models.Chore, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListChores(ctx, household.ID)
}

// Create validates and persists a new chore.
//
// With rotation enabled and no explicit order, the rotation defaults to
// the full household member list in membership order and the first
// element becomes the initial assignee.
func (s *ChoreService) Create(ctx context.Context, userID string, in ChoreCreate) (*models.Chore, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.New(apperr.KindValidation, "chore title is required")
	}

	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	chore := &models.Chore{
		HouseholdID:         household.ID,
		Title:               strings.TrimSpace(in.Title),
		AssignedTo:          in.AssignedTo,
		DueDate:             in.DueDate,
		IsRecurring:         in.IsRecurring,
		RecurrencePattern:   models.RecurrencePattern(in.RecurrencePattern),
		RecurrenceDayOfWeek: -1,
		UseRotation:         in.UseRotation,
		RotationOrder:       in.RotationOrder,
	}
	if chore.RecurrencePattern == "" {
		chore.RecurrencePattern = models.RecurrenceNone
	}
	if in.RecurrenceDayOfWeek != nil {
		chore.RecurrenceDayOfWeek = *in.RecurrenceDayOfWeek
	}

	if err := recurrence.ValidateConfig(chore); err != nil {
		return nil, err
	}

	if chore.UseRotation {
		if len(chore.RotationOrder) == 0 {
			chore.RotationOrder = household.MemberIDs()
		}
		for _, id := range chore.RotationOrder {
			if !household.HasMember(id) {
				return nil, apperr.New(apperr.KindForbidden, "rotation members must belong to the household")
			}
		}
		if chore.AssignedTo == "" && len(chore.RotationOrder) > 0 {
			chore.AssignedTo = chore.RotationOrder[0]
		}
	}

	if chore.AssignedTo != "" && !household.HasMember(chore.AssignedTo) {
		return nil, apperr.New(apperr.KindForbidden, "assigned user must belong to the same household")
	}

	if err := s.store.CreateChore(ctx, chore); err != nil {
		return nil, err
	}

	slog.Info("Chore created", "chore_id", chore.ID, "household_id", household.ID)
	return chore, nil
}

// Update applies a patch to a chore. Setting IsComplete to true runs
// the completion flow: the rotation advances and, for recurring chores,
// the completion flag is immediately cleared so the chore reappears as
// outstanding for its next occurrence.
func (s *ChoreService) Update(ctx context.Context, userID, choreID string, in ChoreUpdate) (*models.Chore, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	chore, err := s.store.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}
	if chore.HouseholdID != household.ID {
		return nil, apperr.New(apperr.KindForbidden, "access denied")
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperr.New(apperr.KindValidation, "chore title is required")
		}
		chore.Title = strings.TrimSpace(*in.Title)
	}
	if in.DueDate != nil {
		chore.DueDate = *in.DueDate
	}
	if in.AssignedTo != nil {
		if *in.AssignedTo != "" && !household.HasMember(*in.AssignedTo) {
			return nil, apperr.New(apperr.KindForbidden, "assigned user must belong to the same household")
		}
		chore.AssignedTo = *in.AssignedTo
	}

	completed := false
	if in.IsComplete != nil {
		switch {
		case *in.IsComplete && !chore.IsComplete:
			out := recurrence.Complete(chore, time.Now())
			chore.AssignedTo = out.AssignedTo
			chore.IsComplete = out.IsComplete
			chore.CompletedAt = out.CompletedAt
			completed = true
		case !*in.IsComplete:
			chore.IsComplete = false
			chore.CompletedAt = 0
		}
	}

	if err := s.store.UpdateChore(ctx, chore); err != nil {
		return nil, err
	}

	if completed {
		actor, err := s.store.GetUserByID(ctx, userID)
		actorName := userID
		if err == nil {
			actorName = actor.Name
		}
		s.notifier.Notify(ctx, household, userID, models.NotificationChoreCompleted,
			fmt.Sprintf("%s completed %q", actorName, chore.Title), chore.ID)
	}

	return chore, nil
}

// Delete removes a chore from the requester's household.
func (s *ChoreService) Delete(ctx context.Context, userID, choreID string) error {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return err
	}

	chore, err := s.store.GetChore(ctx, choreID)
	if err != nil {
		return err
	}
	if chore.HouseholdID != household.ID {
		return apperr.New(apperr.KindForbidden, "access denied")
	}

	return s.store.DeleteChore(ctx, choreID)
}

// AddComment appends an immutable comment to a chore in the requester's
// household.
func (s *ChoreService) AddComment(ctx context.Context, userID, choreID, content string) (*models.ChoreComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.KindValidation, "comment content is required")
	}

	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	chore, err := s.store.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}
	if chore.HouseholdID != household.ID {
		return nil, apperr.New(apperr.KindForbidden, "access denied")
	}

	comment := &models.ChoreComment{
		ChoreID:  choreID,
		AuthorID: userID,
		Content:  content,
	}
	if err := s.store.AddChoreComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
