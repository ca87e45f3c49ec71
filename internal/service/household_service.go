package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/storage"
)

// HouseholdService manages household membership.
type HouseholdService struct {
	store storage.Store
}

// NewHouseholdService creates a HouseholdService.
func NewHouseholdService(store storage.Store) *HouseholdService {
	return &HouseholdService{store: store}
}

// HouseholdView is the full dashboard state of a household.
type HouseholdView struct {
	Household *models.Household `json:"household"`
	Chores    []*models.Chore   `json:"chores"`
	Expenses  []*models.Expense `json:"expenses"`
}

// Me returns the requester's household with members, chores and
// expenses including shares. Returns a nil Household when the user does
// not belong to one.
func (s *HouseholdService) Me(ctx context.Context, userID string) (*HouseholdView, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HouseholdID == "" {
		return &HouseholdView{}, nil
	}

	household, err := s.store.GetHousehold(ctx, user.HouseholdID)
	if err != nil {
		return nil, err
	}
	chores, err := s.store.ListChores(ctx, household.ID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, household.ID)
	if err != nil {
		return nil, err
	}

	return &HouseholdView{Household: household, Chores: chores, Expenses: expenses}, nil
}

// Create starts a new household with the requester as first member.
func (s *HouseholdService) Create(ctx context.Context, userID, name string) (*models.Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.KindValidation, "household name is required")
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HouseholdID != "" {
		return nil, apperr.New(apperr.KindConflict, "user already belongs to a household")
	}

	household := &models.Household{
		Name:       name,
		InviteCode: newInviteCode(),
	}
	if err := s.store.CreateHousehold(ctx, household, userID); err != nil {
		return nil, err
	}

	slog.Info("Household created", "household_id", household.ID, "creator", userID)
	return s.store.GetHousehold(ctx, household.ID)
}

// Join adds the requester to the household matching the invite code.
func (s *HouseholdService) Join(ctx context.Context, userID, inviteCode string) (*models.Household, error) {
	inviteCode = strings.TrimSpace(inviteCode)
	if inviteCode == "" {
		return nil, apperr.New(apperr.KindValidation, "invite code is required")
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HouseholdID != "" {
		return nil, apperr.New(apperr.KindConflict, "user already belongs to a household")
	}

	household, err := s.store.GetHouseholdByInviteCode(ctx, inviteCode)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.New(apperr.KindNotFound, "invalid invite code")
		}
		return nil, err
	}

	if err := s.store.AddHouseholdMember(ctx, household.ID, userID); err != nil {
		return nil, err
	}

	slog.Info("User joined household", "household_id", household.ID, "user_id", userID)
	return s.store.GetHousehold(ctx, household.ID)
}

// Leave removes the requester from their household, unassigning their
// chores and dropping them from chore rotations.
func (s *HouseholdService) Leave(ctx context.Context, userID string) error {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.HouseholdID == "" {
		return apperr.New(apperr.KindValidation, "user does not belong to a household")
	}

	if err := s.store.RemoveHouseholdMember(ctx, user.HouseholdID, userID); err != nil {
		return err
	}

	slog.Info("User left household", "household_id", user.HouseholdID, "user_id", userID)
	return nil
}

// newInviteCode generates a short opaque invite code.
func newInviteCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
}
