// Package service implements the application's operations on top of the
// storage layer: authorization checks, input validation, the split and
// recurrence computations, and notification fan-out.
package service

import (
	"context"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
	"github.com/nkale/homeboard/internal/storage"
)

// requireHousehold loads the requesting user's household with members.
// Fails with a validation error when the user has no household, matching
// the API contract for household-scoped operations.
func requireHousehold(ctx context.Context, store storage.Store, userID string) (*models.Household, error) {
	user, err := store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HouseholdID == "" {
		return nil, apperr.New(apperr.KindValidation, "user does not belong to a household")
	}
	return store.GetHousehold(ctx, user.HouseholdID)
}
