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

// ShoppingService manages the household's shared shopping list.
type ShoppingService struct {
	store    storage.Store
	notifier *notify.Notifier
}

// NewShoppingService creates a ShoppingService.
func NewShoppingService(store storage.Store, notifier *notify.Notifier) *ShoppingService {
	return &ShoppingService{store: store, notifier: notifier}
}

// ShoppingItemUpdate holds the mutable fields of a shopping item. Nil
// fields are left unchanged.
type ShoppingItemUpdate struct {
	Name        *string `json:"name"`
	IsPurchased *bool   `json:"isPurchased"`
}

// List returns the requester's household shopping list, newest first.
func (s *ShoppingService) List(ctx context.Context, userID string) ([]*models.ShoppingItem, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListShoppingItems(ctx, household.ID)
}

// Create adds an item to the list and notifies the rest of the
// household.
func (s *ShoppingService) Create(ctx context.Context, userID, name string) (*models.ShoppingItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.New(apperr.KindValidation, "item name is required")
	}

	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	item := &models.ShoppingItem{
		HouseholdID: household.ID,
		Name:        strings.TrimSpace(name),
		AddedBy:     userID,
	}
	if err := s.store.CreateShoppingItem(ctx, item); err != nil {
		return nil, err
	}

	adderName := userID
	if adder, err := s.store.GetUserByID(ctx, userID); err == nil {
		adderName = adder.Name
	}
	s.notifier.Notify(ctx, household, userID, models.NotificationShoppingItemAdded,
		fmt.Sprintf("%s added %q to the shopping list", adderName, item.Name), item.ID)

	return item, nil
}

// Update patches an item. Any household member can edit any item, so
// marking something purchased does not require being the one who added
// it.
func (s *ShoppingService) Update(ctx context.Context, userID, itemID string, in ShoppingItemUpdate) (*models.ShoppingItem, error) {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.store.GetShoppingItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.HouseholdID != household.ID {
		return nil, apperr.New(apperr.KindForbidden, "access denied")
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.New(apperr.KindValidation, "item name is required")
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.IsPurchased != nil {
		item.IsPurchased = *in.IsPurchased
	}

	if err := s.store.UpdateShoppingItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item from the list.
func (s *ShoppingService) Delete(ctx context.Context, userID, itemID string) error {
	household, err := requireHousehold(ctx, s.store, userID)
	if err != nil {
		return err
	}

	item, err := s.store.GetShoppingItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.HouseholdID != household.ID {
		return apperr.New(apperr.KindForbidden, "access denied")
	}

	return s.store.DeleteShoppingItem(ctx, itemID)
}
