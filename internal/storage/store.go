// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/nkale/homeboard/internal/models"
)

// Store defines the persistence operations the services depend on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Not-found conditions are reported as apperr.KindNotFound errors.
type Store interface {
	// CreateUser persists a new user. The ID and CreatedAt fields are
	// populated by the store. Fails if the email is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateHousehold persists a new household and makes creatorID its
	// first member.
	CreateHousehold(ctx context.Context, household *models.Household, creatorID string) error

	// GetHousehold retrieves a household with its members in
	// membership order.
	GetHousehold(ctx context.Context, id string) (*models.Household, error)

	// GetHouseholdByInviteCode retrieves a household by invite code,
	// with members.
	GetHouseholdByInviteCode(ctx context.Context, code string) (*models.Household, error)

	// AddHouseholdMember adds a user to a household.
	AddHouseholdMember(ctx context.Context, householdID, userID string) error

	// RemoveHouseholdMember transactionally unassigns the user's
	// chores, removes the user from chore rotations and clears the
	// user's membership.
	RemoveHouseholdMember(ctx context.Context, householdID, userID string) error

	// CreateChore persists a chore with its rotation order.
	CreateChore(ctx context.Context, chore *models.Chore) error

	// GetChore retrieves a chore with rotation order and comments.
	GetChore(ctx context.Context, id string) (*models.Chore, error)

	// ListChores retrieves a household's chores, newest first.
	ListChores(ctx context.Context, householdID string) ([]*models.Chore, error)

	// UpdateChore writes the chore's mutable fields (title, assignee,
	// completion state, due date) as a single-row update.
	UpdateChore(ctx context.Context, chore *models.Chore) error

	// DeleteChore removes a chore and its rotation and comments.
	DeleteChore(ctx context.Context, id string) error

	// AddChoreComment appends an immutable comment to a chore.
	AddChoreComment(ctx context.Context, comment *models.ChoreComment) error

	// CreateExpense persists an expense and all of its shares in one
	// transaction: either every row is visible or none are.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses retrieves a household's expenses with their shares,
	// newest first.
	ListExpenses(ctx context.Context, householdID string) ([]*models.Expense, error)

	// GetExpenseShare retrieves a single share.
	GetExpenseShare(ctx context.Context, id string) (*models.ExpenseShare, error)

	// GetExpense retrieves an expense with its shares.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// SetShareSettled updates one share's settlement flag.
	SetShareSettled(ctx context.Context, shareID string, settled bool) error

	// CreateShoppingItem persists a new shopping list entry.
	CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error

	// ListShoppingItems retrieves a household's shopping list, newest
	// first.
	ListShoppingItems(ctx context.Context, householdID string) ([]*models.ShoppingItem, error)

	// GetShoppingItem retrieves a shopping list entry.
	GetShoppingItem(ctx context.Context, id string) (*models.ShoppingItem, error)

	// UpdateShoppingItem writes the item's name and purchased flag.
	UpdateShoppingItem(ctx context.Context, item *models.ShoppingItem) error

	// DeleteShoppingItem removes a shopping list entry.
	DeleteShoppingItem(ctx context.Context, id string) error

	// CreateWallPost persists a new wall post.
	CreateWallPost(ctx context.Context, post *models.WallPost) error

	// ListWallPosts retrieves a household's wall posts, newest first.
	ListWallPosts(ctx context.Context, householdID string) ([]*models.WallPost, error)

	// GetWallPost retrieves a wall post.
	GetWallPost(ctx context.Context, id string) (*models.WallPost, error)

	// DeleteWallPost removes a wall post.
	DeleteWallPost(ctx context.Context, id string) error

	// CreateNotifications persists a batch of notification rows.
	CreateNotifications(ctx context.Context, notifications []*models.Notification) error

	// ListNotifications retrieves up to limit of the user's most
	// recent notifications, optionally unread only.
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error)

	// GetNotification retrieves a notification.
	GetNotification(ctx context.Context, id string) (*models.Notification, error)

	// SetNotificationRead updates one notification's read flag.
	SetNotificationRead(ctx context.Context, id string, read bool) error

	// MarkAllNotificationsRead marks every unread notification of the
	// user as read.
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
