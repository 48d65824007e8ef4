// Package accounts stores accounts and their beloved-ones membership.
package accounts

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

// Repository persists accounts. GetByID returns inactive rows too; callers
// decide visibility. List methods return active accounts only.
type Repository interface {
	Create(ctx context.Context, a *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	UpdateName(ctx context.Context, id string, name string) error
	// Deactivate flips an active account to inactive. A missing or
	// already inactive account yields common.ErrorNotFound.
	Deactivate(ctx context.Context, id string) error

	ListOwned(ctx context.Context, userID string) ([]*models.Account, error)
	ListBeloved(ctx context.Context, userID string) ([]*models.Account, error)

	BelovedOnes(ctx context.Context, accountID string) ([]string, error)
	IsBelovedOne(ctx context.Context, accountID, userID string) (bool, error)
	// AddBelovedOne is idempotent.
	AddBelovedOne(ctx context.Context, accountID, userID string) error
	// RemoveBelovedOne yields common.ErrorNotFound when userID is not a member.
	RemoveBelovedOne(ctx context.Context, accountID, userID string) error
	// HasBelovedReader reports whether any active account owned by ownerID
	// lists userID among its beloved ones.
	HasBelovedReader(ctx context.Context, ownerID, userID string) (bool, error)
}
