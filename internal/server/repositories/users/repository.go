// Package users declares the user repository and its Postgres implementation.
package users

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

// Repository stores user identities. Lookups return common.ErrorNotFound
// when no row matches, active or not.
type Repository interface {
	// Create inserts the user and fills ID and CreatedAt. Duplicate
	// username or email yields common.ErrUsernameTaken / common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
