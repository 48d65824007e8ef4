// Package profiles stores the 1:1 display profile of each user.
package profiles

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	// Update writes every attribute of p and bumps UpdatedAt.
	Update(ctx context.Context, p *models.Profile) error
	// ListBelovedOf returns the profiles of the beloved ones of an account.
	ListBelovedOf(ctx context.Context, accountID string) ([]*models.Profile, error)
}
