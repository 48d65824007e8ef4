// Package memories stores memories and their links to characters.
package memories

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Memory) (*models.Memory, error)
	// GetByID returns inactive rows too. CharacterIDs holds every linked
	// character regardless of its state.
	GetByID(ctx context.Context, id string) (*models.Memory, error)
	UpdateTitle(ctx context.Context, id string, title string) error
	Deactivate(ctx context.Context, id string) error
	// ListForUser returns the active memories of every active account the
	// user owns or is a beloved one of.
	ListForUser(ctx context.Context, userID string) ([]*models.Memory, error)
	// AddCharacter is idempotent.
	AddCharacter(ctx context.Context, memoryID, characterID string) error
	// RemoveCharacter yields common.ErrorNotFound when the link does not exist.
	RemoveCharacter(ctx context.Context, memoryID, characterID string) error
}
