// Package characters stores the people who appear in memories.
package characters

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Character) (*models.Character, error)
	// GetByID returns inactive rows too.
	GetByID(ctx context.Context, id string) (*models.Character, error)
	// Update writes the mutable attributes of an active character.
	Update(ctx context.Context, c *models.Character) error
	Deactivate(ctx context.Context, id string) error
	// ListByMemory returns the active characters linked to a memory.
	ListByMemory(ctx context.Context, memoryID string) ([]*models.Character, error)
}
