// Package videos stores the video attachments of memories. The blobs
// themselves live in object storage under Video.FileKey.
package videos

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, v *models.Video) (*models.Video, error)
	// GetByID returns inactive rows too.
	GetByID(ctx context.Context, id string) (*models.Video, error)
	Deactivate(ctx context.Context, id string) error
	// ListByMemory returns the active videos of a memory.
	ListByMemory(ctx context.Context, memoryID string) ([]*models.Video, error)
}
