// Package tokens stores opaque session tokens, at most one per user.
package tokens

import (
	"context"

	"github.com/griotme/griot/internal/server/models"
)

// Repository defines operations for issuing, resolving and revoking session tokens.
type Repository interface {
	// GetOrCreate returns the user's live token, inserting one with key if
	// none exists. Concurrent callers for the same user get the same token.
	GetOrCreate(ctx context.Context, userID string, key string) (*models.Token, error)

	// Find looks a token up by key. Missing keys yield common.ErrorNotFound.
	Find(ctx context.Context, key string) (*models.Token, error)

	// Delete revokes a token by key. Missing keys yield common.ErrorNotFound.
	Delete(ctx context.Context, key string) error

	// DeleteForUser revokes the user's token if there is one.
	DeleteForUser(ctx context.Context, userID string) error
}
