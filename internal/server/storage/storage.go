// Package storage hands out presigned URLs for video blobs. The server never
// proxies video bytes; clients upload and download directly.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlobStore presigns object access by key.
type BlobStore interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// NewVideoKey returns a fresh storage key for a video of memoryID.
func NewVideoKey(memoryID string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("videos/%d/%02d/%02d/%s/%s", d.Year(), d.Month(), d.Day(), memoryID, uuid.New())
}
