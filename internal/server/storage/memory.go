package storage

import (
	"context"
	"net/url"
	"sync"
)

// MemoryStore fakes presigning with memory:// URLs and remembers every key
// it signed an upload for.
type MemoryStore struct {
	mu      sync.Mutex
	bucket  string
	uploads map[string]string
}

func NewMemoryStore(bucket string) *MemoryStore {
	return &MemoryStore{bucket: bucket, uploads: map[string]string{}}
}

func (s *MemoryStore) url(key, op string) string {
	u := url.URL{Scheme: "memory", Host: s.bucket, Path: "/" + key, RawQuery: url.Values{"op": {op}}.Encode()}
	return u.String()
}

func (s *MemoryStore) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	s.mu.Lock()
	s.uploads[key] = contentType
	s.mu.Unlock()
	return s.url(key, "put"), nil
}

func (s *MemoryStore) PresignGet(ctx context.Context, key string) (string, error) {
	return s.url(key, "get"), nil
}

// Signed reports whether an upload URL was issued for key.
func (s *MemoryStore) Signed(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.uploads[key]
	return ok
}
