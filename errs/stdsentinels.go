package errs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Item 60: favor the standard sentinels.
//
// The ecosystem already tests for fs.ErrNotExist, os.ErrInvalid and the
// context errors. Returning (or wrapping) those instead of minting private
// equivalents lets callers reuse the checks they already have.

// BlobStore is an in-memory store that speaks the stdlib's error dialect.
type BlobStore struct {
	blobs map[string][]byte
}

// NewBlobStore returns an empty store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: map[string][]byte{}}
}

// Put stores a blob. Empty keys are invalid arguments.
func (s *BlobStore) Put(key string, data []byte) error {
	if key == "" {
		return fmt.Errorf("errs: put: %w", os.ErrInvalid)
	}
	s.blobs[key] = data
	return nil
}

// Get fetches a blob; missing keys wrap fs.ErrNotExist so
// errors.Is(err, fs.ErrNotExist) works exactly as it does for files.
func (s *BlobStore) Get(key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("errs: blob %q: %w", key, fs.ErrNotExist)
	}
	return data, nil
}

// GetWithin fetches with a deadline; timeouts surface as the context's own
// error rather than a private timeout type.
func (s *BlobStore) GetWithin(ctx context.Context, key string, simulate time.Duration) ([]byte, error) {
	select {
	case <-time.After(simulate):
		return s.Get(key)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
