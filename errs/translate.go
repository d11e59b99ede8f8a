package errs

import (
	"errors"
	"fmt"
	"io/fs"
)

// Item 61: throw errors appropriate to the abstraction.
//
// A profile service should not leak "blob not found" to its callers; it
// translates at the boundary into its own vocabulary, wrapping with %w so
// the cause stays reachable for diagnostics.

// ProfileNotFoundError is the service-level translation of a storage miss.
type ProfileNotFoundError struct {
	User string
	Err  error
}

// Error implements error.
func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("errs: no profile for user %q: %v", e.User, e.Err)
}

// Unwrap exposes the cause.
func (e *ProfileNotFoundError) Unwrap() error { return e.Err }

// ProfileService reads profiles from a BlobStore.
type ProfileService struct {
	store *BlobStore
}

// NewProfileService wraps a store.
func NewProfileService(store *BlobStore) *ProfileService {
	return &ProfileService{store: store}
}

// loadRaw leaks the storage layer's error untranslated - DON'T DO THIS.
// Callers end up matching fs.ErrNotExist against a user-facing API.
func (p *ProfileService) loadRaw(user string) ([]byte, error) {
	return p.store.Get("profiles/" + user)
}

// Load speaks the service's vocabulary; the cause remains wrapped.
func (p *ProfileService) Load(user string) ([]byte, error) {
	data, err := p.store.Get("profiles/" + user)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ProfileNotFoundError{User: user, Err: err}
		}
		return nil, fmt.Errorf("errs: load profile %q: %w", user, err)
	}
	return data, nil
}
