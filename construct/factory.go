package construct

import (
	"strconv"
	"sync"
)

// Item 1: prefer named constructor functions over exported struct literals.
//
// A constructor function has a name, may return a shared instance instead of
// a fresh one, and may return an interface so callers never see the concrete
// type. The provider registry below is the Go rendition of a service
// provider framework: implementations register themselves, clients obtain
// instances through the access function without importing the provider.

// Codec is the service interface. Clients program against it; the concrete
// implementations stay unexported inside their providers.
type Codec interface {
	Name() string
}

// CodecProvider creates service instances on demand.
type CodecProvider func() Codec

// DefaultProviderName keys the fallback provider.
const DefaultProviderName = "<def>"

// UnknownProviderError is returned when no provider is registered under the
// requested name.
type UnknownProviderError struct{ Name string }

// Error implements the error interface.
func (e UnknownProviderError) Error() string {
	// Example: construct: no codec provider registered under "json"
	return "construct: no codec provider registered under " + strconv.Quote(e.Name)
}

// CodecRegistry is the provider registration and access surface. Safe for
// concurrent use.
type CodecRegistry struct {
	mu        sync.RWMutex
	providers map[string]CodecProvider
}

// NewCodecRegistry returns an empty registry.
func NewCodecRegistry() *CodecRegistry {
	return &CodecRegistry{providers: map[string]CodecProvider{}}
}

// RegisterDefault registers the fallback provider.
func (r *CodecRegistry) RegisterDefault(p CodecProvider) {
	r.Register(DefaultProviderName, p)
}

// Register installs a provider under a name, replacing any previous one.
func (r *CodecRegistry) Register(name string, p CodecProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// New returns a service from the default provider.
func (r *CodecRegistry) New() (Codec, error) {
	return r.NewNamed(DefaultProviderName)
}

// NewNamed returns a service from the named provider.
func (r *CodecRegistry) NewNamed(name string) (Codec, error) {
	r.mu.RLock()
	p, ok := r.providers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, UnknownProviderError{Name: name}
	}
	return p(), nil
}

// nopCodec is a provider implementation clients never see directly.
type nopCodec struct{}

func (nopCodec) Name() string { return "nop" }

// NewNopCodec is a named constructor returning the interface, not the
// concrete type. Successive calls may return the same instance; callers
// cannot tell and must not care.
func NewNopCodec() Codec { return nopCodec{} }
