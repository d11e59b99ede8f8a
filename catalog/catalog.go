// Package catalog provides the demo registry shared by every chapter package.
//
// It is intentionally:
//   - free of lesson logic (chapters never import each other, only catalog)
//   - explicit: chapters expose a Demos() slice, the composition root registers them
//   - side effect free: no init()-time registration, no global registry
//
// Expected usage:
//
//	reg := catalog.NewRegistry()
//	if err := reg.Register(construct.Demos()...); err != nil { ... }
//	demo, err := reg.Get("builder")
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
)

// RunFunc executes a single demo. Demos log their narration through the
// supplied logger and return an error only when the demo itself is broken,
// never to signal the anti-pattern it illustrates.
type RunFunc func(ctx context.Context, log *slog.Logger) error

// Demo is one runnable lesson.
type Demo struct {
	// Item is the lesson number, unique across the whole catalogue.
	Item int

	// Slug is the short kebab-case name used on the command line.
	Slug string

	// Chapter is the owning chapter package name (e.g. "construct").
	Chapter string

	// Summary is a one-line description shown by `list`.
	Summary string

	// Run exercises the lesson.
	Run RunFunc
}

// ErrNilRun is returned when a demo is registered without a Run function.
var ErrNilRun = errors.New("catalog: nil run function")

// DuplicateSlugError is returned when a slug is registered twice.
type DuplicateSlugError struct{ Slug string }

// Error implements the error interface.
func (e DuplicateSlugError) Error() string {
	// Example: catalog: duplicate demo slug "builder"
	return "catalog: duplicate demo slug " + strconv.Quote(e.Slug)
}

// DuplicateItemError is returned when an item number is registered twice.
type DuplicateItemError struct{ Item int }

// Error implements the error interface.
func (e DuplicateItemError) Error() string {
	// Example: catalog: duplicate item 2
	return "catalog: duplicate item " + strconv.Itoa(e.Item)
}

// UnknownDemoError is returned when lookup by slug or item number fails.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: catalog: unknown demo "builder"
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// Registry is an in-memory demo registry. The zero value is not usable;
// construct it with NewRegistry.
type Registry struct {
	bySlug map[string]Demo
	byItem map[int]Demo
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bySlug: map[string]Demo{},
		byItem: map[int]Demo{},
	}
}

// Register adds demos, rejecting nil run functions and duplicates.
// Registration stops at the first invalid demo.
func (r *Registry) Register(demos ...Demo) error {
	for _, d := range demos {
		if d.Run == nil {
			return ErrNilRun
		}
		if _, ok := r.bySlug[d.Slug]; ok {
			return DuplicateSlugError{Slug: d.Slug}
		}
		if _, ok := r.byItem[d.Item]; ok {
			return DuplicateItemError{Item: d.Item}
		}
		r.bySlug[d.Slug] = d
		r.byItem[d.Item] = d
	}
	return nil
}

// Get resolves a demo by slug, or by item number if name parses as an int.
func (r *Registry) Get(name string) (Demo, error) {
	if d, ok := r.bySlug[name]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if d, ok := r.byItem[n]; ok {
			return d, nil
		}
	}
	return Demo{}, UnknownDemoError{Name: name}
}

// ByItem resolves a demo by item number.
func (r *Registry) ByItem(item int) (Demo, bool) {
	d, ok := r.byItem[item]
	return d, ok
}

// Chapter returns the demos of one chapter, sorted by item number.
func (r *Registry) Chapter(name string) []Demo {
	var out []Demo
	for _, d := range r.bySlug {
		if d.Chapter == name {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item < out[j].Item })
	return out
}

// All returns every registered demo, sorted by item number.
func (r *Registry) All() []Demo {
	out := make([]Demo, 0, len(r.bySlug))
	for _, d := range r.bySlug {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item < out[j].Item })
	return out
}

// Len reports the number of registered demos.
func (r *Registry) Len() int { return len(r.bySlug) }
