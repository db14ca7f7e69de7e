// SPDX-License-Identifier: MIT
// Package: geokg/registry
//
// registry.go - sorted, concurrency-safe name → Rule catalogue.
//
// Storage is a red-black tree map keyed by name, so Names() is sorted
// without a separate sort pass. mu guards the tree.

package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/core"
)

// ErrUnknownGeometry indicates a geometry name absent from the registry.
var ErrUnknownGeometry = errors.New("registry: unknown geometry")

// ErrDuplicateGeometry indicates an attempt to register a name twice.
var ErrDuplicateGeometry = errors.New("registry: geometry already registered")

const (
	methodRegister = "Register"
	methodLookup   = "Lookup"
	methodResolve  = "Resolve"
)

// Registry is a named catalogue of edge rules.
type Registry struct {
	mu    sync.RWMutex
	rules *treemap.Map // string → builder.Rule
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{rules: treemap.NewWithStringComparator()}
}

// Register adds rule under name. Empty names and nil rules fail with
// core.ErrInvalidGeometry; a taken name fails with ErrDuplicateGeometry.
// Complexity: O(log k) for k registered geometries.
func (r *Registry) Register(name string, rule builder.Rule) error {
	if name == "" {
		return fmt.Errorf("%s: empty name: %w", methodRegister, core.ErrInvalidGeometry)
	}
	if rule == nil {
		return fmt.Errorf("%s(%q): nil rule: %w", methodRegister, name, core.ErrInvalidGeometry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.rules.Get(name); found {
		return fmt.Errorf("%s(%q): %w", methodRegister, name, ErrDuplicateGeometry)
	}
	r.rules.Put(name, rule)

	return nil
}

// MustRegister is Register that panics on error, for package init code.
func (r *Registry) MustRegister(name string, rule builder.Rule) {
	if err := r.Register(name, rule); err != nil {
		panic(err)
	}
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (builder.Rule, error) {
	r.mu.RLock()
	v, found := r.rules.Get(name)
	r.mu.RUnlock()
	if !found {
		return nil, fmt.Errorf("%s(%q): %w", methodLookup, name, ErrUnknownGeometry)
	}

	return v.(builder.Rule), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, found := r.rules.Get(name)

	return found
}

// Names returns all registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	keys := r.rules.Keys()
	r.mu.RUnlock()

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}

	return names
}

// Len returns the number of registered geometries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.rules.Size()
}

// Resolve looks name up and binds its rule to d, validating both.
// The unknown-name check runs first, so a bad name never reports a
// descriptor error.
func (r *Registry) Resolve(name string, d core.Descriptor) (builder.Geometry, error) {
	rule, err := r.Lookup(name)
	if err != nil {
		return builder.Geometry{}, fmt.Errorf("%s: %w", methodResolve, err)
	}
	g := builder.Geometry{Name: name, Descriptor: d.Clone(), Rule: rule}
	if err = g.Validate(); err != nil {
		return builder.Geometry{}, fmt.Errorf("%s: %w", methodResolve, err)
	}

	return g, nil
}
