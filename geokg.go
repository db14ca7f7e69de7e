// SPDX-License-Identifier: MIT
// Package: geokg
//
// geokg.go - thin public entry points over the default registry.
//
// Everything here delegates; the real work lives in registry, generator and
// compose. All functions are safe for concurrent use.

package geokg

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/compose"
	"github.com/katalvlaran/geokg/core"
	"github.com/katalvlaran/geokg/generator"
	"github.com/katalvlaran/geokg/registry"
)

// Generate resolves name in the default registry against the given shape and
// returns the lazy triple sequence. Failures wrap core.ErrInvalidGeometry or
// registry.ErrUnknownGeometry and yield nothing.
func Generate(
	name string,
	dimensionality int,
	extents []int,
	periodic []bool,
	directed bool,
	opts ...generator.Option,
) (iter.Seq[core.Triple], error) {
	g, err := Resolve(name, core.Descriptor{
		Dimensionality: dimensionality,
		Extents:        extents,
		Periodic:       periodic,
		Directed:       directed,
	})
	if err != nil {
		return nil, fmt.Errorf("geokg.Generate: %w", err)
	}

	return generator.Generate(g, opts...)
}

// Resolve binds a registered geometry name to a Descriptor.
func Resolve(name string, d core.Descriptor) (builder.Geometry, error) {
	return registry.Default().Resolve(name, d)
}

// Compose returns the Cartesian product a × b × more...
func Compose(a, b builder.Geometry, more ...builder.Geometry) (builder.Geometry, error) {
	return compose.Compose(append([]builder.Geometry{a, b}, more...)...)
}

// ListGeometries returns every registered geometry name, sorted.
func ListGeometries() []string {
	return registry.Default().Names()
}

// Register adds a geometry to the default registry.
func Register(name string, rule builder.Rule) error {
	return registry.Default().Register(name, rule)
}
