// SPDX-License-Identifier: MIT
// Package: geokg/registry
//
// default.go - the process-wide registry preloaded with built-in rules.

package registry

import (
	"sync"

	"github.com/katalvlaran/geokg/builder"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry holding every built-in geometry.
// Geometries registered on it are visible to every later caller.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = WithBuiltins()
	})

	return defaultRegistry
}

// WithBuiltins returns a fresh registry holding only the built-in geometries.
// Tests use it to register extras without touching Default.
func WithBuiltins() *Registry {
	r := New()
	r.MustRegister(builder.NameLattice, builder.LatticeRule())
	r.MustRegister(builder.NameLine, builder.LineRule())
	r.MustRegister(builder.NameCycle, builder.CycleRule())
	r.MustRegister(builder.NameGrid, builder.GridRule())
	r.MustRegister(builder.NameTorus, builder.TorusRule())
	r.MustRegister(builder.NameHypercube, builder.HypercubeRule())
	r.MustRegister(builder.NameHexagonal, builder.HexagonalRule())
	r.MustRegister(builder.NameStar, builder.StarRule())
	r.MustRegister(builder.NameSinkStar, builder.SinkStarRule())
	r.MustRegister(builder.NameWheel, builder.WheelRule())
	r.MustRegister(builder.NameComplete, builder.CompleteRule())
	r.MustRegister(builder.NameBarbell, builder.BarbellRule())

	return r
}
