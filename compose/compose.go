// SPDX-License-Identifier: MIT
// Package: geokg/compose
//
// compose.go - Compose: geometries in, one product geometry out.

package compose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/core"
)

const (
	methodCompose = "Compose"
	minFactors    = 2
)

// Compose returns the Cartesian product of gs, left to right.
// Inputs that are themselves products are flattened into their factors.
func Compose(gs ...builder.Geometry) (builder.Geometry, error) {
	if len(gs) < minFactors {
		return builder.Geometry{}, fmt.Errorf("%s: %d geometries (need ≥ %d): %w",
			methodCompose, len(gs), minFactors, core.ErrInvalidGeometry)
	}

	var (
		names []string
		rules []builder.Rule
		dims  []int
		descs = make([]core.Descriptor, 0, len(gs))
	)
	for i, g := range gs {
		if err := g.Validate(); err != nil {
			return builder.Geometry{}, fmt.Errorf("%s: operand %d: %w", methodCompose, i, err)
		}
		descs = append(descs, g.Descriptor)
		if p, ok := g.Rule.(*Product); ok {
			for _, f := range p.factors {
				names = append(names, f.name)
				rules = append(rules, f.rule)
				dims = append(dims, f.dim)
			}
			continue
		}
		names = append(names, g.Name)
		rules = append(rules, g.Rule)
		dims = append(dims, g.Descriptor.Dimensionality)
	}

	d, err := core.Concat(descs...)
	if err != nil {
		return builder.Geometry{}, fmt.Errorf("%s: %w", methodCompose, err)
	}
	out := builder.Geometry{
		Name:       strings.Join(names, NameSeparator),
		Descriptor: d,
		Rule:       newProduct(names, rules, dims),
	}
	if err = out.Validate(); err != nil {
		return builder.Geometry{}, fmt.Errorf("%s: %w", methodCompose, err)
	}

	return out, nil
}
