// SPDX-License-Identifier: MIT
// Package: geokg/core
//
// descriptor.go - declarative shape of a geometry instance.
//
// Contract:
//   - Dimensionality ≥ 1.
//   - len(Extents) == len(Periodic) == Dimensionality.
//   - Every extent ≥ MinExtent (1 is a degenerate single-point axis).
//   - Validate reports the first violation wrapped around ErrInvalidGeometry.

package core

import (
	"fmt"
	"strings"
)

// MinExtent is the smallest allowed axis extent. A single-point axis is
// valid; it simply contributes no edges.
const MinExtent = 1

const methodValidate = "Descriptor.Validate"

// Descriptor declares a geometry instance: how many axes, how long each axis
// is, whether each axis wraps around, and whether edges are directed.
type Descriptor struct {
	Dimensionality int
	Extents        []int
	Periodic       []bool
	Directed       bool
}

// Bounded returns an undirected Descriptor with one bounded axis per extent.
func Bounded(extents ...int) Descriptor {
	return uniform(extents, false)
}

// Periodic returns an undirected Descriptor with one periodic axis per extent.
func Periodic(extents ...int) Descriptor {
	return uniform(extents, true)
}

func uniform(extents []int, periodic bool) Descriptor {
	d := Descriptor{
		Dimensionality: len(extents),
		Extents:        append([]int(nil), extents...),
		Periodic:       make([]bool, len(extents)),
	}
	for i := range d.Periodic {
		d.Periodic[i] = periodic
	}

	return d
}

// AsDirected returns a copy of d with Directed set to directed.
func (d Descriptor) AsDirected(directed bool) Descriptor {
	out := d.Clone()
	out.Directed = directed

	return out
}

// Validate checks the structural invariants of d.
// Complexity: O(Dimensionality).
func (d Descriptor) Validate() error {
	if d.Dimensionality < 1 {
		return fmt.Errorf("%s: dimensionality=%d (must be ≥ 1): %w",
			methodValidate, d.Dimensionality, ErrInvalidGeometry)
	}
	if len(d.Extents) != d.Dimensionality {
		return fmt.Errorf("%s: %d extents for dimensionality %d: %w",
			methodValidate, len(d.Extents), d.Dimensionality, ErrInvalidGeometry)
	}
	if len(d.Periodic) != d.Dimensionality {
		return fmt.Errorf("%s: %d periodic flags for dimensionality %d: %w",
			methodValidate, len(d.Periodic), d.Dimensionality, ErrInvalidGeometry)
	}
	for i, e := range d.Extents {
		if e < MinExtent {
			return fmt.Errorf("%s: extent[%d]=%d (must be ≥ %d): %w",
				methodValidate, i, e, MinExtent, ErrInvalidGeometry)
		}
	}

	return nil
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	return Descriptor{
		Dimensionality: d.Dimensionality,
		Extents:        append([]int(nil), d.Extents...),
		Periodic:       append([]bool(nil), d.Periodic...),
		Directed:       d.Directed,
	}
}

// Axes returns the sub-Descriptor covering axes [from, to).
// The caller guarantees 0 ≤ from ≤ to ≤ Dimensionality on a valid d.
func (d Descriptor) Axes(from, to int) Descriptor {
	return Descriptor{
		Dimensionality: to - from,
		Extents:        append([]int(nil), d.Extents[from:to]...),
		Periodic:       append([]bool(nil), d.Periodic[from:to]...),
		Directed:       d.Directed,
	}
}

// Concat joins descriptors axis-wise: dimensionality is summed, extents and
// periodic flags are concatenated in argument order. All inputs must be valid
// and agree on Directed.
func Concat(ds ...Descriptor) (Descriptor, error) {
	if len(ds) == 0 {
		return Descriptor{}, fmt.Errorf("Concat: no descriptors: %w", ErrInvalidGeometry)
	}
	out := Descriptor{Directed: ds[0].Directed}
	for i, d := range ds {
		if err := d.Validate(); err != nil {
			return Descriptor{}, fmt.Errorf("Concat: descriptor %d: %w", i, err)
		}
		if d.Directed != out.Directed {
			return Descriptor{}, fmt.Errorf("Concat: descriptor %d directed=%t, descriptor 0 directed=%t: %w",
				i, d.Directed, out.Directed, ErrInvalidGeometry)
		}
		out.Dimensionality += d.Dimensionality
		out.Extents = append(out.Extents, d.Extents...)
		out.Periodic = append(out.Periodic, d.Periodic...)
	}

	return out, nil
}

// String renders d compactly, e.g. "3x4p/undirected" (p marks periodic axes).
func (d Descriptor) String() string {
	var b strings.Builder
	for i, e := range d.Extents {
		if i > 0 {
			b.WriteString("x")
		}
		fmt.Fprintf(&b, "%d", e)
		if i < len(d.Periodic) && d.Periodic[i] {
			b.WriteString("p")
		}
	}
	if d.Directed {
		b.WriteString("/directed")
	} else {
		b.WriteString("/undirected")
	}

	return b.String()
}
