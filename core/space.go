// SPDX-License-Identifier: MIT
// Package: geokg/core
//
// space.go - enumeration of all coordinates of a Descriptor.
//
// Order: row-major, axis 0 varies slowest (the last axis varies fastest).
// Index(c) = Σ c[i]·stride[i] with stride[last] = 1, as in a dense grid
// stored row by row. At inverts Index.
//
// Complexity:
//   - NewSpace: O(dim).
//   - Index/At/Contains: O(dim).
//   - All: O(Len·dim) over a full iteration, O(dim) memory per yielded coordinate.

package core

import (
	"fmt"
	"iter"
	"math"
)

// Space is the Cartesian product of range(extent_i) over every axis of a
// validated Descriptor.
type Space struct {
	desc    Descriptor
	strides []int
	size    int
}

// NewSpace validates d and precomputes row-major strides.
// It fails with ErrInvalidGeometry when d is malformed or when the number of
// points does not fit in an int.
func NewSpace(d Descriptor) (Space, error) {
	if err := d.Validate(); err != nil {
		return Space{}, fmt.Errorf("NewSpace: %w", err)
	}
	strides := make([]int, d.Dimensionality)
	size := 1
	for i := d.Dimensionality - 1; i >= 0; i-- {
		strides[i] = size
		if size > math.MaxInt/d.Extents[i] {
			return Space{}, fmt.Errorf("NewSpace: %s has too many points: %w", d, ErrInvalidGeometry)
		}
		size *= d.Extents[i]
	}

	return Space{desc: d.Clone(), strides: strides, size: size}, nil
}

// Descriptor returns a copy of the Descriptor the space was built from.
func (s Space) Descriptor() Descriptor { return s.desc.Clone() }

// Dimensionality returns the number of axes.
func (s Space) Dimensionality() int { return s.desc.Dimensionality }

// Extent returns the extent of axis i.
func (s Space) Extent(i int) int { return s.desc.Extents[i] }

// IsPeriodic reports whether axis i wraps around.
func (s Space) IsPeriodic(i int) bool { return s.desc.Periodic[i] }

// Directed reports the Descriptor's Directed flag.
func (s Space) Directed() bool { return s.desc.Directed }

// Len returns the number of coordinates (product of extents).
func (s Space) Len() int { return s.size }

// Contains reports whether c lies inside the space.
func (s Space) Contains(c Coordinate) bool {
	if len(c) != s.desc.Dimensionality {
		return false
	}
	for i, v := range c {
		if v < 0 || v >= s.desc.Extents[i] {
			return false
		}
	}

	return true
}

// Index maps c to its row-major position. ok is false when c is outside the space.
func (s Space) Index(c Coordinate) (idx int, ok bool) {
	if !s.Contains(c) {
		return 0, false
	}
	for i, v := range c {
		idx += v * s.strides[i]
	}

	return idx, true
}

// At returns the coordinate at row-major position idx.
// The caller guarantees 0 ≤ idx < Len.
func (s Space) At(idx int) Coordinate {
	c := make(Coordinate, s.desc.Dimensionality)
	for i, stride := range s.strides {
		c[i] = idx / stride
		idx %= stride
	}

	return c
}

// All yields every coordinate in row-major order. Each yielded Coordinate
// is a fresh slice the consumer may keep.
func (s Space) All() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for idx := 0; idx < s.size; idx++ {
			if !yield(s.At(idx)) {
				return
			}
		}
	}
}

// IDs yields the entity identifier of every coordinate in row-major order.
func (s Space) IDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := range s.All() {
			if !yield(c.ID()) {
				return
			}
		}
	}
}
