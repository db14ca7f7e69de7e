// SPDX-License-Identifier: MIT
// Package: geokg/core
//
// coordinate.go - discrete coordinates and the entity identifier codec.
//
// Identifier scheme: decimal axis values joined by IDSeparator, axis 0 first.
// This is the same "r,c" layout the grid builder uses, extended to n axes.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// IDSeparator joins axis values inside an entity identifier.
const IDSeparator = ","

// Coordinate is an ordered tuple of integers, one per axis.
// Treat it as a value: functions in geokg never mutate a Coordinate they
// were handed, and every Coordinate they return is freshly allocated.
type Coordinate []int

// Equal reports whether c and o have the same length and components.
func (c Coordinate) Equal(o Coordinate) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of c.
func (c Coordinate) Clone() Coordinate {
	out := make(Coordinate, len(c))
	copy(out, c)

	return out
}

// With returns a copy of c whose axis-th component is set to v.
func (c Coordinate) With(axis, v int) Coordinate {
	out := c.Clone()
	out[axis] = v

	return out
}

// ID renders c as an entity identifier, e.g. [0 2 1] → "0,2,1".
// Complexity: O(dim · digits).
func (c Coordinate) ID() string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteString(IDSeparator)
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String implements fmt.Stringer using the identifier form.
func (c Coordinate) String() string { return c.ID() }

// ParseID decodes an identifier produced by Coordinate.ID back into a
// Coordinate of dimensionality dim. It fails with ErrMalformedID when the
// axis count differs or a component is not an integer.
func ParseID(id string, dim int) (Coordinate, error) {
	parts := strings.Split(id, IDSeparator)
	if len(parts) != dim {
		return nil, fmt.Errorf("ParseID(%q): %d axes, want %d: %w", id, len(parts), dim, ErrMalformedID)
	}
	c := make(Coordinate, dim)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("ParseID(%q): axis %d: %w", id, i, ErrMalformedID)
		}
		c[i] = v
	}

	return c, nil
}
