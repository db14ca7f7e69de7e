// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// impl_hexagonal.go - honeycomb lattice laid out as a brick wall on a 2-D grid.
//
// Canonical model:
//   - Point (r, c) of a rows×cols bounded grid is a honeycomb vertex.
//   - Axis 1: (r, c) → (r, c+1) while c+1 < cols ("axis-1"); rows are zig-zag
//     paths of the honeycomb.
//   - Axis 0: (r, c) → (r+1, c) only when r+1 < rows and r+c is even
//     ("axis-0"); the alternating rungs close the hexagons.
//   - Every vertex has degree ≤ 3 and every inner face is a hexagon.
//
// Complexity:
//   - Steps: O(dim) per call.
//   - EdgeCount: O(1).

package builder

import (
	"github.com/katalvlaran/geokg/core"
)

// Hexagonal is the brick-wall honeycomb rule.
type Hexagonal struct{}

// HexagonalRule returns the honeycomb rule.
func HexagonalRule() Hexagonal { return Hexagonal{} }

// Validate requires exactly two bounded axes.
func (Hexagonal) Validate(d core.Descriptor) error {
	if d.Dimensionality != 2 {
		return shapeErrorf(NameHexagonal, "want 2 axes, got %s", d)
	}
	for i, p := range d.Periodic {
		if p {
			return shapeErrorf(NameHexagonal, "axis %d is periodic in %s", i, d)
		}
	}

	return nil
}

// Relations returns {"axis-0", "axis-1"}.
func (Hexagonal) Relations(core.Descriptor) []string {
	return []string{AxisRelation(0), AxisRelation(1)}
}

// Steps returns the row step on axis 1 and, on even-parity points, the rung
// on axis 0.
func (Hexagonal) Steps(s core.Space, c core.Coordinate, axis int) []Step {
	next := c[axis] + 1
	// Bounded on both axes: nothing past the last row or column.
	if next >= s.Extent(axis) {
		return nil
	}
	// Rungs alternate along a row and shift by one between rows.
	if axis == 0 && (c[0]+c[1])%2 != 0 {
		return nil
	}

	return []Step{{To: c.With(axis, next), Relation: AxisRelation(axis)}}
}

// EdgeCount returns rows·(cols-1) row edges plus the rung count: rows r
// with r even own ⌈cols/2⌉ rungs, odd rows ⌊cols/2⌋, and the last row none.
func (Hexagonal) EdgeCount(d core.Descriptor) int {
	rows, cols := d.Extents[0], d.Extents[1]
	evenRows, oddRows := rows/2, (rows-1)/2

	return rows*(cols-1) + evenRows*((cols+1)/2) + oddRows*(cols/2)
}
