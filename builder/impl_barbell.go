// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// impl_barbell.go - barbell rule: two n-cliques joined by a single bridge.
//
// Canonical model:
//   - Descriptor is 2-D with extents (2, n); axis 0 picks the bell, axis 1 the
//     point inside it.
//   - Axis 1 of (b,k) links to (b,j) for every j>k ("clique").
//   - Axis 0 of (0,0) links to (1,0) ("bridge"); no other axis-0 edges.
//
// Edge count: 2·n(n-1)/2 + 1.

package builder

import (
	"github.com/katalvlaran/geokg/core"
)

// Barbell is the two-cliques-and-a-bridge rule.
type Barbell struct{}

// BarbellRule returns the barbell rule.
func BarbellRule() Barbell { return Barbell{} }

// Validate requires a 2-D descriptor whose first extent is 2.
func (Barbell) Validate(d core.Descriptor) error {
	if d.Dimensionality != 2 || d.Extents[0] != BarbellBells {
		return shapeErrorf(NameBarbell, "want extents (%d, n), got %s", BarbellBells, d)
	}

	return nil
}

// Relations returns {"clique", "bridge"}.
func (Barbell) Relations(core.Descriptor) []string {
	return []string{RelationClique, RelationBridge}
}

// Steps returns clique links on axis 1 and the bridge on axis 0.
func (Barbell) Steps(s core.Space, c core.Coordinate, axis int) []Step {
	switch axis {
	case 0:
		// A single bridge joins the first point of each bell.
		if c[0] == 0 && c[1] == 0 {
			return []Step{{To: c.With(0, 1), Relation: RelationBridge}}
		}
		return nil
	case 1:
		// Bell c[0] is a clique along axis 1; link forward only.
		n := s.Extent(1)
		steps := make([]Step, 0, n-c[1]-1)
		for j := c[1] + 1; j < n; j++ {
			steps = append(steps, Step{To: c.With(1, j), Relation: RelationClique})
		}
		return steps
	default:
		return nil
	}
}

// EdgeCount returns n(n-1) + 1.
func (Barbell) EdgeCount(d core.Descriptor) int {
	// Two cliques of n(n-1)/2 each, plus the bridge.
	n := d.Extents[1]
	return n*(n-1) + 1
}
