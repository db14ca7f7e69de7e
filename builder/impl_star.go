// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// impl_star.go - hub-and-spokes rules (star and sink-star).
//
// Contract:
//   - Hub is the first coordinate in row-major order (all zeros).
//   - Star: spokes hub → every other point in ascending index order, label
//     "spoke", emitted on axis 0 from the hub only, so each spoke appears once.
//   - Sink-star: the same spokes pointing inward, leaf → hub, each emitted on
//     axis 0 by its leaf. Undirected it is the star's graph; directed, every
//     forward triple ends at the hub.
//   - Periodic flags are ignored; a single-point space has no spokes.
//
// Complexity:
//   - Steps: O(n·dim) for the star hub, O(dim) for a sink-star leaf, O(1) otherwise.
//   - EdgeCount: O(dim).

package builder

import (
	"github.com/katalvlaran/geokg/core"
)

// Star is the hub-and-spokes rule. With sink set the spokes point at the hub.
type Star struct {
	sink bool
}

// StarRule returns the hub-and-spokes rule.
func StarRule() Star { return Star{} }

// SinkStarRule returns the star whose spokes run leaf → hub.
func SinkStarRule() Star { return Star{sink: true} }

// Validate accepts any valid descriptor.
func (Star) Validate(core.Descriptor) error { return nil }

// Relations returns {"spoke"}.
func (Star) Relations(core.Descriptor) []string { return []string{RelationSpoke} }

// Steps returns the spokes when c is the hub and axis is 0, or for a sink
// star the single spoke of leaf c.
func (r Star) Steps(s core.Space, c core.Coordinate, axis int) []Step {
	// Every spoke is owned by axis 0; other axes contribute nothing.
	if axis != 0 {
		return nil
	}
	hub := isHub(s, c)
	if r.sink {
		if hub || !s.Contains(c) {
			return nil
		}
		return []Step{{To: s.At(0), Relation: RelationSpoke}}
	}
	if !hub {
		return nil
	}
	// Leaves in ascending row-major order keep the output deterministic.
	steps := make([]Step, 0, s.Len()-1)
	for idx := 1; idx < s.Len(); idx++ {
		steps = append(steps, Step{To: s.At(idx), Relation: RelationSpoke})
	}

	return steps
}

// EdgeCount returns n-1 for either orientation.
func (Star) EdgeCount(d core.Descriptor) int {
	return points(d) - 1
}

// isHub reports whether c sits at row-major index 0.
func isHub(s core.Space, c core.Coordinate) bool {
	idx, ok := s.Index(c)
	return ok && idx == 0
}

// points returns the number of coordinates of a valid descriptor.
func points(d core.Descriptor) int {
	n := 1
	for _, e := range d.Extents {
		n *= e
	}

	return n
}
