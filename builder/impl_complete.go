// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// impl_complete.go - complete graph rule K_n.
//
// Contract:
//   - Each unordered pair {i,j}, i<j in row-major order, is emitted exactly
//     once from i on axis 0 with label "link".
//   - Any valid descriptor; a single point has no edges.
//
// Complexity:
//   - Steps: O(n·dim) per point, O(n²·dim) over the whole space.

package builder

import (
	"github.com/katalvlaran/geokg/core"
)

// Complete is the complete-graph rule.
type Complete struct{}

// CompleteRule returns the complete-graph rule.
func CompleteRule() Complete { return Complete{} }

// Validate accepts any valid descriptor.
func (Complete) Validate(core.Descriptor) error { return nil }

// Relations returns {"link"}.
func (Complete) Relations(core.Descriptor) []string { return []string{RelationLink} }

// Steps links c to every point after it in row-major order.
func (Complete) Steps(s core.Space, c core.Coordinate, axis int) []Step {
	if axis != 0 {
		return nil
	}
	i, ok := s.Index(c)
	if !ok {
		return nil
	}
	// Only j > i: each unordered pair is emitted once, by its lower index.
	steps := make([]Step, 0, s.Len()-i-1)
	for j := i + 1; j < s.Len(); j++ {
		steps = append(steps, Step{To: s.At(j), Relation: RelationLink})
	}

	return steps
}

// EdgeCount returns n(n-1)/2.
func (Complete) EdgeCount(d core.Descriptor) int {
	n := points(d)
	return n * (n - 1) / 2
}
