// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// impl_wheel.go - wheel rule, W_n = C_{n-1} + hub.
//
// Contract:
//   - n ≥ MinWheelPoints (the rim must be a valid cycle of at least 3).
//   - Hub is index 0; rim is indices 1..n-1 in row-major order.
//   - Hub emits spokes to every rim point ("spoke"); rim point i emits
//     i → i+1, and n-1 → 1 closes the rim ("rim"). Everything on axis 0.
//
// Complexity:
//   - Steps: O(n·dim) for the hub, O(dim) for a rim point.

package builder

import (
	"github.com/katalvlaran/geokg/core"
)

// Wheel is the hub + rim-cycle rule.
type Wheel struct{}

// WheelRule returns the wheel rule.
func WheelRule() Wheel { return Wheel{} }

// Validate requires at least MinWheelPoints points.
func (Wheel) Validate(d core.Descriptor) error {
	if n := points(d); n < MinWheelPoints {
		return shapeErrorf(NameWheel, "%d points < min=%d", n, MinWheelPoints)
	}

	return nil
}

// Relations returns {"spoke", "rim"}.
func (Wheel) Relations(core.Descriptor) []string {
	return []string{RelationSpoke, RelationRim}
}

// Steps returns spokes from the hub, or the single rim step of a rim point.
func (Wheel) Steps(s core.Space, c core.Coordinate, axis int) []Step {
	if axis != 0 {
		return nil
	}
	idx, ok := s.Index(c)
	if !ok {
		return nil
	}
	n := s.Len()
	// Hub: one spoke per rim point.
	if idx == 0 {
		steps := make([]Step, 0, n-1)
		for rim := 1; rim < n; rim++ {
			steps = append(steps, Step{To: s.At(rim), Relation: RelationSpoke})
		}
		return steps
	}
	// Rim point: step to its successor, wrapping past the hub.
	next := idx + 1
	if next == n {
		next = 1
	}

	return []Step{{To: s.At(next), Relation: RelationRim}}
}

// EdgeCount returns 2(n-1): n-1 spokes and n-1 rim edges.
func (Wheel) EdgeCount(d core.Descriptor) int {
	return 2 * (points(d) - 1)
}
