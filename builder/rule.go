// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// rule.go - the Rule contract and the Geometry pair (Descriptor + Rule).
//
// Contract for every Rule:
//   - Validate rejects descriptors the geometry cannot represent, wrapping
//     core.ErrInvalidGeometry. It is only called on structurally valid descriptors.
//   - Relations returns the complete, ordered set of base labels for d. It is
//     derivable from d alone and never depends on enumeration.
//   - Steps is pure: same (space, c, axis) ⇒ same steps in the same order.
//     It may return c itself (degenerate periodic axis); the generator drops it.
//   - Steps must never return a coordinate outside the space.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geokg/core"
)

// Step is one outgoing adjacency: the reached coordinate and its base label.
type Step struct {
	To       core.Coordinate
	Relation string
}

// Rule decides adjacency for one geometry.
type Rule interface {
	Validate(d core.Descriptor) error
	Relations(d core.Descriptor) []string
	Steps(s core.Space, c core.Coordinate, axis int) []Step
}

// Counter is implemented by rules that know their exact edge count in closed
// form for d (directedness included, inverse triples excluded). A negative
// count means the rule cannot tell.
type Counter interface {
	EdgeCount(d core.Descriptor) int
}

// Binder is implemented by rules that can precompute per-space state. The
// generator calls Bind once per generation and uses the returned rule for
// every Steps call over s.
type Binder interface {
	Bind(s core.Space) Rule
}

// Geometry pairs a named Rule with the Descriptor it is applied to.
// It is the unit the generator consumes and the composition layer produces.
type Geometry struct {
	Name       string
	Descriptor core.Descriptor
	Rule       Rule
}

// Validate checks the descriptor's structural invariants, then the rule's
// shape constraints.
func (g Geometry) Validate() error {
	if g.Rule == nil {
		return fmt.Errorf("Geometry(%q): nil rule: %w", g.Name, core.ErrInvalidGeometry)
	}
	if err := g.Descriptor.Validate(); err != nil {
		return fmt.Errorf("Geometry(%q): %w", g.Name, err)
	}
	if err := g.Rule.Validate(g.Descriptor); err != nil {
		return fmt.Errorf("Geometry(%q): %w", g.Name, err)
	}

	return nil
}

// AxisRelation returns the lattice label for axis i ("axis-<i>").
func AxisRelation(i int) string {
	return AxisRelationPrefix + strconv.Itoa(i)
}

// shapeErrorf wraps core.ErrInvalidGeometry with the geometry name as context.
func shapeErrorf(name, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), core.ErrInvalidGeometry)
}
