// SPDX-License-Identifier: MIT
// Package: geokg/builder
//
// impl_lattice.go - per-axis unit-step rules (line, cycle, grid, torus, hypercube).
//
// Canonical model:
//   - Axis i of coordinate c steps to c with c[i]+1.
//   - Bounded axis: the step exists only if c[i]+1 < extent_i.
//   - Periodic axis: the step goes to (c[i]+1) mod extent_i. With extent 1 this
//     is c itself; with extent 2 the wrap step reverses the forward step. The
//     generator suppresses the former and collapses the latter when undirected.
//   - Label: "axis-<i>", one per axis, listed in axis order.
//
// Complexity:
//   - Steps: O(dim) per call (one coordinate copy).
//   - EdgeCount: O(dim).

package builder

import (
	"github.com/katalvlaran/geokg/core"
)

// Lattice is the per-axis step rule. An optional shape check narrows the
// descriptors it accepts (LineRule, CycleRule, ...).
type Lattice struct {
	name  string
	shape func(d core.Descriptor) error
}

// LatticeRule accepts any valid descriptor.
func LatticeRule() Lattice { return Lattice{name: NameLattice} }

// LineRule accepts 1-D bounded descriptors.
func LineRule() Lattice {
	return Lattice{name: NameLine, shape: func(d core.Descriptor) error {
		if d.Dimensionality != 1 || d.Periodic[0] {
			return shapeErrorf(NameLine, "want one bounded axis, got %s", d)
		}
		return nil
	}}
}

// CycleRule accepts 1-D periodic descriptors.
func CycleRule() Lattice {
	return Lattice{name: NameCycle, shape: func(d core.Descriptor) error {
		if d.Dimensionality != 1 || !d.Periodic[0] {
			return shapeErrorf(NameCycle, "want one periodic axis, got %s", d)
		}
		return nil
	}}
}

// GridRule accepts descriptors whose axes are all bounded.
func GridRule() Lattice {
	return Lattice{name: NameGrid, shape: func(d core.Descriptor) error {
		for i, p := range d.Periodic {
			if p {
				return shapeErrorf(NameGrid, "axis %d is periodic in %s", i, d)
			}
		}
		return nil
	}}
}

// TorusRule accepts descriptors whose axes are all periodic.
func TorusRule() Lattice {
	return Lattice{name: NameTorus, shape: func(d core.Descriptor) error {
		for i, p := range d.Periodic {
			if !p {
				return shapeErrorf(NameTorus, "axis %d is bounded in %s", i, d)
			}
		}
		return nil
	}}
}

// HypercubeRule accepts bounded descriptors whose every extent is 2.
func HypercubeRule() Lattice {
	return Lattice{name: NameHypercube, shape: func(d core.Descriptor) error {
		for i := range d.Extents {
			if d.Extents[i] != HypercubeExtent || d.Periodic[i] {
				return shapeErrorf(NameHypercube, "axis %d must be bounded with extent %d in %s",
					i, HypercubeExtent, d)
			}
		}
		return nil
	}}
}

// Validate applies the optional shape constraint.
func (l Lattice) Validate(d core.Descriptor) error {
	if l.shape == nil {
		return nil
	}

	return l.shape(d)
}

// Relations returns "axis-0".."axis-<dim-1>".
func (l Lattice) Relations(d core.Descriptor) []string {
	rels := make([]string, d.Dimensionality)
	for i := range rels {
		rels[i] = AxisRelation(i)
	}

	return rels
}

// Steps returns at most one step: the unit step along axis.
func (l Lattice) Steps(s core.Space, c core.Coordinate, axis int) []Step {
	next := c[axis] + 1
	if next >= s.Extent(axis) {
		// Bounded axes stop at the edge; periodic ones wrap to 0.
		if !s.IsPeriodic(axis) {
			return nil
		}
		next = 0
	}

	return []Step{{To: c.With(axis, next), Relation: AxisRelation(axis)}}
}

// EdgeCount sums, over every axis, edges-per-line × number of parallel lines.
func (l Lattice) EdgeCount(d core.Descriptor) int {
	total := 1
	for _, e := range d.Extents {
		total *= e
	}
	count := 0
	// Axis i has total/e parallel lines of extent e.
	for i, e := range d.Extents {
		count += axisLineEdges(e, d.Periodic[i], d.Directed) * (total / e)
	}

	return count
}

// axisLineEdges counts the edges contributed by one line of extent e.
func axisLineEdges(e int, periodic, directed bool) int {
	switch {
	// A single point only wraps onto itself.
	case e == 1:
		return 0
	case !periodic:
		return e - 1
	// Forward and wrap step join the same pair.
	case e == 2 && !directed:
		return 1
	default:
		return e
	}
}
