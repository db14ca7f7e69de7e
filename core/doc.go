// Package core defines the value types every other geokg package speaks:
// Coordinate, Descriptor, Space and Triple.
//
// A Descriptor declares the shape of a discrete n-dimensional space:
// dimensionality, per-axis extent, per-axis boundary mode (bounded or
// periodic) and whether edges are directed. A Space enumerates the
// Coordinates of a Descriptor in row-major order (axis 0 varies slowest)
// and maps each Coordinate to a stable entity identifier ("r,c,...").
//
// Guarantees:
//
//   - Everything here is a value: no shared mutable state, no randomness.
//   - Coordinate -> ID is a bijection for a fixed dimensionality; ParseID inverts it.
//   - Enumeration order is fixed, so identifiers and triple order are reproducible.
//
// Errors:
//
//	ErrInvalidGeometry - malformed Descriptor (dimensionality, lengths, extents).
//	ErrMalformedID     - identifier does not decode to a coordinate.
//
// Quick ASCII example, Descriptor{2, [2 3], [false false], false}:
//
//	0,0  0,1  0,2
//	1,0  1,1  1,2
package core
