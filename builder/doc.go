// Package builder holds the edge rule sets that turn a geometry Descriptor
// into adjacency.
//
// A Rule answers one question: starting from coordinate c and looking along
// axis i, which coordinates are reached and under which base relation label?
// The generator package drives the enumeration, converts coordinates to entity
// identifiers, suppresses self loops, deduplicates and decorates labels for
// directed output. Rules stay small, pure and deterministic.
//
// Built-in rules:
//
//   - Lattice family (per-axis unit step, label "axis-<i>"):
//     LatticeRule (any shape), LineRule (1-D bounded), CycleRule (1-D periodic),
//     GridRule (bounded, any dim), TorusRule (periodic, any dim),
//     HypercubeRule (bounded, every extent 2).
//   - HexagonalRule: bounded 2-D brick wall; rows on axis 1, rungs on axis 0
//     at even r+c, so every inner face is a hexagon ("axis-0", "axis-1").
//   - StarRule:     first coordinate is a hub joined to every other point ("spoke").
//   - SinkStarRule: the star with every spoke running leaf → hub ("spoke").
//   - WheelRule:    hub plus a rim cycle over the remaining points ("spoke", "rim").
//   - CompleteRule: every unordered pair of points ("link").
//   - BarbellRule:  2×n space; two n-cliques ("clique") joined by one edge ("bridge").
//
// Star, wheel, complete and barbell rules address points by their row-major index in core.Space, so
// they work for any dimensionality; they emit everything on axis 0.
//
// Errors: rules report shape violations by wrapping core.ErrInvalidGeometry.
package builder
