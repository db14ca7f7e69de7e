// Package geokg generates synthetic knowledge graphs with a known geometry:
// lines, cycles, grids, tori, hypercubes, stars, wheels, complete graphs,
// barbells and Cartesian products of any of them.
//
// Embedding a graph whose structure is known in advance and checking whether
// the learned space reproduces it (collinearity, periodicity, grid adjacency)
// is a diagnostic for the inductive biases of knowledge-graph embedding models.
// geokg only manufactures those graphs: a flat, deterministic sequence of
// (head, relation, tail) triples.
//
// Layout:
//
//	core/      - Coordinate, Descriptor, Space, Triple, entity-id codec
//	builder/   - edge rules (one per geometry) and the Geometry pair
//	registry/  - name → rule catalogue (open for extension)
//	generator/ - the single generation path: lazy, deduplicated, loop-free
//	compose/   - Cartesian products as first-class geometries
//	tsv/       - tab-separated triple files (labelled or index-mapped)
//	plan/      - batch runs described in YAML/TOML
//	cmd/geokg  - command-line entry point for plans
//
// Quick ASCII example, Generate("grid", 2, []int{2, 2}, []bool{false, false}, false):
//
//	0,0 ─axis-1─ 0,1
//	 │            │
//	axis-0      axis-0
//	 │            │
//	1,0 ─axis-1─ 1,1
//
//	go get github.com/katalvlaran/geokg
package geokg
