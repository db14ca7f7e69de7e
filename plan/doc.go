// Package plan runs batches of geometry generations described in a file.
//
// A plan names an output directory and a list of instances. Each instance is
// either one registered geometry with its shape, or a product of factors:
//
//	output: out/geo
//	concurrency: 4
//	instances:
//	  - name: grid-5x5
//	    geometry: grid
//	    extents: [5, 5]
//	  - name: cylinder
//	    directed: true
//	    inverse: true
//	    factors:
//	      - {geometry: line, extents: [10]}
//	      - {geometry: cycle, extents: [6], periodic: [true]}
//
// YAML (.yaml, .yml) and TOML (.toml) are accepted. Run writes, per instance,
// <output>/<name>/{triples,entities,relations}.tsv, then <output>/manifest.yaml
// recording counts and the run id. Instances run concurrently; generation of
// any single instance is sequential. A Runner built WithMetrics also counts
// triples, entities and instance outcomes in a Prometheus registry.
package plan
