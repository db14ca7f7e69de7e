// Package generator turns a builder.Geometry into its triple sequence.
//
// Algorithm (one pass, row-major):
//
//	for each coordinate c of the space:
//	    for each axis i:
//	        for each step of Rule.Steps(space, c, i):
//	            drop self loops (step lands on c)
//	            drop duplicates (seen-edge set)
//	            emit Triple{c.ID(), label, step.To.ID()}
//
// Deduplication keys on (head, relation, tail) for directed geometries and on
// the unordered pair plus relation for undirected ones, so a periodic axis of
// extent 2 contributes one undirected edge per line, not two.
//
// Labels: undirected output uses the rule's base label ("axis-0"); directed
// output uses "<base>-forward", and WithInverse adds the reverse triple as
// "<base>-backward". Relations() lists the exact label set up front.
//
// Generate validates everything before returning, so a failing call yields no
// partial output. The returned sequence is lazy and restartable: every range
// over it regenerates the same triples in the same order.
package generator
