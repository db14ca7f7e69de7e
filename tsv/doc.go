// Package tsv reads and writes triple files: one triple per line,
// tab-separated, head first.
//
// Two encodings are supported:
//
//   - Labelled: "0,1\taxis-0\t1,1" - entity identifiers and relation labels verbatim.
//   - Indexed:  "1\t0\t3" - positions in an entity list and a relation list,
//     written alongside as "<index>\t<label>" files. This is the integer form
//     embedding toolkits consume.
//
// The core never touches files; this package is a consumer of the triple
// sequence and has no influence on generation.
package tsv
