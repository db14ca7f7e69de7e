// SPDX-License-Identifier: MIT
// Package: geokg/core
//
// triple.go - the atomic record of a generated knowledge graph.

package core

// Triple is one relation-labelled edge: Head -[Relation]-> Tail.
// Generated triples never have Head == Tail.
type Triple struct {
	Head     string
	Relation string
	Tail     string
}

// String renders t as "head -[relation]-> tail".
func (t Triple) String() string {
	return t.Head + " -[" + t.Relation + "]-> " + t.Tail
}

// Reverse returns the triple with head and tail swapped under relation.
func (t Triple) Reverse(relation string) Triple {
	return Triple{Head: t.Tail, Relation: relation, Tail: t.Head}
}
