// SPDX-License-Identifier: MIT
// Package: geokg/tsv
//
// tsv.go - triple and label-list encoding.

package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/geokg/core"
)

// ErrMalformedLine indicates a line that is not three tab-separated fields
// (or, for label lists, "<index>\t<label>").
var ErrMalformedLine = errors.New("tsv: malformed line")

// ErrUnknownLabel indicates a triple referencing an entity or relation that
// is missing from the index passed to WriteIndexed.
var ErrUnknownLabel = errors.New("tsv: label missing from index")

const (
	sep    = "\t"
	fields = 3
)

// WriteTriples writes seq in labelled form and returns the number of lines.
func WriteTriples(w io.Writer, seq iter.Seq[core.Triple]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for t := range seq {
		if _, err := bw.WriteString(t.Head + sep + t.Relation + sep + t.Tail + "\n"); err != nil {
			return n, fmt.Errorf("WriteTriples: line %d: %w", n+1, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("WriteTriples: flush: %w", err)
	}

	return n, nil
}

// Index assigns dense integer ids to labels in the given order.
type Index struct {
	labels []string
	ids    map[string]int
}

// NewIndex builds an Index over labels; duplicates keep their first position.
func NewIndex(labels iter.Seq[string]) *Index {
	idx := &Index{ids: make(map[string]int)}
	for l := range labels {
		if _, dup := idx.ids[l]; dup {
			continue
		}
		idx.ids[l] = len(idx.labels)
		idx.labels = append(idx.labels, l)
	}

	return idx
}

// ID returns the integer id of label.
func (x *Index) ID(label string) (int, bool) {
	id, ok := x.ids[label]
	return id, ok
}

// Len returns the number of labels.
func (x *Index) Len() int { return len(x.labels) }

// Labels returns the labels in id order.
func (x *Index) Labels() []string { return append([]string(nil), x.labels...) }

// WriteIndexed writes seq as integer triples using entities and relations.
// It stops at the first triple with an unknown label.
func WriteIndexed(w io.Writer, seq iter.Seq[core.Triple], entities, relations *Index) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for t := range seq {
		h, okH := entities.ID(t.Head)
		r, okR := relations.ID(t.Relation)
		tl, okT := entities.ID(t.Tail)
		if !okH || !okR || !okT {
			return n, fmt.Errorf("WriteIndexed: triple %d (%s): %w", n+1, t, ErrUnknownLabel)
		}
		line := strconv.Itoa(h) + sep + strconv.Itoa(r) + sep + strconv.Itoa(tl) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return n, fmt.Errorf("WriteIndexed: line %d: %w", n+1, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("WriteIndexed: flush: %w", err)
	}

	return n, nil
}

// WriteIndex writes "<id>\t<label>" lines in id order.
func WriteIndex(w io.Writer, x *Index) error {
	bw := bufio.NewWriter(w)
	for id, l := range x.labels {
		if _, err := bw.WriteString(strconv.Itoa(id) + sep + l + "\n"); err != nil {
			return fmt.Errorf("WriteIndex: %w", err)
		}
	}

	return bw.Flush()
}

// ReadTriples parses a labelled triple file. Blank lines are skipped.
func ReadTriples(r io.Reader) ([]core.Triple, error) {
	var out []core.Triple
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			continue
		}
		parts := strings.Split(text, sep)
		if len(parts) != fields {
			return nil, fmt.Errorf("ReadTriples: line %d has %d fields: %w", line, len(parts), ErrMalformedLine)
		}
		out = append(out, core.Triple{Head: parts[0], Relation: parts[1], Tail: parts[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadTriples: %w", err)
	}

	return out, nil
}

// ReadIndex parses a "<id>\t<label>" file written by WriteIndex. Ids must be
// dense and in order.
func ReadIndex(r io.Reader) (*Index, error) {
	var labels []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := sc.Text()
		if text == "" {
			continue
		}
		id, label, found := strings.Cut(text, sep)
		n, err := strconv.Atoi(id)
		if !found || err != nil || n != len(labels) {
			return nil, fmt.Errorf("ReadIndex: line %d: %w", len(labels)+1, ErrMalformedLine)
		}
		labels = append(labels, label)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadIndex: %w", err)
	}

	return NewIndex(slices.Values(labels)), nil
}
