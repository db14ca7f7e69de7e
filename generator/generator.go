// SPDX-License-Identifier: MIT
// Package: geokg/generator
//
// generator.go - the single generation code path for plain and composite geometries.
//
// Complexity:
//   - Time: O(N·dim·s) where s is the mean number of steps per (coordinate, axis).
//   - Space: O(E) for the seen-edge set, grown as the sequence is consumed;
//     no triple is buffered.

package generator

import (
	"fmt"
	"iter"
	"slices"

	"github.com/emirpasic/gods/sets/hashset"
	"go.uber.org/zap"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/core"
)

const (
	methodGenerate  = "Generate"
	methodRelations = "Relations"
	methodEntities  = "Entities"
)

// edgeKey identifies an edge for deduplication. For undirected geometries
// a and b are ordered so both orientations share a key.
type edgeKey struct {
	a, relation, b string
}

func keyOf(head, relation, tail string, directed bool) edgeKey {
	if !directed && tail < head {
		head, tail = tail, head
	}

	return edgeKey{a: head, relation: relation, b: tail}
}

// Generate validates g and returns its lazy triple sequence.
// Errors wrap core.ErrInvalidGeometry; nothing is yielded on error.
func Generate(g builder.Geometry, opts ...Option) (iter.Seq[core.Triple], error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	space, err := core.NewSpace(g.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	cfg := newConfig(opts...)
	directed := g.Descriptor.Directed
	// Composite rules cache their factor sub-spaces for this space.
	rule := g.Rule
	if b, ok := rule.(builder.Binder); ok {
		rule = b.Bind(space)
	}
	log := cfg.logger.With(
		zap.String("geometry", g.Name),
		zap.Stringer("descriptor", g.Descriptor),
	)

	return func(yield func(core.Triple) bool) {
		seen := hashset.New()
		emitted, loops, dupes := 0, 0, 0
		log.Debug("generation started", zap.Int("entities", space.Len()))
		defer func() {
			log.Debug("generation finished",
				zap.Int("triples", emitted),
				zap.Int("self_loops_dropped", loops),
				zap.Int("duplicates_dropped", dupes))
		}()

		// Row-major walk; every (coordinate, axis) pair is asked once.
		for c := range space.All() {
			head := c.ID()
			for axis := 0; axis < space.Dimensionality(); axis++ {
				for _, st := range rule.Steps(space, c, axis) {
					// Degenerate periodic axes wrap onto themselves.
					if st.To.Equal(c) {
						loops++
						continue
					}
					tail := st.To.ID()
					// Undirected keys are orientation-free, so a pair reached
					// from both ends is emitted once.
					key := keyOf(head, st.Relation, tail, directed)
					if seen.Contains(key) {
						dupes++
						continue
					}
					seen.Add(key)

					if !directed {
						emitted++
						if !yield(core.Triple{Head: head, Relation: st.Relation, Tail: tail}) {
							return
						}
						continue
					}
					// Directed: forward triple first, then its inverse if asked.
					fwd := core.Triple{Head: head, Relation: Forward(st.Relation), Tail: tail}
					emitted++
					if !yield(fwd) {
						return
					}
					if cfg.inverse {
						emitted++
						if !yield(fwd.Reverse(Backward(st.Relation))) {
							return
						}
					}
				}
			}
		}
	}, nil
}

// Collect materializes the whole triple sequence of g.
func Collect(g builder.Geometry, opts ...Option) ([]core.Triple, error) {
	seq, err := Generate(g, opts...)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// Relations returns the full label set g will use, in rule order, without
// generating anything.
func Relations(g builder.Geometry, opts ...Option) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRelations, err)
	}
	cfg := newConfig(opts...)
	// Directed labels gain the forward suffix, plus a backward twin under WithInverse.
	var labels []string
	for _, base := range g.Rule.Relations(g.Descriptor) {
		labels = append(labels, decorate(base, g.Descriptor.Directed, cfg.inverse)...)
	}

	return labels, nil
}

// Entities returns the identifiers of every point of g in row-major order,
// including points that end up with no edges.
func Entities(g builder.Geometry) (iter.Seq[string], error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodEntities, err)
	}
	space, err := core.NewSpace(g.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEntities, err)
	}

	return space.IDs(), nil
}

// ExpectedTriples returns the exact number of triples Generate will yield
// when g's rule implements builder.Counter and knows its count (a negative
// count means unknown). ok is false otherwise.
func ExpectedTriples(g builder.Geometry, opts ...Option) (n int, ok bool) {
	counter, isCounter := g.Rule.(builder.Counter)
	if !isCounter || g.Validate() != nil {
		return 0, false
	}
	n = counter.EdgeCount(g.Descriptor)
	if n < 0 {
		return 0, false
	}
	if g.Descriptor.Directed && newConfig(opts...).inverse {
		n *= 2
	}

	return n, true
}
