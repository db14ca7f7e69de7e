// SPDX-License-Identifier: MIT
// Package: geokg/plan
//
// run.go - concurrent execution of a plan.
//
// Contract:
//   - Every instance is resolved before any file is written; one bad instance
//     fails the run with no output.
//   - Instances run under an errgroup bounded by Plan.Concurrency; the first
//     failure cancels instances that have not started yet.
//   - Manifest entries keep plan order regardless of completion order.

package plan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/compose"
	"github.com/katalvlaran/geokg/generator"
	"github.com/katalvlaran/geokg/registry"
	"github.com/katalvlaran/geokg/tsv"
)

// Output file names inside each instance directory.
const (
	TriplesFile   = "triples.tsv"
	EntitiesFile  = "entities.tsv"
	RelationsFile = "relations.tsv"
	ManifestFile  = "manifest.yaml"
)

const dirPerm = 0o755

// Runner executes plans against a registry.
type Runner struct {
	registry *registry.Registry
	logger   *zap.Logger
	metrics  *Metrics
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithRegistry resolves geometry names in reg instead of registry.Default().
// Panics on nil.
func WithRegistry(reg *registry.Registry) RunnerOption {
	if reg == nil {
		panic("plan: WithRegistry(nil)")
	}
	return func(r *Runner) { r.registry = reg }
}

// WithLogger routes run logs to l. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("plan: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithMetrics records per-instance counters in m. Panics on nil.
func WithMetrics(m *Metrics) RunnerOption {
	if m == nil {
		panic("plan: WithMetrics(nil)")
	}
	return func(r *Runner) { r.metrics = m }
}

// NewRunner returns a Runner using the default registry and a no-op logger
// unless overridden.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{registry: registry.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve turns an instance into a geometry: a registry lookup for plain
// instances, a composition of resolved factors otherwise.
func (r *Runner) Resolve(in Instance) (builder.Geometry, error) {
	if len(in.Factors) == 0 {
		g, err := r.registry.Resolve(in.Geometry, in.Descriptor())
		if err != nil {
			return builder.Geometry{}, fmt.Errorf("instance %q: %w", in.Name, err)
		}
		return g, nil
	}
	gs := make([]builder.Geometry, 0, len(in.Factors))
	for k, f := range in.Factors {
		g, err := r.registry.Resolve(f.Geometry, f.Descriptor(in.Directed))
		if err != nil {
			return builder.Geometry{}, fmt.Errorf("instance %q: factor %d: %w", in.Name, k, err)
		}
		gs = append(gs, g)
	}
	g, err := compose.Compose(gs...)
	if err != nil {
		return builder.Geometry{}, fmt.Errorf("instance %q: %w", in.Name, err)
	}

	return g, nil
}

// Run validates p, resolves every instance, generates them concurrently and
// writes the manifest.
func (r *Runner) Run(ctx context.Context, p *Plan) (*Manifest, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	geometries := make([]builder.Geometry, len(p.Instances))
	for i, in := range p.Instances {
		g, err := r.Resolve(in)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		geometries[i] = g
	}

	m := &Manifest{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
		Entries: make([]Entry, len(p.Instances)),
	}
	if err := os.MkdirAll(p.Output, dirPerm); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log := r.logger.With(zap.String("run_id", m.RunID))
	log.Info("plan started",
		zap.String("output", p.Output),
		zap.Int("instances", len(p.Instances)))

	limit := p.Concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i := range p.Instances {
		in, g := p.Instances[i], geometries[i]
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			entry, err := r.runInstance(p.Output, in, g)
			r.metrics.observe(entry, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("Run: instance %q: %w", in.Name, err)
			}
			m.Entries[i] = entry
			log.Info("instance written",
				zap.String("instance", in.Name),
				zap.String("geometry", g.Name),
				zap.String("triples", humanize.Comma(int64(entry.Triples))),
				zap.String("entities", humanize.Comma(int64(entry.Entities))))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("plan failed", zap.Error(err))
		return nil, err
	}

	if err := m.Write(filepath.Join(p.Output, ManifestFile)); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Info("plan finished", zap.Int("instances", len(m.Entries)),
		zap.String("triples", humanize.Comma(int64(m.TotalTriples()))))

	return m, nil
}

// runInstance writes the three TSV files of one instance.
func (r *Runner) runInstance(output string, in Instance, g builder.Geometry) (Entry, error) {
	var opts []generator.Option
	if in.Inverse {
		opts = append(opts, generator.WithInverse())
	}
	opts = append(opts, generator.WithLogger(r.logger.With(zap.String("instance", in.Name))))

	dir := filepath.Join(output, in.Name)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return Entry{}, err
	}

	ids, err := generator.Entities(g)
	if err != nil {
		return Entry{}, err
	}
	labels, err := generator.Relations(g, opts...)
	if err != nil {
		return Entry{}, err
	}
	entities := tsv.NewIndex(ids)
	relations := tsv.NewIndex(slices.Values(labels))
	if err = writeFile(filepath.Join(dir, EntitiesFile), func(f *os.File) error {
		return tsv.WriteIndex(f, entities)
	}); err != nil {
		return Entry{}, err
	}
	if err = writeFile(filepath.Join(dir, RelationsFile), func(f *os.File) error {
		return tsv.WriteIndex(f, relations)
	}); err != nil {
		return Entry{}, err
	}

	seq, err := generator.Generate(g, opts...)
	if err != nil {
		return Entry{}, err
	}
	var n int
	if err = writeFile(filepath.Join(dir, TriplesFile), func(f *os.File) error {
		var werr error
		if in.Indexed {
			n, werr = tsv.WriteIndexed(f, seq, entities, relations)
		} else {
			n, werr = tsv.WriteTriples(f, seq)
		}
		return werr
	}); err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:       in.Name,
		Geometry:   g.Name,
		Descriptor: g.Descriptor.String(),
		Entities:   entities.Len(),
		Relations:  relations.Len(),
		Triples:    n,
		Indexed:    in.Indexed,
		Path:       dir,
	}, nil
}

// writeFile creates path, runs fill and closes the file, keeping the first error.
func writeFile(path string, fill func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fill(f)
}
