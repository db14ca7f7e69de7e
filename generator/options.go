// SPDX-License-Identifier: MIT
// Package: geokg/generator
//
// options.go - functional options for Generate.
//
// Contract:
//   - Options mutate a private config; later options override earlier ones.
//   - Option constructors panic on meaningless input (nil logger).
//   - Defaults: no inverse triples, no-op logger.

package generator

import (
	"go.uber.org/zap"
)

// Option customizes a generation run.
type Option func(*config)

// config aggregates all knobs used by Generate. Passed by value.
type config struct {
	// inverse adds "<base>-backward" reverse triples for directed geometries.
	inverse bool
	// logger receives debug records for each run.
	logger *zap.Logger
}

// newConfig applies opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithInverse makes directed geometries also emit the reverse of every
// forward triple under the "<base>-backward" label. Undirected geometries
// are unaffected.
func WithInverse() Option {
	return func(c *config) { c.inverse = true }
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
