// SPDX-License-Identifier: MIT
// Package: geokg/plan
//
// metrics.go - Prometheus counters for plan runs.
//
// Batch runs are short-lived, so there is no HTTP endpoint: the registry is
// dumped in text exposition format with WriteTextfile (node_exporter's
// textfile collector picks it up).

package plan

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Instance outcomes recorded in the instances_total counter.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Metrics holds the collectors a Runner updates.
type Metrics struct {
	registry *prometheus.Registry

	Triples   *prometheus.CounterVec
	Entities  *prometheus.CounterVec
	Instances *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewMetrics creates collectors under namespace on a private registry.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	triples := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triples_generated_total",
			Help:      "Triples written, by geometry",
		},
		[]string{"geometry"},
	)
	entities := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_generated_total",
			Help:      "Entities indexed, by geometry",
		},
		[]string{"geometry"},
	)
	instances := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_total",
			Help:      "Plan instances processed, by outcome",
		},
		[]string{"status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "instance_duration_seconds",
			Help:      "Wall time to generate and write one instance",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"geometry"},
	)
	registry.MustRegister(triples, entities, instances, duration)

	return &Metrics{
		registry:  registry,
		Triples:   triples,
		Entities:  entities,
		Instances: instances,
		Duration:  duration,
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every collector to path in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("Metrics.WriteTextfile: %w", err)
	}

	return nil
}

// observe records one finished instance. A nil receiver does nothing.
func (m *Metrics) observe(e Entry, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Instances.WithLabelValues(StatusFailed).Inc()
		return
	}
	m.Instances.WithLabelValues(StatusOK).Inc()
	m.Triples.WithLabelValues(e.Geometry).Add(float64(e.Triples))
	m.Entities.WithLabelValues(e.Geometry).Add(float64(e.Entities))
	m.Duration.WithLabelValues(e.Geometry).Observe(elapsed.Seconds())
}
