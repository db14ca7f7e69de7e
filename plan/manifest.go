// SPDX-License-Identifier: MIT
// Package: geokg/plan
//
// manifest.go - the record a run leaves next to its outputs.

package plan

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest summarizes one Run.
type Manifest struct {
	RunID   string    `yaml:"run_id"`
	Started time.Time `yaml:"started"`
	Entries []Entry   `yaml:"entries"`
}

// Entry describes one generated instance.
type Entry struct {
	Name       string `yaml:"name"`
	Geometry   string `yaml:"geometry"`
	Descriptor string `yaml:"descriptor"`
	Entities   int    `yaml:"entities"`
	Relations  int    `yaml:"relations"`
	Triples    int    `yaml:"triples"`
	Indexed    bool   `yaml:"indexed"`
	Path       string `yaml:"path"`
}

// TotalTriples sums triples over all entries.
func (m *Manifest) TotalTriples() int {
	total := 0
	for _, e := range m.Entries {
		total += e.Triples
	}

	return total
}

// Write stores m as YAML at path.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("Manifest.Write: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Manifest.Write: %w", err)
	}

	return nil
}

// ReadManifest loads a manifest written by Write.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadManifest: %w", err)
	}
	var m Manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ReadManifest: %w", err)
	}

	return &m, nil
}
