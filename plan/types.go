// SPDX-License-Identifier: MIT
// Package: geokg/plan
//
// types.go - plan file schema.

package plan

import (
	"github.com/katalvlaran/geokg/core"
)

// Plan is a batch of generation instances sharing an output directory.
type Plan struct {
	// Output is the directory receiving one subdirectory per instance.
	Output string `yaml:"output" toml:"output" validate:"required"`
	// Concurrency bounds parallel instances; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency" toml:"concurrency" validate:"min=0"`
	// Instances are generated independently.
	Instances []Instance `yaml:"instances" toml:"instances" validate:"required,min=1,dive"`
}

// Instance is one geometry to generate: either Geometry+Extents or Factors.
type Instance struct {
	Name     string   `yaml:"name" toml:"name" validate:"required,excludesall=/"`
	Geometry string   `yaml:"geometry,omitempty" toml:"geometry" validate:"required_without=Factors"`
	Extents  []int    `yaml:"extents,omitempty" toml:"extents" validate:"required_without=Factors,dive,min=1"`
	Periodic []bool   `yaml:"periodic,omitempty" toml:"periodic"`
	Factors  []Factor `yaml:"factors,omitempty" toml:"factors" validate:"omitempty,min=2,dive"`
	Directed bool     `yaml:"directed" toml:"directed"`
	// Inverse adds "-backward" triples to directed instances.
	Inverse bool `yaml:"inverse" toml:"inverse"`
	// Indexed writes integer triples instead of labels.
	Indexed bool `yaml:"indexed" toml:"indexed"`
}

// Factor is one operand of a product instance. It inherits Directed from
// its instance.
type Factor struct {
	Geometry string `yaml:"geometry" toml:"geometry" validate:"required"`
	Extents  []int  `yaml:"extents" toml:"extents" validate:"required,min=1,dive,min=1"`
	Periodic []bool `yaml:"periodic,omitempty" toml:"periodic"`
}

// descriptor builds a Descriptor; omitted periodic flags mean bounded axes.
func descriptor(extents []int, periodic []bool, directed bool) core.Descriptor {
	if len(periodic) == 0 {
		periodic = make([]bool, len(extents))
	}

	return core.Descriptor{
		Dimensionality: len(extents),
		Extents:        append([]int(nil), extents...),
		Periodic:       append([]bool(nil), periodic...),
		Directed:       directed,
	}
}

// Descriptor returns the instance's own shape (meaningless for product instances).
func (in Instance) Descriptor() core.Descriptor {
	return descriptor(in.Extents, in.Periodic, in.Directed)
}

// Descriptor returns the factor's shape under the instance's directedness.
func (f Factor) Descriptor(directed bool) core.Descriptor {
	return descriptor(f.Extents, f.Periodic, directed)
}
