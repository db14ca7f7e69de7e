// SPDX-License-Identifier: MIT
// Package: geokg/compose
//
// product.go - the Product rule: factor-wise delegation over a concatenated space.
//
// Contract:
//   - Validate: dimensionality equals the sum of factor dimensionalities, each
//     factor accepts its sub-descriptor, and namespaced labels are unique.
//   - Labels are namespaced "<k>:<name>.<base>"; k is a digit run closed by
//     ':', so factors at different positions can never share a prefix.
//   - Steps(s, c, axis): delegate to the factor owning axis on c's sub-coordinate,
//     then splice the reached sub-coordinate back into a copy of c.
//   - Bind(s) precomputes every factor's sub-space once per generation.
//
// Complexity:
//   - Steps on a bound product: O(dim + cost of the factor's Steps) per call.
//   - Steps on an unbound product also rebuilds the factor's sub-space.

package compose

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/core"
)

// ErrRelationCollision indicates a product would emit the same namespaced
// relation label twice.
var ErrRelationCollision = errors.New("compose: relation label collision")

// NameSeparator joins factor names in a composite geometry name.
const NameSeparator = "*"

// factor is one operand of a product, placed at axes [offset, offset+dim).
type factor struct {
	name   string
	rule   builder.Rule
	offset int
	dim    int
	prefix string
}

// Product is the Cartesian-product rule over a flat list of factors.
type Product struct {
	factors []factor
}

// newProduct lays factors out left to right and assigns their label prefixes.
func newProduct(names []string, rules []builder.Rule, dims []int) *Product {
	p := &Product{factors: make([]factor, len(names))}
	offset := 0
	for k := range names {
		p.factors[k] = factor{
			name:   names[k],
			rule:   rules[k],
			offset: offset,
			dim:    dims[k],
			prefix: strconv.Itoa(k) + ":" + names[k] + ".",
		}
		offset += dims[k]
	}

	return p
}

// Factors returns the factor names in axis order.
func (p *Product) Factors() []string {
	names := make([]string, len(p.factors))
	for k, f := range p.factors {
		names[k] = f.name
	}

	return names
}

// Dimensionality returns the total number of axes the product spans.
func (p *Product) Dimensionality() int {
	dim := 0
	for _, f := range p.factors {
		dim += f.dim
	}

	return dim
}

// sub returns the factor's slice of d.
func (f factor) sub(d core.Descriptor) core.Descriptor {
	return d.Axes(f.offset, f.offset+f.dim)
}

// Validate checks the axis layout, every factor's shape and label uniqueness.
func (p *Product) Validate(d core.Descriptor) error {
	if want := p.Dimensionality(); d.Dimensionality != want {
		return fmt.Errorf("Product: dimensionality=%d, factors span %d: %w",
			d.Dimensionality, want, core.ErrInvalidGeometry)
	}
	for k, f := range p.factors {
		if err := f.rule.Validate(f.sub(d)); err != nil {
			return fmt.Errorf("Product: factor %d (%s): %w", k, f.name, err)
		}
	}
	owner := make(map[string]int)
	for k, f := range p.factors {
		for _, base := range f.rule.Relations(f.sub(d)) {
			label := f.prefix + base
			if prev, taken := owner[label]; taken {
				return fmt.Errorf("Product: label %q from factors %d and %d: %w",
					label, prev, k, ErrRelationCollision)
			}
			owner[label] = k
		}
	}

	return nil
}

// Relations returns every factor's labels, namespaced, in factor order.
func (p *Product) Relations(d core.Descriptor) []string {
	var labels []string
	for _, f := range p.factors {
		for _, base := range f.rule.Relations(f.sub(d)) {
			labels = append(labels, f.prefix+base)
		}
	}

	return labels
}

// Steps delegates axis to the factor that owns it. The factor's sub-space is
// rebuilt on every call; the generator goes through Bind instead.
func (p *Product) Steps(s core.Space, c core.Coordinate, axis int) []builder.Step {
	k := p.owner(axis)
	if k < 0 {
		return nil
	}
	subSpace, err := core.NewSpace(p.factors[k].sub(s.Descriptor()))
	if err != nil {
		return nil
	}

	return p.factors[k].steps(subSpace, c, axis)
}

// Bind precomputes the sub-space of every factor for s. The returned rule
// yields the same steps as p for coordinates of s.
func (p *Product) Bind(s core.Space) builder.Rule {
	// s does not fit the layout; leave p unbound.
	if s.Dimensionality() != p.Dimensionality() {
		return p
	}
	d := s.Descriptor()
	spaces := make([]core.Space, len(p.factors))
	for k, f := range p.factors {
		sub, err := core.NewSpace(f.sub(d))
		if err != nil {
			return p
		}
		spaces[k] = sub
	}

	return &boundProduct{Product: p, spaces: spaces}
}

// owner returns the index of the factor spanning axis, or -1.
func (p *Product) owner(axis int) int {
	for k, f := range p.factors {
		if axis >= f.offset && axis < f.offset+f.dim {
			return k
		}
	}

	return -1
}

// steps runs the factor's rule on c's sub-coordinate and splices each reached
// sub-coordinate back into a copy of c.
func (f factor) steps(sub core.Space, c core.Coordinate, axis int) []builder.Step {
	subC := c[f.offset : f.offset+f.dim].Clone()
	inner := f.rule.Steps(sub, subC, axis-f.offset)
	steps := make([]builder.Step, 0, len(inner))
	for _, st := range inner {
		to := c.Clone()
		copy(to[f.offset:], st.To)
		steps = append(steps, builder.Step{To: to, Relation: f.prefix + st.Relation})
	}

	return steps
}

// boundProduct is a Product with its factor sub-spaces fixed to one space.
type boundProduct struct {
	*Product
	spaces []core.Space
}

// Steps delegates axis to its owning factor over the cached sub-space.
func (b *boundProduct) Steps(_ core.Space, c core.Coordinate, axis int) []builder.Step {
	k := b.owner(axis)
	if k < 0 {
		return nil
	}

	return b.factors[k].steps(b.spaces[k], c, axis)
}

// EdgeCount is Σ_k count_k · (N / N_k) when every factor is a builder.Counter,
// and -1 otherwise.
func (p *Product) EdgeCount(d core.Descriptor) int {
	total := 1
	for _, e := range d.Extents {
		total *= e
	}
	count := 0
	for _, f := range p.factors {
		counter, ok := f.rule.(builder.Counter)
		if !ok {
			return -1
		}
		sub := f.sub(d)
		size := 1
		for _, e := range sub.Extents {
			size *= e
		}
		count += counter.EdgeCount(sub) * (total / size)
	}

	return count
}
