package compose_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/compose"
	"github.com/katalvlaran/geokg/core"
	"github.com/katalvlaran/geokg/generator"
	"github.com/katalvlaran/geokg/registry"
)

// ComposeSuite covers products of registered geometries.
type ComposeSuite struct {
	suite.Suite
	reg *registry.Registry
}

func (s *ComposeSuite) SetupTest() {
	s.reg = registry.WithBuiltins()
}

func (s *ComposeSuite) geometry(name string, d core.Descriptor) builder.Geometry {
	g, err := s.reg.Resolve(name, d)
	s.Require().NoError(err)
	return g
}

// TestLineTimesLineIsGrid verifies m·n entities and m(n-1)+n(m-1) triples.
func (s *ComposeSuite) TestLineTimesLineIsGrid() {
	for _, mn := range [][2]int{{1, 1}, {2, 3}, {4, 4}, {5, 2}} {
		m, n := mn[0], mn[1]
		g, err := compose.Compose(
			s.geometry(builder.NameLine, core.Bounded(m)),
			s.geometry(builder.NameLine, core.Bounded(n)),
		)
		s.Require().NoError(err)
		s.Require().Equal("line*line", g.Name)

		ids, err := generator.Entities(g)
		s.Require().NoError(err)
		s.Require().Len(slices.Collect(ids), m*n)

		ts, err := generator.Collect(g)
		s.Require().NoError(err)
		s.Require().Len(ts, m*(n-1)+n*(m-1), "%dx%d", m, n)

		want, ok := generator.ExpectedTriples(g)
		s.Require().True(ok)
		s.Require().Len(ts, want)
	}
}

// TestNamespacedLabels keeps the two line factors apart.
func (s *ComposeSuite) TestNamespacedLabels() {
	g, err := compose.Compose(
		s.geometry(builder.NameLine, core.Bounded(2)),
		s.geometry(builder.NameLine, core.Bounded(2)),
	)
	s.Require().NoError(err)
	rels, err := generator.Relations(g)
	s.Require().NoError(err)
	s.Require().Equal([]string{"0:line.axis-0", "1:line.axis-0"}, rels)

	ts, err := generator.Collect(g)
	s.Require().NoError(err)
	s.Require().Equal([]core.Triple{
		{Head: "0,0", Relation: "0:line.axis-0", Tail: "1,0"},
		{Head: "0,0", Relation: "1:line.axis-0", Tail: "0,1"},
		{Head: "0,1", Relation: "0:line.axis-0", Tail: "1,1"},
		{Head: "1,0", Relation: "1:line.axis-0", Tail: "1,1"},
	}, ts)
}

// TestCylinder composes line × cycle and checks the wraparound survives.
func (s *ComposeSuite) TestCylinder() {
	g, err := compose.Compose(
		s.geometry(builder.NameLine, core.Bounded(3)),
		s.geometry(builder.NameCycle, core.Periodic(4)),
	)
	s.Require().NoError(err)
	s.Require().Equal([]bool{false, true}, g.Descriptor.Periodic)
	ts, err := generator.Collect(g)
	s.Require().NoError(err)
	s.Require().Len(ts, 2*4+3*4)
	s.Require().Contains(ts, core.Triple{Head: "2,3", Relation: "1:cycle.axis-0", Tail: "2,0"})
}

// TestAssociative checks (a×b)×c and a×(b×c) generate the same graph.
func (s *ComposeSuite) TestAssociative() {
	a := s.geometry(builder.NameLine, core.Bounded(2))
	b := s.geometry(builder.NameCycle, core.Periodic(3))
	c := s.geometry(builder.NameStar, core.Bounded(3))

	ab, err := compose.Compose(a, b)
	s.Require().NoError(err)
	left, err := compose.Compose(ab, c)
	s.Require().NoError(err)

	bc, err := compose.Compose(b, c)
	s.Require().NoError(err)
	right, err := compose.Compose(a, bc)
	s.Require().NoError(err)

	flat, err := compose.Compose(a, b, c)
	s.Require().NoError(err)

	s.Require().Equal(flat.Name, left.Name)
	s.Require().Equal(flat.Name, right.Name)
	s.Require().Equal(flat.Descriptor, left.Descriptor)

	want, err := generator.Collect(flat)
	s.Require().NoError(err)
	gotLeft, err := generator.Collect(left)
	s.Require().NoError(err)
	gotRight, err := generator.Collect(right)
	s.Require().NoError(err)
	s.Require().Equal(want, gotLeft)
	s.Require().Equal(want, gotRight)

	p, ok := flat.Rule.(*compose.Product)
	s.Require().True(ok)
	s.Require().Equal([]string{"line", "cycle", "star"}, p.Factors())
	s.Require().Equal(3, p.Dimensionality())
}

// TestDirectedProduct decorates namespaced labels.
func (s *ComposeSuite) TestDirectedProduct() {
	g, err := compose.Compose(
		s.geometry(builder.NameLine, core.Bounded(2).AsDirected(true)),
		s.geometry(builder.NameLine, core.Bounded(2).AsDirected(true)),
	)
	s.Require().NoError(err)
	s.Require().True(g.Descriptor.Directed)
	rels, err := generator.Relations(g, generator.WithInverse())
	s.Require().NoError(err)
	s.Require().Equal([]string{
		"0:line.axis-0-forward", "0:line.axis-0-backward",
		"1:line.axis-0-forward", "1:line.axis-0-backward",
	}, rels)
}

// TestErrors covers arity, mismatched direction and invalid operands.
func (s *ComposeSuite) TestErrors() {
	line := s.geometry(builder.NameLine, core.Bounded(3))

	_, err := compose.Compose(line)
	s.Require().ErrorIs(err, core.ErrInvalidGeometry)

	_, err = compose.Compose(line, s.geometry(builder.NameLine, core.Bounded(3).AsDirected(true)))
	s.Require().ErrorIs(err, core.ErrInvalidGeometry)

	bad := builder.Geometry{Name: "line", Descriptor: core.Bounded(0), Rule: builder.LineRule()}
	_, err = compose.Compose(line, bad)
	s.Require().ErrorIs(err, core.ErrInvalidGeometry)
}

func TestComposeSuite(t *testing.T) {
	suite.Run(t, new(ComposeSuite))
}

// TestRegisterComposite registers a product under a new name.
func TestRegisterComposite(t *testing.T) {
	reg := registry.WithBuiltins()
	line, err := reg.Resolve(builder.NameLine, core.Bounded(2))
	require.NoError(t, err)
	cycle, err := reg.Resolve(builder.NameCycle, core.Periodic(3))
	require.NoError(t, err)
	cyl, err := compose.Compose(line, cycle)
	require.NoError(t, err)

	require.NoError(t, reg.Register("cylinder", cyl.Rule))
	again, err := reg.Resolve("cylinder", cyl.Descriptor)
	require.NoError(t, err)
	ts, err := generator.Collect(again)
	require.NoError(t, err)
	require.Len(t, ts, 3+2*3)

	_, err = reg.Resolve("cylinder", core.Bounded(2, 3))
	require.ErrorIs(t, err, core.ErrInvalidGeometry, "cycle factor rejects a bounded axis")
}
