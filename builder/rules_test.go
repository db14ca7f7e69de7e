package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/core"
)

func mustSpace(t *testing.T, d core.Descriptor) core.Space {
	t.Helper()
	s, err := core.NewSpace(d)
	require.NoError(t, err)
	return s
}

// stepIDs flattens the steps of c along axis into "label>id" strings.
func stepIDs(r builder.Rule, s core.Space, c core.Coordinate, axis int) []string {
	var out []string
	for _, st := range r.Steps(s, c, axis) {
		out = append(out, st.Relation+">"+st.To.ID())
	}
	return out
}

func TestLatticeSteps(t *testing.T) {
	r := builder.LatticeRule()
	d := core.Descriptor{Dimensionality: 2, Extents: []int{3, 4}, Periodic: []bool{false, true}}
	s := mustSpace(t, d)

	require.Equal(t, []string{"axis-0>1,3"}, stepIDs(r, s, core.Coordinate{0, 3}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{2, 3}, 0), "bounded axis stops at the edge")
	require.Equal(t, []string{"axis-1>2,0"}, stepIDs(r, s, core.Coordinate{2, 3}, 1), "periodic axis wraps")
	require.Equal(t, []string{"axis-0", "axis-1"}, r.Relations(d))
}

func TestLatticeStepDoesNotMutate(t *testing.T) {
	s := mustSpace(t, core.Bounded(3, 3))
	c := core.Coordinate{1, 1}
	_ = builder.GridRule().Steps(s, c, 0)
	require.Equal(t, core.Coordinate{1, 1}, c)
}

func TestLatticeShapes(t *testing.T) {
	cases := []struct {
		name string
		rule builder.Lattice
		d    core.Descriptor
		ok   bool
	}{
		{"line ok", builder.LineRule(), core.Bounded(5), true},
		{"line periodic", builder.LineRule(), core.Periodic(5), false},
		{"line 2d", builder.LineRule(), core.Bounded(5, 5), false},
		{"cycle ok", builder.CycleRule(), core.Periodic(5), true},
		{"cycle bounded", builder.CycleRule(), core.Bounded(5), false},
		{"grid ok", builder.GridRule(), core.Bounded(2, 3, 4), true},
		{"grid periodic axis", builder.GridRule(), core.Descriptor{Dimensionality: 2, Extents: []int{2, 2}, Periodic: []bool{false, true}}, false},
		{"torus ok", builder.TorusRule(), core.Periodic(3, 3), true},
		{"torus bounded axis", builder.TorusRule(), core.Bounded(3, 3), false},
		{"hypercube ok", builder.HypercubeRule(), core.Bounded(2, 2, 2, 2), true},
		{"hypercube extent", builder.HypercubeRule(), core.Bounded(2, 3), false},
		{"hypercube periodic", builder.HypercubeRule(), core.Periodic(2, 2), false},
		{"lattice anything", builder.LatticeRule(), core.Periodic(1, 7), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate(tc.d)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, core.ErrInvalidGeometry)
		})
	}
}

func TestLatticeEdgeCount(t *testing.T) {
	r := builder.LatticeRule()
	require.Equal(t, 4, r.EdgeCount(core.Bounded(5)))
	require.Equal(t, 5, r.EdgeCount(core.Periodic(5)))
	require.Equal(t, 1, r.EdgeCount(core.Periodic(2)))
	require.Equal(t, 2, r.EdgeCount(core.Periodic(2).AsDirected(true)))
	require.Equal(t, 0, r.EdgeCount(core.Periodic(1)))
	require.Equal(t, 3*3+4*2, r.EdgeCount(core.Bounded(3, 4)))
	require.Equal(t, 12, r.EdgeCount(core.Bounded(2, 2, 2)))
}

func TestStar(t *testing.T) {
	r := builder.StarRule()
	s := mustSpace(t, core.Bounded(2, 2))
	require.Equal(t, []string{"spoke>0,1", "spoke>1,0", "spoke>1,1"}, stepIDs(r, s, core.Coordinate{0, 0}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{0, 0}, 1))
	require.Empty(t, stepIDs(r, s, core.Coordinate{1, 0}, 0))
	require.Equal(t, 3, r.EdgeCount(core.Bounded(2, 2)))
	require.Equal(t, []string{builder.RelationSpoke}, r.Relations(core.Bounded(2, 2)))
}

func TestSinkStar(t *testing.T) {
	r := builder.SinkStarRule()
	s := mustSpace(t, core.Bounded(2, 2))
	require.Empty(t, stepIDs(r, s, core.Coordinate{0, 0}, 0), "the hub emits nothing")
	require.Equal(t, []string{"spoke>0,0"}, stepIDs(r, s, core.Coordinate{0, 1}, 0))
	require.Equal(t, []string{"spoke>0,0"}, stepIDs(r, s, core.Coordinate{1, 1}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{1, 1}, 1))
	require.Equal(t, 3, r.EdgeCount(core.Bounded(2, 2)))
	require.Equal(t, 0, r.EdgeCount(core.Bounded(1)))
	require.Equal(t, []string{builder.RelationSpoke}, r.Relations(core.Bounded(2, 2)))
}

func TestHexagonal(t *testing.T) {
	r := builder.HexagonalRule()
	d := core.Bounded(3, 4)
	require.NoError(t, r.Validate(d))
	s := mustSpace(t, d)

	require.Equal(t, []string{"axis-1>0,1"}, stepIDs(r, s, core.Coordinate{0, 0}, 1))
	require.Empty(t, stepIDs(r, s, core.Coordinate{0, 3}, 1), "rows end at the last column")
	require.Equal(t, []string{"axis-0>1,0"}, stepIDs(r, s, core.Coordinate{0, 0}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{0, 1}, 0), "odd parity has no rung")
	require.Equal(t, []string{"axis-0>2,1"}, stepIDs(r, s, core.Coordinate{1, 1}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{2, 0}, 0), "last row has no rung")

	// 3 rows × 3 row edges, rungs at (0,0) (0,2) (1,1) (1,3).
	require.Equal(t, 13, r.EdgeCount(d))
	require.Equal(t, 0, r.EdgeCount(core.Bounded(1, 1)))
	require.Equal(t, 3, r.EdgeCount(core.Bounded(2, 2)))

	// Brute-force the degree bound and the count over a few shapes.
	for _, shape := range [][]int{{1, 5}, {2, 3}, {4, 4}, {5, 6}, {6, 1}} {
		d := core.Bounded(shape...)
		s := mustSpace(t, d)
		degree := make(map[string]int)
		edges := 0
		for c := range s.All() {
			for axis := 0; axis < 2; axis++ {
				for _, st := range r.Steps(s, c, axis) {
					edges++
					degree[c.ID()]++
					degree[st.To.ID()]++
				}
			}
		}
		require.Equal(t, r.EdgeCount(d), edges, "shape %v", shape)
		for id, deg := range degree {
			require.LessOrEqual(t, deg, 3, "vertex %s in %v", id, shape)
		}
	}

	require.ErrorIs(t, r.Validate(core.Bounded(3)), core.ErrInvalidGeometry)
	require.ErrorIs(t, r.Validate(core.Bounded(2, 2, 2)), core.ErrInvalidGeometry)
	require.ErrorIs(t, r.Validate(core.Periodic(3, 4)), core.ErrInvalidGeometry)
}

func TestWheel(t *testing.T) {
	r := builder.WheelRule()
	s := mustSpace(t, core.Bounded(5))
	require.Equal(t, []string{"spoke>1", "spoke>2", "spoke>3", "spoke>4"}, stepIDs(r, s, core.Coordinate{0}, 0))
	require.Equal(t, []string{"rim>3"}, stepIDs(r, s, core.Coordinate{2}, 0))
	require.Equal(t, []string{"rim>1"}, stepIDs(r, s, core.Coordinate{4}, 0), "rim closes back to the first rim point")
	require.Equal(t, 8, r.EdgeCount(core.Bounded(5)))

	require.NoError(t, r.Validate(core.Bounded(2, 2)))
	require.ErrorIs(t, r.Validate(core.Bounded(3)), core.ErrInvalidGeometry)
}

func TestComplete(t *testing.T) {
	r := builder.CompleteRule()
	s := mustSpace(t, core.Bounded(4))
	require.Equal(t, []string{"link>2", "link>3"}, stepIDs(r, s, core.Coordinate{1}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{3}, 0))
	require.Equal(t, 6, r.EdgeCount(core.Bounded(4)))
	require.Equal(t, 0, r.EdgeCount(core.Bounded(1)))
}

func TestBarbell(t *testing.T) {
	r := builder.BarbellRule()
	d := core.Bounded(2, 3)
	require.NoError(t, r.Validate(d))
	s := mustSpace(t, d)

	require.Equal(t, []string{"bridge>1,0"}, stepIDs(r, s, core.Coordinate{0, 0}, 0))
	require.Empty(t, stepIDs(r, s, core.Coordinate{1, 0}, 0))
	require.Equal(t, []string{"clique>1,1", "clique>1,2"}, stepIDs(r, s, core.Coordinate{1, 0}, 1))
	require.Equal(t, 7, r.EdgeCount(d))

	require.ErrorIs(t, r.Validate(core.Bounded(3, 3)), core.ErrInvalidGeometry)
	require.ErrorIs(t, r.Validate(core.Bounded(2)), core.ErrInvalidGeometry)
}

func TestGeometryValidate(t *testing.T) {
	g := builder.Geometry{Name: "line", Descriptor: core.Bounded(3), Rule: builder.LineRule()}
	require.NoError(t, g.Validate())

	g.Rule = nil
	require.ErrorIs(t, g.Validate(), core.ErrInvalidGeometry)

	g = builder.Geometry{Name: "line", Descriptor: core.Bounded(0), Rule: builder.LineRule()}
	require.ErrorIs(t, g.Validate(), core.ErrInvalidGeometry)
}

func TestAxisRelation(t *testing.T) {
	require.Equal(t, "axis-0", builder.AxisRelation(0))
	require.Equal(t, "axis-12", builder.AxisRelation(12))
}
