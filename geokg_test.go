package geokg_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokg"
	"github.com/katalvlaran/geokg/builder"
	"github.com/katalvlaran/geokg/core"
	"github.com/katalvlaran/geokg/generator"
	"github.com/katalvlaran/geokg/registry"
)

func TestGenerateUnknownGeometry(t *testing.T) {
	seq, err := geokg.Generate("moebius", 1, []int{3}, []bool{false}, false)
	require.ErrorIs(t, err, registry.ErrUnknownGeometry)
	require.Nil(t, seq)
}

func TestGenerateInvalidDescriptor(t *testing.T) {
	_, err := geokg.Generate("grid", 2, []int{3}, []bool{false, false}, false)
	require.ErrorIs(t, err, core.ErrInvalidGeometry)

	_, err = geokg.Generate("line", 1, []int{0}, []bool{false}, false)
	require.ErrorIs(t, err, core.ErrInvalidGeometry)
}

func TestGenerateHypercube(t *testing.T) {
	seq, err := geokg.Generate("hypercube", 3, []int{2, 2, 2}, []bool{false, false, false}, false)
	require.NoError(t, err)
	ts := slices.Collect(seq)
	require.Len(t, ts, 12)

	entities := map[string]bool{}
	for _, tr := range ts {
		entities[tr.Head], entities[tr.Tail] = true, true
	}
	require.Len(t, entities, 8)
}

func TestGenerateDirectedInverse(t *testing.T) {
	seq, err := geokg.Generate("cycle", 1, []int{3}, []bool{true}, true, generator.WithInverse())
	require.NoError(t, err)
	require.Len(t, slices.Collect(seq), 6)
}

func TestComposeFacade(t *testing.T) {
	a, err := geokg.Resolve("line", core.Bounded(3))
	require.NoError(t, err)
	b, err := geokg.Resolve("line", core.Bounded(4))
	require.NoError(t, err)
	c, err := geokg.Resolve("cycle", core.Periodic(2))
	require.NoError(t, err)

	g, err := geokg.Compose(a, b)
	require.NoError(t, err)
	ts, err := generator.Collect(g)
	require.NoError(t, err)
	require.Len(t, ts, 3*3+4*2)

	g3, err := geokg.Compose(a, b, c)
	require.NoError(t, err)
	require.Equal(t, "line*line*cycle", g3.Name)
	require.Equal(t, 3, g3.Descriptor.Dimensionality)
}

func TestListAndRegister(t *testing.T) {
	names := geokg.ListGeometries()
	require.True(t, slices.IsSorted(names))
	require.Subset(t, names, []string{"line", "cycle", "grid", "hypercube", "star"})

	name := "ring-" + uuid.NewString()
	require.NoError(t, geokg.Register(name, builder.CycleRule()))
	require.Contains(t, geokg.ListGeometries(), name)
	require.ErrorIs(t, geokg.Register(name, builder.CycleRule()), registry.ErrDuplicateGeometry)
}

func ExampleGenerate() {
	seq, err := geokg.Generate("grid", 2, []int{2, 2}, []bool{false, false}, false)
	if err != nil {
		panic(err)
	}
	for t := range seq {
		fmt.Println(t.Head, t.Relation, t.Tail)
	}
	// Output:
	// 0,0 axis-0 1,0
	// 0,0 axis-1 0,1
	// 0,1 axis-0 1,1
	// 1,0 axis-1 1,1
}
