package plan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geokg/plan"
	"github.com/katalvlaran/geokg/registry"
)

func TestRunnerMetrics(t *testing.T) {
	out := t.TempDir()
	m := plan.NewMetrics("geokg")
	runner := plan.NewRunner(plan.WithRegistry(registry.WithBuiltins()), plan.WithMetrics(m))

	_, err := runner.Run(context.Background(), &plan.Plan{
		Output: out,
		Instances: []plan.Instance{
			{Name: "a", Geometry: "line", Extents: []int{5}},
			{Name: "b", Geometry: "line", Extents: []int{3}},
			{Name: "c", Geometry: "complete", Extents: []int{4}},
		},
	})
	require.NoError(t, err)

	require.Equal(t, 3.0, testutil.ToFloat64(m.Instances.WithLabelValues(plan.StatusOK)))
	require.Equal(t, 0.0, testutil.ToFloat64(m.Instances.WithLabelValues(plan.StatusFailed)))
	require.Equal(t, 6.0, testutil.ToFloat64(m.Triples.WithLabelValues("line")))
	require.Equal(t, 8.0, testutil.ToFloat64(m.Entities.WithLabelValues("line")))
	require.Equal(t, 6.0, testutil.ToFloat64(m.Triples.WithLabelValues("complete")))

	path := filepath.Join(out, "geokg.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `geokg_triples_generated_total{geometry="line"} 6`)
}

func TestWithMetricsPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { plan.WithMetrics(nil) })
}
