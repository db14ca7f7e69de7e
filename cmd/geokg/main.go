// SPDX-License-Identifier: MIT
//
// Command geokg generates geometric synthetic knowledge graphs.
//
// Single geometry, labelled triples on stdout:
//
//	geokg -geometry torus -extents 4,5
//	geokg -geometry line -extents 10 -directed -inverse
//
// Batch run from a plan file:
//
//	geokg -plan experiments.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/geokg"
	"github.com/katalvlaran/geokg/generator"
	"github.com/katalvlaran/geokg/plan"
	"github.com/katalvlaran/geokg/tsv"
)

func main() {
	loadDotEnv()

	planPath := flag.String("plan", "", "Run every instance of a YAML or TOML plan file")
	metricsOut := flag.String("metrics-out", "", "With -plan, write Prometheus metrics to this file")
	list := flag.Bool("list", false, "List registered geometries and exit")
	geometry := flag.String("geometry", "", "Geometry name for a single generation")
	extents := flag.String("extents", "", "Comma-separated axis extents, e.g. 3,4")
	periodic := flag.String("periodic", "", "Comma-separated periodic flags, e.g. true,false (default all bounded)")
	directed := flag.Bool("directed", false, "Generate directed relations")
	inverse := flag.Bool("inverse", false, "Also emit -backward triples for directed geometries")
	env := flag.String("env", getEnv(envProfile, "development"), "Logger profile: development or production")
	logfile := flag.String("log-file", getEnv(envLogfile, ""), "Also write JSON logs to this rotating file")
	logMaxSize := flag.Int("log-max-size", getEnvInt(envLogMaxSize, 100), "Log file size in megabytes before rotation")
	logMaxAge := flag.Int("log-max-age", getEnvInt(envLogMaxAge, 28), "Days to keep rotated log files")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "[geokg]")
		fmt.Fprintln(os.Stderr, "\tSynthetic knowledge graphs with geometric structure")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options Description:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "\tgeokg -geometry grid -extents 3,4 > grid.tsv")
		fmt.Fprintln(os.Stderr, "\tgeokg -plan experiments.yaml")
		fmt.Fprintln(os.Stderr, "\tgeokg -list")
	}
	flag.Parse()

	if *list {
		for _, name := range geokg.ListGeometries() {
			fmt.Println(name)
		}
		return
	}

	logger, err := newLogger(logConfig{
		Env:     *env,
		Logfile: *logfile,
		MaxSize: *logMaxSize,
		MaxAge:  *logMaxAge,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	switch {
	case *planPath != "":
		err = runPlan(logger, *planPath, *metricsOut)
	case *geometry != "":
		err = runSingle(logger, *geometry, *extents, *periodic, *directed, *inverse)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("geokg failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func runPlan(logger *zap.Logger, path, metricsOut string) error {
	p, err := plan.Load(path)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	metrics := plan.NewMetrics("geokg")
	_, err = plan.NewRunner(plan.WithLogger(logger), plan.WithMetrics(metrics)).Run(ctx, p)
	if metricsOut != "" {
		if werr := metrics.WriteTextfile(metricsOut); werr != nil && err == nil {
			err = werr
		}
	}

	return err
}

func runSingle(logger *zap.Logger, name, extents, periodic string, directed, inverse bool) error {
	ext, err := parseInts(extents)
	if err != nil {
		return fmt.Errorf("-extents: %w", err)
	}
	per, err := parseBools(periodic, len(ext))
	if err != nil {
		return fmt.Errorf("-periodic: %w", err)
	}
	opts := []generator.Option{generator.WithLogger(logger)}
	if inverse {
		opts = append(opts, generator.WithInverse())
	}
	seq, err := geokg.Generate(name, len(ext), ext, per, directed, opts...)
	if err != nil {
		return err
	}
	n, err := tsv.WriteTriples(os.Stdout, seq)
	if err != nil {
		return err
	}
	logger.Info("triples written", zap.String("geometry", name), zap.Int("triples", n))

	return nil
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("at least one extent is required")
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// parseBools reads n comma-separated flags; empty means n false values and a
// single value is broadcast to every axis.
func parseBools(s string, n int) ([]bool, error) {
	out := make([]bool, n)
	if s == "" {
		return out, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != n {
		return nil, fmt.Errorf("got %d flags for %d axes", len(parts), n)
	}
	for i := range out {
		p := parts[0]
		if len(parts) == n {
			p = parts[i]
		}
		v, err := strconv.ParseBool(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
