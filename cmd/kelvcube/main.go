// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command kelvcube runs the Bayes-ratio linkage driver over a
// demonstration pedigree stand-in and prints the per-slice and summary
// PPL tables.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/lmittmann/tint"

	"github.com/nchgenetics/kelvcube/bayes"
)

func main() {
	var (
		nparams   = flag.Int("nparams", 3, "total penetrance parameter count (integration dimension), grouped three per liability class")
		seed      = flag.Int64("seed", 1, "deterministic seed for the demo likelihood")
		maxRegion = flag.Int("max-region", 200, "region budget for the adaptive integrator")
		prior     = flag.Float64("prior", 0.02, "prior probability of linkage")
		ldPrior   = flag.Float64("ld-prior", 0.5, "prior probability of linkage disequilibrium")
		weight    = flag.Float64("weight", 0.5, "small/large theta mixture weight")
		verbose   = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(logger)

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			slog.Error("kelvcube panicked", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("kelvcube starting", "nparams", *nparams, "seed", *seed, "maxRegion", *maxRegion)

	lik := bayes.NewDemoLikelihood(*nparams, *seed)
	opts := bayes.Options{
		Thetas:    []float64{0.001, 0.01, 0.05, 0.1, 0.2, 0.3, 0.4},
		Dprimes:   []float64{0},
		Prior:     *prior,
		LDPrior:   *ldPrior,
		Weight:    *weight,
		MaxRegion: *maxRegion,
		AbsTol:    1e-6,
		RelTol:    1e-6,
	}
	for _, p := range opts.Params() {
		slog.Debug("driver parameter", "name", p.N, "value", p.V)
	}
	driver := bayes.NewDriver(lik, opts)

	slices, acc, err := driver.Run()
	if err != nil {
		slog.Error("driver run failed", "error", err)
		os.Exit(1)
	}

	bayes.WriteSliceTable(os.Stdout, slices)
	peak := bayes.PeakSlice(slices)
	mod := math.Log10(peak.BayesRatio)
	bayes.WriteSummaryTable(os.Stdout, 0, "DEMO", 0, acc, mod)

	slog.Info("kelvcube finished", "slices", len(slices), "ppl", acc.PPL())
}
