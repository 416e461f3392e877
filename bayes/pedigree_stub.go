// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// DemoLikelihood is a deterministic, seeded stand-in for a real pedigree
// collaborator's genotype-elimination likelihood. It is not statistically
// meaningful; it exists so Driver, the integrator and the accumulator
// can be exercised end to end (cmd/kelvcube's demo mode, and this
// package's own tests) without a real pedigree set.
//
// A production Likelihood walks SubLocusList/Pedigree structures built
// from a pedigree file and genetic map; that parsing and the polynomial
// likelihood evaluation it drives are out of scope here (see the
// Non-goals this package's driver document records).
type DemoLikelihood struct {
	nParams int
	seed    int64
	noise   []float64
}

// NewDemoLikelihood returns a DemoLikelihood over nParams penetrance
// parameters, seeded so repeated runs are bit-reproducible.
func NewDemoLikelihood(nParams int, seed int64) *DemoLikelihood {
	rnd.Init(int(seed))
	noise := make([]float64, nParams)
	for i := range noise {
		noise[i] = rnd.Float64(0.8, 1.2)
	}
	return &DemoLikelihood{nParams: nParams, seed: seed, noise: noise}
}

// NParams implements Likelihood.
func (d *DemoLikelihood) NParams() int { return d.nParams }

// HetLR implements Likelihood with a smooth, theta-peaked surrogate: it
// peaks at theta=0 and alpha=1 (complete linkage, no heterogeneity) and
// decays with distance from the ordered-penetrance centre, giving the
// integrator genuine curvature to adapt to without depending on any
// pedigree data.
func (d *DemoLikelihood) HetLR(theta, dprime, alpha float64, x []float64) float64 {
	linkage := math.Exp(-10 * theta * theta)
	ld := 1.0
	if dprime != 0 {
		ld = math.Exp(-4 * dprime * dprime)
	}
	het := 0.5 + 0.5*alpha

	shape := 1.0
	for i, xi := range x {
		center := 0.5 * d.noise[i%len(d.noise)]
		shape *= 1 + math.Cos(math.Pi*(xi-center))
	}
	return linkage * ld * het * shape
}
