// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

// smallThetaBound splits a theta grid into the "small theta" (linked)
// and "large theta" buckets the original driver sums separately before
// mixing by thetaWeight. The theta=0.5 reference slice (the original's
// one-shot null-likelihood reference) goes to its own "unlinked" bucket
// through AddUnlinked; Add itself routes every theta >= smallThetaBound,
// 0.5 included, to the large-theta sum.
const smallThetaBound = 0.05

// unlinkedTheta is the fixed recombination fraction the original driver
// treats as the null (no-linkage) reference point, evaluated once per
// marker outside the theta grid proper.
const unlinkedTheta = 0.5

// Accumulator folds per-slice Bayes ratios into the six named buckets
// (LE/LD crossed with small-theta/large-theta/unlinked) the closed-form
// PPL/LD-PPL/PPLD formulas and the six-region diagnostic output read
// from, following the low_theta_integral/high_theta_integral/
// low_integral/high_integral split the original compute loop
// accumulates inline, plus the separate theta=0.5 reference evaluation
// the original runs before that loop.
type Accumulator struct {
	weight, prior, ldPrior float64

	SmallTheta float64 // low_theta_integral: LE, small-theta slices
	LargeTheta float64 // high_theta_integral: LE, large-theta slices
	Unlinked   float64 // LE, theta=0.5 reference slice

	SmallThetaLD float64 // low_integral: LD, small-theta slices
	LargeThetaLD float64 // high_integral: LD, large-theta slices
	UnlinkedLD   float64 // LD, theta=0.5 reference slice

	hasLD bool
}

// NewAccumulator returns an empty Accumulator parameterised by the same
// weight/prior values a Driver was configured with.
func NewAccumulator(weight, prior, ldPrior float64) *Accumulator {
	return &Accumulator{weight: weight, prior: prior, ldPrior: ldPrior}
}

// Add folds one slice's Bayes ratio into the appropriate bucket. Callers
// integrating the theta=0.5 reference slice go through AddUnlinked
// instead.
func (a *Accumulator) Add(theta, dprime, bayesRatio float64) {
	small := theta < smallThetaBound
	if dprime == 0 {
		if small {
			a.SmallTheta += bayesRatio
		} else {
			a.LargeTheta += bayesRatio
		}
		return
	}
	a.hasLD = true
	if small {
		a.SmallThetaLD += bayesRatio
	} else {
		a.LargeThetaLD += bayesRatio
	}
}

// AddUnlinked folds the theta=0.5 null-reference slice's Bayes ratio
// into the LE or LD unlinked bucket.
func (a *Accumulator) AddUnlinked(dprime, bayesRatio float64) {
	if dprime == 0 {
		a.Unlinked += bayesRatio
		return
	}
	a.hasLD = true
	a.UnlinkedLD += bayesRatio
}

// PPL computes the posterior probability of linkage from the D'=0
// theta buckets, ported verbatim from the original's ppl formula.
func (a *Accumulator) PPL() float64 {
	ppl := a.weight*a.SmallTheta + (1-a.weight)*a.LargeTheta
	return ppl / (ppl + (1-a.prior)/a.prior)
}

// LDPPL computes the LD-aware posterior probability of linkage, valid
// only when the driver was run over a non-trivial D' grid.
func (a *Accumulator) LDPPL() float64 {
	ldppl := a.weight*a.SmallThetaLD + (1-a.weight)*a.LargeThetaLD
	return ldppl / (ldppl + (1-a.prior)/a.prior)
}

// PPLD computes the posterior probability of linkage disequilibrium
// given linkage, ported verbatim from the original's ppld formula.
func (a *Accumulator) PPLD() float64 {
	lowLD := a.SmallThetaLD * a.ldPrior * a.weight
	denom := lowLD + (1-a.ldPrior)*a.weight*a.SmallTheta + (1-a.weight)*a.LargeTheta
	return lowLD / denom
}

// HasLD reports whether any D'!=0 slice was ever added, i.e. whether
// LDPPL/PPLD are meaningful (the original's equilibrium != LINKAGE_EQUILIBRIUM guard).
func (a *Accumulator) HasLD() bool {
	return a.hasLD
}

// SixMasses returns the six integrated mass values the diagnostic
// output prints per marker, in the fixed column order LD small-theta,
// LD big-theta, LD unlinked, LE small-theta, LE big-theta, LE unlinked.
func (a *Accumulator) SixMasses() [6]float64 {
	return [6]float64{
		a.SmallThetaLD, a.LargeThetaLD, a.UnlinkedLD,
		a.SmallTheta, a.LargeTheta, a.Unlinked,
	}
}
