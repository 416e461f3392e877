// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bayes implements the Bayes-ratio linkage driver: for each
// theta/D-prime slice of a pedigree's likelihood surface it integrates
// over the penetrance/heterogeneity parameters via the integrator
// package, mixes the result across a five-point alpha grid, and folds
// the slices into closed-form PPL/LD-PPL/PPLD statistics.
package bayes

import (
	"log/slog"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/nchgenetics/kelvcube/cubature"
	"github.com/nchgenetics/kelvcube/integrator"
)

// alphaGrid is the five-point heterogeneity mixture (alpha value, weight)
// transcribed verbatim from the original driver's alpha[5][2] table.
var alphaGrid = [5][2]float64{
	{0.04691, 0.118463443},
	{0.230765, 0.239314335},
	{0.5, 0.284444444},
	{0.769235, 0.239314335},
	{0.95309, 0.118463443},
}

// Likelihood computes a pedigree's heterogeneity likelihood ratio at one
// point in penetrance/alpha space. A real implementation walks a
// pedigree set's genotype elimination and polynomial evaluation; this
// package only consumes the interface (see pedigree_stub.go for a
// deterministic stand-in used by tests and cmd/kelvcube's demo mode).
type Likelihood interface {
	// HetLR returns the heterogeneity likelihood ratio at theta, dprime,
	// alpha and the penetrance vector x (already reparameterised to the
	// unit cube by a Jacobian).
	HetLR(theta, dprime, alpha float64, x []float64) float64

	// NParams returns the dimension of the penetrance parameter vector
	// HetLR expects.
	NParams() int
}

// SliceResult is one theta/D-prime slice's integrated Bayes ratio.
type SliceResult struct {
	Theta, Dprime float64
	BayesRatio    float64
	ErrEst        float64
	NEvals        int
	Status        cubature.Status
}

// ErrNullLikelihoodZero reports that the theta=0.5 reference slice (the
// original driver's one-shot null-hypothesis evaluation) integrated to
// exactly zero, marking the data as inconsistent with the null and
// making every downstream PPL/LD-PPL/PPLD ratio meaningless.
func ErrNullLikelihoodZero(dprime float64) error {
	return chk.Err("NullLikelihoodZero: theta=0.5 reference slice at dprime=%v integrated to zero", dprime)
}

// Options controls a Driver's slicing and integration budget.
type Options struct {
	Thetas  []float64 // theta grid to evaluate (0 excluded implicitly by caller)
	Dprimes []float64 // D' grid; a single 0 entry means linkage equilibrium
	Prior   float64   // modelOptions.prior
	LDPrior float64   // modelOptions.LDprior
	Weight  float64   // modelOptions.thetaWeight, the small/large-theta split weight

	MaxRegion int
	AbsTol    float64
	RelTol    float64
}

// Driver runs the adaptive integrator once per (theta, dprime) slice,
// mixing over the alpha grid inside each slice's integrand, and
// accumulates the slices into an Accumulator.
type Driver struct {
	lik  Likelihood
	opts Options
}

// NewDriver returns a Driver over lik with the given Options.
func NewDriver(lik Likelihood, opts Options) *Driver {
	return &Driver{lik: lik, opts: opts}
}

// Params exposes the driver's scalar configuration as named parameters,
// following the [N,V]-pair convention the rest of the corpus uses for
// model parameters rather than a bespoke config struct dump.
func (o Options) Params() []*fun.Prm {
	return []*fun.Prm{
		{N: "prior", V: o.Prior},
		{N: "ldprior", V: o.LDPrior},
		{N: "thetaweight", V: o.Weight},
		{N: "abstol", V: o.AbsTol},
		{N: "reltol", V: o.RelTol},
	}
}

// Run integrates every configured (theta, dprime) slice and returns one
// SliceResult per slice plus the folded Accumulator.
//
// Before the theta grid is walked, Run evaluates the theta=0.5 reference
// slice for each D' (the original's one-shot null-likelihood check): a
// slice that integrates to exactly zero is fatal and aborts the run,
// since every closed-form PPL formula divides by quantities derived
// from it. Soft statuses (BudgetExhausted, NonPositiveIntegral) on any
// slice, reference or grid, are logged as warnings and the run
// continues with the best estimate, per the driver's error-propagation
// contract.
func (d *Driver) Run() ([]SliceResult, *Accumulator, error) {
	acc := NewAccumulator(d.opts.Weight, d.opts.Prior, d.opts.LDPrior)

	for _, dprime := range d.opts.Dprimes {
		ref, err := d.integrateSlice(unlinkedTheta, dprime)
		if err != nil {
			return nil, nil, err
		}
		if ref.BayesRatio == 0 {
			return nil, nil, ErrNullLikelihoodZero(dprime)
		}
		warnSoftStatus(ref)
		acc.AddUnlinked(dprime, ref.BayesRatio)
	}

	slices := make([]SliceResult, 0, len(d.opts.Thetas)*len(d.opts.Dprimes))
	for _, theta := range d.opts.Thetas {
		for _, dprime := range d.opts.Dprimes {
			res, err := d.integrateSlice(theta, dprime)
			if err != nil {
				return nil, nil, err
			}
			warnSoftStatus(res)
			slices = append(slices, res)
			acc.Add(theta, dprime, res.BayesRatio)
		}
	}
	return slices, acc, nil
}

// warnSoftStatus translates the soft integrator statuses into warnings,
// per the driver's contract of continuing past BudgetExhausted and
// NonPositiveIntegral rather than failing the run.
func warnSoftStatus(res SliceResult) {
	switch res.Status {
	case cubature.StatusBudgetExhausted:
		slog.Warn("integration budget exhausted", "theta", res.Theta, "dprime", res.Dprime, "result", res.BayesRatio, "err_est", res.ErrEst)
	case cubature.StatusNonPositiveIntegral:
		slog.Warn("integration result stayed non-positive after retry", "theta", res.Theta, "dprime", res.Dprime, "result", res.BayesRatio)
	}
}

// PeakSlice returns the slice with the greatest Bayes ratio (the
// theta/D' combination driving the overall statistic), following the
// original driver's habit of reporting a single maximum-likelihood
// point alongside the integrated PPL.
func PeakSlice(slices []SliceResult) SliceResult {
	ratios := make([]float64, len(slices))
	for i, s := range slices {
		ratios[i] = s.BayesRatio
	}
	_, argmax := utl.DblArgMinMax(ratios)
	return slices[argmax]
}

func (d *Driver) integrateSlice(theta, dprime float64) (SliceResult, error) {
	ndim := d.lik.NParams()
	lo := make([]float64, ndim)
	hi := make([]float64, ndim)
	for i := range hi {
		hi[i] = 1
	}

	f := cubature.Plain(func(u []float64, scale *int) float64 {
		x, jac := ApplyJacobian(u)
		var mixed float64
		for _, ag := range alphaGrid {
			alphaV, weight := ag[0], ag[1]
			hetLR := d.lik.HetLR(theta, dprime, alphaV, x)
			mixed += hetLR * weight
		}
		return mixed * jac
	})

	cfg := integrator.Config{
		Ndim: ndim, Lo: lo, Hi: hi,
		MaxRegion: d.opts.MaxRegion,
		Predicate: integrator.TolerancePredicate{AbsTol: d.opts.AbsTol, RelTol: d.opts.RelTol},
	}
	itg, err := integrator.New(cfg)
	if err != nil {
		return SliceResult{}, err
	}
	res := integrator.Run(itg, f, 1)
	return SliceResult{
		Theta: theta, Dprime: dprime,
		BayesRatio: res.Value, ErrEst: res.ErrEst, NEvals: res.NEvals,
		Status: res.Status,
	}, nil
}
