// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/nchgenetics/kelvcube/cubature"
	"github.com/nchgenetics/kelvcube/region"
)

// Result summarises one Run call.
type Result struct {
	Value   float64
	ErrEst  float64
	NEvals  int
	NRegion int
	Status  cubature.Status
	Tree    *region.Tree // retained so a caller can Dump the final partition
}

// VolRate converts the raw result/error accumulated over a box into the
// normalised quantity DefaultPredicate and the bayes package's
// PPL/Bayes-ratio formulas expect (the original "vol_rate", defaulting
// to 1 meaning no conversion).
type VolRate = float64

// Run drives the adaptive loop:
//
//	S0 evaluate the root region over [lo,hi]; seed the tree and running totals
//	S1 if Mode != ModeNormal, return after S0 (single-region sampling probe)
//	S2 while the predicate says "keep going" and the region budget allows:
//	     pop the worst-error leaf, split it along its recorded axis,
//	     evaluate both halves, fold their results into the running totals
//	S3 once MaxRegion is hit with a still-negative result, double the
//	   budget once and continue (matches the original's single retry)
//
// f is evaluated through cubature.Evaluate using the Integrator's shared
// RuleTable; scale is threaded across every call within the run, as in
// the original's per-subregion cur_scale bookkeeping promoted to a
// process-wide high-water mark.
func Run(itg *Integrator, f cubature.Integrand, volRate VolRate) Result {
	if volRate == 0 {
		volRate = 1
	}
	tree := region.NewTree()
	root := tree.CreateRoot(itg.cfg.Lo, itg.cfg.Hi)

	rootRegion := tree.Region(root)
	localResult, localError, splitAxis := cubature.Evaluate(itg.rule, rootRegion.Center, rootRegion.HWidth, f, &itg.scale)
	rootRegion.LocalResult = localResult
	rootRegion.LocalError = localError
	rootRegion.SplitAxis = splitAxis
	rootRegion.Scale = itg.scale
	tree.UpdateError(root)

	neval := itg.rule.NPoints
	nregion := 1
	result := localResult
	errest := localError
	doubled := false

	if itg.cfg.Mode != ModeNormal {
		return Result{Value: result, ErrEst: errest, NEvals: neval, NRegion: nregion,
			Status: cubature.StatusConverged, Tree: tree}
	}

	maxRegion := itg.cfg.MaxRegion
	tmpResult := result / volRate

	for nregion < maxRegion {
		realResult := result / volRate
		realError := errest / volRate
		stepDelta := absf(realResult - tmpResult)
		tmpResult = realResult

		if itg.cfg.Predicate.Converged(realResult, realError, stepDelta) {
			return Result{Value: result, ErrEst: errest, NEvals: neval, NRegion: nregion,
				Status: cubature.StatusConverged, Tree: tree}
		}
		if itg.cfg.MaxEvals != 0 && neval+2*itg.rule.NPoints > itg.cfg.MaxEvals {
			break
		}

		worst := tree.WorstLeaf()
		if worst < 0 {
			break
		}
		result -= tree.Region(worst).LocalResult
		errest -= tree.Region(worst).LocalError

		left, right := tree.Split(worst)
		if left < 0 {
			// bogus-blocked leaf; it can never be refined further, so
			// stop trying to improve past it this run.
			result += tree.Region(worst).LocalResult
			errest += tree.Region(worst).LocalError
			break
		}
		for _, idx := range [2]int{left, right} {
			rg := tree.Region(idx)
			lr, le, sa := cubature.Evaluate(itg.rule, rg.Center, rg.HWidth, f, &itg.scale)
			rg.LocalResult = lr
			rg.LocalError = le
			rg.SplitAxis = sa
			rg.Scale = itg.scale
			tree.UpdateError(idx)
			result += lr
			errest += le
		}
		neval += 2 * itg.rule.NPoints
		nregion += 2

		if nregion >= maxRegion && result/volRate < 0 && !doubled {
			maxRegion = 2*maxRegion + 1
			doubled = true
		}
	}

	status := cubature.StatusBudgetExhausted
	if result/volRate < 0 {
		status = cubature.StatusNonPositiveIntegral
	}
	return Result{Value: result, ErrEst: errest, NEvals: neval, NRegion: nregion,
		Status: status, Tree: tree}
}
