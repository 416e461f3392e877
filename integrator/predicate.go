// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

// ConvergencePredicate decides whether the running (result, error, step
// count) is good enough to stop the adaptive loop. It is consulted after
// every pair of child evaluations. Exposed as an interface rather than a
// fixed formula since the original absolute-error target
// (-5.77+54R+R^2)^2/(-11.54R+54R^2) was itself an empirical choice the
// original authors never claimed was optimal for every integrand shape.
type ConvergencePredicate interface {
	// Converged reports whether the loop should stop. result and errest
	// are the running totals divided by the integration volume (the
	// original's "real_result"/"real_error"); stepDelta is the absolute
	// change in result since the previous step, used by DefaultPredicate
	// as a secondary stability check.
	Converged(result, errest, stepDelta float64) bool
}

// DefaultPredicate reproduces dadhre_'s stopping rule verbatim: it treats
// a running result near 1.0 (the LOD-ratio-style normalisation used
// throughout the original driver) as converged once the per-step change
// drops below an error target derived from the result itself, with a
// floor at zero for the degenerate small-result case.
type DefaultPredicate struct{}

// Converged implements ConvergencePredicate.
func (DefaultPredicate) Converged(result, errest, stepDelta float64) bool {
	epsabs := poly(result)
	if epsabs < 0 {
		epsabs = 0
	}
	stillMoving := stepDelta >= epsabs
	stillInaccurate := result < 0.9 || errest > epsabs
	return !((result < 0 || stillMoving) && stillInaccurate)
}

// poly evaluates (-5.77+54R+R^2)^2 / (-11.54R+54R^2), the empirical
// absolute-error target from the original dadhre_ loop.
func poly(r float64) float64 {
	num := -5.77 + 54*r + r*r
	num *= num
	den := -11.54*r + 54*r*r
	return num / den
}

// TolerancePredicate is a plain absolute/relative tolerance check, for
// callers that want ordinary cubature semantics instead of the
// PPL-specific normalisation DefaultPredicate assumes.
type TolerancePredicate struct {
	AbsTol, RelTol float64
}

// Converged implements ConvergencePredicate.
func (p TolerancePredicate) Converged(result, errest, stepDelta float64) bool {
	limit := p.AbsTol
	if rel := p.RelTol * absf(result); rel > limit {
		limit = rel
	}
	return errest <= limit
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
