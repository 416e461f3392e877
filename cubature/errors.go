// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cubature implements the fully-symmetric cubature rules
// (degree 7, 9, 11 and 13) used by the adaptive integrator, together
// with the rule evaluator that applies a rule to a single region.
package cubature

import "github.com/cpmech/gosl/chk"

// Status is the outcome of one Integrator.Run call or rule evaluation.
type Status int

const (
	// StatusConverged indicates the convergence predicate was satisfied.
	StatusConverged Status = iota

	// StatusBudgetExhausted indicates the evaluation or region budget ran
	// out before convergence; result and error are still meaningful.
	StatusBudgetExhausted

	// StatusNonPositiveIntegral indicates the running result stayed
	// negative after one automatic budget-doubling retry.
	StatusNonPositiveIntegral
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusBudgetExhausted:
		return "BudgetExhausted"
	case StatusNonPositiveIntegral:
		return "NonPositiveIntegral"
	}
	return "Unknown"
}

// ErrInvalidKey reports a rule key that is invalid for the given dimension.
func ErrInvalidKey(key, ndim int) error {
	return chk.Err("InvalidKey: rule key=%d is not valid for dimension ndim=%d", key, ndim)
}

// ErrDimensionOutOfRange reports a dimension outside [2, maxdim].
func ErrDimensionOutOfRange(ndim, maxdim int) error {
	return chk.Err("DimensionOutOfRange: ndim=%d must satisfy 2 <= ndim <= %d", ndim, maxdim)
}

// ErrInvalidBox reports that some axis has upper <= lower.
func ErrInvalidBox(axis int, lo, hi float64) error {
	return chk.Err("InvalidBox: axis=%d has upper=%v <= lower=%v", axis, hi, lo)
}

// ErrBudgetTooSmall reports max_calls below the minimum 3*n_points.
func ErrBudgetTooSmall(maxCalls, nPoints int) error {
	return chk.Err("BudgetTooSmall: max_calls=%d is below the minimum 3*n_points=%d", maxCalls, 3*nPoints)
}

// PanicOnNaN implements the IntegrandReturnedNaN fatal condition. The
// original dcuhre routines fprintf to stderr and exit(1) from inside
// drlhre_/dfshre_ on the first NaN; we panic instead so the caller (or
// cmd/kelvcube's recover) controls the exit path.
func PanicOnNaN(where string, x []float64) {
	chk.Panic("IntegrandReturnedNaN: integrand returned NaN at x=%v (%s)", x, where)
}
