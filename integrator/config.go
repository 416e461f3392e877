// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator drives the adaptive region-splitting loop: it
// repeatedly picks the current leaf with greatest error, bisects it
// along its recorded split axis, re-evaluates both halves with the
// cubature rule, and stops once a ConvergencePredicate is satisfied or
// the evaluation/region budget runs out.
package integrator

import "github.com/nchgenetics/kelvcube/cubature"

// Mode selects how the adaptive loop treats the integrand, matching the
// original sampling_mode switch.
type Mode int

const (
	// ModeNormal runs the full adaptive loop to convergence or exhaustion.
	ModeNormal Mode = iota

	// ModeSamplingCollect evaluates the root region exactly once and
	// returns, letting a Sampling integrand record every rule point it
	// was shown instead of driving the loop to convergence.
	ModeSamplingCollect

	// ModeSingleSplitDirection is handled by Run exactly like
	// ModeSamplingCollect; the axis the single evaluation would split on
	// is read from the root region's SplitAxis in Result.Tree, for a
	// caller that wants to probe a region's curvature once.
	ModeSingleSplitDirection
)

// Config bundles the construction-time parameters of an Integrator.
type Config struct {
	Ndim int
	Key  int // 0 = auto, per cubature.NewRuleTable

	Lo, Hi []float64 // integration box

	MaxEvals  int // evaluation budget (0 = unbounded)
	MaxRegion int // region-count budget; doubled once on a negative running result

	AbsTol, RelTol float64 // not read by New or Run; a TolerancePredicate carries its own AbsTol/RelTol

	Mode Mode

	Predicate ConvergencePredicate // nil selects DefaultPredicate
}

// Integrator owns one RuleTable and drives the adaptive loop described in
// Run's doc comment.
type Integrator struct {
	cfg   Config
	rule  *cubature.RuleTable
	scale int
}

// New validates cfg and builds the RuleTable it will reuse across every
// region evaluation.
func New(cfg Config) (*Integrator, error) {
	if len(cfg.Lo) != cfg.Ndim || len(cfg.Hi) != cfg.Ndim {
		return nil, ErrBoxDimMismatch(cfg.Ndim, len(cfg.Lo), len(cfg.Hi))
	}
	for i := range cfg.Lo {
		if cfg.Hi[i] <= cfg.Lo[i] {
			return nil, cubature.ErrInvalidBox(i, cfg.Lo[i], cfg.Hi[i])
		}
	}
	rule, err := cubature.NewRuleTable(cfg.Key, cfg.Ndim)
	if err != nil {
		return nil, err
	}
	if cfg.MaxEvals != 0 && cfg.MaxEvals < 3*rule.NPoints {
		return nil, cubature.ErrBudgetTooSmall(cfg.MaxEvals, rule.NPoints)
	}
	if cfg.MaxRegion <= 0 {
		cfg.MaxRegion = 200
	}
	if cfg.Predicate == nil {
		cfg.Predicate = DefaultPredicate{}
	}
	return &Integrator{cfg: cfg, rule: rule}, nil
}
