// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"bytes"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/nchgenetics/kelvcube/cubature"
)

// gaussianOverBox is a narrow gaussian bump, chosen because its curvature
// forces several adaptive splits rather than converging at the root.
func gaussianOverBox(x []float64, scale *int) float64 {
	r2 := 0.0
	for _, xi := range x {
		r2 += xi * xi
	}
	return math.Exp(-20 * r2)
}

// Test_monotone_eval_count checks property 5: NEvals never decreases
// across successive Run calls as MaxRegion is relaxed (more splitting
// room can only add evaluations, never remove them).
func Test_monotone_eval_count(tst *testing.T) {

	chk.PrintTitle("monotone_eval_count")

	prev := 0
	for _, maxRegion := range []int{1, 5, 20, 80} {
		itg, err := New(Config{
			Ndim: 2, Lo: []float64{-1, -1}, Hi: []float64{1, 1},
			MaxRegion: maxRegion,
			Predicate: TolerancePredicate{AbsTol: 1e-10, RelTol: 1e-10},
		})
		if err != nil {
			tst.Errorf("New failed: %v", err)
			return
		}
		res := Run(itg, cubature.Plain(gaussianOverBox), 1)
		if res.NEvals < prev {
			tst.Errorf("maxRegion=%d: NEvals=%d < previous %d", maxRegion, res.NEvals, prev)
		}
		prev = res.NEvals
	}
}

// Test_deterministic_output checks property 6: two independent Run calls
// with identical configuration produce bit-identical results, since the
// loop has no randomness and the heap tie-breaking is deterministic for
// a fixed insertion order.
func Test_deterministic_output(tst *testing.T) {

	chk.PrintTitle("deterministic_output")

	mk := func() Result {
		itg, err := New(Config{
			Ndim: 2, Lo: []float64{-1, -1}, Hi: []float64{1, 1},
			MaxRegion: 40,
			Predicate: TolerancePredicate{AbsTol: 1e-8, RelTol: 1e-8},
		})
		if err != nil {
			tst.Errorf("New failed: %v", err)
		}
		return Run(itg, cubature.Plain(gaussianOverBox), 1)
	}
	a, b := mk(), mk()
	if a.Value != b.Value || a.ErrEst != b.ErrEst || a.NEvals != b.NEvals {
		tst.Errorf("non-deterministic: a=%+v b=%+v", a, b)
	}
}

// Test_error_bracket checks property 7: the reported error estimate is
// never wildly smaller than the true discrepancy against a known
// analytic answer for a smooth integrand (the constant function, whose
// exact integral is the box volume).
func Test_error_bracket(tst *testing.T) {

	chk.PrintTitle("error_bracket")

	itg, err := New(Config{
		Ndim: 3, Lo: []float64{0, 0, 0}, Hi: []float64{1, 1, 1},
		MaxRegion: 10,
		Predicate: TolerancePredicate{AbsTol: 1e-10, RelTol: 1e-10},
	})
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	f := cubature.Plain(func(x []float64, scale *int) float64 { return 5.0 })
	res := Run(itg, f, 1)
	want := 5.0
	diff := math.Abs(res.Value - want)
	if diff > res.ErrEst+1e-9 {
		tst.Errorf("true error %v exceeds reported errest %v", diff, res.ErrEst)
	}
}

// Test_sampling_mode_single_pass checks that ModeSamplingCollect stops
// after exactly one region evaluation.
func Test_sampling_mode_single_pass(tst *testing.T) {

	chk.PrintTitle("sampling_mode_single_pass")

	itg, err := New(Config{
		Ndim: 2, Lo: []float64{-1, -1}, Hi: []float64{1, 1},
		Mode: ModeSamplingCollect,
	})
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res := Run(itg, cubature.Plain(gaussianOverBox), 1)
	if res.NRegion != 1 {
		tst.Errorf("NRegion=%d, want 1", res.NRegion)
	}
}

// Test_scenario_A_constant_on_unit_square exercises end-to-end scenario
// A: rule key 3 (degree 9) on n=2 integrating f(x,y)=1 over [0,1]^2. The
// rule is exact on a constant, so the root region converges without any
// split and total_evals equals exactly one rule evaluation.
func Test_scenario_A_constant_on_unit_square(tst *testing.T) {

	chk.PrintTitle("scenario_A_constant_on_unit_square")

	rule, err := cubature.NewRuleTable(3, 2)
	if err != nil {
		tst.Fatalf("NewRuleTable failed: %v", err)
	}

	itg, err := New(Config{
		Ndim: 2, Key: 3, Lo: []float64{0, 0}, Hi: []float64{1, 1},
		Predicate: TolerancePredicate{AbsTol: 1e-12, RelTol: 1e-12},
	})
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	f := cubature.Plain(func(x []float64, scale *int) float64 { return 1 })
	res := Run(itg, f, 1)

	if math.Abs(res.Value-1.0) > 1e-14 {
		tst.Errorf("result=%.17g, want 1.0 +/- 1e-14", res.Value)
	}
	if res.ErrEst > 1e-13 {
		tst.Errorf("errest=%v, want <= 1e-13", res.ErrEst)
	}
	if res.NEvals != rule.NPoints {
		tst.Errorf("NEvals=%d, want exactly rule.NPoints=%d", res.NEvals, rule.NPoints)
	}
}

// Test_scenario_B_gaussian_bump exercises end-to-end scenario B: rule
// key 1 (degree 13, ndim=2 only) integrating a narrow gaussian bump over
// [0,1]^2. Since the bump (centred at (0.3,0.7), width ~0.1) sits well
// inside the box, its mass is very close to the unbounded-plane integral
// pi*0.01.
func Test_scenario_B_gaussian_bump(tst *testing.T) {

	chk.PrintTitle("scenario_B_gaussian_bump")

	itg, err := New(Config{
		Ndim: 2, Key: 1, Lo: []float64{0, 0}, Hi: []float64{1, 1},
		MaxRegion: 4000,
		Predicate: TolerancePredicate{AbsTol: 1e-9, RelTol: 1e-6},
	})
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	f := cubature.Plain(func(x []float64, scale *int) float64 {
		dx, dy := x[0]-0.3, x[1]-0.7
		return math.Exp(-(dx*dx + dy*dy) / 0.01)
	})
	res := Run(itg, f, 1)

	want := math.Pi * 0.01
	if math.Abs(res.Value-want) > 1e-3 {
		tst.Errorf("result=%v, want approximately %v (pi*sigma^2)", res.Value, want)
	}
	if res.Status != cubature.StatusConverged {
		tst.Errorf("status=%v, want Converged", res.Status)
	}
	if res.NEvals > 20000 {
		tst.Errorf("NEvals=%d, want <= 20000", res.NEvals)
	}
}

// Test_dump_roundtrip exercises DumpRegions/LoadRegions over a small run.
func Test_dump_roundtrip(tst *testing.T) {

	chk.PrintTitle("dump_roundtrip")

	itg, err := New(Config{
		Ndim: 2, Lo: []float64{-1, -1}, Hi: []float64{1, 1},
		MaxRegion: 10,
		Predicate: TolerancePredicate{AbsTol: 1e-10, RelTol: 1e-10},
	})
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	res := Run(itg, cubature.Plain(gaussianOverBox), 1)
	leaves := res.Tree.Leaves()

	var buf bytes.Buffer
	if err := DumpRegions(&buf, res.Tree, leaves); err != nil {
		tst.Errorf("DumpRegions failed: %v", err)
		return
	}
	recs, err := LoadRegions(&buf)
	if err != nil {
		tst.Errorf("LoadRegions failed: %v", err)
		return
	}
	if len(recs) != len(leaves) {
		tst.Errorf("got %d records, want %d", len(recs), len(leaves))
	}
}
