// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubature

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// monomialIntegral returns the exact integral of prod(x_i^p_i) over
// [-1,1]^n, zero whenever any exponent is odd.
func monomialIntegral(p []int) float64 {
	res := 1.0
	for _, e := range p {
		if e%2 != 0 {
			return 0
		}
		res *= 2.0 / float64(e+1)
	}
	return res
}

func basicRuleValue(t *RuleTable, f func(x []float64) float64) float64 {
	ndim := t.Ndim
	sum := t.W[0][0] * f(make([]float64, ndim))
	for j := 1; j < t.WtLen; j++ {
		template := make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			template[i] = t.G[i][j]
		}
		var orbitSum float64
		EnumerateOrbit(template, func(signed []float64) {
			orbitSum += f(signed)
		})
		sum += t.W[0][j] * orbitSum
	}
	return sum
}

func monomial(p []int) func(x []float64) float64 {
	return func(x []float64) float64 {
		v := 1.0
		for i, e := range p {
			v *= math.Pow(x[i], float64(e))
		}
		return v
	}
}

// Test_rule_exactness checks that each rule's basic weights integrate
// every pure power x0^k up to its stated degree exactly (property 1).
func Test_rule_exactness(tst *testing.T) {

	chk.PrintTitle("rule_exactness")

	cases := []struct {
		key, ndim, degree int
	}{
		{1, 2, 13},
		{2, 3, 11},
		{3, 2, 9},
		{3, 5, 9},
		{4, 2, 7},
		{4, 4, 7},
	}

	for _, c := range cases {
		table, err := NewRuleTable(c.key, c.ndim)
		if err != nil {
			tst.Errorf("NewRuleTable(%d,%d) failed: %v", c.key, c.ndim, err)
			continue
		}
		for total := 0; total <= c.degree; total++ {
			p := make([]int, c.ndim)
			p[0] = total
			exact := monomialIntegral(p)
			got := basicRuleValue(table, monomial(p))
			if math.Abs(got-exact) > 1e-8 {
				tst.Errorf("key=%d ndim=%d monomial x0^%d: got=%v want=%v", c.key, c.ndim, total, got, exact)
			}
		}
	}
}

// Test_null_rules_vanish_on_constants checks property 2: every null rule
// (rows 1-4) integrates the constant function 1 to zero. For the computed
// rules (keys 3 and 4) finalizeNullWeights folds each null row against
// the basic rule's column weight before storing w[j][0]; the tabulated
// rules (keys 1 and 2) carry this property in their transcribed weights.
func Test_null_rules_vanish_on_constants(tst *testing.T) {

	chk.PrintTitle("null_rules_vanish_on_constants")

	keysDims := []struct{ key, ndim int }{
		{1, 2}, {2, 3}, {3, 2}, {3, 6}, {4, 2}, {4, 7},
	}
	one := func(x []float64) float64 { return 1 }

	for _, kd := range keysDims {
		table, err := NewRuleTable(kd.key, kd.ndim)
		if err != nil {
			tst.Errorf("NewRuleTable(%d,%d) failed: %v", kd.key, kd.ndim, err)
			continue
		}
		for row := 1; row < 5; row++ {
			sum := table.W[row][0] * one(make([]float64, kd.ndim))
			for j := 1; j < table.WtLen; j++ {
				template := make([]float64, kd.ndim)
				for i := 0; i < kd.ndim; i++ {
					template[i] = table.G[i][j]
				}
				var orbitSum float64
				EnumerateOrbit(template, func(signed []float64) {
					orbitSum += one(signed)
				})
				sum += table.W[row][j] * orbitSum
			}
			if math.Abs(sum) > 1e-9 {
				tst.Errorf("key=%d ndim=%d null row=%d sum=%v, want 0", kd.key, kd.ndim, row, sum)
			}
		}
	}
}

// Test_orbit_size_matches_rulpts checks that EnumerateOrbit's combinatorial
// count agrees with the tabulated/derived OrbitSize for every column.
func Test_orbit_size_matches_rulpts(tst *testing.T) {

	chk.PrintTitle("orbit_size_matches_rulpts")

	keysDims := []struct{ key, ndim int }{
		{1, 2}, {2, 3}, {3, 4}, {4, 5},
	}
	for _, kd := range keysDims {
		table, err := NewRuleTable(kd.key, kd.ndim)
		if err != nil {
			tst.Errorf("NewRuleTable(%d,%d) failed: %v", kd.key, kd.ndim, err)
			continue
		}
		for j := 0; j < table.WtLen; j++ {
			template := make([]float64, kd.ndim)
			for i := 0; i < kd.ndim; i++ {
				template[i] = table.G[i][j]
			}
			got := OrbitSize(template)
			want := int(table.OrbitSize[j] + 0.5)
			if got != want {
				tst.Errorf("key=%d ndim=%d col=%d: orbit size got=%d want=%d", kd.key, kd.ndim, j, got, want)
			}
		}
	}
}

// Test_evaluate_exact_on_constant sanity-checks RuleEvaluator.Evaluate
// directly (rather than the raw basic weights) against a constant
// integrand over a non-trivial box.
func Test_evaluate_exact_on_constant(tst *testing.T) {

	chk.PrintTitle("evaluate_exact_on_constant")

	table, err := NewRuleTable(0, 3)
	if err != nil {
		tst.Errorf("NewRuleTable failed: %v", err)
		return
	}
	center := []float64{1, 2, -1}
	hwidth := []float64{0.5, 1.5, 2.0}
	f := Plain(func(x []float64, scale *int) float64 { return 3.0 })
	scale := 0
	result, errest, _ := Evaluate(table, center, hwidth, f, &scale)
	vol := 1.0
	for _, h := range hwidth {
		vol *= 2 * h
	}
	want := 3.0 * vol
	if math.Abs(result-want) > 1e-8 {
		tst.Errorf("result=%v want=%v", result, want)
	}
	if errest > 1e-6 {
		tst.Errorf("errest=%v want~0", errest)
	}
}
