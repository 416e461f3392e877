// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubature

import "math"

// Evaluate applies rule over the hyper-rectangle with the given centre
// and half-widths, invoking f at every orbit point. It returns the local
// integral estimate, the local error estimate, and the axis the region
// should next be split on, per spec §4.2. scale is threaded through to a
// Plain integrand and updated in place with the maximum value the
// integrand ever raised it to.
//
// This is a direct port of the original drlhre_/dfshre_ pair: drlhre_'s
// axis sweep (steps 3-4 of spec §4.2) is kept as an explicit loop rather
// than folded into the generic orbit enumerator, since it also computes
// the fourth-difference roughness statistic used to pick the split axis;
// columns 3..W-1 are then summed through EnumerateOrbit.
func Evaluate(rule *RuleTable, center, hwidth []float64, f Integrand, scale *int) (localResult, localError float64, splitAxis int) {
	ndim := rule.Ndim
	w := rule.W
	g := rule.G

	// The basic-rule weights sum to 2^ndim (the volume of [-1,1]^ndim),
	// so scaling by the product of half-widths maps them onto this region.
	rgnVol := 1.0
	divaxn := 0
	for i := 0; i < ndim; i++ {
		rgnVol *= hwidth[i]
		if hwidth[i] > hwidth[divaxn] {
			divaxn = i
		}
	}

	x := make([]float64, ndim)
	copy(x, center)

	var maxRoughness float64
	f0 := evalAt(f, x, scale)
	checkNaN(f0, "centre", x)

	basic := w[0][0] * f0
	var null [4]float64
	for k := 0; k < 4; k++ {
		null[k] = w[k+1][0] * f0
	}

	ratio := g[0][2] / g[0][1]
	ratio *= ratio

	for i := 0; i < ndim; i++ {
		x[i] = center[i] - hwidth[i]*g[0][1]
		fNearMinus := evalAt(f, x, scale)
		x[i] = center[i] + hwidth[i]*g[0][1]
		fNearPlus := evalAt(f, x, scale)
		x[i] = center[i] - hwidth[i]*g[0][2]
		fFarMinus := evalAt(f, x, scale)
		x[i] = center[i] + hwidth[i]*g[0][2]
		fFarPlus := evalAt(f, x, scale)
		x[i] = center[i]
		checkNaN(fNearMinus+fNearPlus+fFarMinus+fFarPlus, "axis sweep", x)

		frth := (1-ratio)*2*f0 - (fFarMinus + fFarPlus) + ratio*(fNearMinus+fNearPlus)

		var roughness float64
		if f0+frth/4 != f0 {
			roughness = math.Abs(frth)
		}

		basic += w[0][1]*(fNearMinus+fNearPlus) + w[0][2]*(fFarMinus+fFarPlus)
		for k := 0; k < 4; k++ {
			null[k] += w[k+1][1]*(fNearMinus+fNearPlus) + w[k+1][2]*(fFarMinus+fFarPlus)
		}

		if roughness > maxRoughness {
			divaxn = i
			maxRoughness = roughness
		}
	}

	for j := 3; j < rule.WtLen; j++ {
		template := make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			template[i] = g[i][j]
		}
		var sum float64
		EnumerateOrbit(template, func(signed []float64) {
			for i := 0; i < ndim; i++ {
				x[i] = center[i] + signed[i]*hwidth[i]
			}
			v := evalAt(f, x, scale)
			sum += v
		})
		checkNaN(sum, "orbit column", x)
		basic += w[0][j] * sum
		for k := 0; k < 4; k++ {
			null[k] += w[k+1][j] * sum
		}
	}

	var nullSearch [3]float64
	for i := 0; i < 3; i++ {
		var search float64
		for k := 0; k < rule.WtLen; k++ {
			v := math.Abs(null[i+1]+rule.Scales[i][k]*null[i]) * rule.Norms[i][k]
			if v > search {
				search = v
			}
		}
		nullSearch[i] = search
	}

	var errest float64
	if rule.Errcof[0]*nullSearch[0] <= nullSearch[1] && rule.Errcof[1]*nullSearch[1] <= nullSearch[2] {
		errest = rule.Errcof[2] * nullSearch[0]
	} else {
		errest = rule.Errcof[3] * maxOf(nullSearch[0], nullSearch[1], nullSearch[2])
	}

	localResult = basic * rgnVol
	localError = errest * rgnVol
	splitAxis = divaxn
	return
}

func evalAt(f Integrand, x []float64, scale *int) float64 {
	switch fn := f.(type) {
	case Plain:
		return fn(x, scale)
	case Sampling:
		ctx := &SampleContext{}
		return fn(x, ctx)
	default:
		panic("cubature: Integrand must be Plain or Sampling")
	}
}

func checkNaN(v float64, where string, x []float64) {
	if math.IsNaN(v) {
		PanicOnNaN(where, x)
	}
}

func maxOf(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
