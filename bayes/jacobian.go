// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

// ApplyJacobian reparameterises a unit-cube sample u into an ordered
// penetrance vector x and returns the Jacobian factor that keeps the
// integral over u equivalent to the integral over the ordered simplex
// pen_dd <= pen_Dd <= pen_DD.
//
// u is consumed three values at a time, one liability class per group:
// pen_DD = u0, pen_Dd = u1*u0, pen_dd = u2*u1*u0. This mirrors the
// original driver's per-class product form (x[3*liabIdx+2]*x[3*liabIdx+1]
// for pen_Dd) applied once per liability class before the likelihood
// call. Only u0 and u1 of each group feed the Jacobian, exactly as in
// the original's avg_hetLR *= (u0^2)*u1 accumulation - the third
// parameter's own differential cancels against the simplex volume
// element and does not appear.
//
// len(u) must be a multiple of 3; any remainder (a group with fewer than
// 3 free values, as for the original's CT trait-type single extra
// parameter) is passed through x unchanged with a Jacobian factor of 1.
func ApplyJacobian(u []float64) (x []float64, jacobian float64) {
	x = make([]float64, len(u))
	jacobian = 1.0

	n := len(u)
	groups := n / 3
	for g := 0; g < groups; g++ {
		k := g * 3
		u0, u1, u2 := u[k], u[k+1], u[k+2]
		penDD := u0
		penDd := u1 * u0
		penDd2 := u2 * u1
		x[k] = penDD
		x[k+1] = penDd
		x[k+2] = penDd2 * u0
		jacobian *= u0 * u0 * u1
	}
	for i := groups * 3; i < n; i++ {
		x[i] = u[i]
	}
	return x, jacobian
}
