// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubature

// SampleContext is passed to a Sampling integrand instead of the scale
// pointer a Plain integrand receives. Evaluate passes a fresh, zero-valued
// SampleContext on every call: it does not fill in Weight, Index or Extra,
// so a Sampling integrand sees only the point x.
type SampleContext struct {
	Weight float64     // basic-rule weight associated with the current point
	Index  int         // running index of the current sample within the region
	Extra  interface{} // driver-owned context
}

// Integrand is a closed sum type with exactly two variants, passed to each
// integrator.Run call (it is not part of integrator.Config, so it is not
// fixed at Integrator construction): Plain, the ordinary (point, scale) -> value
// callback used by the adaptive loop, and Sampling, used when the caller
// wants to collect rule points and weights itself (sampling_mode 1/2).
type Integrand interface {
	isIntegrand()
}

// Plain evaluates f at x. scale carries the current log-scaling exponent
// forward across calls within one region; the integrand may raise *scale
// when it detects its internal representation would otherwise underflow.
// The integrator tracks the maximum scale observed across all evaluations.
type Plain func(x []float64, scale *int) float64

func (Plain) isIntegrand() {}

// Sampling evaluates f at x for a caller that is collecting sample points
// and weights rather than integrating; ctx is the zero-valued
// SampleContext described above, so the weight and index of the point
// are not available through it.
type Sampling func(x []float64, ctx *SampleContext) float64

func (Sampling) isIntegrand() {}
