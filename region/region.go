// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package region implements the region tree an adaptive integrator
// bisects as it refines an estimate: every node records its own
// centre/half-width box, its local result and error from the last rule
// evaluation, and the axis it should be split on next.
package region

// Region is one node of a Tree, addressed by its arena index rather than
// a pointer, matching the original sub_region's integer
// parent_id/lchild_id/rchild_id bookkeeping (translated here to slice
// indices, -1 standing in for the C "0 means none" sentinel since 0 is
// a valid index in Go).
type Region struct {
	Parent, LChild, RChild int // arena indices, -1 if absent
	Depth                  int // region_level: 0 for the root

	Center, HWidth []float64

	LocalResult float64
	LocalError  float64
	SplitAxis   int // axis the region was evaluated to prefer splitting on

	Scale int // cur_scale: running log-scale exponent threaded by the integrand

	// BogusSamples counts integrand evaluations the caller judged
	// unreliable within this region (bogusLikelihoods in the original);
	// a positive count veto-blocks splitting (see Tree.Split).
	BogusSamples int
}

// IsLeaf reports whether r has not yet been split.
func (r *Region) IsLeaf() bool {
	return r.LChild < 0 && r.RChild < 0
}

// Volume returns the region's hyper-rectangle volume.
func (r *Region) Volume() float64 {
	v := 1.0
	for _, h := range r.HWidth {
		v *= 2 * h
	}
	return v
}
