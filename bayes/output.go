// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"io"

	gio "github.com/cpmech/gosl/io"
)

// WriteSliceTable writes one row per SliceResult in the original fpPPL
// column layout restricted to the per-slice columns (theta, dprime,
// Bayes ratio, error estimate, evaluation count); the marker/chromosome
// columns belong to the caller's map context, not this package.
func WriteSliceTable(w io.Writer, slices []SliceResult) {
	gio.Ff(w, "%9s %9s %14s %12s %8s\n", "THETA", "DPRIME", "BAYES_RATIO", "ERR_EST", "NEVALS")
	for _, s := range slices {
		gio.Ff(w, "%9.4f %9.4f %14.8g %12.4e %8d\n", s.Theta, s.Dprime, s.BayesRatio, s.ErrEst, s.NEvals)
	}
}

// WriteSummaryTable writes the PPL/LD-PPL/PPLD summary row in the
// original fpPPL header/row pair ("CHR MARKER cM PPL [LD-PPL PPLD] MOD").
// chr/marker/cM are caller-supplied map coordinates; mod is the caller's
// log10 maximum-likelihood statistic, both outside this package's scope.
func WriteSummaryTable(w io.Writer, chr int, marker string, cM float64, acc *Accumulator, mod float64) {
	if acc.HasLD() {
		gio.Ff(w, "%4s %15s %9s %6s %6s %6s %6s\n", "CHR", "MARKER", "cM", "PPL", "LD-PPL", "PPLD", "MOD")
		gio.Ff(w, "%4d %15s %9.4f %8.6f %6.4f %6.4f %6.4f\n",
			chr, marker, cM, acc.PPL(), acc.LDPPL(), acc.PPLD(), mod)
		return
	}
	gio.Ff(w, "%4s %15s %9s %6s %6s\n", "CHR", "MARKER", "cM", "PPL", "MOD")
	gio.Ff(w, "%4d %15s %9.4f %8.6f %6.4f\n", chr, marker, cM, acc.PPL(), mod)
}

// WriteSixRegionDiagnostic writes one row per marker giving the six
// integrated mass values an Accumulator folded its slices into: LD
// small-theta, LD big-theta, LD unlinked, LE small-theta, LE big-theta,
// LE unlinked, in that fixed order.
func WriteSixRegionDiagnostic(w io.Writer, marker string, acc *Accumulator) {
	gio.Ff(w, "%15s %12s %12s %12s %12s %12s %12s\n",
		"MARKER", "LD_SMALL", "LD_BIG", "LD_UNLINKED", "LE_SMALL", "LE_BIG", "LE_UNLINKED")
	m := acc.SixMasses()
	gio.Ff(w, "%15s %12.6g %12.6g %12.6g %12.6g %12.6g %12.6g\n",
		marker, m[0], m[1], m[2], m[3], m[4], m[5])
}
