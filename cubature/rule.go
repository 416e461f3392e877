// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubature

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// MaxDim is the hard ceiling on problem dimension accepted anywhere in
// this package, matching the original DCUHRE sources' "maxdim" bound.
const MaxDim = 30

// RuleTable is a read-only bundle of cubature data for one
// (rule-degree, dimensionality) combination. It never changes after
// construction and may be shared freely across goroutines and Integrator
// instances.
type RuleTable struct {
	Key     int // 1..4, the resolved (non-auto) rule key
	Ndim    int
	NPoints int // integrand evaluations per region
	WtLen   int // number of distinct weight columns W

	G [][]float64 // [Ndim][WtLen] generator coordinates
	W [][]float64 // [5][WtLen]; row 0 basic, rows 1-4 null rules

	OrbitSize []float64   // [WtLen] points produced by each generator column ("rulpts")
	Scales    [][]float64 // [3][WtLen], allocated as one buffer by la.MatAlloc
	Norms     [][]float64 // [3][WtLen], allocated as one buffer by la.MatAlloc
	Errcof    [6]float64
}

// NewRuleTable resolves key (0 = auto) against ndim per the selection
// policy of spec §4.1 and builds the corresponding table.
func NewRuleTable(key, ndim int) (*RuleTable, error) {
	if ndim < 2 || ndim > MaxDim {
		return nil, ErrDimensionOutOfRange(ndim, MaxDim)
	}
	resolved := key
	if resolved == 0 {
		switch {
		case ndim == 2:
			resolved = 1
		case ndim == 3:
			resolved = 2
		default:
			resolved = 3
		}
	}
	switch resolved {
	case 1:
		if ndim != 2 {
			return nil, ErrInvalidKey(key, ndim)
		}
		return buildRule1(), nil
	case 2:
		if ndim != 3 {
			return nil, ErrInvalidKey(key, ndim)
		}
		return buildRule2(), nil
	case 3:
		return buildRule9(ndim), nil
	case 4:
		return buildRule7(ndim), nil
	default:
		return nil, ErrInvalidKey(key, ndim)
	}
}

// newTable allocates the zeroed backing arrays for an ndim/wtLen table,
// using la.MatAlloc for the two-dimensional G/W buffers the same way
// msolid/driver.go allocates its consistent-matrix buffers.
func newTable(key, ndim, wtLen int) *RuleTable {
	t := &RuleTable{Key: key, Ndim: ndim, WtLen: wtLen}
	t.G = la.MatAlloc(ndim, wtLen)
	t.W = la.MatAlloc(5, wtLen)
	t.OrbitSize = make([]float64, wtLen)
	return t
}

// finalizeDerived computes Scales, Norms (dinhre_'s post-processing,
// T3's normalisation) and NPoints, common to every rule.
func (t *RuleTable) finalizeDerived() {
	twondm := math.Pow(2, float64(t.Ndim))
	t.Scales = la.MatAlloc(3, t.WtLen)
	t.Norms = la.MatAlloc(3, t.WtLen)
	for k := 0; k < 3; k++ {
		for i := 0; i < t.WtLen; i++ {
			if t.W[k+1][i] != 0 {
				t.Scales[k][i] = -t.W[k+2][i] / t.W[k+1][i]
			} else {
				t.Scales[k][i] = 100.0
			}
			var norm float64
			for j := 0; j < t.WtLen; j++ {
				we := t.W[k+2][j] + t.Scales[k][i]*t.W[k+1][j]
				norm += t.OrbitSize[j] * math.Abs(we)
			}
			t.Norms[k][i] = twondm / norm
		}
	}
	n := 0.0
	for _, r := range t.OrbitSize {
		n += r
	}
	t.NPoints = int(n + 0.5)
}

// dropColumn removes weight column idx from every row, shifting later
// columns down by one. Used to collapse the degree-9 rule's 3-nonzero-axis
// column away when ndim==2, where that orbit is not realisable (spec
// requires W=8 for n=2, W=9 for n>2).
func dropColumn(t *RuleTable, idx int) {
	for i := range t.G {
		t.G[i] = append(t.G[i][:idx], t.G[i][idx+1:]...)
	}
	for i := range t.W {
		t.W[i] = append(t.W[i][:idx], t.W[i][idx+1:]...)
	}
	t.OrbitSize = append(t.OrbitSize[:idx], t.OrbitSize[idx+1:]...)
	t.WtLen--
}

// buildRule1 is the degree-13 rule (key=1), valid only for ndim=2, 65
// points, W=14. Transcribed from the original d132re_ routine's
// optimized generator/weight tables (not derivable from a closed form).
func buildRule1() *RuleTable {
	t := newTable(1, 2, 14)

	dim2g := []float64{
		.2517129343453109, .7013933644534266, .9590960631619962, .9956010478552127, .5,
		.1594544658297559, .3808991135940188, .6582769255267192, .8761473165029315, .998243184053198,
		.9790222658168462, .6492284325645389, .8727421201131239, .3582614645881228, .5666666666666666,
		.2077777777777778,
	}
	dim2w := []float64{
		.0337969236013446, .09508589607597761, .1176006468056962, .0265777458632695, .0170144177020064,
		0, .0162659309863741, .1344892658526199, .1328032165460149, .0563747476999187,
		.0039082790813105, .0301279877743215, .1030873234689166, .0625,
		.3213775489050763, -.1767341636743844, .07347600537466072, -.03638022004364754, .02125297922098712,
		.1460984204026913, .01747613286152099, .1444954045641582, 1.307687976001325e-4, 5.380992313941161e-4,
		1.042259576889814e-4, -.001401152865045733, .008041788181514763, -.1420416552759383,
		.3372900883288987, -.1644903060344491, .07707849911634622, -.0380447835850631, .02223559940380806,
		.1480693879765931, 4.467143702185814e-6, .150894476707413, 3.647200107516215e-5, 5.77719899901388e-4,
		1.041757313688177e-4, -.001452822267047819, .008338339968783705, -.147279632923196,
		-.8264123822525677, .306583861409436, .002389292538329435, -.1343024157997222, .088333668405339,
		0, 9.786283074168292e-4, -.1319227889147519, .00799001220015063, .003391747079760626,
		.002294915718283264, -.01358584986119197, .04025866859057809, .003760268580063992,
		.6539094339575232, -.2041614154424632, -.174698151579499, .03937939671417803, .006974520545933992,
		0, .006667702171778258, .05512960621544304, .05443846381278607, .02310903863953934,
		.01506937747477189, -.0605702164890189, .04225737654686337, .02561989142123099,
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 14; j++ {
			t.W[i][j] = dim2w[i*14+j]
		}
	}
	g := t.G
	g[0][1], g[0][2], g[0][3], g[0][4], g[0][5], g[0][6] = dim2g[0], dim2g[1], dim2g[2], dim2g[3], dim2g[4], dim2g[5]
	g[1][6] = g[0][6]
	g[0][7] = dim2g[6]
	g[1][7] = g[0][7]
	g[0][8] = dim2g[7]
	g[1][8] = g[0][8]
	g[0][9] = dim2g[8]
	g[1][9] = g[0][9]
	g[0][10] = dim2g[9]
	g[1][10] = g[0][10]
	g[0][11], g[1][11] = dim2g[10], dim2g[11]
	g[0][12], g[1][12] = dim2g[12], dim2g[13]
	g[0][13], g[1][13] = dim2g[14], dim2g[15]

	rulpts := []float64{1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8}
	copy(t.OrbitSize, rulpts)

	t.Errcof = [6]float64{10, 10, 1, 5, .5, .25}
	t.finalizeDerived()
	return t
}

// buildRule2 is the degree-11 rule (key=2), valid only for ndim=3, 127
// points, W=13. Transcribed from the original d113re_ routine.
func buildRule2() *RuleTable {
	t := newTable(2, 3, 13)

	dim3g := []float64{
		.19, .5, .75, .8, .9949999999999999, .99873449983514, .7793703685672423, .9999698993088767,
		.7902637224771788, .4403396687650737, .4378478459006862, .9549373822794593, .9661093133630748,
		.4577105877763134,
	}
	dim3w := []float64{
		.007923078151105734, .0679717739278808, .001086986538805825, .1838633662212829, .03362119777829031,
		.01013751123334062, .001687648683985235, .1346468564512807, .001750145884600386, .07752336383837454,
		.2461864902770251, .06797944868483039, .01419962823300713,
		1.715006248224684, -.3755893815889209, .1488632145140549, -.2497046640620823, .1792501419135204,
		.00344612675897389, -.005140483185555825, .006536017839876425, -6.5134549392297e-4, -.006304672433547204,
		.01266959399788263, -.005454241018647931, .004826995274768427,
		1.936014978949526, -.3673449403754268, .02929778657898176, -.1151883520260315, .05086658220872218,
		.04453911087786469, -.022878282571259, .02908926216345833, -.002898884350669207, -.02805963413307495,
		.05638741361145884, -.02427469611942451, .02148307034182882,
		.517082819560576, .01445269144914044, -.3601489663995932, .3628307003418485, .007148802650872729,
		-.09222852896022966, .01719339732471725, -.102141653746035, -.007504397861080493, .01648362537726711,
		.05234610158469334, .01445432331613066, .003019236275367777,
		2.05440450381852, .0137775998849012, -.576806291790441, .03726835047700328, .006814878939777219,
		.05723169733851849, -.04493018743811285, .02729236573866348, 3.54747395055699e-4, .01571366799739551,
		.04990099219278567, .0137791555266677, .002878206423099872,
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 13; j++ {
			t.W[i][j] = dim3w[i*13+j]
		}
	}
	g := t.G
	g[0][1], g[0][2], g[0][3], g[0][4], g[0][5] = dim3g[0], dim3g[1], dim3g[2], dim3g[3], dim3g[4]
	g[0][6] = dim3g[5]
	g[1][6] = g[0][6]
	g[0][7] = dim3g[6]
	g[1][7] = g[0][7]
	g[0][8] = dim3g[7]
	g[1][8] = g[0][8]
	g[2][8] = g[0][8]
	g[0][9] = dim3g[8]
	g[1][9] = g[0][9]
	g[2][9] = g[0][9]
	g[0][10] = dim3g[9]
	g[1][10] = g[0][10]
	g[2][10] = g[0][10]
	g[0][11], g[1][11] = dim3g[11], dim3g[10]
	g[2][11] = g[1][11]
	g[0][12] = dim3g[12]
	g[1][12] = g[0][12]
	g[2][12] = dim3g[13]

	rulpts := []float64{1, 6, 6, 6, 6, 6, 12, 12, 8, 8, 8, 24, 24}
	copy(t.OrbitSize, rulpts)

	t.Errcof = [6]float64{4, 4, .5, 3, .5, .25}
	t.finalizeDerived()
	return t
}

// buildRule9 is the degree-9 rule (key=3), valid for any ndim>=2.
// Generators and weights follow closed-form λ recurrences (the original
// d09hre_), so unlike rule 1/2 they are computed, not tabulated. W=9 for
// ndim>2; the 3-nonzero-axis column is dropped for ndim==2 (see
// dropColumn).
func buildRule9(ndim int) *RuleTable {
	t := newTable(3, ndim, 9)
	g, w := t.G, t.W
	rulpts := t.OrbitSize

	twondm := math.Pow(2, float64(ndim))
	last := 8 // wtLen-1

	for j := range rulpts {
		rulpts[j] = 2 * float64(ndim)
	}
	rulpts[last] = twondm
	if ndim > 2 {
		rulpts[7] = float64(ndim) * 4 * float64(ndim-1) * float64(ndim-2) / 3
	}
	rulpts[6] = 4 * float64(ndim) * float64(ndim-1)
	rulpts[5] = 2 * float64(ndim) * float64(ndim-1)
	rulpts[0] = 1

	lam0 := 0.4707
	lam1 := 4 / (15 - 5/lam0)
	ratio := (1 - lam1/lam0) / 27
	lam2 := (5 - lam1*7 - ratio*35) / (7 - lam1*35/3 - ratio*35/lam0)
	ratio = ratio * (1 - lam2/lam0) / 3
	lam3 := (7 - (lam2+lam1)*9 + lam2*63*lam1/5 - ratio*63) /
		(9 - (lam2+lam1)*63/5 + lam2*21*lam1 - ratio*63/lam0)
	lamp := 0.0625

	nd := float64(ndim)
	d := 3 * lam0
	d *= d * d * d
	w[0][last] = 1 / d / twondm
	if ndim > 2 {
		d3 := 6 * lam1
		d3 *= d3 * d3
		w[0][7] = (1 - 1/(lam0*3)) / d3
	}
	w[0][6] = (1 - (lam0+lam1)*7/5 + lam0*7*lam1/3) / (lam1 * 84 * lam2 * (lam2 - lam0) * (lam2 - lam1))
	w[0][5] = (1-(lam0+lam2)*7/5+lam0*7*lam2/3)/(lam1*84*lam1*(lam1-lam0)*(lam1-lam2)) -
		w[0][6]*lam2/lam1 - 2*(nd-2)*w[0][7]
	w[0][3] = (1 - ((lam0+lam1+lam2)/7-(lam0*lam1+lam0*lam2+lam1*lam2)/5)*9 - lam0*3*lam1*lam2) /
		(lam3 * 18 * (lam3 - lam0) * (lam3 - lam1) * (lam3 - lam2))
	w[0][2] = (1-((lam0+lam1+lam3)/7-(lam0*lam1+lam0*lam3+lam1*lam3)/5)*9-lam0*3*lam1*lam3)/
		(lam2*18*(lam2-lam0)*(lam2-lam1)*(lam2-lam3)) - 2*(nd-1)*w[0][6]
	w[0][1] = (1-((lam0+lam2+lam3)/7-(lam0*lam2+lam0*lam3+lam2*lam3)/5)*9-lam0*3*lam2*lam3)/
		(lam1*18*(lam1-lam0)*(lam1-lam2)*(lam1-lam3)) -
		2*(nd-1)*(w[0][6]+w[0][5]+(nd-2)*w[0][7])

	w[1][last] = 1 / (108 * lam0 * lam0 * lam0 * lam0) / twondm
	if ndim > 2 {
		d3 := (6 * lam1) * (6 * lam1) * (6 * lam1)
		w[1][7] = (1 - 27*twondm*w[1][8]*lam0*lam0*lam0) / d3
	}
	w[1][6] = (1 - lam1*5/3 - twondm*15*w[1][last]*(lam0*lam0)*(lam0-lam1)) / (lam1 * 60 * lam2 * (lam2 - lam1))
	w[1][5] = (1-9*(8*lam1*lam2*w[1][6]+twondm*w[1][last]*lam0*lam0))/(lam1*36*lam1) - 2*w[1][7]*(nd-2)
	w[1][3] = (1 - 7*((lam1+lam2)/5-lam1*lam2/3+twondm*w[1][last]*lam0*(lam0-lam1)*(lam0-lam2))) /
		(14 * lam3 * (lam3 - lam1) * (lam3 - lam2))
	w[1][2] = (1-7*((lam1+lam3)/5-lam1*lam3/3+twondm*w[1][last]*lam0*(lam0-lam1)*(lam0-lam3)))/
		(lam2*14*(lam2-lam1)*(lam2-lam3)) - 2*(nd-1)*w[1][6]
	w[1][1] = (1-7*((lam2+lam3)/5-lam2*lam3/3+twondm*w[1][last]*lam0*(lam0-lam2)*(lam0-lam3)))/
		(lam1*14*(lam1-lam2)*(lam1-lam3)) - 2*(nd-1)*(w[1][6]+w[1][5]+(nd-2)*w[1][7])

	d4 := (6 * lam1) * (6 * lam1) * (6 * lam1)
	w[2][last] = 5 / (324 * lam0 * lam0 * lam0 * lam0) / twondm
	if ndim > 2 {
		w[2][7] = (1 - 27*twondm*w[2][8]*lam0*lam0*lam0) / d4
	}
	w[2][6] = (1 - lam1*5/3 - twondm*15*w[2][last]*(lam0*lam0)*(lam0-lam1)) / (lam1 * 60 * lam2 * (lam2 - lam1))
	w[2][5] = (1-9*(lam1*8*lam2*w[2][6]+twondm*w[2][last]*lam0*lam0))/(lam1*36*lam1) - w[2][7]*2*(nd-2)
	w[2][4] = (1 - 7*((lam1+lam2)/5-lam1*lam2/3+twondm*w[2][last]*lam0*(lam0-lam1)*(lam0-lam2))) /
		(lamp * 14 * (lamp - lam1) * (lamp - lam2))
	w[2][2] = (1-7*((lam1+lamp)/5-lam1*lamp/3+twondm*w[2][last]*lam0*(lam0-lam1)*(lam0-lamp)))/
		(lam2*14*(lam2-lam1)*(lam2-lamp)) - 2*(nd-1)*w[2][6]
	w[2][1] = (1-7*((lam2+lamp)/5-lam2*lamp/3+twondm*w[2][last]*lam0*(lam0-lam2)*(lam0-lamp)))/
		(lam1*14*(lam1-lam2)*(lam1-lamp)) - 2*(nd-1)*(w[2][6]+w[2][5]+(nd-2)*w[2][7])

	w[3][last] = 2 / (81 * lam0 * lam0 * lam0 * lam0) / twondm
	if ndim > 2 {
		w[3][7] = (2 - 27*twondm*w[3][8]*lam0*lam0*lam0) / d4
	}
	w[3][6] = (2 - lam1*15/9 - twondm*15*w[3][last]*lam0*(lam0-lam1)) / (lam1 * 60 * lam2 * (lam2 - lam1))
	w[3][5] = (1-9*(lam1*8*lam2*w[3][6]+twondm*w[3][last]*(lam0*lam0)))/(lam1*36*lam1) - w[3][7]*2*(nd-2)
	w[3][3] = (2 - 7*((lam1+lam2)/5-lam1*lam2/3+twondm*w[3][last]*lam0*(lam0-lam1)*(lam0-lam2))) /
		(lam3 * 14 * (lam3 - lam1) * (lam3 - lam2))
	w[3][2] = (2-7*((lam1+lam3)/5-lam1*lam3/3+twondm*w[3][last]*lam0*(lam0-lam1)*(lam0-lam3)))/
		(lam2*14*(lam2-lam1)*(lam2-lam3)) - 2*(nd-1)*w[3][6]
	w[3][1] = (2-7*((lam2+lam3)/5-lam2*lam3/3+twondm*w[3][last]*lam0*(lam0-lam2)*(lam0-lam3)))/
		(lam1*14*(lam1-lam2)*(lam1-lam3)) - 2*(nd-1)*(w[3][6]+w[3][5]+(nd-2)*w[3][7])

	w[4][1] = 1 / (lam1 * 6)

	lam0, lam1, lam2, lam3, lamp = math.Sqrt(lam0), math.Sqrt(lam1), math.Sqrt(lam2), math.Sqrt(lam3), math.Sqrt(lamp)

	for i := 0; i < ndim; i++ {
		g[i][last] = lam0
	}
	if ndim > 2 {
		g[0][7], g[1][7], g[2][7] = lam1, lam1, lam1
	}
	g[0][6], g[1][6] = lam1, lam2
	g[0][5], g[1][5] = lam1, lam1
	g[0][4] = lamp
	g[0][3] = lam3
	g[0][2] = lam2
	g[0][1] = lam1

	finalizeNullWeights(t, twondm)

	t.Errcof = [6]float64{5, 5, 1, 5, .5, .25}

	if ndim == 2 {
		dropColumn(t, 7)
	}
	t.finalizeDerived()
	return t
}

// buildRule7 is the degree-7 rule (key=4), valid for any ndim>=2, W=6.
// Transcribed from the original d07hre_.
func buildRule7(ndim int) *RuleTable {
	t := newTable(4, ndim, 6)
	g, w := t.G, t.W
	rulpts := t.OrbitSize

	twondm := math.Pow(2, float64(ndim))
	last := 5

	for j := range rulpts {
		rulpts[j] = 2 * float64(ndim)
	}
	rulpts[last] = twondm
	rulpts[last-1] = 2 * float64(ndim) * float64(ndim-1)
	rulpts[0] = 1

	nd := float64(ndim)
	lam0 := 0.4707
	lamp := 0.5625
	lam1 := 4 / (15 - 5/lam0)
	ratio := (1 - lam1/lam0) / 27
	lam2 := (5 - lam1*7 - ratio*35) / (7 - lam1*35/3 - ratio*35/lam0)

	w[0][last] = 1 / (3 * lam0) / (3 * lam0) / (3 * lam0) / twondm
	w[0][4] = (1 - lam0*5/3) / ((lam1 - lam0) * 60 * lam1 * lam1)
	w[0][2] = (1-lam2*5/3-twondm*5*w[0][last]*lam0*(lam0-lam2))/(lam1*10*(lam1-lam2)) - 2*(nd-1)*w[0][4]
	w[0][1] = (1 - lam1*5/3 - twondm*5*w[0][last]*lam0*(lam0-lam1)) / (lam2 * 10 * (lam2 - lam1))

	w[1][last] = 1 / (lam0 * lam0 * lam0 * 36) / twondm
	w[1][4] = (1 - twondm*9*w[1][last]*lam0*lam0) / (lam1 * lam1 * 36)
	w[1][2] = (1-lam2*5/3-twondm*5*w[1][last]*lam0*(lam0-lam2))/(lam1*10*(lam1-lam2)) - 2*(nd-1)*w[1][4]
	w[1][1] = (1 - lam1*5/3 - twondm*5*w[1][last]*lam0*(lam0-lam1)) / (lam2 * 10 * (lam2 - lam1))

	w[2][last] = 5 / (lam0 * lam0 * lam0 * 108) / twondm
	w[2][4] = (1 - twondm*9*w[2][last]*lam0*lam0) / (lam1 * lam1 * 36)
	w[2][2] = (1-lamp*5/3-twondm*5*w[2][last]*lam0*(lam0-lamp))/(lam1*10*(lam1-lamp)) - 2*(nd-1)*w[2][4]
	w[2][3] = (1 - lam1*5/3 - twondm*5*w[2][last]*lam0*(lam0-lam1)) / (lamp * 10 * (lamp - lam1))

	w[3][last] = 1 / (lam0 * lam0 * lam0 * 54) / twondm
	w[3][4] = (1 - twondm*18*w[3][last]*lam0*lam0) / (lam1 * lam1 * 72)
	w[3][2] = (1-lam2*10/3-twondm*10*w[3][last]*lam0*(lam0-lam2))/(lam1*20*(lam1-lam2)) - 2*(nd-1)*w[3][4]
	w[3][1] = (1 - lam1*10/3 - twondm*10*w[3][last]*lam0*(lam0-lam1)) / (lam2 * 20 * (lam2 - lam1))

	lam0, lam1, lam2, lamp = math.Sqrt(lam0), math.Sqrt(lam1), math.Sqrt(lam2), math.Sqrt(lamp)
	for i := 0; i < ndim; i++ {
		g[i][last] = lam0
	}
	g[0][last-1], g[1][last-1] = lam1, lam1
	g[0][last-4] = lam2
	g[0][last-3] = lam1
	g[0][last-2] = lamp

	finalizeNullWeights(t, twondm)

	t.Errcof = [6]float64{5, 5, 1, 5, .5, .25}
	t.finalizeDerived()
	return t
}

// finalizeNullWeights folds the raw degree-k rule weights w[0] and the
// lower-degree rule weights w[1..4] into proper null rules: each null
// row becomes the difference between its raw weights and the basic
// rule's, which (since both integrate the constant function to the same
// value before this step) makes every null rule integrate constants to
// exactly zero (T1). Ported from the "Compute final weight values"
// section shared by d09hre_ and d07hre_.
func finalizeNullWeights(t *RuleTable, twondm float64) {
	w := t.W
	rulpts := t.OrbitSize
	w[0][0] = twondm
	for j := 1; j < 5; j++ {
		for i := 1; i < t.WtLen; i++ {
			w[j][i] -= w[0][i]
			w[j][0] -= rulpts[i] * w[j][i]
		}
	}
	for i := 1; i < t.WtLen; i++ {
		w[0][i] = twondm * w[0][i]
		w[0][0] -= rulpts[i] * w[0][i]
	}
}
