// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubature

import "sort"

// EnumerateOrbit visits every point of the fully-symmetric orbit of the
// generator template g: every distinct permutation of g (duplicates
// collapsed, since templates commonly repeat a value across several
// axes), crossed with every sign pattern over g's nonzero entries. visit
// is called once per point with a scratch slice owned by this function;
// callers that need to retain a point must copy it. EnumerateOrbit
// returns the number of points visited (the orbit size, "rulpts" in the
// original DCUHRE routines).
//
// This visits the same point set as the original dfshre_ routine, but
// as two ordinary loops instead of the goto-driven state machine of the
// Fortran-derived C source, and in a different order: permutations are
// visited in ascending lexicographic order starting from the sorted
// template (not dfshre_'s reverse-lexicographic order), and sign
// patterns in binary-counter order over the nonzero entries (not by
// toggling one sign at a time).
func EnumerateOrbit(g []float64, visit func(signed []float64)) int {
	ndim := len(g)
	perm := append([]float64(nil), g...)
	sort.Float64s(perm)

	nonzero := make([]int, 0, ndim)
	signed := make([]float64, ndim)
	count := 0
	for {
		// the nonzero entries move with each permutation, so their
		// positions are recomputed before the sign patterns are applied
		nonzero = nonzero[:0]
		for i, v := range perm {
			if v != 0 {
				nonzero = append(nonzero, i)
			}
		}
		nSigns := 1 << uint(len(nonzero))
		for mask := 0; mask < nSigns; mask++ {
			copy(signed, perm)
			for bit, idx := range nonzero {
				if mask&(1<<uint(bit)) != 0 {
					signed[idx] = -signed[idx]
				}
			}
			visit(signed)
			count++
		}
		if !nextPermutation(perm) {
			break
		}
	}
	return count
}

// nextPermutation advances a to its next distinct permutation in
// ascending lexicographic order (duplicate values are handled correctly:
// the classic algorithm never revisits a permutation that is
// element-wise equal to one already produced). Returns false once a is
// the last (descending) permutation.
func nextPermutation(a []float64) bool {
	n := len(a)
	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}

// OrbitSize returns the number of points EnumerateOrbit would visit for
// generator template g, without materialising them.
func OrbitSize(g []float64) int {
	nonzero := 0
	for _, v := range g {
		if v != 0 {
			nonzero++
		}
	}
	return countDistinctPermutations(g) * (1 << uint(nonzero))
}

func countDistinctPermutations(g []float64) int {
	perm := append([]float64(nil), g...)
	sort.Float64s(perm)
	n := 1
	for nextPermutation(perm) {
		n++
	}
	return n
}
