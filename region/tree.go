// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import "container/heap"

// Tree is an arena of Regions plus a max-error priority queue over the
// current leaves, mirroring dadhre_'s sbrg_heap/greate/next_sbrg trio
// (there implemented as a manually maintained pointer array; here as
// container/heap over arena indices, following the priority-queue idiom
// the rest of the retrieved pack uses for Dijkstra/Prim).
type Tree struct {
	arena []Region
	pq    leafHeap
}

// NewTree returns an empty tree with no root; call CreateRoot first.
func NewTree() *Tree {
	t := &Tree{}
	heap.Init(&t.pq)
	return t
}

// CreateRoot allocates the root region over the box [lo,hi] and returns
// its arena index. It must be called exactly once, before any Split.
func (t *Tree) CreateRoot(lo, hi []float64) int {
	ndim := len(lo)
	center := make([]float64, ndim)
	hwidth := make([]float64, ndim)
	for i := range lo {
		center[i] = (lo[i] + hi[i]) / 2
		hwidth[i] = (hi[i] - lo[i]) / 2
	}
	r := Region{Parent: -1, LChild: -1, RChild: -1, Depth: 0, Center: center, HWidth: hwidth}
	idx := len(t.arena)
	t.arena = append(t.arena, r)
	heap.Push(&t.pq, leafRef{idx: idx, err: 0})
	return idx
}

// Region returns a pointer into the arena for idx. The pointer is
// invalidated by any further CreateRoot/Split call (slice growth may
// reallocate); callers needing a stable handle should re-fetch by index.
func (t *Tree) Region(idx int) *Region {
	return &t.arena[idx]
}

// Len returns the number of regions ever allocated (leaves and internal).
func (t *Tree) Len() int {
	return len(t.arena)
}

// UpdateError re-seats idx's position in the max-error queue after its
// LocalError has changed. Call this once after setting a leaf's
// LocalResult/LocalError/SplitAxis from a rule evaluation.
func (t *Tree) UpdateError(idx int) {
	for i, ref := range t.pq {
		if ref.idx == idx {
			t.pq[i].err = t.arena[idx].LocalError
			heap.Fix(&t.pq, i)
			return
		}
	}
}

// WorstLeaf returns the arena index of the leaf with the greatest local
// error (dadhre_'s next_sbrg), or -1 if the tree has no leaves (no root
// has been created). Bogus-blocked leaves stay in the queue and can be
// returned; Split is what refuses them.
func (t *Tree) WorstLeaf() int {
	if t.pq.Len() == 0 {
		return -1
	}
	return t.pq[0].idx
}

// TotalError sums LocalError across every current leaf.
func (t *Tree) TotalError() float64 {
	var sum float64
	for _, ref := range t.pq {
		sum += t.arena[ref.idx].LocalError
	}
	return sum
}

// TotalResult sums LocalResult across every current leaf.
func (t *Tree) TotalResult() float64 {
	var sum float64
	for _, ref := range t.pq {
		sum += t.arena[ref.idx].LocalResult
	}
	return sum
}

// Split bisects leaf idx along its recorded SplitAxis, allocating two new
// leaf regions half as wide along that axis, wiring idx's LChild/RChild,
// and removing idx from the priority queue (it is no longer a leaf).
// The caller is responsible for evaluating the two children with a rule
// and calling UpdateError on each; Split itself leaves their
// LocalResult/LocalError at zero. Split refuses to act on a region whose
// BogusSamples is positive, returning (-1,-1), matching dadhre_'s
// bogusLikelihoods veto.
func (t *Tree) Split(idx int) (left, right int) {
	parent := &t.arena[idx]
	if parent.BogusSamples > 0 {
		return -1, -1
	}
	axis := parent.SplitAxis
	ndim := len(parent.Center)

	mkChild := func(centerShift float64) Region {
		center := make([]float64, ndim)
		hwidth := make([]float64, ndim)
		copy(center, parent.Center)
		copy(hwidth, parent.HWidth)
		hwidth[axis] /= 2
		center[axis] += centerShift * hwidth[axis]
		return Region{Parent: idx, LChild: -1, RChild: -1, Depth: parent.Depth + 1,
			Center: center, HWidth: hwidth, Scale: parent.Scale}
	}

	left = len(t.arena)
	t.arena = append(t.arena, mkChild(-1))
	right = len(t.arena)
	t.arena = append(t.arena, mkChild(+1))

	t.removeFromQueue(idx)
	t.arena[idx].LChild = left
	t.arena[idx].RChild = right

	heap.Push(&t.pq, leafRef{idx: left, err: 0})
	heap.Push(&t.pq, leafRef{idx: right, err: 0})
	return left, right
}

func (t *Tree) removeFromQueue(idx int) {
	for i, ref := range t.pq {
		if ref.idx == idx {
			heap.Remove(&t.pq, i)
			return
		}
	}
}

// Leaves returns the arena indices of every current leaf, in no
// particular order.
func (t *Tree) Leaves() []int {
	out := make([]int, len(t.pq))
	for i, ref := range t.pq {
		out[i] = ref.idx
	}
	return out
}

type leafRef struct {
	idx int
	err float64
}

// leafHeap implements heap.Interface as a max-heap on err.
type leafHeap []leafRef

func (h leafHeap) Len() int            { return len(h) }
func (h leafHeap) Less(i, j int) bool  { return h[i].err > h[j].err }
func (h leafHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *leafHeap) Push(x interface{}) { *h = append(*h, x.(leafRef)) }
func (h *leafHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
