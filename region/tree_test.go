// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_volume_conserved_on_split checks property 3: bisecting a region
// produces two children whose volumes sum to the parent's.
func Test_volume_conserved_on_split(tst *testing.T) {

	chk.PrintTitle("volume_conserved_on_split")

	tree := NewTree()
	root := tree.CreateRoot([]float64{0, 0, 0}, []float64{2, 4, 6})
	parentVol := tree.Region(root).Volume()

	tree.Region(root).SplitAxis = 1
	left, right := tree.Split(root)
	gotVol := tree.Region(left).Volume() + tree.Region(right).Volume()

	if math.Abs(gotVol-parentVol) > 1e-12 {
		tst.Errorf("child volumes sum to %v, want %v", gotVol, parentVol)
	}
	if tree.Region(root).IsLeaf() {
		tst.Errorf("root should no longer be a leaf after split")
	}
	if !tree.Region(left).IsLeaf() || !tree.Region(right).IsLeaf() {
		tst.Errorf("children should be leaves")
	}
}

// Test_local_integral_additive checks property 4: the tree's total
// result/error over its leaves equals the sum entered at those leaves,
// regardless of how many splits occurred above them.
func Test_local_integral_additive(tst *testing.T) {

	chk.PrintTitle("local_integral_additive")

	tree := NewTree()
	root := tree.CreateRoot([]float64{-1, -1}, []float64{1, 1})
	tree.Region(root).LocalResult = 10
	tree.Region(root).LocalError = 1
	tree.Region(root).SplitAxis = 0
	tree.UpdateError(root)

	left, right := tree.Split(root)
	tree.Region(left).LocalResult = 4
	tree.Region(left).LocalError = 0.3
	tree.UpdateError(left)
	tree.Region(right).LocalResult = 6
	tree.Region(right).LocalError = 0.2
	tree.UpdateError(right)

	if math.Abs(tree.TotalResult()-10) > 1e-12 {
		tst.Errorf("total result=%v, want 10", tree.TotalResult())
	}
	if math.Abs(tree.TotalError()-0.5) > 1e-12 {
		tst.Errorf("total error=%v, want 0.5", tree.TotalError())
	}
	if tree.WorstLeaf() != left {
		tst.Errorf("worst leaf=%d, want %d (higher error)", tree.WorstLeaf(), left)
	}
}

// Test_bogus_samples_block_split checks the bogusLikelihoods veto: a
// region with positive BogusSamples refuses to split.
func Test_bogus_samples_block_split(tst *testing.T) {

	chk.PrintTitle("bogus_samples_block_split")

	tree := NewTree()
	root := tree.CreateRoot([]float64{0}, []float64{1})
	tree.Region(root).BogusSamples = 1
	left, right := tree.Split(root)
	if left != -1 || right != -1 {
		tst.Errorf("split should have been vetoed, got left=%d right=%d", left, right)
	}
}
