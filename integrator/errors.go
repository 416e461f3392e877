// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import "github.com/cpmech/gosl/chk"

// ErrBoxDimMismatch reports that Lo/Hi do not have length ndim.
func ErrBoxDimMismatch(ndim, nlo, nhi int) error {
	return chk.Err("BoxDimMismatch: ndim=%d but len(lo)=%d len(hi)=%d", ndim, nlo, nhi)
}
