// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"encoding/binary"
	"io"

	"github.com/nchgenetics/kelvcube/region"
)

// DumpRecord is one fixed-width little-endian record: parent_id(int32),
// region_level(int32), local_result(float64), local_error(float64),
// dir(int32), cur_scale(int32) - the original's tpl format string
// "iiffii" read in field order through a struct of matching C types.
type DumpRecord struct {
	ParentID, Level  int32
	Result, ErrorEst float64
	Dir, Scale       int32
}

// DumpRegions writes one DumpRecord per entry of leaves, in the order
// given, to w. Records are written back to back with no length prefix;
// LoadRegions reads until EOF. A root region (no parent) is recorded
// with ParentID -1, since the
// original's sentinel of 0 is ambiguous with a real index in Go's
// zero-based arena.
func DumpRegions(w io.Writer, tree *region.Tree, leaves []int) error {
	for _, idx := range leaves {
		rg := tree.Region(idx)
		rec := DumpRecord{
			ParentID: int32(rg.Parent),
			Level:    int32(rg.Depth),
			Result:   rg.LocalResult,
			ErrorEst: rg.LocalError,
			Dir:      int32(rg.SplitAxis),
			Scale:    int32(rg.Scale),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

// LoadRegions reads records written by DumpRegions back into plain
// structs (not reconstructing a Tree, since the dump format discards the
// centre/half-width geometry needed to do so - matching the original
// region_dump.c reader, which only ever prints the fields back out).
func LoadRegions(r io.Reader) ([]DumpRecord, error) {
	var out []DumpRecord
	for {
		var rec DumpRecord
		err := binary.Read(r, binary.LittleEndian, &rec)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
