// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"io"
	"strconv"
)

// writePBM writes a binary Portable Bit Map image, for use with
// netpbm.
func writePBM(w io.Writer, r *raster) error {
	b := bufio.NewWriter(w)
	width := r.w * r.mag
	if _, err := b.WriteString("P4\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(r.h*r.mag) + "\n"); err != nil {
		return err
	}
	row := make([]byte, (width+7)/8)
	for y := 0; y < r.h; y++ {
		clear(row)
		pbmRow(row, r, y)
		for i := 0; i < r.mag; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow packs module row y of r into row, most significant bit
// first, 1 for dark.
func pbmRow(row []byte, r *raster, y int) {
	var z byte // pending bits
	nz, j := 0, 0
	for x := 0; x < r.w; x++ {
		bits := byte(0)
		if r.dark(y, x) {
			bits = 0xff
		}
		for n := r.mag; n > 0; {
			shift := min(8-nz, n)
			z = z<<shift | bits>>(8-shift)
			n -= shift
			if nz += shift; nz == 8 {
				row[j] = z
				z, nz = 0, 0
				j++
			}
		}
	}
	if nz != 0 {
		row[j] = z << (8 - nz)
	}
}
