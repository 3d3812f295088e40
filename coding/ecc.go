// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"github.com/unixdj/qrcode/gf256"
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// ECC returns the error correction codewords for the data codewords
// of a code with the given version and level, block after block.
func ECC(data []byte, v Version, l Level) []byte {
	if len(data) != v.DataBytes(l) {
		panic("qr: wrong data length")
	}
	out := make([]byte, v.Words()-len(data))
	check := out
	for _, g := range v.Blocks(l) {
		rs := gf256.NewRSEncoder(Field, g.Check())
		for i := 0; i < g.Count; i++ {
			rs.ECC(data[:g.Data], check[:g.Check()])
			data, check = data[g.Data:], check[g.Check():]
		}
	}
	return out
}

// Interleave returns the final codeword sequence of a code with the
// given version and level: data codewords taken column by column
// across blocks, then error correction codewords the same way.
// Shorter blocks are skipped once exhausted.
func Interleave(data, ecc []byte, v Version, l Level) []byte {
	var sizes, checks []int
	for _, g := range v.Blocks(l) {
		for i := 0; i < g.Count; i++ {
			sizes = append(sizes, g.Data)
			checks = append(checks, g.Check())
		}
	}
	out := make([]byte, 0, v.Words())
	out = interleave(out, data, sizes)
	out = interleave(out, ecc, checks)
	if len(out) != v.Words() {
		panic("qr: internal error")
	}
	return out
}

// interleave appends to dst the blocks of src, of the given sizes,
// column by column.
func interleave(dst, src []byte, sizes []int) []byte {
	starts := make([]int, len(sizes))
	longest := 0
	for i, off := 0, 0; i < len(sizes); i++ {
		starts[i] = off
		off += sizes[i]
		longest = max(longest, sizes[i])
	}
	for j := 0; j < longest; j++ {
		for i, n := range sizes {
			if j < n {
				dst = append(dst, src[starts[i]+j])
			}
		}
	}
	return dst
}
