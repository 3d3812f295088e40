// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// calcFormat appends the BCH(15,5) remainder to the format bits fb,
// already shifted left 10 bits.
func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

// QR Code format bits.
var ftab [4][8]uint16

func init() {
	for l := range ftab {
		for mask := range ftab[l] {
			fb := uint16(l^1) << 13 // L=01, M=00, Q=11, H=10
			fb |= uint16(mask) << 10
			ftab[l][mask] = calcFormat(fb) ^ 0x5412
		}
	}
}

// FormatBits returns the 15 bit format information for the given
// level and mask.
func FormatBits(l Level, mask int) uint16 {
	if !l.IsValid() {
		panic(ErrLevel)
	}
	if mask < 0 || mask >= len(maskFunc) {
		panic(ErrMask)
	}
	return ftab[l][mask]
}

// StampInfo writes both copies of the format information for the
// given level and mask, the dark module, and for versions 7 and up
// both copies of the version information.
func (m *Matrix) StampInfo(l Level, mask int) {
	siz := m.Size
	fb := FormatBits(l, mask)
	for i := 0; i < 15; i++ {
		black := fb>>i&1 != 0
		r, c := formatPos(0, i, siz)
		m.setFunc(r, c, black)
		r, c = formatPos(1, i, siz)
		m.setFunc(r, c, black)
	}
	m.setFunc(siz-8, 8, true)

	if vb := m.Version.VersionBits(); vb != 0 {
		for i := 0; i < 18; i++ {
			black := vb>>i&1 != 0
			a, b := siz-11+i%3, i/3
			m.setFunc(b, a, black)
			m.setFunc(a, b, black)
		}
	}
}
