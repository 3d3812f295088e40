// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: data
// classification, bit packing, error correction, module placement,
// masking and format information.
package coding // import "github.com/unixdj/qrcode/coding"

import (
	"errors"
	"strconv"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMode    = errors.New("qr: invalid mode")
	ErrMask    = errors.New("qr: invalid mask")
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

// Version limits.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// QR version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
// The width of the character count field depends on it.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// Words returns the total number of codewords, data and error
// correction, in a version v code.
func (v Version) Words() int {
	return vtab[v].words
}

// RemainderBits returns the number of modules left over after all
// codewords of a version v code are placed.
func (v Version) RemainderBits() int {
	return vtab[v].remainder
}

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	return vtab[v].words - vtab[v].level[l].ec
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int {
	return v.DataBytes(l) * 8
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is an error correction level.
func (l Level) IsValid() bool {
	return L <= l && l <= H
}

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = iota // digits 0-9
	Alphanumeric             // 0-9, A-Z, SPACE $ % * + - . / :
	Byte                     // any data
	Kanji                    // Shift JIS double byte characters
)

var modeNames = [...]string{"numeric", "alphanumeric", "byte", "kanji"}

func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// IsValid reports whether m is an encoding mode.
func (m Mode) IsValid() bool {
	return Numeric <= m && m <= Kanji
}

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() uint32 {
	return [...]uint32{1, 2, 4, 8}[m]
}

// Character count field lengths per mode and size class.
var countLength = [4][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
}

// CountLength returns the width in bits of the character count field
// for mode m in a version v code.
func (m Mode) CountLength(v Version) int {
	return countLength[m][v.SizeClass()]
}

// Block describes a group of Reed-Solomon blocks of equal shape.
type Block struct {
	Count int // number of blocks
	Total int // codewords per block
	Data  int // data codewords per block
}

// Check returns the number of error correction codewords per block.
func (b Block) Check() int { return b.Total - b.Data }

// Blocks returns the Reed-Solomon block groups of a code with the
// given version and level, shorter blocks first.
func (v Version) Blocks(l Level) []Block {
	vt := &vtab[v]
	lev := vt.level[l]
	n := lev.nblock[0] + lev.nblock[1]
	check := lev.ec / n
	total := vt.words / n
	b := []Block{{lev.nblock[0], total, total - check}}
	if lev.nblock[1] != 0 {
		b = append(b, Block{lev.nblock[1], total + 1, total + 1 - check})
	}
	return b
}

// AlignmentPositions returns the row and column coordinates of
// alignment pattern centres in a version v code.
func (v Version) AlignmentPositions() []int {
	vt := &vtab[v]
	if vt.align[0] == 0 {
		return nil
	}
	pos := []int{6, vt.align[0]}
	if vt.align[1] == 0 {
		return pos
	}
	last := v.Size() - 7
	for p, stride := vt.align[1], vt.align[1]-vt.align[0]; p <= last; p += stride {
		pos = append(pos, p)
	}
	return pos
}

// VersionBits returns the 18 bit version information of a version
// v code, or 0 for versions below 7.
func (v Version) VersionBits() uint32 {
	return vtab[v].pattern
}
