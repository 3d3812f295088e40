// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Module flags.  Every module of a Matrix carries any combination.
const (
	Data  byte = 1 << iota // data bit before masking
	Black                  // dark module
	Func                   // function pattern or reserved
)

// A Matrix is a square grid of modules of a QR code.
type Matrix struct {
	Version Version
	Size    int    // number of modules on a side
	m       []byte // flags, row major
}

// NewMatrix returns a Matrix for a version v code with all function
// patterns drawn and the format and version information modules
// reserved.
func NewMatrix(v Version) *Matrix {
	if !v.IsValid() {
		panic(ErrVersion)
	}
	siz := v.Size()
	m := &Matrix{Version: v, Size: siz, m: make([]byte, siz*siz)}

	// Timing patterns, partly overwritten by finders.
	for i := 0; i < siz; i++ {
		m.setFunc(6, i, i&1 == 0)
		m.setFunc(i, 6, i&1 == 0)
	}

	// Finder patterns with separators.
	m.finder(3, 3)
	m.finder(3, siz-4)
	m.finder(siz-4, 3)

	// Alignment patterns, except where they would overlap finders.
	pos := v.AlignmentPositions()
	for i, r := range pos {
		for j, c := range pos {
			if i == 0 && j == 0 || i == 0 && j == len(pos)-1 ||
				i == len(pos)-1 && j == 0 {
				continue
			}
			m.alignment(r, c)
		}
	}

	// Format information, reserved; the dark module is always set.
	for i := 0; i < 15; i++ {
		r, c := formatPos(0, i, siz)
		m.setFunc(r, c, false)
		r, c = formatPos(1, i, siz)
		m.setFunc(r, c, false)
	}
	m.setFunc(siz-8, 8, true)

	// Version information, reserved.
	if v >= 7 {
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			m.setFunc(b, a, false)
			m.setFunc(a, b, false)
		}
	}
	return m
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.m = append([]byte(nil), m.m...)
	return &c
}

// At returns the flags of the module at row, col.
func (m *Matrix) At(row, col int) byte {
	if row < 0 || row >= m.Size || col < 0 || col >= m.Size {
		return 0
	}
	return m.m[row*m.Size+col]
}

// IsBlack reports whether the module at row, col is dark.
func (m *Matrix) IsBlack(row, col int) bool {
	return m.At(row, col)&Black != 0
}

// IsFunc reports whether the module at row, col belongs to a function
// pattern or reserved area.
func (m *Matrix) IsFunc(row, col int) bool {
	return m.At(row, col)&Func != 0
}

// Dimension returns the number of modules on a side.
func (m *Matrix) Dimension() int {
	return m.Size
}

func (m *Matrix) setFunc(row, col int, black bool) {
	f := Func
	if black {
		f |= Black
	}
	m.m[row*m.Size+col] = f
}

// finder draws a finder pattern centred at row, col with its
// one module light separator, clipped at the edges.
func (m *Matrix) finder(row, col int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			r, c := row+dr, col+dc
			if r < 0 || r >= m.Size || c < 0 || c >= m.Size {
				continue
			}
			d := max(abs(dr), abs(dc)) // Chebyshev distance
			m.setFunc(r, c, d != 2 && d != 4)
		}
	}
}

// alignment draws a 5x5 alignment pattern centred at row, col.
func (m *Matrix) alignment(row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			m.setFunc(row+dr, col+dc, max(abs(dr), abs(dc)) != 1)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// formatPos returns the position of bit i, counted from the least
// significant, of copy n of the format information.
func formatPos(n, i, siz int) (row, col int) {
	if n == 0 {
		switch {
		case i < 6:
			return i, 8
		case i < 8:
			return i + 1, 8
		case i == 8:
			return 8, 7
		default:
			return 8, 14 - i
		}
	}
	if i < 8 {
		return 8, siz - 1 - i
	}
	return siz - 15 + i, 8
}

// Place writes the codeword bits into the non-function modules in
// the zig-zag scan order: column pairs from the right, upwards first,
// skipping the vertical timing pattern.  It returns the number of
// modules visited, which includes the remainder modules left light.
func (m *Matrix) Place(codewords []byte) int {
	siz := m.Size
	total := len(codewords) * 8
	n := 0
	up := true
	for x := siz - 1; x >= 1; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for dx := 0; dx < 2; dx++ {
				off := y*siz + x - dx
				if m.m[off]&Func != 0 {
					continue
				}
				if n < total && codewords[n>>3]>>(7&^n)&1 != 0 {
					m.m[off] |= Data
				}
				n++
			}
		}
		up = !up
	}
	if n < total {
		panic("qr: codewords do not fit")
	}
	return n
}
