// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
var maskFunc = [8]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return i*j%2+i*j%3 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+i*j%3)%2 == 0 },
}

// ApplyMask sets the colour of every non-function module to its data
// bit inverted where mask pattern mask is true.  Applying another
// mask later replaces the previous one.
func (m *Matrix) ApplyMask(mask int) {
	if mask < 0 || mask >= len(maskFunc) {
		panic(ErrMask)
	}
	f := maskFunc[mask]
	for i := 0; i < m.Size; i++ {
		row := m.m[i*m.Size : (i+1)*m.Size]
		for j, v := range row {
			if v&Func != 0 {
				continue
			}
			v &^= Black
			if (v&Data != 0) != f(i, j) {
				v |= Black
			}
			row[j] = v
		}
	}
}

// Penalty points.
const (
	penRun    = 3  // N1: run of 5 modules, plus 1 for each extra
	penBox    = 3  // N2: 2x2 block of one colour
	penFinder = 40 // N3: 1:1:3:1:1 pattern next to light modules
	penBal    = 10 // N4: every 5% of deviation from 50% dark
)

// Penalty returns the mask evaluation score of m: the sum of
// penalties for long runs, 2x2 blocks, finder-like patterns and
// colour imbalance.  Lower is better.
func (m *Matrix) Penalty() int {
	siz := m.Size
	black := func(r, c int) bool { return m.m[r*siz+c]&Black != 0 }
	p := 0
	dark := 0
	for i := 0; i < siz; i++ {
		p += linePenalty(siz, func(k int) bool { return black(i, k) })
		p += linePenalty(siz, func(k int) bool { return black(k, i) })
		for j := 0; j < siz; j++ {
			b := black(i, j)
			if b {
				dark++
			}
			if i+1 < siz && j+1 < siz && b == black(i, j+1) &&
				b == black(i+1, j) && b == black(i+1, j+1) {
				p += penBox
			}
		}
	}
	ratio := dark * 100 / (siz * siz)
	p += abs(ratio-50) / 5 * penBal
	return p
}

// finderPat is the 1:1:3:1:1 dark-light pattern.
var finderPat = [7]bool{true, false, true, true, true, false, true}

// linePenalty returns the run and finder penalties of a row or
// column of n modules.
func linePenalty(n int, black func(int) bool) int {
	p := 0
	run := 1
	for k := 1; k <= n; k++ {
		if k < n && black(k) == black(k-1) {
			run++
			continue
		}
		if run >= 5 {
			p += penRun + run - 5
		}
		run = 1
	}
	for k := 0; k+7 <= n; k++ {
		if k > 0 && black(k-1) {
			continue
		}
		ok := true
		for d, want := range finderPat {
			if black(k+d) != want {
				ok = false
				break
			}
		}
		for d := 7; ok && d < 11 && k+d < n; d++ {
			ok = !black(k + d)
		}
		if ok {
			p += penFinder
		}
	}
	return p
}

// SelectMask applies each mask pattern in turn, keeps the one with
// the lowest penalty, the lowest numbered on ties, and returns it
// together with all scores.
func (m *Matrix) SelectMask() (int, [8]int) {
	var scores [8]int
	best := 0
	for mask := range maskFunc {
		m.ApplyMask(mask)
		scores[mask] = m.Penalty()
		if scores[mask] < scores[best] {
			best = mask
		}
	}
	m.ApplyMask(best)
	return best, scores
}
