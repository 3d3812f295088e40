// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Kanji mode encodes Shift JIS characters with lead bytes 0x81-0x9f
// and 0xe0-0xea as 13 bit values.
const (
	kanjiMax    = 0x1fff
	kanjiLoBase = 0x40
)

func isKanjiLead(b byte) bool {
	return 0x81 <= b && b <= 0x9f || 0xe0 <= b && b <= 0xea
}

func isKanjiTrail(b byte) bool {
	return 0x40 <= b && b <= 0xfc && b != 0x7f
}

// kanjiValue returns the 13 bit kanji mode value of a valid pair.
func kanjiValue(hi, lo byte) uint32 {
	h := uint32(hi) - 0x81
	if hi >= 0xe0 {
		h = uint32(hi) - 0xc1
	}
	return h*0xc0 + uint32(lo) - kanjiLoBase
}

// kanjiTable has a bit set for each kanji mode value that maps to a
// JIS X 0208 character.
var kanjiTable struct {
	once sync.Once
	bits [(kanjiMax + 1) / 64]uint64
}

// buildKanjiTable decodes every candidate pair with the Shift JIS
// decoder and records the defined ones.
func buildKanjiTable() {
	dec := japanese.ShiftJIS.NewDecoder()
	var pair [2]byte
	for hi := 0x81; hi <= 0xea; hi++ {
		if !isKanjiLead(byte(hi)) {
			continue
		}
		for lo := 0x40; lo <= 0xfc; lo++ {
			if !isKanjiTrail(byte(lo)) {
				continue
			}
			pair[0], pair[1] = byte(hi), byte(lo)
			out, err := dec.Bytes(pair[:])
			if err != nil {
				continue
			}
			r, n := utf8.DecodeRune(out)
			if n != len(out) || r == utf8.RuneError {
				continue
			}
			v := kanjiValue(pair[0], pair[1])
			kanjiTable.bits[v>>6] |= 1 << (v & 63)
		}
	}
}

// kanjiDefined reports whether the kanji mode value v is a defined
// character.
func kanjiDefined(v uint32) bool {
	kanjiTable.once.Do(buildKanjiTable)
	return v <= kanjiMax && kanjiTable.bits[v>>6]>>(v&63)&1 != 0
}
