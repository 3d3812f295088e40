// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// IsDigit reports whether b is encodable in numeric mode.
func IsDigit(b byte) bool {
	return b-'0' < 10
}

// IsAlphanumeric reports whether b is encodable in alphanumeric mode.
func IsAlphanumeric(b byte) bool {
	return b >= ' ' && alphamask>>(b-' ')&1 != 0
}

// PosNotNumeric returns the offset of the first byte in data not
// encodable in numeric mode, or -1.
func PosNotNumeric(data []byte) int {
	for i, b := range data {
		if !IsDigit(b) {
			return i
		}
	}
	return -1
}

// PosNotAlphanumeric returns the offset of the first byte in data
// not encodable in alphanumeric mode, or -1.
func PosNotAlphanumeric(data []byte) int {
	for i, b := range data {
		if !IsAlphanumeric(b) {
			return i
		}
	}
	return -1
}

// PosNotKanji returns the offset of the first byte in data that
// breaks a sequence of QR kanji characters, or -1.  A bad lead byte,
// or an undefined pair, reports the offset of the lead byte; a bad
// trail byte reports its own offset; a dangling final byte reports
// its offset.
func PosNotKanji(data []byte) int {
	p := 0
	for ; p < len(data)-1; p += 2 {
		hi, lo := data[p], data[p+1]
		if !isKanjiLead(hi) {
			return p
		}
		if !isKanjiTrail(lo) {
			return p + 1
		}
		if !kanjiDefined(kanjiValue(hi, lo)) {
			return p
		}
	}
	if p < len(data) {
		return p
	}
	return -1
}

// IsKanjiPair reports whether hi, lo is a defined QR kanji character
// in Shift JIS.
func IsKanjiPair(hi, lo byte) bool {
	return isKanjiLead(hi) && isKanjiTrail(lo) &&
		kanjiDefined(kanjiValue(hi, lo))
}

// Classify returns the most compact mode able to encode all of data:
// Numeric, then Alphanumeric, then Kanji, and Byte otherwise.
func Classify(data []byte) Mode {
	switch {
	case PosNotNumeric(data) < 0:
		return Numeric
	case PosNotAlphanumeric(data) < 0:
		return Alphanumeric
	case PosNotKanji(data) < 0:
		return Kanji
	}
	return Byte
}

// PosNot returns the offset of the first byte in data not encodable
// in mode m, or -1.  Byte mode accepts anything.
func PosNot(m Mode, data []byte) int {
	switch m {
	case Numeric:
		return PosNotNumeric(data)
	case Alphanumeric:
		return PosNotAlphanumeric(data)
	case Kanji:
		return PosNotKanji(data)
	}
	return -1
}
