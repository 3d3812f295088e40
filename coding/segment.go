// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when a segment does not fit in Bits.
var ErrOverflow = errors.New("qr: data codewords overflow")

// DataError reports data not encodable in a mode.
type DataError struct {
	Mode   Mode // requested mode
	Offset int  // offset of the offending byte
}

func (e *DataError) Error() string {
	return fmt.Sprintf("qr: non-%s data at offset %d", e.Mode, e.Offset)
}

// Validate returns a *DataError if data is not encodable in mode m.
func Validate(m Mode, data []byte) error {
	if p := PosNot(m, data); p >= 0 {
		return &DataError{m, p}
	}
	return nil
}

// EncodedLength returns the length in bits of n bytes of valid data
// encoded in mode m in a version v code, including the mode indicator
// and the character count.
func EncodedLength(m Mode, n int, v Version) int {
	l := 4 + m.CountLength(v)
	switch m {
	case Numeric:
		l += (10*n + 2) / 3
	case Alphanumeric:
		l += (11*n + 1) / 2
	case Byte:
		l += 8 * n
	case Kanji:
		l += n / 2 * 13
	}
	return l
}

// EncodableLength returns the maximum number of bytes of data
// encodable in mode m in a version v code within nbit bits, including
// the mode indicator and the character count.
func EncodableLength(m Mode, nbit int, v Version) int {
	n := nbit - 4 - m.CountLength(v)
	if n <= 0 {
		return 0
	}
	switch m {
	case Numeric:
		l := n / 10 * 3
		switch r := n % 10; {
		case r >= 7:
			l += 2
		case r >= 4:
			l++
		}
		return l
	case Alphanumeric:
		l := n / 11 * 2
		if n%11 >= 6 {
			l++
		}
		return l
	case Byte:
		return n / 8
	case Kanji:
		return n / 13 * 2
	}
	return 0
}

// Encode writes data as a segment of mode m for a version v code:
// the mode indicator, the character count and the encoded data.
// If data is not encodable in m, Encode returns a *DataError and
// leaves b unchanged.
func (b *Bits) Encode(m Mode, data []byte, v Version) error {
	if !m.IsValid() {
		return ErrMode
	}
	if EncodedLength(m, len(data), v) > b.Remaining() {
		return ErrOverflow
	}
	mark := b.Mark()
	count := len(data)
	if m == Kanji {
		count >>= 1
	}
	b.Write(m.Indicator(), 4)
	b.Write(uint32(count), m.CountLength(v))
	var p int
	switch m {
	case Numeric:
		p = b.numeric(data)
	case Alphanumeric:
		p = b.alphanumeric(data)
	case Byte:
		for _, c := range data {
			b.Write(uint32(c), 8)
		}
		p = -1
	case Kanji:
		p = b.kanji(data)
	}
	if p >= 0 {
		b.Reset(mark)
		return &DataError{m, p}
	}
	return nil
}

func (b *Bits) numeric(s []byte) int {
	for i := 0; i < len(s); i += 3 {
		n := min(len(s)-i, 3)
		var v uint32
		for j, c := range s[i : i+n] {
			if !IsDigit(c) {
				return i + j
			}
			v = v*10 + uint32(c-'0')
		}
		b.Write(v, [...]int{0, 4, 7, 10}[n])
	}
	return -1
}

func (b *Bits) alphanumeric(s []byte) int {
	for i := 0; i < len(s); i += 2 {
		if !IsAlphanumeric(s[i]) {
			return i
		}
		v := uint32(alpha[s[i]&0x3f])
		if i+1 == len(s) {
			b.Write(v, 6)
			break
		}
		if !IsAlphanumeric(s[i+1]) {
			return i + 1
		}
		b.Write(v*45+uint32(alpha[s[i+1]&0x3f]), 11)
	}
	return -1
}

func (b *Bits) kanji(s []byte) int {
	if p := PosNotKanji(s); p >= 0 {
		return p
	}
	for i := 0; i+1 < len(s); i += 2 {
		b.Write(kanjiValue(s[i], s[i+1]), 13)
	}
	return -1
}
