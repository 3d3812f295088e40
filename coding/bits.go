// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a fixed size buffer of data codewords written bit by bit,
// most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// A Mark is a position in Bits, returned by Mark and used by Reset.
type Mark int

// NewBits returns Bits holding n data codewords.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, n)}
}

// Len returns the number of bits written.
func (b *Bits) Len() int {
	return b.nbit
}

// Cap returns the capacity of b in bits.
func (b *Bits) Cap() int {
	return len(b.b) * 8
}

// Remaining returns the number of bits that can still be written.
func (b *Bits) Remaining() int {
	return len(b.b)*8 - b.nbit
}

// Bytes returns the codewords.  Bits past Len are zero.
func (b *Bits) Bytes() []byte {
	return b.b
}

// Clone returns a copy of b not sharing its buffer.
func (b *Bits) Clone() *Bits {
	return &Bits{b: append([]byte(nil), b.b...), nbit: b.nbit}
}

// Mark returns the current position.
func (b *Bits) Mark() Mark {
	return Mark(b.nbit)
}

// Reset moves the position back to m and clears all bits written
// after it.
func (b *Bits) Reset(m Mark) {
	n := int(m)
	if n < 0 || n > b.nbit {
		panic("qr: invalid mark")
	}
	if rem := n & 7; rem != 0 {
		b.b[n>>3] &= 0xff << (8 - rem)
		n += 8 - rem
	}
	clear(b.b[n>>3 : (b.nbit+7)>>3])
	b.nbit = int(m)
}

// Write writes the nbit low order bits of v.  Writing past the end
// of the buffer panics.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit > b.Remaining() {
		panic("qr: data codewords overflow")
	}
	v <<= 32 - nbit
	for nbit > 0 {
		i, used := b.nbit>>3, b.nbit&7
		n := min(8-used, nbit)
		b.b[i] |= byte(v>>24) >> used
		v <<= n
		nbit -= n
		b.nbit += n
	}
}

// Overwrite replaces nbit bits at m with the nbit low order bits of
// v, leaving the position unchanged.
func (b *Bits) Overwrite(m Mark, v uint32, nbit int) {
	if int(m)+nbit > b.nbit {
		panic("qr: overwrite past end of data")
	}
	for i := 0; i < nbit; i++ {
		pos := int(m) + i
		bit := byte(0x80) >> (pos & 7)
		if v>>(nbit-1-i)&1 != 0 {
			b.b[pos>>3] |= bit
		} else {
			b.b[pos>>3] &^= bit
		}
	}
}

// Pad adds up to 4 terminator bits, pads with zero bits to a codeword
// boundary and fills the remaining codewords alternately with 0xec
// and 0x11.
func (b *Bits) Pad() {
	b.nbit = min(b.nbit+4, len(b.b)*8)
	b.nbit = (b.nbit + 7) &^ 7
	buf := b.b[b.nbit>>3:]
	for len(buf) >= 2 {
		buf[0], buf[1] = 0xec, 0x11
		buf = buf[2:]
	}
	if len(buf) > 0 {
		buf[0] = 0xec
	}
	b.nbit = len(b.b) * 8
}
