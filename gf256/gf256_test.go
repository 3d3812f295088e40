// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var f = NewField(0x11d, 2)

func TestBasic(t *testing.T) {
	assert.Equal(t, byte(1), f.Exp(0))
	assert.Equal(t, byte(2), f.Exp(1))
	assert.Equal(t, byte(0x1d), f.Exp(8))
	assert.Equal(t, f.Exp(254), f.Exp(-1))
	assert.Equal(t, -1, f.Log(0))
	for x := 1; x < 256; x++ {
		b := byte(x)
		require.Equal(t, b, f.Exp(f.Log(b)), "exp(log(%#x))", x)
		require.Equal(t, byte(1), f.Mul(b, f.Inv(b)), "%#x * inv", x)
	}
}

func TestMul(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			want := byte(mul(x, y, 0x11d))
			if got := f.Mul(byte(x), byte(y)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestInvalidField(t *testing.T) {
	assert.Panics(t, func() { NewField(0x11d, 1) })
	assert.Panics(t, func() { NewField(0x1d, 2) })
}

func TestECC(t *testing.T) {
	for _, tt := range []struct {
		data, check []byte
	}{
		{ // "01234567", version 1-M
			[]byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
				0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11},
			[]byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87,
				0x2c, 0x55},
		},
		{ // "HELLO WORLD", version 1-M
			[]byte{0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d,
				0x43, 0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11},
			[]byte{0xc4, 0x23, 0x27, 0x77, 0xeb, 0xd7, 0xe7, 0xe2,
				0x5d, 0x17},
		},
	} {
		rs := NewRSEncoder(f, len(tt.check))
		check := make([]byte, len(tt.check))
		rs.ECC(tt.data, check)
		assert.Equal(t, tt.check, check)
	}
}

// eval evaluates the polynomial p, highest power first, at x.
func eval(p []byte, x byte) byte {
	var y byte
	for _, c := range p {
		y = f.Mul(y, x) ^ c
	}
	return y
}

func TestECCRoots(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	for _, c := range []int{7, 10, 13, 17, 22, 26, 28, 30} {
		rs := NewRSEncoder(f, c)
		check := make([]byte, c)
		rs.ECC(data, check)
		cw := append(bytes.Clone(data), check...)
		for i := 0; i < c; i++ {
			require.Zero(t, eval(cw, f.Exp(i)), "c=%d root %d", c, i)
		}
		again := make([]byte, c)
		rs.ECC(data, again)
		require.Equal(t, check, again, "c=%d deterministic", c)
	}
}

func BenchmarkECC(b *testing.B) {
	data := make([]byte, 118)
	check := make([]byte, 30)
	rs := NewRSEncoder(f, 30)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		rs.ECC(data, check)
	}
}
