// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and the Reed-Solomon encoder used by QR codes.
package gf256 // import "github.com/unixdj/qrcode/gf256"

import (
	"strconv"
	"sync"
)

// A Field represents an instance of GF(256) defined by a specific
// polynomial and generator.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // exp[i+255] == exp[i]

	mu  sync.Mutex
	gen map[int][]byte // generator polynomials in log form, by degree
}

// NewField returns a new field corresponding to the polynomial poly
// and the generator α.  QR codes use 0x11d and 2.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	f := &Field{gen: make(map[int][]byte)}
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return f
}

// mul returns the product x*y mod poly, a GF(256) multiplication
// computed without the tables.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return f.exp[e%255+255]
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// generator returns the coefficients below the leading term of
// the degree-c polynomial (x-α⁰)(x-α¹)...(x-α^(c-1)), highest
// power first, as logarithms.  Results are cached per field.
func (f *Field) generator(c int) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lg, ok := f.gen[c]; ok {
		return lg
	}
	p := make([]byte, c+1)
	p[0] = 1
	for i := 0; i < c; i++ {
		a := f.Exp(i)
		for j := i + 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], a)
		}
	}
	lg := make([]byte, c)
	for i, v := range p[1:] {
		if v == 0 {
			panic("gf256: zero generator coefficient")
		}
		lg[i] = f.log[v]
	}
	f.gen[c] = lg
	return lg
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.
type RSEncoder struct {
	f    *Field
	c    int
	lgen []byte
	r    []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given
// field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid check byte count: " + strconv.Itoa(c))
	}
	return &RSEncoder{f: f, c: c, lgen: f.generator(c), r: make([]byte, c)}
}

// ECC writes to check the error correction bytes for data using
// the given Reed-Solomon parameters.  It divides data, multiplied by
// x^c, by the generator polynomial and stores the remainder.
// An RSEncoder is not safe for concurrent use.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	r := rs.r
	clear(r)
	for _, d := range data {
		fb := d ^ r[0]
		copy(r, r[1:])
		r[len(r)-1] = 0
		if fb == 0 {
			continue
		}
		e := int(rs.f.log[fb])
		for i, lg := range rs.lgen {
			r[i] ^= rs.f.exp[e+int(lg)]
		}
	}
	copy(check, r)
}
