// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/unixdj/qrcode/coding"
)

const fox = "The quick brown fox jumps over the lazy dog"

type StructuredSuite struct {
	suite.Suite
	s *Structured
}

func (ss *StructuredSuite) SetupTest() {
	s, err := NewStructured(1, coding.Byte, coding.L, Auto, 4)
	ss.Require().NoError(err)
	ss.s = s
}

// lens returns the encoded length of each symbol of s.
func (ss *StructuredSuite) lens() []int {
	var l []int
	for _, q := range ss.s.qrs {
		l = append(l, q.st.(*pending).bits.Len())
	}
	return l
}

func (ss *StructuredSuite) TestSplit() {
	s := ss.s
	ss.Require().NoError(s.AddData([]byte(fox)))
	ss.Equal(3, s.Count())
	ss.Equal(2, s.cur)
	// 15, 15 and 13 bytes, each after a 20 bit header
	ss.Equal([]int{20 + 12 + 120, 20 + 12 + 120, 20 + 12 + 104}, ss.lens())
	ss.Equal(byte(0x4f), s.Parity())
	ss.True(s.HasData())
	ss.False(s.IsFinalized())

	// 16 bits are left in the last symbol, too few for a segment,
	// so a fourth one starts.
	ss.Require().NoError(s.AddData([]byte("!")))
	ss.Equal(4, s.Count())
	ss.Equal([]int{152, 152, 136, 20 + 12 + 8}, ss.lens())

	// Fits in the last symbol.
	ss.Require().NoError(s.AddData([]byte("ab")))
	ss.Equal(4, s.Count())
	ss.Equal([]int{152, 152, 136, 40 + 12 + 16}, ss.lens())
	ss.Equal(byte(0x4f^'!'^'a'^'b'), s.Parity())
}

func (ss *StructuredSuite) TestTooLarge() {
	s, err := NewStructured(1, coding.Byte, coding.L, Auto, 2)
	ss.Require().NoError(err)
	err = s.AddData([]byte(strings.Repeat("x", 31)))
	ss.Require().ErrorIs(err, ErrTooLarge)
	ss.Equal("qr: input data too large, 328 total encoded bits "+
		"(max 304 bits on version=1, ecl=L, num=2)", err.Error())
	var e *Error
	ss.Require().True(errors.As(err, &e))
	ss.Equal(2, e.Symbols)
	ss.Equal(1, s.Count())
	ss.False(s.HasData())
	ss.Zero(s.Parity())
	ss.Equal(ErrTooLarge, s.ErrorCode())
	ss.Equal(err, s.Symbol(0).Err())

	ss.Require().NoError(s.AddData([]byte(strings.Repeat("x", 30))))
	ss.Equal(2, s.Count())
}

func (ss *StructuredSuite) TestContentError() {
	s := ss.s
	ss.Require().NoError(s.AddData([]byte("abc")))
	err := s.AddDataMode([]byte("12a"), coding.Numeric)
	ss.Require().ErrorIs(err, ErrNotNumeric)
	ss.Equal("qr: non decimal characters found at offset 2", err.Error())
	ss.Equal([]int{20 + 12 + 24}, ss.lens())
	ss.Equal(byte('a'^'b'^'c'), s.Parity())
	ss.Equal(err.Error(), s.ErrorMessage())
}

func (ss *StructuredSuite) TestFinalize() {
	s := ss.s
	ss.ErrorIs(s.Finalize(), ErrState)
	ss.Require().NoError(s.AddData([]byte(fox)))
	ss.Require().NoError(s.Finalize())
	ss.True(s.IsFinalized())
	for i := 0; i < s.Count(); i++ {
		q := s.Symbol(i)
		ss.True(q.IsFinalized(), "symbol %d", i)
		ss.Equal(coding.Version(1), q.Version())
		ss.Equal(21, q.Dimension())
	}
	ss.Nil(s.Symbol(3))
	ss.Nil(s.Symbol(-1))
	ss.Len(s.Symbols(), 3)
	ss.NoError(s.Finalize())
	ss.ErrorIs(s.AddData([]byte("x")), ErrState)
	ss.Equal("qr: AddData: not allowed in the current state", s.ErrorMessage())
}

func (ss *StructuredSuite) TestCloneDestroy() {
	s := ss.s
	ss.Require().NoError(s.AddData([]byte(fox)))
	c := s.Clone()
	ss.Require().NoError(c.AddData([]byte("ab")))
	ss.Equal(3, s.Count())
	ss.Equal(byte(0x4f), s.Parity())
	ss.Equal(byte(0x4f^'a'^'b'), c.Parity())
	ss.Require().NoError(s.Finalize())
	ss.False(c.IsFinalized())

	s.Destroy()
	ss.Zero(s.Count())
	ss.False(s.HasData())
	ss.False(s.IsFinalized())
	ss.ErrorIs(s.AddData([]byte("x")), ErrState)
	ss.ErrorIs(s.Finalize(), ErrState)
	ss.Equal(ErrState, s.ErrorCode())
	ss.Require().NoError(c.Finalize())
	ss.Equal(4, c.Count())
}

func TestStructured(t *testing.T) {
	suite.Run(t, new(StructuredSuite))
}

func TestNewStructured(t *testing.T) {
	for _, tt := range []struct {
		v    coding.Version
		max  int
		code ErrorCode
	}{
		{1, 1, ErrInvalidMaxNum},
		{1, 17, ErrInvalidMaxNum},
		{Auto, 2, ErrInvalidVersion},
		{41, 2, ErrInvalidVersion},
	} {
		_, err := NewStructured(tt.v, Auto, coding.M, Auto, tt.max)
		assert.ErrorIs(t, err, tt.code, "%+v", tt)
	}
	_, err := NewStructured(1, Auto, coding.M, 8, 2)
	assert.ErrorIs(t, err, ErrInvalidMask)
	s, err := NewStructured(10, Auto, coding.Q, Auto, MaxSymbols)
	require.NoError(t, err)
	assert.Equal(t, MaxSymbols, s.Max())
	assert.Equal(t, coding.Version(10), s.Version())
	assert.Equal(t, coding.Q, s.Level())
	assert.Equal(t, coding.Mode(Auto), s.Mode())
	assert.Nil(t, s.Err())
}

func TestStructuredKanji(t *testing.T) {
	// 1-H holds 72 bits: 52 after the header, 40 of kanji data.
	s, err := NewStructured(1, coding.Kanji, coding.H, Auto, 16)
	require.NoError(t, err)
	data := []byte(strings.Repeat("\x93\x5f", 7))
	require.NoError(t, s.AddData(data))
	assert.Equal(t, 3, s.Count())
	for i, n := range []int{3, 3, 1} {
		assert.Equal(t, 20+12+13*n, s.qrs[i].st.(*pending).bits.Len(), "symbol %d", i)
	}
	assert.Equal(t, byte(0x93^0x5f), s.Parity())
	require.NoError(t, s.Finalize())
}
