// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrcode/coding"
)

func TestClassify(t *testing.T) {
	sp := classify([]byte("0123ABC\x93\x5f\x96\x7bxyz9"))
	want := []struct {
		start, slen, klen int
		modes             byte
	}{
		{0, 4, 0, numModes},
		{4, 3, 0, alphaModes},
		{7, 4, 2, kanjiModes},
		{11, 3, 0, byteModes},
		{14, 1, 0, numModes},
	}
	require.Len(t, sp, len(want))
	for i, w := range want {
		assert.Equal(t, w.start, sp[i].start, "span %d", i)
		assert.Equal(t, w.slen, sp[i].slen, "span %d", i)
		assert.Equal(t, w.klen, sp[i].klen, "span %d", i)
		assert.Equal(t, w.modes, sp[i].modes, "span %d", i)
	}
	assert.Nil(t, classify(nil))
	// A lone lead byte is a byte.
	sp = classify([]byte("\x93"))
	require.Len(t, sp, 1)
	assert.Equal(t, byte(byteModes), sp[0].modes)
}

type seg struct {
	mode coding.Mode
	text string
}

func splitText(text string, class int) ([]seg, int) {
	s := split(classify([]byte(text)), class)
	if s == nil {
		return nil, 0
	}
	var segs []seg
	for g := s; g != nil; g = g.next {
		segs = append(segs, seg{g.mode, text[g.start : g.start+g.slen]})
	}
	return segs, s.weight
}

func TestSplit(t *testing.T) {
	for _, tt := range []struct {
		text   string
		class  int
		segs   []seg
		weight int
	}{
		{"0123456789", 0, []seg{{coding.Numeric, "0123456789"}}, 4 + 10 + 34},
		{"0123456789", 2, []seg{{coding.Numeric, "0123456789"}}, 4 + 14 + 34},
		{"abc", 0, []seg{{coding.Byte, "abc"}}, 12 + 24},
		{"A1", 0, []seg{{coding.Alphanumeric, "A1"}}, 13 + 11},
		{"a12345678901234567890b", 0, []seg{
			{coding.Byte, "a"},
			{coding.Numeric, "12345678901234567890"},
			{coding.Byte, "b"},
		}, 20 + 14 + 67 + 20},
		{"a123b", 0, []seg{{coding.Byte, "a123b"}}, 12 + 40},
		{"\x93\x5f\x96\x7b", 0, []seg{{coding.Kanji, "\x93\x5f\x96\x7b"}}, 12 + 26},
		{"HELLO WORLD 1234567890123", 1, []seg{
			{coding.Alphanumeric, "HELLO WORLD "},
			{coding.Numeric, "1234567890123"},
		}, 4 + 11 + 66 + 4 + 12 + 44},
		{"", 0, nil, 0},
	} {
		segs, w := splitText(tt.text, tt.class)
		assert.Equal(t, tt.segs, segs, "%q", tt.text)
		assert.Equal(t, tt.weight, w, "%q", tt.text)
		if segs != nil {
			sum := 0
			for _, s := range segs {
				sum += coding.EncodedLength(s.mode, len(s.text), [...]coding.Version{1, 10, 27}[tt.class])
			}
			assert.Equal(t, w, sum, "%q", tt.text)
		}
	}
}

func TestAddText(t *testing.T) {
	text := "Order 12345678901234567890 HELLO"
	s, err := New(Auto, Auto, coding.M, Auto)
	require.NoError(t, err)
	require.NoError(t, s.AddText([]byte(text)))
	segs, w := splitText(text, coding.Class0)
	require.Len(t, segs, 3)
	p := s.st.(*pending)
	assert.Equal(t, w+p.delta1, p.enclen)
	assert.Equal(t, 3*5+len(text), len(p.segs))
	require.NoError(t, s.Finalize())

	// Mixed text is smaller than byte mode alone.
	b, err := New(Auto, coding.Byte, coding.M, Auto)
	require.NoError(t, err)
	require.NoError(t, b.AddData([]byte(text)))
	assert.Less(t, p.enclen, b.st.(*pending).enclen)

	f, err := New(2, Auto, coding.L, Auto)
	require.NoError(t, err)
	require.NoError(t, f.AddText([]byte(text)))
	assert.Equal(t, w, f.st.(*pending).bits.Len())
	require.NoError(t, f.Finalize())
	assert.Equal(t, coding.Version(2), f.Version())
}

func TestAddTextErrors(t *testing.T) {
	s, err := New(1, Auto, coding.H, Auto)
	require.NoError(t, err)
	assert.ErrorIs(t, s.AddText(nil), ErrEmptyData)
	err = s.AddText([]byte(strings.Repeat("x", 8)))
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, "qr: input data too large, 76 total encoded bits "+
		"(max 72 bits on version=1, ecl=H)", err.Error())
	assert.False(t, s.HasData())
	require.NoError(t, s.AddText([]byte(strings.Repeat("x", 7))))
	require.NoError(t, s.Finalize())
	assert.ErrorIs(t, s.AddText([]byte("x")), ErrState)
}
