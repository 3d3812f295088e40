// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"go.uber.org/zap"

	"github.com/unixdj/qrcode/coding"
)

const (
	modes = 4 // coding.Numeric to coding.Kanji

	numModes   = 1<<coding.Numeric | 1<<coding.Alphanumeric | 1<<coding.Byte
	alphaModes = 1<<coding.Alphanumeric | 1<<coding.Byte
	byteModes  = 1 << coding.Byte
	kanjiModes = 1<<coding.Byte | 1<<coding.Kanji
)

// segBits[m] returns segment size in bits for n bytes holding k kanji
// encoded in mode m at version size class class.
var segBits = [modes]func(n, k, class int) int{
	coding.Numeric:      func(n, k, class int) int { return 14 + class*2 + (10*n+2)/3 },
	coding.Alphanumeric: func(n, k, class int) int { return 13 + class*2 + (11*n+1)/2 },
	coding.Byte:         func(n, k, class int) int { return 12 + (class<<1>>class+n)*8 },
	coding.Kanji:        func(n, k, class int) int { return 12 + class*2 + k*13 },
}

type (
	// segment describes a segment encoded in a certain mode.
	segment struct {
		next   *segment    // link to next segment in the chain
		start  int         // start of data
		slen   int         // length of data in bytes
		klen   int         // length of data in kanji
		weight int         // encoded size of all segments in the chain
		mode   coding.Mode // encoding mode
	}

	// span describes a span of bytes encodable in the same modes.
	span struct {
		start int            // start of data
		slen  int            // length of data in bytes
		klen  int            // length of data in kanji
		modes byte           // bit field of valid encoding modes
		seg   [modes]segment // segments
	}
)

// classify splits data into spans of bytes encodable in the same
// modes.  A Shift JIS kanji pair is never split.
func classify(data []byte) []span {
	var sp []span
	for i := 0; i < len(data); {
		m, n, k := byte(byteModes), 1, 0
		switch c := data[i]; {
		case coding.IsDigit(c):
			m = numModes
		case coding.IsAlphanumeric(c):
			m = alphaModes
		case i+1 < len(data) && coding.IsKanjiPair(c, data[i+1]):
			m, n, k = kanjiModes, 2, 1
		}
		if last := len(sp) - 1; last >= 0 && sp[last].modes == m {
			sp[last].slen += n
			sp[last].klen += k
		} else {
			sp = append(sp, span{start: i, slen: n, klen: k, modes: m})
		}
		i += n
	}
	return sp
}

/*
split returns the optimal split for the data described by sp at the
given version size class.

For the last span, for each valid mode j, sp[len(sp)-1].seg[j]
describes the span encoded in mode j.

Walking backwards through the rest of the spans, for each span i and
each valid mode j, a segment is linked to each valid segment k of
span i+1.  If k==j, the two are merged instead.  The lightest chain
becomes sp[i].seg[j].

The lightest segment of sp[0] heads the optimal chain.
*/
func split(sp []span, class int) *segment {
	const inf = 1 << 30
	i := len(sp) - 1
	if i < 0 {
		return nil
	}
	for j := coding.Mode(0); j < modes; j++ {
		seg := &sp[i].seg[j]
		*seg = segment{weight: inf}
		if sp[i].modes>>j&1 != 0 {
			*seg = segment{
				start:  sp[i].start,
				slen:   sp[i].slen,
				klen:   sp[i].klen,
				weight: segBits[j](sp[i].slen, sp[i].klen, class),
				mode:   j,
			}
		}
	}

	for i--; i >= 0; i-- {
		v := &sp[i]
		for j := coding.Mode(0); j < modes; j++ {
			seg := &v.seg[j]
			*seg = segment{weight: inf}
			if v.modes>>j&1 == 0 {
				continue
			}
			weight := segBits[j](v.slen, v.klen, class)
			for k := coding.Mode(0); k < modes; k++ {
				next := &sp[i+1].seg[k]
				if next.weight == inf {
					continue
				}
				c := segment{
					next:   next,
					start:  v.start,
					slen:   v.slen,
					klen:   v.klen,
					weight: weight,
					mode:   j,
				}
				if k == j {
					c.slen += next.slen
					c.klen += next.klen
					c.next = next.next
					c.weight = segBits[j](c.slen, c.klen, class)
				}
				if c.next != nil {
					c.weight += c.next.weight
				}
				if c.weight < seg.weight {
					*seg = c
				}
			}
		}
	}

	seg := &sp[0].seg[0]
	for j := 1; j < modes; j++ {
		if sp[0].seg[j].weight < seg.weight {
			seg = &sp[0].seg[j]
		}
	}
	return seg
}

// AddText adds text split into segments of mixed modes so that the
// encoded length is minimal.  Shift JIS kanji pairs are encoded in
// kanji mode where that helps.  On failure s is left unchanged.
func (s *Symbol) AddText(text []byte) error {
	const op = "AddText"
	p, err := s.pending(op)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return s.fail(op, &Error{Code: ErrEmptyData})
	}
	l := s.param.level
	v := s.param.version
	sp := classify(text)
	var seg *segment
	if v != Auto {
		seg = split(sp, v.SizeClass())
	} else {
		// Pick the smallest size class that can hold the text.
		for class := coding.Class0; class <= coding.Class2; class++ {
			seg = split(sp, class)
			need, top := p.enclen+seg.weight, coding.MaxVersion
			switch class {
			case coding.Class0:
				need, top = need-p.delta1, 9
			case coding.Class1:
				need, top = need-p.delta2, 26
			}
			if need <= top.DataBits(l) {
				break
			}
		}
		v = coding.MaxVersion
	}

	need, n := p.enclen, 0
	for g := seg; g != nil; g = g.next {
		need += coding.EncodedLength(g.mode, g.slen, v)
		n++
	}
	if avail := v.DataBits(l); need > avail {
		return s.fail(op, &Error{
			Code:      ErrTooLarge,
			Required:  need,
			Available: avail,
			Version:   v,
			Level:     l,
		})
	}
	Logger().Debug("qr: text split",
		zap.Int("segments", n), zap.Int("bits", seg.weight))
	for g := seg; g != nil; g = g.next {
		if err := s.AddDataMode(text[g.start:g.start+g.slen], g.mode); err != nil {
			return err
		}
	}
	return nil
}
