// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"go.uber.org/zap"

	"github.com/unixdj/qrcode/coding"
)

// MaxSymbols is the maximum number of symbols in a Structured Append
// set.
const MaxSymbols = 16

// headerBits is the length of the Structured Append header: mode
// indicator, symbol position, last position and parity.
const headerBits = 4 + 4 + 4 + 8

// Structured is a Structured Append set: data split over up to 16
// symbols of the same version, decoded as one message.  Symbols are
// added as the data grows.  A Structured must not be used
// concurrently.
type Structured struct {
	param  params
	max    int
	qrs    []*Symbol // nil after Destroy
	cur    int       // index of the symbol receiving data
	parity byte      // XOR of all data bytes
	state  state
	err    *Error
}

// NewStructured returns a new Structured Append set of at most max
// symbols, 2 to MaxSymbols, with the given version, mode, error
// correction level and mask pattern.  Mode and mask may be Auto; the
// version may not.
func NewStructured(v coding.Version, m coding.Mode, l coding.Level, mask, max int) (*Structured, error) {
	if max < 2 || max > MaxSymbols {
		return nil, &Error{Code: ErrInvalidMaxNum}
	}
	p := params{v, m, l, mask}
	if v == Auto {
		return nil, &Error{Code: ErrInvalidVersion}
	}
	if err := p.check(); err != nil {
		return nil, err
	}
	return &Structured{
		param: p,
		max:   max,
		qrs:   []*Symbol{{param: p, st: &pending{}}},
	}, nil
}

func (s *Structured) fail(op string, e *Error) error {
	e.Op = op
	s.err = e
	if s.qrs != nil {
		s.qrs[s.cur].err = e
	}
	return e
}

// AddData adds data encoded in the mode the set was created with.
func (s *Structured) AddData(data []byte) error {
	return s.AddDataMode(data, s.param.mode)
}

// AddDataMode adds data encoded in mode m, which may be Auto,
// splitting it over as many new symbols as needed.  On failure the
// set is left unchanged.
func (s *Structured) AddDataMode(data []byte, m coding.Mode) error {
	const op = "AddData"
	if s.qrs == nil || s.state == stateFinal {
		return s.fail(op, &Error{Code: ErrState})
	}
	if len(data) == 0 {
		return s.fail(op, &Error{Code: ErrEmptyData})
	}
	if m == Auto {
		m = coding.Classify(data)
	} else if !m.IsValid() {
		return s.fail(op, &Error{Code: ErrInvalidMode})
	}
	if err := coding.Validate(m, data); err != nil {
		return s.fail(op, contentError(err))
	}

	v, l := s.param.version, s.param.level
	maxlen := v.DataBits(l)
	limit := maxlen - headerBits
	remain := limit
	if cur := s.qrs[s.cur]; cur.HasData() {
		remain = cur.st.(*pending).bits.Remaining()
	}
	enclen := coding.EncodedLength(m, len(data), v)

	// Cut data greedily, first into the current symbol, then into
	// new ones.
	rest := len(data)
	var sizes []int
	if enclen <= remain {
		sizes, rest = []int{rest}, 0
	} else {
		r := remain
		for i := 0; i <= s.max-len(s.qrs) && rest > 0; i++ {
			n := min(coding.EncodableLength(m, r, v), rest)
			sizes = append(sizes, n)
			rest -= n
			r = limit
		}
	}
	if rest > 0 {
		num := len(s.qrs)
		k := max((enclen+maxlen-1)/maxlen-(num-1), 1)
		return s.fail(op, &Error{
			Code: ErrTooLarge,
			Required: maxlen*(num-1) + (maxlen - remain) + enclen +
				m.CountLength(v)*(k-1) + headerBits*k,
			Available: maxlen * s.max,
			Version:   v,
			Level:     l,
			Symbols:   s.max,
		})
	}

	if len(sizes) > 1 {
		Logger().Debug("qr: structured append split",
			zap.Ints("sizes", sizes), zap.Int("symbols", len(s.qrs)+len(sizes)-1))
	}
	for i, n := range sizes {
		if i != 0 {
			s.qrs = append(s.qrs, &Symbol{param: s.param, st: &pending{}})
			s.cur++
		}
		if n != 0 {
			s.qrs[s.cur].addMember(m, data[:n])
		}
		for _, b := range data[:n] {
			s.parity ^= b
		}
		data = data[n:]
	}
	s.state = stateSet
	return nil
}

// addMember adds a segment of valid data that fits to a member of a
// Structured Append set.  A new member gets a placeholder header.
func (q *Symbol) addMember(m coding.Mode, data []byte) {
	v, l := q.param.version, q.param.level
	p := q.st.(*pending)
	if p.bits == nil {
		p.bits = coding.NewBits(v.DataBytes(l))
		p.bits.Write(0, headerBits)
		p.enclen = headerBits
	}
	if err := p.bits.Encode(m, data, v); err != nil {
		panic("qr: internal error: " + err.Error())
	}
	p.enclen += coding.EncodedLength(m, len(data), v)
	q.state = stateSet
}

// Finalize writes the Structured Append header of every symbol and
// finalizes them.  Finalizing a finalized set does nothing.  On
// failure no symbol is finalized.
func (s *Structured) Finalize() error {
	const op = "Finalize"
	if s.qrs == nil {
		return s.fail(op, &Error{Code: ErrState})
	}
	if s.state == stateFinal {
		return nil
	}
	if s.state == stateBegin {
		return s.fail(op, &Error{Code: ErrState})
	}
	type built struct {
		f    *final
		v    coding.Version
		mask int
	}
	last := len(s.qrs) - 1
	res := make([]built, len(s.qrs))
	for i, q := range s.qrs {
		hdr := uint32(3)<<16 | uint32(i)<<12 | uint32(last)<<8 | uint32(s.parity)
		f, v, mask, err := q.build(q.st.(*pending), func(b *coding.Bits) {
			b.Overwrite(0, hdr, headerBits)
		})
		if err != nil {
			return s.fail(op, err.(*Error))
		}
		res[i] = built{f, v, mask}
	}
	for i, q := range s.qrs {
		q.commit(res[i].f, res[i].v, res[i].mask)
	}
	s.state = stateFinal
	return nil
}

// IsFinalized reports whether s is finalized.
func (s *Structured) IsFinalized() bool {
	return s.qrs != nil && s.state == stateFinal
}

// HasData reports whether data has been added to s.
func (s *Structured) HasData() bool {
	return s.qrs != nil && s.state != stateBegin
}

// Clone returns a deep copy of s.
func (s *Structured) Clone() *Structured {
	c := *s
	if s.qrs != nil {
		c.qrs = make([]*Symbol, len(s.qrs))
		for i, q := range s.qrs {
			c.qrs[i] = q.Clone()
		}
	}
	if s.err != nil {
		e := *s.err
		c.err = &e
	}
	return &c
}

// Destroy releases all symbols of s.  Any later operation fails.
func (s *Structured) Destroy() {
	for _, q := range s.qrs {
		q.Destroy()
	}
	s.qrs = nil
	s.cur = 0
}

// Err returns the error of the last failed operation, or nil.
func (s *Structured) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// ErrorCode returns the code of the last failed operation, or ErrNone.
func (s *Structured) ErrorCode() ErrorCode {
	if s.err == nil {
		return ErrNone
	}
	return s.err.Code
}

// ErrorMessage returns the message of the last failed operation, or "".
func (s *Structured) ErrorMessage() string {
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// Count returns the number of symbols in s.
func (s *Structured) Count() int { return len(s.qrs) }

// Max returns the maximum number of symbols of s.
func (s *Structured) Max() int { return s.max }

// Parity returns the XOR of all data bytes added to s.
func (s *Structured) Parity() byte { return s.parity }

// Version returns the version of the symbols of s.
func (s *Structured) Version() coding.Version { return s.param.version }

// Mode returns the mode s was created with.
func (s *Structured) Mode() coding.Mode { return s.param.mode }

// Level returns the error correction level of the symbols of s.
func (s *Structured) Level() coding.Level { return s.param.level }

// Symbol returns symbol i of s, or nil if there is none.
func (s *Structured) Symbol(i int) *Symbol {
	if i < 0 || i >= len(s.qrs) {
		return nil
	}
	return s.qrs[i]
}

// Symbols returns the symbols of s.
func (s *Structured) Symbols() []*Symbol {
	return append([]*Symbol(nil), s.qrs...)
}
