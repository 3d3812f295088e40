// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrcode encodes data into QR Code symbols, singly or as a
Structured Append set.

A Symbol is created with New, fed with AddData and closed with
Finalize, after which its modules can be read with IsBlack:

	s, err := qrcode.New(qrcode.Auto, qrcode.Auto, coding.M, qrcode.Auto)
	if err != nil {
		return err
	}
	if err := s.AddData([]byte("HELLO WORLD")); err != nil {
		return err
	}
	if err := s.Finalize(); err != nil {
		return err
	}

Package render converts finalized symbols to images and text.
*/
package qrcode // import "github.com/unixdj/qrcode"

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/unixdj/qrcode/coding"
)

// Auto requests automatic selection of the version, the mode or the
// mask pattern.
const Auto = -1

type state int

const (
	stateBegin state = iota // no data
	stateSet                // data added
	stateFinal              // finalized
)

type params struct {
	version coding.Version
	mode    coding.Mode
	level   coding.Level
	mask    int
}

func (p *params) check() *Error {
	switch {
	case p.version != Auto && !p.version.IsValid():
		return &Error{Code: ErrInvalidVersion}
	case p.mode != Auto && !p.mode.IsValid():
		return &Error{Code: ErrInvalidMode}
	case !p.level.IsValid():
		return &Error{Code: ErrInvalidLevel}
	case p.mask != Auto && (p.mask < 0 || p.mask > 7):
		return &Error{Code: ErrInvalidMask}
	}
	return nil
}

// stage holds the mutable part of a Symbol: a *pending before
// Finalize, a *final after.
type stage interface {
	clone() stage
}

// pending is the data of a Symbol that is not finalized.
type pending struct {
	bits   *coding.Bits // encoded data; fixed version only
	segs   []byte       // buffered segments; automatic version only
	enclen int          // encoded length, at version 40 if automatic

	// Character count width savings of versions 1-9 and 10-26
	// relative to version 40.
	delta1, delta2 int
}

func (p *pending) clone() stage {
	c := *p
	if p.bits != nil {
		c.bits = p.bits.Clone()
	}
	c.segs = append([]byte(nil), p.segs...)
	return &c
}

// final is the module matrix of a finalized Symbol.
type final struct {
	m *coding.Matrix
}

func (f *final) clone() stage {
	return &final{f.m.Clone()}
}

// A Symbol is a single QR Code symbol.
// Its lifecycle is New, AddData any number of times, Finalize.
// A Symbol must not be used concurrently.
type Symbol struct {
	param params
	state state
	st    stage // nil after Destroy
	err   *Error
}

// New returns a new Symbol with the given version, mode, error
// correction level and mask pattern.  Version, mode and mask may be
// Auto.
func New(v coding.Version, m coding.Mode, l coding.Level, mask int) (*Symbol, error) {
	p := params{v, m, l, mask}
	if err := p.check(); err != nil {
		return nil, err
	}
	return &Symbol{param: p, st: &pending{}}, nil
}

func (s *Symbol) fail(op string, e *Error) error {
	e.Op = op
	s.err = e
	return e
}

// pending returns the pending data, or an error if s is finalized or
// destroyed.
func (s *Symbol) pending(op string) (*pending, error) {
	p, ok := s.st.(*pending)
	if !ok {
		return nil, s.fail(op, &Error{Code: ErrState})
	}
	return p, nil
}

// AddData adds data encoded in the mode the Symbol was created with.
func (s *Symbol) AddData(data []byte) error {
	return s.AddDataMode(data, s.param.mode)
}

// AddDataMode adds data encoded in mode m, which may be Auto.
func (s *Symbol) AddDataMode(data []byte, m coding.Mode) error {
	const op = "AddData"
	p, err := s.pending(op)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return s.fail(op, &Error{Code: ErrEmptyData})
	}
	if m == Auto {
		m = coding.Classify(data)
	} else if !m.IsValid() {
		return s.fail(op, &Error{Code: ErrInvalidMode})
	}
	l := s.param.level
	v := s.param.version
	if v == Auto {
		v = coding.MaxVersion
	}
	n := coding.EncodedLength(m, len(data), v)
	if avail := v.DataBits(l); p.enclen+n > avail {
		return s.fail(op, &Error{
			Code:      ErrTooLarge,
			Required:  p.enclen + n,
			Available: avail,
			Version:   v,
			Level:     l,
		})
	}
	if s.param.version != Auto {
		if p.bits == nil {
			p.bits = coding.NewBits(v.DataBytes(l))
		}
		if err := p.bits.Encode(m, data, v); err != nil {
			return s.fail(op, contentError(err))
		}
	} else {
		if err := coding.Validate(m, data); err != nil {
			return s.fail(op, contentError(err))
		}
		p.delta1 += m.CountLength(coding.MaxVersion) - m.CountLength(9)
		p.delta2 += m.CountLength(coding.MaxVersion) - m.CountLength(26)
		p.segs = append(p.segs, byte(m)|0x80)
		p.segs = binary.BigEndian.AppendUint32(p.segs, uint32(len(data)))
		p.segs = append(p.segs, data...)
	}
	p.enclen += n
	s.state = stateSet
	return nil
}

// resolve returns the smallest version able to hold the buffered
// segments.
func (p *pending) resolve(l coding.Level) (coding.Version, error) {
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		need := p.enclen
		switch {
		case v <= 9:
			need -= p.delta1
		case v <= 26:
			need -= p.delta2
		}
		if need <= v.DataBits(l) {
			return v, nil
		}
	}
	return 0, &Error{
		Code:      ErrTooLarge,
		Required:  p.enclen,
		Available: coding.MaxVersion.DataBits(l),
		Version:   coding.MaxVersion,
		Level:     l,
	}
}

// replay encodes the buffered segments into b for version v.
func (p *pending) replay(b *coding.Bits, v coding.Version) {
	for segs := p.segs; len(segs) != 0; {
		m := coding.Mode(segs[0] &^ 0x80)
		n := binary.BigEndian.Uint32(segs[1:5])
		if err := b.Encode(m, segs[5:5+n], v); err != nil {
			panic("qr: internal error: " + err.Error())
		}
		segs = segs[5+n:]
	}
}

// build computes the module matrix from the pending data without
// modifying s.  If header is not nil, it is applied to the data
// codewords before padding.
func (s *Symbol) build(p *pending, header func(*coding.Bits)) (*final, coding.Version, int, error) {
	l := s.param.level
	v := s.param.version
	var b *coding.Bits
	if v == Auto {
		var err error
		if v, err = p.resolve(l); err != nil {
			return nil, 0, 0, err
		}
		b = coding.NewBits(v.DataBytes(l))
		p.replay(b, v)
	} else {
		b = p.bits.Clone()
	}
	if header != nil {
		header(b)
	}
	used := b.Len()
	b.Pad()
	data := b.Bytes()
	cw := coding.Interleave(data, coding.ECC(data, v, l), v, l)
	m := coding.NewMatrix(v)
	m.Place(cw)
	mask := s.param.mask
	if mask == Auto {
		var scores [8]int
		mask, scores = m.SelectMask()
		Logger().Debug("qr: mask selected",
			zap.Int("mask", mask), zap.Ints("penalties", scores[:]))
	} else {
		m.ApplyMask(mask)
	}
	m.StampInfo(l, mask)
	Logger().Debug("qr: symbol finalized",
		zap.Stringer("version", v), zap.Stringer("level", l),
		zap.Int("mask", mask), zap.Int("bits", used))
	return &final{m}, v, mask, nil
}

// commit installs a successfully built matrix.
func (s *Symbol) commit(f *final, v coding.Version, mask int) {
	s.param.version = v
	s.param.mask = mask
	s.st = f
	s.state = stateFinal
}

// Finalize builds the symbol from the added data.  Finalizing a
// finalized Symbol does nothing.  On failure the Symbol is left as it
// was and more data may still be added.
func (s *Symbol) Finalize() error {
	return s.finalize(nil)
}

func (s *Symbol) finalize(header func(*coding.Bits)) error {
	const op = "Finalize"
	if s.state == stateFinal && s.st != nil {
		return nil
	}
	p, err := s.pending(op)
	if err != nil {
		return err
	}
	if s.state == stateBegin {
		return s.fail(op, &Error{Code: ErrState})
	}
	f, v, mask, err := s.build(p, header)
	if err != nil {
		return s.fail(op, err.(*Error))
	}
	s.commit(f, v, mask)
	return nil
}

// IsFinalized reports whether s is finalized.
func (s *Symbol) IsFinalized() bool {
	_, ok := s.st.(*final)
	return ok
}

// HasData reports whether data has been added to s.
func (s *Symbol) HasData() bool {
	return s.st != nil && s.state != stateBegin
}

// Clone returns a deep copy of s.
func (s *Symbol) Clone() *Symbol {
	c := *s
	if s.st != nil {
		c.st = s.st.clone()
	}
	if s.err != nil {
		e := *s.err
		c.err = &e
	}
	return &c
}

// Destroy releases the buffers of s.  Any later operation fails.
func (s *Symbol) Destroy() {
	s.st = nil
}

// Err returns the error of the last failed operation, or nil.
func (s *Symbol) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// ErrorCode returns the code of the last failed operation, or ErrNone.
func (s *Symbol) ErrorCode() ErrorCode {
	if s.err == nil {
		return ErrNone
	}
	return s.err.Code
}

// ErrorMessage returns the message of the last failed operation, or "".
func (s *Symbol) ErrorMessage() string {
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// Version returns the version of s, or Auto if it is yet to be chosen.
func (s *Symbol) Version() coding.Version { return s.param.version }

// Mode returns the mode s was created with.
func (s *Symbol) Mode() coding.Mode { return s.param.mode }

// Level returns the error correction level of s.
func (s *Symbol) Level() coding.Level { return s.param.level }

// Mask returns the mask pattern of s, or Auto if it is yet to be
// chosen.
func (s *Symbol) Mask() int { return s.param.mask }

func (s *Symbol) matrix() *coding.Matrix {
	if f, ok := s.st.(*final); ok {
		return f.m
	}
	return nil
}

// Dimension returns the number of modules on a side of a finalized
// symbol, or 0.
func (s *Symbol) Dimension() int {
	if m := s.matrix(); m != nil {
		return m.Size
	}
	return 0
}

// IsBlack reports whether the module at row, col of a finalized
// symbol is dark.
func (s *Symbol) IsBlack(row, col int) bool {
	if m := s.matrix(); m != nil {
		return m.IsBlack(row, col)
	}
	return false
}

// IsFunction reports whether the module at row, col of a finalized
// symbol belongs to a function pattern.
func (s *Symbol) IsFunction(row, col int) bool {
	if m := s.matrix(); m != nil {
		return m.IsFunc(row, col)
	}
	return false
}
