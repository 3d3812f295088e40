// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"fmt"
	"strconv"

	"github.com/unixdj/qrcode/coding"
)

// An ErrorCode identifies a class of failure.
// It implements error, so that errors.Is(err, ErrTooLarge) matches any
// *Error with that code.
type ErrorCode int

// Error codes.
const (
	ErrNone ErrorCode = 0

	ErrInvalidArg        ErrorCode = 0x01
	ErrInvalidVersion    ErrorCode = 0x02
	ErrInvalidMode       ErrorCode = 0x03
	ErrInvalidLevel      ErrorCode = 0x04
	ErrInvalidMask       ErrorCode = 0x05
	ErrInvalidMag        ErrorCode = 0x06
	ErrInvalidSep        ErrorCode = 0x07
	ErrInvalidFormat     ErrorCode = 0x09
	ErrInvalidMaxNum     ErrorCode = 0x0b
	ErrUnsupportedFormat ErrorCode = 0x0c

	ErrEmptyData       ErrorCode = 0x10
	ErrTooLarge        ErrorCode = 0x11
	ErrNotNumeric      ErrorCode = 0x12
	ErrNotAlphanumeric ErrorCode = 0x13
	ErrNotKanji        ErrorCode = 0x14

	ErrImageTooLarge ErrorCode = 0x30

	ErrState ErrorCode = 0x73
)

var errorText = map[ErrorCode]string{
	ErrNone:              "no error",
	ErrInvalidArg:        "invalid argument",
	ErrInvalidVersion:    "invalid version number",
	ErrInvalidMode:       "invalid encoding mode",
	ErrInvalidLevel:      "invalid error correction level",
	ErrInvalidMask:       "invalid mask pattern",
	ErrInvalidMag:        "invalid magnifying ratio",
	ErrInvalidSep:        "invalid separator width",
	ErrInvalidFormat:     "invalid output format",
	ErrInvalidMaxNum:     "invalid maximum number of symbols",
	ErrUnsupportedFormat: "unsupported output format",
	ErrEmptyData:         "empty data",
	ErrTooLarge:          "input data too large",
	ErrNotNumeric:        "non decimal characters found",
	ErrNotAlphanumeric:   "non alphanumeric characters found",
	ErrNotKanji:          "non JIS X 0208 kanji sequence found",
	ErrImageTooLarge:     "output image size too large",
	ErrState:             "not allowed in the current state",
}

func (c ErrorCode) String() string {
	if s, ok := errorText[c]; ok {
		return s
	}
	return "error " + strconv.Itoa(int(c))
}

func (c ErrorCode) Error() string {
	return "qr: " + c.String()
}

// Error describes a failed operation.  Fields other than Code are
// set depending on the kind of error.
type Error struct {
	Code ErrorCode
	Op   string // operation, for state errors; "unknown" if unset

	Offset int // content errors: offset of the offending byte

	// Capacity errors.
	Required  int            // total encoded bits
	Available int            // maximum bits
	Version   coding.Version // version the maximum applies to
	Level     coding.Level
	Symbols   int // structured append: number of symbols, or 0
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrNotNumeric, ErrNotAlphanumeric, ErrNotKanji:
		return fmt.Sprintf("qr: %s at offset %d", e.Code.String(), e.Offset)
	case ErrTooLarge:
		s := fmt.Sprintf("qr: %s, %d total encoded bits (max %d bits on version=%d, ecl=%v",
			e.Code.String(), e.Required, e.Available, e.Version, e.Level)
		if e.Symbols > 0 {
			s += fmt.Sprintf(", num=%d", e.Symbols)
		}
		return s + ")"
	case ErrState:
		op := e.Op
		if op == "" {
			op = "unknown"
		}
		return "qr: " + op + ": " + e.Code.String()
	}
	return e.Code.Error()
}

// Unwrap returns the error code.
func (e *Error) Unwrap() error {
	return e.Code
}

// contentError converts a coding.DataError to an *Error.
func contentError(err error) *Error {
	de, ok := err.(*coding.DataError)
	if !ok {
		panic("qr: internal error: " + err.Error())
	}
	code := ErrNotNumeric
	switch de.Mode {
	case coding.Alphanumeric:
		code = ErrNotAlphanumeric
	case coding.Kanji:
		code = ErrNotKanji
	}
	return &Error{Code: code, Offset: de.Offset}
}

// errorOf returns the code of err, ErrNone for nil.
func errorOf(err error) ErrorCode {
	switch e := err.(type) {
	case nil:
		return ErrNone
	case *Error:
		return e.Code
	case ErrorCode:
		return e
	}
	return ErrInvalidArg
}
