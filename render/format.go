// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strconv"
	"strings"

	"github.com/unixdj/qrcode"
)

// A Format is an output format.
type Format int

// Output formats.
const (
	PNG   Format = iota // Portable Network Graphics
	BMP                 // Windows bitmap
	TIFF                // Tagged Image File Format
	PBM                 // Portable Bitmap, binary
	SVG                 // Scalable Vector Graphics
	JSON                // array of rows of 1 (dark) and 0 (light)
	Digit               // rows of 1 and 0 separated by spaces
	ASCII               // ASCII art, two characters per module
	EPS                 // Encapsulated PostScript
	numFormats
)

var formats = [numFormats]struct {
	name, mime, ext string
}{
	PNG:   {"png", "image/png", "png"},
	BMP:   {"bmp", "image/bmp", "bmp"},
	TIFF:  {"tiff", "image/tiff", "tiff"},
	PBM:   {"pbm", "image/x-portable-bitmap", "pbm"},
	SVG:   {"svg", "image/svg+xml", "svg"},
	JSON:  {"json", "application/json", "json"},
	Digit: {"digit", "text/plain", "txt"},
	ASCII: {"ascii", "text/plain", "txt"},
	EPS:   {"eps", "application/postscript", "eps"},
}

// Formats the library knows of but cannot produce.
var unsupported = []string{"gif", "jpeg", "jpg", "webp"}

func (f Format) String() string {
	if f.IsValid() {
		return formats[f].name
	}
	return "format(" + strconv.Itoa(int(f)) + ")"
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return 0 <= f && f < numFormats
}

// MIMEType returns the media type of f, or "" if f is invalid.
func (f Format) MIMEType() string {
	if f.IsValid() {
		return formats[f].mime
	}
	return ""
}

// Extension returns the file name extension of f without the dot, or
// "" if f is invalid.
func (f Format) Extension() string {
	if f.IsValid() {
		return formats[f].ext
	}
	return ""
}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	if s == "tif" {
		s = "tiff"
	}
	for f := range formats {
		if formats[f].name == s {
			return Format(f), nil
		}
	}
	for _, u := range unsupported {
		if s == u {
			return 0, qrcode.ErrUnsupportedFormat
		}
	}
	return 0, qrcode.ErrInvalidFormat
}

// Names returns the names of all formats in order.
func Names() []string {
	n := make([]string, numFormats)
	for f := range formats {
		n[f] = formats[f].name
	}
	return n
}
