// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"bytes"
	"io"
)

// textFormat describes a text rendering.  Pixels of a row are joined
// by pixSep and enclosed in begin and end, rows are joined by rowSep
// and the whole is enclosed in head and tail.
type textFormat struct {
	head, tail  string
	begin, end  string
	pixSep      string
	rowSep      string
	light, dark string
}

var (
	digitText = textFormat{rowSep: " ", light: "0", dark: "1"}
	asciiText = textFormat{end: "\n", light: "  ", dark: "XX"}
	jsonText  = textFormat{
		head: "[", tail: "]",
		begin: "[", end: "]",
		pixSep: ",", rowSep: ",",
		light: "0", dark: "1",
	}
)

func (t *textFormat) write(w io.Writer, r *raster) error {
	b := bufio.NewWriter(w)
	b.WriteString(t.head)
	var row bytes.Buffer
	for y := 0; y < r.h; y++ {
		row.Reset()
		row.WriteString(t.begin)
		for x := 0; x < r.w; x++ {
			p := t.light
			if r.dark(y, x) {
				p = t.dark
			}
			for i := 0; i < r.mag; i++ {
				if x != 0 || i != 0 {
					row.WriteString(t.pixSep)
				}
				row.WriteString(p)
			}
		}
		row.WriteString(t.end)
		for i := 0; i < r.mag; i++ {
			if y != 0 || i != 0 {
				b.WriteString(t.rowSep)
			}
			b.Write(row.Bytes())
		}
	}
	b.WriteString(t.tail)
	return b.Flush()
}

// writeDigit writes rows of '1' for dark and '0' for light pixels,
// separated by spaces.
func writeDigit(w io.Writer, r *raster) error { return digitText.write(w, r) }

// writeASCII writes "XX" for dark and two spaces for light pixels,
// each row ending in a newline.
func writeASCII(w io.Writer, r *raster) error { return asciiText.write(w, r) }

// writeJSON writes an array of rows, each an array of 1 for dark and
// 0 for light pixels.
func writeJSON(w io.Writer, r *raster) error { return jsonText.write(w, r) }
