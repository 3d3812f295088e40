// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package render converts finalized QR Code symbols to images and text.

A symbol, or the symbols of a Structured Append set laid out in a grid,
is surrounded and separated by a light quiet zone sep modules wide, and
every module is drawn as a square of mag by mag pixels (points for EPS,
characters for the text formats).
*/
package render // import "github.com/unixdj/qrcode/render"

import (
	"image"
	"image/color"
	"io"

	"github.com/unixdj/qrcode"
)

// Limits of the quiet zone width and the magnification.
const (
	DefaultSep = 4
	MaxSep     = 16
	MaxMag     = 16
)

// maxSide limits the width and height of an image in pixels.
const maxSide = 1 << 15

// A View is a read-only square of modules.  *qrcode.Symbol
// implements View.
type View interface {
	Dimension() int
	IsBlack(row, col int) bool
}

// A Sheet is a grid of symbols of equal dimension.
type Sheet struct {
	views      []View
	dim        int
	rows, cols int
	colMajor   bool
}

// Grid lays out views in a grid.  If order is 0, the views are placed
// in a single row.  If order is positive, it is the number of columns
// and the views fill rows first; if negative, -order is the number of
// rows and the views fill columns first.  Empty cells are light.
func Grid(views []View, order int) (*Sheet, error) {
	if len(views) == 0 {
		return nil, qrcode.ErrInvalidArg
	}
	dim := views[0].Dimension()
	if dim == 0 {
		return nil, &qrcode.Error{Code: qrcode.ErrState, Op: "Grid"}
	}
	for _, v := range views[1:] {
		if v.Dimension() != dim {
			return nil, qrcode.ErrInvalidArg
		}
	}
	n := len(views)
	s := &Sheet{views: views, dim: dim, rows: 1, cols: n}
	switch {
	case order > 0:
		s.cols = min(order, n)
		s.rows = (n + s.cols - 1) / s.cols
	case order < 0:
		s.rows = min(-order, n)
		s.cols = (n + s.rows - 1) / s.rows
		s.colMajor = true
	}
	return s, nil
}

// Views returns the symbols of a Structured Append set as views.
func Views(st *qrcode.Structured) []View {
	v := make([]View, st.Count())
	for i := range v {
		v[i] = st.Symbol(i)
	}
	return v
}

// Layout returns the number of rows and columns of s.
func (s *Sheet) Layout() (rows, cols int) {
	return s.rows, s.cols
}

// Size returns the width and height of s in modules, including
// a quiet zone sep modules wide.
func (s *Sheet) Size(sep int) (w, h int) {
	return s.cols*(s.dim+sep) + sep, s.rows*(s.dim+sep) + sep
}

// isBlack reports whether the module at row, col of s is dark, with
// a quiet zone sep modules wide.
func (s *Sheet) isBlack(sep, row, col int) bool {
	row, col = row-sep, col-sep
	if row < 0 || col < 0 {
		return false
	}
	pitch := s.dim + sep
	k, i := row/pitch, row%pitch
	kx, j := col/pitch, col%pitch
	if i >= s.dim || j >= s.dim || k >= s.rows || kx >= s.cols {
		return false
	}
	pos := k*s.cols + kx
	if s.colMajor {
		pos = k + s.rows*kx
	}
	return pos < len(s.views) && s.views[pos].IsBlack(i, j)
}

// raster is a Sheet with the quiet zone and magnification fixed.
type raster struct {
	s        *Sheet
	sep, mag int
	w, h     int // in modules
}

func (s *Sheet) raster(sep, mag int) (*raster, error) {
	if sep < 0 || sep > MaxSep {
		return nil, qrcode.ErrInvalidSep
	}
	if mag < 1 || mag > MaxMag {
		return nil, qrcode.ErrInvalidMag
	}
	w, h := s.Size(sep)
	if w*mag > maxSide || h*mag > maxSide {
		return nil, qrcode.ErrImageTooLarge
	}
	return &raster{s, sep, mag, w, h}, nil
}

// dark reports whether the module at y, x of r is dark.
func (r *raster) dark(y, x int) bool {
	return r.s.isBlack(r.sep, y, x)
}

var writers = [numFormats]func(io.Writer, *raster) error{
	PNG:   writePNG,
	BMP:   writeBMP,
	TIFF:  writeTIFF,
	PBM:   writePBM,
	SVG:   writeSVG,
	JSON:  writeJSON,
	Digit: writeDigit,
	ASCII: writeASCII,
	EPS:   writeEPS,
}

// Write writes s to w in format f.
func (s *Sheet) Write(w io.Writer, f Format, sep, mag int) error {
	if !f.IsValid() {
		return qrcode.ErrInvalidFormat
	}
	r, err := s.raster(sep, mag)
	if err != nil {
		return err
	}
	return writers[f](w, r)
}

// Write writes v to w in format f.
func Write(w io.Writer, v View, f Format, sep, mag int) error {
	s, err := Grid([]View{v}, 0)
	if err != nil {
		return err
	}
	return s.Write(w, f, sep, mag)
}

var palette = color.Palette{color.White, color.Black}

// Image returns s as a two colour paletted image, light modules at
// index 0 and dark at 1.
func (s *Sheet) Image(sep, mag int) (*image.Paletted, error) {
	r, err := s.raster(sep, mag)
	if err != nil {
		return nil, err
	}
	return r.image(), nil
}

// Image returns v as a two colour paletted image.
func Image(v View, sep, mag int) (*image.Paletted, error) {
	s, err := Grid([]View{v}, 0)
	if err != nil {
		return nil, err
	}
	return s.Image(sep, mag)
}

func (r *raster) image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.w*r.mag, r.h*r.mag), palette)
	for y := 0; y < r.h; y++ {
		row := img.Pix[y*r.mag*img.Stride:][:img.Stride]
		for x := 0; x < r.w; x++ {
			if r.dark(y, x) {
				for i := range row[x*r.mag : (x+1)*r.mag] {
					row[x*r.mag+i] = 1
				}
			}
		}
		for i := 1; i < r.mag; i++ {
			copy(img.Pix[(y*r.mag+i)*img.Stride:], row)
		}
	}
	return img
}
