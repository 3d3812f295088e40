// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/unixdj/qrcode"
	"github.com/unixdj/qrcode/render"
)

// pattern is a View of rows of '1' (dark) and '0' (light).
type pattern []string

func (p pattern) Dimension() int           { return len(p) }
func (p pattern) IsBlack(row, col int) bool { return p[row][col] == '1' }

// blank is a light View of any dimension.
type blank int

func (b blank) Dimension() int           { return int(b) }
func (b blank) IsBlack(row, col int) bool { return false }

var diag = pattern{"10", "01"}

func write(t *testing.T, v render.View, f render.Format, sep, mag int) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, render.Write(&b, v, f, sep, mag))
	return b.String()
}

func TestFormats(t *testing.T) {
	for _, tt := range []struct {
		f         render.Format
		name      string
		mime, ext string
	}{
		{render.PNG, "png", "image/png", "png"},
		{render.BMP, "bmp", "image/bmp", "bmp"},
		{render.TIFF, "tiff", "image/tiff", "tiff"},
		{render.PBM, "pbm", "image/x-portable-bitmap", "pbm"},
		{render.SVG, "svg", "image/svg+xml", "svg"},
		{render.JSON, "json", "application/json", "json"},
		{render.Digit, "digit", "text/plain", "txt"},
		{render.ASCII, "ascii", "text/plain", "txt"},
		{render.EPS, "eps", "application/postscript", "eps"},
	} {
		assert.Equal(t, tt.name, tt.f.String())
		assert.Equal(t, tt.mime, tt.f.MIMEType())
		assert.Equal(t, tt.ext, tt.f.Extension())
		f, err := render.ParseFormat(strings.ToUpper(tt.name))
		require.NoError(t, err)
		assert.Equal(t, tt.f, f)
	}
	assert.Equal(t, render.Format(0), render.PNG)
	assert.Equal(t, render.Format(7), render.ASCII)
	assert.Len(t, render.Names(), 9)

	f, err := render.ParseFormat("tif")
	require.NoError(t, err)
	assert.Equal(t, render.TIFF, f)
	_, err = render.ParseFormat("gif")
	assert.ErrorIs(t, err, qrcode.ErrUnsupportedFormat)
	_, err = render.ParseFormat("xyz")
	assert.ErrorIs(t, err, qrcode.ErrInvalidFormat)

	bad := render.Format(42)
	assert.False(t, bad.IsValid())
	assert.Empty(t, bad.MIMEType())
	assert.Empty(t, bad.Extension())
	assert.Equal(t, "format(42)", bad.String())
}

func TestText(t *testing.T) {
	assert.Equal(t, "0000 0100 0010 0000", write(t, diag, render.Digit, 1, 1))
	assert.Equal(t, "1100 1100 0011 0011", write(t, diag, render.Digit, 0, 2))
	assert.Equal(t, "XX  \n  XX\n", write(t, diag, render.ASCII, 0, 1))
	assert.Equal(t, "[[1,0],[0,1]]", write(t, diag, render.JSON, 0, 1))
	assert.Equal(t, "[[0,0,0,0],[0,1,0,0],[0,0,1,0],[0,0,0,0]]",
		write(t, diag, render.JSON, 1, 1))
}

func TestGrid(t *testing.T) {
	a, b := pattern{"1"}, pattern{"0"}
	views := []render.View{a, b, a}
	for _, tt := range []struct {
		order      int
		rows, cols int
		out        string
	}{
		{0, 1, 3, "0000000 0100010 0000000"},
		{2, 2, 2, "00000 01000 00000 01000 00000"},
		{-2, 2, 2, "00000 01010 00000 00000 00000"},
		{5, 1, 3, "0000000 0100010 0000000"},
		{-1, 1, 3, "0000000 0100010 0000000"},
	} {
		s, err := render.Grid(views, tt.order)
		require.NoError(t, err)
		rows, cols := s.Layout()
		assert.Equal(t, tt.rows, rows, "order %d", tt.order)
		assert.Equal(t, tt.cols, cols, "order %d", tt.order)
		var buf bytes.Buffer
		require.NoError(t, s.Write(&buf, render.Digit, 1, 1))
		assert.Equal(t, tt.out, buf.String(), "order %d", tt.order)
	}

	_, err := render.Grid(nil, 0)
	assert.ErrorIs(t, err, qrcode.ErrInvalidArg)
	_, err = render.Grid([]render.View{a, diag}, 0)
	assert.ErrorIs(t, err, qrcode.ErrInvalidArg)
	_, err = render.Grid([]render.View{blank(0)}, 0)
	assert.ErrorIs(t, err, qrcode.ErrState)
}

func TestPBM(t *testing.T) {
	assert.Equal(t, "P4\n2 2\n\x80\x40", write(t, diag, render.PBM, 0, 1))

	out := write(t, diag, render.PBM, 1, 4)
	require.True(t, strings.HasPrefix(out, "P4\n16 16\n"))
	rows := []byte(out[len("P4\n16 16\n"):])
	require.Len(t, rows, 16*2)
	for y := 0; y < 16; y++ {
		want := [2]byte{}
		switch y / 4 {
		case 1:
			want = [2]byte{0x0f, 0x00}
		case 2:
			want = [2]byte{0x00, 0xf0}
		}
		assert.Equal(t, want[:], rows[y*2:y*2+2], "row %d", y)
	}

	out = write(t, pattern{"1"}, render.PBM, 1, 3)
	rows = []byte(out[len("P4\n9 9\n"):])
	require.Len(t, rows, 9*2)
	assert.Equal(t, []byte{0x1c, 0x00}, rows[3*2:4*2])
	assert.Equal(t, []byte{0x00, 0x00}, rows[0:2])
}

func TestVector(t *testing.T) {
	p := pattern{"11", "01"}
	svg := write(t, p, render.SVG, 0, 3)
	assert.Contains(t, svg, `width="6" height="6" viewBox="0 0 2 2"`)
	assert.Contains(t, svg, `d="M0 0h2v1h-2zM1 1h1v1h-1z"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))

	eps := write(t, p, render.EPS, 0, 1)
	assert.True(t, strings.HasPrefix(eps, "%!PS-Adobe-2.0 EPSF-2.0\n"))
	assert.Contains(t, eps, "%%BoundingBox: 0 0 2 2\n")
	assert.Contains(t, eps, "0 1.5 translate\n1 dup neg scale\n")
	assert.Contains(t, eps, "newpath 0 0 moveto\n2 0 p r\n1 1 p r\nstroke")
	assert.True(t, strings.HasSuffix(eps, "stroke grestore\nend\n%%Trailer\n"))
}

// dark reports whether the pixel at x, y of img is dark.
func dark(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 0x80
}

func checkImage(t *testing.T, img image.Image, v render.View, sep, mag int) {
	t.Helper()
	d := (v.Dimension() + 2*sep) * mag
	require.Equal(t, image.Rect(0, 0, d, d), img.Bounds())
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			r, c := y/mag-sep, x/mag-sep
			want := r >= 0 && c >= 0 && r < v.Dimension() &&
				c < v.Dimension() && v.IsBlack(r, c)
			require.Equal(t, want, dark(img, x, y), "(%d, %d)", x, y)
		}
	}
}

func TestImage(t *testing.T) {
	p := pattern{"110", "011", "100"}
	img, err := render.Image(p, 2, 3)
	require.NoError(t, err)
	checkImage(t, img, p, 2, 3)
	assert.Len(t, img.Palette, 2)

	for _, tt := range []struct {
		f      render.Format
		decode func([]byte) (image.Image, error)
	}{
		{render.PNG, func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) }},
		{render.BMP, func(b []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(b)) }},
		{render.TIFF, func(b []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(b)) }},
	} {
		out := write(t, p, tt.f, 1, 2)
		img, err := tt.decode([]byte(out))
		require.NoError(t, err, "%v", tt.f)
		checkImage(t, img, p, 1, 2)
	}
}

func TestLimits(t *testing.T) {
	var b bytes.Buffer
	for _, tt := range []struct {
		sep, mag int
		err      error
	}{
		{-1, 1, qrcode.ErrInvalidSep},
		{render.MaxSep + 1, 1, qrcode.ErrInvalidSep},
		{0, 0, qrcode.ErrInvalidMag},
		{0, render.MaxMag + 1, qrcode.ErrInvalidMag},
	} {
		err := render.Write(&b, diag, render.PNG, tt.sep, tt.mag)
		assert.ErrorIs(t, err, tt.err, "sep %d mag %d", tt.sep, tt.mag)
	}
	assert.ErrorIs(t, render.Write(&b, diag, render.Format(-1), 4, 1),
		qrcode.ErrInvalidFormat)
	_, err := render.Image(blank(20000), 0, 2)
	assert.ErrorIs(t, err, qrcode.ErrImageTooLarge)
	assert.True(t, errors.Is(render.Write(&b, blank(0), render.PNG, 4, 1), qrcode.ErrState))
	assert.Zero(t, b.Len())
	require.NoError(t, render.Write(&b, diag, render.PNG, render.MaxSep, render.MaxMag))
}

func ExampleWrite() {
	p := pattern{
		"111",
		"101",
		"111",
	}
	if err := render.Write(os.Stdout, p, render.Digit, 1, 1); err != nil {
		fmt.Println(err)
	}
	// Output: 00000 01110 01010 01110 00000
}
