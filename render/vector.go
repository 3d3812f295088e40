// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
)

// runs calls fn for each run of dark modules in row y of r with the
// number of light modules skipped since the end of the previous run
// (or the start of the row), and the length of the run.
func (r *raster) runs(y int, fn func(skip, n int)) {
	end := 0
	for x := 0; x < r.w; {
		for x < r.w && !r.dark(y, x) {
			x++
		}
		if x == r.w {
			return
		}
		b := x
		for x < r.w && r.dark(y, x) {
			x++
		}
		fn(b-end, x-b)
		end = x
	}
}

// writeSVG writes an SVG image drawing each run of dark modules as
// a rectangle.  The view box is in modules.
func writeSVG(w io.Writer, r *raster) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="%d" height="%d" fill="#fff"/>
<path fill="#000" d="`,
		r.w*r.mag, r.h*r.mag, r.w, r.h, r.w, r.h)
	for y := 0; y < r.h; y++ {
		x := 0
		r.runs(y, func(skip, n int) {
			x += skip
			fmt.Fprintf(b, "M%d %dh%dv1h-%dz", x, y, n, n)
			x += n
		})
	}
	b.WriteString("\"/>\n</svg>\n")
	return b.Flush()
}

// writeEPS writes an Encapsulated PostScript image, mag points per
// module, drawing each run of dark modules as a line one module wide.
func writeEPS(w io.Writer, r *raster) error {
	b := bufio.NewWriter(w)
	width, height := r.w*r.mag, r.h*r.mag
	fmt.Fprintf(b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qrgen https://github.com/unixdj/qrcode
%%%%Title: QR Code
%%%%BoundingBox: 0 0 %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
0 %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
newpath 0 0 moveto
`,
		width, height, float64(height)-float64(r.mag)/2, r.mag)
	for y := 0; y < r.h; y++ {
		r.runs(y, func(skip, n int) {
			fmt.Fprintf(b, "%d %d p ", n, skip)
		})
		fmt.Fprintln(b, "r")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	return b.Flush()
}
