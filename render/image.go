// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// A two colour palette makes the PNG encoder emit a 1-bit image.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

func writePNG(w io.Writer, r *raster) error {
	return pngEncoder.Encode(w, r.image())
}

func writeBMP(w io.Writer, r *raster) error {
	return bmp.Encode(w, r.image())
}

func writeTIFF(w io.Writer, r *raster) error {
	return tiff.Encode(w, r.image(), &tiff.Options{Compression: tiff.Deflate})
}
