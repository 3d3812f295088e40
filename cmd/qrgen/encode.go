// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/unixdj/qrcode"
	"github.com/unixdj/qrcode/render"
)

// input returns the joined arguments, or standard input with the final
// newline stripped, converted according to the flags.
func input(args []string) ([]byte, error) {
	var s string
	if len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			return nil, err
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	return convert(s, g.upper, g.sjis)
}

func convert(s string, upper, sjis bool) ([]byte, error) {
	if upper {
		s = strings.ToUpper(s)
	}
	if !sjis {
		return []byte(s), nil
	}
	b, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("convert to Shift JIS: %w", err)
	}
	return b, nil
}

func encode(data []byte) error {
	q, err := qrcode.New(g.ver, g.mode, g.lev, g.mask)
	if err != nil {
		return err
	}
	if g.mode == qrcode.Auto {
		err = q.AddText(data)
	} else {
		err = q.AddDataMode(data, g.mode)
	}
	if err == nil {
		err = q.Finalize()
	}
	if err != nil {
		return err
	}
	return output("", func(w io.Writer) error {
		return render.Write(w, q, g.format, g.sep, g.mag)
	})
}

func encodeMulti(data []byte) error {
	st, err := qrcode.NewStructured(g.ver, g.mode, g.lev, g.mask, g.max)
	if err != nil {
		return err
	}
	if err = st.AddData(data); err == nil {
		err = st.Finalize()
	}
	if err != nil {
		return err
	}
	views := render.Views(st)
	if g.grid {
		sh, err := render.Grid(views, g.order)
		if err != nil {
			return err
		}
		return output("", func(w io.Writer) error {
			return sh.Write(w, g.format, g.sep, g.mag)
		})
	}
	for i, v := range views {
		err := output(fmt.Sprintf("-%02d", i+1), func(w io.Writer) error {
			return render.Write(w, v, g.format, g.sep, g.mag)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// output writes to the file named by -o with suffix inserted before
// the extension, or to standard output.
func output(suffix string, fn func(io.Writer) error) error {
	var b bytes.Buffer
	if err := fn(&b); err != nil {
		return err
	}
	if g.fn == "" {
		_, err := os.Stdout.Write(b.Bytes())
		return err
	}
	return os.WriteFile(outName(g.fn, suffix), b.Bytes(), 0666)
}

func outName(fn, suffix string) string {
	ext := path.Ext(fn)
	return fn[:len(fn)-len(ext)] + suffix + ext
}
