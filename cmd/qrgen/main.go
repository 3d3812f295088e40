// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrgen encodes text as a QR Code symbol or a Structured Append set.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap"

	"github.com/unixdj/qrcode"
	"github.com/unixdj/qrcode/coding"
	"github.com/unixdj/qrcode/render"
)

var g = struct {
	ver      coding.Version // QR version, or Auto
	mode     coding.Mode    // encoding mode, or Auto
	lev      coding.Level   // QR correction level
	mask     int            // mask pattern, or Auto
	format   render.Format  // output format
	sep      int            // quiet zone
	mag      int            // magnification
	fn       string         // filename
	multi    bool           // structured append
	max      int            // structured append: maximum symbols
	order    int            // structured append: grid order
	grid     bool           // structured append: single output
	sjis     bool           // convert input to Shift JIS
	byteOnly bool           // byte mode only
	upper    bool           // uppercase
	debug    bool           // debug logging
}{
	ver:  qrcode.Auto,
	mode: qrcode.Auto,
	mask: qrcode.Auto,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: automatic version, mode mixing and mask
pattern, no conversion of input.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrgen version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var modes = []string{"auto", "numeric", "alphanumeric", "byte", "kanji"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.sjis, 'k', "convert input from UTF-8 to Shift JIS, "+
		"enabling kanji mode")
	getopt.Flag(&g.byteOnly, '8', "encode entire data in byte mode")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.multi, 'S', `encode structured append symbols `+
		`(multiple QR codes); -v must be specified`)
	getopt.Flag(&g.debug, 'd', "log encoding decisions")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output; with -S and no -g, "-01", "-02" etc. is `+
		`appended to the filename before suffix`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for automatic", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	mode := getopt.Enum('M', modes, "auto",
		"encoding mode; auto mixes modes for the shortest encoding",
		"mode")
	mask := getopt.Signed('p', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern, -1 for automatic", "mask")
	sep := getopt.Unsigned('m', render.DefaultSep,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: render.MaxSep},
		"quiet zone width in modules", "margin")
	mag := getopt.Unsigned('s', 4,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: render.MaxMag},
		`pixels (type eps: points; text types: characters) per module`,
		"scale")
	num := getopt.Unsigned('n', qrcode.MaxSymbols,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 2, Max: qrcode.MaxSymbols},
		"maximum number of structured append symbols", "num")
	order := getopt.Signed('g', 0, &getopt.SignedLimit{Base: 0, Bits: 8,
		Min: -qrcode.MaxSymbols, Max: qrcode.MaxSymbols},
		`write structured append symbols as one grid: `+
			`0 in a row, n > 0 in n columns, n < 0 in -n rows`, "order")
	ff := getopt.Enum('t', render.Names(), "", `output format, one of: `+
		strings.Join(render.Names(), ", ")+
		`; if not given, guessed from the -o suffix; `+
		`if no -o is given and standard output is a TTY, `+
		`default is ascii, otherwise png`, "type")

	getopt.Parse()
	if g.multi && *ver == 0 {
		fmt.Fprintln(os.Stderr, "-S requires -v")
		usage()
	}
	if g.byteOnly && getopt.IsSet('M') {
		fmt.Fprintln(os.Stderr, "-8 and -M are incompatible")
		usage()
	}
	if *ver != 0 {
		g.ver = coding.Version(*ver)
	}
	g.lev = coding.Level(strings.Index("lmqhLMQH", *lev) & 3)
	for i, v := range modes {
		if *mode == v {
			g.mode = coding.Mode(i - 1)
		}
	}
	if g.byteOnly {
		g.mode = coding.Byte
	}
	g.mask = int(*mask)
	g.sep, g.mag = int(*sep), int(*mag)
	g.max, g.order = int(*num), int(*order)
	g.grid = getopt.IsSet('g')
	if g.fn == "-" {
		g.fn = ""
	}
	g.format = defaultFormat(*ff, g.fn, fno.Seen())
}

// defaultFormat returns the format named name, else the one the
// filename suffix names, else ascii for a terminal and png otherwise.
func defaultFormat(name, fn string, seen bool) render.Format {
	if name == "" && fn != "" {
		if i := strings.LastIndexByte(fn, '.'); i >= 0 {
			if f, err := render.ParseFormat(fn[i+1:]); err == nil {
				return f
			}
		}
	}
	if name == "" {
		if !seen && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			return render.ASCII
		}
		return render.PNG
	}
	f, _ := render.ParseFormat(name)
	return f
}

func main() {
	parseFlags()
	log, err := newLogger(g.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	qrcode.SetLogger(log)

	data, err := input(getopt.Args())
	if err != nil {
		log.Fatal("read input", zap.Error(err))
	}
	if g.multi {
		err = encodeMulti(data)
	} else {
		err = encode(data)
	}
	if err != nil {
		log.Fatal("encode", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
