// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrcon renders a log file (or stdin) as a sequence of QR
// Code symbols, the way a panic notifier would broadcast a kernel
// log over a camera-scannable screen: each symbol carries as much of
// the remaining input as fits once compressed, one after another
// until the input is consumed.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrcon/fitter"
	"github.com/unixdj/qrcon/panicqr"
	"github.com/unixdj/qrcon/render"
)

var g = struct {
	ver    int    // QR version
	level  int    // zstd compression level
	delay  int    // inter-frame delay, milliseconds
	border int    // quiet zone modules
	scale  int    // PNG pixels per module
	out    string // output filename template for PNG frames
}{
	ver:    20,
	level:  3,
	delay:  250,
	border: 4,
	scale:  4,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "qrcon: render a log as a sequence of QR code symbols\n",
		"Usage: ", cl.Program(), " ", cl.UsageLine(), " [file]\n",
		"If no file is given, data is read from standard input.\n\n")
	cl.PrintOptions(w)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	ver := getopt.Unsigned('v', uint64(g.ver), &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40}, "QR version [1-40]")
	level := getopt.Signed('l', int64(g.level), &getopt.SignedLimit{Base: 0, Bits: 21, Min: 1, Max: 22}, "zstd compression level [1-22]")
	delay := getopt.Unsigned('d', uint64(g.delay), &getopt.UnsignedLimit{Base: 0, Bits: 32, Min: 0, Max: 0}, "inter-frame delay in milliseconds")
	border := getopt.Unsigned('m', uint64(g.border), &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 0}, "quiet zone modules")
	scale := getopt.Unsigned('s', uint64(g.scale), &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 0}, "PNG pixels per module")
	getopt.FlagLong(&g.out, "out", 'o', "write PNG frames to out-NNNN.png instead of ASCII art")
	getopt.Parse()
	g.ver = int(*ver)
	g.level = int(*level)
	g.delay = int(*delay)
	g.border = int(*border)
	g.scale = int(*scale)
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var in io.Reader = os.Stdin
	if args := getopt.Args(); len(args) != 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		log.Fatalln(err)
	}

	f, err := fitter.New(g.level)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	toPNGFiles := g.out != ""
	usePNG := toPNGFiles || !isatty.IsTerminal(uintptr(syscall.Stdout))

	frame := 0
	sink := func(bitmap []byte, width int) error {
		frame++
		if usePNG {
			var w io.Writer = os.Stdout
			if toPNGFiles {
				name := fmt.Sprintf("%s-%04d.png", g.out, frame)
				out, err := os.Create(name)
				if err != nil {
					return err
				}
				defer out.Close()
				w = out
			}
			return render.PNG(w, bitmap, width, g.border, g.scale)
		}
		return render.ASCII(os.Stdout, bitmap, width, g.border)
	}

	drv := panicqr.NewDriver(panicqr.Config{
		Version:          g.ver,
		CompressionLevel: g.level,
		FrameDelay:       time.Duration(g.delay) * time.Millisecond,
		SettleDelay:      0,
		Border:           g.border,
	}, f, sink)

	if err := drv.Run(data, time.Sleep); err != nil {
		log.Fatalln(err)
	}
}
