// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns a packed QR bitmap into output a terminal or
// an image viewer can show: two-character-per-module ASCII art for a
// TTY, or a PNG for anything else.
package render

import (
	"io"

	"github.com/unixdj/qrcon/coding"
)

// ASCII writes bitmap (width w, packed 1bpp, stride (w+7)/8) to out as
// two-characters-wide half-block-free ASCII art, surrounded by
// border modules of quiet zone, one line per module row.
func ASCII(out io.Writer, bitmap []byte, width, border int) error {
	stride := (width + 7) / 8
	bm := &coding.Bitmap{Data: bitmap, Width: width, Stride: stride}
	line := make([]byte, 0, (width+2*border)*2+1)

	blank := func() []byte {
		l := line[:0]
		for x := 0; x < width+2*border; x++ {
			l = append(l, ' ', ' ')
		}
		return append(l, '\n')
	}

	for y := 0; y < border; y++ {
		if _, err := out.Write(blank()); err != nil {
			return err
		}
	}
	for y := 0; y < width; y++ {
		l := line[:0]
		for x := 0; x < border; x++ {
			l = append(l, ' ', ' ')
		}
		for x := 0; x < width; x++ {
			if bm.Get(x, y) {
				l = append(l, '#', '#')
			} else {
				l = append(l, ' ', ' ')
			}
		}
		for x := 0; x < border; x++ {
			l = append(l, ' ', ' ')
		}
		l = append(l, '\n')
		if _, err := out.Write(l); err != nil {
			return err
		}
	}
	for y := 0; y < border; y++ {
		if _, err := out.Write(blank()); err != nil {
			return err
		}
	}
	return nil
}
