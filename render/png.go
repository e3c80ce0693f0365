// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/unixdj/qrcon/coding"
)

// bitmapImage adapts a packed QR bitmap to image.Image so it can be
// handed to the stdlib PNG encoder, scaling each module to Scale
// image pixels and surrounding the symbol with Border modules of
// white quiet zone.
type bitmapImage struct {
	bm     *coding.Bitmap
	border int
	scale  int
}

var (
	whiteColor color.Color = color.Gray{Y: 0xFF}
	blackColor color.Color = color.Gray{Y: 0x00}
)

func (b *bitmapImage) Bounds() image.Rectangle {
	d := (b.bm.Width + 2*b.border) * b.scale
	return image.Rect(0, 0, d, d)
}

func (b *bitmapImage) At(x, y int) color.Color {
	mx := x/b.scale - b.border
	my := y/b.scale - b.border
	if mx < 0 || mx >= b.bm.Width || my < 0 || my >= b.bm.Width {
		return whiteColor
	}
	if b.bm.Get(mx, my) {
		return blackColor
	}
	return whiteColor
}

func (b *bitmapImage) ColorModel() color.Model { return color.GrayModel }

// PNG encodes bitmap (width w, packed 1bpp, stride (w+7)/8) as a PNG
// image to out, with border modules of white quiet zone on every
// side and each module scale image pixels wide.
func PNG(out io.Writer, bitmap []byte, width, border, scale int) error {
	stride := (width + 7) / 8
	bm := &coding.Bitmap{Data: bitmap, Width: width, Stride: stride}
	img := &bitmapImage{bm: bm, border: border, scale: scale}
	return png.Encode(out, img)
}
