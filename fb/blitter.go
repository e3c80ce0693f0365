// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fb blits a packed QR bitmap onto a raw framebuffer surface,
// scaling each module to a block of pixels and packing a 32-bit color
// into whatever pixel format the target framebuffer uses.
package fb

import "github.com/unixdj/qrcon/coding"

// PixelFormat identifies how many bytes make up one pixel and how a
// 32-bit RGB(A) color packs into them. A real framebuffer's bpp isn't
// knowable at compile time, so the blitter switches on it at draw
// time exactly as a kernel fbdev driver would.
type PixelFormat int

const (
	Format1BPP PixelFormat = 1
	Format2BPP PixelFormat = 2
	Format3BPP PixelFormat = 3
	Format4BPP PixelFormat = 4
)

// Surface is a raw, row-major pixel buffer a Blitter draws into.
type Surface struct {
	Base   []byte
	Stride int // bytes per row
	Width  int // pixels per row
	Height int
	Format PixelFormat
}

// WriteColor packs color into the bytes-per-pixel layout s.Format
// dictates, starting at byte offset off. For Format3BPP and
// Format4BPP the bytes are written low-to-high (little-endian); for
// Format1BPP only the low byte of color is used.
func (s *Surface) WriteColor(off int, color uint32) {
	switch s.Format {
	case Format1BPP:
		s.Base[off] = byte(color)
	case Format2BPP:
		s.Base[off] = byte(color)
		s.Base[off+1] = byte(color >> 8)
	case Format3BPP:
		s.Base[off] = byte(color)
		s.Base[off+1] = byte(color >> 8)
		s.Base[off+2] = byte(color >> 16)
	case Format4BPP:
		s.Base[off] = byte(color)
		s.Base[off+1] = byte(color >> 8)
		s.Base[off+2] = byte(color >> 16)
		s.Base[off+3] = byte(color >> 24)
	}
}

// DrawRect paints a solid w-by-h rectangle of color with its
// top-left corner at (x, y).
func (s *Surface) DrawRect(x, y, w, h int, color uint32) {
	bpp := int(s.Format)
	for row := y; row < y+h; row++ {
		if row < 0 || row >= s.Height {
			continue
		}
		base := row * s.Stride
		for col := x; col < x+w; col++ {
			if col < 0 || col >= s.Width {
				continue
			}
			s.WriteColor(base+col*bpp, color)
		}
	}
}

// Placement chooses where a symbol is positioned on the surface.
type Placement int

const (
	PlaceCenter Placement = iota
	PlaceTopLeft
	PlaceTopRight
	PlaceBottomLeft
	PlaceBottomRight
	PlaceCustom
)

// Blitter draws a QR bitmap onto a Surface, scaling each module to
// BlockSize pixels, with a Border quiet-zone modules of light padding
// on every side.
type Blitter struct {
	Surface   *Surface
	BlockSize int
	Border    int
	Placement Placement
	// CustomX, CustomY position the symbol's top-left corner
	// (including the border) when Placement is PlaceCustom.
	CustomX, CustomY int

	Dark, Light uint32
}

// origin returns the pixel coordinates of the symbol's (border
// inclusive) top-left corner for a symbol whose full side (data plus
// border on both sides) is sidePixels pixels.
func (bl *Blitter) origin(sidePixels int) (x, y int) {
	switch bl.Placement {
	case PlaceTopLeft:
		return 0, 0
	case PlaceTopRight:
		return bl.Surface.Width - sidePixels, 0
	case PlaceBottomLeft:
		return 0, bl.Surface.Height - sidePixels
	case PlaceBottomRight:
		return bl.Surface.Width - sidePixels, bl.Surface.Height - sidePixels
	case PlaceCustom:
		return bl.CustomX, bl.CustomY
	default: // PlaceCenter
		return (bl.Surface.Width - sidePixels) / 2, (bl.Surface.Height - sidePixels) / 2
	}
}

// Blit draws bm, a width-by-width packed bitmap, onto the surface:
// a light quiet-zone border followed by one BlockSize-by-BlockSize
// rectangle per module, dark or light depending on the module's bit.
func (bl *Blitter) Blit(bm *coding.Bitmap) {
	side := bm.Width + 2*bl.Border
	sidePixels := side * bl.BlockSize
	ox, oy := bl.origin(sidePixels)

	bl.Surface.DrawRect(ox, oy, sidePixels, sidePixels, bl.Light)

	off := bl.Border * bl.BlockSize
	for y := 0; y < bm.Width; y++ {
		for x := 0; x < bm.Width; x++ {
			if !bm.Get(x, y) {
				continue
			}
			bl.Surface.DrawRect(
				ox+off+x*bl.BlockSize,
				oy+off+y*bl.BlockSize,
				bl.BlockSize, bl.BlockSize,
				bl.Dark,
			)
		}
	}
}
