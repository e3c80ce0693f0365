// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panicqr drives the fitter-and-encoder loop that turns a
// captured kernel log buffer into a sequence of QR symbols, pacing
// frames so a camera can acquire each one before the next is drawn.
package panicqr

import (
	"time"

	"github.com/unixdj/qrcon"
	"github.com/unixdj/qrcon/fitter"
)

// skipOnNoFit is the number of input bytes the driver advances past
// when no prefix, however short, fits a symbol's capacity. It bounds
// the loop against a pathological input that would otherwise stall.
const skipOnNoFit = 1024

// FrameSink receives one rendered QR bitmap (width w, packed 1bpp,
// stride (w+7)/8) per call. It is the seam through which the driver
// hands frames to a blitter, a PNG encoder, or a test collector
// without this package depending on any of them.
type FrameSink func(bitmap []byte, width int) error

// Placement mirrors fb.Placement without this package importing fb,
// keeping panicqr usable by a caller that never touches a real
// framebuffer (e.g. a test harness collecting frames in memory).
type Placement int

const (
	PlaceCenter Placement = iota
	PlaceTopLeft
	PlaceTopRight
	PlaceBottomLeft
	PlaceBottomRight
	PlaceCustom
)

// Config holds the knobs that are real but out of the core's scope:
// symbol version, compression level, pacing, and on-screen placement.
type Config struct {
	Version          int
	CompressionLevel int

	// FrameDelay is how long Run pauses, via Sleep, between symbols
	// after the first. SettleDelay is an extra one-time pause before
	// the first symbol is drawn, giving a scanner time to frame the
	// display before data starts moving.
	FrameDelay  time.Duration
	SettleDelay time.Duration

	Placement        Placement
	CustomX, CustomY int
	Border           int
}

// Driver owns the buffers and collaborators needed to run the
// fitter-and-encoder loop repeatedly without allocating per symbol.
type Driver struct {
	Config Config
	Fitter *fitter.Fitter
	Sink   FrameSink
	// Log, if non-nil, receives a line per skipped/failed frame. The
	// hot path never calls it except on the skip-1024 fallback.
	Log func(format string, args ...any)

	data []byte
	tmp  []byte
	ct   []byte
}

// NewDriver returns a Driver ready to Run, allocating its scratch
// buffers once up front.
func NewDriver(cfg Config, f *fitter.Fitter, sink FrameSink) *Driver {
	return &Driver{
		Config: cfg,
		Fitter: f,
		Sink:   sink,
		data:   make([]byte, qrcon.DataBufCap),
		tmp:    make([]byte, qrcon.TmpBufCap),
		ct:     make([]byte, qrcon.DataBufCap),
	}
}

// Run drains src, emitting one QR symbol per fitted prefix until the
// entire buffer is consumed. sleep is called for both the initial
// settle delay and the inter-frame delay; the caller supplies a
// busy-wait under panic or a scheduler-yielding sleep otherwise, since
// that choice depends on context this package cannot see.
func (d *Driver) Run(src []byte, sleep func(time.Duration)) error {
	capacity := qrcon.QRMaxDataSize(d.Config.Version, 0)
	pos := 0
	first := true
	for pos < len(src) {
		frameLen, k, err := d.Fitter.Fit(src[pos:], d.ct[:capacity])
		if err != nil {
			if d.Log != nil {
				d.Log("panicqr: no fit at pos %d: %v", pos, err)
			}
			pos += min(skipOnNoFit, len(src)-pos)
			continue
		}

		copy(d.data, d.ct[:frameLen])
		w := qrcon.QRGenerate(nil, d.data, frameLen, d.Config.Version, d.tmp)
		if w == 0 {
			if d.Log != nil {
				d.Log("panicqr: encode failed at pos %d", pos)
			}
			pos += min(skipOnNoFit, len(src)-pos)
			continue
		}

		if first {
			sleep(d.Config.SettleDelay)
			first = false
		} else {
			sleep(d.Config.FrameDelay)
		}
		if err := d.Sink(d.data, w); err != nil {
			return err
		}
		pos += k
	}
	return nil
}
