// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qrcon renders QR Code Model 2 symbols (error correction
// level Low, mask pattern 0) for broadcasting kernel panic logs over
// a camera-scannable screen, and provides the entry points a caller
// embeds: a capacity query and a one-shot generator writing directly
// into caller-owned buffers with no allocation on the hot path.
package qrcon

import "github.com/unixdj/qrcon/coding"

const (
	// DataBufCap is the minimum capacity required of the data/image
	// buffer passed to QRGenerate, sized for version 40's bitmap.
	DataBufCap = 4071
	// TmpBufCap is the minimum capacity required of the scratch
	// buffer passed to QRGenerate, sized for version 40's encoded
	// message (data codewords plus parity).
	TmpBufCap = 3706
)

// QRMaxDataSize returns the byte-mode data capacity of a version
// symbol. With urlLen == 0 it is simply D(version)-3 (3 bytes cover a
// single byte segment's mode header, 16-bit length field and
// terminator; versions 1-9 use an 8-bit length field, so there the
// overhead is 2 bytes and one byte of the allowance stays unused).
// With urlLen > 0 it assumes a two-segment
// byte(url)+numeric(payload) layout and accounts for the numeric
// segment's 13-bits-in/40-bits-out expansion. It returns 0 for an
// invalid version or when the URL alone exhausts the symbol.
func QRMaxDataSize(version, urlLen int) int {
	d := coding.MaxData(version)
	if d == 0 {
		return 0
	}
	if urlLen == 0 {
		if d < 3 {
			return 0
		}
		return d - 3
	}
	remaining := d - urlLen - 5
	if remaining <= 0 {
		return 0
	}
	return remaining * 39 / 40
}

// QRGenerate builds a QR symbol carrying data[:dataLen] (and, if url
// is non-nil, a leading byte segment for url followed by a numeric
// segment for data) at the given version, writing the resulting
// bitmap over data and using tmp as the encoded-message scratch
// buffer. It returns the symbol's width in modules on success, or 0
// if the version is invalid, a buffer is too small, or the segments
// don't fit the version's capacity.
//
// data must have capacity at least DataBufCap and tmp at least
// TmpBufCap; QRGenerate overwrites data's contents: it consumes the
// input bytes to build segments before it starts painting the
// bitmap into the same storage.
func QRGenerate(url []byte, data []byte, dataLen int, version int, tmp []byte) int {
	if version < 1 || version > 40 {
		return 0
	}
	if len(data) < DataBufCap || len(tmp) < TmpBufCap {
		return 0
	}
	payload := data[:dataLen]
	var segs []coding.Segment
	if url != nil {
		segs = []coding.Segment{coding.Byte(url), coding.Numeric(payload)}
	} else {
		segs = []coding.Segment{coding.Byte(payload)}
	}

	msg, err := coding.Encode(version, segs, tmp)
	if err != nil {
		return 0
	}

	w := coding.Width(version)
	stride := (w + 7) / 8
	if len(data) < w*stride {
		return 0
	}
	bm := coding.NewBitmap(data, w)
	coding.Draw(bm, version, msg)
	return w
}
