// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fitter binary-searches for the largest prefix of a source
// buffer whose compressed, header-framed size fits a QR symbol's
// byte-mode data capacity.
package fitter

import (
	"encoding/binary"
	"errors"

	"github.com/klauspost/compress/zstd"
)

// Magic is the little-endian frame magic written at the start of
// every payload frame: the bytes 0x44, 0x54, 0x53, 0x5A.
const Magic uint32 = 0x5A535444

// HeaderSize is the fixed header length: a 4-byte magic and a 4-byte
// little-endian uncompressed length.
const HeaderSize = 8

var (
	// ErrCapacity is returned when the destination capacity is too
	// small to ever hold a frame (8 bytes of header plus at least
	// one byte of compressed payload).
	ErrCapacity = errors.New("fitter: destination capacity too small")
	// ErrNoFit is returned when no prefix of src, however short,
	// compresses small enough to fit.
	ErrNoFit = errors.New("fitter: no prefix fits destination capacity")
)

// Fitter wraps a reusable zstd encoder and scratch buffer so the
// binary search in Fit performs no allocation beyond what growing
// the scratch buffer to the largest prefix tried requires once.
type Fitter struct {
	enc     *zstd.Encoder
	scratch []byte
}

// New returns a Fitter compressing at the given zstd level.
func New(level int) (*Fitter, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, err
	}
	return &Fitter{enc: enc}, nil
}

// Close releases the underlying zstd encoder.
func (f *Fitter) Close() error { return f.enc.Close() }

func (f *Fitter) compress(src []byte) []byte {
	f.scratch = f.enc.EncodeAll(src, f.scratch[:0])
	return f.scratch
}

// Fit finds the largest prefix length k in [1, len(src)] such that
// HeaderSize plus the zstd-compressed size of src[:k] is at most
// len(dst), writes the framed, compressed result into dst, and
// returns the frame's total length and k. It returns ErrCapacity if
// dst cannot possibly hold a frame, or ErrNoFit if even a one-byte
// prefix doesn't fit.
func (f *Fitter) Fit(src, dst []byte) (frameLen, k int, err error) {
	capacity := len(dst)
	if capacity <= HeaderSize {
		return 0, 0, ErrCapacity
	}
	if len(src) == 0 {
		return 0, 0, ErrNoFit
	}

	lo, hi := 1, len(src)
	bestK := 0
	for lo <= hi {
		m := lo + (hi-lo)/2
		compressed := f.compress(src[:m])
		size := HeaderSize + len(compressed)
		if size <= capacity {
			bestK = m
			lo = m + 1
		} else {
			hi = m - 1
		}
	}
	if bestK == 0 {
		return 0, 0, ErrNoFit
	}

	compressed := f.compress(src[:bestK])
	total := HeaderSize + len(compressed)
	if total > capacity {
		// The last search iteration targeted a different m; this
		// should not happen since compress is deterministic, but if
		// it does, fail the symbol rather than overrun dst.
		return 0, 0, ErrNoFit
	}

	binary.LittleEndian.PutUint32(dst[0:4], Magic)
	binary.LittleEndian.PutUint32(dst[4:8], uint32(bestK))
	copy(dst[HeaderSize:], compressed)
	return total, bestK, nil
}
