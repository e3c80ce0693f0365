// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmsg models the bounded accumulation of kernel log lines
// that a panic notifier drains: lines are appended as they arrive
// from some kernel-log iterator until a fixed-capacity buffer fills,
// then the accumulated bytes are handed to the fitter for broadcast.
// Reading an actual /dev/kmsg-equivalent ring is a platform concern
// this package does not address; LineSource is the seam a caller
// plugs a real kernel log reader into.
package kmsg

// LineSource delivers successive kernel log lines. A real
// implementation reads from a platform's kernel ring buffer; Next
// returns false once no more lines are available without blocking.
type LineSource interface {
	Next() (line []byte, ok bool)
}

// Ring is a bounded accumulation buffer: Append copies lines in until
// the capacity given to NewRing is reached, after which further lines are silently dropped, as
// the source kernel ring buffer would drop them at the tail too.
type Ring struct {
	buf []byte
	cap int
}

// NewRing returns a Ring that accumulates at most capacity bytes.
func NewRing(capacity int) *Ring {
	return &Ring{buf: make([]byte, 0, capacity), cap: capacity}
}

// Append copies as much of line as still fits into the ring, and
// reports whether the ring is now full.
func (r *Ring) Append(line []byte) (full bool) {
	room := r.cap - len(r.buf)
	if room <= 0 {
		return true
	}
	if len(line) > room {
		line = line[:room]
	}
	r.buf = append(r.buf, line...)
	return len(r.buf) >= r.cap
}

// Drain appends every line LineSource produces until the source is
// exhausted or the ring fills.
func (r *Ring) Drain(src LineSource) {
	for {
		line, ok := src.Next()
		if !ok {
			return
		}
		if r.Append(line) {
			return
		}
	}
}

// Bytes returns the accumulated log bytes.
func (r *Ring) Bytes() []byte { return r.buf }

// Len returns the number of accumulated bytes.
func (r *Ring) Len() int { return len(r.buf) }

// Reset discards the accumulated bytes, preserving capacity.
func (r *Ring) Reset() { r.buf = r.buf[:0] }
