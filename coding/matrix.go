// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bitmap is a packed 1-bpp, row-major bit matrix: bit (x, y) lives in
// byte Data[y*Stride+x/8], high bit first within the byte. A set bit
// is a dark module.
type Bitmap struct {
	Data   []byte
	Width  int
	Stride int
}

// NewBitmap returns a zeroed Bitmap of the given width sized to fit
// in buf, which must have length at least width * ((width+7)/8).
func NewBitmap(buf []byte, width int) *Bitmap {
	stride := (width + 7) / 8
	b := &Bitmap{Data: buf[:width*stride], Width: width, Stride: stride}
	for i := range b.Data {
		b.Data[i] = 0
	}
	return b
}

// Get reports whether module (x, y) is dark.
func (b *Bitmap) Get(x, y int) bool {
	return b.Data[y*b.Stride+x/8]&(1<<uint(7-x%8)) != 0
}

// Set marks module (x, y) dark (v == true) or light.
func (b *Bitmap) Set(x, y int, v bool) {
	i, m := y*b.Stride+x/8, byte(1<<uint(7-x%8))
	if v {
		b.Data[i] |= m
	} else {
		b.Data[i] &^= m
	}
}

// Xor toggles module (x, y).
func (b *Bitmap) Xor(x, y int) {
	b.Data[y*b.Stride+x/8] ^= 1 << uint(7-x%8)
}

// drawSquare paints a dark square outline of side size+1, the top-left
// corner sitting at (x, y): the top and bottom rows and the left and
// right columns, nothing filled in between. A finder passes size 4, an
// alignment pattern size 2.
func drawSquare(b *Bitmap, x, y, size int) {
	for k := 0; k <= size; k++ {
		b.Set(x+k, y, true)
		b.Set(x+k, y+size, true)
	}
	for k := 1; k < size; k++ {
		b.Set(x, y+k, true)
		b.Set(x+size, y+k, true)
	}
}

// isFinder reports whether (x, y) lies inside a finder pattern or its
// one-module separator, in any of the three corners.
func isFinder(w, x, y int) bool {
	in := func(x0, y0 int) bool {
		return x >= x0 && x < x0+8 && y >= y0 && y < y0+8
	}
	return in(0, 0) || in(w-8, 0) || in(0, w-8)
}

// drawFinders paints the three finder patterns: a single dark ring
// outline at offset (1,1) from each corner, plus the dark separator
// lines one module outside that ring. The bitmap starts zeroed, so
// every other cell in the reserved 8x8 finder block is light by
// default; nothing is explicitly cleared.
func drawFinders(b *Bitmap, w int) {
	drawSquare(b, 1, 1, 4)
	drawSquare(b, w-6, 1, 4)
	drawSquare(b, 1, w-6, 4)

	for k := 0; k < 8; k++ {
		b.Set(k, 7, true)
		b.Set(w-k-1, 7, true)
		b.Set(k, w-8, true)
	}
	for k := 0; k < 7; k++ {
		b.Set(7, k, true)
		b.Set(w-8, k, true)
		b.Set(7, w-1-k, true)
	}
}

// isAlignment reports whether (x, y) lies within a 5x5 alignment
// pattern for version.
func isAlignment(version, x, y int) bool {
	for _, ax := range alignCenters(version) {
		for _, ay := range alignCenters(version) {
			if inAlignmentFinderOverlap(version, ax, ay) {
				continue
			}
			if x >= ax-2 && x <= ax+2 && y >= ay-2 && y <= ay+2 {
				return true
			}
		}
	}
	return false
}

// inAlignmentFinderOverlap reports whether an alignment pattern
// centered at (ax, ay) would overlap a finder pattern.
func inAlignmentFinderOverlap(version, ax, ay int) bool {
	w := Width(version)
	return isFinder(w, ax, ay)
}

// drawAlignments paints every valid alignment pattern for version: a
// dark ring outline of side 3, anchored at (ax-1, ay-1), whose center
// doesn't overlap a finder.
func drawAlignments(b *Bitmap, version int) {
	centers := alignCenters(version)
	for _, ax := range centers {
		for _, ay := range centers {
			if inAlignmentFinderOverlap(version, ax, ay) {
				continue
			}
			drawSquare(b, ax-1, ay-1, 2)
		}
	}
}

// isTiming reports whether (x, y) lies on the timing row or column.
func isTiming(w, x, y int) bool {
	return (y == 6 && x >= 8 && x < w-8) || (x == 6 && y >= 8 && y < w-8)
}

// drawTiming paints the alternating timing patterns along row 6 and
// column 6, starting dark at the low end.
func drawTiming(b *Bitmap, w int) {
	for x := 8; x < w-8; x++ {
		b.Set(x, 6, x%2 == 0)
	}
	for y := 8; y < w-8; y++ {
		b.Set(6, y, y%2 == 0)
	}
}

// isVersionInfo reports whether (x, y) lies in one of the two version
// information rectangles (only meaningful for version >= 7).
func isVersionInfo(w, x, y int) bool {
	if x >= w-11 && x <= w-9 && y >= 0 && y <= 5 {
		return true
	}
	if y >= w-11 && y <= w-9 && x >= 0 && x <= 5 {
		return true
	}
	return false
}

// drawVersionInfo paints the 18-bit version information word into
// its two 3x6 rectangles, dark where the bit is zero.
func drawVersionInfo(b *Bitmap, version int) {
	bits := VersionInfoBits(version)
	if bits == 0 {
		return
	}
	w := Width(version)
	for i := 0; i < 18; i++ {
		bit := (bits >> uint(i)) & 1
		dark := bit == 0
		x, y := i%3, i/3
		b.Set(w-11+x, y, dark)
		b.Set(y, w-11+x, dark)
	}
}

// isFormatInfo reports whether (x, y) lies in one of the format
// information stripes around the finders.
func isFormatInfo(w, x, y int) bool {
	if x == 8 && y <= 8 {
		return true
	}
	if y == 8 && x <= 8 {
		return true
	}
	if y == 8 && x >= w-8 {
		return true
	}
	if x == 8 && y >= w-8 {
		return true
	}
	return false
}

// drawFormatInfo paints the 15-bit format information word for ECC
// level Low, mask pattern 0, around the finders. Format info is
// painted after the data walk: its cells are reserved ahead of time
// so the walk skips them, then overwritten here.
func drawFormatInfo(b *Bitmap, w int) {
	bits := formatInfoL[0]
	dark := func(i int) bool { return (bits>>uint(i))&1 == 0 }

	// Top-left finder, horizontal arm along row 8: the 7 high bits
	// 14..8, at columns 0..5,7 (skipping the timing column).
	row8cols := [7]int{0, 1, 2, 3, 4, 5, 7}
	for k, x := range row8cols {
		b.Set(x, 8, dark(14-k))
	}
	// Top-left finder, vertical arm along column 8: the 8 low bits
	// 7..0, at rows 8,7,5,4,3,2,1,0 (skipping the timing row).
	col8rows := [8]int{8, 7, 5, 4, 3, 2, 1, 0}
	for k, y := range col8rows {
		b.Set(8, y, dark(7-k))
	}
	// Bottom-left finder mirror: the same 7 high bits, down column 8
	// from row w-1.
	for k := 0; k < 7; k++ {
		b.Set(8, w-1-k, dark(14-k))
	}
	// Top-right finder mirror: the same 8 low bits, along row 8
	// starting at column w-8.
	for k := 0; k < 8; k++ {
		b.Set(w-8+k, 8, dark(7-k))
	}
	// The fixed dark module, always set regardless of mask or format
	// bits, at column 8 of row w-8.
	b.Set(8, w-8, true)
}

// isReserved reports whether (x, y) is any functional-pattern cell
// that the data walk and the mask must both skip.
func isReserved(version, x, y int) bool {
	w := Width(version)
	return isFinder(w, x, y) ||
		isTiming(w, x, y) ||
		isAlignment(version, x, y) ||
		isFormatInfo(w, x, y) ||
		(version >= 7 && isVersionInfo(w, x, y))
}

// next computes the canonical zig-zag successor of (x, y) within a
// symbol of width w, per the QR data-walk transition rule.
func next(w, x, y int) (int, int) {
	xAdj := x
	if x <= 6 {
		xAdj++
	}
	switch (w - xAdj) % 4 {
	case 2: // left column of an upward pair
		if y > 0 {
			return x + 1, y - 1
		}
		return x - 1, y
	case 0: // left column of a downward pair
		if y < w-1 {
			return x + 1, y + 1
		}
		return x - 1, y
	default: // right column of a pair
		if x == 7 {
			return x - 2, y
		}
		return x - 1, y
	}
}

// drawData walks the zig-zag data path starting at (w-1, w-1),
// feeding message bits MSB-first into every non-reserved cell,
// setting the module dark when the bit is zero. Any unused trailing
// cells after the message is exhausted are painted dark.
func drawData(b *Bitmap, version int, m *Message) {
	w := Width(version)
	total := m.Len() * 8
	x, y := w-1, w-1
	bit := 0
	// The last pair (columns 0 and 1) runs downward, so the walk ends
	// by stepping left off the matrix from (0, w-1).
	for x >= 0 {
		if !isReserved(version, x, y) {
			if bit < total {
				byteVal := m.At(bit / 8)
				v := (byteVal >> uint(7-bit%8)) & 1
				b.Set(x, y, v == 0)
				bit++
			} else {
				b.Set(x, y, true)
			}
		}
		x, y = next(w, x, y)
	}
}

// applyMask XORs every non-reserved cell whose (x xor y) is even:
// mask pattern 0, the checkerboard.
func applyMask(b *Bitmap, version int) {
	w := Width(version)
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			if isReserved(version, x, y) {
				continue
			}
			if (x^y)%2 == 0 {
				b.Xor(x, y)
			}
		}
	}
}

// Draw paints a complete QR symbol for m at version into b: finder,
// alignment, timing and version patterns; the interleaved data
// stream along the zig-zag walk; mask pattern 0; then format
// information on top.
func Draw(b *Bitmap, version int, m *Message) {
	w := Width(version)
	drawFinders(b, w)
	drawAlignments(b, version)
	drawTiming(b, w)
	if version >= 7 {
		drawVersionInfo(b, version)
	}
	drawData(b, version, m)
	applyMask(b, version)
	drawFormatInfo(b, w)
}
