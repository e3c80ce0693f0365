// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestCharCountBits(t *testing.T) {
	tests := []struct {
		mode    Mode
		version int
		want    int
	}{
		{ModeByte, 1, 8},
		{ModeByte, 9, 8},
		{ModeByte, 10, 16},
		{ModeByte, 40, 16},
		{ModeNumeric, 1, 10},
		{ModeNumeric, 9, 10},
		{ModeNumeric, 10, 12},
		{ModeNumeric, 26, 12},
		{ModeNumeric, 27, 14},
		{ModeNumeric, 40, 14},
	}
	for _, tt := range tests {
		if got := charCountBits(tt.mode, tt.version); got != tt.want {
			t.Errorf("charCountBits(%v, %d) = %d, want %d", tt.mode, tt.version, got, tt.want)
		}
	}
}

func TestTake13(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xAB}
	val, n := take13(data, 0)
	if n != 13 {
		t.Fatalf("n = %d, want 13", n)
	}
	if want := uint32(0x1FE0); val != want {
		t.Errorf("val = %#x, want %#x", val, want)
	}
	// Exhausted at exactly len(data)*8 bits.
	if _, n := take13(data, 24); n != 0 {
		t.Errorf("take13 past end: n = %d, want 0", n)
	}
	// Trailing partial group.
	if _, n := take13(data, 20); n != 4 {
		t.Errorf("trailing take13: n = %d, want 4", n)
	}
}

func TestNumericCharCount(t *testing.T) {
	// 13 bytes = 104 bits = exactly 8 full 13-bit groups -> 32 digits,
	// no trailing remainder.
	if got, want := numericCharCount(make([]byte, 13)), 32; got != want {
		t.Errorf("numericCharCount(13 zero bytes) = %d, want %d", got, want)
	}
	// 1 byte = 8 leftover bits -> (8+1)/3 = 3 trailing digits.
	if got, want := numericCharCount(make([]byte, 1)), 3; got != want {
		t.Errorf("numericCharCount(1 zero byte) = %d, want %d", got, want)
	}
}

func TestWriteDigitsGrouping(t *testing.T) {
	buf := make([]byte, 4)
	w := &bitWriter{buf: buf}
	writeDigits(w, []byte{1, 2, 3, 4})
	if w.nbits != 14 {
		t.Fatalf("nbits = %d, want 14 (10 for first 3 digits, 4 for last)", w.nbits)
	}
}

func TestDigitsOf(t *testing.T) {
	if got := digitsOf(42, 4); string(got) != string([]byte{0, 0, 4, 2}) {
		t.Errorf("digitsOf(42, 4) = %v, want [0 0 4 2]", got)
	}
}

func TestEncodeByteSegmentRoundTripsIntoMessage(t *testing.T) {
	const version = 1
	total := MaxData(version) + ECSize(version)*(G1Blocks(version)+G2Blocks(version))
	buf := make([]byte, total)
	msg, err := Encode(version, []Segment{Byte([]byte("HELLO\n"))}, buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Mode indicator 0100 occupies the top nibble of the first byte.
	if got := msg.data[0]; got&0xF0 != 0x40 {
		t.Errorf("first nibble (mode indicator) = %#x, want 0x4", got>>4)
	}
}

// TestEncodePadStartsWithECRegardlessOfParity pins down the padding
// byte sequence: the first pad byte is always 0xEC, never keyed to
// whether the bit-padded byte offset happens to be even or odd.
func TestEncodePadStartsWithECRegardlessOfParity(t *testing.T) {
	const version = 1
	total := MaxData(version) + ECSize(version)*(G1Blocks(version)+G2Blocks(version))
	buf := make([]byte, total)
	// 5 data bytes: 4+8+40=52 bits of segment, +4 terminator = 56 bits,
	// already byte-aligned, so the pad run starts at byte offset 7 (odd).
	msg, err := Encode(version, []Segment{Byte([]byte("HELLO"))}, buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := msg.data[7]; got != 0xEC {
		t.Errorf("first pad byte = %#x, want 0xEC", got)
	}
	if got := msg.data[8]; got != 0x11 {
		t.Errorf("second pad byte = %#x, want 0x11", got)
	}
}

func TestEncodeRejectsOversizedData(t *testing.T) {
	const version = 1
	total := MaxData(version) + ECSize(version)*(G1Blocks(version)+G2Blocks(version))
	buf := make([]byte, total)
	big := make([]byte, MaxData(version)+10)
	_, err := Encode(version, []Segment{Byte(big)}, buf)
	if err != ErrDataTooLong {
		t.Errorf("Encode with oversized data: err = %v, want ErrDataTooLong", err)
	}
}

func TestEncodeRejectsSmallBuffer(t *testing.T) {
	_, err := Encode(1, []Segment{Byte([]byte("hi"))}, make([]byte, 1))
	if err != ErrBufferTooSmall {
		t.Errorf("err = %v, want ErrBufferTooSmall", err)
	}
}

func TestEncodeRejectsBadVersion(t *testing.T) {
	_, err := Encode(41, []Segment{Byte([]byte("hi"))}, make([]byte, 4000))
	if err != ErrVersion {
		t.Errorf("err = %v, want ErrVersion", err)
	}
}

func TestMessageInterleavingOrder(t *testing.T) {
	// Two single-byte group-1 blocks, no group-2, no parity: interleaving
	// should just be block 0's byte then block 1's byte.
	m := &Message{
		g1: 2, g2: 0, s1: 1, s2: 2, ecLen: 0,
		data:   []byte{0xAA, 0xBB},
		parity: nil,
	}
	if got := m.At(0); got != 0xAA {
		t.Errorf("At(0) = %#x, want 0xAA", got)
	}
	if got := m.At(1); got != 0xBB {
		t.Errorf("At(1) = %#x, want 0xBB", got)
	}
}
