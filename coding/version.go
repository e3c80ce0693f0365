// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the QR Model 2, error-correction-level-Low,
// mask-pattern-0 symbol format: segment encoding, Reed-Solomon block
// interleaving and matrix layout.
package coding

import "errors"

var (
	// ErrVersion is returned for a version outside [1,40].
	ErrVersion = errors.New("coding: invalid QR version")

	// ErrBufferTooSmall is returned when a caller-supplied buffer is
	// smaller than the version it is being used with requires.
	ErrBufferTooSmall = errors.New("coding: buffer too small for version")

	// ErrDataTooLong is returned when the segments given to Encode
	// don't fit in the chosen version's data capacity.
	ErrDataTooLong = errors.New("coding: segments exceed version capacity")
)

// Generator polynomials for ECC, in the log domain: P[j] is the log
// of the j-th coefficient of the standard QR generator polynomial for
// len(P) error-correction bytes. Only the lengths used by
// error-correction level Low are present.
var (
	p7  = [7]byte{87, 229, 146, 149, 238, 102, 21}
	p10 = [10]byte{251, 67, 46, 61, 118, 70, 64, 94, 32, 45}
	p15 = [15]byte{8, 183, 61, 91, 202, 37, 51, 58, 58, 237, 140, 124, 5, 99, 105}
	p18 = [18]byte{215, 234, 158, 94, 184, 97, 118, 170, 79, 187, 152, 148, 252, 179, 5, 98, 96, 153}
	p20 = [20]byte{17, 60, 79, 50, 61, 163, 26, 187, 202, 180, 221, 225, 83, 239, 156, 164, 212, 212, 188, 190}
	p22 = [22]byte{210, 171, 247, 242, 93, 230, 14, 109, 221, 53, 200, 74, 8, 172, 98, 80, 219, 134, 160, 105, 165, 231}
	p24 = [24]byte{229, 121, 135, 48, 211, 117, 251, 126, 159, 180, 169, 152, 192, 226, 228, 218, 111, 0, 117, 232, 87, 96, 227, 21}
	p26 = [26]byte{173, 125, 158, 2, 103, 182, 118, 17, 145, 201, 111, 28, 165, 53, 161, 21, 245, 142, 13, 102, 48, 227, 153, 145, 218, 70}
	p28 = [28]byte{168, 223, 200, 104, 224, 234, 108, 180, 110, 190, 195, 147, 205, 27, 232, 201, 21, 43, 245, 87, 42, 195, 212, 119, 242, 37, 9, 123}
	p30 = [30]byte{41, 173, 145, 152, 216, 31, 179, 182, 50, 48, 110, 86, 239, 96, 222, 125, 42, 173, 226, 193, 224, 130, 156, 37, 251, 216, 238, 40, 192, 180}
)

// verParam describes the block layout and generator polynomial for
// one QR version at error correction level Low.
type verParam struct {
	poly   []byte // generator polynomial, log domain
	g1, g2 int    // number of blocks in each group
	g1size int    // codewords per block in group 1 (group 2 is g1size+1)
}

// vparam is indexed by version-1. Values are taken from the QR Low
// error-correction block table, the same one every Reed-Solomon QR
// implementation embeds.
var vparam = [40]verParam{
	{p7[:], 1, 0, 19},    // V1
	{p10[:], 1, 0, 34},   // V2
	{p15[:], 1, 0, 55},   // V3
	{p20[:], 1, 0, 80},   // V4
	{p26[:], 1, 0, 108},  // V5
	{p18[:], 2, 0, 68},   // V6
	{p20[:], 2, 0, 78},   // V7
	{p24[:], 2, 0, 97},   // V8
	{p30[:], 2, 0, 116},  // V9
	{p18[:], 2, 2, 68},   // V10
	{p20[:], 4, 0, 81},   // V11
	{p24[:], 2, 2, 92},   // V12
	{p26[:], 4, 0, 107},  // V13
	{p30[:], 3, 1, 115},  // V14
	{p22[:], 5, 1, 87},   // V15
	{p24[:], 5, 1, 98},   // V16
	{p28[:], 1, 5, 107},  // V17
	{p30[:], 5, 1, 120},  // V18
	{p28[:], 3, 4, 113},  // V19
	{p28[:], 3, 5, 107},  // V20
	{p28[:], 4, 4, 116},  // V21
	{p28[:], 2, 7, 111},  // V22
	{p30[:], 4, 5, 121},  // V23
	{p30[:], 6, 4, 117},  // V24
	{p26[:], 8, 4, 106},  // V25
	{p28[:], 10, 2, 114}, // V26
	{p30[:], 8, 4, 122},  // V27
	{p30[:], 3, 10, 117}, // V28
	{p30[:], 7, 7, 116},  // V29
	{p30[:], 5, 10, 115}, // V30
	{p30[:], 13, 3, 115}, // V31
	{p30[:], 17, 0, 115}, // V32
	{p30[:], 17, 1, 115}, // V33
	{p30[:], 13, 6, 115}, // V34
	{p30[:], 12, 7, 121}, // V35
	{p30[:], 6, 14, 121}, // V36
	{p30[:], 17, 4, 122}, // V37
	{p30[:], 4, 18, 122}, // V38
	{p30[:], 20, 4, 117}, // V39
	{p30[:], 19, 6, 118}, // V40
}

// align holds, for each version, the alignment pattern center
// coordinates along one axis. The full set of alignment pattern
// centers is the cross product of this list with itself, minus any
// pair that falls inside a finder pattern.
var align = [40][]int{
	{},                                    // V1
	{6, 18},                               // V2
	{6, 22},                               // V3
	{6, 26},                               // V4
	{6, 30},                               // V5
	{6, 34},                               // V6
	{6, 22, 38},                           // V7
	{6, 24, 42},                           // V8
	{6, 26, 46},                           // V9
	{6, 28, 50},                           // V10
	{6, 30, 54},                           // V11
	{6, 32, 58},                           // V12
	{6, 34, 62},                           // V13
	{6, 26, 46, 66},                       // V14
	{6, 26, 48, 70},                       // V15
	{6, 26, 50, 74},                       // V16
	{6, 30, 54, 78},                       // V17
	{6, 30, 56, 82},                       // V18
	{6, 30, 58, 86},                       // V19
	{6, 34, 62, 90},                       // V20
	{6, 28, 50, 72, 94},                   // V21
	{6, 26, 50, 74, 98},                   // V22
	{6, 30, 54, 78, 102},                  // V23
	{6, 28, 54, 80, 106},                  // V24
	{6, 32, 58, 84, 110},                  // V25
	{6, 30, 58, 86, 114},                  // V26
	{6, 34, 62, 90, 118},                  // V27
	{6, 26, 50, 74, 98, 122},              // V28
	{6, 30, 54, 78, 102, 126},             // V29
	{6, 26, 52, 78, 104, 130},             // V30
	{6, 30, 56, 82, 108, 134},             // V31
	{6, 34, 60, 86, 112, 138},             // V32
	{6, 30, 58, 86, 114, 142},             // V33
	{6, 34, 62, 90, 118, 146},             // V34
	{6, 30, 54, 78, 102, 126, 150},        // V35
	{6, 24, 50, 76, 102, 128, 154},        // V36
	{6, 28, 54, 80, 106, 132, 158},        // V37
	{6, 32, 58, 84, 110, 136, 162},        // V38
	{6, 26, 54, 82, 110, 138, 166},        // V39
	{6, 30, 58, 86, 114, 142, 170},        // V40
}

// vinfo holds the 18-bit BCH-encoded version information word for
// versions 7 through 40, indexed by version-7.
var vinfo = [34]uint32{
	0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6, 0x0C762, 0x0D847, 0x0E60D, 0x0F928,
	0x10B78, 0x1145D, 0x12A17, 0x13532, 0x149A6, 0x15683, 0x168C9, 0x177EC, 0x18EC4,
	0x191E1, 0x1AFAB, 0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75, 0x1F250, 0x209D5, 0x216F0,
	0x228BA, 0x2379F, 0x24B0B, 0x2542E, 0x26A64, 0x27541, 0x28C69,
}

// formatInfoL holds the 15-bit BCH-encoded format information word
// for error correction level Low across the eight mask patterns.
// Only index 0 (mask pattern 0, the only one this package ever
// draws) is used.
var formatInfoL = [8]uint16{
	0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976,
}

func validVersion(v int) bool { return v >= 1 && v <= 40 }

// Width returns the side length, in modules, of a QR symbol of the
// given version: 4*version+17.
func Width(version int) int { return 4*version + 17 }

// MaxData returns D(version), the number of data codewords (bytes
// after Reed-Solomon parity is stripped) a symbol of the given
// version can carry at error correction level Low.
func MaxData(version int) int {
	if !validVersion(version) {
		return 0
	}
	p := &vparam[version-1]
	return p.g1*p.g1size + p.g2*(p.g1size+1)
}

// ECSize returns E(version), the number of parity codewords per block.
func ECSize(version int) int {
	if !validVersion(version) {
		return 0
	}
	return len(vparam[version-1].poly)
}

// G1Blocks returns the number of blocks in block group 1.
func G1Blocks(version int) int {
	if !validVersion(version) {
		return 0
	}
	return vparam[version-1].g1
}

// G2Blocks returns the number of blocks in block group 2.
func G2Blocks(version int) int {
	if !validVersion(version) {
		return 0
	}
	return vparam[version-1].g2
}

// G1BlockSize returns the number of data codewords per block in
// group 1. Group 2 blocks, if any, hold one more.
func G1BlockSize(version int) int {
	if !validVersion(version) {
		return 0
	}
	return vparam[version-1].g1size
}

// poly returns the generator polynomial (log domain) for version.
func poly(version int) []byte { return vparam[version-1].poly }

// alignCenters returns the alignment pattern center coordinates for
// version, valid along both axes; the actual centers are every pair
// in the cross product that doesn't land in a finder pattern.
func alignCenters(version int) []int {
	if version < 1 || version > 40 {
		return nil
	}
	return align[version-1]
}

// VersionInfoBits returns I(version), the 18-bit version information
// word, or 0 for versions below 7 (which carry no version information
// patches).
func VersionInfoBits(version int) uint32 {
	if version < 7 || version > 40 {
		return 0
	}
	return vinfo[version-7]
}
