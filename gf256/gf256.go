// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// used by QR code error correction, and Reed-Solomon encoding over
// that field.
//
// Unlike a general-purpose GF(256) package that computes its log and
// antilog tables at init time for an arbitrary reducing polynomial and
// generator, this package carries the single table pair QR codes
// actually use (polynomial 0x11d, generator 2) as literal data, so
// there is nothing to compute and nothing that can panic at startup.
package gf256

// Exp holds the base-2 exponential table: Exp[i] = 2^i in GF(256).
// Exp[255] wraps back to 1, so indices may be used modulo 255.
var Exp = [256]byte{
	1, 2, 4, 8, 16, 32, 64, 128, 29, 58, 116, 232, 205, 135, 19, 38, 76, 152, 45, 90, 180, 117,
	234, 201, 143, 3, 6, 12, 24, 48, 96, 192, 157, 39, 78, 156, 37, 74, 148, 53, 106, 212, 181,
	119, 238, 193, 159, 35, 70, 140, 5, 10, 20, 40, 80, 160, 93, 186, 105, 210, 185, 111, 222, 161,
	95, 190, 97, 194, 153, 47, 94, 188, 101, 202, 137, 15, 30, 60, 120, 240, 253, 231, 211, 187,
	107, 214, 177, 127, 254, 225, 223, 163, 91, 182, 113, 226, 217, 175, 67, 134, 17, 34, 68, 136,
	13, 26, 52, 104, 208, 189, 103, 206, 129, 31, 62, 124, 248, 237, 199, 147, 59, 118, 236, 197,
	151, 51, 102, 204, 133, 23, 46, 92, 184, 109, 218, 169, 79, 158, 33, 66, 132, 21, 42, 84, 168,
	77, 154, 41, 82, 164, 85, 170, 73, 146, 57, 114, 228, 213, 183, 115, 230, 209, 191, 99, 198,
	145, 63, 126, 252, 229, 215, 179, 123, 246, 241, 255, 227, 219, 171, 75, 150, 49, 98, 196, 149,
	55, 110, 220, 165, 87, 174, 65, 130, 25, 50, 100, 200, 141, 7, 14, 28, 56, 112, 224, 221, 167,
	83, 166, 81, 162, 89, 178, 121, 242, 249, 239, 195, 155, 43, 86, 172, 69, 138, 9, 18, 36, 72,
	144, 61, 122, 244, 245, 247, 243, 251, 235, 203, 139, 11, 22, 44, 88, 176, 125, 250, 233, 207,
	131, 27, 54, 108, 216, 173, 71, 142, 1,
}

// Log holds the base-2 logarithm table: Log[x] = i such that 2^i = x.
// Log[0] is a sentinel and must never be looked up; GF(256) has no
// logarithm of zero.
var Log = [256]byte{
	175, 0, 1, 25, 2, 50, 26, 198, 3, 223, 51, 238, 27, 104, 199, 75, 4, 100, 224, 14, 52, 141,
	239, 129, 28, 193, 105, 248, 200, 8, 76, 113, 5, 138, 101, 47, 225, 36, 15, 33, 53, 147, 142,
	218, 240, 18, 130, 69, 29, 181, 194, 125, 106, 39, 249, 185, 201, 154, 9, 120, 77, 228, 114,
	166, 6, 191, 139, 98, 102, 221, 48, 253, 226, 152, 37, 179, 16, 145, 34, 136, 54, 208, 148,
	206, 143, 150, 219, 189, 241, 210, 19, 92, 131, 56, 70, 64, 30, 66, 182, 163, 195, 72, 126,
	110, 107, 58, 40, 84, 250, 133, 186, 61, 202, 94, 155, 159, 10, 21, 121, 43, 78, 212, 229, 172,
	115, 243, 167, 87, 7, 112, 192, 247, 140, 128, 99, 13, 103, 74, 222, 237, 49, 197, 254, 24,
	227, 165, 153, 119, 38, 184, 180, 124, 17, 68, 146, 217, 35, 32, 137, 46, 55, 63, 209, 91, 149,
	188, 207, 205, 144, 135, 151, 178, 220, 252, 190, 97, 242, 86, 211, 171, 20, 42, 93, 158, 132,
	60, 57, 83, 71, 109, 65, 162, 31, 45, 67, 216, 183, 123, 164, 118, 196, 23, 73, 236, 127, 12,
	111, 246, 108, 161, 59, 82, 41, 157, 85, 170, 251, 96, 134, 177, 187, 204, 62, 90, 203, 89, 95,
	176, 156, 169, 160, 81, 11, 245, 22, 235, 122, 117, 44, 215, 79, 174, 213, 233, 230, 231, 173,
	232, 116, 214, 244, 234, 168, 80, 88, 175,
}

// Mul returns the product of a and b in GF(256).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return Exp[mod255(int(Log[a])+int(Log[b]))]
}

func mod255(x int) int {
	if x >= 255 {
		x -= 255
	}
	return x
}

// maxBlockAndECLen bounds the scratch array ECC uses for its
// polynomial long division: the largest QR Low block is 123
// codewords, and the largest generator polynomial has 30 terms.
const maxBlockAndECLen = 123 + 30

// ECC computes the Reed-Solomon error correction codewords for data
// using the generator polynomial gen, whose coefficients are given in
// the log domain (gen[j] = Log of the j-th coefficient of the
// standard QR generator polynomial for len(gen) EC bytes). The result
// is written to check, which must have length len(gen) or more.
//
// ECC performs a single allocation-free pass using a fixed-size local
// array as scratch space, mirroring the shifted-polynomial long
// division any Reed-Solomon systematic encoder performs.
func ECC(data []byte, gen []byte, check []byte) {
	if len(check) < len(gen) {
		panic("gf256: check buffer shorter than generator polynomial")
	}
	if len(gen) == 0 {
		return
	}
	if len(data)+len(gen) > maxBlockAndECLen {
		panic("gf256: block too large for ECC scratch")
	}
	var tmp [maxBlockAndECLen]byte
	p := tmp[:len(data)+len(gen)]
	copy(p, data)
	for i := range p[len(data):] {
		p[len(data)+i] = 0
	}
	for i := 0; i < len(data); i++ {
		lead := p[i]
		if lead == 0 {
			continue
		}
		logLead := int(Log[lead])
		for j, g := range gen {
			p[i+j+1] ^= Exp[mod255(int(g)+logLead)]
		}
	}
	copy(check, p[len(data):])
}
