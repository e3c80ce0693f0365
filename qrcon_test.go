// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcon

import (
	"testing"

	"github.com/unixdj/qrcon/coding"
)

func TestQRMaxDataSizeMatchesFormula(t *testing.T) {
	for v := 1; v <= 40; v++ {
		d := coding.MaxData(v)
		want := d - 3
		if got := QRMaxDataSize(v, 0); got != want {
			t.Errorf("QRMaxDataSize(%d, 0) = %d, want %d", v, got, want)
		}
	}
}

func TestQRMaxDataSizeInvalidVersion(t *testing.T) {
	if got := QRMaxDataSize(0, 0); got != 0 {
		t.Errorf("QRMaxDataSize(0, 0) = %d, want 0", got)
	}
	if got := QRMaxDataSize(41, 0); got != 0 {
		t.Errorf("QRMaxDataSize(41, 0) = %d, want 0", got)
	}
}

func TestQRGenerateMinimumSymbol(t *testing.T) {
	data := make([]byte, DataBufCap)
	copy(data, []byte("HELLO\n"))
	tmp := make([]byte, TmpBufCap)
	w := QRGenerate(nil, data, 6, 1, tmp)
	if w != 21 {
		t.Fatalf("QRGenerate returned width %d, want 21", w)
	}
}

func TestQRGenerateWidthSweep(t *testing.T) {
	for v := 1; v <= 40; v++ {
		data := make([]byte, DataBufCap)
		tmp := make([]byte, TmpBufCap)
		n := QRMaxDataSize(v, 0)
		for i := 0; i < n; i++ {
			data[i] = 'A'
		}
		w := QRGenerate(nil, data, n, v, tmp)
		if want := coding.Width(v); w != want {
			t.Errorf("version %d: QRGenerate returned width %d, want %d", v, w, want)
		}
	}
}

func TestQRGenerateEmptyInput(t *testing.T) {
	data := make([]byte, DataBufCap)
	tmp := make([]byte, TmpBufCap)
	w := QRGenerate(nil, data, 0, 5, tmp)
	if want := coding.Width(5); w != want {
		t.Fatalf("QRGenerate(empty) returned width %d, want %d", w, want)
	}
}

func TestQRGenerateRejectsBadVersion(t *testing.T) {
	data := make([]byte, DataBufCap)
	tmp := make([]byte, TmpBufCap)
	if w := QRGenerate(nil, data, 0, 0, tmp); w != 0 {
		t.Errorf("version 0: got width %d, want 0", w)
	}
	if w := QRGenerate(nil, data, 0, 41, tmp); w != 0 {
		t.Errorf("version 41: got width %d, want 0", w)
	}
}

func TestQRGenerateRejectsSmallBuffers(t *testing.T) {
	tmp := make([]byte, TmpBufCap)
	if w := QRGenerate(nil, make([]byte, 10), 0, 1, tmp); w != 0 {
		t.Errorf("small data buf: got width %d, want 0", w)
	}
	data := make([]byte, DataBufCap)
	if w := QRGenerate(nil, data, 0, 1, make([]byte, 10)); w != 0 {
		t.Errorf("small tmp buf: got width %d, want 0", w)
	}
}

func TestQRGenerateDeterministic(t *testing.T) {
	data1 := make([]byte, DataBufCap)
	tmp1 := make([]byte, TmpBufCap)
	copy(data1, []byte("reproducible"))
	w1 := QRGenerate(nil, data1, len("reproducible"), 3, tmp1)

	data2 := make([]byte, DataBufCap)
	tmp2 := make([]byte, TmpBufCap)
	copy(data2, []byte("reproducible"))
	w2 := QRGenerate(nil, data2, len("reproducible"), 3, tmp2)

	if w1 != w2 {
		t.Fatalf("widths differ: %d vs %d", w1, w2)
	}
	for i := range data1 {
		if data1[i] != data2[i] {
			t.Fatalf("bitmap byte %d differs: %d vs %d", i, data1[i], data2[i])
		}
	}
}
