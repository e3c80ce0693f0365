// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panicqr

import (
	"bytes"
	"testing"
	"time"

	"github.com/unixdj/qrcon/fitter"
)

func TestRunConsumesEntireBuffer(t *testing.T) {
	f, err := fitter.New(3)
	if err != nil {
		t.Fatalf("fitter.New: %v", err)
	}
	defer f.Close()

	var widths []int
	sink := func(bitmap []byte, width int) error {
		widths = append(widths, width)
		return nil
	}

	d := NewDriver(Config{Version: 10, CompressionLevel: 3}, f, sink)
	src := bytes.Repeat([]byte("panic: kernel oops at 0xdeadbeef\n"), 200)

	var slept time.Duration
	sleep := func(dur time.Duration) { slept += dur }

	if err := d.Run(src, sleep); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(widths) == 0 {
		t.Fatal("Run produced no frames")
	}
	for _, w := range widths {
		if w != 4*10+17 {
			t.Errorf("frame width = %d, want %d", w, 4*10+17)
		}
	}
}

func TestRunEmptyBufferProducesNoFrames(t *testing.T) {
	f, err := fitter.New(3)
	if err != nil {
		t.Fatalf("fitter.New: %v", err)
	}
	defer f.Close()

	called := false
	sink := func(bitmap []byte, width int) error {
		called = true
		return nil
	}
	d := NewDriver(Config{Version: 10}, f, sink)
	if err := d.Run(nil, func(time.Duration) {}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if called {
		t.Error("Run called the sink on an empty buffer")
	}
}

func TestRunPropagatesSinkError(t *testing.T) {
	f, err := fitter.New(3)
	if err != nil {
		t.Fatalf("fitter.New: %v", err)
	}
	defer f.Close()

	wantErr := errSink
	sink := func(bitmap []byte, width int) error { return wantErr }
	d := NewDriver(Config{Version: 10}, f, sink)
	err = d.Run([]byte("some log data"), func(time.Duration) {})
	if err != wantErr {
		t.Errorf("Run err = %v, want %v", err, wantErr)
	}
}

func TestRunSettleDelayOnlyOnFirstFrame(t *testing.T) {
	f, err := fitter.New(3)
	if err != nil {
		t.Fatalf("fitter.New: %v", err)
	}
	defer f.Close()

	var delays []time.Duration
	sink := func(bitmap []byte, width int) error { return nil }
	d := NewDriver(Config{
		Version:     10,
		SettleDelay: 2 * time.Second,
		FrameDelay:  100 * time.Millisecond,
	}, f, sink)
	src := bytes.Repeat([]byte("x"), 4000)
	if err := d.Run(src, func(dur time.Duration) { delays = append(delays, dur) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(delays) == 0 {
		t.Fatal("no frames rendered")
	}
	if delays[0] != 2*time.Second {
		t.Errorf("first delay = %v, want the settle delay", delays[0])
	}
	for _, d := range delays[1:] {
		if d != 100*time.Millisecond {
			t.Errorf("later delay = %v, want the frame delay", d)
		}
	}
}

var errSink = &sinkError{"sink failed"}

type sinkError struct{ msg string }

func (e *sinkError) Error() string { return e.msg }
