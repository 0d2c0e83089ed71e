// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ringbuf_test

import (
	"bytes"
	"testing"

	"github.com/momentics/hioload-fifo/internal/ringbuf"
)

func TestMaxRec(t *testing.T) {
	if got := ringbuf.MaxRec(1); got != 255 {
		t.Errorf("MaxRec(1) = %d, want 255", got)
	}
	if got := ringbuf.MaxRec(2); got != 65535 {
		t.Errorf("MaxRec(2) = %d, want 65535", got)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for _, recsize := range []int{1, 2} {
		r := mustRing(t, 64, 1)
		payloads := [][]byte{[]byte("alpha"), []byte("b"), []byte("gamma-gamma")}
		for _, p := range payloads {
			if n := r.InRec(p, recsize); n != len(p) {
				t.Fatalf("recsize=%d InRec(%q) = %d, want %d", recsize, p, n, len(p))
			}
		}
		for _, p := range payloads {
			if got := r.PeekLen(recsize); got != len(p) {
				t.Errorf("recsize=%d PeekLen = %d, want %d", recsize, got, len(p))
			}
			dst := make([]byte, 32)
			n := r.OutRec(dst, recsize)
			if n != len(p) || !bytes.Equal(dst[:n], p) {
				t.Errorf("recsize=%d OutRec = %d (%q), want %q", recsize, n, dst[:n], p)
			}
		}
		if !r.IsEmpty() {
			t.Errorf("recsize=%d ring not empty after drain", recsize)
		}
	}
}

func TestRecordAtomicity(t *testing.T) {
	r := mustRing(t, 8, 1)
	if n := r.InRec([]byte("abcde"), 1); n != 5 {
		t.Fatalf("first InRec = %d, want 5", n)
	}
	before := r.Len()
	// 3 payload + 1 header > 2 unused: must write nothing.
	if n := r.InRec([]byte("xyz"), 1); n != 0 {
		t.Fatalf("overfull InRec = %d, want 0", n)
	}
	if r.Len() != before {
		t.Errorf("write cursor moved on rejected record: Len %d -> %d", before, r.Len())
	}
	dst := make([]byte, 8)
	if n := r.OutRec(dst, 1); n != 5 || string(dst[:5]) != "abcde" {
		t.Errorf("surviving record = %d (%q)", n, dst[:n])
	}
}

func TestRecordDestructiveTruncation(t *testing.T) {
	r := mustRing(t, 64, 1)
	r.InRec([]byte("0123456789"), 1)
	r.InRec([]byte("next"), 1)

	dst := make([]byte, 4)
	if n := r.OutRec(dst, 1); n != 4 || string(dst) != "0123" {
		t.Fatalf("truncated OutRec = %d (%q)", n, dst)
	}
	// The unread tail of the first record is gone; the cursor sits on the
	// second record's header.
	if got := r.PeekLen(1); got != 4 {
		t.Errorf("PeekLen after truncation = %d, want 4", got)
	}
	full := make([]byte, 16)
	if n := r.OutRec(full, 1); n != 4 || string(full[:4]) != "next" {
		t.Errorf("second record = %d (%q)", n, full[:n])
	}
}

func TestRecordHeaderWrapsBoundary(t *testing.T) {
	r := mustRing(t, 8, 1)
	// Advance both cursors to 7 so a 2-byte header straddles the physical
	// end of the store.
	if n := r.InRec([]byte("aaaaa"), 2); n != 5 {
		t.Fatalf("setup InRec = %d, want 5", n)
	}
	dst := make([]byte, 8)
	if n := r.OutRec(dst, 2); n != 5 {
		t.Fatalf("setup OutRec = %d, want 5", n)
	}
	if n := r.InRec([]byte("xyz"), 2); n != 3 {
		t.Fatalf("straddling InRec = %d, want 3", n)
	}
	if got := r.PeekLen(2); got != 3 {
		t.Errorf("straddling PeekLen = %d, want 3", got)
	}
	if n := r.OutRec(dst, 2); n != 3 || string(dst[:3]) != "xyz" {
		t.Errorf("straddling OutRec = %d (%q)", n, dst[:n])
	}
}

func TestRecordPeekAndSkip(t *testing.T) {
	r := mustRing(t, 64, 1)
	r.InRec([]byte("first"), 1)
	r.InRec([]byte("second"), 1)

	dst := make([]byte, 16)
	if n := r.OutPeekRec(dst, 1); n != 5 || string(dst[:5]) != "first" {
		t.Fatalf("OutPeekRec = %d (%q)", n, dst[:n])
	}
	if r.Len() != 5+1+6+1 {
		t.Errorf("peek consumed data: Len = %d", r.Len())
	}
	r.SkipRec(1)
	if n := r.OutRec(dst, 1); n != 6 || string(dst[:6]) != "second" {
		t.Errorf("record after skip = %d (%q)", n, dst[:n])
	}
	if n := r.OutPeekRec(dst, 1); n != 0 {
		t.Errorf("OutPeekRec on empty = %d, want 0", n)
	}
	if n := r.OutRec(dst, 1); n != 0 {
		t.Errorf("OutRec on empty = %d, want 0", n)
	}
}

func TestZeroLengthRecord(t *testing.T) {
	r := mustRing(t, 8, 1)
	if n := r.InRec(nil, 1); n != 0 {
		t.Fatalf("empty InRec = %d, want 0", n)
	}
	// The header still went in: one record of length zero.
	if r.Len() != 1 {
		t.Fatalf("Len after empty record = %d, want 1", r.Len())
	}
	if got := r.PeekLen(1); got != 0 {
		t.Errorf("PeekLen = %d, want 0", got)
	}
	r.SkipRec(1)
	if !r.IsEmpty() {
		t.Error("ring not empty after skipping empty record")
	}
}
