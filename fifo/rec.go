// File: fifo/rec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RecFifo frames self-delimiting variable-length records over a byte ring.
// Layout per record: [header: 1 or 2 bytes, little-endian length][payload].
// A record is enqueued atomically or rejected whole; a short read consumes
// the whole record and discards the unread tail.

package fifo

import (
	"github.com/momentics/hioload-fifo/api"
	"github.com/momentics/hioload-fifo/internal/ringbuf"
)

// Ensure compile-time interface compliance.
var _ api.RecordStream = (*RecFifo)(nil)

// RecFifo is a lock-free SPSC FIFO of variable-length byte records.
type RecFifo struct {
	ring    *ringbuf.Ring
	recsize int
}

// NewRec allocates a record FIFO with at least capacity bytes of ring
// space (rounded up to a power of two). recsize is the header width in
// bytes and must be 1 or 2.
func NewRec(capacity, recsize int) (*RecFifo, error) {
	if capacity < 2 {
		return nil, api.ErrTooSmall
	}
	store := make([]byte, ringbuf.RoundUpPow2(uint64(capacity)))
	return WrapRec(store, recsize)
}

// WrapRec builds a record FIFO over a caller-owned byte store, rounded
// down to a power of two length. The store must not be touched by the
// caller while the FIFO is live.
func WrapRec(store []byte, recsize int) (*RecFifo, error) {
	if recsize != 1 && recsize != 2 {
		return nil, api.ErrRecSize
	}
	ring, err := ringbuf.New(store, 1)
	if err != nil {
		return nil, err
	}
	return &RecFifo{ring: ring, recsize: recsize}, nil
}

// In writes one record. Payloads longer than MaxLen are clamped before
// encoding. Returns the payload length written, or 0 when header plus
// payload exceed the free space; the record is never partially written.
func (f *RecFifo) In(rec []byte) int {
	if m := f.MaxLen(); len(rec) > m {
		rec = rec[:m]
	}
	return f.ring.InRec(rec, f.recsize)
}

// Out consumes the next record, copying at most len(dst) payload bytes
// and returning the count copied. When dst is shorter than the stored
// payload the remainder is discarded with the record, so the next call
// starts at the following record. Returns 0 on an empty FIFO.
func (f *RecFifo) Out(dst []byte) int {
	return f.ring.OutRec(dst, f.recsize)
}

// Peek copies the next record's payload without consuming it.
func (f *RecFifo) Peek(dst []byte) int {
	return f.ring.OutPeekRec(dst, f.recsize)
}

// PeekLen returns the next record's payload length without consuming
// anything, or 0 on an empty FIFO.
func (f *RecFifo) PeekLen() int {
	if f.ring.IsEmpty() {
		return 0
	}
	return f.ring.PeekLen(f.recsize)
}

// Skip discards the next record, header and payload, without copying.
func (f *RecFifo) Skip() {
	if f.ring.IsEmpty() {
		return
	}
	f.ring.SkipRec(f.recsize)
}

// SkipBytes discards up to n raw buffered bytes, ignoring record
// boundaries; returns the count discarded. Misaligned use desynchronizes
// the framing, so callers normally pass sums of PeekLen()+RecSize().
func (f *RecFifo) SkipBytes(n int) int {
	return f.ring.Skip(n)
}

// MaxLen returns the largest payload length one record can carry:
// 255 for a 1-byte header, 65535 for a 2-byte header.
func (f *RecFifo) MaxLen() int { return ringbuf.MaxRec(f.recsize) }

// RecSize returns the header width in bytes.
func (f *RecFifo) RecSize() int { return f.recsize }

// Len returns the number of buffered bytes, headers included.
func (f *RecFifo) Len() int { return f.ring.Len() }

// Cap returns the ring capacity in bytes.
func (f *RecFifo) Cap() int { return f.ring.Size() }

// Avail returns the number of unused bytes. A record fits when
// len(rec)+RecSize() <= Avail().
func (f *RecFifo) Avail() int { return f.ring.Unused() }

// IsEmpty reports whether no records are buffered.
func (f *RecFifo) IsEmpty() bool { return f.ring.IsEmpty() }

// IsFull reports whether no byte slots remain.
func (f *RecFifo) IsFull() bool { return f.ring.IsFull() }

// Reset drops all buffered records and zeroes both cursors. The caller
// must hold off both the producer and the consumer for the duration.
func (f *RecFifo) Reset() { f.ring.Reset() }

// ResetOut drains the FIFO by advancing the read cursor to the write
// cursor. Must be serialized with the consumer side.
func (f *RecFifo) ResetOut() { f.ring.ResetOut() }
