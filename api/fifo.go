// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the hioload-fifo library.
//
// All implementations are non-blocking: every data-plane operation completes
// in bounded time and reports a best-effort count instead of blocking or
// failing. Lock-free guarantees hold for exactly one producer and one
// consumer; callers with more than one producer must serialize the write
// side, and likewise for the read side.

package api

// Queue is the element-oriented FIFO contract.
type Queue[T any] interface {
	// Put appends one element, returns false if full.
	Put(item T) bool
	// Get removes the oldest element, returns false if empty.
	Get() (T, bool)
	// Len returns the current number of buffered elements.
	Len() int
	// Cap returns the fixed buffer capacity.
	Cap() int
	// IsEmpty reports whether no elements are buffered.
	IsEmpty() bool
	// IsFull reports whether no space remains.
	IsFull() bool
}

// ByteStream is the slice-oriented FIFO contract over bytes.
type ByteStream interface {
	// In copies as many bytes from src as fit, returns the count copied.
	In(src []byte) int
	// Out removes up to len(dst) bytes, returns the count copied.
	Out(dst []byte) int
	// Peek is Out without consuming.
	Peek(dst []byte) int
	// Avail returns the number of unused byte slots.
	Avail() int
	// Len returns the number of buffered bytes.
	Len() int
}

// RecordStream frames variable-length records over a byte FIFO. Each record
// is stored as a 1- or 2-byte little-endian length header followed by the
// payload. A record is written atomically or not at all.
type RecordStream interface {
	// In writes one record, returns the payload length written or 0 if the
	// header plus payload does not fit.
	In(rec []byte) int
	// Out consumes the next record, copying at most len(dst) payload bytes.
	// Payload beyond len(dst) is discarded with the record.
	Out(dst []byte) int
	// Peek copies the next record's payload without consuming it.
	Peek(dst []byte) int
	// PeekLen returns the next record's payload length without consuming.
	PeekLen() int
	// Skip discards the next record without copying it.
	Skip()
	// IsEmpty reports whether no records are buffered.
	IsEmpty() bool
}
