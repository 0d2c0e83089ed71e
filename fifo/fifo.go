// File: fifo/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fifo[T] is the typed public view of the internal byte ring. The element
// type is a compile-time parameter and must be free of pointers: the engine
// moves elements as raw bytes, without the write barriers the collector
// needs to track pointer stores, so pointer-bearing types are rejected at
// construction.

package fifo

import (
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-fifo/api"
	"github.com/momentics/hioload-fifo/internal/ringbuf"
)

// Ensure compile-time interface compliance.
var (
	_ api.Queue[int] = (*Fifo[int])(nil)
	_ api.ByteStream = (*Fifo[byte])(nil)
)

// Fifo is a lock-free fixed-capacity FIFO of T, safe for one producer and
// one consumer without locks. All operations are non-blocking and report
// best-effort counts.
type Fifo[T any] struct {
	ring *ringbuf.Ring
}

// rawBytes reinterprets a typed slice as its underlying bytes. Only valid
// for pointer-free T; Wrap enforces that.
func rawBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	esize := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*esize)
}

// hasPointers reports whether values of t embed pointers the garbage
// collector must track through write barriers.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// New allocates a Fifo holding at least capacity elements of T; the actual
// capacity is capacity rounded up to a power of two. T must not contain
// pointers; api.ErrElemType reports a type that does.
func New[T any](capacity int) (*Fifo[T], error) {
	if capacity < 2 {
		return nil, api.ErrTooSmall
	}
	store := make([]T, ringbuf.RoundUpPow2(uint64(capacity)))
	return Wrap(store)
}

// Wrap builds a Fifo over a caller-owned store. The usable capacity is
// len(store) rounded down to a power of two; fewer than 2 elements yields
// api.ErrTooSmall, and a pointer-bearing T yields api.ErrElemType. The
// store must not be touched by the caller while the Fifo is live.
func Wrap[T any](store []T) (*Fifo[T], error) {
	var zero T
	esize := int(unsafe.Sizeof(zero))
	if esize == 0 {
		return nil, api.ErrElemSize
	}
	if hasPointers(reflect.TypeOf((*T)(nil)).Elem()) {
		return nil, api.ErrElemType
	}
	ring, err := ringbuf.New(rawBytes(store), esize)
	if err != nil {
		return nil, err
	}
	return &Fifo[T]{ring: ring}, nil
}

// Put appends one element; returns false if full.
func (f *Fifo[T]) Put(v T) bool {
	buf := [1]T{v}
	return f.ring.In(rawBytes(buf[:]), 1) == 1
}

// Get removes and returns the oldest element; ok is false if empty.
func (f *Fifo[T]) Get() (T, bool) {
	var buf [1]T
	if f.ring.Out(rawBytes(buf[:]), 1) != 1 {
		var zero T
		return zero, false
	}
	return buf[0], true
}

// In copies as many elements from src as fit; returns the count copied.
// A full FIFO truncates silently, it never blocks.
func (f *Fifo[T]) In(src []T) int {
	return f.ring.In(rawBytes(src), len(src))
}

// Out removes up to len(dst) elements in FIFO order; returns the count.
func (f *Fifo[T]) Out(dst []T) int {
	return f.ring.Out(rawBytes(dst), len(dst))
}

// Peek copies up to len(dst) elements without consuming them.
func (f *Fifo[T]) Peek(dst []T) int {
	return f.ring.OutPeek(rawBytes(dst), len(dst))
}

// Skip discards up to n buffered elements; returns the count discarded.
func (f *Fifo[T]) Skip(n int) int {
	return f.ring.Skip(n)
}

// Len returns the number of buffered elements.
func (f *Fifo[T]) Len() int { return f.ring.Len() }

// Cap returns the fixed element capacity.
func (f *Fifo[T]) Cap() int { return f.ring.Size() }

// Avail returns the number of unused element slots.
func (f *Fifo[T]) Avail() int { return f.ring.Unused() }

// Esize returns the size of one element in bytes.
func (f *Fifo[T]) Esize() int { return f.ring.Esize() }

// IsEmpty reports whether no elements are buffered.
func (f *Fifo[T]) IsEmpty() bool { return f.ring.IsEmpty() }

// IsFull reports whether no space remains.
func (f *Fifo[T]) IsFull() bool { return f.ring.IsFull() }

// Reset drops all buffered elements and zeroes both cursors. The caller
// must hold off both the producer and the consumer for the duration.
func (f *Fifo[T]) Reset() { f.ring.Reset() }

// ResetOut drains the FIFO by advancing the read cursor to the write
// cursor. Must be serialized with the consumer side.
func (f *Fifo[T]) ResetOut() { f.ring.ResetOut() }
