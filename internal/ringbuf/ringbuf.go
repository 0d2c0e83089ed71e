// File: internal/ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a bounded circular buffer over a caller-owned byte store with
// atomic monotonic cursors, padded to prevent false sharing.
// Single-producer/single-consumer safe without locks: the producer's cursor
// store publishes the payload it gates, the consumer's cursor store
// publishes the space it frees.

package ringbuf

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-fifo/api"
)

// Ring is the core FIFO engine. Capacity is a power of two number of
// elements; cursors grow monotonically and wrap via unsigned arithmetic,
// never via a full flag. The byte store is owned by the caller.
type Ring struct {
	data  []byte
	mask  uint64 // capacity-1, element units
	esize uint64 // bytes per element
	_     cpu.CacheLinePad
	in    atomic.Uint64 // write cursor, producer side only
	_     cpu.CacheLinePad
	out   atomic.Uint64 // read cursor, consumer side only
	_     cpu.CacheLinePad
}

// New builds a ring over store with the given element size. The usable
// capacity is len(store)/esize rounded down to a power of two; fewer than
// 2 elements yields api.ErrTooSmall.
func New(store []byte, esize int) (*Ring, error) {
	if esize <= 0 {
		return nil, api.ErrElemSize
	}
	size := RoundDownPow2(uint64(len(store)) / uint64(esize))
	if size < 2 {
		return nil, api.ErrTooSmall
	}
	return &Ring{
		data:  store[:size*uint64(esize)],
		mask:  size - 1,
		esize: uint64(esize),
	}, nil
}

// Size returns the element capacity.
func (r *Ring) Size() int { return int(r.mask + 1) }

// Esize returns the bytes per element.
func (r *Ring) Esize() int { return int(r.esize) }

// Len returns the number of buffered elements.
func (r *Ring) Len() int {
	return int(r.in.Load() - r.out.Load())
}

// Unused returns the number of free element slots.
func (r *Ring) Unused() int {
	return int((r.mask + 1) - (r.in.Load() - r.out.Load()))
}

// IsEmpty reports whether no elements are buffered.
func (r *Ring) IsEmpty() bool { return r.in.Load() == r.out.Load() }

// IsFull reports whether no space remains.
func (r *Ring) IsFull() bool { return r.Len() >= r.Size() }

// copyIn moves length elements from src into the store at logical offset
// off. The transfer splits into at most two contiguous copies when it
// crosses the physical boundary; length never exceeds capacity.
func (r *Ring) copyIn(src []byte, length, off uint64) {
	size := r.mask + 1
	off &= r.mask
	if r.esize != 1 {
		off *= r.esize
		size *= r.esize
		length *= r.esize
	}
	l := min(length, size-off)
	copy(r.data[off:off+l], src[:l])
	copy(r.data[:length-l], src[l:length])
}

// copyOut is the symmetric read: length elements from logical offset off
// into dst, split at the physical boundary.
func (r *Ring) copyOut(dst []byte, length, off uint64) {
	size := r.mask + 1
	off &= r.mask
	if r.esize != 1 {
		off *= r.esize
		size *= r.esize
		length *= r.esize
	}
	l := min(length, size-off)
	copy(dst[:l], r.data[off:off+l])
	copy(dst[l:length], r.data[:length-l])
}

// In copies up to n elements from src, truncating to the free space.
// Returns the number of elements copied; never blocks, never fails.
// src must hold at least n*esize bytes.
func (r *Ring) In(src []byte, n int) int {
	length := uint64(n)
	if u := uint64(r.Unused()); length > u {
		length = u
	}
	in := r.in.Load()
	r.copyIn(src, length, in)
	// The atomic store publishes the payload before the consumer can
	// observe the advanced cursor.
	r.in.Store(in + length)
	return int(length)
}

// OutPeek copies up to n elements into dst without consuming them.
// dst must hold at least n*esize bytes.
func (r *Ring) OutPeek(dst []byte, n int) int {
	length := uint64(n)
	if l := uint64(r.Len()); length > l {
		length = l
	}
	r.copyOut(dst, length, r.out.Load())
	return int(length)
}

// Out copies up to n elements into dst and consumes them.
func (r *Ring) Out(dst []byte, n int) int {
	length := uint64(r.OutPeek(dst, n))
	// The atomic store frees the space only after the payload has been
	// copied out, so the producer cannot overwrite unread bytes.
	r.out.Store(r.out.Load() + length)
	return int(length)
}

// Skip discards up to n buffered elements without copying them.
// A non-positive n discards nothing.
func (r *Ring) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	length := uint64(n)
	if l := uint64(r.Len()); length > l {
		length = l
	}
	r.out.Store(r.out.Load() + length)
	return int(length)
}

// Reset zeroes both cursors, dropping all buffered data. Unsafe under any
// concurrent producer or consumer; the caller must guarantee exclusive
// access for the duration of the call.
func (r *Ring) Reset() {
	r.out.Store(0)
	r.in.Store(0)
}

// ResetOut advances the read cursor to the write cursor, draining the
// buffer. Unsafe under a concurrent consumer; the producer side may keep
// running only if the caller is that producer.
func (r *Ring) ResetOut() {
	r.out.Store(r.in.Load())
}

// RoundUpPow2 returns the smallest power of two >= v (0 and 1 map to
// themselves). Used by allocating constructors that pre-size a store.
func RoundUpPow2(v uint64) uint64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}

// RoundDownPow2 returns the largest power of two <= v, or 0 for v == 0.
func RoundDownPow2(v uint64) uint64 {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return (v + 1) >> 1
}
