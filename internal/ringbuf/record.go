// File: internal/ringbuf/record.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Record framing over a byte ring (esize 1): each record is a 1- or 2-byte
// little-endian length header followed by the payload, stored contiguously
// in logical space. The header wraps across the physical boundary like any
// other bytes.

package ringbuf

// MaxRec returns the largest payload length a recsize-byte header can
// describe: 255 for 1, 65535 for 2.
func MaxRec(recsize int) int {
	return (1 << (uint(recsize) << 3)) - 1
}

// peekN decodes the length header at the read cursor. Callers ensure the
// ring is non-empty.
func (r *Ring) peekN(recsize int) uint64 {
	out := r.out.Load()
	l := uint64(r.data[out&r.mask])
	if recsize > 1 {
		l |= uint64(r.data[(out+1)&r.mask]) << 8
	}
	return l
}

// pokeN encodes the length header n at the write cursor in.
func (r *Ring) pokeN(in, n uint64, recsize int) {
	r.data[in&r.mask] = byte(n)
	if recsize > 1 {
		r.data[(in+1)&r.mask] = byte(n >> 8)
	}
}

// PeekLen returns the next record's payload length without consuming
// anything. Meaningful only on a non-empty ring.
func (r *Ring) PeekLen(recsize int) int {
	return int(r.peekN(recsize))
}

// InRec writes one record: header plus payload as a unit, or nothing.
// Returns len(src) on success, 0 when the record does not fit. The caller
// clamps len(src) to MaxRec(recsize) beforehand.
func (r *Ring) InRec(src []byte, recsize int) int {
	length := uint64(len(src))
	if length+uint64(recsize) > uint64(r.Unused()) {
		return 0
	}
	in := r.in.Load()
	r.pokeN(in, length, recsize)
	r.copyIn(src, length, in+uint64(recsize))
	r.in.Store(in + length + uint64(recsize))
	return int(length)
}

// outCopyRec copies up to len(dst) payload bytes of the next record and
// returns the copied count plus the record's stored length n.
func (r *Ring) outCopyRec(dst []byte, recsize int) (copied int, n uint64) {
	n = r.peekN(recsize)
	length := uint64(len(dst))
	if length > n {
		length = n
	}
	r.copyOut(dst, length, r.out.Load()+uint64(recsize))
	return int(length), n
}

// OutPeekRec copies the next record's payload into dst without consuming
// it. Returns 0 on an empty ring.
func (r *Ring) OutPeekRec(dst []byte, recsize int) int {
	if r.IsEmpty() {
		return 0
	}
	copied, _ := r.outCopyRec(dst, recsize)
	return copied
}

// OutRec consumes the next record, copying at most len(dst) payload bytes.
// The whole record is consumed even when dst is shorter than the stored
// payload; the tail is discarded, not kept for a later read.
func (r *Ring) OutRec(dst []byte, recsize int) int {
	if r.IsEmpty() {
		return 0
	}
	copied, n := r.outCopyRec(dst, recsize)
	r.out.Store(r.out.Load() + n + uint64(recsize))
	return copied
}

// SkipRec discards the next record without copying its payload. Callers
// ensure the ring is non-empty.
func (r *Ring) SkipRec(recsize int) {
	n := r.peekN(recsize)
	r.out.Store(r.out.Load() + n + uint64(recsize))
}
