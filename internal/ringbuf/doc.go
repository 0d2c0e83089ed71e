// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Core allocation-free circular buffer engine for hioload-fifo.
// Implements masked monotonic cursors over a caller-owned byte store,
// two-segment wraparound copies, and length-prefixed record framing.
// Safe for one producer and one consumer without locks; see ringbuf.go
// and record.go for implementation details.
package ringbuf
