// Package adapters
// Author: momentics <momentics@gmail.com>
//
// OverflowWriter: a lossless producer front over a RecordStream. The core
// ring rejects records that do not fit; this adapter parks them in an
// unbounded spill queue and re-offers them on Flush, preserving record
// order across the spill.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-fifo/api"
)

// OverflowWriter wraps a RecordStream for a single producer goroutine.
// It is owned by the write side: Write and Flush must not race with each
// other, only with the stream's consumer.
type OverflowWriter struct {
	dst   api.RecordStream
	spill *queue.Queue
}

// NewOverflowWriter builds a writer spilling into an unbounded queue.
func NewOverflowWriter(dst api.RecordStream) *OverflowWriter {
	return &OverflowWriter{
		dst:   dst,
		spill: queue.New(),
	}
}

// Write accepts one record. It goes straight to the stream when the spill
// queue is empty and the ring has room; otherwise a private copy is parked
// behind any earlier spilled records. Empty records are dropped. Returns
// the number of payload bytes accepted.
func (w *OverflowWriter) Write(rec []byte) int {
	if len(rec) == 0 {
		return 0
	}
	if w.spill.Length() == 0 {
		if n := w.dst.In(rec); n > 0 {
			return n
		}
	}
	cp := append([]byte(nil), rec...)
	w.spill.Add(cp)
	return len(cp)
}

// Flush moves spilled records into the stream until it fills up or the
// spill queue empties. Returns the number of records moved.
func (w *OverflowWriter) Flush() int {
	moved := 0
	for w.spill.Length() > 0 {
		rec := w.spill.Peek().([]byte)
		if w.dst.In(rec) == 0 {
			break
		}
		w.spill.Remove()
		moved++
	}
	return moved
}

// Pending returns the number of spilled records awaiting Flush.
func (w *OverflowWriter) Pending() int {
	return w.spill.Length()
}
