// Package fifo
// Author: momentics <momentics@gmail.com>
//
// Public typed layer of hioload-fifo.
// Fifo[T] is a generic lock-free SPSC FIFO over the internal ring engine;
// RecFifo frames variable-length records over a byte ring with 1- or 2-byte
// length headers. Backing stores may be allocated by New/NewRec or supplied
// by the caller via Wrap/WrapRec. See fifo.go and rec.go for details.
package fifo
