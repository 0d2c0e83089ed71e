// File: pool/storepool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/hioload-fifo/internal/ringbuf"
)

// StorePool hands out byte stores of one fixed power-of-two size,
// recycling them through a sync.Pool.
type StorePool struct {
	size int
	pool sync.Pool
}

// NewStorePool builds a pool of stores holding at least capacity bytes;
// the store size is capacity rounded up to a power of two.
func NewStorePool(capacity int) *StorePool {
	n := int(ringbuf.RoundUpPow2(uint64(capacity)))
	if n < 2 {
		n = 2
	}
	p := &StorePool{size: n}
	p.pool.New = func() any { return make([]byte, n) }
	return p
}

// Get returns a store of StoreSize bytes. Contents are unspecified; a
// FIFO wrapped over it starts empty regardless.
func (p *StorePool) Get() []byte {
	return p.pool.Get().([]byte)
}

// Put returns a store to the pool. Stores of the wrong size are dropped
// for the GC to collect.
func (p *StorePool) Put(store []byte) {
	if len(store) != p.size {
		return
	}
	p.pool.Put(store)
}

// StoreSize returns the fixed size of stores handed out by Get.
func (p *StorePool) StoreSize() int { return p.size }
