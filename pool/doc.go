// Package pool
// Author: momentics <momentics@gmail.com>
//
// Pooled backing stores for hioload-fifo.
// StorePool recycles power-of-two byte stores so callers that churn
// short-lived record FIFOs avoid repeated allocation. See storepool.go
// for implementation details.
package pool
