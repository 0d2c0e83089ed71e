// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for the hioload-fifo library.

package api

import "fmt"

// Construction-time errors. Data-plane operations never fail; they degrade
// by returning a smaller count than requested.
var (
	// ErrTooSmall reports a backing store whose rounded-down power-of-two
	// element count is below the minimum of 2.
	ErrTooSmall = fmt.Errorf("fifo: backing store too small, need at least 2 elements")
	// ErrElemSize reports an invalid element size at construction.
	ErrElemSize = fmt.Errorf("fifo: invalid element size")
	// ErrElemType reports an element type the engine cannot move safely:
	// the ring copies raw bytes without write barriers, so element types
	// must not contain pointers.
	ErrElemType = fmt.Errorf("fifo: element type must not contain pointers")
	// ErrRecSize reports a record header size other than 1 or 2 bytes.
	ErrRecSize = fmt.Errorf("fifo: record size must be 1 or 2 bytes")
)
