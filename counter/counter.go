// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic counts shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned count, the zero value is ready to use
type Counter struct {
	n uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64(&c.n, 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(&c.n, ^uint64(0))
}

// TryIncrement - add 1 only if the result would not exceed limit
func (c *Counter) TryIncrement(limit uint64) bool {
	for {
		current := atomic.LoadUint64(&c.n)
		if current >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64(&c.n, current, current+1) {
			return true
		}
	}
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.n)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
