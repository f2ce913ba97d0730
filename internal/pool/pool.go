// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"bytes"
	"sync"
)

// Pool is a generics wrapper around [sync.Pool] to provide strongly-typed object pooling.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T) bool
}

// New returns a new [Pool] for T, and will use fn to construct new T's when the pool is empty.
func New[T any](fn func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return fn()
			},
		},
	}
}

// WithReset sets the function applied to values passed to [Pool.Put].
//
// A reset returning false drops the value instead of pooling it.
func (p *Pool[T]) WithReset(reset func(T) bool) *Pool[T] {
	p.reset = reset
	return p
}

// Get gets a T from the pool, or creates a new one if the pool is empty.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns x into the pool.
func (p *Pool[T]) Put(x T) {
	if p.reset != nil && !p.reset(x) {
		return
	}
	p.pool.Put(x)
}

// maxBufferSize bounds the capacity of pooled buffers. A 300 dpi A4 PNG fits.
const maxBufferSize = 16 << 20

// Buffer provides the [*bytes.Buffer] pooling objects used to encode rendered plots.
var Buffer = New(func() *bytes.Buffer {
	return &bytes.Buffer{}
}).WithReset(func(b *bytes.Buffer) bool {
	if b.Cap() > maxBufferSize {
		return false
	}
	b.Reset()
	return true
})
