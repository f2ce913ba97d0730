// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package pool provides strongly-typed object pooling with generic support and a predefined
// [*bytes.Buffer] pool.
//
// The pool package implements a type-safe wrapper around Go's sync.Pool. The image
// serializer encodes every rendered plot into a buffer taken from [Buffer] and
// copies the bytes out before returning the buffer.
//
// # Usage
//
//	buf := pool.Buffer.Get()
//	defer pool.Buffer.Put(buf)
//
//	if _, err := canvas.WriteTo(buf); err != nil {
//		return err
//	}
//	out := bytes.Clone(buf.Bytes())
//
// Buffers are reset when put back. Buffers that grew beyond a bounded capacity
// are dropped so that one very large render does not pin its memory.
//
// # Custom Pools
//
//	var points = pool.New(func() []float64 {
//		return make([]float64, 0, 1024)
//	}).WithReset(func(s []float64) bool {
//		return cap(s) <= 1<<16
//	})
package pool
