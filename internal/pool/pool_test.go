// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package pool_test

import (
	"testing"

	"github.com/go-a2a/plotmcp/internal/pool"
)

func TestBufferIsResetOnPut(t *testing.T) {
	buf := pool.Buffer.Get()
	buf.WriteString("rendered")
	pool.Buffer.Put(buf)

	// sync.Pool may hand back any buffer; each one must be empty.
	for range 4 {
		b := pool.Buffer.Get()
		if b.Len() != 0 {
			t.Fatalf("Get() returned a buffer holding %d bytes", b.Len())
		}
		pool.Buffer.Put(b)
	}
}

func TestPoolResetDrops(t *testing.T) {
	created := 0
	p := pool.New(func() *int {
		created++
		v := 0
		return &v
	}).WithReset(func(v *int) bool {
		return *v == 0
	})

	v := p.Get()
	*v = 1
	p.Put(v)

	if got := p.Get(); *got != 0 {
		t.Errorf("Get() = %d, want a fresh value", *got)
	}
	if created < 2 {
		t.Errorf("constructor called %d times, want at least 2", created)
	}
}
