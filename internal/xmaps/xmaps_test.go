// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package xmaps_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/plotmcp/internal/xmaps"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]int
		key  string
		want bool
	}{
		{
			name: "key exists",
			m:    map[string]int{"a": 1, "b": 2, "c": 3},
			key:  "b",
			want: true,
		},
		{
			name: "key does not exist",
			m:    map[string]int{"a": 1, "b": 2, "c": 3},
			key:  "d",
			want: false,
		},
		{
			name: "empty map",
			m:    map[string]int{},
			key:  "a",
			want: false,
		},
		{
			name: "case sensitivity",
			m:    map[string]int{"a": 1, "B": 2, "c": 3},
			key:  "b",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := xmaps.Contains(tt.m, tt.key)
			if got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]bool
		want []string
	}{
		{
			name: "sorted",
			m:    map[string]bool{"viridis": true, "coolwarm": true, "magma": true},
			want: []string{"coolwarm", "magma", "viridis"},
		},
		{
			name: "empty",
			m:    map[string]bool{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := xmaps.SortedKeys(tt.m)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SortedKeys() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
