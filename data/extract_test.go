// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package data_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/plotmcp/data"
	"github.com/go-a2a/plotmcp/types"
)

func TestExtract(t *testing.T) {
	tbl, err := data.FromColumns(types.ColumnData{
		{Name: "x", Values: []any{1.0, 2.0}},
		{Name: "y", Values: []any{3.0, 4.0}},
	})
	if err != nil {
		t.Fatalf("FromColumns() error = %v", err)
	}
	defer tbl.Release()

	tests := []struct {
		name    string
		table   *data.Table
		ref     types.ColumnRef
		want    types.Sequence
		wantErr error
	}{
		{
			name:  "literal without table",
			table: nil,
			ref:   types.Literal(types.FloatSequence(7, 8)),
			want:  types.FloatSequence(7, 8),
		},
		{
			name:  "literal ignores table",
			table: tbl,
			ref:   types.Literal(types.StringSequence("a")),
			want:  types.StringSequence("a"),
		},
		{
			name:  "name",
			table: tbl,
			ref:   types.ColumnName("y"),
			want:  types.FloatSequence(3, 4),
		},
		{
			name:    "name without table",
			table:   nil,
			ref:     types.ColumnName("y"),
			wantErr: types.ErrInputMissing,
		},
		{
			name:    "unknown name",
			table:   tbl,
			ref:     types.ColumnName("z"),
			wantErr: types.ErrColumnNotFound,
		},
		{
			name:    "unset",
			table:   tbl,
			ref:     types.ColumnRef{},
			wantErr: types.ErrInputMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := data.Extract(tt.table, tt.ref)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractListsAvailableColumns(t *testing.T) {
	tbl, err := data.FromColumns(types.ColumnData{
		{Name: "alpha", Values: []any{1.0}},
		{Name: "beta", Values: []any{2.0}},
		{Name: "gamma", Values: []any{3.0}},
	})
	if err != nil {
		t.Fatalf("FromColumns() error = %v", err)
	}
	defer tbl.Release()

	_, err = data.Extract(tbl, types.ColumnName("delta"))
	var cnf *types.ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("Extract() error = %v, want *ColumnNotFoundError", err)
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, cnf.Available); diff != "" {
		t.Errorf("Available mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Error() = %q, want it to mention %q", err.Error(), name)
		}
	}
}

func TestExtractAll(t *testing.T) {
	got, err := data.ExtractAll(nil, types.ColumnRefs{
		types.Literal(types.FloatSequence(1)),
		types.Literal(types.FloatSequence(2, 3)),
	})
	if err != nil {
		t.Fatalf("ExtractAll() error = %v", err)
	}
	want := []types.Sequence{types.FloatSequence(1), types.FloatSequence(2, 3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractAll() mismatch (-want +got):\n%s", diff)
	}
}
