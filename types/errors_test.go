// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/go-a2a/plotmcp/types"
)

func TestErrorSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"file not found", &types.FileNotFoundError{Path: "a.csv"}, types.ErrNotFound},
		{"unsupported format", &types.UnsupportedFormatError{Format: "xlsx"}, types.ErrUnsupportedFormat},
		{"parse", &types.ParseError{Path: "a.json", Format: "json", Err: io.ErrUnexpectedEOF}, types.ErrParse},
		{"construction", &types.ConstructionError{Reason: "ragged"}, types.ErrConstruction},
		{"column not found", &types.ColumnNotFoundError{Column: "z"}, types.ErrColumnNotFound},
		{"invalid argument", types.InvalidArgument("bins", "must be positive"), types.ErrInvalidArgument},
	}

	sentinels := []error{
		types.ErrInputConflict, types.ErrInputMissing, types.ErrNotFound, types.ErrUnsupportedFormat,
		types.ErrParse, types.ErrConstruction, types.ErrColumnNotFound, types.ErrInvalidArgument,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("plot: %w", tt.err)
			for _, s := range sentinels {
				if got, want := errors.Is(wrapped, s), s == tt.want; got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", wrapped, s, got, want)
				}
			}
		})
	}
}

func TestColumnNotFoundErrorListsColumns(t *testing.T) {
	err := &types.ColumnNotFoundError{Column: "z", Available: []string{"x", "y"}}
	if !strings.Contains(err.Error(), "x, y") {
		t.Errorf("Error() = %q, want it to list the available columns", err.Error())
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &types.ParseError{Path: "a.csv", Format: "csv", Err: io.ErrUnexpectedEOF}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("ParseError does not unwrap to its cause")
	}
}
