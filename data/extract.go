// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package data

import (
	"fmt"

	"github.com/go-a2a/plotmcp/types"
)

// Extract resolves ref into concrete values.
//
// A literal is returned unchanged whether or not t is nil. A name requires t
// to contain that column.
func Extract(t *Table, ref types.ColumnRef) (types.Sequence, error) {
	switch ref.Kind() {
	case types.RefLiteral:
		seq, _ := ref.Values()
		return seq, nil

	case types.RefName:
		name, _ := ref.Name()
		if t == nil {
			return nil, fmt.Errorf("column '%s' requested but no data_input was provided: %w", name, types.ErrInputMissing)
		}
		seq, ok := t.Column(name)
		if !ok {
			return nil, &types.ColumnNotFoundError{Column: name, Available: t.Columns()}
		}
		return seq, nil

	default:
		return nil, fmt.Errorf("no column or values given: %w", types.ErrInputMissing)
	}
}

// ExtractAll resolves every reference of refs in order.
func ExtractAll(t *Table, refs types.ColumnRefs) ([]types.Sequence, error) {
	out := make([]types.Sequence, len(refs))
	for i, ref := range refs {
		seq, err := Extract(t, ref)
		if err != nil {
			return nil, err
		}
		out[i] = seq
	}
	return out, nil
}
