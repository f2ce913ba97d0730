// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package data

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/go-a2a/plotmcp/types"
)

// Table is an immutable set of named, equal-length columns.
//
// A Table owns Arrow memory; call [Table.Release] when done with it.
type Table struct {
	tbl arrow.Table
}

func newTable(tbl arrow.Table) *Table {
	return &Table{tbl: tbl}
}

// Arrow returns the underlying [arrow.Table]. It stays owned by t.
func (t *Table) Arrow() arrow.Table {
	return t.tbl
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	fields := t.tbl.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return int(t.tbl.NumRows())
}

// Column returns the values of the named column as a [types.Sequence].
//
// Integer and floating point columns become float64, booleans stay bool, nulls
// become nil and every other type is rendered as text.
func (t *Table) Column(name string) (types.Sequence, bool) {
	idx := t.tbl.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return nil, false
	}

	col := t.tbl.Column(idx[0])
	seq := make(types.Sequence, 0, col.Len())
	for _, chunk := range col.Data().Chunks() {
		for i := range chunk.Len() {
			seq = append(seq, value(chunk, i))
		}
	}
	return seq, true
}

// Release releases the Arrow memory held by t. It is safe to call on a nil t.
func (t *Table) Release() {
	if t == nil || t.tbl == nil {
		return
	}
	t.tbl.Release()
	t.tbl = nil
}

func value(arr arrow.Array, i int) any {
	if arr.IsNull(i) {
		return nil
	}

	switch a := arr.(type) {
	case *array.Float64:
		return a.Value(i)
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Int64:
		return float64(a.Value(i))
	case *array.Int32:
		return float64(a.Value(i))
	case *array.Int16:
		return float64(a.Value(i))
	case *array.Int8:
		return float64(a.Value(i))
	case *array.Uint64:
		return float64(a.Value(i))
	case *array.Uint32:
		return float64(a.Value(i))
	case *array.Uint16:
		return float64(a.Value(i))
	case *array.Uint8:
		return float64(a.Value(i))
	case *array.Boolean:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	default:
		return arr.ValueStr(i)
	}
}
