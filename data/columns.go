// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package data

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/go-a2a/plotmcp/types"
)

type columnKind int

const (
	kindNull columnKind = iota
	kindFloat
	kindBool
	kindString
)

// FromColumns builds a [Table] from a literal column mapping.
//
// Every column must be a list of numbers, strings or booleans (nulls allowed)
// and all columns must have the same length.
func FromColumns(cols types.ColumnData) (*Table, error) {
	mem := memory.NewGoAllocator()

	fields := make([]arrow.Field, 0, len(cols))
	arrs := make([]arrow.Array, 0, len(cols))
	defer func() {
		for _, a := range arrs {
			a.Release()
		}
	}()

	seen := make(map[string]bool, len(cols))
	rows := -1
	for _, col := range cols {
		if seen[col.Name] {
			return nil, &types.ConstructionError{Column: col.Name, Reason: "duplicate column name"}
		}
		seen[col.Name] = true

		seq, err := types.NewSequence(col.Values)
		if err != nil {
			return nil, &types.ConstructionError{Column: col.Name, Reason: err.Error()}
		}
		if rows >= 0 && len(seq) != rows {
			return nil, &types.ConstructionError{
				Column: col.Name,
				Reason: fmt.Sprintf("has %d values, expected %d", len(seq), rows),
			}
		}
		rows = len(seq)

		kind, err := kindOf(seq)
		if err != nil {
			return nil, &types.ConstructionError{Column: col.Name, Reason: err.Error()}
		}
		arr, dt := build(mem, kind, seq)
		arrs = append(arrs, arr)
		fields = append(fields, arrow.Field{Name: col.Name, Type: dt, Nullable: true})
	}
	if rows < 0 {
		rows = 0
	}

	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrs, int64(rows))
	defer rec.Release()

	return newTable(array.NewTableFromRecords(schema, []arrow.Record{rec})), nil
}

func kindOf(seq types.Sequence) (columnKind, error) {
	kind := kindNull
	for i, v := range seq {
		var k columnKind
		switch v.(type) {
		case nil:
			continue
		case float64:
			k = kindFloat
		case bool:
			k = kindBool
		case string:
			k = kindString
		default:
			return kindNull, fmt.Errorf("element %d is a nested list", i)
		}
		if kind != kindNull && kind != k {
			return kindNull, fmt.Errorf("element %d mixes value types", i)
		}
		kind = k
	}
	return kind, nil
}

func build(mem memory.Allocator, kind columnKind, seq types.Sequence) (arrow.Array, arrow.DataType) {
	switch kind {
	case kindBool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for _, v := range seq {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(v.(bool))
		}
		return b.NewArray(), arrow.FixedWidthTypes.Boolean

	case kindString:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, v := range seq {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(v.(string))
		}
		return b.NewArray(), arrow.BinaryTypes.String

	default:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for _, v := range seq {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(v.(float64))
		}
		return b.NewArray(), arrow.PrimitiveTypes.Float64
	}
}
