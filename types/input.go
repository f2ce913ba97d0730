// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/go-a2a/plotmcp/internal/xjson"
)

// DataInput selects where a plotting tool reads its table from.
//
// Exactly one of FilePath and Data must be set.
type DataInput struct {
	// FilePath is the path of a .csv or .json file.
	FilePath string `json:"file_path,omitempty"`

	// Data maps column names to lists of values.
	Data ColumnData `json:"data,omitempty"`
}

// Column is one named entry of a [ColumnData].
//
// Values is a decoded JSON value; it is validated when the table is built.
type Column struct {
	Name   string
	Values any
}

// ColumnData is a literal column mapping which keeps the order of its keys.
type ColumnData []Column

// Names returns the column names in order.
func (cd ColumnData) Names() []string {
	names := make([]string, len(cd))
	for i, c := range cd {
		names[i] = c.Name
	}
	return names
}

// UnmarshalJSON implements [json.Unmarshaler].
func (cd *ColumnData) UnmarshalJSON(data []byte) error {
	v, err := xjson.DecodeBytes(data)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*cd = nil
		return nil
	case *xjson.Object:
		out := make(ColumnData, 0, v.Len())
		for _, key := range v.Keys {
			out = append(out, Column{Name: key, Values: v.Values[key]})
		}
		*cd = out
		return nil
	default:
		return fmt.Errorf("data must be an object mapping column names to lists, got %s", describe(v))
	}
}
