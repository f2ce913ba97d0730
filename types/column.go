// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-a2a/plotmcp/internal/xjson"
)

// Sequence is a literal sequence of values.
//
// Elements are float64, string, bool, nil for a missing value, or a nested
// [Sequence] for the rows of a matrix or the groups of a distribution plot.
type Sequence []any

// FloatSequence returns the [Sequence] of vs.
func FloatSequence(vs ...float64) Sequence {
	s := make(Sequence, len(vs))
	for i, v := range vs {
		s[i] = v
	}
	return s
}

// StringSequence returns the [Sequence] of vs.
func StringSequence(vs ...string) Sequence {
	s := make(Sequence, len(vs))
	for i, v := range vs {
		s[i] = v
	}
	return s
}

// MatrixSequence returns a nested [Sequence] with one element per row.
func MatrixSequence(rows ...[]float64) Sequence {
	s := make(Sequence, len(rows))
	for i, row := range rows {
		s[i] = FloatSequence(row...)
	}
	return s
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Sequence) UnmarshalJSON(data []byte) error {
	v, err := xjson.DecodeBytes(data)
	if err != nil {
		return err
	}
	seq, err := NewSequence(v)
	if err != nil {
		return err
	}
	*s = seq
	return nil
}

// NewSequence converts a decoded JSON array into a [Sequence].
//
// Integers of any Go type are widened to float64 so that literal data built in
// Go code behaves like decoded JSON.
func NewSequence(v any) (Sequence, error) {
	var items []any
	switch v := v.(type) {
	case Sequence:
		items = v
	case []any:
		items = v
	case []float64:
		return FloatSequence(v...), nil
	case []string:
		return StringSequence(v...), nil
	default:
		return nil, fmt.Errorf("expected a list of values, got %s", describe(v))
	}

	seq := make(Sequence, len(items))
	for i, item := range items {
		switch item := item.(type) {
		case nil, bool, float64, string:
			seq[i] = item
		case int:
			seq[i] = float64(item)
		case int64:
			seq[i] = float64(item)
		case float32:
			seq[i] = float64(item)
		case Sequence, []any, []float64, []string:
			nested, err := NewSequence(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			seq[i] = nested
		default:
			return nil, fmt.Errorf("element %d: unsupported value %s", i, describe(item))
		}
	}
	return seq, nil
}

// Len returns the number of top-level elements of s.
func (s Sequence) Len() int { return len(s) }

// IsNested reports whether s holds rows (nested sequences) rather than scalars.
func (s Sequence) IsNested() bool {
	for _, v := range s {
		if _, ok := v.(Sequence); ok {
			return true
		}
	}
	return false
}

// Floats converts s into numbers.
//
// Missing values become NaN, booleans become 0 or 1 and numeric strings are parsed.
func (s Sequence) Floats() ([]float64, error) {
	out := make([]float64, len(s))
	for i, v := range s {
		switch v := v.(type) {
		case nil:
			out[i] = math.NaN()
		case float64:
			out[i] = v
		case bool:
			if v {
				out[i] = 1
			}
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("element %d: value %q is not numeric", i, v)
			}
			out[i] = f
		case Sequence:
			return nil, fmt.Errorf("element %d: expected a number, got a nested list", i)
		default:
			return nil, fmt.Errorf("element %d: unsupported value %s", i, describe(v))
		}
	}
	return out, nil
}

// Strings formats every element of s as text.
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		switch v := v.(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = v
		case float64:
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(v)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

// Rows converts a nested s into rows of numbers.
func (s Sequence) Rows() ([][]float64, error) {
	rows := make([][]float64, len(s))
	for i, v := range s {
		row, ok := v.(Sequence)
		if !ok {
			return nil, fmt.Errorf("row %d: expected a list, got %s", i, describe(v))
		}
		fs, err := row.Floats()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = fs
	}
	return rows, nil
}

// RefKind tells which case a [ColumnRef] holds.
type RefKind uint8

const (
	// RefUnset is the zero [ColumnRef], an omitted argument.
	RefUnset RefKind = iota
	// RefName refers to a column of a table by name.
	RefName
	// RefLiteral carries its values directly.
	RefLiteral
)

// ColumnRef is either the name of a table column or a literal [Sequence].
type ColumnRef struct {
	kind    RefKind
	name    string
	literal Sequence
}

// ColumnName returns a [ColumnRef] naming a table column.
func ColumnName(name string) ColumnRef {
	return ColumnRef{kind: RefName, name: name}
}

// Literal returns a [ColumnRef] carrying values.
func Literal(values Sequence) ColumnRef {
	if values == nil {
		values = Sequence{}
	}
	return ColumnRef{kind: RefLiteral, literal: values}
}

// Kind returns which case c holds.
func (c ColumnRef) Kind() RefKind { return c.kind }

// IsZero reports whether c was not set.
func (c ColumnRef) IsZero() bool { return c.kind == RefUnset }

// Name returns the column name and true if c is a name.
func (c ColumnRef) Name() (string, bool) {
	return c.name, c.kind == RefName
}

// Values returns the literal values and true if c is a literal.
func (c ColumnRef) Values() (Sequence, bool) {
	return c.literal, c.kind == RefLiteral
}

// String implements [fmt.Stringer].
func (c ColumnRef) String() string {
	switch c.kind {
	case RefName:
		return strconv.Quote(c.name)
	case RefLiteral:
		return fmt.Sprintf("literal[%d]", len(c.literal))
	default:
		return "<unset>"
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. A JSON string is a column name,
// a JSON array is a literal and null leaves c unset.
func (c *ColumnRef) UnmarshalJSON(data []byte) error {
	v, err := xjson.DecodeBytes(data)
	if err != nil {
		return err
	}
	ref, err := columnRefFrom(v)
	if err != nil {
		return err
	}
	*c = ref
	return nil
}

func columnRefFrom(v any) (ColumnRef, error) {
	switch v := v.(type) {
	case nil:
		return ColumnRef{}, nil
	case string:
		return ColumnName(v), nil
	case []any:
		seq, err := NewSequence(v)
		if err != nil {
			return ColumnRef{}, err
		}
		return Literal(seq), nil
	default:
		return ColumnRef{}, fmt.Errorf("expected a column name or a list of values, got %s", describe(v))
	}
}

// ColumnRefs is an ordered list of column references used by distribution plots.
//
// It decodes from a single column name, a list of column names, a list of lists
// (one literal per group) or a flat list (a single literal group).
type ColumnRefs []ColumnRef

// UnmarshalJSON implements [json.Unmarshaler].
func (cs *ColumnRefs) UnmarshalJSON(data []byte) error {
	v, err := xjson.DecodeBytes(data)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*cs = nil
		return nil
	case string:
		*cs = ColumnRefs{ColumnName(v)}
		return nil
	case []any:
		if len(v) == 0 {
			*cs = ColumnRefs{}
			return nil
		}
		if allStrings(v) {
			refs := make(ColumnRefs, len(v))
			for i, name := range v {
				refs[i] = ColumnName(name.(string))
			}
			*cs = refs
			return nil
		}
		if _, nested := v[0].([]any); nested {
			refs := make(ColumnRefs, len(v))
			for i, item := range v {
				seq, err := NewSequence(item)
				if err != nil {
					return fmt.Errorf("group %d: %w", i, err)
				}
				refs[i] = Literal(seq)
			}
			*cs = refs
			return nil
		}
		seq, err := NewSequence(v)
		if err != nil {
			return err
		}
		*cs = ColumnRefs{Literal(seq)}
		return nil
	default:
		return fmt.Errorf("expected column names or lists of values, got %s", describe(v))
	}
}

// SizeRef sizes scatter markers, either with one number for every point or
// per point through a [ColumnRef].
type SizeRef struct {
	Scalar *float64
	Ref    ColumnRef
}

// ScalarSize returns a [SizeRef] applying v to every marker.
func ScalarSize(v float64) *SizeRef {
	return &SizeRef{Scalar: &v}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *SizeRef) UnmarshalJSON(data []byte) error {
	v, err := xjson.DecodeBytes(data)
	if err != nil {
		return err
	}
	if f, ok := v.(float64); ok {
		*s = SizeRef{Scalar: &f}
		return nil
	}
	ref, err := columnRefFrom(v)
	if err != nil {
		return err
	}
	*s = SizeRef{Ref: ref}
	return nil
}

func allStrings(vs []any) bool {
	for _, v := range vs {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case *xjson.Object:
		return "an object"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%T", v)
	}
}
