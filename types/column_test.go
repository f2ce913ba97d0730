// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"math"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-a2a/plotmcp/types"
)

func TestSequenceFloats(t *testing.T) {
	tests := []struct {
		name    string
		seq     types.Sequence
		want    []float64
		wantErr bool
	}{
		{
			name: "numbers",
			seq:  types.FloatSequence(1, 2.5, -3),
			want: []float64{1, 2.5, -3},
		},
		{
			name: "missing and booleans",
			seq:  types.Sequence{nil, true, false},
			want: []float64{math.NaN(), 1, 0},
		},
		{
			name: "numeric strings",
			seq:  types.StringSequence("1.5", "2e3"),
			want: []float64{1.5, 2000},
		},
		{
			name:    "text",
			seq:     types.StringSequence("a"),
			wantErr: true,
		},
		{
			name:    "nested",
			seq:     types.MatrixSequence([]float64{1}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.seq.Floats()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Floats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("Floats() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSequenceStrings(t *testing.T) {
	seq := types.Sequence{"a", 1.0, 2.5, true, nil}
	want := []string{"a", "1", "2.5", "true", ""}
	if diff := cmp.Diff(want, seq.Strings()); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceRows(t *testing.T) {
	seq := types.MatrixSequence([]float64{1, 2}, []float64{3, 4})
	if !seq.IsNested() {
		t.Fatal("IsNested() = false, want true")
	}
	got, err := seq.Rows()
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	want := [][]float64{{1, 2}, {3, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}

	if _, err := types.FloatSequence(1, 2).Rows(); err == nil {
		t.Error("Rows() on a flat sequence returned no error")
	}
}

func TestNewSequenceWidensIntegers(t *testing.T) {
	got, err := types.NewSequence([]any{1, int64(2), float32(0.5), []any{3}})
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}
	want := types.Sequence{1.0, 2.0, 0.5, types.Sequence{3.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewSequence() mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnRefUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind types.RefKind
		wantName string
		wantSeq  types.Sequence
		wantErr  bool
	}{
		{
			name:     "name",
			input:    `{"x": "time"}`,
			wantKind: types.RefName,
			wantName: "time",
		},
		{
			name:     "literal",
			input:    `{"x": [1, 2, 3]}`,
			wantKind: types.RefLiteral,
			wantSeq:  types.FloatSequence(1, 2, 3),
		},
		{
			name:     "matrix literal",
			input:    `{"x": [[1, 2], [3, 4]]}`,
			wantKind: types.RefLiteral,
			wantSeq:  types.MatrixSequence([]float64{1, 2}, []float64{3, 4}),
		},
		{
			name:     "absent",
			input:    `{}`,
			wantKind: types.RefUnset,
		},
		{
			name:    "object",
			input:   `{"x": {"a": 1}}`,
			wantErr: true,
		},
		{
			name:    "number",
			input:   `{"x": 3}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				X types.ColumnRef `json:"x"`
			}
			err := sonic.ConfigStd.UnmarshalFromString(tt.input, &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := req.X.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if name, ok := req.X.Name(); ok && name != tt.wantName {
				t.Errorf("Name() = %q, want %q", name, tt.wantName)
			}
			if seq, ok := req.X.Values(); ok {
				if diff := cmp.Diff(tt.wantSeq, seq); diff != "" {
					t.Errorf("Values() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestColumnRefsUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ColumnRefs
	}{
		{
			name:  "single name",
			input: `"a"`,
			want:  types.ColumnRefs{types.ColumnName("a")},
		},
		{
			name:  "names",
			input: `["a", "b"]`,
			want:  types.ColumnRefs{types.ColumnName("a"), types.ColumnName("b")},
		},
		{
			name:  "groups",
			input: `[[1, 2], [3]]`,
			want: types.ColumnRefs{
				types.Literal(types.FloatSequence(1, 2)),
				types.Literal(types.FloatSequence(3)),
			},
		},
		{
			name:  "flat literal",
			input: `[1, 2, 3]`,
			want:  types.ColumnRefs{types.Literal(types.FloatSequence(1, 2, 3))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got types.ColumnRefs
			if err := got.UnmarshalJSON([]byte(tt.input)); err != nil {
				t.Fatalf("UnmarshalJSON() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(types.ColumnRef{})); diff != "" {
				t.Errorf("UnmarshalJSON() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSizeRefUnmarshal(t *testing.T) {
	var scalar types.SizeRef
	if err := scalar.UnmarshalJSON([]byte(`40`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if scalar.Scalar == nil || *scalar.Scalar != 40 {
		t.Errorf("Scalar = %v, want 40", scalar.Scalar)
	}

	var ref types.SizeRef
	if err := ref.UnmarshalJSON([]byte(`"weight"`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if name, ok := ref.Ref.Name(); !ok || name != "weight" {
		t.Errorf("Ref.Name() = %q, %v, want %q, true", name, ok, "weight")
	}
}

func TestColumnDataKeepsOrder(t *testing.T) {
	var in types.DataInput
	if err := sonic.ConfigStd.UnmarshalFromString(`{"data": {"z": [1], "a": ["x"], "m": [true]}}`, &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []string{"z", "a", "m"}
	if diff := cmp.Diff(want, in.Data.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if in.FilePath != "" {
		t.Errorf("FilePath = %q, want empty", in.FilePath)
	}
}
