// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package data

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/go-a2a/plotmcp/internal/xjson"
	"github.com/go-a2a/plotmcp/pkg/logging"
	"github.com/go-a2a/plotmcp/types"
)

// Supported data file extensions.
const (
	ExtCSV  = ".csv"
	ExtJSON = ".json"
)

var supportedExtensions = []string{ExtCSV, ExtJSON}

// Load builds a [Table] from in, which must carry either a file path or a
// literal column mapping but not both.
//
// The caller owns the returned table and must release it.
func Load(ctx context.Context, in *types.DataInput) (*Table, error) {
	hasFile := in != nil && in.FilePath != ""
	hasData := in != nil && len(in.Data) > 0

	switch {
	case hasFile && hasData:
		return nil, fmt.Errorf("provide either file_path or data, not both: %w", types.ErrInputConflict)
	case !hasFile && !hasData:
		return nil, fmt.Errorf("provide either file_path or data: %w", types.ErrInputMissing)
	}

	var (
		t   *Table
		err error
	)
	if hasFile {
		t, err = loadFile(in.FilePath)
	} else {
		t, err = FromColumns(in.Data)
	}
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).DebugContext(ctx, "loaded table",
		slog.String("source", sourceOf(in)),
		slog.Int("rows", t.NumRows()),
		slog.Any("columns", t.Columns()),
	)
	return t, nil
}

func sourceOf(in *types.DataInput) string {
	if in.FilePath != "" {
		return in.FilePath
	}
	return "data"
}

func loadFile(path string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &types.FileNotFoundError{Path: path}
		}
		return nil, &types.ParseError{Path: path, Format: formatName(abs), Err: err}
	}

	ext := strings.ToLower(filepath.Ext(abs))
	switch ext {
	case ExtCSV, ExtJSON:
	default:
		if ext == "" {
			ext = "(none)"
		}
		return nil, &types.UnsupportedFormatError{Format: ext, Supported: supportedExtensions, Path: path}
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, &types.ParseError{Path: path, Format: formatName(abs), Err: err}
	}
	defer f.Close()

	var t *Table
	switch ext {
	case ExtCSV:
		t, err = readCSV(f)
	case ExtJSON:
		t, err = readJSON(f)
	}
	if err != nil {
		return nil, &types.ParseError{Path: path, Format: formatName(abs), Err: err}
	}
	return t, nil
}

func formatName(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// csvNulls are the cells read as missing values.
var csvNulls = []string{"", "NA", "N/A", "null", "NULL"}

// readCSV reads a CSV stream with a header row. Column types are inferred
// from every row first, so that a column holding 1 and 2.5 becomes float64
// and a column holding true and x becomes a string.
func readCSV(r io.Reader) (*Table, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	schema, rows, err := scanCSV(body)
	if err != nil {
		return nil, err
	}

	mem := memory.NewGoAllocator()
	if rows == 0 {
		b := array.NewRecordBuilder(mem, schema)
		defer b.Release()
		rec := b.NewRecord()
		defer rec.Release()
		return newTable(array.NewTableFromRecords(schema, []arrow.Record{rec})), nil
	}

	rdr := csv.NewReader(bytes.NewReader(body), schema,
		csv.WithAllocator(mem),
		csv.WithHeader(true),
		csv.WithChunk(-1),
		csv.WithNullReader(true, csvNulls...),
	)
	defer rdr.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := rdr.Err(); err != nil {
		return nil, err
	}

	return newTable(array.NewTableFromRecords(schema, recs)), nil
}

// scanCSV reads the header and every record of body and returns the schema
// they fit together with the number of data rows.
func scanCSV(body []byte) (*arrow.Schema, int, error) {
	cr := stdcsv.NewReader(bytes.NewReader(body))
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, errors.New("no header row")
	}
	if err != nil {
		return nil, 0, err
	}

	kinds := make([]cellKind, len(header))
	var rows int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		rows++
		for i, cell := range rec {
			kinds[i] = kinds[i].widen(cell)
		}
	}

	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{Name: name, Type: kinds[i].dataType(), Nullable: true}
	}
	return arrow.NewSchema(fields, nil), rows, nil
}

// cellKind is the narrowest type every non-null cell of a column parses as.
type cellKind int

const (
	cellNull cellKind = iota
	cellInt
	cellFloat
	cellBool
	cellString
)

// widen returns the narrowest kind holding both k and cell.
func (k cellKind) widen(cell string) cellKind {
	if slices.Contains(csvNulls, cell) {
		return k
	}
	switch k {
	case cellNull:
		switch {
		case isInt(cell):
			return cellInt
		case isFloat(cell):
			return cellFloat
		case isBool(cell):
			return cellBool
		}
	case cellInt:
		switch {
		case isInt(cell):
			return cellInt
		case isFloat(cell):
			return cellFloat
		}
	case cellFloat:
		if isFloat(cell) {
			return cellFloat
		}
	case cellBool:
		if isBool(cell) {
			return cellBool
		}
	}
	return cellString
}

func (k cellKind) dataType() arrow.DataType {
	switch k {
	case cellInt:
		return arrow.PrimitiveTypes.Int64
	case cellFloat:
		return arrow.PrimitiveTypes.Float64
	case cellBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// isBool accepts common boolean spellings, all of which strconv.ParseBool, and so the arrow CSV reader, accepts.
func isBool(s string) bool {
	switch s {
	case "true", "True", "TRUE", "false", "False", "FALSE", "1", "0":
		return true
	}
	return false
}

// readJSON reads either an array of records or an object of columns.
func readJSON(r io.Reader) (*Table, error) {
	v, err := xjson.Decode(r)
	if err != nil {
		return nil, err
	}

	var cols types.ColumnData
	switch v := v.(type) {
	case []any:
		cols, err = recordsToColumns(v)
		if err != nil {
			return nil, err
		}
	case *xjson.Object:
		for _, key := range v.Keys {
			cols = append(cols, types.Column{Name: key, Values: v.Values[key]})
		}
	default:
		return nil, errors.New("expected an array of records or an object of columns")
	}

	t, err := FromColumns(cols)
	if err != nil {
		// Not wrapped: a malformed file is a parse error only.
		return nil, fmt.Errorf("columns do not form a table: %v", err)
	}
	return t, nil
}

// recordsToColumns pivots records into columns ordered by first appearance.
// Keys missing from a record become nulls.
func recordsToColumns(records []any) (types.ColumnData, error) {
	var names []string
	index := make(map[string]int)
	for i, rec := range records {
		obj, ok := rec.(*xjson.Object)
		if !ok {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		for _, key := range obj.Keys {
			if _, seen := index[key]; !seen {
				index[key] = len(names)
				names = append(names, key)
			}
		}
	}

	values := make([][]any, len(names))
	for i := range values {
		values[i] = make([]any, len(records))
	}
	for row, rec := range records {
		obj := rec.(*xjson.Object)
		for _, key := range obj.Keys {
			values[index[key]][row] = obj.Values[key]
		}
	}

	cols := make(types.ColumnData, len(names))
	for i, name := range names {
		cols[i] = types.Column{Name: name, Values: values[i]}
	}
	return cols, nil
}
