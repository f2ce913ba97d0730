// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories reported by the loader, extractor, serializer and tools.
//
// Every error returned by this module matches exactly one of them with [errors.Is].
var (
	// ErrInputConflict is returned when both a file path and literal data are given.
	ErrInputConflict = errors.New("input conflict")

	// ErrInputMissing is returned when neither a file path nor literal data is given.
	ErrInputMissing = errors.New("input missing")

	// ErrNotFound is returned when a data file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat is returned for unknown file extensions and output encodings.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrParse is returned when a data file cannot be decoded.
	ErrParse = errors.New("parse error")

	// ErrConstruction is returned when literal data cannot form a table.
	ErrConstruction = errors.New("construction error")

	// ErrColumnNotFound is returned when a column name is not in the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidArgument is returned when a tool argument has the wrong shape or value.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FileNotFoundError is returned when the data file path does not resolve.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s. check the file path or pass the data directly with the 'data' field", e.Path)
}

// Is reports whether target is [ErrNotFound].
func (e *FileNotFoundError) Is(target error) bool { return target == ErrNotFound }

// UnsupportedFormatError is returned for a file extension or output encoding
// outside of the supported set.
type UnsupportedFormatError struct {
	Format    string
	Supported []string
	Path      string
}

func (e *UnsupportedFormatError) Error() string {
	msg := fmt.Sprintf("unsupported format: %s. supported formats are: %s", e.Format, strings.Join(e.Supported, ", "))
	if e.Path != "" {
		msg += ". file: " + e.Path
	}
	return msg
}

// Is reports whether target is [ErrUnsupportedFormat].
func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// ParseError is returned when the bytes of a data file cannot be decoded as
// the format declared by its extension.
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to read %s file '%s': %v. ensure the file is valid %s", strings.ToUpper(e.Format), e.Path, e.Err, strings.ToUpper(e.Format))
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConstructionError is returned when a literal column mapping cannot be turned
// into a table.
type ConstructionError struct {
	Column string
	Reason string
}

func (e *ConstructionError) Error() string {
	msg := "failed to build table from provided data: "
	if e.Column != "" {
		msg += fmt.Sprintf("column '%s': ", e.Column)
	}
	return msg + e.Reason + ". data must map column names to lists of equal length"
}

// Is reports whether target is [ErrConstruction].
func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// ColumnNotFoundError is returned when a column name is absent from a table.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found in data. available columns: %s", e.Column, strings.Join(e.Available, ", "))
}

// Is reports whether target is [ErrColumnNotFound].
func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// InvalidArgumentError is returned when a tool argument is malformed.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	if e.Argument == "" {
		return "invalid argument: " + e.Message
	}
	return fmt.Sprintf("invalid argument '%s': %s", e.Argument, e.Message)
}

// Is reports whether target is [ErrInvalidArgument].
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidArgument returns an [*InvalidArgumentError] for argument with a formatted message.
func InvalidArgument(argument, format string, args ...any) error {
	return &InvalidArgumentError{
		Argument: argument,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NotImplementedError is the error type for unimplemented behaviour.
type NotImplementedError string

// Error returns a string representation of the [NotImplementedError].
func (e NotImplementedError) Error() string {
	return string(e)
}
