package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrNoMatchingData = errors.New("no matching workouts")
	ErrSchemaMismatch = errors.New("missing required columns")
	ErrNotFinite      = errors.New("not a finite number")
)

// ReadError reports an export that exists but could not be read as a table.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// SchemaError lists the required headers an export is missing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSchemaMismatch, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}

// TimestampParseError identifies a row whose timestamp is not YYYY-MM-DD HH:MM.
type TimestampParseError struct {
	Row   int
	Value string
	Err   error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("row %d: invalid workout timestamp %q: %v", e.Row, e.Value, e.Err)
}

func (e *TimestampParseError) Unwrap() error {
	return e.Err
}

// ValueParseError identifies a non-numeric metric cell.
type ValueParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ValueParseError) Error() string {
	return fmt.Sprintf("row %d: invalid %s value %q", e.Row, e.Column, e.Value)
}

func (e *ValueParseError) Unwrap() error {
	return e.Err
}
