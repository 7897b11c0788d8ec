// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"errors"
	"fmt"
)

var (
	ErrMixedProjection = errors.New("cannot mix field inclusion and exclusion")
	ErrNotFilterable   = errors.New("field cannot be filtered")
	ErrNotSortable     = errors.New("field cannot be sorted")
	ErrUnknownField    = errors.New("unknown field")
	ErrExecutingQuery  = errors.New("error executing query")
	ErrScanningRow     = errors.New("error scanning row")
)

// FieldError reports a field name that is not usable for the requested
// stage. Err is one of ErrUnknownField, ErrNotFilterable or ErrNotSortable.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CastError reports a filter value that cannot be converted to the kind of
// its field, e.g. price[gte]=abc.
type CastError struct {
	Field string
	Value string
	Kind  Kind
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Invalid %s: %s.", e.Field, e.Value)
}
