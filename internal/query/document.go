// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Document is one projected row keyed by public field name. Values are
// string, int64, float64, bool, time.Time, []string, []int64, []time.Time,
// json.RawMessage or nil for NULL.
type Document map[string]any

// ID returns the "id" value of the document, or 0 when it is absent.
func (d Document) ID() int64 {
	id, _ := d["id"].(int64)
	return id
}

// typeMaps pools pgtype maps for array decoding; a Map is not safe for
// concurrent use.
var typeMaps = sync.Pool{
	New: func() any { return pgtype.NewMap() },
}

// scanTarget allocates a destination for a field and returns a function
// reading the scanned value back.
func scanTarget(typeMap *pgtype.Map, f Field) (any, func() any) {
	switch f.Kind {
	case KindInt:
		var v sql.NullInt64
		return &v, func() any { return nullable(v.Valid, v.Int64) }
	case KindFloat:
		var v sql.NullFloat64
		return &v, func() any { return nullable(v.Valid, v.Float64) }
	case KindBool:
		var v sql.NullBool
		return &v, func() any { return nullable(v.Valid, v.Bool) }
	case KindTime:
		var v sql.NullTime
		return &v, func() any { return nullable(v.Valid, v.Time) }
	case KindTextArray:
		var v []string
		return typeMap.SQLScanner(&v), func() any { return nonNil(v, []string{}) }
	case KindIntArray:
		var v []int64
		return typeMap.SQLScanner(&v), func() any { return nonNil(v, []int64{}) }
	case KindTimeArray:
		var v []time.Time
		return typeMap.SQLScanner(&v), func() any { return nonNil(v, []time.Time{}) }
	case KindJSON:
		var v []byte
		return &v, func() any {
			if v == nil {
				return nil
			}
			return json.RawMessage(v)
		}
	default:
		var v sql.NullString
		return &v, func() any { return nullable(v.Valid, v.String) }
	}
}

func nullable[T any](valid bool, v T) any {
	if !valid {
		return nil
	}
	return v
}

func nonNil[T any](v []T, empty []T) []T {
	if v == nil {
		return empty
	}
	return v
}

func scanDocuments(rows *sql.Rows, fields []Field) ([]Document, error) {
	typeMap := typeMaps.Get().(*pgtype.Map)
	defer typeMaps.Put(typeMap)

	docs := make([]Document, 0)
	for rows.Next() {
		targets := make([]any, len(fields))
		readers := make([]func() any, len(fields))
		for i, f := range fields {
			targets[i], readers[i] = scanTarget(typeMap, f)
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		doc := make(Document, len(fields))
		for i, f := range fields {
			doc[f.Name] = readers[i]()
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return docs, nil
}
