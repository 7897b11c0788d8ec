// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredicates_ReservedKeysNeverBecomePredicates(t *testing.T) {
	params := url.Values{
		"page":       {"2"},
		"sort":       {"-price"},
		"limit":      {"5"},
		"fields":     {"name"},
		"price[gte]": {"200"},
	}

	got := ParsePredicates(params)

	require.Len(t, got, 1)
	assert.Equal(t, Predicate{Field: "price", Op: OpGte, Values: []string{"200"}}, got[0])
}

func TestParsePredicates_SortedByFieldAndOp(t *testing.T) {
	params := url.Values{
		"price[lt]":  {"900"},
		"duration":   {"5"},
		"price[gte]": {"100"},
	}

	got := ParsePredicates(params)

	require.Len(t, got, 3)
	assert.Equal(t, "duration", got[0].Field)
	assert.Equal(t, OpGte, got[1].Op)
	assert.Equal(t, OpLt, got[2].Op)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key       string
		wantField string
		wantOp    Op
	}{
		{key: "price", wantField: "price", wantOp: OpEq},
		{key: "price[gt]", wantField: "price", wantOp: OpGt},
		{key: "price[gte]", wantField: "price", wantOp: OpGte},
		{key: "price[lt]", wantField: "price", wantOp: OpLt},
		{key: "price[lte]", wantField: "price", wantOp: OpLte},
		{key: "price[ne]", wantField: "price[ne]", wantOp: OpEq},
		{key: "price[$where]", wantField: "price[$where]", wantOp: OpEq},
		{key: "price[gtegte]", wantField: "price[gtegte]", wantOp: OpEq},
		{key: "price[gte", wantField: "price[gte", wantOp: OpEq},
		{key: "[gte]", wantField: "[gte]", wantOp: OpEq},
		{key: "gte", wantField: "gte", wantOp: OpEq},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			field, op := parseKey(tt.key)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOp, op)
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		want    any
		wantErr bool
	}{
		{name: "text kept verbatim", kind: KindText, raw: "easy", want: "easy"},
		{name: "int", kind: KindInt, raw: "42", want: int64(42)},
		{name: "int rejects float", kind: KindInt, raw: "4.2", wantErr: true},
		{name: "float", kind: KindFloat, raw: "4.5", want: 4.5},
		{name: "float rejects text", kind: KindFloat, raw: "abc", wantErr: true},
		{name: "bool", kind: KindBool, raw: "true", want: true},
		{name: "bool rejects yes", kind: KindBool, raw: "yes", wantErr: true},
		{name: "date only", kind: KindTime, raw: "2026-06-01", want: mustTime(t, "2026-06-01T00:00:00Z")},
		{name: "rfc3339", kind: KindTime, raw: "2026-06-01T10:00:00Z", want: mustTime(t, "2026-06-01T10:00:00Z")},
		{name: "time rejects garbage", kind: KindTime, raw: "june", wantErr: true},
		{name: "arrays are not coercible", kind: KindTextArray, raw: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerce(Field{Name: "f", Column: "f", Kind: tt.kind}, tt.raw)
			if tt.wantErr {
				var castErr *CastError
				require.ErrorAs(t, err, &castErr)
				assert.Equal(t, "f", castErr.Field)
				assert.Equal(t, tt.raw, castErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
