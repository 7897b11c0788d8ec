// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Reserved parameters control the query shape and never become predicates.
const (
	ParamPage   = "page"
	ParamSort   = "sort"
	ParamLimit  = "limit"
	ParamFields = "fields"
)

var reservedParams = []string{ParamPage, ParamSort, ParamLimit, ParamFields}

// Op is a comparison kind of a filter predicate.
type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
)

// comparisonOps is the closed set of operators accepted in brackets.
var comparisonOps = []Op{OpGt, OpGte, OpLt, OpLte}

// Predicate is one parsed filter condition. Several values of an equality
// predicate mean "any of"; several values of a comparison must all hold.
type Predicate struct {
	Field  string
	Op     Op
	Values []string
}

// ParsePredicates extracts the filter predicates of a request, sorted by
// field and operator. A key of the form field[op] with op in gt, gte, lt or
// lte becomes a comparison; every other non-reserved key is an equality on
// the key as written.
func ParsePredicates(params url.Values) []Predicate {
	predicates := make([]Predicate, 0, len(params))
	for key, values := range params {
		if slices.Contains(reservedParams, key) || len(values) == 0 {
			continue
		}

		field, op := parseKey(key)
		predicates = append(predicates, Predicate{Field: field, Op: op, Values: values})
	}

	slices.SortFunc(predicates, func(a, b Predicate) int {
		if c := strings.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		return strings.Compare(string(a.Op), string(b.Op))
	})

	return predicates
}

func parseKey(key string) (string, Op) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, OpEq
	}

	op := Op(key[open+1 : len(key)-1])
	if !slices.Contains(comparisonOps, op) {
		return key, OpEq
	}

	return key[:open], op
}

// sqlizer converts a predicate on f into a squirrel condition.
func (p Predicate) sqlizer(f Field) (sq.Sqlizer, error) {
	args := make([]any, 0, len(p.Values))
	for _, raw := range p.Values {
		v, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if p.Op == OpEq {
		if len(args) == 1 {
			return sq.Eq{f.Column: args[0]}, nil
		}
		return sq.Eq{f.Column: args}, nil
	}

	conds := make(sq.And, 0, len(args))
	for _, arg := range args {
		switch p.Op {
		case OpGt:
			conds = append(conds, sq.Gt{f.Column: arg})
		case OpGte:
			conds = append(conds, sq.GtOrEq{f.Column: arg})
		case OpLt:
			conds = append(conds, sq.Lt{f.Column: arg})
		case OpLte:
			conds = append(conds, sq.LtOrEq{f.Column: arg})
		}
	}
	if len(conds) == 1 {
		return conds[0], nil
	}
	return conds, nil
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// coerce converts a raw query value to the Go type of the field.
func coerce(f Field, raw string) (any, error) {
	castErr := &CastError{Field: f.Name, Value: raw, Kind: f.Kind}

	switch f.Kind {
	case KindText:
		return raw, nil
	case KindInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, castErr
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, castErr
		}
		return v, nil
	case KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, castErr
		}
		return v, nil
	case KindTime:
		for _, layout := range timeLayouts {
			if v, err := time.Parse(layout, raw); err == nil {
				return v, nil
			}
		}
		return nil, castErr
	}

	return nil, castErr
}
