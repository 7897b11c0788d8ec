// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	sq "github.com/Masterminds/squirrel"
)

// Kind is the value type of a field. It drives value coercion in filters
// and the Go type of the field in a Document.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
	KindTextArray
	KindIntArray
	KindTimeArray
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindTextArray:
		return "text[]"
	case KindIntArray:
		return "int[]"
	case KindTimeArray:
		return "time[]"
	case KindJSON:
		return "json"
	}
	return "unknown"
}

// scalar reports whether values of the kind can be compared and ordered.
func (k Kind) scalar() bool {
	return k <= KindTime
}

// Field maps a public field name to the SQL expression that produces it.
type Field struct {
	// Name is the name clients use in filters, sort and fields.
	Name string

	// Column is a trusted SQL expression, usually a column name. Virtual
	// fields use any scalar expression, e.g. "duration / 7.0".
	Column string

	Kind Kind
}

// Collection describes a queryable set of documents.
type Collection struct {
	// Table is the FROM clause of the base query.
	Table string

	// Fields is the allow-list of public fields in output order.
	Fields []Field

	// DefaultSort is the field used when the request has no sort.
	DefaultSort string

	// Hidden lists system fields left out unless explicitly requested.
	Hidden []string

	// IDField is always part of an inclusion projection. Defaults to "id".
	IDField string
}

// Select returns a base query over the collection table using $n
// placeholders.
func (c Collection) Select() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select().From(c.Table)
}

// Field looks up a field by its public name.
func (c Collection) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Column returns the SQL expression of a field, or the empty string when
// the field is not part of the collection.
func (c Collection) Column(name string) string {
	f, _ := c.Field(name)
	return f.Column
}

func (c Collection) idField() string {
	if c.IDField == "" {
		return "id"
	}
	return c.IDField
}

func (c Collection) hidden(name string) bool {
	for _, h := range c.Hidden {
		if h == name {
			return true
		}
	}
	return false
}
