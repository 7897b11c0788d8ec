// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Pagination defaults applied when page or limit are missing or invalid.
const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// MaxLimit caps the page size a client may request.
const MaxLimit = 1000

// Queryer is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Builder accumulates the stages of a list query. Stages may be invoked in
// any order and each takes effect once; pagination is always applied last.
// Problems found while recording a stage are kept and reported by ToSQL
// and Execute.
type Builder struct {
	collection Collection
	base       sq.SelectBuilder
	params     url.Values

	where   []sq.Sqlizer
	orderBy []string
	fields  []Field

	filtered, sorted, projected, paginated bool

	page, limit uint64

	errs []error
}

// New creates a Builder over base for the given request parameters. base is
// usually collection.Select(), optionally narrowed by visibility conditions.
func New(collection Collection, base sq.SelectBuilder, params url.Values) *Builder {
	if params == nil {
		params = url.Values{}
	}
	return &Builder{
		collection: collection,
		base:       base,
		params:     params,
	}
}

// Filter adds one condition per non-reserved request parameter.
func (b *Builder) Filter() *Builder {
	if b.filtered {
		return b
	}
	b.filtered = true

	for _, p := range ParsePredicates(b.params) {
		f, ok := b.collection.Field(p.Field)
		if !ok {
			b.fail(&FieldError{Field: p.Field, Err: ErrUnknownField})
			continue
		}
		if !f.Kind.scalar() {
			b.fail(&FieldError{Field: p.Field, Err: ErrNotFilterable})
			continue
		}

		cond, err := p.sqlizer(f)
		if err != nil {
			b.fail(err)
			continue
		}
		b.where = append(b.where, cond)
	}

	return b
}

// Sort orders by the comma-separated fields of the sort parameter, a
// leading "-" meaning descending. Without a sort parameter the collection
// default is used, ascending. The id breaks ties so pages are stable.
func (b *Builder) Sort() *Builder {
	if b.sorted {
		return b
	}
	b.sorted = true

	names := splitList(b.params.Get(ParamSort))
	if len(names) == 0 && b.collection.DefaultSort != "" {
		names = []string{b.collection.DefaultSort}
	}

	idColumn := b.collection.Column(b.collection.idField())
	sortedByID := false
	for _, name := range names {
		direction := "ASC"
		if strings.HasPrefix(name, "-") {
			direction = "DESC"
			name = name[1:]
		}

		f, ok := b.collection.Field(name)
		if !ok {
			b.fail(&FieldError{Field: name, Err: ErrUnknownField})
			continue
		}
		if !f.Kind.scalar() {
			b.fail(&FieldError{Field: name, Err: ErrNotSortable})
			continue
		}

		sortedByID = sortedByID || f.Column == idColumn
		b.orderBy = append(b.orderBy, f.Column+" "+direction)
	}

	if !sortedByID && idColumn != "" {
		b.orderBy = append(b.orderBy, idColumn+" ASC")
	}

	return b
}

// LimitFields projects the fields named by the fields parameter. A list of
// names selects exactly those fields plus the id; a list of "-name" entries
// selects every field except those. Without the parameter every field
// except the hidden system fields is selected.
func (b *Builder) LimitFields() *Builder {
	if b.projected {
		return b
	}
	b.projected = true

	names := splitList(b.params.Get(ParamFields))
	if len(names) == 0 {
		for _, f := range b.collection.Fields {
			if !b.collection.hidden(f.Name) {
				b.fields = append(b.fields, f)
			}
		}
		return b
	}

	include, exclude := map[string]bool{}, map[string]bool{}
	for _, name := range names {
		target := include
		if strings.HasPrefix(name, "-") {
			target, name = exclude, name[1:]
		}
		if _, ok := b.collection.Field(name); !ok {
			b.fail(&FieldError{Field: name, Err: ErrUnknownField})
			continue
		}
		target[name] = true
	}

	if len(include) > 0 && len(exclude) > 0 {
		b.fail(ErrMixedProjection)
		return b
	}

	if len(include) > 0 {
		include[b.collection.idField()] = true
	}

	for _, f := range b.collection.Fields {
		if (len(include) > 0 && include[f.Name]) || (len(include) == 0 && !exclude[f.Name]) {
			b.fields = append(b.fields, f)
		}
	}

	return b
}

// Paginate reads page and limit as positive integers. Missing, non-numeric
// or non-positive values fall back to DefaultPage and DefaultLimit. A limit
// above MaxLimit is lowered to MaxLimit.
func (b *Builder) Paginate() *Builder {
	if b.paginated {
		return b
	}
	b.paginated = true

	b.page = positiveOr(b.params.Get(ParamPage), DefaultPage)
	b.limit = min(positiveOr(b.params.Get(ParamLimit), DefaultLimit), MaxLimit)

	return b
}

// offset is the number of rows skipped before the current page. It
// saturates at math.MaxInt64 so an out of range page reads past the end
// instead of wrapping around to the start.
func (b *Builder) offset() uint64 {
	skipped := b.page - 1
	if skipped > math.MaxInt64/b.limit {
		return math.MaxInt64
	}
	return skipped * b.limit
}

// Page returns the page and limit recorded by Paginate.
func (b *Builder) Page() (page, limit uint64) {
	return b.page, b.limit
}

// Fields returns the fields in the order they are selected.
func (b *Builder) Fields() []Field {
	if len(b.fields) > 0 {
		return b.fields
	}
	if b.projected {
		if f, ok := b.collection.Field(b.collection.idField()); ok {
			return []Field{f}
		}
	}
	return b.collection.Fields
}

// Err returns the first problem recorded by any stage.
func (b *Builder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	return b.errs[0]
}

// ToSQL assembles the statement. Stages that were never invoked add
// nothing, except that all fields are selected without LimitFields.
func (b *Builder) ToSQL() (string, []any, error) {
	if err := b.Err(); err != nil {
		return "", nil, err
	}

	fields := b.Fields()
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.Column)
	}

	q := b.base.Columns(columns...)
	for _, cond := range b.where {
		q = q.Where(cond)
	}
	if len(b.orderBy) > 0 {
		q = q.OrderBy(b.orderBy...)
	}
	if b.paginated {
		q = q.Limit(b.limit).Offset(b.offset())
	}

	return q.ToSql()
}

// Execute runs the query and returns the projected documents. An offset
// past the last match yields an empty, non-nil slice.
func (b *Builder) Execute(ctx context.Context, db Queryer) ([]Document, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanDocuments(rows, b.Fields())
}

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" && part != "-" {
			out = append(out, part)
		}
	}
	return out
}

func positiveOr(raw string, fallback uint64) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
