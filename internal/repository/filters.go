package repository

import (
	"fmt"
	"strings"
)

// filterBuilder composes a conjunctive WHERE clause from optional
// conditions. Absent parameters add no condition, so an empty builder
// yields an open filter.
type filterBuilder struct {
	clauses []string
	args    []any
}

// arg registers a positional argument and returns its placeholder.
func (f *filterBuilder) arg(v any) string {
	f.args = append(f.args, v)
	return fmt.Sprintf("$%d", len(f.args))
}

// Equal adds an exact-match condition when value is non-empty.
func (f *filterBuilder) Equal(column, value string) {
	if value == "" {
		return
	}
	f.clauses = append(f.clauses, column+" = "+f.arg(value))
}

// EqualBool adds an exact-match condition on a boolean column when the
// raw value parses as "true" or "false".
func (f *filterBuilder) EqualBool(column, raw string) {
	switch strings.ToLower(raw) {
	case "true":
		f.clauses = append(f.clauses, column+" = "+f.arg(true))
	case "false":
		f.clauses = append(f.clauses, column+" = "+f.arg(false))
	}
}

// Search adds a case-insensitive substring match across the given
// columns, as a disjunction: any column containing the term matches.
func (f *filterBuilder) Search(term string, columns ...string) {
	if term == "" || len(columns) == 0 {
		return
	}
	placeholder := f.arg("%" + escapeLike(term) + "%")
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE "+placeholder)
	}
	f.clauses = append(f.clauses, "("+strings.Join(parts, " OR ")+")")
}

// Where renders the composed clause with a leading " WHERE", or an
// empty string when no conditions were added.
func (f *filterBuilder) Where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// Args returns the accumulated positional arguments.
func (f *filterBuilder) Args() []any {
	return f.args
}

// next returns the placeholder index after the filter arguments,
// for appending LIMIT/OFFSET parameters.
func (f *filterBuilder) next() int {
	return len(f.args) + 1
}

// escapeLike escapes LIKE metacharacters so a search term matches
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
