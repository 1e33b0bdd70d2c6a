package sqlfilter

import (
	"strconv"
	"strings"
)

// Marker is the placeholder token used inside clause templates. Every
// occurrence of it within one clause is replaced by the same positional
// placeholder ($1, $2, ...) when the filter is built.
const Marker = "$?"

// Clause is one predicate fragment plus (optionally) one bound value.
// Its positional index is assigned during Build, never before.
type Clause struct {
	template string
	value    interface{}
	hasValue bool
	index    int
}

// Placeholder returns the positional placeholder assigned to this clause's
// bound value during Build (e.g. "$2"). It is only meaningful after Build
// has run and only for clauses added with Add.
func (c *Clause) Placeholder() string {
	return "$" + strconv.Itoa(c.index)
}

// Filter collects optional predicate fragments in order. Which filters are
// present is decided while adding clauses; what index each bound value gets
// is decided in a single pass inside Build, so the two can never drift.
type Filter struct {
	clauses []*Clause
}

// New creates an empty Filter.
func New() *Filter {
	return &Filter{}
}

// Add appends a clause with one bound value. The template references the
// value through the $? marker and may repeat it (e.g. the ILIKE pattern
// "( $?::text IS NULL OR c.nombre ILIKE '%' || $? || '%' )").
func (f *Filter) Add(template string, value interface{}) *Clause {
	c := &Clause{template: template, value: value, hasValue: true}
	f.clauses = append(f.clauses, c)
	return c
}

// AddExpr appends a clause without a bound value (e.g. an EXISTS subquery).
func (f *Filter) AddExpr(template string) *Clause {
	c := &Clause{template: template}
	f.clauses = append(f.clauses, c)
	return c
}

// Build assigns positional placeholders to every bound value in insertion
// order and returns the rendered clause list plus the matching argument
// array. len(args) always equals the number of distinct placeholders.
func (f *Filter) Build() ([]string, []interface{}) {
	rendered := make([]string, 0, len(f.clauses))
	args := make([]interface{}, 0, len(f.clauses))

	for _, c := range f.clauses {
		if c.hasValue {
			args = append(args, c.value)
			c.index = len(args)
			rendered = append(rendered, strings.ReplaceAll(c.template, Marker, c.Placeholder()))
		} else {
			rendered = append(rendered, c.template)
		}
	}

	return rendered, args
}

// Where builds the filter and renders a complete WHERE section. The base
// predicates (never optional, no bound values) come first. With no base and
// no clauses it returns the empty string, i.e. an unconstrained query.
func (f *Filter) Where(base ...string) (string, []interface{}) {
	rendered, args := f.Build()
	all := append(append([]string{}, base...), rendered...)
	if len(all) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(all, "\n  AND "), args
}

// TextOrNil maps an empty or all-blank string to SQL NULL so the
// "( $N::text IS NULL OR ... )" pattern skips the filter entirely.
func TextOrNil(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// IntOrNil parses a loosely-typed numeric parameter. Absent or unparseable
// input becomes SQL NULL (no constraint) instead of an error.
func IntOrNil(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return n
}

// IsTrue normalizes a boolean-like query value. Only the exact token "true"
// counts as true; "false", empty, or anything else is false.
func IsTrue(s string) bool {
	return s == "true"
}
