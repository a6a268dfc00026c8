package query

import (
	"strconv"
	"strings"
)

// Builder accumulates WHERE conditions and their positional parameters.
// Placeholder numbers are always taken from the current parameter count, so
// conditions may be skipped or reordered freely.
type Builder struct {
	conds []string
	args  []any
}

// AddParam appends a parameter and returns its 1-based placeholder index.
func (b *Builder) AddParam(v any) int {
	b.args = append(b.args, v)
	return len(b.args)
}

// Param appends a parameter and returns its placeholder, e.g. "$3".
func (b *Builder) Param(v any) string {
	return "$" + strconv.Itoa(b.AddParam(v))
}

func (b *Builder) Where(cond string) {
	b.conds = append(b.conds, cond)
}

// Conditions joins every condition with AND; empty when there are none.
func (b *Builder) Conditions() string {
	return strings.Join(b.conds, " AND ")
}

// WhereSQL is Conditions prefixed with WHERE, or empty.
func (b *Builder) WhereSQL() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + b.Conditions()
}

func (b *Builder) Args() []any {
	return b.args
}
