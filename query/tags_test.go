package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input []any
		want  []string
	}{
		{"nil input", nil, []string{}},
		{"drops non strings", []any{"a", 1, nil, true, map[string]any{}, "b"}, []string{"a", "b"}},
		{"trims and drops blanks", []any{"  go ", "", "   ", "\tdb\n"}, []string{"go", "db"}},
		{"folds full width", []any{"Ａ", "a", "a"}, []string{"a"}},
		{"full width digits", []any{"２０２４"}, []string{"2024"}},
		{"lowercases ascii alnum", []any{"GoLang", "golang", "SQL99"}, []string{"golang", "sql99"}},
		{"keeps mixed case when not alnum", []any{"C++", "Foo-Bar", "Café"}, []string{"C++", "Foo-Bar", "Café"}},
		{"keeps non ascii", []any{"日本語", "日本語"}, []string{"日本語"}},
		{"ideographic space trimmed", []any{"　memo　"}, []string{"memo"}},
		{"first seen order", []any{"b", "a", "B", "c", "A"}, []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.input))
		})
	}
}

func TestNormalizeTagStringsIdempotent(t *testing.T) {
	inputs := [][]string{
		{"Ａｂｃ", "abc", " ABC "},
		{"x", "", " ", "y", "x"},
		{"Mixed-Case", "mixed-case", "ＭＩＸＥＤ"},
		{"　", "ｔａｇ１", "TAG1"},
		{},
	}

	for _, in := range inputs {
		once := NormalizeTagStrings(in)
		twice := NormalizeTagStrings(once)
		assert.Equal(t, once, twice)

		seen := map[string]bool{}
		for _, tag := range once {
			assert.NotEmpty(t, tag)
			assert.False(t, seen[tag], "duplicate %q", tag)
			seen[tag] = true
		}
	}
}

func TestSplitTagList(t *testing.T) {
	got := SplitTagList([]string{"x,y", "Y", " z ,", ""})
	assert.Equal(t, []string{"x", "y", "z"}, got)
}
