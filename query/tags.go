package query

import (
	"strings"
	"unicode"
)

// NormalizeTags canonicalizes a decoded JSON array of tags. Elements that are
// not strings are dropped.
func NormalizeTags(values []any) []string {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		}
	}
	return NormalizeTagStrings(strs)
}

// NormalizeTagStrings trims, folds full-width forms to half width, lowercases
// pure ASCII alphanumeric tags and de-duplicates, keeping first-seen order.
// The result is never nil.
func NormalizeTagStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		tag := strings.TrimSpace(foldWidth(v))
		if tag == "" {
			continue
		}
		if isASCIIAlnum(tag) {
			tag = strings.ToLower(tag)
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// SplitTagList splits repeated and comma-separated parameter values into one
// normalized list.
func SplitTagList(values []string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	return NormalizeTagStrings(parts)
}

// foldWidth maps U+FF01..U+FF5E onto ASCII and the ideographic space onto a
// plain space.
func foldWidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0xFF01 && r <= 0xFF5E:
			return r - 0xFEE0
		case r == 0x3000:
			return ' '
		}
		return r
	}, s)
}

func isASCIIAlnum(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
