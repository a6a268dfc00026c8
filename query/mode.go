package query

import (
	"strings"

	"notesvc/apperror"
)

// TextMode selects how the text query is matched against note content.
type TextMode int

const (
	TextPartial TextMode = iota
	TextExact
	TextTrigram
)

// ParseTextMode never fails: anything other than exact or trgm is partial.
func ParseTextMode(s string) TextMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return TextExact
	case "trgm":
		return TextTrigram
	default:
		return TextPartial
	}
}

func (m TextMode) String() string {
	switch m {
	case TextExact:
		return "exact"
	case TextTrigram:
		return "trgm"
	default:
		return "partial"
	}
}

// TagMatch selects array operators (exact) or per-element substring
// matching (partial) for the structured tag predicates.
type TagMatch int

const (
	TagMatchExact TagMatch = iota
	TagMatchPartial
)

func ParseTagMatch(s string) (TagMatch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return TagMatchExact, nil
	case "partial":
		return TagMatchPartial, nil
	default:
		return TagMatchExact, apperror.ErrValidation.WithMessage("tags_match must be exact or partial")
	}
}

func (m TagMatch) String() string {
	if m == TagMatchPartial {
		return "partial"
	}
	return "exact"
}

// LegacyTagMode is the mode of the old single `tags` parameter.
type LegacyTagMode int

const (
	LegacyAll LegacyTagMode = iota
	LegacyAny
)

func ParseLegacyTagMode(s string) LegacyTagMode {
	if strings.EqualFold(strings.TrimSpace(s), "any") {
		return LegacyAny
	}
	return LegacyAll
}

func (m LegacyTagMode) String() string {
	if m == LegacyAny {
		return "any"
	}
	return "all"
}

// SortField is a column notes can be ordered by.
type SortField int

const (
	SortID SortField = iota
	SortCreatedAt
	SortUpdatedAt
)

func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "id":
		return SortID, nil
	case "created_at":
		return SortCreatedAt, nil
	case "updated_at":
		return SortUpdatedAt, nil
	default:
		return SortID, apperror.ErrValidation.WithMessage("order_by must be one of id, created_at, updated_at")
	}
}

// Column is the SQL column name. Only these three constants ever reach SQL.
func (f SortField) Column() string {
	switch f {
	case SortCreatedAt:
		return "created_at"
	case SortUpdatedAt:
		return "updated_at"
	default:
		return "id"
	}
}

func (f SortField) String() string {
	return f.Column()
}

// Timestamped reports whether the field is a timestamp, i.e. whether a
// cursor for it must carry a timestamp component.
func (f SortField) Timestamped() bool {
	return f != SortID
}

type Direction int

const (
	Desc Direction = iota
	Asc
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	default:
		return Desc, apperror.ErrValidation.WithMessage("order must be asc or desc")
	}
}

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

func (d Direction) keyword() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

// comparator is the keyset operator that moves forward in this direction.
func (d Direction) comparator() string {
	if d == Asc {
		return ">"
	}
	return "<"
}
