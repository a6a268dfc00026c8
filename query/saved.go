package query

import (
	"strings"

	"notesvc/apperror"
	"notesvc/model"
)

// FromSaved converts a stored saved filter into a Filter.
func FromSaved(sf model.SavedFilter) Filter {
	match, err := ParseTagMatch(sf.TagsMatch)
	if err != nil {
		match = TagMatchExact
	}
	return Filter{
		Text:     strings.TrimSpace(sf.Query),
		TextMode: ParseTextMode(sf.QueryMode),
		Tags: TagPredicates{
			All:   NormalizeTagStrings(sf.TagsAll),
			Any:   NormalizeTagStrings(sf.TagsAny),
			None:  NormalizeTagStrings(sf.TagsNone),
			Match: match,
		},
		Range: DateRange{From: sf.From, To: sf.To},
	}
}

// NormalizeSaved canonicalizes a saved filter before it is stored and
// rejects contradictory input.
func NormalizeSaved(sf *model.SavedFilter) error {
	sf.Name = strings.TrimSpace(sf.Name)
	if sf.Name == "" {
		return apperror.ErrValidation.WithMessage("name is required")
	}
	sf.Query = strings.TrimSpace(sf.Query)
	sf.QueryMode = ParseTextMode(sf.QueryMode).String()

	match, err := ParseTagMatch(sf.TagsMatch)
	if err != nil {
		return err
	}
	sf.TagsMatch = match.String()

	sf.TagsAll = NormalizeTagStrings(sf.TagsAll)
	sf.TagsAny = NormalizeTagStrings(sf.TagsAny)
	sf.TagsNone = NormalizeTagStrings(sf.TagsNone)

	return DateRange{From: sf.From, To: sf.To}.Validate()
}
