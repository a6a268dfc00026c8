package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"notesvc/apperror"
)

// MinTrigramLength is the shortest query trigram matching and ranking accept.
const MinTrigramLength = 3

var ErrDateOrder = apperror.ErrValidation.WithMessage("from must be earlier than to")

// TagPredicates are the structured tag conditions. Each list is normalized.
type TagPredicates struct {
	All   []string
	Any   []string
	None  []string
	Match TagMatch
}

func (p TagPredicates) Empty() bool {
	return len(p.All) == 0 && len(p.Any) == 0 && len(p.None) == 0
}

// DateRange bounds created_at inclusively. Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return ErrDateOrder
	}
	return nil
}

// Filter is the parsed filter description of one request or saved filter.
type Filter struct {
	Text     string
	TextMode TextMode

	Tags TagPredicates

	// LegacyTags is only honored when Tags is empty.
	LegacyTags []string
	LegacyMode LegacyTagMode

	Range DateRange

	// SavedFilterID references a saved filter merged in with AND; 0 is none.
	SavedFilterID int64
}

// TextTooShort reports a present query below the trigram minimum.
func (f Filter) TextTooShort() bool {
	return f.Text != "" && utf8.RuneCountInString(f.Text) < MinTrigramLength
}

// EffectiveTextMode downgrades trigram matching to partial for short queries.
func (f Filter) EffectiveTextMode() TextMode {
	if f.TextMode == TextTrigram && f.TextTooShort() {
		return TextPartial
	}
	return f.TextMode
}

// Active reports whether the filter restricts anything at all.
func (f Filter) Active() bool {
	return f.Text != "" || !f.Tags.Empty() || len(f.LegacyTags) > 0 ||
		f.Range.From != nil || f.Range.To != nil || f.SavedFilterID != 0
}

// ParseFilter reads the filter parameters of a list, count or export request.
func ParseFilter(params url.Values) (Filter, error) {
	f := Filter{
		Text:     strings.TrimSpace(params.Get("q")),
		TextMode: ParseTextMode(params.Get("q_mode")),
	}

	match, err := ParseTagMatch(params.Get("tags_match"))
	if err != nil {
		return Filter{}, err
	}
	f.Tags = TagPredicates{
		All:   SplitTagList(params["tags_all"]),
		Any:   SplitTagList(params["tags_any"]),
		None:  SplitTagList(params["tags_none"]),
		Match: match,
	}

	if !hasAny(params, "tags_all", "tags_any", "tags_none") {
		f.LegacyTags = SplitTagList(params["tags"])
		f.LegacyMode = ParseLegacyTagMode(params.Get("tags_mode"))
	}

	f.Range = DateRange{
		From: parseInstant(params.Get("from")),
		To:   parseInstant(params.Get("to")),
	}
	if err := f.Range.Validate(); err != nil {
		return Filter{}, err
	}

	if raw := strings.TrimSpace(params.Get("filter_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return Filter{}, apperror.ErrValidation.WithMessage("filter_id must be a positive integer")
		}
		f.SavedFilterID = id
	}

	return f, nil
}

func hasAny(params url.Values, keys ...string) bool {
	for _, k := range keys {
		if _, ok := params[k]; ok {
			return true
		}
	}
	return false
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseInstant returns nil for absent or unparsable input; a bad bound is
// dropped rather than rejected.
func parseInstant(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// an unescaped "+09:00" offset arrives as " 09:00"
	s = strings.ReplaceAll(s, " ", "+")
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
