package query

import (
	"strings"
)

// Compile turns a filter into a condition fragment and its parameters,
// numbered from $1.
func Compile(f Filter) (string, []any) {
	var b Builder
	b.AddFilter(f)
	return b.Conditions(), b.Args()
}

// AddFilter appends every predicate the filter describes.
func (b *Builder) AddFilter(f Filter) {
	b.addText(f.Text, f.EffectiveTextMode())

	if !f.Tags.Empty() {
		b.addTagPredicates(f.Tags)
	} else if len(f.LegacyTags) > 0 {
		if f.LegacyMode == LegacyAny {
			b.Where("tags && " + b.Param(f.LegacyTags) + "::text[]")
		} else {
			b.Where("tags @> " + b.Param(f.LegacyTags) + "::text[]")
		}
	}

	if f.Range.From != nil {
		b.Where("created_at >= " + b.Param(*f.Range.From))
	}
	if f.Range.To != nil {
		b.Where("created_at <= " + b.Param(*f.Range.To))
	}
}

func (b *Builder) addText(text string, mode TextMode) {
	if text == "" {
		return
	}
	switch mode {
	case TextExact:
		b.Where("content = " + b.Param(text))
	case TextTrigram:
		b.Where("content % " + b.Param(text))
	default:
		b.Where("content ILIKE " + b.Param(containsPattern(text)))
	}
}

func (b *Builder) addTagPredicates(p TagPredicates) {
	if p.Match == TagMatchExact {
		if len(p.All) > 0 {
			b.Where("tags @> " + b.Param(p.All) + "::text[]")
		}
		if len(p.Any) > 0 {
			b.Where("tags && " + b.Param(p.Any) + "::text[]")
		}
		if len(p.None) > 0 {
			b.Where("NOT (tags && " + b.Param(p.None) + "::text[])")
		}
		return
	}

	for _, tag := range p.All {
		b.Where(b.tagExists(tag))
	}
	if len(p.Any) > 0 {
		alts := make([]string, 0, len(p.Any))
		for _, tag := range p.Any {
			alts = append(alts, b.tagExists(tag))
		}
		b.Where("(" + strings.Join(alts, " OR ") + ")")
	}
	for _, tag := range p.None {
		b.Where("NOT " + b.tagExists(tag))
	}
}

func (b *Builder) tagExists(tag string) string {
	return "EXISTS (SELECT 1 FROM unnest(tags) AS t(tag) WHERE t.tag ILIKE " + b.Param(containsPattern(tag)) + ")"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE substring pattern with wildcards escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
