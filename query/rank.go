package query

import "unicode/utf8"

// DefaultRankMin is the similarity floor applied when rank_min is absent.
const DefaultRankMin = 0.1

// Ranking is the resolved relevance policy of a request.
type Ranking struct {
	// Enabled means rows are scored and filtered by Min.
	Enabled bool
	// Disabled means ranking or trigram matching was asked for but the query
	// is too short; callers surface it to the client.
	Disabled bool
	Text     string
	Min      float64
}

// ResolveRanking decides whether similarity scoring applies. Exact matching
// never ranks.
func ResolveRanking(text string, mode TextMode, requested bool, min float64) Ranking {
	if text == "" {
		return Ranking{}
	}
	short := utf8.RuneCountInString(text) < MinTrigramLength
	if short {
		return Ranking{Disabled: requested || mode == TextTrigram}
	}
	if !requested || mode == TextExact {
		return Ranking{}
	}
	return Ranking{Enabled: true, Text: text, Min: min}
}

func (r Ranking) scoreExpr(b *Builder) string {
	return "similarity(content, " + b.Param(r.Text) + ")"
}

func (r Ranking) addThreshold(b *Builder) {
	if !r.Enabled {
		return
	}
	b.Where(r.scoreExpr(b) + " >= " + b.Param(r.Min))
}
