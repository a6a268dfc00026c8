package query

import "time"

// Echo is the parsed request as the server understood it, returned with
// empty results so clients can see why nothing matched.
type Echo struct {
	Q         string     `json:"q,omitempty"`
	QMode     string     `json:"q_mode,omitempty"`
	TagsAll   []string   `json:"tags_all,omitempty"`
	TagsAny   []string   `json:"tags_any,omitempty"`
	TagsNone  []string   `json:"tags_none,omitempty"`
	TagsMatch string     `json:"tags_match,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	TagsMode  string     `json:"tags_mode,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	FilterID  int64      `json:"filter_id,omitempty"`
	OrderBy   string     `json:"order_by"`
	Order     string     `json:"order"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset,omitempty"`
	Rank      bool       `json:"rank,omitempty"`
}

func (p Plan) Echo() Echo {
	f := p.opts.Filter
	e := Echo{
		Q:        f.Text,
		FilterID: f.SavedFilterID,
		From:     f.Range.From,
		To:       f.Range.To,
		OrderBy:  p.opts.Order.Field.String(),
		Order:    p.opts.Order.Dir.String(),
		Limit:    p.opts.Page.Limit,
		Rank:     p.ranking.Enabled,
	}
	if f.Text != "" {
		e.QMode = f.EffectiveTextMode().String()
	}
	if !f.Tags.Empty() {
		e.TagsAll, e.TagsAny, e.TagsNone = f.Tags.All, f.Tags.Any, f.Tags.None
		e.TagsMatch = f.Tags.Match.String()
	} else if len(f.LegacyTags) > 0 {
		e.Tags = f.LegacyTags
		e.TagsMode = f.LegacyMode.String()
	}
	if p.Strategy() == StrategyOffset {
		e.Offset = p.opts.Page.Offset
	}
	return e
}

// Tips suggests how to widen a filter that matched nothing.
func (p Plan) Tips() []string {
	f := p.opts.Filter
	var tips []string
	if p.RankDisabled() {
		tips = append(tips, "queries shorter than 3 characters cannot use trigram matching or ranking")
	}
	if f.Text != "" && f.TextMode == TextExact {
		tips = append(tips, "q_mode=exact matches the whole content; try q_mode=partial")
	}
	if p.ranking.Enabled {
		tips = append(tips, "lower rank_min to include weaker matches")
	}
	if !f.Tags.Empty() && f.Tags.Match == TagMatchExact {
		tips = append(tips, "tags_match=partial matches tags by substring")
	}
	if len(f.Tags.All) > 1 || (len(f.LegacyTags) > 1 && f.LegacyMode == LegacyAll) {
		tips = append(tips, "requiring every tag is strict; try tags_any")
	}
	if f.Range.From != nil || f.Range.To != nil {
		tips = append(tips, "widen or remove the from/to date range")
	}
	if f.SavedFilterID != 0 {
		tips = append(tips, "the saved filter is applied in addition to the inline parameters")
	}
	if p.opts.Page.Cursor != nil || p.opts.Page.Offset > 0 {
		tips = append(tips, "this page is past the last match; start again without cursor or offset")
	}
	return tips
}
