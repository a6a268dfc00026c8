package query

import (
	"strings"
	"time"

	"notesvc/model"
)

const noteColumns = "id, content, tags, created_at, updated_at"

// Strategy is the pagination strategy a plan settled on.
type Strategy int

const (
	StrategyKeyset Strategy = iota
	StrategyOffset
)

func (s Strategy) String() string {
	if s == StrategyOffset {
		return "offset"
	}
	return "keyset"
}

// Plan assembles the statements for one list, count or export request. The
// saved filter, when present, is AND-ed with the inline one.
type Plan struct {
	opts    ListOptions
	saved   *Filter
	ranking Ranking
}

func NewPlan(opts ListOptions, saved *Filter) Plan {
	text, mode := opts.Filter.Text, opts.Filter.TextMode
	if text == "" && saved != nil {
		text, mode = saved.Text, saved.TextMode
	}
	return Plan{
		opts:    opts,
		saved:   saved,
		ranking: ResolveRanking(text, mode, opts.Rank, opts.RankMin),
	}
}

func (p Plan) Options() ListOptions { return p.opts }

// Ranked reports whether rows carry a similarity score.
func (p Plan) Ranked() bool { return p.ranking.Enabled }

// RankDisabled reports that ranking was refused because the query is short.
func (p Plan) RankDisabled() bool {
	if p.ranking.Disabled {
		return true
	}
	return p.saved != nil && p.saved.TextMode == TextTrigram && p.saved.TextTooShort()
}

func (p Plan) rankOrdered() bool {
	return p.ranking.Enabled && !p.opts.Order.Explicit
}

func (p Plan) Strategy() Strategy {
	switch {
	case p.rankOrdered():
		return StrategyOffset
	case p.opts.Page.Cursor != nil:
		return StrategyKeyset
	case p.opts.Page.OffsetGiven:
		return StrategyOffset
	default:
		return StrategyKeyset
	}
}

func (p Plan) Limit() int { return p.opts.Page.Limit }

func (p Plan) addConditions(b *Builder) {
	b.AddFilter(p.opts.Filter)
	if p.saved != nil {
		b.AddFilter(*p.saved)
	}
	p.ranking.addThreshold(b)
}

// ListSQL is the page query: filters, keyset or offset window, ordering.
func (p Plan) ListSQL() (string, []any) {
	var b Builder

	cols := noteColumns
	if p.ranking.Enabled {
		cols += ", " + p.ranking.scoreExpr(&b) + " AS score"
	}

	p.addConditions(&b)

	strategy := p.Strategy()
	if c := p.opts.Page.Cursor; strategy == StrategyKeyset && c != nil {
		b.Where(p.keysetCondition(&b, *c))
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + cols + " FROM notes")
	if where := b.WhereSQL(); where != "" {
		sb.WriteString(" " + where)
	}
	sb.WriteString(" ORDER BY " + p.orderSQL())
	sb.WriteString(" LIMIT " + b.Param(p.opts.Page.Limit))
	if strategy == StrategyOffset && p.opts.Page.Offset > 0 {
		sb.WriteString(" OFFSET " + b.Param(p.opts.Page.Offset))
	}
	return sb.String(), b.Args()
}

// CountSQL counts every row the filters match, ignoring pagination.
func (p Plan) CountSQL() (string, []any) {
	var b Builder
	p.addConditions(&b)
	sql := "SELECT count(*) FROM notes"
	if where := b.WhereSQL(); where != "" {
		sql += " " + where
	}
	return sql, b.Args()
}

func (p Plan) keysetCondition(b *Builder, c Cursor) string {
	order := p.opts.Order
	op := order.Dir.comparator()
	if !order.Field.Timestamped() {
		return "id " + op + " " + b.Param(c.ID)
	}
	col := order.Field.Column()
	return "(" + col + ", id) " + op + " (" + b.Param(*c.Time) + "::timestamptz, " + b.Param(c.ID) + "::bigint)"
}

func (p Plan) orderSQL() string {
	order := p.opts.Order
	dir := order.Dir.keyword()
	if p.rankOrdered() {
		return "score DESC, id " + dir
	}
	if order.Field == SortID {
		return "id " + dir
	}
	return order.Field.Column() + " " + dir + ", id " + dir
}

// NextCursor returns the continuation token for a keyset page that came back
// full, or "" when paging is exhausted or offset based.
func (p Plan) NextCursor(notes []model.Note) string {
	if p.Strategy() != StrategyKeyset || len(notes) == 0 || len(notes) < p.opts.Page.Limit {
		return ""
	}
	last := notes[len(notes)-1]
	c := Cursor{ID: last.ID}
	switch p.opts.Order.Field {
	case SortCreatedAt:
		c.Time = timePtr(last.CreatedAt)
	case SortUpdatedAt:
		c.Time = timePtr(last.UpdatedAt)
	}
	return EncodeCursor(c)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
