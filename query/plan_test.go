package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesvc/model"
)

func mustPlan(t *testing.T, params url.Values, saved *Filter) Plan {
	t.Helper()
	opts, err := ParseListOptions(params, ListLimits)
	require.NoError(t, err)
	return NewPlan(opts, saved)
}

func TestListSQLDefaults(t *testing.T) {
	p := mustPlan(t, url.Values{}, nil)
	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at FROM notes ORDER BY id DESC LIMIT $1", sql)
	assert.Equal(t, []any{50}, args)
	assert.Equal(t, StrategyKeyset, p.Strategy())
}

func TestListSQLOffset(t *testing.T) {
	p := mustPlan(t, url.Values{"order_by": {"created_at"}, "order": {"asc"}, "limit": {"10"}, "offset": {"20"}, "tags_all": {"a"}}, nil)
	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at FROM notes WHERE tags @> $1::text[] ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3", sql)
	assert.Equal(t, []any{[]string{"a"}, 10, 20}, args)
	assert.Equal(t, StrategyOffset, p.Strategy())
}

func TestListSQLCursorTakesPrecedenceOverOffset(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cursor := EncodeCursor(Cursor{Time: &ts, ID: 77})

	p := mustPlan(t, url.Values{"order_by": {"created_at"}, "cursor": {cursor}, "offset": {"40"}, "q": {"note"}}, nil)
	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at FROM notes WHERE content ILIKE $1 AND (created_at, id) < ($2::timestamptz, $3::bigint) ORDER BY created_at DESC, id DESC LIMIT $4", sql)
	assert.Equal(t, []any{"%note%", ts, int64(77), 50}, args)
	assert.Equal(t, StrategyKeyset, p.Strategy())
	assertPlaceholders(t, sql, args)
}

func TestListSQLCursorByID(t *testing.T) {
	cursor := EncodeCursor(Cursor{ID: 100})

	p := mustPlan(t, url.Values{"cursor": {cursor}, "order": {"asc"}, "limit": {"5"}}, nil)
	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at FROM notes WHERE id > $1 ORDER BY id ASC LIMIT $2", sql)
	assert.Equal(t, []any{int64(100), 5}, args)
}

func TestListSQLIgnoresMismatchedOrMalformedCursor(t *testing.T) {
	// an id-only cursor cannot page an updated_at ordering
	p := mustPlan(t, url.Values{"order_by": {"updated_at"}, "cursor": {EncodeCursor(Cursor{ID: 3})}}, nil)
	sql, _ := p.ListSQL()
	assert.NotContains(t, sql, "WHERE")

	p = mustPlan(t, url.Values{"cursor": {"garbage"}, "offset": {"5"}}, nil)
	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at FROM notes ORDER BY id DESC LIMIT $1 OFFSET $2", sql)
	assert.Equal(t, []any{50, 5}, args)
	assert.Equal(t, StrategyOffset, p.Strategy())
}

func TestListSQLRanked(t *testing.T) {
	p := mustPlan(t, url.Values{"q": {"hello"}, "rank": {"1"}, "rank_min": {"0.25"}}, nil)
	require.True(t, p.Ranked())
	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at, similarity(content, $1) AS score FROM notes WHERE content ILIKE $2 AND similarity(content, $3) >= $4 ORDER BY score DESC, id DESC LIMIT $5", sql)
	assert.Equal(t, []any{"hello", "%hello%", "hello", 0.25, 50}, args)
	assert.Equal(t, StrategyOffset, p.Strategy(), "score is not a cursor key")
	assert.False(t, p.RankDisabled())
}

func TestListSQLRankedWithExplicitOrder(t *testing.T) {
	p := mustPlan(t, url.Values{"q": {"hello"}, "rank": {"true"}, "order_by": {"id"}, "order": {"asc"}}, nil)
	sql, _ := p.ListSQL()
	assert.Contains(t, sql, "AS score")
	assert.Contains(t, sql, "ORDER BY id ASC LIMIT")
	assert.Equal(t, StrategyKeyset, p.Strategy())
}

func TestShortTrigramQueryDisablesRanking(t *testing.T) {
	p := mustPlan(t, url.Values{"q": {"hi"}, "q_mode": {"trgm"}}, nil)
	assert.True(t, p.RankDisabled())
	assert.False(t, p.Ranked())

	sql, args := p.ListSQL()
	assert.Equal(t, "SELECT id, content, tags, created_at, updated_at FROM notes WHERE content ILIKE $1 ORDER BY id DESC LIMIT $2", sql)
	assert.Equal(t, []any{"%hi%", 50}, args)

	p = mustPlan(t, url.Values{"q": {"hi"}, "rank": {"1"}}, nil)
	assert.True(t, p.RankDisabled())
	assert.NotContains(t, func() string { s, _ := p.ListSQL(); return s }(), "similarity")

	p = mustPlan(t, url.Values{"q": {"hi"}}, nil)
	assert.False(t, p.RankDisabled(), "plain short partial queries are not flagged")
}

func TestSavedFilterIsMerged(t *testing.T) {
	saved := &Filter{
		Text:     "meeting",
		TextMode: TextExact,
		Tags:     TagPredicates{None: []string{"archived"}},
	}
	p := mustPlan(t, url.Values{"tags_any": {"work"}, "filter_id": {"3"}}, saved)

	sql, args := p.CountSQL()
	assert.Equal(t, "SELECT count(*) FROM notes WHERE tags && $1::text[] AND content = $2 AND NOT (tags && $3::text[])", sql)
	assert.Equal(t, []any{[]string{"work"}, "meeting", []string{"archived"}}, args)
}

func TestRankingFallsBackToSavedQuery(t *testing.T) {
	saved := &Filter{Text: "roadmap", TextMode: TextTrigram}
	p := mustPlan(t, url.Values{"rank": {"1"}}, saved)
	assert.True(t, p.Ranked())

	saved = &Filter{Text: "ab", TextMode: TextTrigram}
	p = mustPlan(t, url.Values{"q": {"longer query"}}, saved)
	assert.True(t, p.RankDisabled())
}

func TestCountSQLIgnoresPagination(t *testing.T) {
	ts := time.Now().UTC()
	p := mustPlan(t, url.Values{"order_by": {"created_at"}, "cursor": {EncodeCursor(Cursor{Time: &ts, ID: 5})}, "limit": {"3"}}, nil)
	sql, args := p.CountSQL()
	assert.Equal(t, "SELECT count(*) FROM notes", sql)
	assert.Empty(t, args)
}

func TestNextCursor(t *testing.T) {
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	notes := []model.Note{
		{ID: 9, CreatedAt: created.Add(time.Hour)},
		{ID: 8, CreatedAt: created},
	}

	p := mustPlan(t, url.Values{"order_by": {"created_at"}, "limit": {"2"}}, nil)
	token := p.NextCursor(notes)
	require.NotEmpty(t, token)
	c, ok := DecodeCursor(token)
	require.True(t, ok)
	assert.Equal(t, int64(8), c.ID)
	assert.True(t, created.Equal(*c.Time))

	assert.Empty(t, p.NextCursor(notes[:1]), "short page means exhausted")

	p = mustPlan(t, url.Values{"limit": {"2"}, "offset": {"0"}}, nil)
	assert.Empty(t, p.NextCursor(notes), "explicit offset paging emits no cursor")

	p = mustPlan(t, url.Values{"limit": {"2"}}, nil)
	c, ok = DecodeCursor(p.NextCursor(notes))
	require.True(t, ok)
	assert.Nil(t, c.Time)
	assert.Equal(t, int64(8), c.ID)
}

func TestParseListOptionsValidation(t *testing.T) {
	bad := []url.Values{
		{"order_by": {"content"}},
		{"order": {"sideways"}},
		{"limit": {"ten"}},
		{"offset": {"-1"}},
		{"rank_min": {"1.5"}},
		{"rank_min": {"x"}},
	}
	for _, params := range bad {
		_, err := ParseListOptions(params, ListLimits)
		assert.Error(t, err, params.Encode())
	}
}

func TestLimitClamp(t *testing.T) {
	cases := map[string]int{"": 50, "0": 1, "-4": 1, "1": 1, "120": 120, "5000": 200}
	for raw, want := range cases {
		params := url.Values{}
		if raw != "" {
			params.Set("limit", raw)
		}
		opts, err := ParseListOptions(params, ListLimits)
		require.NoError(t, err)
		assert.Equal(t, want, opts.Page.Limit, "limit=%q", raw)
	}

	opts, err := ParseListOptions(url.Values{"limit": {"5000"}}, ExportLimits)
	require.NoError(t, err)
	assert.Equal(t, 5000, opts.Page.Limit)
}

func TestEchoAndTips(t *testing.T) {
	p := mustPlan(t, url.Values{"q": {"hi"}, "q_mode": {"trgm"}, "tags_all": {"a,b"}, "from": {"2024-01-01"}}, nil)
	e := p.Echo()
	assert.Equal(t, "hi", e.Q)
	assert.Equal(t, "partial", e.QMode)
	assert.Equal(t, []string{"a", "b"}, e.TagsAll)
	assert.Equal(t, "exact", e.TagsMatch)
	assert.Equal(t, "id", e.OrderBy)
	assert.Equal(t, "desc", e.Order)
	assert.NotNil(t, e.From)

	tips := p.Tips()
	assert.Contains(t, tips, "queries shorter than 3 characters cannot use trigram matching or ranking")
	assert.Contains(t, tips, "requiring every tag is strict; try tags_any")
	assert.Contains(t, tips, "widen or remove the from/to date range")
}
