package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRanking(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		mode      TextMode
		requested bool
		want      Ranking
	}{
		{"no query", "", TextPartial, true, Ranking{}},
		{"not requested", "hello", TextPartial, false, Ranking{}},
		{"partial requested", "hello", TextPartial, true, Ranking{Enabled: true, Text: "hello", Min: 0.2}},
		{"trigram requested", "hello", TextTrigram, true, Ranking{Enabled: true, Text: "hello", Min: 0.2}},
		{"exact never ranks", "hello", TextExact, true, Ranking{}},
		{"short requested", "hi", TextPartial, true, Ranking{Disabled: true}},
		{"short trigram", "hi", TextTrigram, false, Ranking{Disabled: true}},
		{"short partial", "hi", TextPartial, false, Ranking{}},
		{"three runes", "ねこだ", TextPartial, true, Ranking{Enabled: true, Text: "ねこだ", Min: 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRanking(tt.text, tt.mode, tt.requested, 0.2))
		})
	}
}

func TestRankFlagParsing(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "on"} {
		opts, err := ParseListOptions(url.Values{"rank": {v}}, ListLimits)
		require.NoError(t, err)
		assert.True(t, opts.Rank, v)
	}
	opts, err := ParseListOptions(url.Values{"rank": {"0"}}, ListLimits)
	require.NoError(t, err)
	assert.False(t, opts.Rank)
	assert.Equal(t, DefaultRankMin, opts.RankMin)
}

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns(url.Values{}, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultColumns, cols)

	cols, err = ParseColumns(url.Values{}, true)
	require.NoError(t, err)
	assert.Equal(t, append(append([]Column{}, DefaultColumns...), ColumnRank), cols)

	cols, err = ParseColumns(url.Values{"columns": {"content, ID", "content"}}, false)
	require.NoError(t, err)
	assert.Equal(t, []Column{ColumnContent, ColumnID}, cols)

	cols, err = ParseColumns(url.Values{"columns": {"rank,id"}}, false)
	require.NoError(t, err)
	assert.Equal(t, []Column{ColumnID}, cols, "rank is dropped when the plan is not ranked")

	_, err = ParseColumns(url.Values{"columns": {"id,password"}}, false)
	assert.Error(t, err)
}
