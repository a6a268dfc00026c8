package query

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 12, 30, 45, 123456000, time.UTC)
	cursors := []Cursor{
		{Time: &ts, ID: 42},
		{ID: 7},
		{Time: &ts, ID: 1<<62 + 3},
	}

	for _, c := range cursors {
		token := EncodeCursor(c)
		got, ok := DecodeCursor(token)
		require.True(t, ok, token)
		assert.Equal(t, c.ID, got.ID)
		if c.Time == nil {
			assert.Nil(t, got.Time)
		} else {
			require.NotNil(t, got.Time)
			assert.True(t, c.Time.Equal(*got.Time))
		}
	}
}

func TestCursorEncodingIsTimestampPipeID(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw, err := base64.RawURLEncoding.DecodeString(EncodeCursor(Cursor{Time: &ts, ID: 9}))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05Z|9", string(raw))
}

func TestDecodeCursorAcceptsStandardBase64(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2024-01-02T03:04:05Z|15"))
	c, ok := DecodeCursor(token)
	require.True(t, ok)
	assert.Equal(t, int64(15), c.ID)
}

func TestDecodeCursorMalformed(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	tokens := []string{
		"",
		"   ",
		"!!!not-base64!!!",
		enc("no separator"),
		enc("2024-01-02T03:04:05Z|"),
		enc("2024-01-02T03:04:05Z|abc"),
		enc("2024-01-02T03:04:05Z|0"),
		enc("2024-01-02T03:04:05Z|-5"),
		enc("not a time|5"),
		enc("|"),
	}
	for _, token := range tokens {
		_, ok := DecodeCursor(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestCursorFitsSortField(t *testing.T) {
	ts := time.Now()
	assert.True(t, Cursor{ID: 1}.fits(SortID))
	assert.False(t, Cursor{ID: 1}.fits(SortCreatedAt))
	assert.True(t, Cursor{Time: &ts, ID: 1}.fits(SortUpdatedAt))
	assert.False(t, Cursor{Time: &ts, ID: 1}.fits(SortID))
}
