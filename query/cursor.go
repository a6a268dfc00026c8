package query

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// Cursor is the keyset position of the last row of a page. Time is nil when
// the page was ordered by id.
type Cursor struct {
	Time *time.Time
	ID   int64
}

// EncodeCursor renders "<timestamp>|<id>" as unpadded URL-safe base64.
func EncodeCursor(c Cursor) string {
	ts := ""
	if c.Time != nil {
		ts = c.Time.UTC().Format(time.RFC3339Nano)
	}
	raw := ts + "|" + strconv.FormatInt(c.ID, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

var cursorEncodings = []*base64.Encoding{
	base64.RawURLEncoding,
	base64.URLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// DecodeCursor is total: any malformed token yields ok == false and callers
// treat it as no cursor at all.
func DecodeCursor(token string) (Cursor, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, false
	}

	var raw []byte
	for _, enc := range cursorEncodings {
		b, err := enc.DecodeString(token)
		if err == nil {
			raw = b
			break
		}
	}
	if raw == nil {
		return Cursor{}, false
	}

	ts, idPart, found := strings.Cut(string(raw), "|")
	if !found {
		return Cursor{}, false
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return Cursor{}, false
	}

	c := Cursor{ID: id}
	if ts != "" {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return Cursor{}, false
		}
		c.Time = &t
	}
	return c, true
}

// fits reports whether the cursor carries the key shape the sort field needs.
func (c Cursor) fits(field SortField) bool {
	return (c.Time != nil) == field.Timestamped()
}
