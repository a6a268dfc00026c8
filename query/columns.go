package query

import (
	"net/url"
	"strings"

	"notesvc/apperror"
)

// Column is an export column.
type Column string

const (
	ColumnID        Column = "id"
	ColumnContent   Column = "content"
	ColumnTags      Column = "tags"
	ColumnCreatedAt Column = "created_at"
	ColumnUpdatedAt Column = "updated_at"
	ColumnRank      Column = "rank"
)

var DefaultColumns = []Column{ColumnID, ColumnContent, ColumnTags, ColumnCreatedAt, ColumnUpdatedAt}

// ParseColumns reads the export column selection. Unknown names are
// rejected; rank is appended when the plan is ranked.
func ParseColumns(params url.Values, ranked bool) ([]Column, error) {
	var cols []Column
	seen := map[Column]bool{}
	for _, v := range params["columns"] {
		for _, name := range strings.Split(v, ",") {
			col := Column(strings.ToLower(strings.TrimSpace(name)))
			if col == "" || seen[col] {
				continue
			}
			switch col {
			case ColumnID, ColumnContent, ColumnTags, ColumnCreatedAt, ColumnUpdatedAt:
			case ColumnRank:
				if !ranked {
					continue
				}
			default:
				return nil, apperror.ErrValidation.WithMessage("unknown export column: " + string(col))
			}
			seen[col] = true
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		cols = append(cols, DefaultColumns...)
	}
	if ranked && !seen[ColumnRank] {
		cols = append(cols, ColumnRank)
	}
	return cols, nil
}
