package dto

import (
	"time"

	"notesvc/model"
)

// SavedFilterRequest is the upsert body for a saved filter. Tag lists are
// decoded loosely like note tags.
type SavedFilterRequest struct {
	Name      string     `json:"name"`
	Query     string     `json:"q"`
	QueryMode string     `json:"q_mode"`
	TagsAll   []any      `json:"tags_all"`
	TagsAny   []any      `json:"tags_any"`
	TagsNone  []any      `json:"tags_none"`
	TagsMatch string     `json:"tags_match"`
	From      *time.Time `json:"from"`
	To        *time.Time `json:"to"`
}

type SavedFiltersResponse struct {
	Filters []model.SavedFilter `json:"filters"`
}
