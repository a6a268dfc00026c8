package model

import "time"

// SavedFilter is a named filter referenced from list and export requests by
// id. Mode fields hold the same strings the query parameters accept.
type SavedFilter struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name" validate:"required,max=100"`
	Query     string     `json:"q"`
	QueryMode string     `json:"q_mode" validate:"omitempty,oneof=exact partial trgm"`
	TagsAll   []string   `json:"tags_all" validate:"max=32,dive,max=64"`
	TagsAny   []string   `json:"tags_any" validate:"max=32,dive,max=64"`
	TagsNone  []string   `json:"tags_none" validate:"max=32,dive,max=64"`
	TagsMatch string     `json:"tags_match" validate:"omitempty,oneof=exact partial"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
