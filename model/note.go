package model

import (
	"time"
)

const (
	MaxContentLength = 10000
	MaxTags          = 32
	MaxTagLength     = 64
)

type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Score is set only when the listing was ranked.
	Score *float64 `json:"score,omitempty"`
}

// NoteInput is a normalized create payload, validated before persistence.
type NoteInput struct {
	Content string   `validate:"required,max=10000"`
	Tags    []string `validate:"max=32,dive,required,max=64"`
}

// NotePatch holds the fields a partial update sets; nil means untouched.
type NotePatch struct {
	Content *string
	Tags    *[]string
}

func (p NotePatch) Empty() bool {
	return p.Content == nil && p.Tags == nil
}
