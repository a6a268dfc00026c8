package dto

import (
	"notesvc/model"
	"notesvc/query"
)

// NoteRequest is the create body. Tags are decoded loosely so that
// non-string entries can be dropped during normalization.
type NoteRequest struct {
	Content string `json:"content"`
	Tags    []any  `json:"tags"`
}

// NotePatchRequest is the partial update body; absent fields stay nil.
type NotePatchRequest struct {
	Content *string `json:"content"`
	Tags    *[]any  `json:"tags"`
}

// NotesPage is one page of a listing together with what the handler needs
// for its headers and the empty-result payload.
type NotesPage struct {
	Notes        []model.Note
	NextCursor   string
	RankDisabled bool
	Plan         query.Plan
}

// EmptyResult explains a listing whose filters matched nothing.
type EmptyResult struct {
	Results []model.Note `json:"results"`
	Message string       `json:"message"`
	Tips    []string     `json:"tips"`
	Echo    query.Echo   `json:"echo"`
}

func NewEmptyResult(plan query.Plan) EmptyResult {
	tips := plan.Tips()
	if tips == nil {
		tips = []string{}
	}
	return EmptyResult{
		Results: []model.Note{},
		Message: "no notes matched the given filters",
		Tips:    tips,
		Echo:    plan.Echo(),
	}
}

type CountResponse struct {
	Total int64 `json:"total"`
}

// Export is a selected set of notes ready for CSV serialization.
type Export struct {
	Notes   []model.Note
	Columns []query.Column
	Plan    query.Plan
}
