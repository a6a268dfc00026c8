package usecase

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"notesvc/apperror"
	"notesvc/dto"
	"notesvc/model"
	"notesvc/query"
	"notesvc/utils"
)

type NotesStore interface {
	CreateNote(ctx context.Context, in model.NoteInput) (*model.Note, error)
	UpdateNote(ctx context.Context, id int64, patch model.NotePatch) (*model.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	FindNotes(ctx context.Context, plan query.Plan) ([]model.Note, error)
	CountNotes(ctx context.Context, plan query.Plan) (int64, error)
}

// SavedFilters resolves filter_id references.
type SavedFilters interface {
	GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error)
}

type NotesService struct {
	repo         NotesStore
	filters      SavedFilters
	listLimits   query.Limits
	exportLimits query.Limits
	logger       *zap.Logger
}

func NewNotesService(repo NotesStore, filters SavedFilters, listLimits, exportLimits query.Limits, logger *zap.Logger) *NotesService {
	return &NotesService{
		repo:         repo,
		filters:      filters,
		listLimits:   listLimits,
		exportLimits: exportLimits,
		logger:       logger,
	}
}

func (s *NotesService) CreateNote(ctx context.Context, req dto.NoteRequest) (*model.Note, error) {
	in := model.NoteInput{
		Content: strings.TrimSpace(req.Content),
		Tags:    query.NormalizeTags(req.Tags),
	}
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	note, err := s.repo.CreateNote(ctx, in)
	if err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies the fields present in req. At least one of content and
// tags must be set.
func (s *NotesService) UpdateNote(ctx context.Context, id int64, req dto.NotePatchRequest) (*model.Note, error) {
	var patch model.NotePatch
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if err := utils.ValidateVar("content", content, "required,max=10000"); err != nil {
			return nil, err
		}
		patch.Content = &content
	}
	if req.Tags != nil {
		tags := query.NormalizeTags(*req.Tags)
		if err := utils.ValidateVar("tags", tags, "max=32,dive,max=64"); err != nil {
			return nil, err
		}
		patch.Tags = &tags
	}
	if patch.Empty() {
		return nil, apperror.ErrValidation.WithMessage("content or tags is required")
	}

	note, err := s.repo.UpdateNote(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("update")
	return note, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, id int64) error {
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return err
	}
	utils.TrackNoteOperation("delete")
	return nil
}

// ListNotes returns one page of notes for the request parameters.
func (s *NotesService) ListNotes(ctx context.Context, params url.Values) (*dto.NotesPage, error) {
	plan, err := s.plan(ctx, params, s.listLimits)
	if err != nil {
		return nil, err
	}

	notes, err := s.repo.FindNotes(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.track("list", plan)

	return &dto.NotesPage{
		Notes:        notes,
		NextCursor:   plan.NextCursor(notes),
		RankDisabled: plan.RankDisabled(),
		Plan:         plan,
	}, nil
}

func (s *NotesService) CountNotes(ctx context.Context, params url.Values) (int64, error) {
	plan, err := s.plan(ctx, params, s.listLimits)
	if err != nil {
		return 0, err
	}
	return s.repo.CountNotes(ctx, plan)
}

// ExportNotes selects notes for CSV export with the export page limits.
func (s *NotesService) ExportNotes(ctx context.Context, params url.Values) (*dto.Export, error) {
	plan, err := s.plan(ctx, params, s.exportLimits)
	if err != nil {
		return nil, err
	}
	columns, err := query.ParseColumns(params, plan.Ranked())
	if err != nil {
		return nil, err
	}

	notes, err := s.repo.FindNotes(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.track("export", plan)

	return &dto.Export{Notes: notes, Columns: columns, Plan: plan}, nil
}

func (s *NotesService) plan(ctx context.Context, params url.Values, limits query.Limits) (query.Plan, error) {
	opts, err := query.ParseListOptions(params, limits)
	if err != nil {
		return query.Plan{}, err
	}

	var saved *query.Filter
	if id := opts.Filter.SavedFilterID; id != 0 {
		sf, err := s.filters.GetFilter(ctx, id)
		if err != nil {
			return query.Plan{}, err
		}
		f := query.FromSaved(*sf)
		saved = &f
	}
	return query.NewPlan(opts, saved), nil
}

func (s *NotesService) track(operation string, plan query.Plan) {
	utils.TrackNoteQuery(operation, plan.Strategy().String(), plan.Ranked())
	if plan.RankDisabled() {
		utils.TrackRankDisabled()
	}
}
