package usecase

import (
	"context"

	"go.uber.org/zap"

	"notesvc/dto"
	"notesvc/model"
	"notesvc/query"
	"notesvc/utils"
)

type FilterStore interface {
	UpsertFilter(ctx context.Context, sf *model.SavedFilter) (bool, error)
	GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error)
	ListFilters(ctx context.Context) ([]model.SavedFilter, error)
	DeleteFilter(ctx context.Context, id int64) error
}

// FilterCache is an optional read-through cache in front of FilterStore.
type FilterCache interface {
	GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error)
	SetFilter(ctx context.Context, sf *model.SavedFilter) error
	InvalidateFilter(ctx context.Context, id int64) error
}

type FilterService struct {
	repo   FilterStore
	cache  FilterCache
	logger *zap.Logger
}

// NewFilterService wires the saved filter store. cache may be nil.
func NewFilterService(repo FilterStore, cache FilterCache, logger *zap.Logger) *FilterService {
	return &FilterService{repo: repo, cache: cache, logger: logger}
}

// SaveFilter normalizes and upserts a saved filter by name.
func (s *FilterService) SaveFilter(ctx context.Context, req dto.SavedFilterRequest) (*model.SavedFilter, bool, error) {
	sf := &model.SavedFilter{
		Name:      req.Name,
		Query:     req.Query,
		QueryMode: req.QueryMode,
		TagsAll:   query.NormalizeTags(req.TagsAll),
		TagsAny:   query.NormalizeTags(req.TagsAny),
		TagsNone:  query.NormalizeTags(req.TagsNone),
		TagsMatch: req.TagsMatch,
		From:      req.From,
		To:        req.To,
	}
	if err := query.NormalizeSaved(sf); err != nil {
		return nil, false, err
	}
	if err := utils.ValidateStruct(sf); err != nil {
		return nil, false, err
	}

	created, err := s.repo.UpsertFilter(ctx, sf)
	if err != nil {
		return nil, false, err
	}
	s.invalidate(ctx, sf.ID)
	return sf, created, nil
}

// GetFilter resolves a saved filter, consulting the cache first. Cache
// failures fall back to the store.
func (s *FilterService) GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error) {
	if s.cache != nil {
		sf, err := s.cache.GetFilter(ctx, id)
		switch {
		case err != nil:
			utils.TrackFilterCache("error")
			s.logger.Warn("saved filter cache read failed", zap.Int64("filter_id", id), zap.Error(err))
		case sf != nil:
			utils.TrackFilterCache("hit")
			return sf, nil
		default:
			utils.TrackFilterCache("miss")
		}
	}

	sf, err := s.repo.GetFilter(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFilter(ctx, sf); err != nil {
			s.logger.Warn("saved filter cache write failed", zap.Int64("filter_id", id), zap.Error(err))
		}
	}
	return sf, nil
}

func (s *FilterService) ListFilters(ctx context.Context) ([]model.SavedFilter, error) {
	return s.repo.ListFilters(ctx)
}

func (s *FilterService) DeleteFilter(ctx context.Context, id int64) error {
	if err := s.repo.DeleteFilter(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *FilterService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFilter(ctx, id); err != nil {
		s.logger.Warn("saved filter cache invalidation failed", zap.Int64("filter_id", id), zap.Error(err))
	}
}
