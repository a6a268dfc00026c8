package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"notesvc/apperror"
	"notesvc/model"
	"notesvc/utils"
)

const filterColumns = "id, name, q, q_mode, tags_all, tags_any, tags_none, tags_match, date_from, date_to, created_at, updated_at"

var errFilterNotFound = apperror.ErrNotFound.WithMessage("saved filter not found")

type FiltersRepo struct {
	db *Database
}

func NewFiltersRepo(db *Database) *FiltersRepo {
	return &FiltersRepo{db: db}
}

// UpsertFilter stores sf under its name, replacing an existing filter of the
// same name. created reports whether a new row was inserted.
func (r *FiltersRepo) UpsertFilter(ctx context.Context, sf *model.SavedFilter) (created bool, err error) {
	timer := utils.TrackDBOperation("upsert", "saved_filters")
	defer timer.ObserveDuration()

	err = r.db.pool.QueryRow(ctx, `
		INSERT INTO saved_filters (name, q, q_mode, tags_all, tags_any, tags_none, tags_match, date_from, date_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE SET
			q = EXCLUDED.q,
			q_mode = EXCLUDED.q_mode,
			tags_all = EXCLUDED.tags_all,
			tags_any = EXCLUDED.tags_any,
			tags_none = EXCLUDED.tags_none,
			tags_match = EXCLUDED.tags_match,
			date_from = EXCLUDED.date_from,
			date_to = EXCLUDED.date_to,
			updated_at = now()
		RETURNING id, created_at, updated_at, (xmax = 0)`,
		sf.Name, sf.Query, sf.QueryMode,
		nonNil(sf.TagsAll), nonNil(sf.TagsAny), nonNil(sf.TagsNone),
		sf.TagsMatch, sf.From, sf.To,
	).Scan(&sf.ID, &sf.CreatedAt, &sf.UpdatedAt, &created)
	if err != nil {
		utils.TrackError("database", "filter_upsert_failed")
		return false, apperror.ErrDatabase.WithInternal(err)
	}
	return created, nil
}

func (r *FiltersRepo) GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error) {
	timer := utils.TrackDBOperation("find", "saved_filters")
	defer timer.ObserveDuration()

	sf, err := scanFilter(r.db.pool.QueryRow(ctx,
		"SELECT "+filterColumns+" FROM saved_filters WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errFilterNotFound
		}
		utils.TrackError("database", "filter_fetch_failed")
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return sf, nil
}

func (r *FiltersRepo) ListFilters(ctx context.Context) ([]model.SavedFilter, error) {
	timer := utils.TrackDBOperation("find", "saved_filters")
	defer timer.ObserveDuration()

	rows, err := r.db.pool.Query(ctx, "SELECT "+filterColumns+" FROM saved_filters ORDER BY name")
	if err != nil {
		utils.TrackError("database", "filter_fetch_failed")
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	defer rows.Close()

	filters := []model.SavedFilter{}
	for rows.Next() {
		sf, err := scanFilter(rows)
		if err != nil {
			utils.TrackError("database", "filter_decode_failed")
			return nil, apperror.ErrDatabase.WithInternal(err)
		}
		filters = append(filters, *sf)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return filters, nil
}

func (r *FiltersRepo) DeleteFilter(ctx context.Context, id int64) error {
	timer := utils.TrackDBOperation("delete", "saved_filters")
	defer timer.ObserveDuration()

	tag, err := r.db.pool.Exec(ctx, "DELETE FROM saved_filters WHERE id = $1", id)
	if err != nil {
		utils.TrackError("database", "filter_deletion_failed")
		return apperror.ErrDatabase.WithInternal(err)
	}
	if tag.RowsAffected() == 0 {
		return errFilterNotFound
	}
	return nil
}

func scanFilter(row pgx.Row) (*model.SavedFilter, error) {
	var sf model.SavedFilter
	err := row.Scan(&sf.ID, &sf.Name, &sf.Query, &sf.QueryMode,
		&sf.TagsAll, &sf.TagsAny, &sf.TagsNone, &sf.TagsMatch,
		&sf.From, &sf.To, &sf.CreatedAt, &sf.UpdatedAt)
	if err != nil {
		return nil, err
	}
	sf.TagsAll, sf.TagsAny, sf.TagsNone = nonNil(sf.TagsAll), nonNil(sf.TagsAny), nonNil(sf.TagsNone)
	return &sf, nil
}
