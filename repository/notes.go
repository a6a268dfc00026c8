package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"notesvc/apperror"
	"notesvc/model"
	"notesvc/query"
	"notesvc/utils"
)

const noteReturning = "RETURNING id, content, tags, created_at, updated_at"

var errNoteNotFound = apperror.ErrNotFound.WithMessage("note not found")

type NotesRepo struct {
	db *Database
}

func NewNotesRepo(db *Database) *NotesRepo {
	return &NotesRepo{db: db}
}

// CreateNote inserts a normalized note and returns the stored row.
func (r *NotesRepo) CreateNote(ctx context.Context, in model.NoteInput) (*model.Note, error) {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	row := r.db.pool.QueryRow(ctx,
		"INSERT INTO notes (content, tags) VALUES ($1, $2) "+noteReturning,
		in.Content, nonNil(in.Tags))

	note, err := scanNote(row)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return note, nil
}

// UpdateNote sets the non-nil patch fields and bumps updated_at.
func (r *NotesRepo) UpdateNote(ctx context.Context, id int64, patch model.NotePatch) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	var b query.Builder
	var sets []string
	if patch.Content != nil {
		sets = append(sets, "content = "+b.Param(*patch.Content))
	}
	if patch.Tags != nil {
		sets = append(sets, "tags = "+b.Param(nonNil(*patch.Tags)))
	}
	sets = append(sets, "updated_at = now()")

	sql := "UPDATE notes SET " + strings.Join(sets, ", ") +
		" WHERE id = " + b.Param(id) + " " + noteReturning

	note, err := scanNote(r.db.pool.QueryRow(ctx, sql, b.Args()...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNoteNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return note, nil
}

func (r *NotesRepo) DeleteNote(ctx context.Context, id int64) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	tag, err := r.db.pool.Exec(ctx, "DELETE FROM notes WHERE id = $1", id)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return apperror.ErrDatabase.WithInternal(err)
	}
	if tag.RowsAffected() == 0 {
		return errNoteNotFound
	}
	return nil
}

// FindNotes runs the page query of plan. Rows carry a score when the plan
// is ranked.
func (r *NotesRepo) FindNotes(ctx context.Context, plan query.Plan) ([]model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	sql, args := plan.ListSQL()
	rows, err := r.db.pool.Query(ctx, sql, args...)
	if err != nil {
		utils.TrackError("database", "note_fetch_failed")
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0, plan.Limit())
	for rows.Next() {
		var n model.Note
		dest := []any{&n.ID, &n.Content, &n.Tags, &n.CreatedAt, &n.UpdatedAt}
		var score float64
		if plan.Ranked() {
			dest = append(dest, &score)
		}
		if err := rows.Scan(dest...); err != nil {
			utils.TrackError("database", "note_decode_failed")
			return nil, apperror.ErrDatabase.WithInternal(err)
		}
		if plan.Ranked() {
			n.Score = &score
		}
		if n.Tags == nil {
			n.Tags = []string{}
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		utils.TrackError("database", "note_fetch_failed")
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return notes, nil
}

// CountNotes counts every note the plan's filters match.
func (r *NotesRepo) CountNotes(ctx context.Context, plan query.Plan) (int64, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	sql, args := plan.CountSQL()
	var total int64
	if err := r.db.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		utils.TrackError("database", "note_count_failed")
		return 0, apperror.ErrDatabase.WithInternal(err)
	}
	return total, nil
}

func scanNote(row pgx.Row) (*model.Note, error) {
	var n model.Note
	if err := row.Scan(&n.ID, &n.Content, &n.Tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
