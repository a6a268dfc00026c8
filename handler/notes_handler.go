package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/dto"
	"notesvc/middleware"
	"notesvc/model"
	"notesvc/utils"
)

const (
	HeaderNextCursor   = "X-Next-Cursor"
	HeaderRankDisabled = "X-Rank-Disabled"
	rankDisabledReason = "query-too-short"
)

type NotesUsecase interface {
	CreateNote(ctx context.Context, req dto.NoteRequest) (*model.Note, error)
	UpdateNote(ctx context.Context, id int64, req dto.NotePatchRequest) (*model.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	ListNotes(ctx context.Context, params url.Values) (*dto.NotesPage, error)
	CountNotes(ctx context.Context, params url.Values) (int64, error)
	ExportNotes(ctx context.Context, params url.Values) (*dto.Export, error)
}

type NotesHandler struct {
	notes          NotesUsecase
	exportLocation *time.Location
	logger         *zap.Logger
	now            func() time.Time
}

func NewNotesHandler(notes NotesUsecase, exportLocation *time.Location, logger *zap.Logger) *NotesHandler {
	if exportLocation == nil {
		exportLocation = time.UTC
	}
	return &NotesHandler{
		notes:          notes,
		exportLocation: exportLocation,
		logger:         logger,
		now:            time.Now,
	}
}

// ListNotes writes a page of notes. When filters were applied and nothing
// matched, the body explains the request instead of being a bare array.
func (h *NotesHandler) ListNotes(c *gin.Context) {
	page, err := h.notes.ListNotes(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}

	if page.NextCursor != "" {
		c.Header(HeaderNextCursor, page.NextCursor)
	}
	if page.RankDisabled {
		c.Header(HeaderRankDisabled, rankDisabledReason)
	}

	if len(page.Notes) == 0 && page.Plan.Options().Filter.Active() {
		c.JSON(http.StatusOK, dto.NewEmptyResult(page.Plan))
		return
	}
	c.JSON(http.StatusOK, page.Notes)
}

func (h *NotesHandler) CountNotes(c *gin.Context) {
	total, err := h.notes.CountNotes(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Total: total})
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req dto.NoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notes.CreateNote(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var req dto.NotePatchRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notes.UpdateNote(c.Request.Context(), middleware.PathID(c), req)
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	if err := h.notes.DeleteNote(c.Request.Context(), middleware.PathID(c)); err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindJSON decodes the body into v and answers 400 or 413 on failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, &utils.Response{
				Status: http.StatusRequestEntityTooLarge,
				Error:  "request body too large",
			})
			return false
		}
		utils.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}
