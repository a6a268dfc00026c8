package handler

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/dto"
	"notesvc/model"
	"notesvc/query"
	"notesvc/utils"
)

const (
	utf8BOM          = "\ufeff"
	exportTimeLayout = "2006-01-02 15:04:05"
	tagSeparator     = ";"
)

// ExportNotes streams the selected notes as a CSV download.
func (h *NotesHandler) ExportNotes(c *gin.Context) {
	export, err := h.notes.ExportNotes(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}

	if export.Plan.RankDisabled() {
		c.Header(HeaderRankDisabled, rankDisabledReason)
	}
	if next := export.Plan.NextCursor(export.Notes); next != "" {
		c.Header(HeaderNextCursor, next)
	}

	filename := "notes-" + h.now().In(h.exportLocation).Format("20060102-150405") + ".csv"
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := writeCSV(c.Writer, export, h.exportLocation); err != nil {
		// headers are gone; all that is left is to log
		h.logger.Error("csv export failed",
			zap.String("request_id", c.GetString(utils.RequestIDKey)),
			zap.Error(err),
		)
		utils.TrackError("export", "write_failed")
	}
}

func writeCSV(w io.Writer, export *dto.Export, loc *time.Location) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := make([]string, len(export.Columns))
	for i, col := range export.Columns {
		header[i] = string(col)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(export.Columns))
	for _, note := range export.Notes {
		for i, col := range export.Columns {
			record[i] = csvValue(note, col, loc)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvValue(n model.Note, col query.Column, loc *time.Location) string {
	switch col {
	case query.ColumnID:
		return strconv.FormatInt(n.ID, 10)
	case query.ColumnContent:
		return n.Content
	case query.ColumnTags:
		return strings.Join(n.Tags, tagSeparator)
	case query.ColumnCreatedAt:
		return n.CreatedAt.In(loc).Format(exportTimeLayout)
	case query.ColumnUpdatedAt:
		return n.UpdatedAt.In(loc).Format(exportTimeLayout)
	case query.ColumnRank:
		if n.Score == nil {
			return ""
		}
		return strconv.FormatFloat(*n.Score, 'f', 4, 64)
	default:
		return ""
	}
}
