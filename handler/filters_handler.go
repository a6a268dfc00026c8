package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/dto"
	"notesvc/middleware"
	"notesvc/model"
	"notesvc/utils"
)

type FiltersUsecase interface {
	SaveFilter(ctx context.Context, req dto.SavedFilterRequest) (*model.SavedFilter, bool, error)
	GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error)
	ListFilters(ctx context.Context) ([]model.SavedFilter, error)
	DeleteFilter(ctx context.Context, id int64) error
}

type FiltersHandler struct {
	filters FiltersUsecase
	logger  *zap.Logger
}

func NewFiltersHandler(filters FiltersUsecase, logger *zap.Logger) *FiltersHandler {
	return &FiltersHandler{filters: filters, logger: logger}
}

func (h *FiltersHandler) ListFilters(c *gin.Context) {
	filters, err := h.filters.ListFilters(c.Request.Context())
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SavedFiltersResponse{Filters: filters})
}

func (h *FiltersHandler) GetFilter(c *gin.Context) {
	sf, err := h.filters.GetFilter(c.Request.Context(), middleware.PathID(c))
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sf)
}

// SaveFilter creates or replaces the saved filter with the body's name.
func (h *FiltersHandler) SaveFilter(c *gin.Context) {
	var req dto.SavedFilterRequest
	if !bindJSON(c, &req) {
		return
	}

	sf, _, err := h.filters.SaveFilter(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sf)
}

func (h *FiltersHandler) DeleteFilter(c *gin.Context) {
	if err := h.filters.DeleteFilter(c.Request.Context(), middleware.PathID(c)); err != nil {
		utils.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
