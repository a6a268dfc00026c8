package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"notesvc/config"
	"notesvc/handler"
	"notesvc/middleware"
	"notesvc/services"
)

type routerDeps struct {
	notes   handler.NotesUsecase
	filters handler.FiltersUsecase
	db      handler.Database
	keys    *services.AccessKeys
}

func setupRouter(cfg *config.Config, deps routerDeps, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeaders())

	status := handler.NewStatusHandler(deps.db, logger)
	notes := handler.NewNotesHandler(deps.notes, cfg.ExportLocation, logger)
	filters := handler.NewFiltersHandler(deps.filters, logger)

	// Public routes (no authentication required)
	router.GET("/health", status.Health)
	router.GET("/status", status.Status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	read := middleware.RequireTier(deps.keys, services.TierRead)
	export := middleware.RequireTier(deps.keys, services.TierExport)
	admin := middleware.RequireTier(deps.keys, services.TierAdmin)
	validID := middleware.ValidateIDParam()

	api := router.Group("/")
	api.Use(middleware.CacheControlMiddleware("no-store"))
	api.Use(middleware.RequestSizeLimiter(cfg.MaxBodyBytes))
	{
		api.GET("/notes", read, notes.ListNotes)
		api.GET("/notes/count", read, notes.CountNotes)
		api.GET("/notes/export", export, notes.ExportNotes)
		api.POST("/notes", admin, notes.CreateNote)
		api.PATCH("/notes/:id", admin, validID, notes.UpdateNote)
		api.DELETE("/notes/:id", admin, validID, notes.DeleteNote)

		api.GET("/filters", read, filters.ListFilters)
		api.GET("/filters/:id", read, validID, filters.GetFilter)
		api.PUT("/filters", admin, filters.SaveFilter)
		api.DELETE("/filters/:id", admin, validID, filters.DeleteFilter)
	}

	return router
}
