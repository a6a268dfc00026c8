package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/model"
	"notesvc/utils"
)

// Database is what the status endpoint needs from storage.
type Database interface {
	Ping(ctx context.Context) error
	Stats() model.DBStatus
}

type StatusHandler struct {
	db        Database
	startedAt time.Time
	logger    *zap.Logger
}

func NewStatusHandler(db Database, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{db: db, startedAt: time.Now(), logger: logger}
}

// Health is the liveness probe; it never touches storage.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Status reports storage connectivity, pool usage and host load. It
// answers 503 when the database does not respond.
func (h *StatusHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	db := h.db.Stats()
	start := time.Now()
	err := h.db.Ping(ctx)
	db.LatencyMillis = float64(time.Since(start).Microseconds()) / 1000
	db.Reachable = err == nil
	if err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		utils.TrackError("database", "ping_failed")
		db.Error = "unreachable"
	}

	status := model.ServiceStatus{
		OK:        db.Reachable,
		Database:  db,
		System:    utils.GetSystemStats(ctx, h.logger),
		StartedAt: h.startedAt,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
	}

	code := http.StatusOK
	if !status.OK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
