package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"notesvc/repository"
	"notesvc/services"
	"notesvc/usecase"
)

var (
	migrateOnStart  bool
	shutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 15*time.Second, "grace period for in-flight requests")
}

func serve(ctx context.Context) error {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Access.Empty() {
		logger.Warn("no access keys configured; every authenticated route will answer 401")
	}

	db, err := repository.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateOnStart {
		if err := db.MigrateToLatest(ctx); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	var cache usecase.FilterCache
	if cfg.RedisURL != "" {
		fc, err := services.NewFilterCache(ctx, cfg.RedisURL, cfg.FilterCacheTTL)
		if err != nil {
			// the cache is an optimization; run without it
			logger.Warn("saved filter cache disabled", zap.Error(err))
		} else {
			defer fc.Close()
			cache = fc
		}
	}

	filters := usecase.NewFilterService(repository.NewFiltersRepo(db), cache, logger)
	notes := usecase.NewNotesService(repository.NewNotesRepo(db), filters, cfg.ListLimits, cfg.ExportLimits, logger)

	router := setupRouter(cfg, routerDeps{
		notes:   notes,
		filters: filters,
		db:      db,
		keys: services.NewAccessKeys(
			cfg.Access.ReadKey,
			cfg.Access.ExportKey,
			cfg.Access.AdminKey,
			cfg.Access.LegacyKey,
		),
	}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server shutdown complete")
	return nil
}
