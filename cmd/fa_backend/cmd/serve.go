package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/SscSPs/fin_automation_app/internal/core/services"
	"github.com/SscSPs/fin_automation_app/internal/handlers"
	"github.com/SscSPs/fin_automation_app/internal/middleware"
	"github.com/SscSPs/fin_automation_app/internal/platform/chart"
	"github.com/SscSPs/fin_automation_app/internal/platform/config"
	"github.com/SscSPs/fin_automation_app/internal/repositories"
	"github.com/SscSPs/fin_automation_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, slog.Default())
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, closeRepos, err := repositories.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open ledger store", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		return err
	}
	defer closeRepos()

	def, err := chart.Load(cfg.ChartFile)
	if err != nil {
		logger.Error("Failed to load chart of accounts", slog.String("error", err.Error()))
		return err
	}

	svc := services.NewServiceContainer(repos)
	if err := svc.Account.InitializeChart(ctx, def); err != nil {
		logger.Error("Failed to initialize chart of accounts", slog.String("error", err.Error()))
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := newRouter(cfg, svc, logger, posthogClient)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StorageBackend))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newRouter builds the gin engine with global middleware and every route.
func newRouter(cfg *config.Config, svc *portssvc.ServiceContainer, logger *slog.Logger, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	r := gin.New()

	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowsAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return nil, err
	}

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		return nil, err
	}

	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	handlers.RegisterRoutes(r, svc, middleware.RateLimit(limiterInstance))
	return r, nil
}
