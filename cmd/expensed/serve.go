package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsevents "github.com/SscSPs/expense_tracker/internal/core/ports/events"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/events"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories/store"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Running database migrations...", slog.String("database_url", store.Redact(cfg.DatabaseURL)))
	if err := store.Migrate(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	st, err := store.Open(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	logger.Info("Database connection established.", slog.String("backend", string(st.Backend)))

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, cfg.PosthogIDSalt, logger)
	defer posthogClient.Close()

	writeLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	container := services.NewServiceContainer(st.Repos, publisher)
	router, err := newRouter(cfg, logger, container, posthogClient, writeLimiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}

// newPublisher connects to the broker when AMQP_URL is set. A broker that
// cannot be reached at startup disables events instead of failing the server.
func newPublisher(cfg *config.Config, logger *slog.Logger) (portsevents.Publisher, func()) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL is empty, expense events disabled")
		return portsevents.NoopPublisher{}, func() {}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Error("Failed to connect to AMQP broker, expense events disabled", slog.String("error", err.Error()))
		return portsevents.NoopPublisher{}, func() {}
	}
	logger.Info("Publishing expense events", slog.String("exchange", cfg.AMQPExchange))
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Warn("Failed to close AMQP publisher", slog.String("error", err.Error()))
		}
	}
}

// newRouter assembles the gin engine with global middleware and routes.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	container *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
	writeLimiter *limiter.Limiter,
) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container, middleware.RateLimit(writeLimiter))
	return r, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowsAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return c
}
