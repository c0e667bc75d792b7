package main

import (
	"context"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kabsdesign/studio/pkg/api"
	"github.com/kabsdesign/studio/pkg/auth"
	"github.com/kabsdesign/studio/pkg/catalog"
	"github.com/kabsdesign/studio/pkg/config"
	"github.com/kabsdesign/studio/pkg/observability"
	"github.com/kabsdesign/studio/pkg/projects"
	"github.com/kabsdesign/studio/pkg/render"
	"github.com/kabsdesign/studio/pkg/storage/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		observability.NewLogger("info").WithError(err).Fatal("invalid configuration")
	}

	logger := observability.NewLogger(cfg.LogLevel)

	manager, err := postgres.NewConnectionManager(postgres.ConnectionConfig{
		DSN:         cfg.Database.DSN(),
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		Timeout:     cfg.Database.Timeout,
		MaxLifetime: cfg.Database.MaxLifetime,
		MaxIdleTime: cfg.Database.MaxIdleTime,
	})
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	db := manager.DB()

	if err := postgres.Migrate(context.Background(), db, logger); err != nil {
		logger.WithError(err).Fatal("schema migration failed")
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	leonardo := render.NewLeonardoClient(
		cfg.Images.LeonardoAPIURL, cfg.Images.LeonardoAPIKey, cfg.Images.LeonardoModelID)
	enhancer := render.NewGeminiEnhancer(
		cfg.Images.GeminiAPIKey, cfg.Images.GeminiModel, cfg.Images.EnhancerEnabled)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	server := api.NewServer(api.Dependencies{
		DB:          db,
		Logger:      logger,
		Metrics:     metrics,
		Tokens:      tokens,
		Auth:        auth.NewService(db, tokens, cfg.Auth.BcryptCost, logger),
		Projects:    projects.NewService(db, logger),
		Catalog:     catalog.NewSeededStore(),
		Render:      render.NewGateway(leonardo, enhancer, logger).WithRecorder(metrics),
		CORSOrigins: cfg.CORS.AllowedOrigins,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	// The write timeout covers CRUD traffic; image generation handlers
	// lift it per request through http.ResponseController.
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := observability.NewShutdownManager(logger, httpServer, cfg.Server.ShutdownTimeout)
	shutdown.RegisterShutdownFunc(func(context.Context) error {
		return manager.Close()
	})

	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	if err := shutdown.WaitForShutdown(); err != nil {
		os.Exit(1)
	}
}
