package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/snakearcade-go/internal/api"
	"github.com/mcoot/snakearcade-go/internal/config"
	"github.com/mcoot/snakearcade-go/internal/factory"
	"github.com/mcoot/snakearcade-go/internal/seed"
	"github.com/mcoot/snakearcade-go/internal/services/presence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:       logger,
		StorageType:  cfg.StorageType,
		SQLitePath:   cfg.SQLitePath,
		PresenceType: cfg.PresenceType,
		TokenSecret:  []byte(cfg.TokenSecret),
		TokenTTL:     cfg.TokenTTL,
	}

	if cfg.PresenceType == factory.PresenceTypeRedis {
		redisCfg := presence.DefaultRedisConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	if cfg.Seed {
		if err := seed.Apply(context.Background(), app); err != nil {
			logger.Warn("could not load seed data", slog.String("error", err.Error()))
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		IdentityService:    app.IdentityService,
		LeaderboardService: app.LeaderboardService,
		PresenceService:    app.PresenceService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
