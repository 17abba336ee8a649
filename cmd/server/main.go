// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package main is the entry point for the movie rating service.
//
// Startup order:
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Logging
//  3. DuckDB store
//  4. Scoring engine and recompute job
//  5. Event pipeline (NATS JetStream or in-process channel, optional WAL)
//  6. TMDB client, authentication, authorization
//  7. HTTP router
//  8. Supervisor tree (blocks until SIGINT/SIGTERM)
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/api"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/authz"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/database"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recompute"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/supervisor"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/supervisor/services"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/tmdb"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/websocket"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Bool("nats", cfg.NATS.Enabled).
		Bool("wal", cfg.WAL.Enabled).
		Msg("Starting movie rating service")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Str("path", cfg.Database.Path).Msg("Database ready")

	engine, err := recommend.NewEngine(buildEngineConfig(&cfg.Recommend), db, db, logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("initialize scoring engine: %w", err)
	}
	job := recompute.NewJob(db, db, db, logging.WithComponent("recompute"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub()

	events, err := initEvents(ctx, cfg, job, hub)
	if err != nil {
		return fmt.Errorf("initialize event pipeline: %w", err)
	}
	defer events.Close()

	catalog, err := tmdb.NewClient(&cfg.TMDB)
	if err != nil {
		return fmt.Errorf("initialize TMDB client: %w", err)
	}

	authMW, err := initAuth(&cfg.Security)
	if err != nil {
		return err
	}

	enforcer, err := authz.NewEnforcer(authz.DefaultEnforcerConfig())
	if err != nil {
		return fmt.Errorf("initialize authorization: %w", err)
	}

	handler, err := api.NewHandler(cfg, &api.Dependencies{
		Catalog:   catalog,
		Store:     db,
		Scorer:    engine,
		Publisher: events.publisher,
		Job:       job,
		Notifier:  hub,
		Auth:      authMW,
		Authz:     authz.NewMiddleware(enforcer),
		WebSocket: websocket.NewHandler(hub, cfg.Security.CORSOrigins),
	})
	if err != nil {
		return fmt.Errorf("initialize API handler: %w", err)
	}

	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, chiMW).SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	if cfg.Server.ShutdownTimeout > 0 {
		treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	}
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)

	if events.retryLoop != nil {
		tree.AddDataService(events.retryLoop)
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(events.router)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree starting")

	err = tree.Serve(ctx)
	if report, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}

// initAuth builds the authentication middleware. In auth mode "none" no
// validator is created and every request is anonymous.
func initAuth(cfg *config.SecurityConfig) (*auth.Middleware, error) {
	if cfg.AuthMode == auth.AuthModeNone {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  Ratings, preferences and recompute requests will be rejected.")
		logging.Warn().Msg("============================================================")
		return auth.NewMiddleware(nil, cfg.AuthMode), nil
	}

	jwtManager, err := auth.NewJWTManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize JWT manager: %w", err)
	}
	logging.Info().Str("issuer", cfg.JWTIssuer).Msg("JWT authentication enabled")
	return auth.NewMiddleware(jwtManager, cfg.AuthMode), nil
}
