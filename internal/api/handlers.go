// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/authz"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/eventprocessor"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Catalog is the movie metadata source (TMDB in production).
type Catalog interface {
	Trending(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error)
	Recommendations(ctx context.Context, movieID int) ([]models.Movie, error)
}

// Store is the subset of the database used by the handlers.
type Store interface {
	Ping(ctx context.Context) error
	UpsertRating(ctx context.Context, r *models.Rating) error
	ReviewsByMovie(ctx context.Context, movieID int) ([]models.Review, error)
	UpsertPreferences(ctx context.Context, prefs *models.UserPreferences) error
}

// Scorer computes composite scores and re-ranks candidates.
type Scorer interface {
	ScoreMovie(ctx context.Context, movie *models.Movie, reviews []models.Review, userID string) models.MovieScore
	EnhanceRecommendations(ref *models.MovieDetails, candidates []models.Movie, reviews []models.Review) []models.Movie
}

// Recomputer refreshes a user's ML score for a movie.
type Recomputer interface {
	Run(ctx context.Context, userID string, movieID int) (*models.MLRecommendation, error)
}

// Notifier pushes change notifications to connected clients.
type Notifier interface {
	BroadcastRecommendationUpdated(movieID int, userID string, score float64)
}

// Dependencies bundles the collaborators of Handler. Catalog, Store and
// Scorer are required. A nil Publisher skips the recompute event after a
// rating is stored; a nil Notifier skips notifications.
type Dependencies struct {
	Catalog   Catalog
	Store     Store
	Scorer    Scorer
	Publisher eventprocessor.RatingPublisher
	Job       Recomputer
	Notifier  Notifier
	Auth      *auth.Middleware
	Authz     *authz.Middleware
	WebSocket http.Handler
}

// Handler serves the HTTP endpoints.
type Handler struct {
	catalog   Catalog
	store     Store
	scorer    Scorer
	publisher eventprocessor.RatingPublisher
	job       Recomputer
	notifier  Notifier
	auth      *auth.Middleware
	authz     *authz.Middleware
	ws        http.Handler
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler.
func NewHandler(cfg *config.Config, deps *Dependencies) (*Handler, error) {
	if cfg == nil || deps == nil {
		return nil, fmt.Errorf("%w: config and dependencies are required", ErrNilDependency)
	}
	if deps.Catalog == nil || deps.Store == nil || deps.Scorer == nil {
		return nil, fmt.Errorf("%w: catalog, store and scorer are required", ErrNilDependency)
	}
	if deps.Auth == nil || deps.Authz == nil {
		return nil, fmt.Errorf("%w: auth and authz middleware are required", ErrNilDependency)
	}

	return &Handler{
		catalog:   deps.Catalog,
		store:     deps.Store,
		scorer:    deps.Scorer,
		publisher: deps.Publisher,
		job:       deps.Job,
		notifier:  deps.Notifier,
		auth:      deps.Auth,
		authz:     deps.Authz,
		ws:        deps.WebSocket,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}
