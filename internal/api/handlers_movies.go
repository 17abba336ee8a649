// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/validation"
)

// personalScoreConcurrency bounds concurrent ScoreMovie calls when
// personalizing a recommendation list.
const personalScoreConcurrency = 4

// TrendingMovies handles GET /api/v1/movies/trending
func (h *Handler) TrendingMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movies, err := h.catalog.Trending(r.Context())
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondData(w, movies, start)
}

// SearchMovies handles GET /api/v1/movies/search?query=
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if verr := validation.ValidateVar("query", query, "required,max=200"); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	movies, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondData(w, movies, start)
}

// MovieDetails handles GET /api/v1/movies/{id}
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := movieIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidMovieID, err.Error(), nil)
		return
	}

	details, err := h.catalog.MovieDetails(r.Context(), id)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondData(w, details, start)
}

// MovieScore handles GET /api/v1/movies/{id}/score
//
// The score uses the stored reviews of the movie and, when the request is
// authenticated, the caller's rating neighborhood and ML score.
func (h *Handler) MovieScore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := movieIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidMovieID, err.Error(), nil)
		return
	}

	ctx := r.Context()
	details, err := h.catalog.MovieDetails(ctx, id)
	if err != nil {
		respondCatalogError(w, err)
		return
	}

	reviews, err := h.store.ReviewsByMovie(ctx, id)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("movie_id", id).Msg("reviews unavailable, scoring without them")
		reviews = nil
	}

	score := h.scorer.ScoreMovie(ctx, &details.Movie, reviews, auth.UserIDFromContext(ctx))
	respondData(w, models.ScoredMovie{Movie: details.Movie, Score: &score}, start)
}

// MovieRecommendations handles GET /api/v1/movies/{id}/recommendations
//
// Candidates are ordered by similarity to the movie. For an authenticated
// caller each candidate's vote_average is replaced by its personal score
// rating, computed without reviews.
func (h *Handler) MovieRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := movieIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidMovieID, err.Error(), nil)
		return
	}

	ctx := r.Context()
	ref, err := h.catalog.MovieDetails(ctx, id)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	candidates, err := h.catalog.Recommendations(ctx, id)
	if err != nil {
		respondCatalogError(w, err)
		return
	}

	ranked := h.scorer.EnhanceRecommendations(ref, candidates, nil)
	out := make([]models.ScoredMovie, len(ranked))
	for i := range ranked {
		out[i].Movie = ranked[i]
	}

	if userID := auth.UserIDFromContext(ctx); userID != "" {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(personalScoreConcurrency)
		for i := range out {
			g.Go(func() error {
				score := h.scorer.ScoreMovie(gctx, &ranked[i], nil, userID)
				out[i].Score = &score
				out[i].VoteAverage = score.Rating
				return nil
			})
		}
		_ = g.Wait()
	}

	respondData(w, out, start)
}

// MovieReviews handles GET /api/v1/movies/{id}/reviews
func (h *Handler) MovieReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := movieIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidMovieID, err.Error(), nil)
		return
	}

	reviews, err := h.store.ReviewsByMovie(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeDatabase, "Failed to load reviews", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	respondData(w, reviews, start)
}
