// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"net/http"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/eventprocessor"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// RatingRequest is the body of POST /api/v1/movies/{id}/ratings.
type RatingRequest struct {
	Rating *float64 `json:"rating" validate:"required,finite,gte=0,lte=10"`
	Review string   `json:"review" validate:"max=5000"`
}

// RatingResponse reports the stored rating and whether a recompute event
// was accepted for delivery.
type RatingResponse struct {
	Rating          models.Rating `json:"rating"`
	RecomputeQueued bool          `json:"recomputeQueued"`
}

// PreferencesRequest is the body of PUT /api/v1/users/me/preferences.
// Request and response bodies use camelCase keys.
type PreferencesRequest struct {
	FavoriteGenres []int `json:"favoriteGenres" validate:"max=50,unique,dive,gt=0"`
}

// SubmitRating handles POST /api/v1/movies/{id}/ratings
//
// The rating replaces any earlier rating by the caller for the movie. A
// recompute event is published afterwards; a publish failure is logged and
// does not fail the request because the rating itself is stored.
func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidMovieID, err.Error(), nil)
		return
	}

	var req RatingRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidJSON, "Invalid request body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	ctx := r.Context()
	rating := &models.Rating{
		UserID:  auth.UserIDFromContext(ctx),
		MovieID: id,
		Rating:  *req.Rating,
		Review:  req.Review,
	}
	if err := h.store.UpsertRating(ctx, rating); err != nil {
		respondError(w, http.StatusInternalServerError, CodeDatabase, "Failed to store rating", err)
		return
	}

	queued := false
	if h.publisher != nil {
		if err := h.publisher.PublishRating(ctx, eventprocessor.NewRatingSubmitted(rating)); err != nil {
			logging.Ctx(ctx).Warn().Err(err).
				Int("movie_id", id).
				Msg("recompute event not published")
		} else {
			queued = true
		}
	}

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status:   "success",
		Data:     RatingResponse{Rating: *rating, RecomputeQueued: queued},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// UpdatePreferences handles PUT /api/v1/users/me/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PreferencesRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidJSON, "Invalid request body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	prefs := &models.UserPreferences{
		UserID:         auth.UserIDFromContext(r.Context()),
		FavoriteGenres: req.FavoriteGenres,
	}
	if prefs.FavoriteGenres == nil {
		prefs.FavoriteGenres = []int{}
	}
	if err := h.store.UpsertPreferences(r.Context(), prefs); err != nil {
		respondError(w, http.StatusInternalServerError, CodeDatabase, "Failed to store preferences", err)
		return
	}
	respondData(w, prefs, start)
}
