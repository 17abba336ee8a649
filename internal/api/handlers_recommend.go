// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/authz"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recompute"
)

const generateTimeout = 10 * time.Second

// GenerateRequest is the body of POST /api/v1/recommendations/generate.
// UserID defaults to the caller; naming another user requires the
// recommendations:generate_any permission.
type GenerateRequest struct {
	UserID  string `json:"userId" validate:"omitempty,userid"`
	MovieID int    `json:"movieId" validate:"required,gt=0"`
}

// GenerateRecommendation handles POST /api/v1/recommendations/generate
//
// Runs the recompute job synchronously and notifies connected clients.
func (h *Handler) GenerateRecommendation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.job == nil {
		respondError(w, http.StatusServiceUnavailable, CodeUnavailable, "Recompute is not available", nil)
		return
	}

	var req GenerateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidJSON, "Invalid request body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	caller := auth.UserIDFromContext(r.Context())
	if req.UserID == "" {
		req.UserID = caller
	}
	if req.UserID != caller && !h.authz.Can(r, authz.PermRecommendationsGenerateAny) {
		respondError(w, http.StatusForbidden, CodeForbidden, "Cannot generate recommendations for another user", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	rec, err := h.job.Run(ctx, req.UserID, req.MovieID)
	if err != nil {
		if errors.Is(err, recompute.ErrInvalidRequest) {
			respondError(w, http.StatusBadRequest, CodeRecompute, err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, CodeRecompute, "Failed to generate recommendation", err)
		return
	}

	if h.notifier != nil {
		h.notifier.BroadcastRecommendationUpdated(rec.MovieID, rec.UserID, rec.Score)
	}
	respondData(w, rec, start)
}
