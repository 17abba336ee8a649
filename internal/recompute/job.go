// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recompute

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/database"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Policy constants.
const (
	BaseScore       = 0.5
	RatingWeight    = 0.3
	PreferenceBonus = 0.1
)

// ErrInvalidRequest is returned for an empty user id or a non-positive
// movie id.
var ErrInvalidRequest = errors.New("recompute: user id and movie id are required")

// RatingSource reads a user's rating history.
type RatingSource interface {
	RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error)
}

// PreferenceSource reads a user's preferences. A missing row is reported
// as database.ErrNotFound.
type PreferenceSource interface {
	Preferences(ctx context.Context, userID string) (*models.UserPreferences, error)
}

// ScoreWriter persists the computed score.
type ScoreWriter interface {
	UpsertMLScore(ctx context.Context, rec *models.MLRecommendation) error
}

// Job recomputes ML scores.
type Job struct {
	ratings RatingSource
	prefs   PreferenceSource
	writer  ScoreWriter
	logger  zerolog.Logger
}

// NewJob creates a recompute job.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewJob(ratings RatingSource, prefs PreferenceSource, writer ScoreWriter, logger zerolog.Logger) *Job {
	return &Job{
		ratings: ratings,
		prefs:   prefs,
		writer:  writer,
		logger:  logger.With().Str("component", "recompute").Logger(),
	}
}

// Compute applies the scoring policy to a rating history and preferences.
// prefs may be nil.
func Compute(ratings []models.Rating, prefs *models.UserPreferences) float64 {
	score := BaseScore

	var sum float64
	var n int
	for i := range ratings {
		r := ratings[i].Rating
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		sum += r
		n++
	}
	if n > 0 {
		score += sum / float64(n) / models.MaxRating * RatingWeight
	}

	if prefs != nil && len(prefs.FavoriteGenres) > 0 {
		score += PreferenceBonus
	}

	return math.Max(0, math.Min(1, score))
}

// Run recomputes and stores the score of (userID, movieID).
func (j *Job) Run(ctx context.Context, userID string, movieID int) (rec *models.MLRecommendation, err error) {
	defer func() { metrics.RecordRecomputeJob(err) }()

	if userID == "" || movieID <= 0 {
		return nil, ErrInvalidRequest
	}

	ratings, err := j.ratings.RatingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	prefs, err := j.prefs.Preferences(ctx, userID)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("load preferences: %w", err)
		}
		prefs = nil
	}

	rec = &models.MLRecommendation{
		UserID:    userID,
		MovieID:   movieID,
		Score:     Compute(ratings, prefs),
		UpdatedAt: time.Now().UTC(),
	}
	if err = j.writer.UpsertMLScore(ctx, rec); err != nil {
		return nil, fmt.Errorf("store score: %w", err)
	}

	j.logger.Debug().
		Str("user_id", userID).
		Int("movie_id", movieID).
		Float64("score", rec.Score).
		Int("ratings", len(ratings)).
		Msg("ML score recomputed")
	return rec, nil
}
