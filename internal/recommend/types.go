// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recommend

import (
	"context"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// RatingReader provides read access to user ratings. It is typically
// implemented by the database layer.
type RatingReader interface {
	// RatingsByUser returns every rating the user has made.
	RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error)

	// RatingsExcludingUser returns every rating made by anyone but userID.
	RatingsExcludingUser(ctx context.Context, userID string) ([]models.Rating, error)

	// RatingsByMovie returns the ratings of movieID made by the given users.
	// An empty userIDs slice returns all ratings of the movie.
	RatingsByMovie(ctx context.Context, movieID int, userIDs []string) ([]models.Rating, error)
}

// RatingStore adds writes to RatingReader.
type RatingStore interface {
	RatingReader

	// UpsertRating stores a rating, replacing any previous rating the user
	// gave the same movie.
	UpsertRating(ctx context.Context, rating *models.Rating) error
}

// MLScoreStore provides the persisted machine-generated score of a movie.
//
// Score returns the user's own score for the movie when one exists,
// otherwise the most recent score for the movie. ok is false when there is
// no score at all.
type MLScoreStore interface {
	Score(ctx context.Context, movieID int, userID string) (score float64, ok bool, err error)
}

// Stats are cumulative engine counters.
type Stats struct {
	// Scored is the number of ScoreMovie calls that produced a full score.
	Scored int64 `json:"scored"`

	// Fallbacks is the number of ScoreMovie calls that returned the
	// catalog-rating fallback.
	Fallbacks int64 `json:"fallbacks"`

	// StoreTimeouts is the number of store reads that timed out and were
	// treated as missing data.
	StoreTimeouts int64 `json:"store_timeouts"`

	// Ranked is the number of EnhanceRecommendations calls.
	Ranked int64 `json:"ranked"`
}
