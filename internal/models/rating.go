// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating scale bounds shared by validation and scoring.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// Rating is one row of the rating store. A user has at most one rating per
// movie; a new submission replaces the previous one.
type Rating struct {
	UserID    string    `json:"userId"`
	MovieID   int       `json:"movieId"`
	Rating    float64   `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Review is a transient view of a rating used for sentiment aggregation.
type Review struct {
	ID        string    `json:"id"`
	MovieID   int       `json:"movieId"`
	UserID    string    `json:"userId"`
	Rating    float64   `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewFromRating builds a Review from a stored rating row.
func ReviewFromRating(r *Rating) Review {
	created := r.UpdatedAt
	if created.IsZero() {
		created = r.CreatedAt
	}
	return Review{
		ID:        uuid.New().String(),
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Content:   r.Review,
		CreatedAt: created,
	}
}

// MovieScore is the computed, advisory score for a movie. It is never cached
// by the scoring engine; callers recompute on demand.
type MovieScore struct {
	Rating              float64 `json:"rating"`
	RecommendationScore int     `json:"recommendationScore"`
	TotalReviews        int     `json:"totalReviews"`
	SentimentScore      float64 `json:"sentimentScore"`
}

// UserPreferences holds a user's declared tastes.
type UserPreferences struct {
	UserID         string    `json:"userId"`
	FavoriteGenres []int     `json:"favoriteGenres"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MLRecommendation is a persisted machine-generated recommendation score in
// [0,1] for a (user, movie) pair.
type MLRecommendation struct {
	UserID    string    `json:"userId"`
	MovieID   int       `json:"movieId"`
	Score     float64   `json:"score"`
	UpdatedAt time.Time `json:"updatedAt"`
}
