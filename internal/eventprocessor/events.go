// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Topics
const (
	TopicRatingSubmitted = "ratings.submitted"
	TopicRatingsAll      = "ratings.>"
)

// SchemaVersion is the current event schema version.
const SchemaVersion = 1

// RatingSubmitted is published after a rating is stored.
type RatingSubmitted struct {
	SchemaVersion int       `json:"schema_version,omitempty"`
	EventID       string    `json:"event_id"`
	UserID        string    `json:"userId"`
	MovieID       int       `json:"movieId"`
	Rating        float64   `json:"rating"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// NewRatingSubmitted builds an event for a stored rating.
func NewRatingSubmitted(r *models.Rating) *RatingSubmitted {
	at := r.UpdatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return &RatingSubmitted{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		UserID:        r.UserID,
		MovieID:       r.MovieID,
		Rating:        r.Rating,
		SubmittedAt:   at,
	}
}

// Validate checks required fields.
func (e *RatingSubmitted) Validate() error {
	switch {
	case e.EventID == "":
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	case e.UserID == "":
		return fmt.Errorf("%w: userId is required", ErrInvalidEvent)
	case e.MovieID <= 0:
		return fmt.Errorf("%w: movieId must be positive, got %d", ErrInvalidEvent, e.MovieID)
	case math.IsNaN(e.Rating) || e.Rating < models.MinRating || e.Rating > models.MaxRating:
		return fmt.Errorf("%w: rating must be within [%v, %v], got %v", ErrInvalidEvent, models.MinRating, models.MaxRating, e.Rating)
	}
	return nil
}
