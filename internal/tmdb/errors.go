// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the catalog has no such movie.
	ErrNotFound = errors.New("tmdb: not found")

	// ErrUnauthorized is returned when the API key is missing or rejected.
	ErrUnauthorized = errors.New("tmdb: unauthorized")

	// ErrRateLimited is returned when 429 responses persist after all retries.
	ErrRateLimited = errors.New("tmdb: rate limited")

	// ErrInvalidArgument is returned for empty queries and non-positive ids.
	ErrInvalidArgument = errors.New("tmdb: invalid argument")
)

// StatusError reports an unexpected HTTP status from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d: %s", e.StatusCode, e.Body)
}
