// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import "errors"

// Error codes used in APIError.Code.
const (
	CodeInvalidMovieID  = "INVALID_MOVIE_ID"
	CodeInvalidJSON     = "INVALID_JSON"
	CodeNotFound        = "NOT_FOUND"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeUpstreamLimited = "UPSTREAM_RATE_LIMITED"
	CodeDatabase        = "DATABASE_ERROR"
	CodeRecompute       = "RECOMPUTE_ERROR"
	CodeForbidden       = "FORBIDDEN"
	CodeUnavailable     = "SERVICE_UNAVAILABLE"
)

var (
	// ErrNilDependency indicates NewHandler was called without a required
	// collaborator.
	ErrNilDependency = errors.New("api: required dependency is nil")

	// ErrInvalidMovieID indicates a path movie id that is not a positive
	// integer.
	ErrInvalidMovieID = errors.New("movie id must be a positive integer")
)
