// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recommend

import "errors"

var (
	// ErrNilMovie is returned when a score is requested without a movie.
	ErrNilMovie = errors.New("recommend: movie is nil")

	// ErrNonFinite is returned when an intermediate value is NaN or infinite.
	ErrNonFinite = errors.New("recommend: non-finite value")
)
