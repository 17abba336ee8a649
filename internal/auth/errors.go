// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package auth

import "errors"

var (
	// ErrMissingToken is returned when a request carries no token.
	ErrMissingToken = errors.New("missing token")

	// ErrMalformedHeader is returned for an Authorization header that is
	// not a bearer token.
	ErrMalformedHeader = errors.New("invalid authorization header")

	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject is returned for a valid token without a subject.
	ErrMissingSubject = errors.New("token has no subject")
)
