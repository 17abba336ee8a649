// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import "errors"

var (
	// ErrPublisherClosed is returned when publishing on a closed publisher.
	ErrPublisherClosed = errors.New("publisher is closed")

	// ErrNilPublisher is returned when a required publisher is nil.
	ErrNilPublisher = errors.New("publisher cannot be nil")

	// ErrInvalidEvent is returned for events that fail validation.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrInvalidConfig is returned when configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)
