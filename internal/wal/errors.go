// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package wal

import "errors"

var (
	// ErrWALClosed is returned for operations on a closed WAL.
	ErrWALClosed = errors.New("wal: closed")

	// ErrNilEvent is returned when Write is called with a nil event.
	ErrNilEvent = errors.New("wal: nil event")

	// ErrEmptyEntryID is returned when an entry id is required but empty.
	ErrEmptyEntryID = errors.New("wal: empty entry id")

	// ErrEntryNotFound is returned when a pending entry does not exist.
	ErrEntryNotFound = errors.New("wal: entry not found")
)
