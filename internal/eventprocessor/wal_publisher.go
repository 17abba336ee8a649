// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import (
	"context"
	"fmt"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/wal"
)

// RatingPublisher publishes rating-submitted events.
type RatingPublisher interface {
	PublishRating(ctx context.Context, event *RatingSubmitted) error
}

// WALPublisher persists each event to the WAL before publishing it:
//  1. write the event to the WAL
//  2. publish
//  3. on success confirm the entry; on failure leave it for the retry loop
type WALPublisher struct {
	inner RatingPublisher
	wal   *wal.BadgerWAL
}

// NewWALPublisher wraps inner with WAL durability.
func NewWALPublisher(inner RatingPublisher, w *wal.BadgerWAL) (*WALPublisher, error) {
	if inner == nil {
		return nil, ErrNilPublisher
	}
	if w == nil {
		return nil, fmt.Errorf("%w: WAL required", ErrInvalidConfig)
	}
	return &WALPublisher{inner: inner, wal: w}, nil
}

// PublishRating implements RatingPublisher. A publish failure after a
// successful WAL write is not an error: the entry will be retried.
func (p *WALPublisher) PublishRating(ctx context.Context, event *RatingSubmitted) error {
	if err := event.Validate(); err != nil {
		return err
	}

	entryID, err := p.wal.Write(ctx, event)
	if err != nil {
		logging.Error().Err(err).Str("event_id", event.EventID).Msg("WAL write failed, publishing directly")
		return p.inner.PublishRating(ctx, event)
	}

	if err := p.inner.PublishRating(ctx, event); err != nil {
		logging.Warn().
			Err(err).
			Str("event_id", event.EventID).
			Str("wal_entry_id", entryID).
			Msg("publish failed, entry will be retried")
		return nil
	}

	if err := p.wal.Confirm(ctx, entryID); err != nil {
		logging.Warn().Err(err).Str("wal_entry_id", entryID).Msg("WAL confirm failed")
	}
	return nil
}

// RetryPublisher returns the wal.Publisher used by the retry loop.
func (p *WALPublisher) RetryPublisher() wal.Publisher {
	return wal.PublisherFunc(func(ctx context.Context, entry *wal.Entry) error {
		var event RatingSubmitted
		if err := entry.UnmarshalPayload(&event); err != nil {
			return fmt.Errorf("decode WAL entry %s: %w", entry.ID, err)
		}
		return p.inner.PublishRating(ctx, &event)
	})
}
