// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package wal

import (
	"context"
	"math"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
)

const (
	maxBackoff     = 5 * time.Minute
	publishTimeout = 10 * time.Second
)

// Publisher republishes a pending entry.
type Publisher interface {
	PublishEntry(ctx context.Context, entry *Entry) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, entry *Entry) error

// PublishEntry calls f.
func (f PublisherFunc) PublishEntry(ctx context.Context, entry *Entry) error {
	return f(ctx, entry)
}

// RetryResult summarizes one retry pass.
type RetryResult struct {
	Succeeded  int
	Failed     int
	Expired    int
	MaxRetried int
	Skipped    int
}

// RetryLoop republishes pending entries on an interval. It implements
// suture.Service.
type RetryLoop struct {
	wal       *BadgerWAL
	publisher Publisher
	config    Config
	now       func() time.Time
}

// NewRetryLoop creates a retry loop.
func NewRetryLoop(w *BadgerWAL, publisher Publisher) *RetryLoop {
	return &RetryLoop{
		wal:       w,
		publisher: publisher,
		config:    w.Config(),
		now:       time.Now,
	}
}

// Serve runs a pass immediately, then one per RetryInterval until ctx is
// canceled.
func (r *RetryLoop) Serve(ctx context.Context) error {
	logging.Info().
		Dur("interval", r.config.RetryInterval).
		Int("max_retries", r.config.MaxRetries).
		Msg("WAL retry loop started")

	r.RetryPending(ctx)

	ticker := time.NewTicker(r.config.RetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info().Msg("WAL retry loop stopped")
			return ctx.Err()
		case <-ticker.C:
			r.RetryPending(ctx)
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (r *RetryLoop) String() string {
	return "wal-retry-loop"
}

// RetryPending makes one pass over the pending entries.
func (r *RetryLoop) RetryPending(ctx context.Context) RetryResult {
	var result RetryResult

	entries, err := r.wal.GetPending(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("WAL retry: failed to get pending entries")
		return result
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return result
		}
		r.processEntry(ctx, entry, &result)
	}

	if n, err := r.wal.Compact(ctx); err != nil {
		logging.Warn().Err(err).Msg("WAL compaction failed")
	} else if n > 0 {
		logging.Debug().Int("removed", n).Msg("WAL compacted")
	}

	if result.Succeeded+result.Failed+result.Expired+result.MaxRetried > 0 {
		logging.Info().
			Int("succeeded", result.Succeeded).
			Int("failed", result.Failed).
			Int("expired", result.Expired).
			Int("max_retried", result.MaxRetried).
			Msg("WAL retry complete")
	}
	return result
}

func (r *RetryLoop) processEntry(ctx context.Context, entry *Entry, result *RetryResult) {
	switch {
	case r.now().Sub(entry.CreatedAt) > r.config.EntryTTL:
		logging.Info().Str("entry_id", entry.ID).Msg("WAL retry: entry expired, removing")
		r.drop(ctx, entry)
		result.Expired++
		return
	case entry.Attempts >= r.config.MaxRetries:
		logging.Warn().
			Str("entry_id", entry.ID).
			Int("attempts", entry.Attempts).
			Msg("WAL retry: entry exceeded max retries, removing")
		r.drop(ctx, entry)
		result.MaxRetried++
		return
	case !r.isReadyForRetry(entry):
		result.Skipped++
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	err := r.publisher.PublishEntry(pubCtx, entry)
	cancel()

	if err != nil {
		logging.Warn().Err(err).Str("entry_id", entry.ID).Int("attempt", entry.Attempts+1).Msg("WAL retry: publish failed")
		if updateErr := r.wal.UpdateAttempt(ctx, entry.ID, err.Error()); updateErr != nil {
			logging.Error().Err(updateErr).Str("entry_id", entry.ID).Msg("WAL retry: failed to update attempt")
		}
		result.Failed++
		return
	}

	if err := r.wal.Confirm(ctx, entry.ID); err != nil {
		logging.Error().Err(err).Str("entry_id", entry.ID).Msg("WAL retry: failed to confirm entry")
		result.Failed++
		return
	}
	result.Succeeded++
}

func (r *RetryLoop) drop(ctx context.Context, entry *Entry) {
	if err := r.wal.DeleteEntry(ctx, entry.ID); err != nil {
		logging.Error().Err(err).Str("entry_id", entry.ID).Msg("WAL retry: failed to delete entry")
	}
}

func (r *RetryLoop) isReadyForRetry(entry *Entry) bool {
	if entry.LastAttemptAt.IsZero() {
		return true
	}
	return r.now().Sub(entry.LastAttemptAt) >= r.calculateBackoff(entry.Attempts)
}

// calculateBackoff returns base * 2^attempts, capped at five minutes.
func (r *RetryLoop) calculateBackoff(attempts int) time.Duration {
	if attempts > 50 {
		return maxBackoff
	}
	backoff := time.Duration(float64(r.config.RetryBackoff) * math.Pow(2, float64(attempts)))
	if backoff < 0 || backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}
