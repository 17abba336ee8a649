// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Recomputer recomputes the ML score of a (user, movie) pair.
type Recomputer interface {
	Run(ctx context.Context, userID string, movieID int) (*models.MLRecommendation, error)
}

// Broadcaster announces recomputed scores to connected clients.
type Broadcaster interface {
	BroadcastRatingUpdated(movieID int, userID string, score float64)
	BroadcastRecommendationUpdated(movieID int, userID string, score float64)
}

// RecomputeHandler consumes rating-submitted events.
type RecomputeHandler struct {
	job        Recomputer
	hub        Broadcaster
	serializer *Serializer
	logger     zerolog.Logger

	processed atomic.Int64
	rejected  atomic.Int64
}

// NewRecomputeHandler creates the handler. hub may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecomputeHandler(job Recomputer, hub Broadcaster, logger zerolog.Logger) (*RecomputeHandler, error) {
	if job == nil {
		return nil, fmt.Errorf("%w: recompute job required", ErrInvalidConfig)
	}
	return &RecomputeHandler{
		job:        job,
		hub:        hub,
		serializer: NewSerializer(),
		logger:     logger.With().Str("component", "recompute-handler").Logger(),
	}, nil
}

// Handle implements message.NoPublishHandlerFunc. Malformed events are
// acknowledged and dropped since no retry can fix them; job failures are
// returned so the router retries them.
func (h *RecomputeHandler) Handle(msg *message.Message) error {
	event, err := h.serializer.Unmarshal(msg.Payload)
	if err != nil {
		h.rejected.Add(1)
		metrics.RecordNATSConsume(err)
		h.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("dropping malformed rating event")
		return nil
	}

	rec, err := h.job.Run(msg.Context(), event.UserID, event.MovieID)
	metrics.RecordNATSConsume(err)
	if err != nil {
		return fmt.Errorf("recompute %s/%d: %w", event.UserID, event.MovieID, err)
	}

	h.processed.Add(1)
	if h.hub != nil {
		h.hub.BroadcastRatingUpdated(rec.MovieID, rec.UserID, rec.Score)
		h.hub.BroadcastRecommendationUpdated(rec.MovieID, rec.UserID, rec.Score)
	}
	return nil
}

// Register adds the handler to router, consuming from sub.
func (h *RecomputeHandler) Register(router *Router, sub message.Subscriber) {
	router.AddConsumerHandler("recompute-ml-score", TopicRatingSubmitted, sub, h.Handle)
}

// Processed returns the number of events that led to a stored score.
func (h *RecomputeHandler) Processed() int64 {
	return h.processed.Load()
}

// Rejected returns the number of malformed events dropped.
func (h *RecomputeHandler) Rejected() int64 {
	return h.rejected.Load()
}
