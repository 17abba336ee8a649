// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package eventprocessor carries rating-submitted events from the API to the
recompute job.

# Flow

	POST /movies/{id}/ratings
	  -> database.UpsertRating
	  -> Publisher.PublishRating            (ratings.submitted)
	  -> Router (retry, poison queue)
	  -> RecomputeHandler
	       -> recompute.Job.Run             (movie_recommendations upsert)
	       -> websocket hub broadcast       (rating_updated, recommendation_updated)

Publishing is fire-and-forget from the API's point of view: the rating is
already stored, and a failed publish only delays the ML score refresh. With
the WAL enabled, WALPublisher writes the event to BadgerDB first so the
retry loop can republish it once the broker is back.

# Transports

In production the router runs on NATS JetStream through watermill-nats,
either against an external server or an EmbeddedServer started in-process.
StreamInitializer creates the stream before the first publish. When NATS is
disabled, NewGoChannelPubSub provides an in-process Watermill pub/sub with
the same interfaces; tests use it too.

# Resilience

  - Publisher wraps every publish in a gobreaker circuit breaker
  - Router applies Recoverer, Retry with exponential backoff, and a poison
    queue for messages that still fail
*/
package eventprocessor
