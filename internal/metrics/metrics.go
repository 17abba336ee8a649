// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scoring Metrics
	ScoreComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_score_computations_total",
			Help: "Total number of movie score computations by outcome",
		},
		[]string{"outcome"}, // "scored", "fallback"
	)

	ScoreDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movie_score_duration_seconds",
			Help:    "Duration of movie score computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecomputeJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recompute_jobs_total",
			Help: "Total number of ML score recomputations",
		},
		[]string{"result"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	RatingUpserts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rating_upserts_total",
			Help: "Total number of stored ratings",
		},
	)

	WALPendingEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wal_pending_entries",
			Help: "Recompute events waiting in the write-ahead log",
		},
	)

	// Messaging Metrics
	NATSPublish = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_publish_total",
			Help: "Total number of published events by result",
		},
		[]string{"result"},
	)

	NATSConsume = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_consume_total",
			Help: "Total number of consumed events by result",
		},
		[]string{"result"},
	)

	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of WebSocket clients",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// External Catalog Metrics
	TMDBRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of TMDB API requests",
		},
		[]string{"endpoint", "status"},
	)

	TMDBCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_cache_requests_total",
			Help: "TMDB response cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Authorization Metrics
	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Total number of authorization decisions",
		},
		[]string{"result"},
	)
)

// RecordScore records one ScoreMovie call.
func RecordScore(fallback bool, duration time.Duration) {
	outcome := "scored"
	if fallback {
		outcome = "fallback"
	}
	ScoreComputations.WithLabelValues(outcome).Inc()
	ScoreDuration.Observe(duration.Seconds())
}

// RecordRecomputeJob records the result of an ML score recomputation.
func RecordRecomputeJob(err error) {
	RecomputeJobs.WithLabelValues(result(err)).Inc()
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordRatingUpsert counts a stored rating.
func RecordRatingUpsert() {
	RatingUpserts.Inc()
}

// SetWALPending sets the number of pending WAL entries.
func SetWALPending(n int64) {
	WALPendingEntries.Set(float64(n))
}

// RecordNATSPublish records an event publish attempt.
func RecordNATSPublish(err error) {
	NATSPublish.WithLabelValues(result(err)).Inc()
}

// RecordNATSConsume records a consumed event.
func RecordNATSConsume(err error) {
	NATSConsume.WithLabelValues(result(err)).Inc()
}

// SetWebSocketConnections sets the number of connected WebSocket clients.
func SetWebSocketConnections(n int) {
	WebSocketConnections.Set(float64(n))
}

// SetCircuitBreakerState records a breaker transition. state follows
// gobreaker's numbering: 0 closed, 1 half-open, 2 open.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordTMDBRequest records an outbound catalog request.
func RecordTMDBRequest(endpoint string, statusCode int) {
	TMDBRequests.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

// RecordTMDBCache records a catalog cache lookup.
func RecordTMDBCache(hit bool) {
	if hit {
		TMDBCacheRequests.WithLabelValues("hit").Inc()
		return
	}
	TMDBCacheRequests.WithLabelValues("miss").Inc()
}

// RecordAuthzDecision records an authorization decision.
func RecordAuthzDecision(allowed bool) {
	if allowed {
		AuthzDecisions.WithLabelValues("allowed").Inc()
		return
	}
	AuthzDecisions.WithLabelValues("denied").Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
