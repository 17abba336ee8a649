// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package metrics provides Prometheus metrics for the movie rating service.

All collectors are registered with the default registry through promauto
and exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Scoring:
  - movie_score_computations_total{outcome}: ScoreMovie results (scored, fallback)
  - movie_score_duration_seconds: ScoreMovie latency
  - recompute_jobs_total{result}: ML score recomputations (success, error)

Storage:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table}
  - rating_upserts_total
  - wal_pending_entries

Messaging:
  - nats_publish_total{result}
  - nats_consume_total{result}
  - websocket_connections
  - circuit_breaker_state{name}

HTTP:
  - http_requests_total{method,endpoint,status}
  - http_request_duration_seconds{method,endpoint}
  - http_active_requests
  - tmdb_requests_total{endpoint,status}
  - tmdb_cache_requests_total{result}
  - authz_decisions_total{result}

Helpers such as RecordDBQuery and RecordAPIRequest keep label handling in
one place; callers should prefer them over touching collectors directly.
*/
package metrics
