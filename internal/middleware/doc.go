// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package middleware provides the HTTP middleware shared by all API routes.

  - RequestID: assigns or propagates X-Request-ID and stores it in the
    request context for logging
  - PrometheusMetrics: records request counts and latency per chi route
    pattern, so path parameters do not create new label values
  - AccessLog: one structured log line per request

All middleware use the func(http.Handler) http.Handler shape so they can be
passed to chi's Use. Response writers are wrapped with chi's
WrapResponseWriter, which keeps http.Hijacker working for WebSocket
upgrades.
*/
package middleware
