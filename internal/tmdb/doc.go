// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package tmdb is a client for The Movie Database v3 REST API.

It covers the four catalog reads the service needs: weekly trending movies,
movie details, title search and per-movie recommendations. Responses decode
directly into the models package types.

Resilience:
  - Client-side token bucket (golang.org/x/time/rate) so the configured
    request rate is never exceeded
  - HTTP 429 responses are retried with exponential backoff, honoring
    Retry-After when present
  - A circuit breaker (sony/gobreaker) opens after repeated upstream
    failures; 404 responses do not count as failures
  - Successful bodies are cached in an LRU with TTL

Authentication uses the api_key query parameter, or a bearer token when
the configured key is a v4 read access token.
*/
package tmdb
