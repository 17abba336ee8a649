// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package api provides the HTTP surface of the movie rating service.

Routes are registered on a Chi router by SetupChi. All JSON responses use
the models.APIResponse envelope.

# Endpoints

	GET  /api/v1/health/live                   liveness
	GET  /api/v1/health/ready                  database ping
	GET  /api/v1/movies/trending               catalog trending list
	GET  /api/v1/movies/search?query=          catalog search
	GET  /api/v1/movies/{id}                   catalog details
	GET  /api/v1/movies/{id}/score             composite score
	GET  /api/v1/movies/{id}/recommendations   re-ranked similar movies
	GET  /api/v1/movies/{id}/reviews           stored reviews
	POST /api/v1/movies/{id}/ratings           submit a rating (auth)
	PUT  /api/v1/users/me/preferences          favorite genres (auth)
	POST /api/v1/recommendations/generate      synchronous recompute (auth)
	GET  /api/v1/ws                            change notifications
	GET  /metrics                              Prometheus

# Authentication

Read endpoints accept an optional bearer token; when present the user id
personalizes scores. Write endpoints require a token and a Casbin
permission for the token's role.
*/
package api
