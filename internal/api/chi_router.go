// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/authz"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/middleware"
)

// Router wires handlers and middleware onto a Chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil chiMW uses the default configuration.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMW}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5))
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(h.auth.Optional)

		r.Route("/api/v1/movies", func(r chi.Router) {
			r.Get("/trending", h.TrendingMovies)
			r.Get("/search", h.SearchMovies)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.MovieDetails)
				r.Get("/score", h.MovieScore)
				r.Get("/recommendations", h.MovieRecommendations)
				r.Get("/reviews", h.MovieReviews)
				r.With(h.auth.Required, h.authz.Require(authz.PermRatingsWrite)).
					Post("/ratings", h.SubmitRating)
			})
		})

		r.With(h.auth.Required, h.authz.Require(authz.PermPreferencesWrite)).
			Put("/api/v1/users/me/preferences", h.UpdatePreferences)

		r.With(h.auth.Required, h.authz.Require(authz.PermRecommendationsGenerate)).
			Post("/api/v1/recommendations/generate", h.GenerateRecommendation)
	})

	// The upgrade needs the raw connection, so no compression here.
	if h.ws != nil {
		r.Handle("/api/v1/ws", h.ws)
	}

	r.Handle("/metrics", promhttp.Handler())

	return r
}
