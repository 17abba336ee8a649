// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package authz

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Middleware enforces permissions on authenticated requests. It must run
// after auth.Middleware.Required.
type Middleware struct {
	enforcer *Enforcer
}

// NewMiddleware creates an authorization middleware.
func NewMiddleware(enforcer *Enforcer) *Middleware {
	return &Middleware{enforcer: enforcer}
}

// Require rejects requests whose role lacks perm.
func (m *Middleware) Require(perm Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				writeForbidden(w, "no authentication context")
				return
			}

			allowed, err := m.enforcer.Allowed(claims.Role, perm)
			if err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Str("permission", perm.String()).Msg("authorization error")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !allowed {
				logging.Ctx(r.Context()).Info().
					Str("role", claims.Role).
					Str("permission", perm.String()).
					Msg("permission denied")
				writeForbidden(w, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Can reports whether the request's role holds perm. Handlers use it for
// checks that depend on the request body.
func (m *Middleware) Can(r *http.Request, perm Permission) bool {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}
	allowed, err := m.enforcer.Allowed(claims.Role, perm)
	return err == nil && allowed
}

func writeForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    &models.APIError{Code: "FORBIDDEN", Message: message},
	})
}
