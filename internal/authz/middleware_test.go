// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package authz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
)

func requestAs(role string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if role == "" {
		return req
	}
	claims := &auth.Claims{Role: role, RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	return req.WithContext(context.WithValue(req.Context(), auth.ClaimsContextKey, claims))
}

func TestRequire(t *testing.T) {
	t.Parallel()

	e, err := NewEnforcer(nil)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	mw := NewMiddleware(e)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		role       string
		perm       Permission
		wantStatus int
	}{
		{"user rates", "user", PermRatingsWrite, http.StatusNoContent},
		{"user acts for others", "user", PermRecommendationsGenerateAny, http.StatusForbidden},
		{"admin acts for others", "admin", PermRecommendationsGenerateAny, http.StatusNoContent},
		{"no claims", "", PermRatingsWrite, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			mw.Require(tt.perm)(ok).ServeHTTP(rec, requestAs(tt.role))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := mw.Can(requestAs(tt.role), tt.perm); got != (tt.wantStatus == http.StatusNoContent) {
				t.Errorf("Can() = %v, inconsistent with Require", got)
			}
		})
	}
}
