// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package models

import "time"

// APIResponse is the envelope used by every HTTP endpoint.
//
//	{
//	  "status": "success",
//	  "data": {"rating": 6.2, "recommendationScore": 55, ...},
//	  "metadata": {"timestamp": "2026-01-02T15:04:05Z", "queryTimeMs": 12}
//	}
//
// Status is "success" or "error"; Error is set only for errors.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing information for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"queryTimeMs,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a machine-readable error code plus a human-readable message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ScoredMovie pairs a catalog movie with its personal score. Used by the
// recommendations endpoint when the caller is authenticated.
type ScoredMovie struct {
	Movie
	Score *MovieScore `json:"score,omitempty"`
}
