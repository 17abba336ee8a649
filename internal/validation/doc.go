// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package validation validates API request structs with
// go-playground/validator v10.
//
// A single validator instance is shared (it caches struct metadata).
// Field names in error messages are the JSON names clients send, and two
// custom tags are registered:
//
//   - finite: a float that is neither NaN nor infinite
//   - userid: 1-128 characters of letters, digits and "-_.@:|"
//
// Example:
//
//	type RatingRequest struct {
//	    Rating float64 `json:"rating" validate:"finite,gte=0,lte=10"`
//	    Review string  `json:"review" validate:"max=5000"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.ToAPIError())
//	    return
//	}
package validation
