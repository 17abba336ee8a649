// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package models defines the data types shared across the service: catalog
// movies as delivered by TMDB, user ratings and reviews, computed scores,
// and the JSON envelope returned by the HTTP API.
//
// Catalog types keep TMDB's snake_case JSON field names so that responses
// from the catalog client can be decoded directly and passed back to API
// clients unchanged. Computed types (MovieScore) use camelCase field names.
package models
