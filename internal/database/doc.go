// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package database provides DuckDB storage for ratings, ML scores and user
preferences.

# Tables

  - movie_ratings: one row per (user_id, movie_id) with the 0-10 rating and
    optional review text
  - movie_recommendations: the persisted ML score per (user_id, movie_id),
    written by the recompute job
  - user_preferences: favorite genre ids per user, stored as JSON

All writes are upserts keyed on the primary key, so repeating a write is
harmless. DuckDB transaction conflicts are retried with a short backoff.

# Store Interfaces

DB satisfies recommend.RatingStore and recommend.MLScoreStore, and the
recompute package's preference and score-writer interfaces.

# Testing

Tests open ":memory:" databases; no files are written.
*/
package database
