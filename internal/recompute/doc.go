// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package recompute derives the persisted ML recommendation score of a
// (user, movie) pair from the user's rating history and declared tastes.
//
// The policy is:
//
//	score = 0.5
//	      + average_rating / 10 * 0.3   (when the user has ratings)
//	      + 0.1                         (when the user has favorite genres)
//
// clamped to [0, 1] and upserted on (user_id, movie_id). The job runs from
// the rating-submitted event handler and from the synchronous generate
// endpoint.
package recompute
