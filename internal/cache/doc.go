// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package cache provides a thread-safe LRU cache with per-entry TTL.

It backs the catalog client, where trending lists, movie details and
recommendation lists change slowly and upstream calls are rate limited.

	c := cache.NewLRU[[]byte](1000, 10*time.Minute)
	c.Add("/movie/550", body)
	if body, ok := c.Get("/movie/550"); ok {
		...
	}

Expiration is lazy: expired entries are removed when touched or by
CleanupExpired. All operations are O(1) except CleanupExpired.
*/
package cache
