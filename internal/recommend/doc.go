// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package recommend scores movies and reorders recommendation lists.
//
// # Scoring
//
// Engine.ScoreMovie blends four signals into a 0-10 rating and a 0-100
// recommendation score:
//
//   - the catalog vote average
//   - the mean rating of the most similar users (collaborative filtering)
//   - the aggregate sentiment of the movie's reviews
//   - a persisted machine-generated score in [0,1]
//
// Store reads go through the RatingReader and MLScoreStore interfaces so
// the engine can be tested without a database. Store failures never reach
// the caller: a timed out read counts as missing data, and any other failure
// produces a score built from the catalog rating alone.
//
// # Ranking
//
// Engine.EnhanceRecommendations orders candidates by catalog similarity to
// a reference movie using the reranking package. Ranking is stable and
// never adds or drops candidates.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), db, db, logger)
//	if err != nil {
//	    return err
//	}
//	score := engine.ScoreMovie(ctx, &movie, reviews, userID)
package recommend
