// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package algorithms implements the scoring primitives used by the
// recommendation engine.
//
// Every function here is pure and deterministic: no I/O, no shared mutable
// state, no logging. The engine in the parent package fetches data from the
// stores and feeds it through these functions.
//
// # Sentiment
//
// A lexicon-based classifier maps free text to [0,1]. Tokens are split on
// whitespace and lowercased, then matched exactly against positive and
// negative word sets. Text without any lexicon word scores exactly 0.5.
//
//	a := algorithms.NewSentimentAnalyzer(algorithms.DefaultLexicon())
//	a.Analyze("great movie loved it") // 1.0
//
// Reviews fold sentiment and the numeric rating into one signal:
//
//	a.Aggregate(reviews, algorithms.DefaultReviewWeights())
//
// # Similarity
//
// Four pairwise similarities, each in [0,1]:
//
//   - GenreSimilarity: Jaccard index of genre id sets (0 for two empty sets)
//   - RatingSimilarity: 1 - |r1-r2|/10
//   - RecencySimilarity: max(0, 1 - |y1-y2|/30) over release years
//   - PopularitySimilarity: 1 - |p1-p2|/max(p1,p2), 1 when both are zero
//
// Composite weights them into a catalog-only ranking score. The default
// weights sum to 0.75.
//
// # Collaborative filtering
//
// FindSimilarUsers accumulates RatingSimilarity over movies two users both
// rated and keeps the top neighbors, ties broken by user id so that results
// are reproducible. EstimateRating averages the neighbors' ratings for the
// target movie, falling back to the catalog vote average.
package algorithms
