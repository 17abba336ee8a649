// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package reranking reorders candidate recommendation lists.
package reranking

import (
	"sort"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend/algorithms"
)

// Ranked is a candidate with its similarity to the reference movie.
type Ranked struct {
	Movie      models.Movie                   `json:"movie"`
	Similarity algorithms.SimilarityBreakdown `json:"similarity"`
}

// Ranker orders candidates by catalog similarity to a reference movie.
type Ranker struct {
	weights algorithms.SimilarityWeights
}

// NewRanker creates a ranker using the given similarity weights.
func NewRanker(weights algorithms.SimilarityWeights) *Ranker {
	return &Ranker{weights: weights}
}

// Name returns the reranker identifier.
func (r *Ranker) Name() string {
	return "similarity"
}

// Score computes each candidate's similarity and returns the candidates
// sorted by composite similarity, highest first. Candidates with equal
// composites keep their input order. The input slice is not modified.
func (r *Ranker) Score(ref *models.MovieDetails, candidates []models.Movie) []Ranked {
	ranked := make([]Ranked, len(candidates))
	for i := range candidates {
		ranked[i] = Ranked{
			Movie:      candidates[i],
			Similarity: algorithms.Similarity(ref, &candidates[i], r.weights),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity.Composite > ranked[j].Similarity.Composite
	})
	return ranked
}

// Rank returns the candidates reordered by Score, without the scores.
// The result is always a permutation of candidates.
func (r *Ranker) Rank(ref *models.MovieDetails, candidates []models.Movie) []models.Movie {
	if ref == nil {
		out := make([]models.Movie, len(candidates))
		copy(out, candidates)
		return out
	}

	ranked := r.Score(ref, candidates)
	out := make([]models.Movie, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].Movie
	}
	return out
}
