// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package algorithms

import (
	"math"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

const (
	// MaxRatingGap is the rating difference at which RatingSimilarity reaches 0.
	MaxRatingGap = 10.0

	// MaxYearGap is the release-year difference at which RecencySimilarity reaches 0.
	MaxYearGap = 30.0
)

// SimilarityWeights are the per-dimension weights of Composite.
type SimilarityWeights struct {
	Genre      float64 `json:"genre"`
	Rating     float64 `json:"rating"`
	Recency    float64 `json:"recency"`
	Popularity float64 `json:"popularity"`
}

// DefaultSimilarityWeights returns the catalog-only ranking weights. They sum
// to 0.75, not 1: sentiment and the stored ML score only feed the per-movie
// score, never this ranking.
func DefaultSimilarityWeights() SimilarityWeights {
	return SimilarityWeights{
		Genre:      0.25,
		Rating:     0.20,
		Recency:    0.15,
		Popularity: 0.15,
	}
}

// Sum returns the total of all weights.
func (w SimilarityWeights) Sum() float64 {
	return w.Genre + w.Rating + w.Recency + w.Popularity
}

// SimilarityBreakdown holds the four dimension scores and their weighted sum.
type SimilarityBreakdown struct {
	Genre      float64 `json:"genre"`
	Rating     float64 `json:"rating"`
	Recency    float64 `json:"recency"`
	Popularity float64 `json:"popularity"`
	Composite  float64 `json:"composite"`
}

// GenreSimilarity is the Jaccard index |A∩B| / |A∪B| of two genre id sets.
// Duplicate ids are ignored. Two empty sets have similarity 0.
func GenreSimilarity(a, b []int) float64 {
	setA := make(map[int]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[int]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}

	intersection := 0
	for id := range setA {
		if _, ok := setB[id]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// RatingSimilarity decays linearly from 1 (equal ratings) to 0 at a gap of 10.
func RatingSimilarity(r1, r2 float64) float64 {
	if !finite(r1) || !finite(r2) {
		return 0
	}
	return clamp01(1 - math.Abs(r1-r2)/MaxRatingGap)
}

// RecencySimilarity compares release years: max(0, 1 - |y1-y2|/30).
// A missing or unparseable date on either side yields 0.
func RecencySimilarity(date1, date2 string) float64 {
	y1, ok1 := models.ParseReleaseYear(date1)
	y2, ok2 := models.ParseReleaseYear(date2)
	if !ok1 || !ok2 {
		return 0
	}
	gap := math.Abs(float64(y1 - y2))
	return math.Max(0, 1-gap/MaxYearGap)
}

// PopularitySimilarity is 1 - |p1-p2| / max(p1,p2). Popularity is unbounded,
// so the difference is taken relative to the larger value. When both are
// zero the divisor is 1 and the result is 1. Negative or non-finite inputs
// count as zero.
func PopularitySimilarity(p1, p2 float64) float64 {
	p1, p2 = nonNegative(p1), nonNegative(p2)
	divisor := math.Max(p1, p2)
	if divisor <= 0 {
		divisor = 1
	}
	return clamp01(1 - math.Abs(p1-p2)/divisor)
}

// Similarity scores candidate against the reference movie on all four
// dimensions and combines them with w.
func Similarity(ref *models.MovieDetails, candidate *models.Movie, w SimilarityWeights) SimilarityBreakdown {
	b := SimilarityBreakdown{
		Genre:      GenreSimilarity(ref.GenreIDSet(), candidate.GenreIDs),
		Rating:     RatingSimilarity(ref.VoteAverage, candidate.VoteAverage),
		Recency:    RecencySimilarity(ref.ReleaseDate, candidate.ReleaseDate),
		Popularity: PopularitySimilarity(ref.Popularity, candidate.Popularity),
	}
	b.Composite = b.Genre*w.Genre +
		b.Rating*w.Rating +
		b.Recency*w.Recency +
		b.Popularity*w.Popularity
	return b
}

// Composite returns only the weighted sum of Similarity.
func Composite(ref *models.MovieDetails, candidate *models.Movie, w SimilarityWeights) float64 {
	return Similarity(ref, candidate, w).Composite
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func nonNegative(x float64) float64 {
	if !finite(x) || x < 0 {
		return 0
	}
	return x
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
