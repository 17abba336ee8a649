// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend/algorithms"
)

// Config contains all configuration for the scoring engine.
type Config struct {
	// Score weights the four signals that make up the 0-10 rating.
	Score ScoreWeights `json:"score"`

	// Recommendation weights the four signals that make up the 0-100 score.
	Recommendation RecommendationWeights `json:"recommendation"`

	// Similarity weights the catalog dimensions used for ranking.
	Similarity algorithms.SimilarityWeights `json:"similarity"`

	// Reviews weights text sentiment against the numeric rating of a review.
	Reviews algorithms.ReviewWeights `json:"reviews"`

	// Lexicon is the sentiment vocabulary.
	Lexicon algorithms.Lexicon `json:"lexicon"`

	// NeighborhoodSize is the number of similar users consulted.
	NeighborhoodSize int `json:"neighborhood_size"`

	// PopularitySaturation is the popularity at which the popularity
	// factor reaches 1.
	PopularitySaturation float64 `json:"popularity_saturation"`

	// StoreTimeout bounds each store read. A read that times out is
	// treated as missing data.
	StoreTimeout time.Duration `json:"store_timeout"`
}

// ScoreWeights are the contributions to the final 0-10 rating.
type ScoreWeights struct {
	CatalogRating float64 `json:"catalog_rating"`
	SimilarUsers  float64 `json:"similar_users"`
	Sentiment     float64 `json:"sentiment"`
	ML            float64 `json:"ml"`
}

// RecommendationWeights are the contributions, in points, to the 0-100
// recommendation score.
type RecommendationWeights struct {
	Rating     float64 `json:"rating"`
	Popularity float64 `json:"popularity"`
	Sentiment  float64 `json:"sentiment"`
	ML         float64 `json:"ml"`
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Score: ScoreWeights{
			CatalogRating: 0.2,
			SimilarUsers:  0.4,
			Sentiment:     0.2,
			ML:            0.2,
		},
		Recommendation: RecommendationWeights{
			Rating:     40,
			Popularity: 20,
			Sentiment:  20,
			ML:         20,
		},
		Similarity:           algorithms.DefaultSimilarityWeights(),
		Reviews:              algorithms.DefaultReviewWeights(),
		Lexicon:              algorithms.DefaultLexicon(),
		NeighborhoodSize:     algorithms.DefaultNeighborhoodSize,
		PopularitySaturation: 100,
		StoreTimeout:         2 * time.Second,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	weights := map[string]float64{
		"score.catalog_rating":      c.Score.CatalogRating,
		"score.similar_users":       c.Score.SimilarUsers,
		"score.sentiment":           c.Score.Sentiment,
		"score.ml":                  c.Score.ML,
		"recommendation.rating":     c.Recommendation.Rating,
		"recommendation.popularity": c.Recommendation.Popularity,
		"recommendation.sentiment":  c.Recommendation.Sentiment,
		"recommendation.ml":         c.Recommendation.ML,
		"similarity.genre":          c.Similarity.Genre,
		"similarity.rating":         c.Similarity.Rating,
		"similarity.recency":        c.Similarity.Recency,
		"similarity.popularity":     c.Similarity.Popularity,
		"reviews.sentiment":         c.Reviews.Sentiment,
		"reviews.rating":            c.Reviews.Rating,
	}
	for name, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %f", name, w)
		}
	}

	if c.NeighborhoodSize < 1 {
		return fmt.Errorf("neighborhood_size must be positive, got %d", c.NeighborhoodSize)
	}
	if !(c.PopularitySaturation > 0) || math.IsInf(c.PopularitySaturation, 0) {
		return fmt.Errorf("popularity_saturation must be positive, got %f", c.PopularitySaturation)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("store_timeout must be positive, got %v", c.StoreTimeout)
	}
	if len(c.Lexicon.Positive) == 0 && len(c.Lexicon.Negative) == 0 {
		return fmt.Errorf("lexicon must contain at least one word")
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Lexicon = algorithms.Lexicon{
		Positive: append([]string(nil), c.Lexicon.Positive...),
		Negative: append([]string(nil), c.Lexicon.Negative...),
	}
	return &clone
}
