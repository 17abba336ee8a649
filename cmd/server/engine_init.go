// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package main

import (
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend"
)

// buildEngineConfig overlays the application recommend section on the
// engine defaults. Zero values keep the default.
func buildEngineConfig(c *config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()

	setFloat(&cfg.Score.CatalogRating, c.ScoreCatalogRating)
	setFloat(&cfg.Score.SimilarUsers, c.ScoreSimilarUsers)
	setFloat(&cfg.Score.Sentiment, c.ScoreSentiment)
	setFloat(&cfg.Score.ML, c.ScoreML)

	setFloat(&cfg.Recommendation.Rating, c.PointsRating)
	setFloat(&cfg.Recommendation.Popularity, c.PointsPopularity)
	setFloat(&cfg.Recommendation.Sentiment, c.PointsSentiment)
	setFloat(&cfg.Recommendation.ML, c.PointsML)

	setFloat(&cfg.Similarity.Genre, c.SimilarityGenre)
	setFloat(&cfg.Similarity.Rating, c.SimilarityRating)
	setFloat(&cfg.Similarity.Recency, c.SimilarityRecency)
	setFloat(&cfg.Similarity.Popularity, c.SimilarityPopularity)

	setFloat(&cfg.Reviews.Sentiment, c.ReviewSentiment)
	setFloat(&cfg.Reviews.Rating, c.ReviewRating)

	setFloat(&cfg.PopularitySaturation, c.PopularitySaturation)
	if c.NeighborhoodSize > 0 {
		cfg.NeighborhoodSize = c.NeighborhoodSize
	}
	if c.StoreTimeout > 0 {
		cfg.StoreTimeout = c.StoreTimeout
	}

	if len(c.PositiveWords) > 0 {
		cfg.Lexicon.Positive = append([]string(nil), c.PositiveWords...)
	}
	if len(c.NegativeWords) > 0 {
		cfg.Lexicon.Negative = append([]string(nil), c.NegativeWords...)
	}

	return cfg
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
