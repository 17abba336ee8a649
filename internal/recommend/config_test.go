// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recommend

import (
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}

	sum := cfg.Score.CatalogRating + cfg.Score.SimilarUsers + cfg.Score.Sentiment + cfg.Score.ML
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("score weights sum = %v, want 1", sum)
	}
	points := cfg.Recommendation.Rating + cfg.Recommendation.Popularity + cfg.Recommendation.Sentiment + cfg.Recommendation.ML
	if points != 100 {
		t.Errorf("recommendation weights sum = %v, want 100", points)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative score weight", func(c *Config) { c.Score.ML = -0.1 }, "score.ml"},
		{"NaN similarity weight", func(c *Config) { c.Similarity.Genre = math.NaN() }, "similarity.genre"},
		{"infinite review weight", func(c *Config) { c.Reviews.Rating = math.Inf(1) }, "reviews.rating"},
		{"zero neighborhood", func(c *Config) { c.NeighborhoodSize = 0 }, "neighborhood_size"},
		{"zero saturation", func(c *Config) { c.PopularitySaturation = 0 }, "popularity_saturation"},
		{"NaN saturation", func(c *Config) { c.PopularitySaturation = math.NaN() }, "popularity_saturation"},
		{"zero timeout", func(c *Config) { c.StoreTimeout = 0 }, "store_timeout"},
		{"empty lexicon", func(c *Config) { c.Lexicon.Positive = nil; c.Lexicon.Negative = nil }, "lexicon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantErr)
			}

			if _, err := NewEngine(cfg, nil, nil, zerolog.Nop()); err == nil {
				t.Error("NewEngine() accepted an invalid config")
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Lexicon.Positive[0] = "changed"
	clone.Score.ML = 0.9

	if cfg.Lexicon.Positive[0] == "changed" {
		t.Error("Clone() shares the lexicon slice")
	}
	if cfg.Score.ML == 0.9 {
		t.Error("Clone() shares score weights")
	}
}

func TestNewEngineNilConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(nil, nil, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine(nil) error = %v", err)
	}
	if got := e.Config().NeighborhoodSize; got != 5 {
		t.Errorf("NeighborhoodSize = %d, want 5", got)
	}
}
