// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend"
)

func TestBuildEngineConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  config.RecommendConfig
		mutate func(c *recommend.Config)
	}{
		{
			name:   "zero values keep defaults",
			mutate: func(*recommend.Config) {},
		},
		{
			name: "score weights",
			input: config.RecommendConfig{
				ScoreCatalogRating: 0.1,
				ScoreSimilarUsers:  0.5,
			},
			mutate: func(c *recommend.Config) {
				c.Score.CatalogRating = 0.1
				c.Score.SimilarUsers = 0.5
			},
		},
		{
			name: "points and limits",
			input: config.RecommendConfig{
				PointsPopularity:     30,
				NeighborhoodSize:     10,
				PopularitySaturation: 250,
				StoreTimeout:         5 * time.Second,
			},
			mutate: func(c *recommend.Config) {
				c.Recommendation.Popularity = 30
				c.NeighborhoodSize = 10
				c.PopularitySaturation = 250
				c.StoreTimeout = 5 * time.Second
			},
		},
		{
			name: "similarity and review weights",
			input: config.RecommendConfig{
				SimilarityGenre: 0.7,
				ReviewSentiment: 0.3,
				ReviewRating:    0.7,
			},
			mutate: func(c *recommend.Config) {
				c.Similarity.Genre = 0.7
				c.Reviews.Sentiment = 0.3
				c.Reviews.Rating = 0.7
			},
		},
		{
			name: "custom lexicon replaces only the given side",
			input: config.RecommendConfig{
				PositiveWords: []string{"stellar"},
			},
			mutate: func(c *recommend.Config) {
				c.Lexicon.Positive = []string{"stellar"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := recommend.DefaultConfig()
			tt.mutate(want)

			got := buildEngineConfig(&tt.input)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("buildEngineConfig() mismatch (-want +got):\n%s", diff)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestInitAuthModeNone(t *testing.T) {
	t.Parallel()

	mw, err := initAuth(&config.SecurityConfig{AuthMode: "none"})
	if err != nil {
		t.Fatalf("initAuth() error = %v", err)
	}
	if mw == nil {
		t.Fatal("initAuth() returned nil middleware")
	}
}

func TestInitAuthJWTRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := initAuth(&config.SecurityConfig{AuthMode: "jwt"}); err == nil {
		t.Error("initAuth() error = nil, want missing secret error")
	}
}
