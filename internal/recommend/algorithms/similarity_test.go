// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package algorithms

import (
	"math"
	"testing"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

func TestGenreSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"identical", []int{1, 2}, []int{2, 1}, 1},
		{"disjoint", []int{1, 2}, []int{3, 4}, 0},
		{"both empty", nil, []int{}, 0},
		{"one empty", []int{1}, nil, 0},
		{"partial overlap", []int{1, 2}, []int{2, 3}, 1.0 / 3.0},
		{"duplicates ignored", []int{1, 1, 2}, []int{1, 2, 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GenreSimilarity(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatalf("GenreSimilarity(%v, %v) is NaN", tt.a, tt.b)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("GenreSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if rev := GenreSimilarity(tt.b, tt.a); rev != got {
				t.Errorf("GenreSimilarity not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestRatingSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r1, r2 float64
		want   float64
	}{
		{7, 7, 1},
		{0, 10, 0},
		{10, 0, 0},
		{5, 7.5, 0.75},
		{-5, 10, 0},
		{math.NaN(), 5, 0},
	}

	for _, tt := range tests {
		if got := RatingSimilarity(tt.r1, tt.r2); !almostEqual(got, tt.want) {
			t.Errorf("RatingSimilarity(%v, %v) = %v, want %v", tt.r1, tt.r2, got, tt.want)
		}
	}
}

func TestRecencySimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d1, d2 string
		want   float64
	}{
		{"2010-07-16", "2010-01-01", 1},
		{"2000-01-01", "2015-06-01", 0.5},
		{"1970-01-01", "2000-01-01", 0},
		{"1960-01-01", "2000-01-01", 0},
		{"2000", "2003-05-05", 0.9},
		{"", "2000-01-01", 0},
		{"unknown", "2000-01-01", 0},
	}

	for _, tt := range tests {
		got := RecencySimilarity(tt.d1, tt.d2)
		if got < 0 {
			t.Errorf("RecencySimilarity(%q, %q) = %v, must not be negative", tt.d1, tt.d2, got)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("RecencySimilarity(%q, %q) = %v, want %v", tt.d1, tt.d2, got, tt.want)
		}
	}
}

func TestPopularitySimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p1, p2 float64
		want   float64
	}{
		{"both zero", 0, 0, 1},
		{"equal", 42.5, 42.5, 1},
		{"half", 50, 100, 0.5},
		{"half reversed", 100, 50, 0.5},
		{"zero vs positive", 0, 10, 0},
		{"negative treated as zero", -5, 0, 1},
		{"NaN treated as zero", math.NaN(), 10, 0},
		{"infinite treated as zero", math.Inf(1), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PopularitySimilarity(tt.p1, tt.p2); !almostEqual(got, tt.want) {
				t.Errorf("PopularitySimilarity(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestSimilarityComposite(t *testing.T) {
	t.Parallel()

	ref := &models.MovieDetails{
		Movie: models.Movie{ID: 1, VoteAverage: 7, ReleaseDate: "2010-01-01", Popularity: 50},
		Genres: []models.Genre{
			{ID: 28, Name: "Action"},
			{ID: 12, Name: "Adventure"},
		},
	}
	twin := &models.Movie{ID: 2, VoteAverage: 7, ReleaseDate: "2010-05-05", Popularity: 50, GenreIDs: []int{12, 28}}

	w := DefaultSimilarityWeights()
	b := Similarity(ref, twin, w)
	if b.Genre != 1 || b.Rating != 1 || b.Recency != 1 || b.Popularity != 1 {
		t.Errorf("identical movies breakdown = %+v, want all ones", b)
	}
	if !almostEqual(b.Composite, 0.75) {
		t.Errorf("Composite = %v, want 0.75", b.Composite)
	}
	if !almostEqual(w.Sum(), 0.75) {
		t.Errorf("default weights sum = %v, want 0.75", w.Sum())
	}

	other := &models.Movie{ID: 3, VoteAverage: 2, ReleaseDate: "1980-01-01", Popularity: 100, GenreIDs: []int{99}}
	// genre 0, rating 0.5, recency 0, popularity 0.5
	want := 0.5*0.20 + 0.5*0.15
	if got := Composite(ref, other, w); !almostEqual(got, want) {
		t.Errorf("Composite = %v, want %v", got, want)
	}
}

func TestSimilarityStaysInUnitInterval(t *testing.T) {
	t.Parallel()

	values := []float64{0, 0.1, 1, 5, 10, 100, 1e9, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, a := range values {
		for _, b := range values {
			for name, got := range map[string]float64{
				"rating":     RatingSimilarity(a, b),
				"popularity": PopularitySimilarity(a, b),
			} {
				if math.IsNaN(got) || got < 0 || got > 1 {
					t.Errorf("%s similarity(%v, %v) = %v, outside [0,1]", name, a, b, got)
				}
			}
		}
	}
}
