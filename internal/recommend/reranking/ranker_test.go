// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package reranking

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend/algorithms"
)

func reference() *models.MovieDetails {
	return &models.MovieDetails{
		Movie: models.Movie{ID: 100, Title: "Reference", VoteAverage: 7, ReleaseDate: "2010-06-01", Popularity: 50},
		Genres: []models.Genre{
			{ID: 1, Name: "Action"},
			{ID: 2, Name: "Comedy"},
		},
	}
}

func ids(movies []models.Movie) []int {
	out := make([]int, len(movies))
	for i := range movies {
		out[i] = movies[i].ID
	}
	return out
}

func TestRankOrdersByCompositeDescending(t *testing.T) {
	t.Parallel()

	candidates := []models.Movie{
		{ID: 1, VoteAverage: 1, ReleaseDate: "1950-01-01", Popularity: 500, GenreIDs: []int{9}},
		{ID: 2, VoteAverage: 7, ReleaseDate: "2010-01-01", Popularity: 50, GenreIDs: []int{1, 2}},
		{ID: 3, VoteAverage: 6, ReleaseDate: "2005-01-01", Popularity: 40, GenreIDs: []int{1}},
	}

	r := NewRanker(algorithms.DefaultSimilarityWeights())
	got := r.Rank(reference(), candidates)

	if diff := cmp.Diff([]int{2, 3, 1}, ids(got)); diff != "" {
		t.Errorf("rank order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, ids(candidates)); diff != "" {
		t.Errorf("input was modified (-want +got):\n%s", diff)
	}
}

func TestRankIsStableUnderTies(t *testing.T) {
	t.Parallel()

	same := models.Movie{VoteAverage: 5, ReleaseDate: "2000-01-01", Popularity: 10, GenreIDs: []int{3}}
	var candidates []models.Movie
	for _, id := range []int{40, 10, 30, 20} {
		m := same
		m.ID = id
		candidates = append(candidates, m)
	}

	got := NewRanker(algorithms.DefaultSimilarityWeights()).Rank(reference(), candidates)
	if diff := cmp.Diff([]int{40, 10, 30, 20}, ids(got)); diff != "" {
		t.Errorf("ties did not keep input order (-want +got):\n%s", diff)
	}
}

func TestRankIsPermutation(t *testing.T) {
	t.Parallel()

	candidates := []models.Movie{
		{ID: 5, VoteAverage: 3, Popularity: 1},
		{ID: 6, VoteAverage: 9, ReleaseDate: "2011-01-01", Popularity: 80, GenreIDs: []int{2}},
		{ID: 6, VoteAverage: 9, ReleaseDate: "2011-01-01", Popularity: 80, GenreIDs: []int{2}},
		{ID: 7},
	}

	r := NewRanker(algorithms.DefaultSimilarityWeights())
	got := r.Rank(reference(), candidates)

	want := ids(candidates)
	have := ids(got)
	sort.Ints(want)
	sort.Ints(have)
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("output is not a permutation of input (-want +got):\n%s", diff)
	}

	scored := r.Score(reference(), candidates)
	for i := 1; i < len(scored); i++ {
		if scored[i].Similarity.Composite > scored[i-1].Similarity.Composite {
			t.Errorf("composite increases at %d: %v > %v", i, scored[i].Similarity.Composite, scored[i-1].Similarity.Composite)
		}
	}
}

func TestRankEmptyAndNilReference(t *testing.T) {
	t.Parallel()

	r := NewRanker(algorithms.DefaultSimilarityWeights())
	if got := r.Rank(reference(), nil); len(got) != 0 {
		t.Errorf("Rank(nil candidates) = %v, want empty", got)
	}

	candidates := []models.Movie{{ID: 2}, {ID: 1}}
	if diff := cmp.Diff([]int{2, 1}, ids(r.Rank(nil, candidates))); diff != "" {
		t.Errorf("nil reference should keep order (-want +got):\n%s", diff)
	}
}
