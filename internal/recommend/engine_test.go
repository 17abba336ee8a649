// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recommend

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// mockRatingStore implements RatingReader over an in-memory slice.
type mockRatingStore struct {
	mu      sync.Mutex
	rows    []models.Rating
	err     error
	block   bool
	byMovie []string
}

func (m *mockRatingStore) wait(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (m *mockRatingStore) RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	var out []models.Rating
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRatingStore) RatingsExcludingUser(ctx context.Context, userID string) ([]models.Rating, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	var out []models.Rating
	for _, r := range m.rows {
		if r.UserID != userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRatingStore) RatingsByMovie(ctx context.Context, movieID int, userIDs []string) ([]models.Rating, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.byMovie = append([]string(nil), userIDs...)
	m.mu.Unlock()

	want := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []models.Rating
	for _, r := range m.rows {
		if r.MovieID == movieID && (len(want) == 0 || want[r.UserID]) {
			out = append(out, r)
		}
	}
	return out, nil
}

// mockScoreStore implements MLScoreStore.
type mockScoreStore struct {
	score float64
	ok    bool
	err   error
	block bool
}

func (m *mockScoreStore) Score(ctx context.Context, _ int, _ string) (float64, bool, error) {
	if m.err != nil {
		return 0, false, m.err
	}
	if m.block {
		<-ctx.Done()
		return 0, false, ctx.Err()
	}
	return m.score, m.ok, nil
}

func movieA() *models.Movie {
	return &models.Movie{ID: 1, Title: "A", VoteAverage: 7.0, Popularity: 50, GenreIDs: []int{1, 2}}
}

func newTestEngine(t *testing.T, cfg *Config, ratings RatingReader, scores MLScoreStore) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, ratings, scores, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestScoreMovieEndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating float64
		want   models.MovieScore
	}{
		{
			name:   "review rating 8",
			rating: 8,
			want:   models.MovieScore{Rating: 6.0, RecommendationScore: 52, TotalReviews: 1, SentimentScore: 0.9},
		},
		{
			name:   "review rating 10",
			rating: 10,
			want:   models.MovieScore{Rating: 6.2, RecommendationScore: 55, TotalReviews: 1, SentimentScore: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(t, nil, &mockRatingStore{}, &mockScoreStore{})
			reviews := []models.Review{{MovieID: 1, Rating: tt.rating, Content: "great movie loved it"}}

			got := e.ScoreMovie(context.Background(), movieA(), reviews, "")
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(floatEqual)); diff != "" {
				t.Errorf("ScoreMovie() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreMovieNoReviewsIsNeutral(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil, nil)
	got := e.ScoreMovie(context.Background(), movieA(), nil, "")

	if got.SentimentScore != 0.5 {
		t.Errorf("SentimentScore = %v, want exactly 0.5", got.SentimentScore)
	}
	if got.TotalReviews != 0 {
		t.Errorf("TotalReviews = %d, want 0", got.TotalReviews)
	}
	// 1.4 + 2.8 + 1.0 = 5.2; round(20.8 + 10 + 10) = 41
	if got.Rating != 5.2 || got.RecommendationScore != 41 {
		t.Errorf("ScoreMovie() = %+v, want rating 5.2 score 41", got)
	}
}

func TestScoreMovieUsesStoredMLScore(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil, &mockScoreStore{score: 0.5, ok: true})
	reviews := []models.Review{{Rating: 10, Content: "great movie loved it"}}

	got := e.ScoreMovie(context.Background(), movieA(), reviews, "")
	// 1.4 + 2.8 + 2.0 + 1.0 = 7.2; round(28.8 + 10 + 20 + 10) = 69
	if got.Rating != 7.2 || got.RecommendationScore != 69 {
		t.Errorf("ScoreMovie() = %+v, want rating 7.2 score 69", got)
	}
}

func TestScoreMovieCollaborativeEstimate(t *testing.T) {
	t.Parallel()

	store := &mockRatingStore{rows: []models.Rating{
		{UserID: "me", MovieID: 10, Rating: 8},
		{UserID: "u1", MovieID: 10, Rating: 8},
		{UserID: "u1", MovieID: 1, Rating: 9},
		{UserID: "u2", MovieID: 10, Rating: 8},
		{UserID: "u2", MovieID: 1, Rating: 7},
		{UserID: "stranger", MovieID: 1, Rating: 1},
	}}
	e := newTestEngine(t, nil, store, nil)

	sua, err := e.SimilarUsersAverage(context.Background(), movieA(), "me")
	if err != nil {
		t.Fatalf("SimilarUsersAverage() error = %v", err)
	}
	if !floatEqual(sua, 8) {
		t.Errorf("SimilarUsersAverage() = %v, want 8", sua)
	}
	if diff := cmp.Diff([]string{"u1", "u2"}, store.byMovie); diff != "" {
		t.Errorf("neighbors queried mismatch (-want +got):\n%s", diff)
	}

	got := e.ScoreMovie(context.Background(), movieA(), nil, "me")
	// 1.4 + 3.2 + 1.0 = 5.6; round(22.4 + 10 + 10) = 42
	if got.Rating != 5.6 || got.RecommendationScore != 42 {
		t.Errorf("ScoreMovie() = %+v, want rating 5.6 score 42", got)
	}
}

func TestSimilarUsersAverageFallsBackToVoteAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		store  RatingReader
		userID string
	}{
		{"no user", &mockRatingStore{rows: []models.Rating{{UserID: "u", MovieID: 1, Rating: 2}}}, ""},
		{"no store", nil, "me"},
		{"user has no ratings", &mockRatingStore{rows: []models.Rating{{UserID: "u", MovieID: 1, Rating: 2}}}, "me"},
		{"no overlapping users", &mockRatingStore{rows: []models.Rating{
			{UserID: "me", MovieID: 5, Rating: 5},
			{UserID: "u", MovieID: 1, Rating: 2},
		}}, "me"},
		{"neighbors have not rated the movie", &mockRatingStore{rows: []models.Rating{
			{UserID: "me", MovieID: 5, Rating: 5},
			{UserID: "u", MovieID: 5, Rating: 5},
		}}, "me"},
		{"store timeout", &mockRatingStore{block: true}, "me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.StoreTimeout = 10 * time.Millisecond
			e := newTestEngine(t, cfg, tt.store, nil)

			got, err := e.SimilarUsersAverage(context.Background(), movieA(), tt.userID)
			if err != nil {
				t.Fatalf("SimilarUsersAverage() error = %v", err)
			}
			if got != 7.0 {
				t.Errorf("SimilarUsersAverage() = %v, want vote average 7.0", got)
			}
		})
	}
}

func TestScoreMovieTimeoutIsAbsentData(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.StoreTimeout = 10 * time.Millisecond
	e := newTestEngine(t, cfg, &mockRatingStore{block: true}, &mockScoreStore{block: true})
	reviews := []models.Review{{Rating: 10, Content: "great movie loved it"}}

	got := e.ScoreMovie(context.Background(), movieA(), reviews, "me")
	want := models.MovieScore{Rating: 6.2, RecommendationScore: 55, TotalReviews: 1, SentimentScore: 1.0}
	if diff := cmp.Diff(want, got, cmp.Comparer(floatEqual)); diff != "" {
		t.Errorf("ScoreMovie() mismatch (-want +got):\n%s", diff)
	}

	stats := e.Stats()
	if stats.StoreTimeouts != 2 {
		t.Errorf("StoreTimeouts = %d, want 2", stats.StoreTimeouts)
	}
	if stats.Fallbacks != 0 || stats.Scored != 1 {
		t.Errorf("Stats() = %+v, want one full score and no fallback", stats)
	}
}

func TestScoreMovieFallback(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection refused")
	reviews := []models.Review{{Rating: 9, Content: "great"}}

	tests := []struct {
		name    string
		ratings RatingReader
		scores  MLScoreStore
		userID  string
	}{
		{"ml store unavailable", nil, &mockScoreStore{err: storeErr}, ""},
		{"rating store unavailable", &mockRatingStore{err: storeErr}, nil, "me"},
		{"non-finite ml score", nil, &mockScoreStore{score: math.NaN(), ok: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(t, nil, tt.ratings, tt.scores)
			got := e.ScoreMovie(context.Background(), movieA(), reviews, tt.userID)

			want := models.MovieScore{Rating: 7.0}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ScoreMovie() mismatch (-want +got):\n%s", diff)
			}
			if e.Stats().Fallbacks != 1 {
				t.Errorf("Fallbacks = %d, want 1", e.Stats().Fallbacks)
			}
		})
	}
}

func TestScoreMovieInvalidMovie(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil, nil)

	if got := e.ScoreMovie(context.Background(), nil, nil, ""); got != (models.MovieScore{}) {
		t.Errorf("ScoreMovie(nil) = %+v, want zero score", got)
	}

	bad := movieA()
	bad.VoteAverage = math.Inf(1)
	if got := e.ScoreMovie(context.Background(), bad, nil, ""); got != (models.MovieScore{}) {
		t.Errorf("ScoreMovie(inf vote average) = %+v, want zero score", got)
	}

	if _, err := e.SimilarUsersAverage(context.Background(), nil, "me"); !errors.Is(err, ErrNilMovie) {
		t.Errorf("SimilarUsersAverage(nil) error = %v, want ErrNilMovie", err)
	}
}

func TestScoreMovieClampsInputs(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil, &mockScoreStore{score: 5, ok: true})
	movie := &models.Movie{ID: 2, VoteAverage: 10, Popularity: 1e9}
	reviews := []models.Review{{Rating: 10, Content: "masterpiece"}}

	got := e.ScoreMovie(context.Background(), movie, reviews, "")
	if got.Rating != 10 || got.RecommendationScore != 100 {
		t.Errorf("ScoreMovie() = %+v, want rating 10 score 100", got)
	}

	movie.Popularity = math.NaN()
	movie.VoteAverage = 0
	e = newTestEngine(t, nil, nil, nil)
	got = e.ScoreMovie(context.Background(), movie, []models.Review{{Rating: 0, Content: "awful"}}, "")
	if got.RecommendationScore != 0 || got.Rating != 0 {
		t.Errorf("ScoreMovie() = %+v, want rating 0 score 0", got)
	}
}

func TestScoreMovieRecommendationScoreInRange(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil, &mockScoreStore{score: 0.3, ok: true})
	for _, va := range []float64{0, 2.5, 5, 7.5, 10, 15, -3} {
		for _, pop := range []float64{-1, 0, 30, 100, 5000} {
			m := &models.Movie{ID: 3, VoteAverage: va, Popularity: pop}
			got := e.ScoreMovie(context.Background(), m, []models.Review{{Rating: 6, Content: "good"}}, "")
			if got.RecommendationScore < 0 || got.RecommendationScore > 100 {
				t.Errorf("va=%v pop=%v: RecommendationScore = %d, outside [0,100]", va, pop, got.RecommendationScore)
			}
		}
	}
}

func TestEnhanceRecommendations(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil, nil)
	ref := &models.MovieDetails{
		Movie:  models.Movie{ID: 1, VoteAverage: 7, ReleaseDate: "2010-01-01", Popularity: 50},
		Genres: []models.Genre{{ID: 1, Name: "Action"}},
	}
	candidates := []models.Movie{
		{ID: 10, VoteAverage: 2, ReleaseDate: "1970-01-01", Popularity: 1},
		{ID: 11, VoteAverage: 7, ReleaseDate: "2010-01-01", Popularity: 50, GenreIDs: []int{1}},
	}

	got := e.EnhanceRecommendations(ref, candidates, []models.Review{{Rating: 1, Content: "awful"}})
	if len(got) != 2 || got[0].ID != 11 || got[1].ID != 10 {
		t.Errorf("EnhanceRecommendations() order = %v, want [11 10]", got)
	}
	if e.Stats().Ranked != 1 {
		t.Errorf("Ranked = %d, want 1", e.Stats().Ranked)
	}
}

func TestScoreMovieConcurrentUse(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, &mockRatingStore{}, &mockScoreStore{score: 0.2, ok: true})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.ScoreMovie(context.Background(), movieA(), nil, "someone")
		}()
	}
	wg.Wait()

	if got := e.Stats().Scored; got != 20 {
		t.Errorf("Scored = %d, want 20", got)
	}
}
