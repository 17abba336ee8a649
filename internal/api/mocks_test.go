// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/authz"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/eventprocessor"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/tmdb"
)

const testSecret = "api-test-secret-with-enough-entropy"

type mockCatalog struct {
	mu        sync.Mutex
	details   map[int]*models.MovieDetails
	trending  []models.Movie
	recs      map[int][]models.Movie
	err       error
	lastQuery string
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		details: map[int]*models.MovieDetails{
			550: {
				Movie:  models.Movie{ID: 550, Title: "Fight Club", VoteAverage: 8.4, ReleaseDate: "1999-10-15", Popularity: 60},
				Genres: []models.Genre{{ID: 18, Name: "Drama"}},
			},
		},
		trending: []models.Movie{{ID: 1, Title: "Trending One"}, {ID: 2, Title: "Trending Two"}},
		recs: map[int][]models.Movie{
			550: {
				{ID: 10, Title: "First", VoteAverage: 7.0},
				{ID: 11, Title: "Second", VoteAverage: 6.0},
				{ID: 12, Title: "Third", VoteAverage: 5.0},
			},
		},
	}
}

func (m *mockCatalog) Trending(_ context.Context) ([]models.Movie, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.trending, nil
}

func (m *mockCatalog) Search(_ context.Context, query string) ([]models.Movie, error) {
	m.mu.Lock()
	m.lastQuery = query
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return []models.Movie{{ID: 99, Title: query}}, nil
}

func (m *mockCatalog) MovieDetails(_ context.Context, movieID int) (*models.MovieDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.details[movieID]
	if !ok {
		return nil, tmdb.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockCatalog) Recommendations(_ context.Context, movieID int) ([]models.Movie, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Movie(nil), m.recs[movieID]...), nil
}

type mockStore struct {
	mu         sync.Mutex
	ratings    []models.Rating
	prefs      []models.UserPreferences
	reviews    map[int][]models.Review
	pingErr    error
	writeErr   error
	reviewsErr error
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

func (m *mockStore) UpsertRating(_ context.Context, r *models.Rating) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.UpdatedAt = time.Now().UTC()
	m.ratings = append(m.ratings, *r)
	return nil
}

func (m *mockStore) ReviewsByMovie(_ context.Context, movieID int) ([]models.Review, error) {
	if m.reviewsErr != nil {
		return nil, m.reviewsErr
	}
	return m.reviews[movieID], nil
}

func (m *mockStore) UpsertPreferences(_ context.Context, prefs *models.UserPreferences) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = append(m.prefs, *prefs)
	return nil
}

type scoreCall struct {
	movieID int
	userID  string
	reviews int
}

// mockScorer adds one point to the catalog rating for known users and
// reverses candidate lists.
type mockScorer struct {
	mu    sync.Mutex
	calls []scoreCall
}

func (m *mockScorer) ScoreMovie(_ context.Context, movie *models.Movie, reviews []models.Review, userID string) models.MovieScore {
	m.mu.Lock()
	m.calls = append(m.calls, scoreCall{movieID: movie.ID, userID: userID, reviews: len(reviews)})
	m.mu.Unlock()

	rating := movie.VoteAverage
	if userID != "" {
		rating++
	}
	return models.MovieScore{Rating: rating, RecommendationScore: 50, TotalReviews: len(reviews)}
}

func (m *mockScorer) EnhanceRecommendations(_ *models.MovieDetails, candidates []models.Movie, _ []models.Review) []models.Movie {
	out := make([]models.Movie, len(candidates))
	for i := range candidates {
		out[len(candidates)-1-i] = candidates[i]
	}
	return out
}

func (m *mockScorer) snapshot() []scoreCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]scoreCall(nil), m.calls...)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []*eventprocessor.RatingSubmitted
	err    error
}

func (m *mockPublisher) PublishRating(_ context.Context, event *eventprocessor.RatingSubmitted) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

type mockJob struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (m *mockJob) Run(_ context.Context, userID string, movieID int) (*models.MLRecommendation, error) {
	m.mu.Lock()
	m.calls = append(m.calls, userID)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &models.MLRecommendation{UserID: userID, MovieID: movieID, Score: 0.8}, nil
}

type mockNotifier struct {
	mu    sync.Mutex
	count int
	last  models.MLRecommendation
}

func (m *mockNotifier) BroadcastRecommendationUpdated(movieID int, userID string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	m.last = models.MLRecommendation{UserID: userID, MovieID: movieID, Score: score}
}

// testServer is a fully routed handler backed by mocks.
type testServer struct {
	http      http.Handler
	tokens    *auth.JWTManager
	catalog   *mockCatalog
	store     *mockStore
	scorer    *mockScorer
	publisher *mockPublisher
	job       *mockJob
	notifier  *mockNotifier
}

type serverOption func(*Dependencies, *ChiMiddlewareConfig)

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	tokens, err := auth.NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	enforcer, err := authz.NewEnforcer(authz.DefaultEnforcerConfig())
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	s := &testServer{
		tokens:    tokens,
		catalog:   newMockCatalog(),
		store:     &mockStore{reviews: map[int][]models.Review{}},
		scorer:    &mockScorer{},
		publisher: &mockPublisher{},
		job:       &mockJob{},
		notifier:  &mockNotifier{},
	}
	deps := &Dependencies{
		Catalog:   s.catalog,
		Store:     s.store,
		Scorer:    s.scorer,
		Publisher: s.publisher,
		Job:       s.job,
		Notifier:  s.notifier,
		Auth:      auth.NewMiddleware(tokens, "jwt"),
		Authz:     authz.NewMiddleware(enforcer),
	}
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	for _, opt := range opts {
		opt(deps, mwCfg)
	}

	h, err := NewHandler(&config.Config{}, deps)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	s.http = NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi()
	return s
}

func (s *testServer) token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := s.tokens.GenerateToken(userID, role, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return tok
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an APIResponse: %v\n%s", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
