// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend/algorithms"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend/reranking"
)

// Engine scores single movies and reorders candidate lists.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	analyzer *algorithms.SentimentAnalyzer
	ranker   *reranking.Ranker

	ratings RatingReader
	scores  MLScoreStore

	scored        atomic.Int64
	fallbacks     atomic.Int64
	storeTimeouts atomic.Int64
	ranked        atomic.Int64
}

// NewEngine creates a scoring engine. Either store may be nil: without a
// rating store the collaborative estimate falls back to the catalog rating,
// and without a score store the ML score is 0.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, ratings RatingReader, scores MLScoreStore, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		analyzer: algorithms.NewSentimentAnalyzer(cfg.Lexicon),
		ranker:   reranking.NewRanker(cfg.Similarity),
		ratings:  ratings,
		scores:   scores,
	}, nil
}

// ScoreMovie computes the composite score of movie.
//
// The ML score and the similar-users estimate are read concurrently; both
// reads are bounded by the configured store timeout and a read that times
// out counts as missing data. Any other failure yields the fallback score
// {rating: vote_average, 0, 0, 0}. ScoreMovie never returns an error.
func (e *Engine) ScoreMovie(ctx context.Context, movie *models.Movie, reviews []models.Review, userID string) models.MovieScore {
	start := time.Now()
	score, err := e.scoreMovie(ctx, movie, reviews, userID)
	metrics.RecordScore(err != nil, time.Since(start))
	if err != nil {
		e.fallbacks.Add(1)
		event := e.logger.Warn().Err(err).Str("user_id", userID)
		if movie != nil {
			event = event.Int("movie_id", movie.ID)
		}
		event.Msg("movie scoring failed, using catalog rating")
		return fallbackScore(movie)
	}
	e.scored.Add(1)
	return score
}

func (e *Engine) scoreMovie(ctx context.Context, movie *models.Movie, reviews []models.Review, userID string) (models.MovieScore, error) {
	if movie == nil {
		return models.MovieScore{}, ErrNilMovie
	}
	if !isFinite(movie.VoteAverage) {
		return models.MovieScore{}, fmt.Errorf("vote average: %w", ErrNonFinite)
	}

	var mlScore, similarUsers float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := e.mlScore(gctx, movie.ID, userID)
		mlScore = v
		return err
	})
	g.Go(func() error {
		v, err := e.SimilarUsersAverage(gctx, movie, userID)
		similarUsers = v
		return err
	})
	if err := g.Wait(); err != nil {
		return models.MovieScore{}, err
	}

	sentiment := e.analyzer.Aggregate(reviews, e.config.Reviews)
	popularity := e.popularityFactor(movie.Popularity)

	sw := e.config.Score
	finalRating := movie.VoteAverage*sw.CatalogRating +
		similarUsers*sw.SimilarUsers +
		sentiment*models.MaxRating*sw.Sentiment +
		mlScore*models.MaxRating*sw.ML

	rw := e.config.Recommendation
	raw := finalRating/models.MaxRating*rw.Rating +
		popularity*rw.Popularity +
		sentiment*rw.Sentiment +
		mlScore*rw.ML

	if !isFinite(finalRating) || !isFinite(raw) {
		return models.MovieScore{}, fmt.Errorf("composite score: %w", ErrNonFinite)
	}

	return models.MovieScore{
		Rating:              math.Round(finalRating*10) / 10,
		RecommendationScore: clampScore(math.Round(raw)),
		TotalReviews:        len(reviews),
		SentimentScore:      sentiment,
	}, nil
}

// mlScore reads the stored ML score, clamped to [0,1]. A missing score, a
// missing store, or a timed out read all give 0.
func (e *Engine) mlScore(ctx context.Context, movieID int, userID string) (float64, error) {
	if e.scores == nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.StoreTimeout)
	defer cancel()

	v, ok, err := e.scores.Score(ctx, movieID, userID)
	if err != nil {
		if e.isTimeout(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("ml score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("ml score: %w", ErrNonFinite)
	}
	return math.Max(0, math.Min(1, v)), nil
}

// SimilarUsersAverage estimates userID's rating of movie from the users
// whose ratings most resemble theirs. Without a user, a rating store, any
// neighbors or any neighbor rating of the movie, the movie's own
// vote_average is returned. A timed out read also falls back to vote_average.
func (e *Engine) SimilarUsersAverage(ctx context.Context, movie *models.Movie, userID string) (float64, error) {
	if movie == nil {
		return 0, ErrNilMovie
	}
	self := movie.VoteAverage
	if userID == "" || e.ratings == nil {
		return self, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.StoreTimeout)
	defer cancel()

	v, err := e.similarUsersAverage(ctx, movie, userID)
	if err != nil {
		if e.isTimeout(err) {
			return self, nil
		}
		return 0, err
	}
	return v, nil
}

func (e *Engine) similarUsersAverage(ctx context.Context, movie *models.Movie, userID string) (float64, error) {
	self := movie.VoteAverage

	mine, err := e.ratings.RatingsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("user ratings: %w", err)
	}
	if len(mine) == 0 {
		return self, nil
	}

	others, err := e.ratings.RatingsExcludingUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("other ratings: %w", err)
	}

	neighbors := algorithms.FindSimilarUsers(userID, mine, others, e.config.NeighborhoodSize)
	if len(neighbors) == 0 {
		return self, nil
	}

	rows, err := e.ratings.RatingsByMovie(ctx, movie.ID, algorithms.NeighborIDs(neighbors))
	if err != nil {
		return 0, fmt.Errorf("neighbor ratings: %w", err)
	}

	values := make([]float64, 0, len(rows))
	for i := range rows {
		values = append(values, rows[i].Rating)
	}
	return algorithms.EstimateRating(values, self), nil
}

// EnhanceRecommendations reorders candidates by catalog similarity to ref.
// The result is a permutation of candidates in which equal similarities
// keep their input order. Reviews are accepted for call-site compatibility
// and do not affect the order.
func (e *Engine) EnhanceRecommendations(ref *models.MovieDetails, candidates []models.Movie, _ []models.Review) []models.Movie {
	e.ranked.Add(1)
	return e.ranker.Rank(ref, candidates)
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Scored:        e.scored.Load(),
		Fallbacks:     e.fallbacks.Load(),
		StoreTimeouts: e.storeTimeouts.Load(),
		Ranked:        e.ranked.Load(),
	}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

func (e *Engine) popularityFactor(popularity float64) float64 {
	if !isFinite(popularity) || popularity <= 0 {
		return 0
	}
	return math.Min(popularity/e.config.PopularitySaturation, 1)
}

func (e *Engine) isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &te) && te.Timeout()) {
		e.storeTimeouts.Add(1)
		return true
	}
	return false
}

func fallbackScore(movie *models.Movie) models.MovieScore {
	if movie == nil || !isFinite(movie.VoteAverage) {
		return models.MovieScore{}
	}
	return models.MovieScore{Rating: movie.VoteAverage}
}

func clampScore(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
