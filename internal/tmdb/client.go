// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/cache"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

const (
	breakerName = "tmdb-api"

	// maxBodySize bounds successful response bodies.
	maxBodySize = 4 * 1024 * 1024

	// maxErrorBodySize bounds the body kept for error reporting.
	maxErrorBodySize = 1024

	maxRetryDelay = 30 * time.Second
)

// Endpoint labels used for metrics.
const (
	endpointTrending        = "trending"
	endpointDetails         = "details"
	endpointSearch          = "search"
	endpointRecommendations = "recommendations"
)

// Page is one page of a TMDB list response.
type Page struct {
	Page         int            `json:"page"`
	Results      []models.Movie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Client reads the TMDB catalog. It is safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	bearer   bool

	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
	cache   *cache.LRU[[]byte]

	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a catalog client from cfg.
func NewClient(cfg *config.TMDBConfig) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.ParseRequestURI(base); err != nil || base == "" {
		return nil, fmt.Errorf("invalid TMDB base URL %q", cfg.BaseURL)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:        base,
		apiKey:         cfg.APIKey,
		language:       cfg.Language,
		bearer:         isReadAccessToken(cfg.APIKey),
		http:           &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(limit, burst),
		cb:             newCircuitBreaker(),
		cache:          cache.NewLRU[[]byte](cfg.CacheSize, cfg.CacheTTL),
		maxRetries:     3,
		retryBaseDelay: time.Second,
	}, nil
}

// Trending returns this week's trending movies.
func (c *Client) Trending(ctx context.Context) ([]models.Movie, error) {
	var page Page
	if err := c.getJSON(ctx, endpointTrending, "/trending/movie/week", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// MovieDetails returns the full record of a movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: movie id %d", ErrInvalidArgument, movieID)
	}
	var details models.MovieDetails
	if err := c.getJSON(ctx, endpointDetails, "/movie/"+strconv.Itoa(movieID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Search returns movies whose title matches query.
func (c *Client) Search(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidArgument)
	}
	var page Page
	params := url.Values{"query": {query}, "include_adult": {"false"}}
	if err := c.getJSON(ctx, endpointSearch, "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Recommendations returns the catalog's recommendations for a movie.
func (c *Client) Recommendations(ctx context.Context, movieID int) ([]models.Movie, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: movie id %d", ErrInvalidArgument, movieID)
	}
	var page Page
	path := "/movie/" + strconv.Itoa(movieID) + "/recommendations"
	if err := c.getJSON(ctx, endpointRecommendations, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// CacheStats returns response cache hit and miss counts and its size.
func (c *Client) CacheStats() (hits, misses int64, size int) {
	return c.cache.Stats()
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	body, err := c.get(ctx, endpoint, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// get returns the body of a successful GET, serving from the cache when
// possible.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}
	cacheKey := path + "?" + params.Encode()

	if body, ok := c.cache.Get(cacheKey); ok {
		metrics.RecordTMDBCache(true)
		return body, nil
	}
	metrics.RecordTMDBCache(false)

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.doRequestWithRateLimit(ctx, endpoint, path, params)
	})
	if err != nil {
		return nil, err
	}

	c.cache.Add(cacheKey, body)
	return body, nil
}

// doRequestWithRateLimit performs the request, retrying HTTP 429 with
// exponential backoff (1s, 2s, 4s by default).
func (c *Client) doRequestWithRateLimit(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	reqURL := c.buildURL(path, params)

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.bearer {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			metrics.RecordTMDBRequest(endpoint, 0)
			return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
		}
		metrics.RecordTMDBRequest(endpoint, resp.StatusCode)

		if resp.StatusCode == http.StatusTooManyRequests {
			delay := c.retryDelay(attempt, resp.Header.Get("Retry-After"))
			closeBody(resp)
			if attempt == c.maxRetries {
				break
			}
			logging.Warn().
				Str("endpoint", endpoint).
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Msg("TMDB rate limited, backing off")
			if err := sleepContext(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		return readResponse(resp)
	}

	return nil, ErrRateLimited
}

func (c *Client) buildURL(path string, params url.Values) string {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if c.apiKey != "" && !c.bearer {
		q.Set("api_key", c.apiKey)
	}
	if len(q) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + q.Encode()
}

func (c *Client) retryDelay(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && secs >= 0 {
		return min(time.Duration(secs)*time.Second, maxRetryDelay)
	}
	delay := time.Duration(float64(c.retryBaseDelay) * math.Pow(2, float64(attempt)))
	return min(delay, maxRetryDelay)
}

func readResponse(resp *http.Response) ([]byte, error) {
	defer closeBody(resp)

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	_ = resp.Body.Close()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isReadAccessToken reports whether key is a v4 read access token (a JWT)
// rather than a v3 API key.
func isReadAccessToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

func newCircuitBreaker() *gobreaker.CircuitBreaker[[]byte] {
	metrics.SetCircuitBreakerState(breakerName, int(gobreaker.StateClosed))

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Client errors say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}
