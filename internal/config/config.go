// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all service settings.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	NATS      NATSConfig      `koanf:"nats"` // Optional: recompute events over NATS JetStream
	WAL       WALConfig       `koanf:"wal"`  // Optional: durable outbox for recompute events
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)
}

// NATSConfig controls the recompute event pipeline.
//
// When Enabled is false, events travel over an in-process Go channel and
// are lost on restart.
type NATSConfig struct {
	// Enabled controls whether events go through NATS JetStream.
	Enabled bool `koanf:"enabled"`

	// URL is the NATS server connection URL.
	URL string `koanf:"url"`

	// EmbeddedServer starts an in-process NATS server.
	// If false, expects an external NATS server at URL.
	EmbeddedServer bool `koanf:"embedded_server"`

	// StoreDir is the JetStream storage directory for the embedded server.
	StoreDir string `koanf:"store_dir"`

	// StreamName is the JetStream stream holding rating events.
	StreamName string `koanf:"stream_name"`

	// StreamRetention is how long events are kept.
	StreamRetention time.Duration `koanf:"stream_retention"`

	// SubscribersCount is the number of concurrent message processors.
	SubscribersCount int `koanf:"subscribers_count"`

	// DurableName is the consumer durable name.
	DurableName string `koanf:"durable_name"`

	// QueueGroup is the queue group for load balancing.
	QueueGroup string `koanf:"queue_group"`

	// Router middleware settings
	RouterRetryCount           int           `koanf:"router_retry_count"`
	RouterRetryInitialInterval time.Duration `koanf:"router_retry_initial_interval"`
	RouterPoisonQueueTopic     string        `koanf:"router_poison_queue_topic"`
	RouterCloseTimeout         time.Duration `koanf:"router_close_timeout"`
}

// WALConfig holds the BadgerDB outbox settings.
type WALConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Path          string        `koanf:"path"`
	SyncWrites    bool          `koanf:"sync_writes"`
	RetryInterval time.Duration `koanf:"retry_interval"`
	MaxRetries    int           `koanf:"max_retries"`
	EntryTTL      time.Duration `koanf:"entry_ttl"`
}

// TMDBConfig holds The Movie Database API client settings.
type TMDBConfig struct {
	BaseURL   string        `koanf:"base_url"`
	APIKey    string        `koanf:"api_key"`
	Language  string        `koanf:"language"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"` // requests per second
	RateBurst int           `koanf:"rate_burst"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	CacheSize int           `koanf:"cache_size"`
}

// SecurityConfig holds authentication and authorization settings
type SecurityConfig struct {
	// AuthMode is "jwt" or "none". In "none" mode every request is anonymous
	// and write endpoints are unavailable.
	AuthMode          string        `koanf:"auth_mode"`
	JWTSecret         string        `koanf:"jwt_secret"`
	JWTIssuer         string        `koanf:"jwt_issuer"`
	DefaultRole       string        `koanf:"default_role"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// RecommendConfig holds the scoring engine weights and limits.
type RecommendConfig struct {
	ScoreCatalogRating float64 `koanf:"score_catalog_rating"`
	ScoreSimilarUsers  float64 `koanf:"score_similar_users"`
	ScoreSentiment     float64 `koanf:"score_sentiment"`
	ScoreML            float64 `koanf:"score_ml"`

	PointsRating     float64 `koanf:"points_rating"`
	PointsPopularity float64 `koanf:"points_popularity"`
	PointsSentiment  float64 `koanf:"points_sentiment"`
	PointsML         float64 `koanf:"points_ml"`

	SimilarityGenre      float64 `koanf:"similarity_genre"`
	SimilarityRating     float64 `koanf:"similarity_rating"`
	SimilarityRecency    float64 `koanf:"similarity_recency"`
	SimilarityPopularity float64 `koanf:"similarity_popularity"`

	ReviewSentiment float64 `koanf:"review_sentiment"`
	ReviewRating    float64 `koanf:"review_rating"`

	NeighborhoodSize     int           `koanf:"neighborhood_size"`
	PopularitySaturation float64       `koanf:"popularity_saturation"`
	StoreTimeout         time.Duration `koanf:"store_timeout"`

	// Empty word lists keep the built-in lexicon.
	PositiveWords []string `koanf:"positive_words"`
	NegativeWords []string `koanf:"negative_words"`
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
