// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movierating/config.yaml",
	"/etc/movierating/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/movies.duckdb",
			MaxMemory: "1GB",
			Threads:   0, // 0 = use runtime.NumCPU()
		},
		NATS: NATSConfig{
			Enabled:                    true,
			URL:                        "nats://127.0.0.1:4222",
			EmbeddedServer:             true,
			StoreDir:                   "/data/nats/jetstream",
			StreamName:                 "RATINGS",
			StreamRetention:            7 * 24 * time.Hour,
			SubscribersCount:           2,
			DurableName:                "recompute-worker",
			QueueGroup:                 "recompute",
			RouterRetryCount:           3,
			RouterRetryInitialInterval: 100 * time.Millisecond,
			RouterPoisonQueueTopic:     "ratings.poison",
			RouterCloseTimeout:         30 * time.Second,
		},
		WAL: WALConfig{
			Enabled:       true,
			Path:          "/data/wal",
			SyncWrites:    true,
			RetryInterval: 30 * time.Second,
			MaxRetries:    100,
			EntryTTL:      7 * 24 * time.Hour,
		},
		TMDB: TMDBConfig{
			BaseURL:   "https://api.themoviedb.org/3",
			APIKey:    "",
			Language:  "en-US",
			Timeout:   10 * time.Second,
			RateLimit: 40,
			RateBurst: 10,
			CacheTTL:  10 * time.Minute,
			CacheSize: 1000,
		},
		Security: SecurityConfig{
			AuthMode:        "jwt",
			JWTSecret:       "",
			JWTIssuer:       "",
			DefaultRole:     "user",
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			ScoreCatalogRating:   0.2,
			ScoreSimilarUsers:    0.4,
			ScoreSentiment:       0.2,
			ScoreML:              0.2,
			PointsRating:         40,
			PointsPopularity:     20,
			PointsSentiment:      20,
			PointsML:             20,
			SimilarityGenre:      0.25,
			SimilarityRating:     0.20,
			SimilarityRecency:    0.15,
			SimilarityPopularity: 0.15,
			ReviewSentiment:      0.5,
			ReviewRating:         0.5,
			NeighborhoodSize:     5,
			PopularitySaturation: 100,
			StoreTimeout:         2 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.positive_words",
	"recommend.negative_words",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Database mappings
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// NATS mappings
	"nats_enabled":               "nats.enabled",
	"nats_url":                   "nats.url",
	"nats_embedded":              "nats.embedded_server",
	"nats_store_dir":             "nats.store_dir",
	"nats_stream":                "nats.stream_name",
	"nats_retention":             "nats.stream_retention",
	"nats_subscribers":           "nats.subscribers_count",
	"nats_durable_name":          "nats.durable_name",
	"nats_queue_group":           "nats.queue_group",
	"nats_router_retry_count":    "nats.router_retry_count",
	"nats_router_retry_interval": "nats.router_retry_initial_interval",
	"nats_router_poison_topic":   "nats.router_poison_queue_topic",
	"nats_router_close_timeout":  "nats.router_close_timeout",

	// WAL mappings
	"wal_enabled":        "wal.enabled",
	"wal_path":           "wal.path",
	"wal_sync_writes":    "wal.sync_writes",
	"wal_retry_interval": "wal.retry_interval",
	"wal_max_retries":    "wal.max_retries",
	"wal_entry_ttl":      "wal.entry_ttl",

	// TMDB mappings
	"tmdb_base_url":   "tmdb.base_url",
	"tmdb_api_key":    "tmdb.api_key",
	"tmdb_language":   "tmdb.language",
	"tmdb_timeout":    "tmdb.timeout",
	"tmdb_rate_limit": "tmdb.rate_limit",
	"tmdb_rate_burst": "tmdb.rate_burst",
	"tmdb_cache_ttl":  "tmdb.cache_ttl",
	"tmdb_cache_size": "tmdb.cache_size",

	// Security mappings
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"jwt_issuer":          "security.jwt_issuer",
	"default_role":        "security.default_role",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Scoring engine mappings
	"recommend_score_catalog_rating":  "recommend.score_catalog_rating",
	"recommend_score_similar_users":   "recommend.score_similar_users",
	"recommend_score_sentiment":       "recommend.score_sentiment",
	"recommend_score_ml":              "recommend.score_ml",
	"recommend_points_rating":         "recommend.points_rating",
	"recommend_points_popularity":     "recommend.points_popularity",
	"recommend_points_sentiment":      "recommend.points_sentiment",
	"recommend_points_ml":             "recommend.points_ml",
	"recommend_similarity_genre":      "recommend.similarity_genre",
	"recommend_similarity_rating":     "recommend.similarity_rating",
	"recommend_similarity_recency":    "recommend.similarity_recency",
	"recommend_similarity_popularity": "recommend.similarity_popularity",
	"recommend_review_sentiment":      "recommend.review_sentiment",
	"recommend_review_rating":         "recommend.review_rating",
	"recommend_neighborhood_size":     "recommend.neighborhood_size",
	"recommend_popularity_saturation": "recommend.popularity_saturation",
	"recommend_store_timeout":         "recommend.store_timeout",
	"recommend_positive_words":        "recommend.positive_words",
	"recommend_negative_words":        "recommend.negative_words",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//   - TMDB_API_KEY -> tmdb.api_key
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so random environment variables never
	// pollute the configuration.
	return ""
}
