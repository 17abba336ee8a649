// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package config loads service configuration with Koanf v2.

Configuration is layered, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/movierating/config.yaml, /etc/movierating/config.yml
 3. Environment variables listed in envTransformFunc

Unmapped environment variables are ignored so unrelated variables never
leak into the configuration. Slice settings such as CORS_ORIGINS accept
comma-separated values.

Example config.yaml:

	server:
	  port: 8080
	database:
	  path: /data/movies.duckdb
	tmdb:
	  api_key: "..."
	security:
	  jwt_secret: "at-least-32-characters-of-secret-material"
	recommend:
	  score_similar_users: 0.4
	  neighborhood_size: 5

Config is immutable after Load and safe for concurrent reads.
*/
package config
