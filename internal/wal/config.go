// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package wal

import (
	"fmt"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
)

// Config holds WAL settings.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory.
	InMemory bool

	// SyncWrites forces fsync after every write.
	SyncWrites bool

	// RetryInterval is the time between retry passes.
	RetryInterval time.Duration

	// MaxRetries is the number of publish attempts before an entry is dropped.
	MaxRetries int

	// RetryBackoff is the base of the per-entry exponential backoff.
	RetryBackoff time.Duration

	// EntryTTL bounds how long an unconfirmed entry is kept.
	EntryTTL time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Path:          "/data/wal",
		SyncWrites:    true,
		RetryInterval: 30 * time.Second,
		MaxRetries:    100,
		RetryBackoff:  5 * time.Second,
		EntryTTL:      168 * time.Hour,
	}
}

// FromAppConfig converts the application WAL section.
func FromAppConfig(c *config.WALConfig) Config {
	cfg := DefaultConfig()
	cfg.Path = c.Path
	cfg.SyncWrites = c.SyncWrites
	if c.RetryInterval > 0 {
		cfg.RetryInterval = c.RetryInterval
	}
	if c.MaxRetries > 0 {
		cfg.MaxRetries = c.MaxRetries
	}
	if c.EntryTTL > 0 {
		cfg.EntryTTL = c.EntryTTL
	}
	return cfg
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !c.InMemory && c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.RetryInterval <= 0 {
		return fmt.Errorf("retry interval must be positive, got %v", c.RetryInterval)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1, got %d", c.MaxRetries)
	}
	if c.RetryBackoff < 0 {
		return fmt.Errorf("retry backoff must not be negative, got %v", c.RetryBackoff)
	}
	if c.EntryTTL <= 0 {
		return fmt.Errorf("entry TTL must be positive, got %v", c.EntryTTL)
	}
	return nil
}
