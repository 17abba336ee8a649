// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package wal

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testEvent struct {
	UserID  string `json:"user_id"`
	MovieID int    `json:"movie_id"`
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.Path = ""
	cfg.SyncWrites = false
	cfg.RetryInterval = 10 * time.Millisecond
	cfg.RetryBackoff = 0
	cfg.MaxRetries = 3
	return cfg
}

func openTestWAL(t *testing.T) *BadgerWAL {
	t.Helper()
	cfg := testConfig()
	w, err := Open(&cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWriteConfirmLifecycle(t *testing.T) {
	t.Parallel()
	w := openTestWAL(t)
	ctx := context.Background()

	id, err := w.Write(ctx, &testEvent{UserID: "alice", MovieID: 7})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	pending, err := w.GetPending(ctx)
	if err != nil {
		t.Fatalf("GetPending() error = %v", err)
	}
	if len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("GetPending() = %v, want one entry %s", pending, id)
	}

	var ev testEvent
	if err := pending[0].UnmarshalPayload(&ev); err != nil {
		t.Fatalf("UnmarshalPayload() error = %v", err)
	}
	if ev.UserID != "alice" || ev.MovieID != 7 {
		t.Errorf("payload = %+v, want alice/7", ev)
	}

	if err := w.Confirm(ctx, id); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if err := w.Confirm(ctx, id); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("second Confirm() error = %v, want ErrEntryNotFound", err)
	}

	stats := w.Stats()
	if stats.PendingCount != 0 || stats.ConfirmedCount != 1 || stats.TotalWrites != 1 || stats.TotalConfirms != 1 {
		t.Errorf("Stats() = %+v", stats)
	}

	n, err := w.Compact(ctx)
	if err != nil || n != 1 {
		t.Errorf("Compact() = (%d, %v), want (1, nil)", n, err)
	}
	if got := w.Stats().ConfirmedCount; got != 0 {
		t.Errorf("ConfirmedCount after compaction = %d, want 0", got)
	}
}

func TestWriteValidation(t *testing.T) {
	t.Parallel()
	w := openTestWAL(t)
	ctx := context.Background()

	if _, err := w.Write(ctx, nil); !errors.Is(err, ErrNilEvent) {
		t.Errorf("Write(nil) error = %v, want ErrNilEvent", err)
	}
	if err := w.Confirm(ctx, ""); !errors.Is(err, ErrEmptyEntryID) {
		t.Errorf("Confirm(\"\") error = %v, want ErrEmptyEntryID", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := w.Write(ctx, &testEvent{}); !errors.Is(err, ErrWALClosed) {
		t.Errorf("Write after Close error = %v, want ErrWALClosed", err)
	}
	if _, err := w.GetPending(ctx); !errors.Is(err, ErrWALClosed) {
		t.Errorf("GetPending after Close error = %v, want ErrWALClosed", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing path", func(c *Config) { c.InMemory = false; c.Path = "" }, false},
		{"zero interval", func(c *Config) { c.RetryInterval = 0 }, false},
		{"zero retries", func(c *Config) { c.MaxRetries = 0 }, false},
		{"zero ttl", func(c *Config) { c.EntryTTL = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
