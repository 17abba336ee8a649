// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package main

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/eventprocessor"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

type countingJob struct {
	calls atomic.Int32
}

func (j *countingJob) Run(_ context.Context, userID string, movieID int) (*models.MLRecommendation, error) {
	j.calls.Add(1)
	return &models.MLRecommendation{UserID: userID, MovieID: movieID, Score: 0.5}, nil
}

type nopHub struct{}

func (nopHub) BroadcastRatingUpdated(int, string, float64)         {}
func (nopHub) BroadcastRecommendationUpdated(int, string, float64) {}

func TestInitEventsInProcess(t *testing.T) {
	t.Parallel()

	job := &countingJob{}
	cfg := &config.Config{}
	events, err := initEvents(context.Background(), cfg, job, nopHub{})
	if err != nil {
		t.Fatalf("initEvents() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = events.router.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		events.Close()
	})

	if events.retryLoop != nil {
		t.Error("retryLoop should be nil when the WAL is disabled")
	}
	if _, ok := events.publisher.(*eventprocessor.Publisher); !ok {
		t.Errorf("publisher = %T, want *eventprocessor.Publisher", events.publisher)
	}

	select {
	case <-events.router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	event := eventprocessor.NewRatingSubmitted(&models.Rating{UserID: "alice", MovieID: 550, Rating: 8})
	if err := events.publisher.PublishRating(context.Background(), event); err != nil {
		t.Fatalf("PublishRating() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for job.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("recompute job was not run")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestInitEventsWithWAL(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		WAL: config.WALConfig{
			Enabled: true,
			Path:    filepath.Join(t.TempDir(), "wal"),
		},
	}
	events, err := initEvents(context.Background(), cfg, &countingJob{}, nopHub{})
	if err != nil {
		t.Fatalf("initEvents() error = %v", err)
	}
	defer events.Close()

	if events.retryLoop == nil {
		t.Fatal("retryLoop should be set when the WAL is enabled")
	}
	if _, ok := events.publisher.(*eventprocessor.WALPublisher); !ok {
		t.Errorf("publisher = %T, want *eventprocessor.WALPublisher", events.publisher)
	}
}

type trackingPublisher struct {
	closes atomic.Int32
}

func (p *trackingPublisher) Publish(string, ...*message.Message) error { return nil }

func (p *trackingPublisher) Close() error {
	p.closes.Add(1)
	return nil
}

func TestWireEventsClosesTransportPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		job     eventprocessor.Recomputer
		wantErr bool
	}{
		{name: "handler creation fails", job: nil, wantErr: true},
		{name: "wired", job: &countingJob{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pub := &trackingPublisher{}
			sub := eventprocessor.NewGoChannelPubSub(eventprocessor.NewLoggerAdapter())
			t.Cleanup(func() { _ = sub.Close() })
			tr := &transport{
				publisher:  pub,
				subscriber: sub,
				settings:   eventprocessor.SettingsFromConfig(&config.NATSConfig{}, ""),
			}
			components := &EventComponents{}

			err := wireEvents(&config.Config{}, tr, tt.job, nopHub{}, eventprocessor.NewLoggerAdapter(), components)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wireEvents() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := pub.closes.Load(); got != 0 {
				t.Fatalf("publisher closed %d times before Close", got)
			}

			components.Close()
			if got := pub.closes.Load(); got != 1 {
				t.Errorf("publisher closed %d times, want 1", got)
			}
		})
	}
}
