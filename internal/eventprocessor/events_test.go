// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

func validEvent() *RatingSubmitted {
	return NewRatingSubmitted(&models.Rating{UserID: "alice", MovieID: 550, Rating: 8, UpdatedAt: time.Now()})
}

func TestNewRatingSubmitted(t *testing.T) {
	t.Parallel()

	e := validEvent()
	if e.EventID == "" || e.SchemaVersion != SchemaVersion {
		t.Errorf("NewRatingSubmitted() = %+v, want id and schema version", e)
	}
	if e.UserID != "alice" || e.MovieID != 550 || e.Rating != 8 {
		t.Errorf("NewRatingSubmitted() copied fields wrong: %+v", e)
	}
	if other := validEvent(); other.EventID == e.EventID {
		t.Error("event ids are not unique")
	}
}

func TestRatingSubmittedValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*RatingSubmitted)
		ok     bool
	}{
		{"valid", func(*RatingSubmitted) {}, true},
		{"bounds inclusive", func(e *RatingSubmitted) { e.Rating = 10 }, true},
		{"missing id", func(e *RatingSubmitted) { e.EventID = "" }, false},
		{"missing user", func(e *RatingSubmitted) { e.UserID = "" }, false},
		{"zero movie", func(e *RatingSubmitted) { e.MovieID = 0 }, false},
		{"rating too high", func(e *RatingSubmitted) { e.Rating = 10.5 }, false},
		{"negative rating", func(e *RatingSubmitted) { e.Rating = -1 }, false},
		{"NaN rating", func(e *RatingSubmitted) { e.Rating = math.NaN() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := validEvent()
			tt.mutate(e)
			err := e.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("Validate() error = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestSerializerRoundTripKeepsWireNames(t *testing.T) {
	t.Parallel()

	s := NewSerializer()
	data, err := s.Marshal(validEvent())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"userId":"alice"`, `"movieId":550`, `"rating":8`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("payload %s missing %s", data, key)
		}
	}

	if _, err := s.Unmarshal([]byte(`{"event_id":"x","userId":"","movieId":1}`)); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("Unmarshal(invalid) error = %v, want ErrInvalidEvent", err)
	}
	if _, err := s.Unmarshal([]byte(`not json`)); err == nil {
		t.Error("Unmarshal(garbage) succeeded")
	}
}
