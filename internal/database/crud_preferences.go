// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Preferences returns the stored preferences of userID, or ErrNotFound.
func (db *DB) Preferences(ctx context.Context, userID string) (prefs *models.UserPreferences, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, ErrNotFound) {
			observe("select", "user_preferences", start, nil)
			return
		}
		observe("select", "user_preferences", start, err)
	}()

	if db.conn == nil {
		return nil, ErrClosed
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var genres string
	prefs = &models.UserPreferences{UserID: userID}
	err = db.conn.QueryRowContext(ctx,
		`SELECT favorite_genres, updated_at FROM user_preferences WHERE user_id = ?`,
		userID).Scan(&genres, &prefs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}

	if err = json.Unmarshal([]byte(genres), &prefs.FavoriteGenres); err != nil {
		return nil, fmt.Errorf("failed to decode favorite genres: %w", err)
	}
	return prefs, nil
}

// UpsertPreferences stores the preferences of prefs.UserID.
func (db *DB) UpsertPreferences(ctx context.Context, prefs *models.UserPreferences) (err error) {
	start := time.Now()
	defer func() { observe("upsert", "user_preferences", start, err) }()

	if db.conn == nil {
		return ErrClosed
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	genres := prefs.FavoriteGenres
	if genres == nil {
		genres = []int{}
	}
	encoded, err := json.Marshal(genres)
	if err != nil {
		return fmt.Errorf("failed to encode favorite genres: %w", err)
	}
	prefs.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO user_preferences (user_id, favorite_genres, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			favorite_genres = EXCLUDED.favorite_genres,
			updated_at = EXCLUDED.updated_at`

	err = withRetry(ctx, func() error {
		_, execErr := db.conn.ExecContext(ctx, query, prefs.UserID, string(encoded), prefs.UpdatedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}
