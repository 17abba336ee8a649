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

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

// Score returns the persisted ML score of movieID for userID. When the user
// has no row of their own, the most recently written score of the movie for
// any user is used. ok is false when the movie has no score at all.
func (db *DB) Score(ctx context.Context, movieID int, userID string) (score float64, ok bool, err error) {
	start := time.Now()
	defer func() { observe("score", "movie_recommendations", start, err) }()

	if db.conn == nil {
		return 0, false, ErrClosed
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if userID != "" {
		err = db.conn.QueryRowContext(ctx,
			`SELECT score FROM movie_recommendations WHERE user_id = ? AND movie_id = ?`,
			userID, movieID).Scan(&score)
		switch {
		case err == nil:
			return score, true, nil
		case !errors.Is(err, sql.ErrNoRows):
			return 0, false, fmt.Errorf("failed to query user score: %w", err)
		}
	}

	err = db.conn.QueryRowContext(ctx,
		`SELECT score FROM movie_recommendations WHERE movie_id = ? ORDER BY updated_at DESC LIMIT 1`,
		movieID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query movie score: %w", err)
	}
	return score, true, nil
}

// UpsertMLScore writes the ML score of (UserID, MovieID).
func (db *DB) UpsertMLScore(ctx context.Context, rec *models.MLRecommendation) (err error) {
	start := time.Now()
	defer func() { observe("upsert", "movie_recommendations", start, err) }()

	if db.conn == nil {
		return ErrClosed
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO movie_recommendations (user_id, movie_id, score, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET
			score = EXCLUDED.score,
			updated_at = EXCLUDED.updated_at`

	err = withRetry(ctx, func() error {
		_, execErr := db.conn.ExecContext(ctx, query, rec.UserID, rec.MovieID, rec.Score, rec.UpdatedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to upsert ml score: %w", err)
	}
	return nil
}
