// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
)

const ratingColumns = `user_id, movie_id, rating, COALESCE(review, ''), created_at, updated_at`

// UpsertRating inserts or replaces the rating of (UserID, MovieID).
// created_at is kept from the first submission.
func (db *DB) UpsertRating(ctx context.Context, r *models.Rating) (err error) {
	start := time.Now()
	defer func() { observe("upsert", "movie_ratings", start, err) }()

	if db.conn == nil {
		return ErrClosed
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	query := `
		INSERT INTO movie_ratings (user_id, movie_id, rating, review, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			review = EXCLUDED.review,
			updated_at = EXCLUDED.updated_at`

	err = withRetry(ctx, func() error {
		_, execErr := db.conn.ExecContext(ctx, query,
			r.UserID, r.MovieID, r.Rating, nullableString(r.Review), r.CreatedAt, r.UpdatedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	metrics.RecordRatingUpsert()
	return nil
}

// RatingsByUser returns every rating by userID, ordered by movie id.
func (db *DB) RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	return db.queryRatings(ctx, "ratings_by_user",
		`SELECT `+ratingColumns+` FROM movie_ratings WHERE user_id = ? ORDER BY movie_id`, userID)
}

// RatingsExcludingUser returns every rating not by userID.
func (db *DB) RatingsExcludingUser(ctx context.Context, userID string) ([]models.Rating, error) {
	return db.queryRatings(ctx, "ratings_excluding_user",
		`SELECT `+ratingColumns+` FROM movie_ratings WHERE user_id <> ? ORDER BY user_id, movie_id`, userID)
}

// RatingsByMovie returns the ratings of movieID by the given users. An
// empty userIDs returns the ratings of every user.
func (db *DB) RatingsByMovie(ctx context.Context, movieID int, userIDs []string) ([]models.Rating, error) {
	if len(userIDs) == 0 {
		return db.queryRatings(ctx, "ratings_by_movie",
			`SELECT `+ratingColumns+` FROM movie_ratings WHERE movie_id = ? ORDER BY updated_at DESC`, movieID)
	}

	placeholders := make([]string, len(userIDs))
	args := make([]interface{}, 0, len(userIDs)+1)
	args = append(args, movieID)
	for i, id := range userIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`SELECT %s FROM movie_ratings WHERE movie_id = ? AND user_id IN (%s) ORDER BY user_id`,
		ratingColumns, strings.Join(placeholders, ","))
	return db.queryRatings(ctx, "ratings_by_movie", query, args...)
}

// ReviewsByMovie returns the ratings of movieID that carry review text,
// most recent first.
func (db *DB) ReviewsByMovie(ctx context.Context, movieID int) ([]models.Review, error) {
	rows, err := db.queryRatings(ctx, "reviews_by_movie",
		`SELECT `+ratingColumns+` FROM movie_ratings
		WHERE movie_id = ? AND review IS NOT NULL AND review <> ''
		ORDER BY updated_at DESC`, movieID)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, models.ReviewFromRating(&rows[i]))
	}
	return reviews, nil
}

func (db *DB) queryRatings(ctx context.Context, operation, query string, args ...interface{}) (ratings []models.Rating, err error) {
	start := time.Now()
	defer func() { observe(operation, "movie_ratings", start, err) }()

	if db.conn == nil {
		return nil, ErrClosed
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var r models.Rating
		if err = rows.Scan(&r.UserID, &r.MovieID, &r.Rating, &r.Review, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}
	return ratings, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
