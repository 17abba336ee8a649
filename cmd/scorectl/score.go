// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/database"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/models"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/recommend"
)

func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "score",
		Usage: "Score a single movie",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "movie",
				Aliases:  []string{"m"},
				Usage:    "path to a movie JSON object",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "reviews",
				Aliases: []string{"r"},
				Usage:   "path to a JSON array of reviews",
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "score for this user (uses ratings stored in --db)",
			},
			&cli.StringFlag{
				Name:  "db",
				Value: ":memory:",
				Usage: "DuckDB database holding ratings and ML scores",
			},
		},
		Action: runScore,
	}
}

func rankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "Rank candidate movies by similarity to a reference movie",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "movie",
				Aliases:  []string{"m"},
				Usage:    "path to the reference movie details JSON",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "candidates",
				Aliases:  []string{"c"},
				Usage:    "path to a JSON array of candidate movies",
				Required: true,
			},
		},
		Action: runRank,
	}
}

func runScore(ctx context.Context, cmd *cli.Command) error {
	var movie models.Movie
	if err := readJSON(cmd.String("movie"), &movie); err != nil {
		return err
	}
	var reviews []models.Review
	if path := cmd.String("reviews"); path != "" {
		if err := readJSON(path, &reviews); err != nil {
			return err
		}
	}

	db, err := database.New(&config.DatabaseConfig{Path: cmd.String("db")})
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), db, db, zerolog.Nop())
	if err != nil {
		return err
	}

	score := engine.ScoreMovie(ctx, &movie, reviews, cmd.String("user"))
	return writeJSON(cmd.Root().Writer, score)
}

func runRank(_ context.Context, cmd *cli.Command) error {
	var ref models.MovieDetails
	if err := readJSON(cmd.String("movie"), &ref); err != nil {
		return err
	}
	var candidates []models.Movie
	if err := readJSON(cmd.String("candidates"), &candidates); err != nil {
		return err
	}

	// Similarity ranking needs no stored data.
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), nil, nil, zerolog.Nop())
	if err != nil {
		return err
	}

	ranked := engine.EnhanceRecommendations(&ref, candidates, nil)
	if ranked == nil {
		ranked = []models.Movie{}
	}
	return writeJSON(cmd.Root().Writer, ranked)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI argument
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
