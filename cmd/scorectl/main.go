// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package main provides scorectl, an offline tool for the scoring engine.
//
// Commands:
//
//	scorectl score --movie movie.json [--reviews reviews.json] [--user id] [--db path]
//	scorectl rank --movie details.json --candidates movies.json
//	scorectl token --user id [--role user|admin] [--ttl 24h]
//
// score and rank read TMDB-shaped JSON and print the engine output as JSON.
// token mints a development JWT signed with JWT_SECRET.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "scorectl",
		Version: version,
		Usage:   "Score and rank movies with the recommendation engine",
		Commands: []*cli.Command{
			scoreCommand(),
			rankCommand(),
			tokenCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
