// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/auth"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint a JWT for local development",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Aliases:  []string{"u"},
				Usage:    "subject (user id)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "role",
				Value: auth.RoleUser,
				Usage: "role claim (user or admin)",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Value: 24 * time.Hour,
				Usage: "token lifetime",
			},
			&cli.StringFlag{
				Name:     "secret",
				Usage:    "HMAC signing secret",
				Sources:  cli.EnvVars("JWT_SECRET"),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "issuer",
				Usage:   "issuer claim",
				Sources: cli.EnvVars("JWT_ISSUER"),
			},
		},
		Action: runToken,
	}
}

func runToken(_ context.Context, cmd *cli.Command) error {
	role := cmd.String("role")
	if role != auth.RoleUser && role != auth.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}

	manager, err := auth.NewJWTManager(&config.SecurityConfig{
		JWTSecret:   cmd.String("secret"),
		JWTIssuer:   cmd.String("issuer"),
		DefaultRole: auth.RoleUser,
	})
	if err != nil {
		return err
	}

	token, err := manager.GenerateToken(cmd.String("user"), role, cmd.Duration("ttl"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, token)
	return err
}
