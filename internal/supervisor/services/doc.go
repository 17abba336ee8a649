// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package services adapts components with their own lifecycle methods to
// suture.Service. Components that already expose Serve(ctx) error, such as
// the event router and the WAL retry loop, are added to the tree directly.
package services
