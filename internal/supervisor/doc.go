// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package supervisor runs the long-lived components of the service under
// a suture v4 supervisor tree.
//
//	movie-ratings (root)
//	├── data-layer       WAL retry loop
//	├── messaging-layer  WebSocket hub, recompute event router
//	└── api-layer        HTTP server
//
// Services that fail are restarted with backoff; lifecycle events are
// logged through sutureslog. Adapters for components without a Serve
// method live in the services subpackage.
package supervisor
