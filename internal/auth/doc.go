// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package auth authenticates API callers with HS256 JSON Web Tokens.

Tokens are issued by an external identity provider sharing the signing
secret. The subject claim ("sub") is the user id used throughout the
service; the optional "role" claim selects the authorization role and
defaults to the configured default role.

Middleware:
  - Optional: attaches claims when a valid token is present, rejects an
    invalid token, and lets anonymous requests through
  - Required: rejects requests without a valid token

Tokens are read from the Authorization header ("Bearer <token>") or,
for browser clients, from the "token" cookie.

In auth mode "none" every request is anonymous and Required always
rejects.
*/
package auth
