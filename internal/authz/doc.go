// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

// Package authz decides which roles may perform write operations, using a
// Casbin RBAC model with role inheritance. The model and default policy
// are embedded; a policy file may replace the default policy.
//
// Subjects are roles from the authenticated token, never user ids, so the
// policy stays small and needs no per-user maintenance.
package authz
