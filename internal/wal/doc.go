// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package wal provides a BadgerDB outbox for rating-submitted events.

A rating is stored in DuckDB before its recompute event is published. If
the broker is unavailable at that moment the event would be lost, and the
user's ML score would stay stale until their next rating. The WAL closes
that gap:

 1. The event is written under a "pending:" key.
 2. The publisher tries NATS.
 3. On success the entry moves to a "confirmed:" key.
 4. On failure the entry stays pending and RetryLoop republishes it with
    exponential backoff until MaxRetries or EntryTTL is reached.

Confirmed entries are removed by Compact, which RetryLoop runs after each
pass.

Tests open the WAL with Config.InMemory set; nothing touches disk.
*/
package wal
