// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared across
the API.

# Domain Types

  - Voter: a registered student; has_voted is the only field that changes
    after registration, and it changes exactly once
  - Candidate: a contestant for a position; read-only after seeding
  - Vote: one voter's choice for one position; append-only
  - CandidateResult: candidate joined with its live vote count

Positions are not an entity. The distinct set of position labels among the
candidates is computed at read time.

# Response Envelope

Every API response carries a success flag. Failures use Envelope with a
user-facing message; successes use the action-specific response type.

# Sensitive Fields

Voter.PasswordHash uses json:"-" and is never serialized.
*/
package models
