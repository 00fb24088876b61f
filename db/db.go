// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/campuselect/server/cliparse"
)

// Open connects to the store selected by cfg.DatabaseType. Callers own the
// returned handle and should Ping it before serving.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		return sql.Open("sqlite", cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The vote table carries a UNIQUE(voter_id, position) constraint as a
// backstop behind the submission transaction: even a buggy caller cannot
// record two choices for the same position.
const schema = `
-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    phone TEXT,
    department TEXT,
    year TEXT,
    password_hash TEXT NOT NULL,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Candidates (read-only after seeding)
CREATE TABLE IF NOT EXISTS candidate (
    id BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT NOT NULL,
    department TEXT,
    year TEXT,
    manifesto TEXT,
    symbol TEXT
);

CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);

-- Votes (append-only)
CREATE TABLE IF NOT EXISTS vote (
    voter_id TEXT NOT NULL REFERENCES voter(id),
    candidate_id BIGINT NOT NULL REFERENCES candidate(id),
    position TEXT NOT NULL,
    receipt_id TEXT NOT NULL,
    cast_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (voter_id, position)
);

CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
CREATE INDEX IF NOT EXISTS idx_vote_receipt_id ON vote(receipt_id);
`

// IsUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	// modernc.org/sqlite reports constraint failures in the error text
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE")
}
