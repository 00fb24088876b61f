// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles store connections, schema creation, and demo seeding.

# Drivers

Open selects the driver from the configured database type:

  - postgres: github.com/lib/pq
  - sqlite:   modernc.org/sqlite (pure Go, used for dev and tests)

Query placeholders use the $1 form, which both drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	voter     registered voters; has_voted flag flipped once by vote submission
	candidate the seeded ballot; read-only afterwards
	vote      append-only choices; UNIQUE(voter_id, position)

# Seeding

SeedCandidates inserts a fixed demo slate only when the candidate table is
empty, so repeated starts never duplicate the ballot.

# Errors

IsUniqueViolation recognizes uniqueness-constraint failures from both drivers
(pq error code 23505, sqlite constraint message) so handlers can translate a
duplicate registration into its distinguished user-facing message.
*/
package db
