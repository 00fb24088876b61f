// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8217)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - SessionSecret: Secret for session token signing (required)
  - AdminID / AdminPassword: Election officer credential (default: admin/admin123)
  - SeedDemo: Seed the demo candidate slate on startup

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-seed            Seed demo candidates
	-session-secret  Session signing secret
	-admin-id        Officer login ID
	-admin-password  Officer password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SEED_DEMO      → -seed
	SESSION_SECRET → -session-secret
	ADMIN_ID       → -admin-id
	ADMIN_PASSWORD → -admin-password

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_SECRET must be provided
  - DATABASE_TYPE must be sqlite or postgres

The officer credential defaults to the demo admin/admin123 pair and must be
overridden for any deployment that is more than a demo.
*/
package cliparse
