// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Campuselect API server.

Campuselect is a small college-election service: voters register, log in,
cast one ballot across several independently decided positions, and watch
live results. An election officer signs in with a fixed demo credential to
view the same tally plus turnout.

# Starting the Server

The server reads configuration from environment variables (optionally via a
.env file) or CLI flags:

	DATABASE_URL=elections.db SESSION_SECRET=... go run main.go -seed

Or with flags:

	go run main.go -p 8217 -t postgres -d "postgres://..." -session-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - SESSION_SECRET (-session-secret): secret for session token signing

Optional settings:

  - PORT (-p): server port (default: 8217)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ADMIN_ID / ADMIN_PASSWORD: officer credential (default: admin/admin123)
  - -seed: insert the demo candidate slate when the table is empty

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: API operations behind the single /api endpoint
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON envelope helpers
  - models: request/response/domain types
  - auth: password hashing, session tokens, credential strategies
  - db: driver selection, schema creation, demo seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
