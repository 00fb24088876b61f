// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps handlers with start/stop logging via log/slog and tags every
request with a generated request ID, echoed back in X-Request-Id.

# Responses

JSONResponse writes any payload as JSON. Failure writes the structured
{success:false, message} envelope with HTTP 200 — the API reports domain
failures in-band, reserving non-200 statuses for transport problems.

# CORS

CORS handles cross-origin requests and OPTIONS preflights for the front-end.

# Client IP

GetClientIP resolves the caller address through X-Forwarded-For and X-Real-IP
before falling back to RemoteAddr.
*/
package middleware
