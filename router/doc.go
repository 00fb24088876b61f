// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table.

# Routes

	GET  /health   liveness probe
	GET  /         API banner
	POST /api      action dispatch (login, register, submit_vote, ...)
	GET  /api      action dispatch for the read operations

All /api traffic flows through the logging middleware and the APIHandler
dispatcher; see package handlers.
*/
package router
