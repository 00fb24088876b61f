// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/campuselect/server/cliparse"
	"github.com/campuselect/server/handlers"
	"github.com/campuselect/server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	api := handlers.NewAPIHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Single API endpoint; the action query parameter selects the operation.
	// GET is allowed so the two reads can be fetched without a body.
	mux.HandleFunc("POST /api", middleware.WithLogging(api.Dispatch))
	mux.HandleFunc("GET /api", middleware.WithLogging(api.Dispatch))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campuselect API v1"))
	})

	return mux
}
