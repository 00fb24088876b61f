// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/campuselect/server/cliparse"
	"github.com/campuselect/server/middleware"
	"github.com/campuselect/server/models"
)

// APIHandler is the single-endpoint dispatcher. The front-end selects an
// operation with the action query parameter; everything else travels in the
// JSON body.
type APIHandler struct {
	auth    *AuthHandler
	ballot  *BallotHandler
	results *ResultsHandler
}

func NewAPIHandler(db *sql.DB, cfg cliparse.Config) *APIHandler {
	return &APIHandler{
		auth:    NewAuthHandler(db, cfg),
		ballot:  NewBallotHandler(db, cfg),
		results: NewResultsHandler(db, cfg),
	}
}

// Dispatch handles /api?action=<name>
func (h *APIHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case models.ActionLogin:
		h.auth.Login(w, r)
	case models.ActionRegister:
		h.auth.Register(w, r)
	case models.ActionGetCandidates:
		h.ballot.GetCandidates(w, r)
	case models.ActionSubmitVote:
		h.ballot.SubmitVote(w, r)
	case models.ActionGetResults:
		h.results.GetResults(w, r)
	default:
		middleware.Failure(w, models.MsgInvalidAction)
	}
}
