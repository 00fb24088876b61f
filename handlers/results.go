// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/campuselect/server/cliparse"
	"github.com/campuselect/server/middleware"
	"github.com/campuselect/server/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles action=get_results
//
// Live tally, recomputed on every call. The LEFT JOIN keeps zero-vote
// candidates in the result set. Within a position, equal counts order by
// candidate id ascending so the winner view is deterministic.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT c.id, c.name, c.position, c.department, c.year, c.symbol,
		       COUNT(v.voter_id) AS vote_count
		FROM candidate c
		LEFT JOIN vote v ON v.candidate_id = c.id
		GROUP BY c.id, c.name, c.position, c.department, c.year, c.symbol
		ORDER BY c.position, vote_count DESC, c.id
	`)
	if err != nil {
		slog.Error("failed to query results", "error", err)
		middleware.Failure(w, "Database error")
		return
	}
	defer rows.Close()

	candidates := []models.CandidateResult{}
	for rows.Next() {
		var c models.CandidateResult
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &c.Department, &c.Year, &c.Symbol, &c.VoteCount); err != nil {
			slog.Error("failed to scan result row", "error", err)
			middleware.Failure(w, "Database error")
			return
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read results", "error", err)
		middleware.Failure(w, "Database error")
		return
	}

	var totalVoters, totalVotesCast int64
	if err := h.db.QueryRowContext(r.Context(), `SELECT COUNT(*) FROM voter`).Scan(&totalVoters); err != nil {
		slog.Error("failed to count voters", "error", err)
		middleware.Failure(w, "Database error")
		return
	}
	if err := h.db.QueryRowContext(r.Context(), `SELECT COUNT(*) FROM voter WHERE has_voted = TRUE`).Scan(&totalVotesCast); err != nil {
		slog.Error("failed to count turnout", "error", err)
		middleware.Failure(w, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Success:        true,
		Candidates:     candidates,
		TotalVoters:    totalVoters,
		TotalVotesCast: totalVotesCast,
	})
}
