// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuselect/server/auth"
	"github.com/campuselect/server/cliparse"
	"github.com/campuselect/server/middleware"
	"github.com/campuselect/server/models"
)

type BallotHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBallotHandler(db *sql.DB, cfg cliparse.Config) *BallotHandler {
	return &BallotHandler{db: db, cfg: cfg}
}

// GetCandidates handles action=get_candidates
// Returns every candidate ordered by position then name, plus the ordered
// distinct position labels. Ballot rendering groups candidates by label, so
// rows for the same position must stay contiguous.
func (h *BallotHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id, name, position, department, year, manifesto, symbol
		FROM candidate
		ORDER BY position, name
	`)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.Failure(w, "Database error")
		return
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	positions := []string{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &c.Department, &c.Year, &c.Manifesto, &c.Symbol); err != nil {
			slog.Error("failed to scan candidate", "error", err)
			middleware.Failure(w, "Database error")
			return
		}
		if len(positions) == 0 || positions[len(positions)-1] != c.Position {
			positions = append(positions, c.Position)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read candidates", "error", err)
		middleware.Failure(w, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{
		Success:    true,
		Candidates: candidates,
		Positions:  positions,
	})
}

// SubmitVote handles action=submit_vote — the transactional core.
//
// The eligibility check and the flag flip are one conditional UPDATE inside
// the same transaction as the vote inserts: a voter whose flag is already set
// matches zero rows, so two concurrent submissions can never both commit.
func (h *BallotHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.Failure(w, "Invalid JSON")
		return
	}

	subject, role, err := auth.VerifySessionToken(h.cfg.SessionSecret, sessionToken(r))
	if err != nil {
		middleware.Failure(w, "Invalid or expired session. Please log in again.")
		return
	}
	if role != models.RoleVoter {
		middleware.Failure(w, "Only voters may cast a ballot.")
		return
	}

	voterID := req.VoterID
	if voterID == "" {
		voterID = subject
	}
	if voterID != subject {
		// A session only ever votes for its own voter
		middleware.Failure(w, "Invalid or expired session. Please log in again.")
		return
	}

	if len(req.Votes) == 0 {
		middleware.Failure(w, "No votes submitted.")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.Failure(w, models.MsgVoteFailed)
		return
	}
	defer tx.Rollback()

	// Claim the ballot: zero rows affected means the flag was already set
	res, err := tx.Exec(`
		UPDATE voter SET has_voted = TRUE WHERE id = $1 AND has_voted = FALSE
	`, voterID)
	if err != nil {
		slog.Error("failed to claim ballot", "error", err, "voter_id", voterID)
		middleware.Failure(w, models.MsgVoteFailed)
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.Failure(w, models.MsgVoteFailed)
		return
	}
	if affected == 0 {
		middleware.Failure(w, models.MsgAlreadyVoted)
		return
	}

	receiptID := uuid.NewString()
	castAt := time.Now()

	// Deterministic insert order keeps constraint failures reproducible
	positions := make([]string, 0, len(req.Votes))
	for position := range req.Votes {
		positions = append(positions, position)
	}
	sort.Strings(positions)

	for _, position := range positions {
		_, err := tx.Exec(`
			INSERT INTO vote (voter_id, candidate_id, position, receipt_id, cast_at)
			VALUES ($1, $2, $3, $4, $5)
		`, voterID, req.Votes[position], position, receiptID, castAt)
		if err != nil {
			// Rollback discards the flag flip and every inserted row
			slog.Error("failed to insert vote", "error", err, "voter_id", voterID, "position", position)
			middleware.Failure(w, models.MsgVoteFailed)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit vote transaction", "error", err, "voter_id", voterID)
		middleware.Failure(w, models.MsgVoteFailed)
		return
	}

	slog.Info("vote submitted", "voter_id", voterID, "positions", len(positions), "receipt_id", receiptID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Success:   true,
		Message:   models.MsgVoteOK,
		ReceiptID: receiptID,
	})
}

// sessionToken pulls the session token from the Authorization header
// (Bearer form) or the X-Session-Token fallback.
func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.Header.Get("X-Session-Token")
}
