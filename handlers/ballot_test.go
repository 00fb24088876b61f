// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/campuselect/server/auth"
	"github.com/campuselect/server/models"
	"github.com/campuselect/server/testutil"
)

func TestGetCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(db, cfg)

	// Inserted out of order on purpose; the handler must order by
	// position then name
	testutil.CreateTestCandidate(t, db, 3, "Charlie", "Vice President")
	testutil.CreateTestCandidate(t, db, 1, "Bob", "President")
	testutil.CreateTestCandidate(t, db, 2, "Alice", "President")

	req := testutil.MakeRequest("GET", "/api?action=get_candidates", nil, nil)
	w := httptest.NewRecorder()
	handler.GetCandidates(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.CandidatesResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Fatal("expected success")
	}

	gotNames := make([]string, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		gotNames = append(gotNames, c.Name)
	}
	wantNames := []string{"Alice", "Bob", "Charlie"}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Errorf("candidate order = %v, want %v", gotNames, wantNames)
	}

	wantPositions := []string{"President", "Vice President"}
	if !reflect.DeepEqual(resp.Positions, wantPositions) {
		t.Errorf("positions = %v, want %v", resp.Positions, wantPositions)
	}
}

func TestGetCandidatesEmptyBallot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewBallotHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api?action=get_candidates", nil, nil)
	w := httptest.NewRecorder()
	handler.GetCandidates(w, req)

	var resp models.CandidatesResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Fatal("expected success")
	}
	if len(resp.Candidates) != 0 || len(resp.Positions) != 0 {
		t.Errorf("expected empty ballot, got %d candidates, %d positions",
			len(resp.Candidates), len(resp.Positions))
	}
}

func TestSubmitVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(db, cfg)

	testutil.CreateTestCandidate(t, db, 1, "Alice", "President")
	testutil.CreateTestCandidate(t, db, 2, "Bob", "President")
	testutil.CreateTestCandidate(t, db, 3, "Charlie", "Vice President")
	testutil.CreateTestVoter(t, db, "S400", "pw1")

	submit := func(voterID, token string, votes map[string]int64) *httptest.ResponseRecorder {
		headers := map[string]string{}
		if token != "" {
			headers["Authorization"] = "Bearer " + token
		}
		req := testutil.MakeRequest("POST", "/api?action=submit_vote",
			models.SubmitVoteRequest{VoterID: voterID, Votes: votes}, headers)
		w := httptest.NewRecorder()
		handler.SubmitVote(w, req)
		return w
	}

	voterToken := testutil.SessionToken(t, cfg, "S400", models.RoleVoter)

	t.Run("missing token rejected before any write", func(t *testing.T) {
		w := submit("S400", "", map[string]int64{"President": 1})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success {
			t.Fatal("expected failure without a session")
		}
		if testutil.HasVoted(t, db, "S400") {
			t.Error("has_voted flipped without a session")
		}
	})

	t.Run("token for another voter rejected", func(t *testing.T) {
		other := testutil.SessionToken(t, cfg, "S999", models.RoleVoter)
		w := submit("S400", other, map[string]int64{"President": 1})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success {
			t.Fatal("expected failure for mismatched session")
		}
	})

	t.Run("admin session cannot vote", func(t *testing.T) {
		adminToken := testutil.SessionToken(t, cfg, "admin", models.RoleAdmin)
		w := submit("admin", adminToken, map[string]int64{"President": 1})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success {
			t.Fatal("expected failure for admin session")
		}
	})

	t.Run("empty ballot rejected", func(t *testing.T) {
		w := submit("S400", voterToken, map[string]int64{})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success {
			t.Fatal("expected failure for empty ballot")
		}
	})

	t.Run("partial ballot accepted and atomic", func(t *testing.T) {
		// Votes for a subset of positions only
		w := submit("S400", voterToken, map[string]int64{"President": 2, "Vice President": 3})
		testutil.AssertStatus(t, w, 200)

		var resp models.SubmitVoteResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Success || resp.Message != models.MsgVoteOK {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.ReceiptID == "" {
			t.Error("expected a receipt id")
		}

		if got := testutil.CountVotes(t, db, "S400"); got != 2 {
			t.Errorf("vote rows = %d, want 2", got)
		}
		if !testutil.HasVoted(t, db, "S400") {
			t.Error("has_voted not flipped after successful submission")
		}

		// Both rows share the submission receipt
		var receipts int
		if err := db.QueryRow(`SELECT COUNT(DISTINCT receipt_id) FROM vote WHERE voter_id = 'S400'`).Scan(&receipts); err != nil {
			t.Fatalf("Failed to count receipts: %v", err)
		}
		if receipts != 1 {
			t.Errorf("distinct receipts = %d, want 1", receipts)
		}
	})

	t.Run("resubmission rejected with already-voted message", func(t *testing.T) {
		w := submit("S400", voterToken, map[string]int64{"President": 1})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success || env.Message != models.MsgAlreadyVoted {
			t.Errorf("unexpected envelope: %+v", env)
		}
		if got := testutil.CountVotes(t, db, "S400"); got != 2 {
			t.Errorf("resubmission changed vote rows: %d", got)
		}
	})

	t.Run("expired session rejected", func(t *testing.T) {
		testutil.CreateTestVoter(t, db, "S401", "pw1")
		expired, err := auth.IssueSessionToken(cfg.SessionSecret, "S401", models.RoleVoter, -time.Minute)
		if err != nil {
			t.Fatalf("Failed to issue expired token: %v", err)
		}

		w := submit("S401", expired, map[string]int64{"President": 1})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success {
			t.Fatal("expected failure for expired session")
		}
		if testutil.HasVoted(t, db, "S401") {
			t.Error("has_voted flipped on expired session")
		}
	})
}

// TestSubmitVoteAtomicity simulates a store fault mid-batch and verifies
// no partial vote set survives.
func TestSubmitVoteAtomicity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(db, cfg)

	testutil.CreateTestCandidate(t, db, 1, "Alice", "President")
	testutil.CreateTestCandidate(t, db, 3, "Charlie", "Vice President")

	submit := func(voterID string, votes map[string]int64) *httptest.ResponseRecorder {
		token := testutil.SessionToken(t, cfg, voterID, models.RoleVoter)
		req := testutil.MakeRequest("POST", "/api?action=submit_vote",
			models.SubmitVoteRequest{VoterID: voterID, Votes: votes},
			map[string]string{"Authorization": "Bearer " + token})
		w := httptest.NewRecorder()
		handler.SubmitVote(w, req)
		return w
	}

	t.Run("foreign key fault rolls back the whole ballot", func(t *testing.T) {
		testutil.CreateTestVoter(t, db, "S500", "pw1")

		// Candidate 999 does not exist; the second insert must fail
		w := submit("S500", map[string]int64{"President": 1, "Vice President": 999})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success || env.Message != models.MsgVoteFailed {
			t.Errorf("unexpected envelope: %+v", env)
		}

		if got := testutil.CountVotes(t, db, "S500"); got != 0 {
			t.Errorf("partial vote set persisted: %d rows", got)
		}
		if testutil.HasVoted(t, db, "S500") {
			t.Error("has_voted flipped despite rollback")
		}
	})

	t.Run("unique constraint fault rolls back the whole ballot", func(t *testing.T) {
		testutil.CreateTestVoter(t, db, "S501", "pw1")

		// A stray pre-existing row for the same (voter, position) pair
		if _, err := db.Exec(`
			INSERT INTO vote (voter_id, candidate_id, position, receipt_id, cast_at)
			VALUES ('S501', 1, 'President', 'stray', $1)
		`, time.Now()); err != nil {
			t.Fatalf("Failed to insert stray vote: %v", err)
		}

		w := submit("S501", map[string]int64{"President": 1, "Vice President": 3})

		var env models.Envelope
		testutil.AssertJSON(t, w, &env)
		if env.Success {
			t.Fatal("expected failure on constraint fault")
		}

		if got := testutil.CountVotes(t, db, "S501"); got != 1 {
			t.Errorf("vote rows = %d, want only the stray row", got)
		}
		if testutil.HasVoted(t, db, "S501") {
			t.Error("has_voted flipped despite rollback")
		}

		// The voter can retry once the fault is cleared
		if _, err := db.Exec(`DELETE FROM vote WHERE receipt_id = 'stray'`); err != nil {
			t.Fatalf("Failed to clear stray vote: %v", err)
		}
		w = submit("S501", map[string]int64{"President": 1, "Vice President": 3})

		var resp models.SubmitVoteResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Success {
			t.Fatalf("retry failed: %+v", resp)
		}
		if got := testutil.CountVotes(t, db, "S501"); got != 2 {
			t.Errorf("vote rows after retry = %d, want 2", got)
		}
	})
}
