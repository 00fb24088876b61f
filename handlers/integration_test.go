// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/campuselect/server/models"
	"github.com/campuselect/server/testutil"
)

// TestFullElectionWorkflow walks the complete flow through the dispatcher:
// 1. Fetch the ballot
// 2. Register voter S100
// 3. Log in as S100
// 4. Submit a vote for President
// 5. Verify the tally and turnout moved
// 6. Verify a second submission is rejected
func TestFullElectionWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	api := NewAPIHandler(db, cfg)

	testutil.CreateTestCandidate(t, db, 7, "Grace", "President")
	testutil.CreateTestCandidate(t, db, 8, "Heidi", "President")

	dispatch := func(action string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/api?action="+action, body, headers)
		w := httptest.NewRecorder()
		api.Dispatch(w, req)
		return w
	}

	// Step 1: the ballot lists both candidates under one position
	w := dispatch("get_candidates", nil, nil)
	var ballot models.CandidatesResponse
	testutil.AssertJSON(t, w, &ballot)
	if !ballot.Success || len(ballot.Candidates) != 2 || len(ballot.Positions) != 1 {
		t.Fatalf("Step 1 - unexpected ballot: %+v", ballot)
	}

	// Step 2: register S100
	w = dispatch("register", models.RegisterRequest{
		ID: "S100", Name: "Sam Voter", Email: "s100@example.edu",
		Phone: "555-0100", Department: "CS", Year: "3rd Year", Password: "pw1",
	}, nil)
	var env models.Envelope
	testutil.AssertJSON(t, w, &env)
	if !env.Success {
		t.Fatalf("Step 2 - registration failed: %+v", env)
	}

	// Step 3: login succeeds with has_voted=false
	w = dispatch("login", models.LoginRequest{ID: "S100", Password: "pw1", Role: "voter"}, nil)
	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	if !login.Success || login.Role != models.RoleVoter {
		t.Fatalf("Step 3 - login failed: %+v", login)
	}
	if login.User.HasVoted {
		t.Fatal("Step 3 - fresh voter already flagged as voted")
	}
	if login.Token == "" {
		t.Fatal("Step 3 - no session token issued")
	}

	// Step 4: submit {"President": 7}
	headers := map[string]string{"Authorization": "Bearer " + login.Token}
	w = dispatch("submit_vote", models.SubmitVoteRequest{
		VoterID: "S100", Votes: map[string]int64{"President": 7},
	}, headers)
	var voteResp models.SubmitVoteResponse
	testutil.AssertJSON(t, w, &voteResp)
	if !voteResp.Success {
		t.Fatalf("Step 4 - submission failed: %+v", voteResp)
	}

	// Step 5: candidate 7 gained a vote, turnout moved
	w = dispatch("get_results", nil, nil)
	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if !results.Success {
		t.Fatalf("Step 5 - results failed")
	}
	counts := map[int64]int64{}
	for _, c := range results.Candidates {
		counts[c.ID] = c.VoteCount
	}
	if counts[7] != 1 || counts[8] != 0 {
		t.Errorf("Step 5 - counts = %v, want 7:1 8:0", counts)
	}
	if results.TotalVoters != 1 || results.TotalVotesCast != 1 {
		t.Errorf("Step 5 - turnout = %d/%d, want 1/1", results.TotalVotesCast, results.TotalVoters)
	}

	// Step 6: the second submission is rejected before any write
	w = dispatch("submit_vote", models.SubmitVoteRequest{
		VoterID: "S100", Votes: map[string]int64{"President": 8},
	}, headers)
	env = models.Envelope{}
	testutil.AssertJSON(t, w, &env)
	if env.Success || env.Message != models.MsgAlreadyVoted {
		t.Fatalf("Step 6 - unexpected envelope: %+v", env)
	}
	if got := testutil.CountVotes(t, db, "S100"); got != 1 {
		t.Errorf("Step 6 - vote rows = %d, want 1", got)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	api := NewAPIHandler(db, testutil.GetTestConfig())

	for _, action := range []string{"", "unknown", "delete_everything"} {
		req := testutil.MakeRequest("POST", "/api?action="+action, nil, nil)
		w := httptest.NewRecorder()
		api.Dispatch(w, req)

		var env models.Envelope
		if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
			t.Fatalf("Failed to decode envelope: %v", err)
		}
		if env.Success || env.Message != models.MsgInvalidAction {
			t.Errorf("action %q: unexpected envelope %+v", action, env)
		}
	}
}
