// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the API operations behind the single /api
endpoint.

# Dispatch

APIHandler.Dispatch routes on the action query parameter:

	login           AuthHandler.Login
	register        AuthHandler.Register
	get_candidates  BallotHandler.GetCandidates
	submit_vote     BallotHandler.SubmitVote
	get_results     ResultsHandler.GetResults

Unknown actions answer with the fixed invalid-action failure.

# Vote Submission

SubmitVote is the only operation with correctness requirements beyond CRUD.
Inside one transaction it claims the ballot with a conditional UPDATE of the
voter's has_voted flag, inserts one vote row per submitted position, and
commits — or rolls back everything. A voter whose flag is already set matches
zero rows on the UPDATE, so replays and concurrent double submissions fail
before any write. Partial ballots (a subset of positions) are accepted; an
empty ballot is not.

# Failure Reporting

Domain failures use the {success:false, message} envelope over HTTP 200.
Storage faults are logged and reported generically; the duplicate-registration
conflict and the already-voted rejection carry their own messages.
*/
package handlers
