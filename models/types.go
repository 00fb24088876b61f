// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Role constants
const (
	RoleAdmin = "admin"
	RoleVoter = "voter"
)

// API action constants
const (
	ActionLogin         = "login"
	ActionRegister      = "register"
	ActionGetCandidates = "get_candidates"
	ActionSubmitVote    = "submit_vote"
	ActionGetResults    = "get_results"
)

// User-facing messages. The credentials message is deliberately shared by
// unknown-id and wrong-password failures so callers cannot probe which
// student IDs are registered.
const (
	MsgInvalidAction      = "Invalid API action"
	MsgInvalidCredentials = "Invalid credentials or registration status."
	MsgAlreadyRegistered  = "Student ID or Email already registered."
	MsgRegistrationOK     = "Registration successful!"
	MsgAlreadyVoted       = "You have already cast your vote."
	MsgVoteOK             = "Vote submitted successfully!"
	MsgVoteFailed         = "Vote submission failed due to a database error."
)

// Request types

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Password   string `json:"password"`
}

// position label -> candidate id
type SubmitVoteRequest struct {
	VoterID string           `json:"voter_id"`
	Votes   map[string]int64 `json:"votes"`
}

// Response types

// Envelope is the generic success/failure response shape. Every response
// carries a success flag; failures add a message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	Token   string `json:"token"`
	User    *Voter `json:"user"`
}

type CandidatesResponse struct {
	Success    bool        `json:"success"`
	Candidates []Candidate `json:"candidates"`
	Positions  []string    `json:"positions"`
}

type SubmitVoteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ReceiptID string `json:"receipt_id"`
}

type ResultsResponse struct {
	Success        bool              `json:"success"`
	Candidates     []CandidateResult `json:"candidates"`
	TotalVoters    int64             `json:"total_voters"`
	TotalVotesCast int64             `json:"total_votes_cast"`
}

// Domain types

type Voter struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Department   string    `json:"department"`
	Year         string    `json:"year"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	HasVoted     bool      `json:"has_voted"`
	CreatedAt    time.Time `json:"created_at"`
}

type Candidate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Manifesto  string `json:"manifesto"`
	Symbol     string `json:"symbol"`
}

type Vote struct {
	VoterID     string    `json:"voter_id"`
	CandidateID int64     `json:"candidate_id"`
	Position    string    `json:"position"`
	ReceiptID   string    `json:"receipt_id"`
	CastAt      time.Time `json:"cast_at"`
}

// CandidateResult is a candidate row joined with its live vote count.
// Manifesto is omitted from the results view.
type CandidateResult struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Symbol     string `json:"symbol"`
	VoteCount  int64  `json:"vote_count"`
}
