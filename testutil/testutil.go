// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campuselect/server/auth"
	"github.com/campuselect/server/cliparse"
	"github.com/campuselect/server/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Foreign keys are enforced so constraint-fault tests behave like production.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  "file:test_" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)",
	}

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single pooled connection keeps the in-memory database alive for the
	// whole test and serializes statements the way a row lock would.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8217,
		DatabaseType:  "sqlite",
		DatabaseURL:   "file:unused?mode=memory",
		SessionSecret: "test-session-secret",
		AdminID:       "admin",
		AdminPassword: "admin123",
	}
}

// CreateTestVoter registers a voter directly in the database with a real
// bcrypt hash so login tests exercise the production verification path.
func CreateTestVoter(t *testing.T, conn *sql.DB, id, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO voter (id, name, email, phone, department, year, password_hash, has_voted, created_at)
		VALUES ($1, $2, $3, '555-0100', 'Testing', '1st Year', $4, FALSE, $5)
	`, id, "Voter "+id, id+"@example.edu", hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
}

// CreateTestCandidate inserts a candidate row for ballot and results tests.
func CreateTestCandidate(t *testing.T, conn *sql.DB, id int64, name, position string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, position, department, year, manifesto, symbol)
		VALUES ($1, $2, $3, 'Testing', '2nd Year', 'Test manifesto', '⭐')
	`, id, name, position)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
}

// SessionToken issues a voter session token signed with the test secret.
func SessionToken(t *testing.T, cfg cliparse.Config, voterID, role string) string {
	t.Helper()

	token, err := auth.IssueSessionToken(cfg.SessionSecret, voterID, role, auth.SessionTTL)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountVotes returns the number of vote rows for a voter.
func CountVotes(t *testing.T, conn *sql.DB, voterID string) int {
	t.Helper()
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE voter_id = $1`, voterID).Scan(&n); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// HasVoted returns the voter's has_voted flag.
func HasVoted(t *testing.T, conn *sql.DB, voterID string) bool {
	t.Helper()
	var flag bool
	if err := conn.QueryRow(`SELECT has_voted FROM voter WHERE id = $1`, voterID).Scan(&flag); err != nil {
		t.Fatalf("Failed to read has_voted: %v", err)
	}
	return flag
}
