// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/campuselect/server/models"
)

// demoSlate is the demo election ballot. Candidates are only ever created by
// seeding; the voting flow never inserts into the candidate table.
var demoSlate = []models.Candidate{
	{ID: 1, Name: "Aarav Mehta", Position: "President", Department: "Computer Science", Year: "3rd Year", Manifesto: "Open budget meetings and a 24-hour library.", Symbol: "🦅"},
	{ID: 2, Name: "Priya Nair", Position: "President", Department: "Economics", Year: "4th Year", Manifesto: "Student jobs board and fairer mess pricing.", Symbol: "🌻"},
	{ID: 3, Name: "Rohan Das", Position: "President", Department: "Mechanical Engineering", Year: "3rd Year", Manifesto: "Better lab access hours for all departments.", Symbol: "⚙️"},
	{ID: 4, Name: "Sneha Kulkarni", Position: "Vice President", Department: "Biology", Year: "2nd Year", Manifesto: "Weekly town halls with the administration.", Symbol: "🌿"},
	{ID: 5, Name: "Imran Qureshi", Position: "Vice President", Department: "History", Year: "3rd Year", Manifesto: "A standing grievance cell with published minutes.", Symbol: "📜"},
	{ID: 6, Name: "Tanvi Shah", Position: "General Secretary", Department: "Physics", Year: "2nd Year", Manifesto: "Digitize every club registration form.", Symbol: "⚡"},
	{ID: 7, Name: "Kabir Singh", Position: "General Secretary", Department: "Commerce", Year: "4th Year", Manifesto: "Transparent fest sponsorship accounts.", Symbol: "🥁"},
	{ID: 8, Name: "Devika Pillai", Position: "Treasurer", Department: "Mathematics", Year: "3rd Year", Manifesto: "Publish a monthly spend ledger.", Symbol: "🧮"},
	{ID: 9, Name: "Arjun Rao", Position: "Treasurer", Department: "Chemistry", Year: "2nd Year", Manifesto: "Zero-paper reimbursements within a week.", Symbol: "🔬"},
}

// SeedCandidates inserts the demo slate when the candidate table is empty.
// A non-empty table is left untouched so repeated starts never duplicate or
// reorder the ballot.
func SeedCandidates(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM candidate`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, c := range demoSlate {
		_, err := db.Exec(`
			INSERT INTO candidate (id, name, position, department, year, manifesto, symbol)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, c.ID, c.Name, c.Position, c.Department, c.Year, c.Manifesto, c.Symbol)
		if err != nil {
			return 0, fmt.Errorf("failed to seed candidate %d: %w", c.ID, err)
		}
	}

	return len(demoSlate), nil
}
