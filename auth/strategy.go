// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/hmac"
	"database/sql"
	"fmt"

	"github.com/campuselect/server/models"
)

// Strategy authenticates a credential and returns the user record plus the
// role it carries. Implementations must return ErrInvalidCredentials for every
// kind of miss so callers cannot tell an unknown ID from a wrong password.
type Strategy interface {
	Authenticate(ctx context.Context, id, password string) (*models.Voter, string, error)
}

// PasswordStrategy checks a voter's bcrypt-hashed password against the store.
type PasswordStrategy struct {
	DB *sql.DB
}

func (s *PasswordStrategy) Authenticate(ctx context.Context, id, password string) (*models.Voter, string, error) {
	var v models.Voter
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, email, phone, department, year, password_hash, has_voted, created_at
		FROM voter WHERE id = $1
	`, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Department, &v.Year,
		&v.PasswordHash, &v.HasVoted, &v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up voter: %w", err)
	}

	if err := CheckPassword(v.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// All password logins from the voter table carry the voter role
	return &v, models.RoleVoter, nil
}

// FixedAdminStrategy accepts a single configured officer credential. Demo
// grade: the credential lives in config, not in the store.
type FixedAdminStrategy struct {
	ID       string
	Password string
}

func (s *FixedAdminStrategy) Authenticate(_ context.Context, id, password string) (*models.Voter, string, error) {
	idOK := hmac.Equal([]byte(id), []byte(s.ID))
	pwOK := hmac.Equal([]byte(password), []byte(s.Password))
	if !idOK || !pwOK {
		return nil, "", ErrInvalidCredentials
	}

	return &models.Voter{ID: s.ID, Name: "System Admin"}, models.RoleAdmin, nil
}

// CodeProvider issues and verifies one-time codes. The demo deployment uses
// FixedCodeProvider; a real one would deliver codes over SMS or email.
type CodeProvider interface {
	Verify(id, code string) error
}

// FixedCodeProvider accepts one constant code for every ID.
type FixedCodeProvider struct {
	Code string
}

func (p *FixedCodeProvider) Verify(_, code string) error {
	if !hmac.Equal([]byte(code), []byte(p.Code)) {
		return ErrInvalidCredentials
	}
	return nil
}

// OTPStrategy authenticates a voter by one-time code instead of password.
// The voter must already be registered.
type OTPStrategy struct {
	DB       *sql.DB
	Provider CodeProvider
}

func (s *OTPStrategy) Authenticate(ctx context.Context, id, code string) (*models.Voter, string, error) {
	if err := s.Provider.Verify(id, code); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	var v models.Voter
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, email, phone, department, year, password_hash, has_voted, created_at
		FROM voter WHERE id = $1
	`, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Department, &v.Year,
		&v.PasswordHash, &v.HasVoted, &v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up voter: %w", err)
	}

	return &v, models.RoleVoter, nil
}
