// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, session tokens, and authentication
strategies.

# Passwords

Voter passwords are bcrypt-hashed before storage and verified with bcrypt's
constant-time comparison. CheckPassword collapses every mismatch into
ErrInvalidCredentials.

# Session Tokens

Logins are answered with a signed HS256 token (1 hour TTL) carrying the
subject and role. State-changing requests present the token instead of
asserting their own identity:

	token, err := auth.IssueSessionToken(secret, voterID, models.RoleVoter, auth.SessionTTL)
	subject, role, err := auth.VerifySessionToken(secret, token)

# Strategies

Strategy is the pluggable credential check used by login:

  - PasswordStrategy: bcrypt check against the voter table
  - FixedAdminStrategy: the configured officer credential, compared in
    constant time
  - OTPStrategy: one-time code via a CodeProvider; the demo provider accepts
    a single fixed code

All strategies return ErrInvalidCredentials for every kind of miss, so an
unknown ID is indistinguishable from a wrong password.
*/
package auth
