// Copyright (c) 2026 Campuselect Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/campuselect/server/auth"
	"github.com/campuselect/server/cliparse"
	"github.com/campuselect/server/db"
	"github.com/campuselect/server/middleware"
	"github.com/campuselect/server/models"
)

type AuthHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	admin auth.Strategy
	voter auth.Strategy
}

func NewAuthHandler(conn *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{
		db:    conn,
		cfg:   cfg,
		admin: &auth.FixedAdminStrategy{ID: cfg.AdminID, Password: cfg.AdminPassword},
		voter: &auth.PasswordStrategy{DB: conn},
	}
}

// Login handles action=login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.Failure(w, "Invalid JSON")
		return
	}

	strategy := h.voter
	if req.Role == models.RoleAdmin {
		strategy = h.admin
	}

	user, role, err := strategy.Authenticate(r.Context(), req.ID, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// One message for unknown ID and wrong password alike
		middleware.Failure(w, models.MsgInvalidCredentials)
		return
	}
	if err != nil {
		slog.Error("failed to authenticate", "error", err)
		middleware.Failure(w, "Login failed due to a server error.")
		return
	}

	token, err := auth.IssueSessionToken(h.cfg.SessionSecret, user.ID, role, auth.SessionTTL)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.Failure(w, "Login failed due to a server error.")
		return
	}

	slog.Info("login", "id", user.ID, "role", role)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Role:    role,
		Token:   token,
		User:    user,
	})
}

// Register handles action=register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.Failure(w, "Invalid JSON")
		return
	}

	// Field-presence validation beyond these two lives in the front-end
	if req.ID == "" || req.Password == "" {
		middleware.Failure(w, "Student ID and password are required.")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.Failure(w, "Registration failed due to a server error.")
		return
	}

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO voter (id, name, email, phone, department, year, password_hash, has_voted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
	`, req.ID, req.Name, req.Email, req.Phone, req.Department, req.Year, hash, time.Now())

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.Failure(w, models.MsgAlreadyRegistered)
			return
		}
		slog.Error("failed to insert voter", "error", err, "id", req.ID)
		middleware.Failure(w, "Registration failed due to a database error.")
		return
	}

	slog.Info("voter registered", "id", req.ID)

	middleware.JSONResponse(w, http.StatusOK, models.Envelope{
		Success: true,
		Message: models.MsgRegistrationOK,
	})
}
