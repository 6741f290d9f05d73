// Package services exposes endpoint-specific, strongly-typed methods over
// the API transport. Facades work identically against the live client and
// the mock substitution layer.
package services

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	"github.com/chasewhiterabbit/rigger-go/internal/session"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

// Auth handles account sign-in, registration, and sign-out.
type Auth struct {
	inv      api.Invoker
	sessions *session.Store
	logger   *slog.Logger
}

// NewAuth constructs the authentication facade.
func NewAuth(inv api.Invoker, sessions *session.Store, logger *slog.Logger) *Auth {
	return &Auth{
		inv:      inv,
		sessions: sessions,
		logger:   logger.With("component", "services.auth"),
	}
}

// Login authenticates with email and password and persists the session.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return model.AuthResponse{}, apperrors.Wrap("invalid_input", "invalid email address", err)
	}
	if strings.TrimSpace(password) == "" {
		return model.AuthResponse{}, apperrors.Wrap("invalid_input", "password cannot be empty", nil)
	}

	ep := api.Login().WithBody(model.LoginRequest{Email: email, Password: password})
	resp, err := api.Call[model.AuthResponse](ctx, a.inv, ep)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if err := a.sessions.SaveAuthResult(resp.Token, resp.RefreshToken, resp.User.ID, resp.User.Email); err != nil {
		return model.AuthResponse{}, apperrors.Wrap("session_error", "failed to persist credentials", err)
	}
	a.logger.Info("user logged in", "user_id", resp.User.ID)
	return resp, nil
}

// Register creates an account and persists the resulting session.
func (a *Auth) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return model.AuthResponse{}, apperrors.Wrap("invalid_input", "invalid email address", err)
	}
	if len(req.Password) < 8 {
		return model.AuthResponse{}, apperrors.Wrap("invalid_input", "password must be at least 8 characters", nil)
	}

	ep := api.Register().WithBody(req)
	resp, err := api.Call[model.AuthResponse](ctx, a.inv, ep)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if err := a.sessions.SaveAuthResult(resp.Token, resp.RefreshToken, resp.User.ID, resp.User.Email); err != nil {
		return model.AuthResponse{}, apperrors.Wrap("session_error", "failed to persist credentials", err)
	}
	a.logger.Info("user registered", "user_id", resp.User.ID)
	return resp, nil
}

// Logout clears the persisted session. Purely local; the API keeps no
// server-side session state.
func (a *Auth) Logout(_ context.Context) error {
	return a.sessions.ClearSession()
}
