package services

import (
	"context"
	"log/slog"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

// User reads and updates the signed-in user's profile.
type User struct {
	inv    api.Invoker
	logger *slog.Logger
}

// NewUser constructs the user facade.
func NewUser(inv api.Invoker, logger *slog.Logger) *User {
	return &User{inv: inv, logger: logger.With("component", "services.user")}
}

// Profile fetches the signed-in user's profile.
func (u *User) Profile(ctx context.Context) (model.User, error) {
	return api.Call[model.User](ctx, u.inv, api.GetUserProfile())
}

// UpdateProfile applies a partial profile update.
func (u *User) UpdateProfile(ctx context.Context, req model.UpdateUserProfileRequest) (model.User, error) {
	return api.Call[model.User](ctx, u.inv, api.UpdateUserProfile().WithBody(req))
}
