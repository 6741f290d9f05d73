package services

import (
	"context"
	"log/slog"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

// Application tracks job applications from both sides of the marketplace.
type Application struct {
	inv    api.Invoker
	logger *slog.Logger
}

// NewApplication constructs the application facade.
func NewApplication(inv api.Invoker, logger *slog.Logger) *Application {
	return &Application{inv: inv, logger: logger.With("component", "services.application")}
}

// ForUser lists the signed-in user's applications.
func (a *Application) ForUser(ctx context.Context) ([]model.Application, error) {
	return api.Call[[]model.Application](ctx, a.inv, api.GetUserApplications())
}

// ForJob lists applications received by a job posting.
func (a *Application) ForJob(ctx context.Context, jobID string) ([]model.Application, error) {
	if jobID == "" {
		return nil, apperrors.Wrap("invalid_input", "job id cannot be empty", nil)
	}
	return api.Call[[]model.Application](ctx, a.inv, api.GetJobApplications(jobID))
}

// UpdateStatus moves an application to a new status.
func (a *Application) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (model.Application, error) {
	if id == "" {
		return model.Application{}, apperrors.Wrap("invalid_input", "application id cannot be empty", nil)
	}
	req := model.UpdateApplicationStatusRequest{Status: status}
	return api.Call[model.Application](ctx, a.inv, api.UpdateApplicationStatus(id).WithBody(req))
}
