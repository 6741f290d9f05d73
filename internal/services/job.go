package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

// Job searches, posts, and applies to job listings.
type Job struct {
	inv    api.Invoker
	logger *slog.Logger
}

// NewJob constructs the job facade.
func NewJob(inv api.Invoker, logger *slog.Logger) *Job {
	return &Job{inv: inv, logger: logger.With("component", "services.job")}
}

// List returns a filtered page of job postings.
func (j *Job) List(ctx context.Context, filters model.JobFilters, page model.PageRequest) (model.PaginatedResponse[model.Job], error) {
	page = page.Normalize()
	query := map[string]string{
		"page":  strconv.Itoa(page.Page),
		"limit": strconv.Itoa(page.Limit),
	}
	if filters.Location != "" {
		query["location"] = filters.Location
	}
	if filters.Skill != "" {
		query["skill"] = filters.Skill
	}
	if filters.SalaryMin > 0 {
		query["salary_min"] = strconv.FormatFloat(filters.SalaryMin, 'f', -1, 64)
	}
	if filters.SalaryMax > 0 {
		query["salary_max"] = strconv.FormatFloat(filters.SalaryMax, 'f', -1, 64)
	}
	if filters.SearchTerm != "" {
		query["search"] = filters.SearchTerm
	}
	return api.Call[model.PaginatedResponse[model.Job]](ctx, j.inv, api.GetJobs().WithQuery(query))
}

// Get fetches a single job posting.
func (j *Job) Get(ctx context.Context, id string) (model.Job, error) {
	if id == "" {
		return model.Job{}, apperrors.Wrap("invalid_input", "job id cannot be empty", nil)
	}
	return api.Call[model.Job](ctx, j.inv, api.GetJob(id))
}

// Create posts a new job listing.
func (j *Job) Create(ctx context.Context, req model.CreateJobRequest) (model.Job, error) {
	if req.Title == "" || req.Company == "" || req.Location == "" {
		return model.Job{}, apperrors.Wrap("invalid_input", "title, company, and location are required", nil)
	}
	return api.Call[model.Job](ctx, j.inv, api.CreateJob().WithBody(req))
}

// Apply submits an application to the given job.
func (j *Job) Apply(ctx context.Context, jobID, coverLetter, resumeURL string) (model.Application, error) {
	if jobID == "" {
		return model.Application{}, apperrors.Wrap("invalid_input", "job id cannot be empty", nil)
	}
	req := model.CreateApplicationRequest{JobID: jobID, CoverLetter: coverLetter, ResumeURL: resumeURL}
	return api.Call[model.Application](ctx, j.inv, api.ApplyToJob(jobID).WithBody(req))
}
