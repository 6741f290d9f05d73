package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

// Review manages post-booking feedback.
type Review struct {
	inv    api.Invoker
	logger *slog.Logger
}

// NewReview constructs the review facade.
func NewReview(inv api.Invoker, logger *slog.Logger) *Review {
	return &Review{inv: inv, logger: logger.With("component", "services.review")}
}

// List returns a filtered page of reviews.
func (r *Review) List(ctx context.Context, filters model.ReviewFilters, page model.PageRequest) (model.PaginatedResponse[model.Review], error) {
	page = page.Normalize()
	query := map[string]string{
		"page":  strconv.Itoa(page.Page),
		"limit": strconv.Itoa(page.Limit),
	}
	if filters.Type != "" {
		query["type"] = string(filters.Type)
	}
	if filters.RevieweeID != "" {
		query["reviewee"] = filters.RevieweeID
	}
	if filters.Rating > 0 {
		query["rating"] = strconv.Itoa(filters.Rating)
	}
	if filters.Status != "" {
		query["status"] = string(filters.Status)
	}
	return api.Call[model.PaginatedResponse[model.Review]](ctx, r.inv, api.GetReviews().WithQuery(query))
}

// Create submits a review for a completed booking.
func (r *Review) Create(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	if req.BookingID == "" || req.RevieweeID == "" {
		return model.Review{}, apperrors.Wrap("invalid_input", "booking id and reviewee id are required", nil)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return model.Review{}, apperrors.Wrap("invalid_input", "rating must be between 1 and 5", nil)
	}
	return api.Call[model.Review](ctx, r.inv, api.CreateReview().WithBody(req))
}

// Update edits an existing review.
func (r *Review) Update(ctx context.Context, id string, req model.UpdateReviewRequest) (model.Review, error) {
	if id == "" {
		return model.Review{}, apperrors.Wrap("invalid_input", "review id cannot be empty", nil)
	}
	return api.Call[model.Review](ctx, r.inv, api.UpdateReview(id).WithBody(req))
}
