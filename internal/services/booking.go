package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

// Booking manages scheduled engagements between businesses and workers.
type Booking struct {
	inv    api.Invoker
	logger *slog.Logger
}

// NewBooking constructs the booking facade.
func NewBooking(inv api.Invoker, logger *slog.Logger) *Booking {
	return &Booking{inv: inv, logger: logger.With("component", "services.booking")}
}

// List returns a filtered page of bookings.
func (b *Booking) List(ctx context.Context, filters model.BookingFilters, page model.PageRequest) (model.PaginatedResponse[model.Booking], error) {
	page = page.Normalize()
	query := map[string]string{
		"page":  strconv.Itoa(page.Page),
		"limit": strconv.Itoa(page.Limit),
	}
	if filters.Status != "" {
		query["status"] = string(filters.Status)
	}
	if filters.Location != "" {
		query["location"] = filters.Location
	}
	if filters.WorkerID != "" {
		query["worker_id"] = filters.WorkerID
	}
	if filters.BusinessID != "" {
		query["business_id"] = filters.BusinessID
	}
	return api.Call[model.PaginatedResponse[model.Booking]](ctx, b.inv, api.GetBookings().WithQuery(query))
}

// Get fetches a single booking.
func (b *Booking) Get(ctx context.Context, id string) (model.Booking, error) {
	if id == "" {
		return model.Booking{}, apperrors.Wrap("invalid_input", "booking id cannot be empty", nil)
	}
	return api.Call[model.Booking](ctx, b.inv, api.GetBooking(id))
}

// Create schedules a new booking.
func (b *Booking) Create(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	if req.JobID == "" || req.WorkerID == "" {
		return model.Booking{}, apperrors.Wrap("invalid_input", "job id and worker id are required", nil)
	}
	return api.Call[model.Booking](ctx, b.inv, api.CreateBooking().WithBody(req))
}

// UpdateStatus moves a booking to a new status.
func (b *Booking) UpdateStatus(ctx context.Context, id string, status model.BookingStatus, notes string) (model.Booking, error) {
	if id == "" {
		return model.Booking{}, apperrors.Wrap("invalid_input", "booking id cannot be empty", nil)
	}
	req := model.UpdateBookingStatusRequest{Status: status, Notes: notes}
	return api.Call[model.Booking](ctx, b.inv, api.UpdateBookingStatus(id).WithBody(req))
}
