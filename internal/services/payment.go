package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

// Payment lists and initiates payments between businesses and workers.
type Payment struct {
	inv    api.Invoker
	logger *slog.Logger
}

// NewPayment constructs the payment facade.
func NewPayment(inv api.Invoker, logger *slog.Logger) *Payment {
	return &Payment{inv: inv, logger: logger.With("component", "services.payment")}
}

// List returns a filtered page of payments.
func (p *Payment) List(ctx context.Context, filters model.PaymentFilters, page model.PageRequest) (model.PaginatedResponse[model.Payment], error) {
	page = page.Normalize()
	query := map[string]string{
		"page":  strconv.Itoa(page.Page),
		"limit": strconv.Itoa(page.Limit),
	}
	if filters.Status != "" {
		query["status"] = string(filters.Status)
	}
	if filters.Currency != "" {
		query["currency"] = filters.Currency
	}
	if filters.Method != "" {
		query["method"] = string(filters.Method)
	}
	if filters.JobID != "" {
		query["job_id"] = filters.JobID
	}
	return api.Call[model.PaginatedResponse[model.Payment]](ctx, p.inv, api.GetPayments().WithQuery(query))
}

// Create initiates a payment.
func (p *Payment) Create(ctx context.Context, req model.CreatePaymentRequest) (model.Payment, error) {
	if req.JobID == "" || req.PayeeID == "" {
		return model.Payment{}, apperrors.Wrap("invalid_input", "job id and payee id are required", nil)
	}
	if req.Amount <= 0 {
		return model.Payment{}, apperrors.Wrap("invalid_input", "amount must be positive", nil)
	}
	return api.Call[model.Payment](ctx, p.inv, api.CreatePayment().WithBody(req))
}

// UpdateStatus moves a payment to a new status.
func (p *Payment) UpdateStatus(ctx context.Context, id string, status model.PaymentStatus, referenceNumber string) (model.Payment, error) {
	if id == "" {
		return model.Payment{}, apperrors.Wrap("invalid_input", "payment id cannot be empty", nil)
	}
	req := model.UpdatePaymentStatusRequest{Status: status, ReferenceNumber: referenceNumber}
	return api.Call[model.Payment](ctx, p.inv, api.UpdatePaymentStatus(id).WithBody(req))
}
