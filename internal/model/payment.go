package model

import "time"

// PaymentMethod identifies how a payment is settled.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bankTransfer"
	PaymentCard         PaymentMethod = "card"
)

// PaymentStatus tracks a payment through settlement.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records money moving between a business and a worker for a job.
type Payment struct {
	ID              string        `json:"id"`
	JobID           string        `json:"jobId"`
	PayerID         string        `json:"payerId"`
	PayeeID         string        `json:"payeeId"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Method          PaymentMethod `json:"paymentMethod"`
	ReferenceNumber string        `json:"referenceNumber,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Status          PaymentStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// CreatePaymentRequest initiates a payment.
type CreatePaymentRequest struct {
	JobID    string        `json:"jobId"`
	PayeeID  string        `json:"payeeId"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Method   PaymentMethod `json:"paymentMethod"`
	Notes    string        `json:"notes,omitempty"`
}

// UpdatePaymentStatusRequest moves a payment to a new status.
type UpdatePaymentStatusRequest struct {
	Status          PaymentStatus `json:"status"`
	ReferenceNumber string        `json:"referenceNumber,omitempty"`
}

// PaymentFilters narrows a payment listing.
type PaymentFilters struct {
	Status   PaymentStatus
	Currency string
	Method   PaymentMethod
	JobID    string
}
