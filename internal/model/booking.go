package model

import "time"

// BookingStatus tracks a confirmed engagement between a business and a worker.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a scheduled work engagement resulting from an application.
type Booking struct {
	ID            string        `json:"id"`
	JobID         string        `json:"jobId"`
	WorkerID      string        `json:"workerId"`
	BusinessID    string        `json:"businessId"`
	ApplicationID string        `json:"applicationId,omitempty"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	SiteName      string        `json:"siteName,omitempty"`
	SiteAddress   string        `json:"siteAddress,omitempty"`
	Status        BookingStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	ConfirmedAt   *time.Time    `json:"confirmedAt,omitempty"`
}

// CreateBookingRequest schedules a new booking.
type CreateBookingRequest struct {
	JobID         string    `json:"jobId"`
	WorkerID      string    `json:"workerId"`
	ApplicationID string    `json:"applicationId,omitempty"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	SiteName      string    `json:"siteName,omitempty"`
	SiteAddress   string    `json:"siteAddress,omitempty"`
}

// UpdateBookingStatusRequest moves a booking to a new status.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status"`
	Notes  string        `json:"notes,omitempty"`
}

// BookingFilters narrows a booking listing.
type BookingFilters struct {
	Status     BookingStatus
	Location   string
	WorkerID   string
	BusinessID string
}
