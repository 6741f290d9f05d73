package model

import "time"

// ReviewType identifies which party wrote the review.
type ReviewType string

const (
	ReviewBusinessToWorker ReviewType = "businessToWorker"
	ReviewWorkerToBusiness ReviewType = "workerToBusiness"
)

// ReviewStatus tracks moderation state.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Review is post-booking feedback between a business and a worker.
type Review struct {
	ID         string       `json:"id"`
	BookingID  string       `json:"bookingId"`
	ReviewerID string       `json:"reviewerId"`
	RevieweeID string       `json:"revieweeId"`
	Type       ReviewType   `json:"reviewType"`
	Rating     int          `json:"rating"`
	Title      string       `json:"title,omitempty"`
	Comment    string       `json:"comment,omitempty"`
	Status     ReviewStatus `json:"status"`
	IsPublic   bool         `json:"isPublic"`
	IsVerified bool         `json:"isVerified"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// CreateReviewRequest submits a new review for a completed booking.
type CreateReviewRequest struct {
	BookingID  string     `json:"bookingId"`
	RevieweeID string     `json:"revieweeId"`
	Type       ReviewType `json:"reviewType"`
	Rating     int        `json:"rating"`
	Title      string     `json:"title,omitempty"`
	Comment    string     `json:"comment,omitempty"`
}

// UpdateReviewRequest edits an existing review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating,omitempty"`
	Title   string `json:"title,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// ReviewFilters narrows a review listing.
type ReviewFilters struct {
	Type       ReviewType
	RevieweeID string
	Rating     int
	Status     ReviewStatus
}
