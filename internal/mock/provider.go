// Package mock is the in-memory substitution for the live API: the same
// request surface, canned datasets, and no network I/O. It backs offline
// development, UI previews, and the local mock server.
package mock

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

// Provider owns the fixture datasets and answers filtered, paginated reads
// plus the handful of writes the apps perform.
type Provider struct {
	mu           sync.RWMutex
	users        []model.User
	jobs         []model.Job
	applications []model.Application
	bookings     []model.Booking
	reviews      []model.Review
	payments     []model.Payment
}

// NewProvider seeds the default fixture datasets.
func NewProvider() *Provider {
	now := time.Now().UTC()
	return &Provider{
		users:        defaultUsers(now),
		jobs:         defaultJobs(now),
		applications: defaultApplications(now),
		bookings:     defaultBookings(now),
		reviews:      defaultReviews(now),
		payments:     defaultPayments(now),
	}
}

// SetJobs replaces the job dataset; used by tests exercising pagination.
func (p *Provider) SetJobs(jobs []model.Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = jobs
}

// AuthResponse fabricates a successful login for the first fixture user.
func (p *Provider) AuthResponse() model.AuthResponse {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return model.AuthResponse{
		Token:        "mock_access_token_" + uuid.NewString(),
		RefreshToken: "mock_refresh_token_" + uuid.NewString(),
		User:         p.users[0],
	}
}

// Profile returns the fixture user matching id, defaulting to the first one.
func (p *Provider) Profile(userID string) model.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, u := range p.users {
		if u.ID == userID {
			return u
		}
	}
	return p.users[0]
}

// UserByEmail finds a fixture user by email, case-insensitively.
func (p *Provider) UserByEmail(email string) (model.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, u := range p.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

// AddUser registers a new account in the fixture dataset.
func (p *Provider) AddUser(u model.User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users = append(p.users, u)
}

// Jobs applies filters then pagination. Pagination totals reflect the
// filtered, not paginated, count.
func (p *Provider) Jobs(filters model.JobFilters, page model.PageRequest) model.PaginatedResponse[model.Job] {
	p.mu.RLock()
	jobs := make([]model.Job, len(p.jobs))
	copy(jobs, p.jobs)
	p.mu.RUnlock()

	return paginate(filterJobs(jobs, filters), page)
}

// JobByID looks a job up by its identifier.
func (p *Provider) JobByID(id string) (model.Job, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, j := range p.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return model.Job{}, false
}

// AddJob appends a job posting built from the request.
func (p *Provider) AddJob(req model.CreateJobRequest, employerID string) model.Job {
	now := time.Now().UTC()
	job := model.Job{
		ID:           "job_" + uuid.NewString(),
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Location:     req.Location,
		Salary:       req.Salary,
		EmployerID:   employerID,
		Status:       model.JobActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p.mu.Lock()
	p.jobs = append(p.jobs, job)
	p.mu.Unlock()
	return job
}

// Apply records a new application from userID against jobID.
func (p *Provider) Apply(jobID, userID string, req model.CreateApplicationRequest) model.Application {
	app := model.Application{
		ID:          "app_" + uuid.NewString(),
		JobID:       jobID,
		ApplicantID: userID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      model.ApplicationPending,
		AppliedAt:   time.Now().UTC(),
	}
	p.mu.Lock()
	p.applications = append(p.applications, app)
	p.mu.Unlock()
	return app
}

// ApplicationsForUser lists applications submitted by userID.
func (p *Provider) ApplicationsForUser(userID string) []model.Application {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := []model.Application{}
	for _, a := range p.applications {
		if a.ApplicantID == userID {
			out = append(out, a)
		}
	}
	return out
}

// ApplicationsForJob lists applications received by jobID.
func (p *Provider) ApplicationsForJob(jobID string) []model.Application {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := []model.Application{}
	for _, a := range p.applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out
}

// SetApplicationStatus moves an application to a new status.
func (p *Provider) SetApplicationStatus(id string, status model.ApplicationStatus) (model.Application, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.applications {
		if p.applications[i].ID == id {
			p.applications[i].Status = status
			return p.applications[i], true
		}
	}
	return model.Application{}, false
}

// Bookings lists bookings visible to userID (as worker or business).
func (p *Provider) Bookings(userID string, page model.PageRequest) model.PaginatedResponse[model.Booking] {
	p.mu.RLock()
	out := []model.Booking{}
	for _, b := range p.bookings {
		if userID == "" || b.WorkerID == userID || b.BusinessID == userID {
			out = append(out, b)
		}
	}
	p.mu.RUnlock()
	return paginate(out, page)
}

// AddBooking schedules a booking on behalf of businessID.
func (p *Provider) AddBooking(req model.CreateBookingRequest, businessID string) model.Booking {
	booking := model.Booking{
		ID:            "booking_" + uuid.NewString(),
		JobID:         req.JobID,
		WorkerID:      req.WorkerID,
		BusinessID:    businessID,
		ApplicationID: req.ApplicationID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		SiteName:      req.SiteName,
		SiteAddress:   req.SiteAddress,
		Status:        model.BookingPending,
	}
	p.mu.Lock()
	p.bookings = append(p.bookings, booking)
	p.mu.Unlock()
	return booking
}

// SetBookingStatus moves a booking to a new status.
func (p *Provider) SetBookingStatus(id string, req model.UpdateBookingStatusRequest) (model.Booking, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.bookings {
		if p.bookings[i].ID == id {
			p.bookings[i].Status = req.Status
			if req.Notes != "" {
				p.bookings[i].Notes = req.Notes
			}
			if req.Status == model.BookingConfirmed && p.bookings[i].ConfirmedAt == nil {
				now := time.Now().UTC()
				p.bookings[i].ConfirmedAt = &now
			}
			return p.bookings[i], true
		}
	}
	return model.Booking{}, false
}

// BookingByID looks a booking up by its identifier.
func (p *Provider) BookingByID(id string) (model.Booking, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, b := range p.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// Reviews lists reviews involving userID (as reviewer or reviewee).
func (p *Provider) Reviews(userID string, page model.PageRequest) model.PaginatedResponse[model.Review] {
	p.mu.RLock()
	out := []model.Review{}
	for _, r := range p.reviews {
		if userID == "" || r.RevieweeID == userID || r.ReviewerID == userID {
			out = append(out, r)
		}
	}
	p.mu.RUnlock()
	return paginate(out, page)
}

// AddReview stores a new review authored by reviewerID. Reviews start
// pending until moderated.
func (p *Provider) AddReview(req model.CreateReviewRequest, reviewerID string) model.Review {
	review := model.Review{
		ID:         "review_" + uuid.NewString(),
		BookingID:  req.BookingID,
		ReviewerID: reviewerID,
		RevieweeID: req.RevieweeID,
		Type:       req.Type,
		Rating:     req.Rating,
		Title:      req.Title,
		Comment:    req.Comment,
		Status:     model.ReviewPending,
		IsPublic:   true,
		CreatedAt:  time.Now().UTC(),
	}
	p.mu.Lock()
	p.reviews = append(p.reviews, review)
	p.mu.Unlock()
	return review
}

// UpdateReview edits the mutable fields of an existing review.
func (p *Provider) UpdateReview(id string, req model.UpdateReviewRequest) (model.Review, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.reviews {
		if p.reviews[i].ID == id {
			if req.Rating > 0 {
				p.reviews[i].Rating = req.Rating
			}
			if req.Title != "" {
				p.reviews[i].Title = req.Title
			}
			if req.Comment != "" {
				p.reviews[i].Comment = req.Comment
			}
			return p.reviews[i], true
		}
	}
	return model.Review{}, false
}

// Payments lists payments involving userID (as payer or payee).
func (p *Provider) Payments(userID string, page model.PageRequest) model.PaginatedResponse[model.Payment] {
	p.mu.RLock()
	out := []model.Payment{}
	for _, pay := range p.payments {
		if userID == "" || pay.PayeeID == userID || pay.PayerID == userID {
			out = append(out, pay)
		}
	}
	p.mu.RUnlock()
	return paginate(out, page)
}

// AddPayment initiates a payment from payerID.
func (p *Provider) AddPayment(req model.CreatePaymentRequest, payerID string) model.Payment {
	currency := req.Currency
	if currency == "" {
		currency = "AUD"
	}
	payment := model.Payment{
		ID:        "payment_" + uuid.NewString(),
		JobID:     req.JobID,
		PayerID:   payerID,
		PayeeID:   req.PayeeID,
		Amount:    req.Amount,
		Currency:  currency,
		Method:    req.Method,
		Notes:     req.Notes,
		Status:    model.PaymentPending,
		CreatedAt: time.Now().UTC(),
	}
	p.mu.Lock()
	p.payments = append(p.payments, payment)
	p.mu.Unlock()
	return payment
}

// SetPaymentStatus moves a payment to a new status.
func (p *Provider) SetPaymentStatus(id string, req model.UpdatePaymentStatusRequest) (model.Payment, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.payments {
		if p.payments[i].ID == id {
			p.payments[i].Status = req.Status
			if req.ReferenceNumber != "" {
				p.payments[i].ReferenceNumber = req.ReferenceNumber
			}
			return p.payments[i], true
		}
	}
	return model.Payment{}, false
}

func filterJobs(jobs []model.Job, f model.JobFilters) []model.Job {
	out := []model.Job{}
	for _, job := range jobs {
		if f.Location != "" && !containsFold(job.Location, f.Location) {
			continue
		}
		if f.Skill != "" && !anyContainsFold(job.Skills, f.Skill) {
			continue
		}
		if f.SalaryMin > 0 && job.Salary < f.SalaryMin {
			continue
		}
		// A missing salary is treated as unbounded, so a maximum excludes it.
		if f.SalaryMax > 0 && (job.Salary == 0 || job.Salary > f.SalaryMax) {
			continue
		}
		if f.SearchTerm != "" &&
			!containsFold(job.Title, f.SearchTerm) &&
			!containsFold(job.Description, f.SearchTerm) &&
			!containsFold(job.Company, f.SearchTerm) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, page model.PageRequest) model.PaginatedResponse[T] {
	page = page.Normalize()
	total := len(items)

	start := (page.Page - 1) * page.Limit
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	return model.PaginatedResponse[T]{
		Data: items[start:end],
		Pagination: model.PaginationInfo{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(page.Limit))),
		},
	}
}
