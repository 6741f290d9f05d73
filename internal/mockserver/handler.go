// Package mockserver serves the fixture datasets over the real wire
// contract: envelope-wrapped JSON, bearer authentication, and the same
// filter and pagination parameters as the production API. It exists so the
// live client can be exercised end to end without a backend deployment.
package mockserver

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/config"
	"github.com/chasewhiterabbit/rigger-go/internal/mock"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

// Handler implements the mock API endpoints over the fixture provider.
type Handler struct {
	provider *mock.Provider
	issuer   *tokenIssuer
	logger   *slog.Logger
}

// NewHandler constructs the mock API handler.
func NewHandler(cfg *config.Config, provider *mock.Provider, logger *slog.Logger) *Handler {
	return &Handler{
		provider: provider,
		issuer: &tokenIssuer{
			secret:     cfg.MockServer.TokenSecret,
			accessTTL:  cfg.MockServer.AccessTokenTTL,
			refreshTTL: cfg.MockServer.RefreshTokenTTL,
		},
		logger: logger.With("component", "mockserver.handler"),
	}
}

// Login authenticates against the fixture accounts. Unknown emails sign in
// as the first fixture user so previews never dead-end.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	var details []api.ErrorDetail
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		details = append(details, api.ErrorDetail{Field: "email", Message: "must be a valid email address"})
	}
	if strings.TrimSpace(req.Password) == "" {
		details = append(details, api.ErrorDetail{Field: "password", Message: "must not be empty"})
	}
	if len(details) > 0 {
		respondValidation(c, "Validation failed", details)
		return
	}

	user, ok := h.provider.UserByEmail(req.Email)
	if !ok {
		user = h.provider.Profile("")
	}
	h.respondAuth(c, user)
}

// Register creates a fixture account and signs it in.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	var details []api.ErrorDetail
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		details = append(details, api.ErrorDetail{Field: "email", Message: "must be a valid email address"})
	}
	if len(req.Password) < 8 {
		details = append(details, api.ErrorDetail{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(details) > 0 {
		respondValidation(c, "Validation failed", details)
		return
	}

	now := time.Now().UTC()
	user := model.User{
		ID:        "user_" + uuid.NewString(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      model.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.provider.AddUser(user)
	h.respondAuth(c, user)
}

// Refresh exchanges a refresh token for a new access token. The refresh
// request is authorized by the refresh token itself.
func (h *Handler) Refresh(c *gin.Context) {
	claims, err := h.issuer.parse(bearerToken(c), tokenTypeRefresh)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_token", "refresh token invalid or expired")
		return
	}
	user := h.provider.Profile(claims.UserID)
	access, err := h.issuer.issue(user, tokenTypeAccess, h.issuer.accessTTL)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "auth_error", "failed to issue token")
		return
	}
	c.JSON(http.StatusOK, api.OK(model.AuthResponse{Token: access, User: user}))
}

// Profile returns the authenticated user's profile.
func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK(h.provider.Profile(currentUserID(c))))
}

// UpdateProfile applies a partial profile update to the fixture account.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	user := h.provider.Profile(currentUserID(c))
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Bio != "" {
		if user.Profile == nil {
			user.Profile = &model.UserProfile{}
		}
		user.Profile.Bio = req.Bio
	}
	user.UpdatedAt = time.Now().UTC()
	c.JSON(http.StatusOK, api.OK(user))
}

// Jobs lists job postings with the standard filters and pagination.
func (h *Handler) Jobs(c *gin.Context) {
	query := flattenQuery(c)
	result := h.provider.Jobs(mock.ParseJobFilters(query), mock.ParsePage(query))
	c.JSON(http.StatusOK, api.OK(result))
}

// CreateJob posts a new job owned by the authenticated user.
func (h *Handler) CreateJob(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	if req.Title == "" || req.Company == "" {
		respondValidation(c, "Validation failed", []api.ErrorDetail{
			{Field: "title", Message: "title and company are required"},
		})
		return
	}
	c.JSON(http.StatusCreated, api.OK(h.provider.AddJob(req, currentUserID(c))))
}

// Job returns a single posting.
func (h *Handler) Job(c *gin.Context) {
	job, ok := h.provider.JobByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "job not found")
		return
	}
	c.JSON(http.StatusOK, api.OK(job))
}

// Apply records an application from the authenticated user.
func (h *Handler) Apply(c *gin.Context) {
	var req model.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	jobID := c.Param("id")
	if _, ok := h.provider.JobByID(jobID); !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "job not found")
		return
	}
	c.JSON(http.StatusCreated, api.OK(h.provider.Apply(jobID, currentUserID(c), req)))
}

// UserApplications lists the authenticated user's applications.
func (h *Handler) UserApplications(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK(h.provider.ApplicationsForUser(currentUserID(c))))
}

// JobApplications lists applications received by a posting.
func (h *Handler) JobApplications(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK(h.provider.ApplicationsForJob(c.Param("jobId"))))
}

// UpdateApplicationStatus moves an application to a new status.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req model.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	app, ok := h.provider.SetApplicationStatus(c.Param("id"), req.Status)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "application not found")
		return
	}
	c.JSON(http.StatusOK, api.OK(app))
}

// Bookings lists bookings visible to the authenticated user.
func (h *Handler) Bookings(c *gin.Context) {
	query := flattenQuery(c)
	c.JSON(http.StatusOK, api.OK(h.provider.Bookings(currentUserID(c), mock.ParsePage(query))))
}

// CreateBooking schedules a booking on behalf of the authenticated business.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	if req.JobID == "" || req.WorkerID == "" {
		respondValidation(c, "Validation failed", []api.ErrorDetail{
			{Field: "jobId", Message: "job id and worker id are required"},
		})
		return
	}
	c.JSON(http.StatusCreated, api.OK(h.provider.AddBooking(req, currentUserID(c))))
}

// UpdateBookingStatus moves a booking to a new status.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	booking, ok := h.provider.SetBookingStatus(c.Param("id"), req)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "booking not found")
		return
	}
	c.JSON(http.StatusOK, api.OK(booking))
}

// Booking returns a single booking.
func (h *Handler) Booking(c *gin.Context) {
	booking, ok := h.provider.BookingByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "booking not found")
		return
	}
	c.JSON(http.StatusOK, api.OK(booking))
}

// Reviews lists reviews involving the authenticated user.
func (h *Handler) Reviews(c *gin.Context) {
	query := flattenQuery(c)
	c.JSON(http.StatusOK, api.OK(h.provider.Reviews(currentUserID(c), mock.ParsePage(query))))
}

// CreateReview submits a review authored by the authenticated user.
func (h *Handler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondValidation(c, "Validation failed", []api.ErrorDetail{
			{Field: "rating", Message: "must be between 1 and 5"},
		})
		return
	}
	c.JSON(http.StatusCreated, api.OK(h.provider.AddReview(req, currentUserID(c))))
}

// UpdateReview edits an existing review.
func (h *Handler) UpdateReview(c *gin.Context) {
	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	review, ok := h.provider.UpdateReview(c.Param("id"), req)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "review not found")
		return
	}
	c.JSON(http.StatusOK, api.OK(review))
}

// Payments lists payments involving the authenticated user.
func (h *Handler) Payments(c *gin.Context) {
	query := flattenQuery(c)
	c.JSON(http.StatusOK, api.OK(h.provider.Payments(currentUserID(c), mock.ParsePage(query))))
}

// CreatePayment initiates a payment from the authenticated user.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	if req.Amount <= 0 {
		respondValidation(c, "Validation failed", []api.ErrorDetail{
			{Field: "amount", Message: "must be positive"},
		})
		return
	}
	c.JSON(http.StatusCreated, api.OK(h.provider.AddPayment(req, currentUserID(c))))
}

// UpdatePaymentStatus moves a payment to a new status.
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	var req model.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "body must be valid JSON", nil)
		return
	}
	payment, ok := h.provider.SetPaymentStatus(c.Param("id"), req)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "payment not found")
		return
	}
	c.JSON(http.StatusOK, api.OK(payment))
}

func (h *Handler) respondAuth(c *gin.Context, user model.User) {
	access, refresh, err := h.issuer.issuePair(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "auth_error", "failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, api.OK(model.AuthResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         user,
	}))
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, api.Fail(&api.APIError{Code: code, Message: message}))
}

func respondValidation(c *gin.Context, message string, details []api.ErrorDetail) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.Fail(&api.APIError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}))
}

func flattenQuery(c *gin.Context) map[string]string {
	out := map[string]string{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
