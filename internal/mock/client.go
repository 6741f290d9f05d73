package mock

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

const fallbackUserID = "user1"

// Identity supplies the signed-in user id for routes that scope results to
// the current user. The session store satisfies it.
type Identity interface {
	UserID() (string, bool)
}

// Client implements api.Invoker against the fixture datasets. It performs no
// network I/O and is safe for non-interactive test and preview contexts.
type Client struct {
	provider *Provider
	identity Identity
	logger   *slog.Logger
	minDelay time.Duration
	maxDelay time.Duration
}

// Option adjusts mock client construction.
type Option func(*Client)

// WithLatency bounds the artificial response delay. Zero disables it.
func WithLatency(min, max time.Duration) Option {
	return func(c *Client) {
		c.minDelay = min
		c.maxDelay = max
	}
}

// NewClient builds a mock transport over provider.
func NewClient(provider *Provider, identity Identity, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		provider: provider,
		identity: identity,
		logger:   logger.With("component", "mock.client"),
		minDelay: 150 * time.Millisecond,
		maxDelay: 600 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke routes the endpoint to a fixture response after a bounded
// randomized delay emulating network latency.
func (c *Client) Invoke(ctx context.Context, ep api.Endpoint) ([]byte, error) {
	if err := c.sleep(ctx); err != nil {
		return nil, &api.Error{Kind: api.KindNetworkUnavailable, Err: err}
	}

	result, err := c.route(ep)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, &api.Error{Kind: api.KindDecoding, Err: err}
	}
	return payload, nil
}

func (c *Client) route(ep api.Endpoint) (any, error) {
	path := strings.Trim(ep.Path, "/")

	switch {
	case path == "auth/login", path == "auth/register", path == "auth/refresh":
		return c.provider.AuthResponse(), nil

	case path == "users/profile":
		return c.provider.Profile(c.userID()), nil

	case path == "jobs" && ep.Method == api.MethodGet:
		return c.provider.Jobs(ParseJobFilters(ep.Query), ParsePage(ep.Query)), nil

	case path == "jobs" && ep.Method == api.MethodPost:
		req, err := decodeBody[model.CreateJobRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		return c.provider.AddJob(req, c.userID()), nil

	case strings.HasPrefix(path, "jobs/") && strings.HasSuffix(path, "/apply"):
		jobID := strings.TrimSuffix(strings.TrimPrefix(path, "jobs/"), "/apply")
		req, err := decodeBody[model.CreateApplicationRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		return c.provider.Apply(jobID, c.userID(), req), nil

	case strings.HasPrefix(path, "jobs/"):
		job, ok := c.provider.JobByID(strings.TrimPrefix(path, "jobs/"))
		if !ok {
			return nil, &api.Error{Kind: api.KindNotFound}
		}
		return job, nil

	case path == "applications/user":
		return c.provider.ApplicationsForUser(c.userID()), nil

	case strings.HasPrefix(path, "applications/job/"):
		return c.provider.ApplicationsForJob(strings.TrimPrefix(path, "applications/job/")), nil

	case strings.HasPrefix(path, "applications/") && strings.HasSuffix(path, "/status"):
		id := strings.TrimSuffix(strings.TrimPrefix(path, "applications/"), "/status")
		req, err := decodeBody[model.UpdateApplicationStatusRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		app, ok := c.provider.SetApplicationStatus(id, req.Status)
		if !ok {
			return nil, &api.Error{Kind: api.KindNotFound}
		}
		return app, nil

	case path == "bookings" && ep.Method == api.MethodGet:
		return c.provider.Bookings(c.userID(), ParsePage(ep.Query)), nil

	case path == "bookings" && ep.Method == api.MethodPost:
		req, err := decodeBody[model.CreateBookingRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		return c.provider.AddBooking(req, c.userID()), nil

	case strings.HasPrefix(path, "bookings/") && strings.HasSuffix(path, "/status"):
		id := strings.TrimSuffix(strings.TrimPrefix(path, "bookings/"), "/status")
		req, err := decodeBody[model.UpdateBookingStatusRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		booking, ok := c.provider.SetBookingStatus(id, req)
		if !ok {
			return nil, &api.Error{Kind: api.KindNotFound}
		}
		return booking, nil

	case strings.HasPrefix(path, "bookings/"):
		booking, ok := c.provider.BookingByID(strings.TrimPrefix(path, "bookings/"))
		if !ok {
			return nil, &api.Error{Kind: api.KindNotFound}
		}
		return booking, nil

	case path == "reviews" && ep.Method == api.MethodGet:
		return c.provider.Reviews(c.userID(), ParsePage(ep.Query)), nil

	case path == "reviews" && ep.Method == api.MethodPost:
		req, err := decodeBody[model.CreateReviewRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		return c.provider.AddReview(req, c.userID()), nil

	case strings.HasPrefix(path, "reviews/"):
		req, err := decodeBody[model.UpdateReviewRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		review, ok := c.provider.UpdateReview(strings.TrimPrefix(path, "reviews/"), req)
		if !ok {
			return nil, &api.Error{Kind: api.KindNotFound}
		}
		return review, nil

	case path == "payments" && ep.Method == api.MethodGet:
		return c.provider.Payments(c.userID(), ParsePage(ep.Query)), nil

	case path == "payments" && ep.Method == api.MethodPost:
		req, err := decodeBody[model.CreatePaymentRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		return c.provider.AddPayment(req, c.userID()), nil

	case strings.HasPrefix(path, "payments/") && strings.HasSuffix(path, "/status"):
		id := strings.TrimSuffix(strings.TrimPrefix(path, "payments/"), "/status")
		req, err := decodeBody[model.UpdatePaymentStatusRequest](ep.Body)
		if err != nil {
			return nil, err
		}
		payment, ok := c.provider.SetPaymentStatus(id, req)
		if !ok {
			return nil, &api.Error{Kind: api.KindNotFound}
		}
		return payment, nil

	default:
		return nil, &api.Error{Kind: api.KindNotFound}
	}
}

func (c *Client) userID() string {
	if c.identity != nil {
		if id, ok := c.identity.UserID(); ok {
			return id
		}
	}
	return fallbackUserID
}

func (c *Client) sleep(ctx context.Context) error {
	if c.maxDelay <= 0 {
		return ctx.Err()
	}
	delay := c.minDelay
	if span := c.maxDelay - c.minDelay; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func decodeBody[T any](body any) (T, error) {
	var out T
	if body == nil {
		return out, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return out, &api.Error{Kind: api.KindDecoding, Err: err}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &api.Error{Kind: api.KindDecoding, Err: err}
	}
	return out, nil
}
