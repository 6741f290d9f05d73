package mock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
)

type staticIdentity string

func (s staticIdentity) UserID() (string, bool) {
	return string(s), s != ""
}

func newTestClient(identity Identity) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(NewProvider(), identity, logger, WithLatency(0, 0))
}

func TestClient_LoginReturnsAuthResponse(t *testing.T) {
	c := newTestClient(nil)

	resp, err := api.Call[model.AuthResponse](context.Background(), c, api.Login())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, "user1", resp.User.ID)
}

func TestClient_ProfileUsesIdentity(t *testing.T) {
	c := newTestClient(staticIdentity("user2"))

	user, err := api.Call[model.User](context.Background(), c, api.GetUserProfile())
	require.NoError(t, err)
	require.Equal(t, "user2", user.ID)
}

func TestClient_ProfileFallsBackWithoutIdentity(t *testing.T) {
	c := newTestClient(nil)

	user, err := api.Call[model.User](context.Background(), c, api.GetUserProfile())
	require.NoError(t, err)
	require.Equal(t, "user1", user.ID)
}

func TestClient_JobsHonorsQueryFilters(t *testing.T) {
	c := newTestClient(nil)

	ep := api.GetJobs().WithQuery(map[string]string{
		"location": "kalgoorlie",
		"page":     "1",
		"limit":    "5",
	})
	result, err := api.Call[model.PaginatedResponse[model.Job]](context.Background(), c, ep)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	require.Equal(t, "job1", result.Data[0].ID)
	require.Equal(t, 5, result.Pagination.Limit)
}

func TestClient_JobByID(t *testing.T) {
	c := newTestClient(nil)

	job, err := api.Call[model.Job](context.Background(), c, api.GetJob("job3"))
	require.NoError(t, err)
	require.Equal(t, "Emergency Rigger - Shutdown", job.Title)

	_, err = api.Call[model.Job](context.Background(), c, api.GetJob("missing"))
	require.True(t, api.IsKind(err, api.KindNotFound))
}

func TestClient_ApplyRoute(t *testing.T) {
	c := newTestClient(staticIdentity("user2"))

	ep := api.ApplyToJob("job1").WithBody(model.CreateApplicationRequest{
		JobID:       "job1",
		CoverLetter: "keen to start",
	})
	app, err := api.Call[model.Application](context.Background(), c, ep)
	require.NoError(t, err)
	require.Equal(t, "job1", app.JobID)
	require.Equal(t, "user2", app.ApplicantID)
	require.Equal(t, model.ApplicationPending, app.Status)
}

func TestClient_BookingWriteRoutes(t *testing.T) {
	c := newTestClient(staticIdentity("employer1"))

	created, err := api.Call[model.Booking](context.Background(), c,
		api.CreateBooking().WithBody(model.CreateBookingRequest{JobID: "job2", WorkerID: "user2"}))
	require.NoError(t, err)
	require.Equal(t, "employer1", created.BusinessID)

	updated, err := api.Call[model.Booking](context.Background(), c,
		api.UpdateBookingStatus(created.ID).WithBody(model.UpdateBookingStatusRequest{Status: model.BookingConfirmed}))
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, updated.Status)
}

func TestClient_ReviewAndPaymentRoutes(t *testing.T) {
	c := newTestClient(staticIdentity("user1"))

	review, err := api.Call[model.Review](context.Background(), c,
		api.CreateReview().WithBody(model.CreateReviewRequest{
			BookingID:  "booking1",
			RevieweeID: "employer1",
			Rating:     4,
		}))
	require.NoError(t, err)
	require.Equal(t, "user1", review.ReviewerID)

	payments, err := api.Call[model.PaginatedResponse[model.Payment]](context.Background(), c, api.GetPayments())
	require.NoError(t, err)
	require.Len(t, payments.Data, 1)
	require.Equal(t, "payment1", payments.Data[0].ID)
}

func TestClient_UnknownRouteIsNotFound(t *testing.T) {
	c := newTestClient(nil)

	_, err := c.Invoke(context.Background(), api.Endpoint{Path: "nope", Method: api.MethodGet})
	require.True(t, api.IsKind(err, api.KindNotFound))
}

func TestClient_CancelledContextDuringLatency(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient(NewProvider(), nil, logger, WithLatency(time.Second, 2*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Invoke(ctx, api.GetJobs())
	require.True(t, api.IsKind(err, api.KindNetworkUnavailable))
}
