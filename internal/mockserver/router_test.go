package mockserver

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/config"
	"github.com/chasewhiterabbit/rigger-go/internal/mock"
	"github.com/chasewhiterabbit/rigger-go/internal/model"
	"github.com/chasewhiterabbit/rigger-go/internal/secrets"
	"github.com/chasewhiterabbit/rigger-go/internal/session"
)

type testEnv struct {
	base string
}

func (e testEnv) Settings() config.EnvironmentSettings {
	return config.EnvironmentSettings{
		BaseURL: e.base,
		Timeout: 5 * time.Second,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *api.Client, *session.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		MockServer: config.MockServerConfig{
			TokenSecret:     "test-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	handler := NewHandler(cfg, mock.NewProvider(), logger)
	server := NewRouter(cfg, handler)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	sessions := session.NewStore(secrets.NewMemoryStorage(), logger)
	client := api.NewClient(testEnv{base: ts.URL + "/api/v1"}, sessions, logger)
	return ts, client, sessions
}

func login(t *testing.T, client *api.Client, sessions *session.Store, email string) model.AuthResponse {
	t.Helper()
	ep := api.Login().WithBody(model.LoginRequest{Email: email, Password: "pass1234"})
	resp, err := api.Call[model.AuthResponse](context.Background(), client, ep)
	require.NoError(t, err)
	require.NoError(t, sessions.SaveAuthResult(resp.Token, resp.RefreshToken, resp.User.ID, resp.User.Email))
	return resp
}

func TestServer_LoginIssuesTokens(t *testing.T) {
	_, client, sessions := newTestServer(t)

	resp := login(t, client, sessions, "mike.crane@example.com")
	require.Equal(t, "user2", resp.User.ID)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	require.NotEqual(t, resp.Token, resp.RefreshToken)

	// Mock server tokens are real JWTs, so the session can report expiry.
	exp, ok := sessions.AccessTokenExpiry()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestServer_LoginValidation(t *testing.T) {
	_, client, _ := newTestServer(t)

	ep := api.Login().WithBody(model.LoginRequest{Email: "not-an-email", Password: "x"})
	_, err := api.Call[model.AuthResponse](context.Background(), client, ep)
	require.True(t, api.IsKind(err, api.KindValidation), "got %v", err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "VALIDATION_ERROR", apiErr.Detail.Code)
	require.NotEmpty(t, apiErr.Detail.Details)
}

func TestServer_AuthenticatedProfile(t *testing.T) {
	_, client, sessions := newTestServer(t)
	login(t, client, sessions, "john.rigger@example.com")

	user, err := api.Call[model.User](context.Background(), client, api.GetUserProfile())
	require.NoError(t, err)
	require.Equal(t, "user1", user.ID)
}

func TestServer_InvalidAccessTokenWithRefreshRecovers(t *testing.T) {
	_, client, sessions := newTestServer(t)
	resp := login(t, client, sessions, "john.rigger@example.com")

	// Corrupt the access token; the refresh token stays valid, so one refresh
	// and retry must make the call succeed.
	require.NoError(t, sessions.SaveAuthResult("garbage", resp.RefreshToken, resp.User.ID, resp.User.Email))

	user, err := api.Call[model.User](context.Background(), client, api.GetUserProfile())
	require.NoError(t, err)
	require.Equal(t, "user1", user.ID)

	access, _ := sessions.AccessToken()
	require.NotEqual(t, "garbage", access)
	// The refresh response carries no new refresh token; the old one remains.
	refresh, _ := sessions.RefreshToken()
	require.Equal(t, resp.RefreshToken, refresh)
}

func TestServer_InvalidTokensEndSession(t *testing.T) {
	_, client, sessions := newTestServer(t)
	resp := login(t, client, sessions, "john.rigger@example.com")

	require.NoError(t, sessions.SaveAuthResult("garbage", "also-garbage", resp.User.ID, resp.User.Email))

	_, err := api.Call[model.User](context.Background(), client, api.GetUserProfile())
	require.True(t, api.IsKind(err, api.KindTokenRefreshFailed), "got %v", err)
	require.False(t, sessions.IsAuthenticated())
}

func TestServer_JobsFilteringAndPagination(t *testing.T) {
	_, client, sessions := newTestServer(t)
	login(t, client, sessions, "john.rigger@example.com")

	ep := api.GetJobs().WithQuery(map[string]string{
		"search": "rigger",
		"page":   "1",
		"limit":  "2",
	})
	result, err := api.Call[model.PaginatedResponse[model.Job]](context.Background(), client, ep)
	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	require.Equal(t, 2, result.Pagination.Limit)
	require.GreaterOrEqual(t, result.Pagination.Total, 2)
}

func TestServer_JobNotFound(t *testing.T) {
	_, client, sessions := newTestServer(t)
	login(t, client, sessions, "john.rigger@example.com")

	_, err := api.Call[model.Job](context.Background(), client, api.GetJob("missing"))
	require.True(t, api.IsKind(err, api.KindNotFound))
}

func TestServer_ApplyToJob(t *testing.T) {
	_, client, sessions := newTestServer(t)
	login(t, client, sessions, "mike.crane@example.com")

	ep := api.ApplyToJob("job1").WithBody(model.CreateApplicationRequest{
		JobID:       "job1",
		CoverLetter: "ready to start monday",
	})
	app, err := api.Call[model.Application](context.Background(), client, ep)
	require.NoError(t, err)
	require.Equal(t, "job1", app.JobID)
	require.Equal(t, "user2", app.ApplicantID)
}

func TestServer_RegisterAndUseAccount(t *testing.T) {
	_, client, sessions := newTestServer(t)

	ep := api.Register().WithBody(model.RegisterRequest{
		Email:     "new.rigger@example.com",
		Password:  "pass1234",
		FirstName: "Nina",
		LastName:  "Moore",
	})
	resp, err := api.Call[model.AuthResponse](context.Background(), client, ep)
	require.NoError(t, err)
	require.Equal(t, "new.rigger@example.com", resp.User.Email)
	require.NoError(t, sessions.SaveAuthResult(resp.Token, resp.RefreshToken, resp.User.ID, resp.User.Email))

	user, err := api.Call[model.User](context.Background(), client, api.GetUserProfile())
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, user.ID)
}

func TestServer_BookingAndPaymentFlow(t *testing.T) {
	_, client, sessions := newTestServer(t)
	login(t, client, sessions, "sarah.manager@mining.com")

	booking, err := api.Call[model.Booking](context.Background(), client,
		api.CreateBooking().WithBody(model.CreateBookingRequest{JobID: "job2", WorkerID: "user2"}))
	require.NoError(t, err)
	require.Equal(t, "employer1", booking.BusinessID)

	confirmed, err := api.Call[model.Booking](context.Background(), client,
		api.UpdateBookingStatus(booking.ID).WithBody(model.UpdateBookingStatusRequest{Status: model.BookingConfirmed}))
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, confirmed.Status)

	payment, err := api.Call[model.Payment](context.Background(), client,
		api.CreatePayment().WithBody(model.CreatePaymentRequest{
			JobID:   "job2",
			PayeeID: "user2",
			Amount:  5000,
		}))
	require.NoError(t, err)
	require.Equal(t, model.PaymentPending, payment.Status)
	require.Equal(t, "employer1", payment.PayerID)
}
