package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/chasewhiterabbit/rigger-go/internal/config"
)

// TokenStore is the credential surface the client depends on. The session
// store implements it; the client never touches secret storage directly.
type TokenStore interface {
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
	CanRefresh() bool
	UpdateAccessToken(accessToken, refreshToken string) error
	ClearSession() error
}

// Environments supplies the connection parameters of the active environment.
type Environments interface {
	Settings() config.EnvironmentSettings
}

// Client is the live HTTP implementation of Invoker.
type Client struct {
	http   *http.Client
	env    Environments
	tokens TokenStore
	logger *slog.Logger
}

// NewClient constructs a live API client. Timeouts come from the active
// environment per call, so a runtime environment switch takes effect
// immediately.
func NewClient(env Environments, tokens TokenStore, logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{},
		env:    env,
		tokens: tokens,
		logger: logger.With("component", "api.client"),
	}
}

// Invoke executes the endpoint. On a 401 for an authenticated call it
// performs exactly one token refresh and one retry; every other failure
// propagates immediately.
func (c *Client) Invoke(ctx context.Context, ep Endpoint) ([]byte, error) {
	settings := c.env.Settings()
	ctx, cancel := context.WithTimeout(ctx, settings.Timeout)
	defer cancel()

	payload, err := c.do(ctx, ep, settings)
	if !IsKind(err, KindUnauthorized) || !ep.RequiresAuth || !c.tokens.CanRefresh() {
		return payload, err
	}

	if err := c.refresh(ctx, settings); err != nil {
		return nil, err
	}
	return c.do(ctx, ep, settings)
}

func (c *Client) do(ctx context.Context, ep Endpoint, settings config.EnvironmentSettings) ([]byte, error) {
	req, err := c.buildRequest(ctx, ep, settings)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetworkUnavailable, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetworkUnavailable, Err: err}
	}

	if settings.DebugLogging {
		c.logger.Debug("api response",
			"request_id", req.Header.Get("X-Request-ID"),
			"status", resp.StatusCode,
			"body", string(body),
		)
	}

	return interpretResponse(resp.StatusCode, body)
}

func (c *Client) buildRequest(ctx context.Context, ep Endpoint, settings config.EnvironmentSettings) (*http.Request, error) {
	target, err := joinURL(settings.BaseURL, ep.Path, ep.Query)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Err: err}
	}

	var bodyReader io.Reader
	var bodyBytes []byte
	if ep.Body != nil {
		bodyBytes, err = json.Marshal(ep.Body)
		if err != nil {
			return nil, &Error{Kind: KindDecoding, Err: fmt.Errorf("encode request body: %w", err)}
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, string(ep.Method), target, bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if ep.RequiresAuth {
		token, ok := c.tokens.AccessToken()
		if !ok {
			return nil, &Error{Kind: KindNoAuthToken}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if settings.DebugLogging {
		c.logger.Debug("api request",
			"request_id", req.Header.Get("X-Request-ID"),
			"method", string(ep.Method),
			"url", target,
			"headers", redactHeaders(req.Header),
			"body", string(bodyBytes),
		)
	}

	return req, nil
}

// refresh exchanges the refresh token for a new access token. Any failure
// clears the session; the in-flight call chain must not retry again.
func (c *Client) refresh(ctx context.Context, settings config.EnvironmentSettings) error {
	refreshToken, ok := c.tokens.RefreshToken()
	if !ok {
		return &Error{Kind: KindNoRefreshToken}
	}

	target, err := joinURL(settings.BaseURL, RefreshToken().Path, nil)
	if err != nil {
		return &Error{Kind: KindInvalidURL, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return &Error{Kind: KindInvalidURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+refreshToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetworkUnavailable, Err: err}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || readErr != nil {
		return c.failRefresh(nil)
	}

	var env struct {
		Success bool `json:"success"`
		Data    *struct {
			Token        string `json:"token"`
			RefreshToken string `json:"refreshToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil || !env.Success || env.Data == nil || env.Data.Token == "" {
		return c.failRefresh(err)
	}

	if err := c.tokens.UpdateAccessToken(env.Data.Token, env.Data.RefreshToken); err != nil {
		return c.failRefresh(err)
	}
	c.logger.Info("access token refreshed")
	return nil
}

func (c *Client) failRefresh(cause error) error {
	if err := c.tokens.ClearSession(); err != nil {
		c.logger.Warn("failed to clear session after refresh failure", "error", err)
	}
	return &Error{Kind: KindTokenRefreshFailed, Err: cause}
}

func joinURL(base, path string, query map[string]string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("base URL missing scheme or host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}

// redactHeaders copies headers for logging with bearer credentials masked.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		if strings.EqualFold(k, "Authorization") {
			out[k] = "Bearer [REDACTED]"
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}
