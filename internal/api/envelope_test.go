package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrapEnvelope(t *testing.T) {
	t.Run("success with data", func(t *testing.T) {
		payload, err := unwrapEnvelope([]byte(`{"success":true,"data":{"id":"job1"}}`))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"job1"}`, string(payload))
	})

	t.Run("no success field passes through", func(t *testing.T) {
		body := []byte(`{"id":"job1","title":"Rigger"}`)
		payload, err := unwrapEnvelope(body)
		require.NoError(t, err)
		require.Equal(t, body, payload)
	})

	t.Run("array body passes through", func(t *testing.T) {
		body := []byte(`[{"id":"job1"}]`)
		payload, err := unwrapEnvelope(body)
		require.NoError(t, err)
		require.Equal(t, body, payload)
	})

	t.Run("failure with error object", func(t *testing.T) {
		_, err := unwrapEnvelope([]byte(`{"success":false,"error":{"code":"NOPE","message":"rejected"}}`))
		require.True(t, IsKind(err, KindAPI))
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "rejected", apiErr.Detail.Message)
	})

	t.Run("success without data is invalid", func(t *testing.T) {
		_, err := unwrapEnvelope([]byte(`{"success":true}`))
		require.True(t, IsKind(err, KindInvalidResponse))
	})

	t.Run("success with null data is invalid", func(t *testing.T) {
		_, err := unwrapEnvelope([]byte(`{"success":true,"data":null}`))
		require.True(t, IsKind(err, KindInvalidResponse))
	})

	t.Run("failure without error object is invalid", func(t *testing.T) {
		_, err := unwrapEnvelope([]byte(`{"success":false}`))
		require.True(t, IsKind(err, KindInvalidResponse))
	})
}

func TestInterpretResponse(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   Kind
	}{
		{"unauthorized", 401, "", KindUnauthorized},
		{"forbidden", 403, "", KindForbidden},
		{"not found", 404, "", KindNotFound},
		{"validation", 422, `{"success":false,"error":{"code":"VALIDATION_ERROR","message":"bad"}}`, KindValidation},
		{"rate limited", 429, "", KindRateLimited},
		{"server", 500, "", KindServer},
		{"server high", 599, "", KindServer},
		{"other", 418, "", KindHTTP},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interpretResponse(tc.status, []byte(tc.body))
			require.Equal(t, tc.want, KindOf(err))
		})
	}

	t.Run("2xx unwraps", func(t *testing.T) {
		payload, err := interpretResponse(201, []byte(`{"success":true,"data":{"id":"x"}}`))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"x"}`, string(payload))
	})
}

func TestErrorMessages(t *testing.T) {
	err := &Error{Kind: KindValidation, Detail: &APIError{Message: "email required"}}
	require.Equal(t, "validation error: email required", err.Message())

	err = &Error{Kind: KindServer, Status: 503}
	require.Equal(t, "server error: 503", err.Message())
	require.Equal(t, "Please try again later.", err.RecoverySuggestion())

	err = &Error{Kind: KindUnauthorized}
	require.Equal(t, "Please log in again.", err.RecoverySuggestion())
}
