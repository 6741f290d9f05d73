package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	cases := []struct {
		raw  string
		want Environment
		ok   bool
	}{
		{"development", Development, true},
		{"Staging", Staging, true},
		{" PRODUCTION ", Production, true},
		{"", "", false},
		{"qa", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseEnvironment(tc.raw)
		require.Equal(t, tc.ok, ok, "raw %q", tc.raw)
		require.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestEnvironmentSettings(t *testing.T) {
	dev := Development.Settings()
	require.Equal(t, "http://localhost:3000/api/v1", dev.BaseURL)
	require.Equal(t, 30*time.Second, dev.Timeout)
	require.True(t, dev.DebugLogging)
	require.Equal(t, 3, dev.RetryAttempts)

	staging := Staging.Settings()
	require.Equal(t, "https://staging-api.rigger.sxc.codes/api/v1", staging.BaseURL)
	require.Equal(t, 60*time.Second, staging.Timeout)
	require.Equal(t, 5, staging.RetryAttempts)

	prod := Production.Settings()
	require.Equal(t, "https://api.rigger.sxc.codes/api/v1", prod.BaseURL)
	require.False(t, prod.DebugLogging)

	// Unknown values resolve to production parameters.
	require.Equal(t, prod, Environment("qa").Settings())
}

func TestEnvironmentDisplayName(t *testing.T) {
	require.Equal(t, "Development", Development.DisplayName())
	require.Equal(t, "Staging", Staging.DisplayName())
	require.Equal(t, "Production", Production.DisplayName())
}
