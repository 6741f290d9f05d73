package config

import (
	"strings"
	"time"
)

// Environment names one of the deployable API targets.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment maps a raw string onto a known environment.
func ParseEnvironment(raw string) (Environment, bool) {
	switch Environment(strings.ToLower(strings.TrimSpace(raw))) {
	case Development:
		return Development, true
	case Staging:
		return Staging, true
	case Production:
		return Production, true
	default:
		return "", false
	}
}

// DisplayName returns the human-facing environment label.
func (e Environment) DisplayName() string {
	switch e {
	case Development:
		return "Development"
	case Staging:
		return "Staging"
	default:
		return "Production"
	}
}

// EnvironmentSettings are the static per-environment connection parameters.
type EnvironmentSettings struct {
	BaseURL       string
	WebSocketURL  string
	Timeout       time.Duration
	DebugLogging  bool
	RetryAttempts int
}

// Settings returns the connection parameters for the environment.
// Unknown values fall back to production.
func (e Environment) Settings() EnvironmentSettings {
	switch e {
	case Development:
		return EnvironmentSettings{
			BaseURL:       "http://localhost:3000/api/v1",
			WebSocketURL:  "ws://localhost:3000/ws",
			Timeout:       30 * time.Second,
			DebugLogging:  true,
			RetryAttempts: 3,
		}
	case Staging:
		return EnvironmentSettings{
			BaseURL:       "https://staging-api.rigger.sxc.codes/api/v1",
			WebSocketURL:  "wss://staging-api.rigger.sxc.codes/ws",
			Timeout:       60 * time.Second,
			DebugLogging:  true,
			RetryAttempts: 5,
		}
	default:
		return EnvironmentSettings{
			BaseURL:       "https://api.rigger.sxc.codes/api/v1",
			WebSocketURL:  "wss://api.rigger.sxc.codes/ws",
			Timeout:       30 * time.Second,
			DebugLogging:  false,
			RetryAttempts: 3,
		}
	}
}
