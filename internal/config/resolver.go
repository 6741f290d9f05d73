package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const environmentStateFile = "environment"

// Resolver holds the process-wide active environment. The selection is
// persisted under the state directory so it survives restarts until Reset.
type Resolver struct {
	mu        sync.RWMutex
	current   Environment
	statePath string
	logger    *slog.Logger
	listeners []func(Environment)
}

// NewResolver seeds the active environment. An explicit configuration value
// wins over a previously persisted choice; the default is production.
func NewResolver(cfg *Config, logger *slog.Logger) *Resolver {
	r := &Resolver{
		current:   Production,
		statePath: filepath.Join(cfg.StateDir, environmentStateFile),
		logger:    logger.With("component", "config.resolver"),
	}
	if env, ok := ParseEnvironment(cfg.Environment); ok {
		r.current = env
		return r
	}
	if saved, err := os.ReadFile(r.statePath); err == nil {
		if env, ok := ParseEnvironment(string(saved)); ok {
			r.current = env
		}
	}
	return r
}

// Current returns the active environment.
func (r *Resolver) Current() Environment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Settings returns the connection parameters of the active environment.
func (r *Resolver) Settings() EnvironmentSettings {
	return r.Current().Settings()
}

// SwitchTo activates env, persists the choice, and notifies subscribers.
func (r *Resolver) SwitchTo(env Environment) {
	if _, ok := ParseEnvironment(string(env)); !ok {
		r.logger.Warn("ignoring switch to unknown environment", "environment", string(env))
		return
	}

	r.mu.Lock()
	r.current = env
	listeners := make([]func(Environment), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.statePath), 0o700); err == nil {
		if err := os.WriteFile(r.statePath, []byte(strings.ToLower(string(env))), 0o600); err != nil {
			r.logger.Warn("failed to persist environment selection", "error", err)
		}
	}
	r.logger.Info("environment switched", "environment", string(env))

	for _, notify := range listeners {
		notify(env)
	}
}

// Reset clears the persisted override and reverts to production.
func (r *Resolver) Reset() {
	if err := os.Remove(r.statePath); err != nil && !os.IsNotExist(err) {
		r.logger.Warn("failed to clear environment selection", "error", err)
	}

	r.mu.Lock()
	r.current = Production
	listeners := make([]func(Environment), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, notify := range listeners {
		notify(Production)
	}
}

// Subscribe registers a callback invoked after every environment change.
func (r *Resolver) Subscribe(fn func(Environment)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}
