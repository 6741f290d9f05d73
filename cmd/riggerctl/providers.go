package main

import (
	"log/slog"
	"time"

	"github.com/chasewhiterabbit/rigger-go/internal/api"
	"github.com/chasewhiterabbit/rigger-go/internal/config"
	"github.com/chasewhiterabbit/rigger-go/internal/mock"
	"github.com/chasewhiterabbit/rigger-go/internal/secrets"
	"github.com/chasewhiterabbit/rigger-go/internal/session"
)

// provideSecretStorage picks the credential backend. The mock-data
// configuration keeps everything in memory so nothing touches disk.
func provideSecretStorage(cfg *config.Config, logger *slog.Logger) (secrets.Storage, error) {
	if cfg.UseMockData {
		logger.Info("mock data enabled, using in-memory credential storage")
		return secrets.NewMemoryStorage(), nil
	}
	return secrets.OpenFile(cfg.Secrets.Path, cfg.Secrets.Passphrase)
}

// provideInvoker selects the transport: the live HTTP client, or the
// fixture-backed substitution when mock data is enabled.
func provideInvoker(cfg *config.Config, resolver *config.Resolver, sessions *session.Store, logger *slog.Logger) api.Invoker {
	if cfg.UseMockData {
		logger.Info("mock data enabled, using fixture transport")
		return mock.NewClient(mock.NewProvider(), sessions, logger,
			mock.WithLatency(50*time.Millisecond, 200*time.Millisecond))
	}
	return api.NewClient(resolver, sessions, logger)
}
