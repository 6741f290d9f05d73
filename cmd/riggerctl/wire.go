//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/chasewhiterabbit/rigger-go/internal/config"
	"github.com/chasewhiterabbit/rigger-go/internal/services"
	"github.com/chasewhiterabbit/rigger-go/internal/session"
	"github.com/chasewhiterabbit/rigger-go/pkg/logger"
)

func initializeCLI() (*CLI, error) {
	wire.Build(
		config.Load,
		config.NewResolver,
		logger.New,
		provideSecretStorage,
		provideInvoker,
		session.NewStore,
		services.NewAuth,
		services.NewUser,
		services.NewJob,
		services.NewApplication,
		services.NewBooking,
		services.NewReview,
		services.NewPayment,
		NewCLI,
	)
	return nil, nil
}
