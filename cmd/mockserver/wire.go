//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/chasewhiterabbit/rigger-go/internal/bootstrap"
	"github.com/chasewhiterabbit/rigger-go/internal/config"
	"github.com/chasewhiterabbit/rigger-go/internal/mock"
	"github.com/chasewhiterabbit/rigger-go/internal/mockserver"
	"github.com/chasewhiterabbit/rigger-go/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		mock.NewProvider,
		mockserver.NewHandler,
		mockserver.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
