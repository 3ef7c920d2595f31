package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"store-profit-api/internal/adapters/storage"
	"store-profit-api/internal/config"
	"store-profit-api/internal/services"
	"store-profit-api/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Store    *store.Store
	Services *services.ServiceContainer
	Logger   *logrus.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	st := store.New()
	if cfg.DemoMode {
		st.SetDemoMode(true)
	}

	files, err := storage.NewLocalFileStorage(cfg.Storage.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	serviceContainer, err := services.NewServiceContainer(st, files, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("service container validation failed: %w", err)
	}

	return &Container{
		Config:   cfg,
		Store:    st,
		Services: serviceContainer,
		Logger:   logger,
	}, nil
}
