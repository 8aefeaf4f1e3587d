package container

import (
	"context"

	"marktplaats/client/internal/client"
	"marktplaats/client/internal/config"
	"marktplaats/client/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.MarktplaatsClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	marktplaatsClient := client.NewMarktplaatsClient(cfg.Marktplaats)

	return &Container{
		Config:  cfg,
		Client:  marktplaatsClient,
		Service: service.NewService(marktplaatsClient, cfg.Search),
	}, nil
}

// Run executes the configured search
func (c *Container) Run(ctx context.Context) error {
	return c.Service.Run(ctx)
}
