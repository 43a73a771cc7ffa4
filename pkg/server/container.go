package server

import (
	"context"
	"fmt"

	"prompt-relay-api/internal/adapters/bedrock"
	"prompt-relay-api/internal/config"
	"prompt-relay-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	PromptService services.PromptService

	// Internal dependencies
	invoker  services.ModelInvoker
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container backed by the
// Bedrock runtime in the configured region
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client, err := bedrock.NewClientForRegion(ctx, cfg.Bedrock.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create bedrock client: %w", err)
	}

	return NewContainerWithInvoker(cfg, client)
}

// NewContainerWithInvoker creates a container around an existing model invoker
func NewContainerWithInvoker(cfg *config.Config, invoker services.ModelInvoker) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	serviceConfig := &services.ModelConfig{
		ModelID:     cfg.Bedrock.ModelID,
		MaxTokens:   cfg.Bedrock.MaxTokens,
		Temperature: cfg.Bedrock.Temperature,
	}

	serviceContainer, err := services.NewServiceContainer(invoker, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:        cfg,
		PromptService: serviceContainer.PromptService,
		invoker:       invoker,
		services:      serviceContainer,
	}, nil
}

// Validate checks that all dependencies are wired
func (c *Container) Validate() error {
	if c.invoker == nil {
		return fmt.Errorf("model invoker is nil")
	}
	return c.services.Validate()
}

// Close cleans up all resources. The Bedrock client holds no resources that
// need releasing.
func (c *Container) Close() error {
	return nil
}
