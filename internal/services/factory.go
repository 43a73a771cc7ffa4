package services

import (
	"fmt"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	PromptService PromptService
}

// ModelConfig holds the fixed generation parameters
type ModelConfig struct {
	ModelID     string  `validate:"required"`
	MaxTokens   int     `validate:"gte=1"`
	Temperature float64 `validate:"gte=0,lte=1"`
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(invoker ModelInvoker, config *ModelConfig) (*ServiceContainer, error) {
	promptService, err := NewPromptService(invoker, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt service: %w", err)
	}

	return &ServiceContainer{
		PromptService: promptService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.PromptService == nil {
		return fmt.Errorf("prompt service is nil")
	}
	return nil
}
