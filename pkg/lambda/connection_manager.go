package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"prompt-relay-api/internal/config"
	"prompt-relay-api/pkg/server"
)

// ContainerFactory builds a container from configuration
type ContainerFactory func(ctx context.Context, cfg *config.Config) (*server.Container, error)

// ConnectionManager builds the service container once per execution
// environment and hands it to every invocation
type ConnectionManager struct {
	factory   ContainerFactory
	container *server.Container
	lastUsed  time.Time
	mu        sync.RWMutex
	initOnce  sync.Once
	initErr   error
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(server.NewContainer)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager using factory
func NewConnectionManager(factory ContainerFactory) *ConnectionManager {
	return &ConnectionManager{factory: factory}
}

// Initialize builds the container from cfg. Only the first call has any
// effect; later calls return the first result.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.initOnce.Do(func() {
		if cfg == nil {
			cm.initErr = fmt.Errorf("config cannot be nil")
			return
		}

		container, err := cm.factory(ctx, cfg)
		if err != nil {
			cm.initErr = err
			return
		}

		cm.mu.Lock()
		defer cm.mu.Unlock()
		cm.container = container
		cm.lastUsed = time.Now()
	})

	return cm.initErr
}

// GetContainer returns the service container, initializing from the
// environment if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	if cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cm.mu.Unlock()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}
	if err := cm.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if cm.container == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return cm.container, nil
}

// IsInitialized reports whether the container has been built
func (cm *ConnectionManager) IsInitialized() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container != nil
}

// LastUsed returns when the container was last handed out
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lastUsed
}

// Cleanup releases the container
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	return nil
}
