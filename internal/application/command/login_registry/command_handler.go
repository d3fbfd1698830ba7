package login_registry

import (
	"context"
	"fmt"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	log "docker-run-task/pkg/log"
)

// LoginRegistryHandler executes LoginRegistryCommand through the container engine.
type LoginRegistryHandler struct {
	engine repository.ContainerEngine
}

// Handle executes the LoginRegistryCommand.
func (h *LoginRegistryHandler) Handle(ctx context.Context, cmd LoginRegistryCommand) error {
	log.Info("Processing login registry command", "server", cmd.Credentials.ServerAddress, "username", cmd.Credentials.Username)

	if err := h.engine.Execute(ctx, model.NewLoginInvocation(cmd.Connection, cmd.Credentials)); err != nil {
		return fmt.Errorf("failed to log in to registry %q: %w", cmd.Credentials.ServerAddress, err)
	}

	log.Info("Registry login successful", "server", cmd.Credentials.ServerAddress)
	return nil
}

// NewLoginRegistryHandler returns a configured LoginRegistryHandler.
func NewLoginRegistryHandler(engine repository.ContainerEngine) *LoginRegistryHandler {
	return &LoginRegistryHandler{engine: engine}
}
