package logout_registry

import (
	"context"
	"fmt"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	log "docker-run-task/pkg/log"
)

// LogoutRegistryHandler executes LogoutRegistryCommand.
type LogoutRegistryHandler struct {
	engine repository.ContainerEngine
}

// Handle executes the LogoutRegistryCommand.
func (h *LogoutRegistryHandler) Handle(ctx context.Context, cmd LogoutRegistryCommand) error {
	log.Info("Processing logout registry command", "server", cmd.ServerAddress)

	if err := h.engine.Execute(ctx, model.NewLogoutInvocation(cmd.Connection, cmd.ServerAddress)); err != nil {
		return fmt.Errorf("failed to log out of registry %q: %w", cmd.ServerAddress, err)
	}

	log.Info("Registry logout successful", "server", cmd.ServerAddress)
	return nil
}

// NewLogoutRegistryHandler returns a configured LogoutRegistryHandler.
func NewLogoutRegistryHandler(engine repository.ContainerEngine) *LogoutRegistryHandler {
	return &LogoutRegistryHandler{engine: engine}
}
