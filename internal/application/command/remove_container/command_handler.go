package remove_container

import (
	"context"
	"errors"
	"fmt"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	log "docker-run-task/pkg/log"
)

// RemoveContainerHandler executes RemoveContainerCommand. A container that
// does not exist counts as removed.
type RemoveContainerHandler struct {
	engine repository.ContainerEngine
}

// Handle executes the RemoveContainerCommand.
func (h *RemoveContainerHandler) Handle(ctx context.Context, cmd RemoveContainerCommand) error {
	log.Info("Processing remove container command", "container", cmd.ContainerName)

	if cmd.ContainerName == "" {
		return fmt.Errorf("container name is required")
	}

	err := h.engine.Execute(ctx, model.NewRemoveContainerInvocation(cmd.Connection, cmd.ContainerName))
	switch {
	case err == nil:
		log.Info("Container removed", "container", cmd.ContainerName)
		return nil
	case errors.Is(err, model.ErrNoSuchContainer):
		log.Info("No conflicting container to remove", "container", cmd.ContainerName)
		return nil
	default:
		return fmt.Errorf("failed to remove container %q: %w", cmd.ContainerName, err)
	}
}

// NewRemoveContainerHandler returns a configured RemoveContainerHandler.
func NewRemoveContainerHandler(engine repository.ContainerEngine) *RemoveContainerHandler {
	return &RemoveContainerHandler{engine: engine}
}
