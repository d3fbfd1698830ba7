package run_container

import (
	"context"
	"fmt"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	log "docker-run-task/pkg/log"
)

// RunContainerHandler executes RunContainerCommand.
type RunContainerHandler struct {
	engine repository.ContainerEngine
}

// Handle executes the RunContainerCommand.
func (h *RunContainerHandler) Handle(ctx context.Context, cmd RunContainerCommand) error {
	log.Info("Processing run container command", "image", cmd.ImageName, "container", cmd.ContainerName)

	if cmd.ImageName == "" {
		return fmt.Errorf("image name is required")
	}

	inv := model.NewRunInvocation(cmd.Connection, cmd.ImageName, cmd.ContainerName, cmd.AdditionalArgs)
	if err := h.engine.Execute(ctx, inv); err != nil {
		return fmt.Errorf("failed to run container from image %q: %w", cmd.ImageName, err)
	}

	log.Info("Container started", "image", cmd.ImageName, "container", cmd.ContainerName)
	return nil
}

// NewRunContainerHandler returns a configured RunContainerHandler.
func NewRunContainerHandler(engine repository.ContainerEngine) *RunContainerHandler {
	return &RunContainerHandler{engine: engine}
}
