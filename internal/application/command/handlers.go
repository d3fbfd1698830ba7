package command

import (
	"docker-run-task/internal/application/command/login_registry"
	"docker-run-task/internal/application/command/logout_registry"
	"docker-run-task/internal/application/command/remove_container"
	"docker-run-task/internal/application/command/run_container"
	"docker-run-task/internal/domain/repository"
	"docker-run-task/pkg/cqrs"
	"docker-run-task/pkg/log"
)

// RegisterCommandHandlers wires every container engine command onto b.
func RegisterCommandHandlers(b cqrs.CommandBus, engine repository.ContainerEngine) error {
	if err := b.Register(login_registry.NewLoginRegistryHandler(engine)); err != nil {
		return log.Errorf("failed to register login registry handler: %w", err)
	}

	if err := b.Register(remove_container.NewRemoveContainerHandler(engine)); err != nil {
		return log.Errorf("failed to register remove container handler: %w", err)
	}

	if err := b.Register(run_container.NewRunContainerHandler(engine)); err != nil {
		return log.Errorf("failed to register run container handler: %w", err)
	}

	if err := b.Register(logout_registry.NewLogoutRegistryHandler(engine)); err != nil {
		return log.Errorf("failed to register logout registry handler: %w", err)
	}

	return nil
}
