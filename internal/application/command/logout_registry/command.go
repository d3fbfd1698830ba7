package logout_registry

import "docker-run-task/internal/domain/model"

// LogoutRegistryCommand ends the registry session opened by LoginRegistryCommand.
type LogoutRegistryCommand struct {
	Connection    model.DockerConnection
	ServerAddress string
}

// Name returns the unique command name for routing on the CQRS bus.
func (c LogoutRegistryCommand) Name() string {
	return "LogoutRegistry"
}
