package login_registry

import (
	"docker-run-task/internal/domain/model"

	"github.com/docker/docker/api/types/registry"
)

// LoginRegistryCommand authenticates the docker client against a registry.
type LoginRegistryCommand struct {
	Connection  model.DockerConnection
	Credentials registry.AuthConfig
}

// Name returns the unique command name for routing on the CQRS bus.
func (c LoginRegistryCommand) Name() string {
	return "LoginRegistry"
}
