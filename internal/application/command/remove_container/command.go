package remove_container

import "docker-run-task/internal/domain/model"

// RemoveContainerCommand stops and removes a container by name so that a new
// one can take the name over.
type RemoveContainerCommand struct {
	Connection    model.DockerConnection
	ContainerName string
}

// Name returns the unique command name for routing on the CQRS bus.
func (c RemoveContainerCommand) Name() string {
	return "RemoveContainer"
}
