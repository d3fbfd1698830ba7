package run_container

import "docker-run-task/internal/domain/model"

// RunContainerCommand starts a detached container from an image.
type RunContainerCommand struct {
	Connection    model.DockerConnection
	ImageName     string
	ContainerName string // optional; the engine generates one when empty
	// AdditionalArgs is passed to `docker run` as given by the pipeline author.
	AdditionalArgs string
}

// Name returns the unique command name for routing on the CQRS bus.
func (c RunContainerCommand) Name() string {
	return "RunContainer"
}
