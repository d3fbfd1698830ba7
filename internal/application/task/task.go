// Package task implements the docker run pipeline task: log in to a registry,
// replace a named container with a fresh one from an image, log out.
package task

import (
	"context"
	"fmt"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/registry"
	"github.com/hashicorp/go-multierror"

	"docker-run-task/internal/application/command"
	"docker-run-task/internal/application/command/login_registry"
	"docker-run-task/internal/application/command/logout_registry"
	"docker-run-task/internal/application/command/remove_container"
	"docker-run-task/internal/application/command/run_container"
	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	"docker-run-task/pkg/argv"
	"docker-run-task/pkg/cqrs"
	"docker-run-task/pkg/log"
)

// Input names configured on the pipeline task.
const (
	InputDockerServiceEndpoint         = "dockerServiceEndpoint"
	InputDockerRegistryServiceEndpoint = "dockerRegistryServiceEndpoint"
	InputImageName                     = "imageName"
	InputContainerName                 = "containerName"
	InputAdditionalArgs                = "additionalArgs"
)

// SecretMasker registers values the host must redact from the task log.
type SecretMasker interface {
	SetSecret(value string)
}

// DockerRunTask orchestrates the login, remove, run and logout invocations.
type DockerRunTask struct {
	inputs  repository.TaskInputs
	bus     cqrs.CommandBus
	secrets SecretMasker
}

// settings holds everything resolved from the task inputs before the first
// process is started.
type settings struct {
	connection     model.DockerConnection
	credentials    registry.AuthConfig
	imageName      string
	containerName  string
	additionalArgs string
}

// NewDockerRunTask wires the command handlers for engine onto a fresh bus.
// secrets may be nil.
func NewDockerRunTask(inputs repository.TaskInputs, engine repository.ContainerEngine, secrets SecretMasker) (*DockerRunTask, error) {
	bus := cqrs.NewCommandBus()
	if err := command.RegisterCommandHandlers(bus, engine); err != nil {
		return nil, err
	}
	return &DockerRunTask{inputs: inputs, bus: bus, secrets: secrets}, nil
}

// Run executes the task. Steps run strictly in order and the first failure
// ends the run; in particular a failed `docker run` leaves the registry
// session open rather than masking the failure with a logout.
func (t *DockerRunTask) Run(ctx context.Context) error {
	s, err := t.resolveSettings()
	if err != nil {
		return err
	}
	if t.secrets != nil {
		t.secrets.SetSecret(s.credentials.Password)
	}

	log.Info("[Task] logging in to registry", "server", s.credentials.ServerAddress)
	if err := t.bus.Dispatch(ctx, login_registry.LoginRegistryCommand{
		Connection:  s.connection,
		Credentials: s.credentials,
	}); err != nil {
		return err
	}

	if s.containerName != "" {
		log.Info("[Task] removing conflicting container", "container", s.containerName)
		if err := t.bus.Dispatch(ctx, remove_container.RemoveContainerCommand{
			Connection:    s.connection,
			ContainerName: s.containerName,
		}); err != nil {
			return err
		}
	}

	log.Info("[Task] running container", "image", s.imageName, "container", s.containerName)
	if err := t.bus.Dispatch(ctx, run_container.RunContainerCommand{
		Connection:     s.connection,
		ImageName:      s.imageName,
		ContainerName:  s.containerName,
		AdditionalArgs: s.additionalArgs,
	}); err != nil {
		return err
	}

	log.Info("[Task] logging out of registry", "server", s.credentials.ServerAddress)
	return t.bus.Dispatch(ctx, logout_registry.LogoutRegistryCommand{
		Connection:    s.connection,
		ServerAddress: s.credentials.ServerAddress,
	})
}

// resolveSettings reads all inputs and endpoints. Problems are collected so a
// misconfigured task reports every missing input at once.
func (t *DockerRunTask) resolveSettings() (*settings, error) {
	var result *multierror.Error
	s := &settings{}

	hostEndpoint, err := t.inputs.GetInput(InputDockerServiceEndpoint, true)
	result = appendErr(result, err)
	registryEndpoint, err := t.inputs.GetInput(InputDockerRegistryServiceEndpoint, true)
	result = appendErr(result, err)
	s.imageName, err = t.inputs.GetInput(InputImageName, true)
	result = appendErr(result, err)
	s.containerName, err = t.inputs.GetInput(InputContainerName, false)
	result = appendErr(result, err)
	s.additionalArgs, err = t.inputs.GetInput(InputAdditionalArgs, false)
	result = appendErr(result, err)

	if err := result.ErrorOrNil(); err != nil {
		return nil, &model.ConfigurationError{Err: err}
	}

	ref, err := reference.ParseAnyReference(s.imageName)
	if err != nil {
		result = appendErr(result, fmt.Errorf("invalid %s %q: %w", InputImageName, s.imageName, err))
	} else {
		log.Debug("[Task] resolved image", "image", reference.FamiliarString(ref))
	}

	if _, err := argv.Split(s.additionalArgs); err != nil {
		result = appendErr(result, fmt.Errorf("invalid %s: %w", InputAdditionalArgs, err))
	}

	hostURL, err := t.inputs.GetEndpointURL(hostEndpoint, true)
	result = appendErr(result, err)
	hostAuth, err := t.inputs.GetEndpointAuthorization(hostEndpoint, false)
	result = appendErr(result, err)
	if hostURL != "" {
		s.connection, err = model.NewDockerConnection(hostURL, model.TLSBundle(hostAuth))
		result = appendErr(result, err)
	}

	registryAuth, err := t.inputs.GetEndpointAuthorization(registryEndpoint, true)
	result = appendErr(result, err)
	if registryAuth != nil {
		registryURL, err := t.inputs.GetEndpointURL(registryEndpoint, false)
		result = appendErr(result, err)
		s.credentials, err = model.RegistryCredentials(registryAuth, registryURL)
		result = appendErr(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, &model.ConfigurationError{Err: err}
	}
	return s, nil
}

func appendErr(result *multierror.Error, err error) *multierror.Error {
	if err == nil {
		return result
	}
	return multierror.Append(result, err)
}
