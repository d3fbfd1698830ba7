// Package cli implements repository.ContainerEngine on top of the docker
// command line client. Every invocation spawns exactly one docker process.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	"docker-run-task/pkg/certs"
	"docker-run-task/pkg/env"
	"docker-run-task/pkg/execx"
	"docker-run-task/pkg/log"
)

const noSuchContainerMarker = "no such container"

// Config controls how the docker binary is launched.
type Config struct {
	// Binary is the docker executable; defaults to "docker".
	Binary string
	// ConfigDir, when set, is exported as DOCKER_CONFIG so registry sessions
	// stay out of the agent user's ~/.docker.
	ConfigDir string
	// BaseEnv is the inherited environment; nil means os.Environ().
	BaseEnv []string
}

// Engine is a docker CLI backed container engine.
type Engine struct {
	config Config
	runner execx.Runner
}

// Assert that *Engine implements repository.ContainerEngine.
var _ repository.ContainerEngine = (*Engine)(nil)

// NewEngine returns an engine launching processes through runner.
func NewEngine(config Config, runner execx.Runner) *Engine {
	if config.Binary == "" {
		config.Binary = "docker"
	}
	return &Engine{config: config, runner: runner}
}

// Execute runs a single invocation synchronously.
func (e *Engine) Execute(ctx context.Context, inv model.Invocation) error {
	args, stdin, err := buildArgs(inv)
	if err != nil {
		return fmt.Errorf("failed to build docker %s command: %w", inv.Operation(), err)
	}

	environ, cleanup, err := e.environment(inv.Connection())
	if err != nil {
		return fmt.Errorf("failed to prepare docker %s environment: %w", inv.Operation(), err)
	}
	defer cleanup()

	log.Debug("[Engine] executing invocation", "invocation", inv.String(), "host", inv.Connection().Host)

	res := e.runner.Run(ctx, execx.Command{
		Name:  e.config.Binary,
		Args:  args,
		Env:   environ,
		Stdin: stdin,
	})
	if res.Code == 0 && res.Err == nil {
		log.Info("[Engine] docker command succeeded", "operation", inv.Operation().String())
		return nil
	}

	if inv.Operation() == model.OperationRemoveContainerByName &&
		strings.Contains(strings.ToLower(res.Stderr), noSuchContainerMarker) {
		return fmt.Errorf("%w: %s", model.ErrNoSuchContainer, inv.ContainerName())
	}

	log.Error("[Engine] docker command failed", "operation", inv.Operation().String(), "exit_code", res.Code, "error", res.Err)
	return &model.InvocationError{
		Operation: inv.Operation(),
		ExitCode:  res.Code,
		Output:    res.Stderr,
		Err:       res.Err,
	}
}

// environment builds the process environment for conn. The returned cleanup
// removes any TLS material written for the invocation.
func (e *Engine) environment(conn model.DockerConnection) ([]string, func(), error) {
	base := e.config.BaseEnv
	if base == nil {
		base = os.Environ()
	}

	vars := map[string]string{}
	if e.config.ConfigDir != "" {
		vars["DOCKER_CONFIG"] = e.config.ConfigDir
	}

	cleanup := func() {}
	if conn.Host != "" {
		vars["DOCKER_HOST"] = conn.Host
		// An explicit host must not inherit TLS settings meant for another daemon.
		vars["DOCKER_TLS_VERIFY"] = ""
		vars["DOCKER_CERT_PATH"] = ""
	}

	if conn.UsesTLS() {
		dir, err := os.MkdirTemp("", "docker-run-certs-")
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create certificate directory: %w", err)
		}
		cleanup = func() {
			if err := os.RemoveAll(dir); err != nil {
				log.Warn("[Engine] failed to remove certificate directory", "dir", dir, "error", err)
			}
		}
		if err := certs.WriteBundle(dir, conn.TLS); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		vars["DOCKER_TLS_VERIFY"] = "1"
		vars["DOCKER_CERT_PATH"] = dir
	}

	return env.Merge(base, vars), cleanup, nil
}
