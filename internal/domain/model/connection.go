package model

import (
	"fmt"

	"docker-run-task/pkg/certs"

	"github.com/docker/docker/client"
)

// DockerConnection describes how to reach the docker daemon that runs the container.
type DockerConnection struct {
	// Host is a docker host URL such as tcp://build:2376 or unix:///var/run/docker.sock.
	// Empty means the engine default.
	Host string
	// TLS is the client material for a TLS-verified host; zero when not used.
	TLS certs.Bundle
}

// UsesTLS reports whether client TLS material is attached.
func (c DockerConnection) UsesTLS() bool {
	return !c.TLS.IsZero()
}

// NewDockerConnection validates host with the docker client's own parser and
// the TLS bundle when one is supplied.
func NewDockerConnection(host string, tls certs.Bundle) (DockerConnection, error) {
	if host != "" {
		if _, err := client.ParseHostURL(host); err != nil {
			return DockerConnection{}, fmt.Errorf("invalid docker host %q: %w", host, err)
		}
	}
	if !tls.IsZero() {
		if err := tls.Validate(); err != nil {
			return DockerConnection{}, fmt.Errorf("invalid TLS material for docker host %q: %w", host, err)
		}
	}
	return DockerConnection{Host: host, TLS: tls}, nil
}
