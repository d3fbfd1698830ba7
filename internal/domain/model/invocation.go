package model

import (
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/registry"
)

// Invocation is one container engine command request. Values are built by the
// New*Invocation constructors, one per operation, and are not modified after.
type Invocation struct {
	operation           Operation
	connection          DockerConnection
	credentials         registry.AuthConfig
	serverAddress       string
	imageName           string
	containerName       string
	additionalArguments string
}

// NewLoginInvocation authenticates against creds.ServerAddress.
func NewLoginInvocation(conn DockerConnection, creds registry.AuthConfig) Invocation {
	return Invocation{
		operation:     OperationLogin,
		connection:    conn,
		credentials:   creds,
		serverAddress: creds.ServerAddress,
	}
}

// NewRemoveContainerInvocation stops and removes the container called name.
func NewRemoveContainerInvocation(conn DockerConnection, name string) Invocation {
	return Invocation{
		operation:     OperationRemoveContainerByName,
		connection:    conn,
		containerName: name,
	}
}

// NewRunInvocation starts a detached container from image. name may be empty,
// in which case the engine picks one. additionalArguments is passed through as given.
func NewRunInvocation(conn DockerConnection, image, name, additionalArguments string) Invocation {
	return Invocation{
		operation:           OperationRun,
		connection:          conn,
		imageName:           image,
		containerName:       name,
		additionalArguments: additionalArguments,
	}
}

// NewLogoutInvocation drops the session for serverAddress.
func NewLogoutInvocation(conn DockerConnection, serverAddress string) Invocation {
	return Invocation{
		operation:     OperationLogout,
		connection:    conn,
		serverAddress: serverAddress,
	}
}

// Operation returns what the invocation does.
func (i Invocation) Operation() Operation {
	return i.operation
}

// Connection returns the daemon the invocation targets.
func (i Invocation) Connection() DockerConnection {
	return i.connection
}

// Credentials returns the registry credentials of a login invocation.
func (i Invocation) Credentials() registry.AuthConfig {
	return i.credentials
}

// ServerAddress returns the registry of a login or logout invocation.
func (i Invocation) ServerAddress() string {
	return i.serverAddress
}

func (i Invocation) ImageName() string {
	return i.imageName
}

func (i Invocation) ContainerName() string {
	return i.containerName
}

func (i Invocation) AdditionalArguments() string {
	return i.additionalArguments
}

// String describes the invocation for logs. Credentials are reduced to the
// username; the password is never rendered.
func (i Invocation) String() string {
	var parts []string
	switch i.operation {
	case OperationLogin:
		parts = append(parts, "server="+i.serverAddress, "username="+i.credentials.Username)
	case OperationRemoveContainerByName:
		parts = append(parts, "name="+i.containerName)
	case OperationRun:
		parts = append(parts, "image="+i.imageName)
		if i.containerName != "" {
			parts = append(parts, "name="+i.containerName)
		}
		if i.additionalArguments != "" {
			parts = append(parts, "args="+i.additionalArguments)
		}
	case OperationLogout:
		parts = append(parts, "server="+i.serverAddress)
	}
	return fmt.Sprintf("%s(%s)", i.operation, strings.Join(parts, ", "))
}
