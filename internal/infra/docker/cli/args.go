package cli

import (
	"fmt"
	"io"
	"strings"

	"docker-run-task/internal/domain/model"
	"docker-run-task/pkg/argv"
)

// buildArgs translates an invocation into docker CLI arguments and the data to
// feed on stdin. Secrets only ever travel through stdin.
func buildArgs(inv model.Invocation) ([]string, io.Reader, error) {
	switch inv.Operation() {
	case model.OperationLogin:
		creds := inv.Credentials()
		args := []string{"login", "--username", creds.Username, "--password-stdin"}
		if inv.ServerAddress() != "" {
			args = append(args, inv.ServerAddress())
		}
		return args, strings.NewReader(creds.Password), nil

	case model.OperationRemoveContainerByName:
		if inv.ContainerName() == "" {
			return nil, nil, fmt.Errorf("container name is required")
		}
		// --force kills a running container before removing it.
		return []string{"rm", "--force", inv.ContainerName()}, nil, nil

	case model.OperationRun:
		if inv.ImageName() == "" {
			return nil, nil, fmt.Errorf("image name is required")
		}
		args := []string{"run", "--detach"}
		if inv.ContainerName() != "" {
			args = append(args, "--name", inv.ContainerName())
		}
		if inv.AdditionalArguments() != "" {
			extra, err := argv.Split(inv.AdditionalArguments())
			if err != nil {
				return nil, nil, fmt.Errorf("invalid additional arguments: %w", err)
			}
			args = append(args, extra...)
		}
		return append(args, inv.ImageName()), nil, nil

	case model.OperationLogout:
		args := []string{"logout"}
		if inv.ServerAddress() != "" {
			args = append(args, inv.ServerAddress())
		}
		return args, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported operation %s", inv.Operation())
	}
}
