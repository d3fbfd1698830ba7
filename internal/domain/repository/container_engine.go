package repository

import (
	"context"

	"docker-run-task/internal/domain/model"
)

// ContainerEngine executes container engine invocations.
type ContainerEngine interface {
	// Execute runs inv to completion. A non-zero exit is returned as
	// *model.InvocationError; a remove targeting a missing container returns
	// an error matching model.ErrNoSuchContainer.
	Execute(ctx context.Context, inv model.Invocation) error
}
