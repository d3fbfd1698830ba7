package repository

import (
	"errors"

	"docker-run-task/internal/domain/model"
)

var (
	// ErrInputRequired is returned for a required input that is absent or blank.
	ErrInputRequired = errors.New("input required")
	// ErrEndpointURLRequired is returned for a required endpoint without URL.
	ErrEndpointURLRequired = errors.New("endpoint URL required")
	// ErrEndpointAuthorizationRequired is returned for a required endpoint
	// without authorization data.
	ErrEndpointAuthorizationRequired = errors.New("endpoint authorization required")
)

// TaskInputs resolves the named inputs and service endpoints configured on the
// pipeline task. When required is true and the value is absent the returned
// error wraps one of the Err*Required sentinels.
type TaskInputs interface {
	GetInput(name string, required bool) (string, error)
	GetEndpointURL(id string, required bool) (string, error)
	GetEndpointAuthorization(id string, required bool) (*model.EndpointAuthorization, error)
}
