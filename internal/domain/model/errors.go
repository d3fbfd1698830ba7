package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuchContainer is returned when the engine reports that the targeted
// container does not exist.
var ErrNoSuchContainer = errors.New("no such container")

// ConfigurationError marks a failure to resolve task inputs. It is always
// raised before any engine process is started.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid task configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvocationError is a failed engine invocation.
type InvocationError struct {
	Operation Operation
	// ExitCode is the process exit status, -1 when it never started.
	ExitCode int
	// Output is the tail of the process's standard error.
	Output string
	Err    error
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("docker %s failed with exit code %d", e.Operation, e.ExitCode)
	if e.ExitCode < 0 && e.Err != nil {
		msg = fmt.Sprintf("docker %s could not be started: %v", e.Operation, e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *InvocationError) Unwrap() error { return e.Err }
