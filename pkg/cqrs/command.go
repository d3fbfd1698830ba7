// Package cqrs implements the command side of the Command Query Responsibility
// Segregation pattern: commands are routed by name to exactly one handler.
package cqrs

import "context"

// Command represents a command that changes the state of the system.
// Commands are named with verbs in imperative form (e.g., "LoginRegistry").
type Command interface {
	// Name returns the name of the command.
	Name() string
}

// CommandHandler defines the interface for handling commands.
type CommandHandler[C Command] interface {
	// Handle executes the command and returns an error if the command fails.
	Handle(ctx context.Context, cmd C) error
}

// CommandBus is responsible for dispatching commands to their handlers.
type CommandBus interface {
	// Dispatch sends a command to its handler and blocks until the handler returns.
	Dispatch(ctx context.Context, cmd Command) error

	// Register registers a command handler for a specific command type.
	Register(handler interface{}) error
}
