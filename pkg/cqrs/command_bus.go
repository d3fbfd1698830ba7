package cqrs

import (
	"context"
	"fmt"
	"reflect"

	"docker-run-task/pkg/log"
)

// DefaultCommandBus dispatches commands synchronously on the caller's goroutine.
type DefaultCommandBus struct {
	*Bus
}

// Assert that *DefaultCommandBus implements CommandBus.
var _ CommandBus = (*DefaultCommandBus)(nil)

// NewCommandBus creates a new DefaultCommandBus.
func NewCommandBus() *DefaultCommandBus {
	return &DefaultCommandBus{
		Bus: NewBus(),
	}
}

// Register registers a command handler for a specific command type.
// The handler must implement CommandHandler[C] where C is a Command type.
func (b *DefaultCommandBus) Register(handler interface{}) error {
	return b.register(handler)
}

// Dispatch sends a command to its appropriate handler.
func (b *DefaultCommandBus) Dispatch(ctx context.Context, cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("cannot dispatch nil command")
	}

	reg, exists := b.handler(cmd.Name())
	if !exists {
		return fmt.Errorf("no handler registered for command %s", cmd.Name())
	}

	// Pointer commands share the name of their value type but cannot be
	// passed to a handler taking the value.
	if got := reflect.TypeOf(cmd); got != reg.cmdType {
		return fmt.Errorf("handler for command %s expects %s, got %s", cmd.Name(), reg.cmdType, got)
	}

	log.Debug("Dispatching command", "command", cmd.Name())

	results := reg.handle.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(cmd)})
	if !results[0].IsNil() {
		return results[0].Interface().(error)
	}
	return nil
}
