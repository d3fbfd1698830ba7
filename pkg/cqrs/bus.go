package cqrs

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	commandType = reflect.TypeOf((*Command)(nil)).Elem()
)

// registration is a bound Handle method and the command type it accepts.
type registration struct {
	handle  reflect.Value
	cmdType reflect.Type
}

// Bus keeps the name -> handler table shared by bus implementations.
type Bus struct {
	handlers map[string]registration
	mutex    sync.RWMutex
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string]registration),
	}
}

// register validates that handler has a `Handle(context.Context, C) error`
// method for some Command type C and stores it under C's name.
func (b *Bus) register(handler interface{}) error {
	handlerType := reflect.TypeOf(handler)
	if handlerType == nil || handlerType.Kind() != reflect.Ptr {
		return fmt.Errorf("handler must be a pointer to a struct, got %T", handler)
	}

	handleMethod, exists := handlerType.MethodByName("Handle")
	if !exists {
		return fmt.Errorf("handler %T does not implement Handle method", handler)
	}

	methodType := handleMethod.Type
	if methodType.NumIn() != 3 { // receiver + ctx + command
		return fmt.Errorf("Handle method of %T must take (context.Context, command)", handler)
	}
	if methodType.In(1) != contextType {
		return fmt.Errorf("first parameter of %T.Handle must be context.Context", handler)
	}
	if methodType.NumOut() != 1 || methodType.Out(0) != errorType {
		return fmt.Errorf("Handle method of %T must return exactly one error", handler)
	}

	cmdType := methodType.In(2)
	if !cmdType.Implements(commandType) {
		return fmt.Errorf("parameter type %s does not implement Command interface", cmdType)
	}
	name := reflect.Zero(cmdType).Interface().(Command).Name()

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, exists := b.handlers[name]; exists {
		return fmt.Errorf("handler for command %s already registered", name)
	}
	b.handlers[name] = registration{
		handle:  reflect.ValueOf(handler).MethodByName("Handle"),
		cmdType: cmdType,
	}
	return nil
}

// handler returns the registration stored for the given name.
func (b *Bus) handler(name string) (registration, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	h, ok := b.handlers[name]
	return h, ok
}
