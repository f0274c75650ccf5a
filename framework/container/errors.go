package container

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Sentinel errors. Container failures are returned as the typed errors below,
// which match these through errors.Is.
var (
	ErrDefinitionNotFound = errors.New("no bean definition found")
	ErrCircularDependency = errors.New("circular dependency detected")
	ErrConstructionFailed = errors.New("bean construction failed")
	ErrNotInitialized     = errors.New("context not initialized")
)

var (
	_ error = DefinitionNotFoundError{}
	_ error = CircularDependencyError{}
	_ error = ConstructionError{}
)

// DefinitionNotFoundError reports a type with no construction strategy.
type DefinitionNotFoundError struct {
	Type reflect.Type
}

func (e DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("%v for type %s", ErrDefinitionNotFound, e.Type)
}

func (e DefinitionNotFoundError) Is(target error) bool { return target == ErrDefinitionNotFound }

// CircularDependencyError reports a type re-entered while under construction.
// Chain lists the resolution path ending with the re-entered type, when known.
type CircularDependencyError struct {
	Type  reflect.Type
	Chain []reflect.Type
}

func (e CircularDependencyError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("%v for type %s", ErrCircularDependency, e.Type)
	}
	parts := make([]string, len(e.Chain))
	for i, t := range e.Chain {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%v for type %s: %s", ErrCircularDependency, e.Type, strings.Join(parts, " -> "))
}

func (e CircularDependencyError) Is(target error) bool { return target == ErrCircularDependency }

// ConstructionError reports a constructor or factory method that returned an
// error or panicked.
type ConstructionError struct {
	Type  reflect.Type
	Cause error
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("%v for type %s: %v", ErrConstructionFailed, e.Type, e.Cause)
}

func (e ConstructionError) Is(target error) bool { return target == ErrConstructionFailed }

func (e ConstructionError) Unwrap() error { return e.Cause }
