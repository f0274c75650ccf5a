package container

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Creator resolves types to singleton instances, building missing ones from
// the registry's definitions.
//
// Construction is serialized: the first goroutine to miss the singleton cache
// builds the whole subgraph while others wait, so every type is built at most
// once and the in-creation marks only ever belong to one resolution chain.
// Constructors must therefore not call back into the Creator.
type Creator struct {
	registry *Registry
	logger   *zap.Logger

	mu sync.Mutex
}

// NewCreator creates a Creator over registry. A nil logger discards output.
func NewCreator(registry *Registry, logger *zap.Logger) *Creator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Creator{registry: registry, logger: logger.Named("creator")}
}

// GetOrCreate returns the singleton of t, constructing it and its
// dependencies depth-first when it does not exist yet.
//
// Errors match ErrDefinitionNotFound, ErrCircularDependency or
// ErrConstructionFailed; no instance is returned alongside an error.
func (c *Creator) GetOrCreate(t reflect.Type) (any, error) {
	if inst, ok := c.registry.Singleton(t); ok {
		return inst, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getOrCreate(t, nil)
}

// getOrCreate must be called with c.mu held. chain is the resolution path
// leading to t, used for cycle reports.
func (c *Creator) getOrCreate(t reflect.Type, chain []reflect.Type) (any, error) {
	if inst, ok := c.registry.Singleton(t); ok {
		return inst, nil
	}
	def, ok := c.registry.Definition(t)
	if !ok {
		return nil, DefinitionNotFoundError{Type: t}
	}

	chain = append(chain, t)
	if err := c.registry.MarkInCreation(t); err != nil {
		var cycle CircularDependencyError
		if errors.As(err, &cycle) {
			cycle.Chain = append([]reflect.Type(nil), chain...)
			return nil, cycle
		}
		return nil, err
	}
	defer c.registry.UnmarkInCreation(t)

	c.logger.Debug("creating bean", zap.Stringer("type", t))

	var (
		inst any
		err  error
	)
	switch d := def.(type) {
	case *FactoryDescriptor:
		inst, err = c.createFromFactory(d, chain)
	case *ComponentDescriptor:
		inst, err = c.createFromConstructor(d, chain)
	default:
		err = ConstructionError{Type: t, Cause: fmt.Errorf("unknown definition %T", def)}
	}
	if err != nil {
		return nil, err
	}

	inst = c.registry.SaveSingleton(t, inst)
	c.logger.Info("created bean", zap.Stringer("type", t))
	return inst, nil
}

func (c *Creator) createFromFactory(d *FactoryDescriptor, chain []reflect.Type) (any, error) {
	owner, err := c.getOrCreate(d.Owner, chain)
	if err != nil {
		return nil, err
	}
	args, err := c.resolveAll(d.DependsOn, chain)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("invoking factory method",
		zap.Stringer("configuration", d.Owner),
		zap.String("method", d.Method),
	)
	in := append([]reflect.Value{reflect.ValueOf(owner)}, args...)
	return call(d.Product, d.method, in)
}

func (c *Creator) createFromConstructor(d *ComponentDescriptor, chain []reflect.Type) (any, error) {
	args, err := c.resolveAll(d.DependsOn, chain)
	if err != nil {
		return nil, err
	}
	return call(d.Type, d.constructor, args)
}

// resolveAll resolves deps in order and returns them as call arguments.
func (c *Creator) resolveAll(deps []reflect.Type, chain []reflect.Type) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(deps))
	for i, dep := range deps {
		inst, err := c.getOrCreate(dep, chain)
		if err != nil {
			return nil, err
		}
		args[i] = valueOf(inst, dep)
	}
	return args, nil
}

// call invokes fn, turning an error result or a panic into a ConstructionError.
func call(t reflect.Type, fn reflect.Value, args []reflect.Value) (inst any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ConstructionError{Type: t, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	out := fn.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, ConstructionError{Type: t, Cause: out[1].Interface().(error)}
	}
	return out[0].Interface(), nil
}

// valueOf converts a stored instance back into a call argument of type t.
// A nil interface or pointer instance becomes the zero value of t.
func valueOf(inst any, t reflect.Type) reflect.Value {
	if inst == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(inst)
}
