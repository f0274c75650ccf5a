package container

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync/atomic"

	"go.uber.org/zap"
)

// Context is the application context: it owns the registry for the lifetime
// of the process and is passed explicitly to whatever needs to resolve beans.
//
// Lifecycle:
//
//  1. Create:  ctx := container.NewContext(catalog, container.WithLogger(log))
//  2. Init:    err := ctx.Init()   scan, register, build every component
//  3. Resolve: svc, err := container.Resolve[*board.Service](ctx)
//  4. Close:   ctx.Close()         close io.Closer beans, clear tables
type Context struct {
	catalog  *Catalog
	scanner  *Scanner
	registry *Registry
	creator  *Creator
	logger   *zap.Logger

	initialized atomic.Bool
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used by the context and its collaborators.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContext creates an uninitialized context over catalog.
func NewContext(catalog *Catalog, opts ...Option) *Context {
	c := &Context{
		catalog:  catalog,
		registry: NewRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.scanner = NewScanner(c.logger)
	c.creator = NewCreator(c.registry, c.logger)
	return c
}

// Init clears the registry, scans the catalog, registers the result and
// eagerly builds every component. On failure the singletons built so far are
// closed like Close does, the registry is cleared again and the error is
// returned; no partially initialized context is exposed.
func (c *Context) Init() error {
	c.logger.Info("initializing application context")
	c.initialized.Store(false)
	c.registry.Clear()

	res := c.scanner.Scan(c.catalog)
	c.registry.RegisterScanResult(res)

	for _, t := range c.registry.Components() {
		if _, err := c.creator.GetOrCreate(t); err != nil {
			c.logger.Error("application context initialization failed", zap.Error(err))
			if closeErr := c.closeSingletons(); closeErr != nil {
				err = errors.Join(err, closeErr)
			}
			c.registry.Clear()
			return fmt.Errorf("container: init: %w", err)
		}
	}

	c.initialized.Store(true)
	c.logger.Info("application context initialized",
		zap.Int("singletons", c.registry.SingletonCount()),
	)
	return nil
}

// Initialized reports whether Init completed successfully and Close has not
// been called since.
func (c *Context) Initialized() bool { return c.initialized.Load() }

// Get returns the singleton of t, building it on first access.
func (c *Context) Get(t reflect.Type) (any, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}
	return c.creator.GetOrCreate(t)
}

// Bean is a resolved component together with its declaration.
type Bean struct {
	Type        reflect.Type
	Instance    any
	Declaration *Declaration
}

// ComponentsWith returns, in declaration order, every component whose
// declaration carries m.
func (c *Context) ComponentsWith(m *Marker) ([]Bean, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}
	res := c.registry.ScanResult()
	types := res.TypesWith(m)
	beans := make([]Bean, 0, len(types))
	for _, t := range types {
		inst, err := c.creator.GetOrCreate(t)
		if err != nil {
			return nil, err
		}
		decl, _ := res.Declaration(t)
		beans = append(beans, Bean{Type: t, Instance: inst, Declaration: decl})
	}
	return beans, nil
}

// Registry exposes the underlying registry.
func (c *Context) Registry() *Registry { return c.registry }

// Close closes every singleton implementing io.Closer in reverse creation
// order, then clears the registry. Errors are joined.
func (c *Context) Close() error {
	err := c.closeSingletons()
	c.registry.Clear()
	c.initialized.Store(false)
	c.logger.Info("application context closed")
	return err
}

func (c *Context) closeSingletons() error {
	order := c.registry.CreationOrder()
	var errs []error
	for i := len(order) - 1; i >= 0; i-- {
		inst, ok := c.registry.Singleton(order[i])
		if !ok {
			continue
		}
		closer, ok := inst.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			c.logger.Warn("closing bean failed", zap.Stringer("type", order[i]), zap.Error(err))
			errs = append(errs, fmt.Errorf("close %s: %w", order[i], err))
		}
	}
	return errors.Join(errs...)
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// TypeOf returns the reflect.Type of T, including interface types.
//
//	container.TypeOf[board.Repository]()
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Resolve returns the singleton of type T.
//
//	svc, err := container.Resolve[*board.Service](ctx)
func Resolve[T any](c *Context) (T, error) {
	var zero T
	inst, err := c.Get(TypeOf[T]())
	if err != nil {
		return zero, err
	}
	if inst == nil {
		return zero, nil
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%s]: bean is %T", TypeOf[T](), inst)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Intended for bootstrap
// code where a missing bean is a programming error.
func MustResolve[T any](c *Context) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}
