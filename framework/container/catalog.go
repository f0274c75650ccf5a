package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Catalog ───────────────────────────────────────────────────────────────────

// Catalog is the closed universe of declarations a Scanner inspects.
// Service providers fill it during their Register phase.
//
//	catalog := container.NewCatalog()
//	catalog.Declare(board.NewService, container.Service)
//	catalog.Declare(board.NewController, container.Controller).
//	    Get("/boards", "ReadBoards").
//	    Get("/boards/{id}", "ReadBoard")
type Catalog struct {
	mu    sync.RWMutex
	decls []*Declaration
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Declare registers a constructor function. The constructor must be a func
// returning T or (T, error); its parameter types are the component's
// dependencies and T is the type it is registered under.
//
// A malformed constructor is not rejected here. The scanner logs it and
// records no descriptor for it.
func (c *Catalog) Declare(constructor any, markers ...*Marker) *Declaration {
	d := &Declaration{
		constructor: reflect.ValueOf(constructor),
		markers:     markers,
	}
	d.typ, d.err = productOf(d.constructor)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.decls = append(c.decls, d)
	return d
}

// Supply registers an already-built value as a dependency-free component.
//
//	catalog.Supply(cfg) // *config.Config becomes injectable
func (c *Catalog) Supply(value any, markers ...*Marker) *Declaration {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return c.Declare(nil, markers...)
	}
	fnType := reflect.FuncOf(nil, []reflect.Type{v.Type()}, false)
	fn := reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{v}
	})
	return c.Declare(fn.Interface(), markers...)
}

// Declarations returns a snapshot of every declaration in registration order.
func (c *Catalog) Declarations() []*Declaration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Declaration, len(c.decls))
	copy(out, c.decls)
	return out
}

// Len returns the number of declarations.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.decls)
}

// ── Declaration ───────────────────────────────────────────────────────────────

// Mapping binds an HTTP verb and path pattern to a method name on a
// controller.
type Mapping struct {
	Verb   string
	Path   string
	Method string
}

func (m Mapping) String() string {
	return m.Verb + " " + m.Path + " -> " + m.Method
}

// Declaration is one entry of a Catalog: a constructor, its markers, the
// factory methods it produces and the HTTP mappings of its methods.
type Declaration struct {
	constructor reflect.Value
	typ         reflect.Type
	err         error
	markers     []*Marker
	producers   []string
	mappings    []Mapping
}

// Produces names methods of a configuration that produce beans. Each method's
// return type becomes a product, its parameters become dependencies.
func (d *Declaration) Produces(methods ...string) *Declaration {
	d.producers = append(d.producers, methods...)
	return d
}

// Handle maps an HTTP verb and pattern to the named method.
func (d *Declaration) Handle(verb, path, method string) *Declaration {
	d.mappings = append(d.mappings, Mapping{Verb: verb, Path: path, Method: method})
	return d
}

// Get maps GET path to method. Laravel: Route::get('/boards', [BoardController::class, 'index'])
func (d *Declaration) Get(path, method string) *Declaration {
	return d.Handle("GET", path, method)
}

// Post maps POST path to method. Laravel: Route::post(...)
func (d *Declaration) Post(path, method string) *Declaration {
	return d.Handle("POST", path, method)
}

// Put maps PUT path to method. Laravel: Route::put(...)
func (d *Declaration) Put(path, method string) *Declaration {
	return d.Handle("PUT", path, method)
}

// Delete maps DELETE path to method. Laravel: Route::delete(...)
func (d *Declaration) Delete(path, method string) *Declaration {
	return d.Handle("DELETE", path, method)
}

// Type returns the type the declaration constructs, or nil when malformed.
func (d *Declaration) Type() reflect.Type { return d.typ }

// Err returns why the declaration is malformed, if it is.
func (d *Declaration) Err() error { return d.err }

// Markers returns the markers attached directly to the declaration.
func (d *Declaration) Markers() []*Marker { return d.markers }

// Producers returns the declared factory method names.
func (d *Declaration) Producers() []string { return d.producers }

// Mappings returns the declared HTTP mappings in declaration order.
func (d *Declaration) Mappings() []Mapping { return d.mappings }

// Carries reports whether any of the declaration's markers is m or carries m.
func (d *Declaration) Carries(m *Marker) bool {
	for _, own := range d.markers {
		if own.Carries(m) {
			return true
		}
	}
	return false
}

// ── Signature helpers ─────────────────────────────────────────────────────────

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// productOf validates a constructor and returns the type it produces.
func productOf(fn reflect.Value) (reflect.Type, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor must be a func, got %s", kindOf(fn))
	}
	if fn.IsNil() {
		return nil, fmt.Errorf("constructor is a nil func")
	}
	t := fn.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("constructor %s is variadic", t)
	}
	return resultOf(t)
}

// resultOf checks that t returns T or (T, error) and returns T.
func resultOf(t reflect.Type) (reflect.Type, error) {
	switch t.NumOut() {
	case 1:
		if t.Out(0) == errorType {
			return nil, fmt.Errorf("%s returns only an error", t)
		}
		return t.Out(0), nil
	case 2:
		if t.Out(1) != errorType {
			return nil, fmt.Errorf("%s: second result must be error", t)
		}
		return t.Out(0), nil
	default:
		return nil, fmt.Errorf("%s must return T or (T, error)", t)
	}
}

// inputsOf returns the parameter types of t after the first skip inputs
// (1 for method expressions, whose first input is the receiver).
func inputsOf(t reflect.Type, skip int) []reflect.Type {
	deps := make([]reflect.Type, 0, t.NumIn()-skip)
	for i := skip; i < t.NumIn(); i++ {
		deps = append(deps, t.In(i))
	}
	return deps
}

func kindOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Kind().String()
}
