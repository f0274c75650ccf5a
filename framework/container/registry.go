package container

import (
	"reflect"
	"sync"
)

// Registry is the process-wide table of definitions, realized singletons and
// the set of types currently under construction. It is safe for concurrent
// use.
type Registry struct {
	mu sync.RWMutex

	// type → construction strategy; factories shadow components
	definitions map[reflect.Type]Definition

	// component types in declaration order
	components []reflect.Type

	// type → singleton instance, write-once
	singletons map[reflect.Type]any

	// singleton types in the order they were saved
	order []reflect.Type

	// types whose construction is in progress
	inCreation map[reflect.Type]struct{}

	scan *ScanResult
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.definitions = make(map[reflect.Type]Definition)
	r.components = nil
	r.singletons = make(map[reflect.Type]any)
	r.order = nil
	r.inCreation = make(map[reflect.Type]struct{})
	r.scan = nil
}

// RegisterScanResult replaces all definitions with those of res. Realized
// singletons are kept; call Clear first for a full reinitialization.
func (r *Registry) RegisterScanResult(res *ScanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions = make(map[reflect.Type]Definition, len(res.descriptors)+len(res.factories))
	for t, d := range res.descriptors {
		r.definitions[t] = d
	}
	for t, f := range res.factories {
		r.definitions[t] = f
	}
	r.components = res.Components()
	r.scan = res
}

// SaveSingleton stores instance for t unless one is already stored, and
// returns the instance that is stored afterwards.
func (r *Registry) SaveSingleton(t reflect.Type, instance any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.singletons[t]; ok {
		return existing
	}
	r.singletons[t] = instance
	r.order = append(r.order, t)
	return instance
}

// Singleton returns the stored instance for t.
func (r *Registry) Singleton(t reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.singletons[t]
	return inst, ok
}

// HasDefinition reports whether t has a construction strategy.
func (r *Registry) HasDefinition(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.definitions[t]
	return ok
}

// Definition returns the construction strategy for t.
func (r *Registry) Definition(t reflect.Type) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.definitions[t]
	return d, ok
}

// MarkInCreation atomically marks t as under construction. It fails with a
// CircularDependencyError when t is already marked.
func (r *Registry) MarkInCreation(t reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.inCreation[t]; busy {
		return CircularDependencyError{Type: t}
	}
	r.inCreation[t] = struct{}{}
	return nil
}

// UnmarkInCreation clears the in-construction mark of t.
func (r *Registry) UnmarkInCreation(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inCreation, t)
}

// InCreation reports whether t is under construction.
func (r *Registry) InCreation(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, busy := r.inCreation[t]
	return busy
}

// Components returns the component types of the registered scan, in
// declaration order.
func (r *Registry) Components() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, len(r.components))
	copy(out, r.components)
	return out
}

// Definitions returns every type with a construction strategy.
func (r *Registry) Definitions() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, 0, len(r.definitions))
	for t := range r.definitions {
		out = append(out, t)
	}
	return out
}

// ScanResult returns the registered scan, or nil.
func (r *Registry) ScanResult() *ScanResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scan
}

// SingletonCount returns the number of realized singletons.
func (r *Registry) SingletonCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.singletons)
}

// CreationOrder returns singleton types in the order they were saved.
func (r *Registry) CreationOrder() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Clear resets every table.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}
