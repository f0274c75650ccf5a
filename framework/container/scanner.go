package container

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// ── ScanResult ────────────────────────────────────────────────────────────────

// ScanResult is the immutable outcome of a scan.
type ScanResult struct {
	components   []reflect.Type
	descriptors  map[reflect.Type]*ComponentDescriptor
	factories    map[reflect.Type]*FactoryDescriptor
	declarations map[reflect.Type]*Declaration
	universe     []*Declaration
}

// Components returns every component type in declaration order.
func (r *ScanResult) Components() []reflect.Type {
	out := make([]reflect.Type, len(r.components))
	copy(out, r.components)
	return out
}

// Component returns the descriptor for a component type.
func (r *ScanResult) Component(t reflect.Type) (*ComponentDescriptor, bool) {
	d, ok := r.descriptors[t]
	return d, ok
}

// Factory returns the factory descriptor producing t.
func (r *ScanResult) Factory(t reflect.Type) (*FactoryDescriptor, bool) {
	d, ok := r.factories[t]
	return d, ok
}

// Factories returns a copy of the product type → factory map.
func (r *ScanResult) Factories() map[reflect.Type]*FactoryDescriptor {
	out := make(map[reflect.Type]*FactoryDescriptor, len(r.factories))
	for k, v := range r.factories {
		out[k] = v
	}
	return out
}

// Declaration returns the declaration of a component type.
func (r *ScanResult) Declaration(t reflect.Type) (*Declaration, bool) {
	d, ok := r.declarations[t]
	return d, ok
}

// TypesWith returns, in declaration order, the component types whose
// declaration carries m directly or through one meta marker.
func (r *ScanResult) TypesWith(m *Marker) []reflect.Type {
	var out []reflect.Type
	for _, t := range r.components {
		if r.declarations[t].Carries(m) {
			out = append(out, t)
		}
	}
	return out
}

// ── Scanner ───────────────────────────────────────────────────────────────────

// Scanner classifies the declarations of a Catalog.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a Scanner. A nil logger discards output.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger.Named("scanner")}
}

// Scan builds a ScanResult from catalog. It never fails: declarations that
// cannot be used are logged and contribute nothing.
func (s *Scanner) Scan(catalog *Catalog) *ScanResult {
	res := &ScanResult{
		descriptors:  make(map[reflect.Type]*ComponentDescriptor),
		factories:    make(map[reflect.Type]*FactoryDescriptor),
		declarations: make(map[reflect.Type]*Declaration),
		universe:     catalog.Declarations(),
	}

	for _, d := range res.universe {
		if !d.Carries(Component) {
			continue
		}
		if d.Err() != nil {
			s.logger.Warn("skipping malformed component declaration", zap.Error(d.Err()))
			continue
		}
		s.addComponent(res, d)
	}

	for _, t := range res.components {
		d := res.declarations[t]
		if !d.Carries(Configuration) {
			continue
		}
		s.addFactories(res, t, d)
	}

	s.logger.Info("scan complete",
		zap.Int("components", len(res.components)),
		zap.Int("factories", len(res.factories)),
	)
	return res
}

func (s *Scanner) addComponent(res *ScanResult, d *Declaration) {
	t := d.Type()
	if _, dup := res.descriptors[t]; dup {
		s.logger.Warn("duplicate component declaration, last one wins", zap.Stringer("type", t))
	} else {
		res.components = append(res.components, t)
	}
	res.descriptors[t] = &ComponentDescriptor{
		Type:        t,
		DependsOn:   inputsOf(d.constructor.Type(), 0),
		Declaration: d,
		constructor: d.constructor,
	}
	res.declarations[t] = d
	s.logger.Debug("found component", zap.Stringer("type", t))
}

func (s *Scanner) addFactories(res *ScanResult, owner reflect.Type, d *Declaration) {
	for _, name := range d.Producers() {
		fd, err := factoryFor(owner, name)
		if err != nil {
			s.logger.Warn("skipping factory method",
				zap.Stringer("configuration", owner),
				zap.String("method", name),
				zap.Error(err),
			)
			continue
		}
		if prev, dup := res.factories[fd.Product]; dup {
			s.logger.Warn("duplicate factory definition, last one wins",
				zap.Stringer("product", fd.Product),
				zap.String("previous", prev.Owner.String()+"."+prev.Method),
				zap.String("current", owner.String()+"."+name),
			)
		}
		res.factories[fd.Product] = fd
	}
}

func factoryFor(owner reflect.Type, name string) (*FactoryDescriptor, error) {
	if owner.Kind() == reflect.Interface {
		return nil, fmt.Errorf("configuration %s is an interface", owner)
	}
	m, ok := owner.MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%s has no exported method %s", owner, name)
	}
	mt := m.Type
	if mt.IsVariadic() {
		return nil, fmt.Errorf("method %s is variadic", name)
	}
	product, err := resultOf(mt)
	if err != nil {
		return nil, err
	}
	return &FactoryDescriptor{
		Owner:     owner,
		Product:   product,
		Method:    name,
		DependsOn: inputsOf(mt, 1),
		method:    m.Func,
	}, nil
}
