package container

import (
	"fmt"
	"reflect"
)

// Definition is a construction strategy for one type. It is a closed set:
// *ComponentDescriptor or *FactoryDescriptor.
type Definition interface {
	// DefinedType is the type the definition produces.
	DefinedType() reflect.Type
	// Dependencies are the parameter types resolved before invocation, in
	// declared order.
	Dependencies() []reflect.Type

	definition()
}

// ComponentDescriptor builds a type through its constructor.
type ComponentDescriptor struct {
	Type        reflect.Type
	DependsOn   []reflect.Type
	Declaration *Declaration

	constructor reflect.Value
}

func (d *ComponentDescriptor) DefinedType() reflect.Type { return d.Type }

func (d *ComponentDescriptor) Dependencies() []reflect.Type { return d.DependsOn }

func (d *ComponentDescriptor) definition() {}

func (d *ComponentDescriptor) String() string {
	return fmt.Sprintf("component %s%s", d.Type, formatDeps(d.DependsOn))
}

// FactoryDescriptor builds a type by calling a method on a configuration
// component.
type FactoryDescriptor struct {
	Owner     reflect.Type
	Product   reflect.Type
	Method    string
	DependsOn []reflect.Type

	// method is the method expression; In(0) is the receiver.
	method reflect.Value
}

func (d *FactoryDescriptor) DefinedType() reflect.Type { return d.Product }

func (d *FactoryDescriptor) Dependencies() []reflect.Type { return d.DependsOn }

func (d *FactoryDescriptor) definition() {}

func (d *FactoryDescriptor) String() string {
	return fmt.Sprintf("factory %s.%s%s -> %s", d.Owner, d.Method, formatDeps(d.DependsOn), d.Product)
}

func formatDeps(deps []reflect.Type) string {
	s := "("
	for i, t := range deps {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + ")"
}
