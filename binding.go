package digo

import "reflect"

// Binding describes how the container produces a component of one type key.
// It is either a fixed instance or an implementation type plus the constructor
// selected for it at bind time.
type Binding struct {
	key            reflect.Type
	implementation reflect.Type
	constructor    Constructor
	provider       provider
}

// Type returns the key the binding is registered under.
func (b Binding) Type() reflect.Type { return b.key }

// Implementation returns the implementation type, or nil for an instance binding.
func (b Binding) Implementation() reflect.Type { return b.implementation }

// IsInstance reports whether the binding holds a fixed instance.
func (b Binding) IsInstance() bool { return b.implementation == nil }

// Constructor returns the constructor selected for an implementation binding.
func (b Binding) Constructor() Constructor { return b.constructor }

// Dependencies returns the ordered parameter types of the selected constructor.
func (b Binding) Dependencies() []reflect.Type {
	deps := b.provider.dependencies()
	out := make([]reflect.Type, len(deps))
	copy(out, deps)
	return out
}

func newInstanceBinding(key reflect.Type, value reflect.Value) *Binding {
	return &Binding{
		key:      key,
		provider: instanceProvider{value: value},
	}
}

func newConstructorBinding(key, impl reflect.Type, ctor Constructor) *Binding {
	return &Binding{
		key:            key,
		implementation: impl,
		constructor:    ctor,
		provider: &constructorProvider{
			key:         key,
			impl:        impl,
			constructor: ctor,
			deps:        ctor.Params(),
		},
	}
}
