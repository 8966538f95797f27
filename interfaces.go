package digo

import "reflect"

// Injectable is implemented by component types that declare their own constructors.
// Constructors is called on the zero value of the implementation type, so it must not
// read receiver state.
type Injectable interface {
	// Constructors lists the functions able to build the implementation.
	// At most one of them may be marked with Inject.
	Constructors() []Constructor
}

// Resolver looks up components by type key.
// *Context is the only implementation shipped with the package.
type Resolver interface {
	// Get returns the component bound to key.
	// ok is false when nothing was bound for key.
	Get(key reflect.Type) (instance any, ok bool, err error)
}

// provider produces one instance of a bound component.
type provider interface {
	get(c *Context, res *resolution) (reflect.Value, error)
	dependencies() []reflect.Type
}

var (
	injectableType = reflect.TypeOf((*Injectable)(nil)).Elem()
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
)

// TypeOf returns the type key for T. Interface types are preserved.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
