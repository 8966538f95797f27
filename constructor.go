package digo

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Constructor describes one function able to build an implementation type.
// Its parameter types, in declared order, are the dependencies of the component.
type Constructor struct {
	fn         reflect.Value
	injectable bool
	// implicit marks the zero-value constructor of a type that declares none.
	implicit reflect.Type
}

// Inject marks fn as the injection point of an implementation.
//
//	func (*Service) Constructors() []digo.Constructor {
//	    return []digo.Constructor{digo.Inject(NewService)}
//	}
func Inject(fn any) Constructor {
	return Constructor{fn: reflect.ValueOf(fn), injectable: true}
}

// Ctor declares fn as an unmarked constructor. Only a zero-argument Ctor is ever
// selected, and only when no constructor is marked with Inject.
func Ctor(fn any) Constructor {
	return Constructor{fn: reflect.ValueOf(fn)}
}

// IsInjectable reports whether the constructor was declared with Inject.
func (c Constructor) IsInjectable() bool {
	return c.injectable
}

// Params returns the parameter types of the constructor in declared order.
func (c Constructor) Params() []reflect.Type {
	if c.implicit != nil || !c.fn.IsValid() || c.fn.Kind() != reflect.Func {
		return nil
	}
	t := c.fn.Type()
	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}
	return params
}

func (c Constructor) String() string {
	if c.implicit != nil {
		return "zero value of " + c.implicit.String()
	}
	if !c.fn.IsValid() {
		return "<nil>"
	}
	return c.fn.Type().String()
}

// check reports why c cannot build impl, or "" when it can.
func (c Constructor) check(impl reflect.Type) string {
	if c.implicit != nil {
		return ""
	}
	if !c.fn.IsValid() || c.fn.Kind() != reflect.Func || c.fn.IsNil() {
		return fmt.Sprintf("constructor %s is not a function", c)
	}
	t := c.fn.Type()
	if t.IsVariadic() {
		return fmt.Sprintf("constructor %s is variadic", t)
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return fmt.Sprintf("constructor %s: second result must be error", t)
		}
	default:
		return fmt.Sprintf("constructor %s must return the implementation and an optional error", t)
	}
	if !t.Out(0).AssignableTo(impl) {
		return fmt.Sprintf("constructor %s does not return %s", t, impl)
	}
	return ""
}

// call invokes the constructor. Errors returned by the constructor and panics raised
// inside it are both reported as err.
func (c Constructor) call(args []reflect.Value) (out reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("constructor %s panicked: %v", c, r)
		}
	}()

	if c.implicit != nil {
		return zeroValue(c.implicit), nil
	}

	results := c.fn.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return reflect.Value{}, results[1].Interface().(error)
	}
	return results[0], nil
}

// hasZeroValue reports whether impl can be built without a declared constructor.
func hasZeroValue(impl reflect.Type) bool {
	switch impl.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return impl.Elem().Kind() == reflect.Struct
	}
	return false
}

// zeroValue allocates a fresh zero value of impl.
func zeroValue(impl reflect.Type) reflect.Value {
	if impl.Kind() == reflect.Pointer {
		return reflect.New(impl.Elem())
	}
	return reflect.New(impl).Elem()
}

// declaredConstructors returns the constructors impl declares through Injectable.
func declaredConstructors(impl reflect.Type) []Constructor {
	if impl.Kind() == reflect.Pointer {
		if impl.Implements(injectableType) {
			return reflect.New(impl.Elem()).Interface().(Injectable).Constructors()
		}
		return nil
	}
	ptr := reflect.New(impl)
	if impl.Implements(injectableType) {
		return ptr.Elem().Interface().(Injectable).Constructors()
	}
	if ptr.Type().Implements(injectableType) {
		return ptr.Interface().(Injectable).Constructors()
	}
	return nil
}

// chooseConstructor applies the selection policy to the constructors declared by impl:
// a single Inject constructor wins; without one, the zero-argument constructor is used.
func chooseConstructor(impl reflect.Type, ctors []Constructor) (Constructor, string) {
	if len(ctors) == 0 {
		if hasZeroValue(impl) {
			return Constructor{implicit: impl}, ""
		}
		return Constructor{}, "no injectable or zero-argument constructor"
	}

	for _, ctor := range ctors {
		if reason := ctor.check(impl); reason != "" {
			return Constructor{}, reason
		}
	}

	var injectable, zeroArg []Constructor
	for _, ctor := range ctors {
		if ctor.injectable {
			injectable = append(injectable, ctor)
		} else if ctor.fn.Type().NumIn() == 0 {
			zeroArg = append(zeroArg, ctor)
		}
	}

	switch {
	case len(injectable) > 1:
		return Constructor{}, fmt.Sprintf("%d constructors marked injectable", len(injectable))
	case len(injectable) == 1:
		return injectable[0], ""
	case len(zeroArg) > 1:
		return Constructor{}, fmt.Sprintf("%d zero-argument constructors", len(zeroArg))
	case len(zeroArg) == 1:
		return zeroArg[0], ""
	}
	return Constructor{}, "no injectable or zero-argument constructor"
}
