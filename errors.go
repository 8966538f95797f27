package digo

import (
	"fmt"
	"reflect"
	"strings"
)

// IllegalComponentError is returned at bind time when an implementation has no
// unambiguous way to be constructed.
type IllegalComponentError struct {
	Type           reflect.Type
	Implementation reflect.Type
	Reason         string
}

func (e *IllegalComponentError) Error() string {
	return fmt.Sprintf("illegal component %s for type %s: %s", typeName(e.Implementation), typeName(e.Type), e.Reason)
}

// DependencyNotFoundError represents a dependency with no binding.
// Component is the type whose constructor requires Dependency.
type DependencyNotFoundError struct {
	Component  reflect.Type
	Dependency reflect.Type
}

func (e *DependencyNotFoundError) Error() string {
	return fmt.Sprintf("dependency %s not found for component %s", typeName(e.Dependency), typeName(e.Component))
}

// CyclicDependencyError represents a dependency cycle.
// Components holds every type on the cycle, in path order.
type CyclicDependencyError struct {
	Components []reflect.Type
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency detected: %s", strings.Join(typeNames(e.Components), " -> "))
}

// Contains reports whether t is part of the cycle.
func (e *CyclicDependencyError) Contains(t reflect.Type) bool {
	for _, c := range e.Components {
		if c == t {
			return true
		}
	}
	return false
}

// InitializationError represents a failure raised by a component's own constructor.
// It is never used for container misconfiguration.
type InitializationError struct {
	Type reflect.Type
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed for type %s: %v", typeName(e.Type), e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// TypeMismatchError represents a type assertion failure.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return names
}
