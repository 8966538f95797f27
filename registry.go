package digo

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Package digo provides a constructor-injection container.

// Registry accumulates bindings and materializes validated Contexts.
// It is safe for concurrent use.
type Registry struct {
	bindings map[reflect.Type]*Binding
	declared map[reflect.Type][]Constructor
	opts     options
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		bindings: make(map[reflect.Type]*Binding, 32),
		declared: make(map[reflect.Type][]Constructor),
		opts:     newOptions(opts),
	}
}

// BindInstance binds T to a fixed instance. Every resolution of T returns instance.
func BindInstance[T any](r *Registry, instance T) {
	r.store(newInstanceBinding(TypeOf[T](), reflect.ValueOf(&instance).Elem()))
}

// Bind binds T to the implementation type Impl.
// The constructor of Impl is selected now; Impl is only built when T is resolved.
// Returns IllegalComponentError if Impl cannot be constructed unambiguously.
func Bind[T, Impl any](r *Registry) error {
	return r.BindType(TypeOf[T](), TypeOf[Impl]())
}

// Declare registers the constructors of Impl, for implementation types that cannot
// implement Injectable themselves. It affects later Bind calls only.
func Declare[Impl any](r *Registry, ctors ...Constructor) {
	r.Declare(TypeOf[Impl](), ctors...)
}

// Instance binds key to instance. A nil instance binds the zero value of key.
// Returns IllegalComponentError for a nil key and TypeMismatchError if instance is
// not assignable to key.
func (r *Registry) Instance(key reflect.Type, instance any) error {
	if key == nil {
		return &IllegalComponentError{Reason: "nil type"}
	}
	value := reflect.New(key).Elem()
	if instance != nil {
		v := reflect.ValueOf(instance)
		if !v.Type().AssignableTo(key) {
			return &TypeMismatchError{Expected: key.String(), Got: v.Type().String()}
		}
		value.Set(v)
	}
	r.store(newInstanceBinding(key, value))
	return nil
}

// BindType binds key to the implementation type impl.
// See Bind.
func (r *Registry) BindType(key, impl reflect.Type) error {
	ctor, err := r.selectConstructor(key, impl)
	if err != nil {
		r.opts.logger.Warn("illegal component", zap.Error(err))
		return err
	}
	r.store(newConstructorBinding(key, impl, ctor))
	return nil
}

// Declare registers the constructors of impl. See the generic Declare.
func (r *Registry) Declare(impl reflect.Type, ctors ...Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declared[impl] = append([]Constructor(nil), ctors...)
}

// Bindings returns a snapshot of the registered bindings ordered by type name.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.bindings))
	for _, key := range sortedKeys(r.bindings) {
		out = append(out, *r.bindings[key])
	}
	return out
}

// Context validates the dependency graph of every binding and returns an immutable
// view over the bindings present at the time of the call.
// Returns DependencyNotFoundError or CyclicDependencyError if the graph is broken.
func (r *Registry) Context() (*Context, error) {
	r.mu.RLock()
	snapshot := make(map[reflect.Type]*Binding, len(r.bindings))
	for key, b := range r.bindings {
		snapshot[key] = b
	}
	r.mu.RUnlock()

	if err := validate(snapshot); err != nil {
		r.opts.logger.Warn("dependency graph validation failed", zap.Error(err))
		return nil, err
	}

	r.opts.logger.Debug("context materialized", zap.Int("bindings", len(snapshot)))
	return &Context{bindings: snapshot, opts: r.opts}, nil
}

func (r *Registry) selectConstructor(key, impl reflect.Type) (Constructor, error) {
	illegal := func(reason string) error {
		return &IllegalComponentError{Type: key, Implementation: impl, Reason: reason}
	}

	switch {
	case key == nil || impl == nil:
		return Constructor{}, illegal("nil type")
	case impl.Kind() == reflect.Interface:
		return Constructor{}, illegal("implementation must be a concrete type")
	case !impl.AssignableTo(key):
		return Constructor{}, illegal(fmt.Sprintf("%s is not assignable to %s", impl, key))
	}

	r.mu.RLock()
	ctors, ok := r.declared[impl]
	r.mu.RUnlock()
	if !ok {
		ctors = declaredConstructors(impl)
	}

	ctor, reason := chooseConstructor(impl, ctors)
	if reason != "" {
		return Constructor{}, illegal(reason)
	}
	return ctor, nil
}

func (r *Registry) store(b *Binding) {
	r.mu.Lock()
	r.bindings[b.key] = b
	r.mu.Unlock()

	r.opts.logger.Debug("binding registered",
		zap.Stringer("type", b.key),
		zap.Bool("instance", b.IsInstance()),
		zap.Strings("dependencies", typeNames(b.provider.dependencies())),
	)
}
