package digo

import (
	"reflect"

	"go.uber.org/zap"
)

// resolution is the call-scoped state of one top-level Get.
// path holds the components currently under construction, outermost first.
type resolution struct {
	id   string
	path []reflect.Type
}

// enter pushes key onto the path, failing when key is already being constructed.
func (r *resolution) enter(key reflect.Type) error {
	for i, t := range r.path {
		if t == key {
			cycle := make([]reflect.Type, len(r.path)-i)
			copy(cycle, r.path[i:])
			return &CyclicDependencyError{Components: cycle}
		}
	}
	r.path = append(r.path, key)
	return nil
}

func (r *resolution) leave() {
	r.path = r.path[:len(r.path)-1]
}

// instanceProvider always returns the bound value.
type instanceProvider struct {
	value reflect.Value
}

func (p instanceProvider) get(*Context, *resolution) (reflect.Value, error) {
	return p.value, nil
}

func (p instanceProvider) dependencies() []reflect.Type {
	return nil
}

// constructorProvider builds a new instance of its component on every call.
type constructorProvider struct {
	key         reflect.Type
	impl        reflect.Type
	constructor Constructor
	deps        []reflect.Type
}

func (p *constructorProvider) get(c *Context, res *resolution) (reflect.Value, error) {
	if c.opts.runtimeCycleCheck {
		if err := res.enter(p.key); err != nil {
			return reflect.Value{}, err
		}
		defer res.leave()
	}

	args := make([]reflect.Value, len(p.deps))
	for i, dep := range p.deps {
		arg, ok, err := c.resolve(dep, res)
		if err != nil {
			return reflect.Value{}, err
		}
		if !ok {
			return reflect.Value{}, &DependencyNotFoundError{Component: p.key, Dependency: dep}
		}
		args[i] = arg
	}

	out, err := p.constructor.call(args)
	if err != nil {
		c.opts.logger.Warn("component construction failed",
			zap.Stringer("type", p.key),
			zap.String("resolution", res.id),
			zap.Error(err),
		)
		return reflect.Value{}, &InitializationError{Type: p.key, Err: err}
	}

	c.opts.logger.Debug("component constructed",
		zap.Stringer("type", p.key),
		zap.Stringer("constructor", p.constructor),
		zap.String("resolution", res.id),
	)

	// An unnamed result is only assignable to impl, not necessarily to key.
	if out.Type() != p.impl {
		out = out.Convert(p.impl)
	}
	if out.Type() == p.key {
		return out, nil
	}
	boxed := reflect.New(p.key).Elem()
	boxed.Set(out)
	return boxed, nil
}

func (p *constructorProvider) dependencies() []reflect.Type {
	return p.deps
}
