package digo

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context is the validated, read-only view produced by Registry.Context.
// It holds a snapshot of the bindings taken at validation time; later changes to the
// registry are not visible. A Context is safe for concurrent use.
type Context struct {
	bindings map[reflect.Type]*Binding
	opts     options
}

var _ Resolver = (*Context)(nil)

// Get returns the component bound to key.
// An unbound key is not an error: Get returns (nil, false, nil).
// Bound components may fail with DependencyNotFoundError, CyclicDependencyError or
// InitializationError while they are constructed.
func (c *Context) Get(key reflect.Type) (any, bool, error) {
	v, ok, err := c.resolve(key, c.newResolution(key))
	if err != nil || !ok {
		return nil, false, err
	}
	return v.Interface(), true, nil
}

// Has reports whether key is bound.
func (c *Context) Has(key reflect.Type) bool {
	_, ok := c.bindings[key]
	return ok
}

// Get is the typed form of Context.Get.
func Get[T any](c *Context) (T, bool, error) {
	var out T
	key := TypeOf[T]()
	v, ok, err := c.resolve(key, c.newResolution(key))
	if err != nil || !ok {
		return out, false, err
	}

	// Providers always yield a value of the key type.
	reflect.ValueOf(&out).Elem().Set(v)
	return out, true, nil
}

// MustGet returns the component bound to T or panics.
// Intended for composition roots and tests where a missing component is fatal.
func MustGet[T any](c *Context) T {
	out, ok, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(fmt.Sprintf("digo: no binding for %s", TypeOf[T]()))
	}
	return out
}

func (c *Context) resolve(key reflect.Type, res *resolution) (reflect.Value, bool, error) {
	b, ok := c.bindings[key]
	if !ok {
		return reflect.Value{}, false, nil
	}
	v, err := b.provider.get(c, res)
	if err != nil {
		return reflect.Value{}, false, err
	}
	return v, true, nil
}

// newResolution starts the call-scoped state of one top-level Get.
// Resolution ids are only generated when debug logging is enabled.
func (c *Context) newResolution(key reflect.Type) *resolution {
	res := &resolution{}
	if c.opts.logger.Core().Enabled(zap.DebugLevel) {
		res.id = uuid.NewString()
		c.opts.logger.Debug("resolving component",
			zap.Stringer("type", key),
			zap.String("resolution", res.id),
		)
	}
	return res
}
