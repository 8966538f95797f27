package digo_test

import (
	"errors"
	"testing"

	"github.com/centraunit/digo"
	"github.com/centraunit/digo/mock"
	"github.com/stretchr/testify/suite"
)

type EdgeCaseTestSuite struct {
	suite.Suite
	registry *digo.Registry
}

func (s *EdgeCaseTestSuite) SetupTest() {
	s.registry = digo.NewRegistry()
}

func (s *EdgeCaseTestSuite) TestRegistryEdgeCases() {
	s.Run("RebindOverwrites", func() {
		first := &mock.SimpleDependency{Name: "first"}
		second := &mock.SimpleDependency{Name: "second"}
		digo.BindInstance[mock.Dependency](s.registry, first)
		digo.BindInstance[mock.Dependency](s.registry, second)

		ctx, err := s.registry.Context()
		s.Require().NoError(err)
		s.Same(second, digo.MustGet[mock.Dependency](ctx))
		s.Len(s.registry.Bindings(), 1)
	})

	s.Run("InstanceReplacesImplementation", func() {
		registry := digo.NewRegistry()
		s.NoError(digo.Bind[mock.Component, *mock.ComponentWithInjectConstructor](registry))
		instance := &mock.ComponentWithDefaultConstructor{Name: "instance"}
		digo.BindInstance[mock.Component](registry, instance)

		ctx, err := registry.Context()
		s.Require().NoError(err, "the replaced binding's dependencies are no longer required")
		s.Same(instance, digo.MustGet[mock.Component](ctx))
	})

	s.Run("NilInstance", func() {
		registry := digo.NewRegistry()
		digo.BindInstance[mock.Dependency](registry, nil)

		ctx, err := registry.Context()
		s.Require().NoError(err)
		dependency, ok, err := digo.Get[mock.Dependency](ctx)
		s.NoError(err)
		s.True(ok)
		s.Nil(dependency)
	})

	s.Run("UntypedInstanceMismatch", func() {
		registry := digo.NewRegistry()
		err := registry.Instance(digo.TypeOf[mock.Component](), "not a component")
		var mismatchErr *digo.TypeMismatchError
		s.True(errors.As(err, &mismatchErr))
		s.Empty(registry.Bindings())
	})

	s.Run("UntypedInstanceNilKey", func() {
		registry := digo.NewRegistry()
		var illegalErr *digo.IllegalComponentError
		s.NotPanics(func() {
			err := registry.Instance(nil, "orphan")
			s.True(errors.As(err, &illegalErr))
		})
		s.Empty(registry.Bindings())
	})

	s.Run("UntypedBinding", func() {
		registry := digo.NewRegistry()
		dependency := &mock.SimpleDependency{Name: "untyped"}
		s.NoError(registry.Instance(digo.TypeOf[mock.Dependency](), dependency))
		s.NoError(registry.BindType(digo.TypeOf[mock.Component](), digo.TypeOf[*mock.ComponentWithInjectConstructor]()))

		ctx, err := registry.Context()
		s.Require().NoError(err)
		component, ok, err := ctx.Get(digo.TypeOf[mock.Component]())
		s.NoError(err)
		s.True(ok)
		s.Same(dependency, component.(*mock.ComponentWithInjectConstructor).Dependency())
	})

	s.Run("BindingsIntrospection", func() {
		registry := digo.NewRegistry()
		s.NoError(digo.Bind[mock.Component, *mock.ComponentWithInjectConstructor](registry))
		digo.BindInstance[mock.Dependency](registry, &mock.SimpleDependency{})

		bindings := registry.Bindings()
		s.Require().Len(bindings, 2)

		component, dependency := bindings[0], bindings[1]
		s.Equal(digo.TypeOf[mock.Component](), component.Type())
		s.False(component.IsInstance())
		s.Equal(digo.TypeOf[*mock.ComponentWithInjectConstructor](), component.Implementation())
		s.True(component.Constructor().IsInjectable())
		s.Equal(digo.TypeOf[mock.Dependency](), component.Dependencies()[0])

		s.Equal(digo.TypeOf[mock.Dependency](), dependency.Type())
		s.True(dependency.IsInstance())
		s.Nil(dependency.Implementation())
		s.Empty(dependency.Dependencies())
	})
}

func (s *EdgeCaseTestSuite) TestContextEdgeCases() {
	s.Run("SnapshotIgnoresLaterBindings", func() {
		digo.BindInstance[mock.Dependency](s.registry, &mock.SimpleDependency{Name: "early"})
		ctx, err := s.registry.Context()
		s.Require().NoError(err)

		s.NoError(digo.Bind[mock.Component, *mock.ComponentWithInjectConstructor](s.registry))
		s.False(ctx.Has(digo.TypeOf[mock.Component]()))

		later, err := s.registry.Context()
		s.Require().NoError(err)
		s.True(later.Has(digo.TypeOf[mock.Component]()))
	})

	s.Run("SnapshotSurvivesBrokenRegistry", func() {
		registry := digo.NewRegistry()
		dependency := &mock.SimpleDependency{Name: "stable"}
		digo.BindInstance[mock.Dependency](registry, dependency)
		ctx, err := registry.Context()
		s.Require().NoError(err)

		s.NoError(digo.Bind[mock.Dependency, *mock.DependencyWithInjectConstructor](registry))
		_, err = registry.Context()
		s.Error(err)

		s.Same(dependency, digo.MustGet[mock.Dependency](ctx))
	})

	s.Run("ContextsAreInterchangeable", func() {
		registry := digo.NewRegistry()
		instance := &mock.ComponentWithDefaultConstructor{}
		digo.BindInstance[mock.Component](registry, instance)

		first, err := registry.Context()
		s.Require().NoError(err)
		second, err := registry.Context()
		s.Require().NoError(err)
		s.Same(digo.MustGet[mock.Component](first), digo.MustGet[mock.Component](second))
	})
}

func (s *EdgeCaseTestSuite) TestResolutionEdgeCases() {
	s.Run("NoSubtypeLookup", func() {
		registry := digo.NewRegistry()
		s.NoError(digo.Bind[*mock.ComponentWithDefaultConstructor, *mock.ComponentWithDefaultConstructor](registry))
		ctx, err := registry.Context()
		s.Require().NoError(err)

		_, ok, err := digo.Get[mock.Component](ctx)
		s.NoError(err)
		s.False(ok, "a concrete binding does not satisfy its interface")

		concrete, ok, err := digo.Get[*mock.ComponentWithDefaultConstructor](ctx)
		s.NoError(err)
		s.True(ok)
		s.NotNil(concrete)
	})

	s.Run("UntypedGetOfUnboundType", func() {
		ctx, err := digo.NewRegistry().Context()
		s.Require().NoError(err)
		instance, ok, err := ctx.Get(digo.TypeOf[mock.Component]())
		s.NoError(err)
		s.False(ok)
		s.Nil(instance)
	})

	s.Run("MustGetPanicsWhenUnbound", func() {
		ctx, err := digo.NewRegistry().Context()
		s.Require().NoError(err)
		s.Panics(func() { digo.MustGet[mock.Component](ctx) })
	})

	s.Run("MustGetPanicsOnConstructionFailure", func() {
		registry := digo.NewRegistry()
		s.NoError(digo.Bind[mock.Component, *mock.PanickingComponent](registry))
		ctx, err := registry.Context()
		s.Require().NoError(err)
		s.Panics(func() { digo.MustGet[mock.Component](ctx) })
	})
}

func TestEdgeCaseTestSuite(t *testing.T) {
	suite.Run(t, new(EdgeCaseTestSuite))
}
