package mock

import (
	"errors"

	"github.com/centraunit/digo"
)

// Core interfaces
type Component interface {
	ComponentName() string
}

type Dependency interface {
	DependencyName() string
}

type AnotherDependency interface {
	AnotherDependencyName() string
}

// ErrConstruction is returned by FailingComponent's constructor.
var ErrConstruction = errors.New("simulated construction failure")

// ComponentWithDefaultConstructor declares no constructors and is built from its zero value.
type ComponentWithDefaultConstructor struct {
	Name string
}

func (c *ComponentWithDefaultConstructor) ComponentName() string { return "default" }

type ComponentWithInjectConstructor struct {
	dependency Dependency
}

func NewComponentWithInjectConstructor(dependency Dependency) *ComponentWithInjectConstructor {
	return &ComponentWithInjectConstructor{dependency: dependency}
}

func (*ComponentWithInjectConstructor) Constructors() []digo.Constructor {
	return []digo.Constructor{digo.Inject(NewComponentWithInjectConstructor)}
}

func (c *ComponentWithInjectConstructor) ComponentName() string { return "inject" }

func (c *ComponentWithInjectConstructor) Dependency() Dependency { return c.dependency }

type ComponentWithMultiInjectConstructors struct{}

func (*ComponentWithMultiInjectConstructors) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(name string, value float64) *ComponentWithMultiInjectConstructors {
			return &ComponentWithMultiInjectConstructors{}
		}),
		digo.Inject(func(name string) *ComponentWithMultiInjectConstructors {
			return &ComponentWithMultiInjectConstructors{}
		}),
	}
}

func (c *ComponentWithMultiInjectConstructors) ComponentName() string { return "multi" }

type ComponentWithNoInjectConstructorNorDefaultConstructor struct {
	name string
}

func (*ComponentWithNoInjectConstructorNorDefaultConstructor) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Ctor(func(name string) *ComponentWithNoInjectConstructorNorDefaultConstructor {
			return &ComponentWithNoInjectConstructorNorDefaultConstructor{name: name}
		}),
	}
}

func (c *ComponentWithNoInjectConstructorNorDefaultConstructor) ComponentName() string {
	return c.name
}

// ComponentWithDeclaredDefaultConstructor declares an unmarked zero-argument constructor
// next to one that takes arguments.
type ComponentWithDeclaredDefaultConstructor struct {
	Name string
}

func (*ComponentWithDeclaredDefaultConstructor) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Ctor(func(name string) *ComponentWithDeclaredDefaultConstructor {
			return &ComponentWithDeclaredDefaultConstructor{Name: name}
		}),
		digo.Ctor(func() *ComponentWithDeclaredDefaultConstructor {
			return &ComponentWithDeclaredDefaultConstructor{Name: "declared"}
		}),
	}
}

func (c *ComponentWithDeclaredDefaultConstructor) ComponentName() string { return c.Name }

type FailingComponent struct{}

func (*FailingComponent) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(dependency Dependency) (*FailingComponent, error) {
			return nil, ErrConstruction
		}),
	}
}

func (c *FailingComponent) ComponentName() string { return "failing" }

type PanickingComponent struct{}

func (*PanickingComponent) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func() *PanickingComponent {
			panic("simulated constructor panic")
		}),
	}
}

func (c *PanickingComponent) ComponentName() string { return "panicking" }

// ComponentWithBadConstructor declares a constructor that returns the wrong type.
type ComponentWithBadConstructor struct{}

func (*ComponentWithBadConstructor) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func() string { return "not a component" }),
	}
}

func (c *ComponentWithBadConstructor) ComponentName() string { return "bad" }

type DependencyWithInjectConstructor struct {
	dependency string
}

func (*DependencyWithInjectConstructor) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(dependency string) *DependencyWithInjectConstructor {
			return &DependencyWithInjectConstructor{dependency: dependency}
		}),
	}
}

func (d *DependencyWithInjectConstructor) DependencyName() string { return "inject" }

func (d *DependencyWithInjectConstructor) Dependency() string { return d.dependency }

// ValueDependency is bound as a struct value and declares its constructor on the value receiver.
type ValueDependency struct {
	Label string
}

func (ValueDependency) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(label string) ValueDependency {
			return ValueDependency{Label: label}
		}),
	}
}

func (d ValueDependency) DependencyName() string { return d.Label }

type DependencyDependedOnComponent struct {
	component Component
}

func (*DependencyDependedOnComponent) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(component Component) *DependencyDependedOnComponent {
			return &DependencyDependedOnComponent{component: component}
		}),
	}
}

func (d *DependencyDependedOnComponent) DependencyName() string { return "cyclic" }

func (d *DependencyDependedOnComponent) Component() Component { return d.component }

type DependencyDependedOnAnotherDependency struct {
	anotherDependency AnotherDependency
}

func (*DependencyDependedOnAnotherDependency) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(anotherDependency AnotherDependency) *DependencyDependedOnAnotherDependency {
			return &DependencyDependedOnAnotherDependency{anotherDependency: anotherDependency}
		}),
	}
}

func (d *DependencyDependedOnAnotherDependency) DependencyName() string { return "transitive" }
func (d *DependencyDependedOnAnotherDependency) AnotherDependency() AnotherDependency {
	return d.anotherDependency
}

type AnotherDependencyDependedOnComponent struct {
	component Component
}

func (*AnotherDependencyDependedOnComponent) Constructors() []digo.Constructor {
	return []digo.Constructor{
		digo.Inject(func(component Component) *AnotherDependencyDependedOnComponent {
			return &AnotherDependencyDependedOnComponent{component: component}
		}),
	}
}

func (d *AnotherDependencyDependedOnComponent) AnotherDependencyName() string { return "cyclic" }

func (d *AnotherDependencyDependedOnComponent) Component() Component { return d.component }

// SimpleDependency is a plain instance value for instance bindings.
type SimpleDependency struct {
	Name string
}

func (d *SimpleDependency) DependencyName() string { return d.Name }
