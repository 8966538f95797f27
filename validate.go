package digo

import (
	"reflect"
	"sort"
)

// validate walks the dependency graph of every binding and reports the first
// missing dependency or cycle. Keys are visited in name order so the reported
// error does not depend on map iteration.
func validate(bindings map[reflect.Type]*Binding) error {
	checked := make(map[reflect.Type]bool, len(bindings))
	for _, key := range sortedKeys(bindings) {
		if err := checkDependencies(bindings, key, []reflect.Type{key}, checked); err != nil {
			return err
		}
	}
	return nil
}

// checkDependencies visits the dependencies of component depth first.
// visiting is the current path, component last.
func checkDependencies(bindings map[reflect.Type]*Binding, component reflect.Type, visiting []reflect.Type, checked map[reflect.Type]bool) error {
	if checked[component] {
		return nil
	}
	for _, dep := range bindings[component].provider.dependencies() {
		if _, ok := bindings[dep]; !ok {
			return &DependencyNotFoundError{Component: component, Dependency: dep}
		}
		if i := indexOf(visiting, dep); i >= 0 {
			cycle := make([]reflect.Type, len(visiting)-i)
			copy(cycle, visiting[i:])
			return &CyclicDependencyError{Components: cycle}
		}
		if err := checkDependencies(bindings, dep, append(visiting, dep), checked); err != nil {
			return err
		}
	}
	checked[component] = true
	return nil
}

func indexOf(path []reflect.Type, t reflect.Type) int {
	for i, p := range path {
		if p == t {
			return i
		}
	}
	return -1
}

func sortedKeys(bindings map[reflect.Type]*Binding) []reflect.Type {
	keys := make([]reflect.Type, 0, len(bindings))
	for key := range bindings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if a, b := keys[i].String(), keys[j].String(); a != b {
			return a < b
		}
		return keys[i].PkgPath() < keys[j].PkgPath()
	})
	return keys
}
