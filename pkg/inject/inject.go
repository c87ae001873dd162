// Package inject provides a small dependency-injection registry for
// components: values and lazily constructed singletons resolved by type,
// with parent-scoped lookup.
package inject

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry resolves dependencies by their Go type. Registries nest: a
// lookup that misses locally continues in the parent, so a subtree of the
// UI can override a binding without affecting siblings.
type Registry struct {
	mu       sync.Mutex
	parent   *Registry
	values   map[reflect.Type]any
	ctors    map[reflect.Type]func(*Registry) (any, error)
	building map[reflect.Type]bool
}

// NewRegistry creates a root registry.
func NewRegistry() *Registry {
	return &Registry{
		values:   make(map[reflect.Type]any),
		ctors:    make(map[reflect.Type]func(*Registry) (any, error)),
		building: make(map[reflect.Type]bool),
	}
}

// Child creates a registry scoped under r.
func (r *Registry) Child() *Registry {
	c := NewRegistry()
	c.parent = r
	return c
}

// ProvideValue binds an existing value.
func ProvideValue[T any](r *Registry, value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[typeOf[T]()] = value
}

// Provide binds a constructor, invoked at most once per registry; the
// result is memoized.
func Provide[T any](r *Registry, ctor func(*Registry) (T, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[typeOf[T]()] = func(reg *Registry) (any, error) {
		return ctor(reg)
	}
}

// Resolve returns the binding for T, walking up through parent scopes.
// Constructors run lazily; a constructor that resolves its own type
// reports a cycle instead of deadlocking.
func Resolve[T any](r *Registry) (T, error) {
	var zero T
	v, err := r.resolve(typeOf[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("inject: binding for %v has unexpected type %T", typeOf[T](), v)
	}
	return typed, nil
}

// MustResolve is Resolve but panics on error, for wiring done at startup.
func MustResolve[T any](r *Registry) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Registry) resolve(t reflect.Type) (any, error) {
	r.mu.Lock()
	if v, ok := r.values[t]; ok {
		r.mu.Unlock()
		return v, nil
	}
	ctor, ok := r.ctors[t]
	if !ok {
		parent := r.parent
		r.mu.Unlock()
		if parent != nil {
			return parent.resolve(t)
		}
		return nil, fmt.Errorf("inject: no binding for %v", t)
	}
	if r.building[t] {
		r.mu.Unlock()
		return nil, fmt.Errorf("inject: dependency cycle resolving %v", t)
	}
	r.building[t] = true
	r.mu.Unlock()

	v, err := ctor(r)

	r.mu.Lock()
	delete(r.building, t)
	if err == nil {
		r.values[t] = v
	}
	r.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("inject: constructing %v: %w", t, err)
	}
	return v, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
