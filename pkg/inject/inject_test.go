package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

func TestProvideValue_Resolve(t *testing.T) {
	r := NewRegistry()
	ProvideValue(r, "configured")

	got, err := Resolve[string](r)
	require.NoError(t, err)
	assert.Equal(t, "configured", got)
}

func TestProvide_ConstructorRunsOnce(t *testing.T) {
	r := NewRegistry()
	calls := 0
	Provide(r, func(*Registry) (*englishGreeter, error) {
		calls++
		return &englishGreeter{}, nil
	})

	a, err := Resolve[*englishGreeter](r)
	require.NoError(t, err)
	b, err := Resolve[*englishGreeter](r)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
}

func TestResolve_InterfaceBinding(t *testing.T) {
	r := NewRegistry()
	Provide(r, func(*Registry) (greeter, error) {
		return englishGreeter{}, nil
	})

	g, err := Resolve[greeter](r)
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())
}

func TestResolve_MissingBinding(t *testing.T) {
	_, err := Resolve[int](NewRegistry())
	assert.ErrorContains(t, err, "no binding")
}

func TestResolve_ParentScope(t *testing.T) {
	root := NewRegistry()
	ProvideValue(root, 42)

	child := root.Child()
	got, err := Resolve[int](child)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestResolve_ChildOverridesParent(t *testing.T) {
	root := NewRegistry()
	ProvideValue(root, "root")

	child := root.Child()
	ProvideValue(child, "child")

	got, err := Resolve[string](child)
	require.NoError(t, err)
	assert.Equal(t, "child", got)

	got, err = Resolve[string](root)
	require.NoError(t, err)
	assert.Equal(t, "root", got)
}

func TestResolve_CycleDetected(t *testing.T) {
	r := NewRegistry()
	Provide(r, func(reg *Registry) (string, error) {
		return Resolve[string](reg)
	})

	_, err := Resolve[string](r)
	assert.ErrorContains(t, err, "cycle")
}

func TestResolve_ConstructorDependsOnOtherBinding(t *testing.T) {
	r := NewRegistry()
	ProvideValue(r, "world")
	Provide(r, func(reg *Registry) (greeter, error) {
		_, err := Resolve[string](reg)
		if err != nil {
			return nil, err
		}
		return englishGreeter{}, nil
	})

	g, err := Resolve[greeter](r)
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestMustResolve_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustResolve[float64](NewRegistry())
	})
}
