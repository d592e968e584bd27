// pkg/resolver/resolver_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test dependency ordering, determinism, and cycle reporting

package resolver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/resolver"
	"github.com/arthur-debert/tint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

func assertDependenciesFirst(t *testing.T, graph map[string][]string, order []string) {
	t.Helper()
	require.Len(t, order, len(graph))
	for name, deps := range graph {
		pos := indexOf(order, name)
		require.GreaterOrEqual(t, pos, 0, "%s missing from order", name)
		for _, dep := range deps {
			assert.Less(t, indexOf(order, dep), pos, "%s must come before %s", dep, name)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		graph map[string][]string
		want  []string
	}{
		{
			name:  "single colorscheme",
			graph: map[string][]string{"default": nil},
			want:  []string{"default"},
		},
		{
			name: "independent colorschemes sort by name",
			graph: map[string][]string{
				"solarized": {},
				"default":   {},
				"nord":      nil,
			},
			want: []string{"default", "nord", "solarized"},
		},
		{
			name: "chain",
			graph: map[string][]string{
				"c": {"b"},
				"b": {"a"},
				"a": {},
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "dependency with later name comes first",
			graph: map[string][]string{
				"alpha": {"zulu"},
				"zulu":  {},
			},
			want: []string{"zulu", "alpha"},
		},
		{
			name: "diamond",
			graph: map[string][]string{
				"top":     {"left", "right"},
				"left":    {"default"},
				"right":   {"default"},
				"default": {},
			},
			want: []string{"default", "left", "right", "top"},
		},
		{
			name: "duplicate inherit entries count once",
			graph: map[string][]string{
				"dark":    {"default", "default"},
				"default": {},
			},
			want: []string{"default", "dark"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := resolver.Resolve(tt.graph)
			require.NoError(t, err)
			assert.Equal(t, tt.want, order)
			assertDependenciesFirst(t, tt.graph, order)
		})
	}
}

func TestResolve_EmptyGraph(t *testing.T) {
	order, err := resolver.Resolve(map[string][]string{})
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestResolve_RandomAcyclicGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		size := 1 + rng.Intn(20)
		names := make([]string, size)
		for i := range names {
			names[i] = fmt.Sprintf("scheme-%02d", rng.Intn(1000))
		}

		// Edges only point at earlier first occurrences, so the graph is acyclic.
		graph := make(map[string][]string)
		for i, name := range names {
			if _, exists := graph[name]; exists {
				continue
			}
			var deps []string
			for j := 0; j < i; j++ {
				if names[j] != name && rng.Intn(3) == 0 {
					deps = append(deps, names[j])
				}
			}
			graph[name] = deps
		}

		first, err := resolver.Resolve(graph)
		require.NoError(t, err)
		assertDependenciesFirst(t, graph, first)

		for i := 0; i < 5; i++ {
			again, err := resolver.Resolve(graph)
			require.NoError(t, err)
			assert.Equal(t, first, again, "resolution must be deterministic")
		}
	}
}

func TestResolve_Cycles(t *testing.T) {
	tests := []struct {
		name      string
		graph     map[string][]string
		wantCycle []string
	}{
		{
			name:      "self inheritance",
			graph:     map[string][]string{"a": {"a"}},
			wantCycle: []string{"a", "a"},
		},
		{
			name:      "two node cycle",
			graph:     map[string][]string{"a": {"b"}, "b": {"a"}},
			wantCycle: []string{"a", "b", "a"},
		},
		{
			name: "three node cycle behind a valid prefix",
			graph: map[string][]string{
				"default": {},
				"x":       {"default", "y"},
				"y":       {"z"},
				"z":       {"x"},
			},
			wantCycle: []string{"x", "y", "z", "x"},
		},
		{
			name: "dependent of a cycle is not part of it",
			graph: map[string][]string{
				"a": {"b"},
				"b": {"c"},
				"c": {"b"},
			},
			wantCycle: []string{"b", "c", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve(tt.graph)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCyclicDependency))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.wantCycle, details["cycle"])
			assert.Equal(t, tt.wantCycle[len(tt.wantCycle)-2], details["dependent"])
			assert.Equal(t, tt.wantCycle[len(tt.wantCycle)-1], details["dependency"])
		})
	}
}

func TestResolve_CycleMessage(t *testing.T) {
	_, err := resolver.Resolve(map[string][]string{"dark": {"light"}, "light": {"dark"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dark -> light -> dark")
}

func TestResolve_UnknownDependency(t *testing.T) {
	_, err := resolver.Resolve(map[string][]string{
		"default": {},
		"dark":    {"default", "missing"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownColorscheme))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "dark", details["dependent"])
	assert.Equal(t, "missing", details["dependency"])
}

func TestInheritGraph(t *testing.T) {
	defs := map[string]types.ColorschemeDefinition{
		"default": {Name: "default"},
		"dark":    {Name: "dark", Inherit: []string{"default"}},
	}

	graph := resolver.InheritGraph(defs)
	assert.Equal(t, []string{"default"}, graph["dark"])
	assert.Empty(t, graph["default"])

	// The graph does not alias the definitions' slices.
	graph["dark"][0] = "changed"
	assert.Equal(t, "default", defs["dark"].Inherit[0])
}
