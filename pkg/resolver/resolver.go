package resolver

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/types"
)

// InheritGraph extracts the name -> inherit list graph from definitions
func InheritGraph(defs map[string]types.ColorschemeDefinition) map[string][]string {
	graph := make(map[string][]string, len(defs))
	for name, def := range defs {
		graph[name] = append([]string(nil), def.Inherit...)
	}
	return graph
}

// Resolve returns the names of graph ordered so that each name comes after
// every name it depends on, directly or transitively.
//
// A dependency that is not itself a key of graph fails with
// ErrUnknownColorscheme. A graph without a valid order fails with
// ErrCyclicDependency.
func Resolve(graph map[string][]string) ([]string, error) {
	logger := logging.GetLogger("resolver")

	names := sortedKeys(graph)
	indegree := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))

	for _, name := range names {
		seen := make(map[string]bool, len(graph[name]))
		for _, dep := range graph[name] {
			if seen[dep] {
				continue
			}
			seen[dep] = true

			if _, ok := graph[dep]; !ok {
				return nil, errors.Newf(errors.ErrUnknownColorscheme,
					"colorscheme %q inherits unknown colorscheme %q", name, dep).
					WithDetail("dependent", name).
					WithDetail("dependency", dep)
			}

			indegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	ready := &nameHeap{}
	for _, name := range names {
		if indegree[name] == 0 {
			heap.Push(ready, name)
		}
	}

	order := make([]string, 0, len(names))
	for ready.Len() > 0 {
		name := heap.Pop(ready).(string)
		order = append(order, name)

		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				heap.Push(ready, dependent)
			}
		}
	}

	if len(order) < len(names) {
		remaining := make(map[string]bool, len(names)-len(order))
		for _, name := range names {
			if indegree[name] > 0 {
				remaining[name] = true
			}
		}
		return nil, cycleError(graph, remaining)
	}

	logger.Debug().Strs("order", order).Msg("resolved colorscheme order")
	return order, nil
}

func cycleError(graph map[string][]string, remaining map[string]bool) error {
	cycle := findCycle(graph, remaining)
	if len(cycle) < 2 {
		// Every remaining node has an unresolved dependency, so a cycle
		// always exists; reaching this means the bookkeeping is wrong.
		return errors.New(errors.ErrInternal, "dependency resolution stalled without a cycle")
	}

	dependent := cycle[len(cycle)-2]
	dependency := cycle[len(cycle)-1]

	return errors.Newf(errors.ErrCyclicDependency,
		"cyclic dependency: %s", strings.Join(cycle, " -> ")).
		WithDetail("cycle", cycle).
		WithDetail("dependent", dependent).
		WithDetail("dependency", dependency)
}

const (
	unvisited = iota
	inProgress
	done
)

// findCycle walks dependency edges between remaining nodes and returns the
// first cycle it closes, starting and ending with the same name.
func findCycle(graph map[string][]string, remaining map[string]bool) []string {
	state := make(map[string]int, len(remaining))
	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		state[name] = inProgress
		stack = append(stack, name)

		for _, dep := range graph[name] {
			if !remaining[dep] {
				continue
			}
			switch state[dep] {
			case inProgress:
				for i, n := range stack {
					if n == dep {
						cycle = append(append([]string{}, stack[i:]...), dep)
						return true
					}
				}
			case unvisited:
				if visit(dep) {
					return true
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[name] = done
		return false
	}

	for _, name := range sortedSet(remaining) {
		if state[name] == unvisited && visit(name) {
			return cycle
		}
	}
	return nil
}

func sortedKeys(graph map[string][]string) []string {
	keys := make([]string, 0, len(graph))
	for k := range graph {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// nameHeap is a min-heap of names
type nameHeap []string

func (h nameHeap) Len() int           { return len(h) }
func (h nameHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h nameHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nameHeap) Push(x interface{}) {
	*h = append(*h, x.(string))
}

func (h *nameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
