package resolve

import (
	"sort"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/pgerr"
)

// solve topologically sorts changes subject to constraints using Kahn's
// algorithm. Ties among nodes with no remaining constraint between them are
// broken by original emission order (the index changes arrived in), which is
// what makes the output deterministic across runs on the same input. On
// infeasibility it enumerates every simple cycle among the unresolved nodes
// before returning pgerr.CyclicDependencyError.
func solve(changes []change.Change, constraints []constraint) ([]change.Change, error) {
	n := len(changes)
	if n == 0 {
		return changes, nil
	}

	adj := make([][]int, n)
	inDegree := make([]int, n)
	seen := make(map[[2]int]bool)
	for _, c := range constraints {
		key := [2]int{c.before, c.after}
		if seen[key] {
			continue
		}
		seen[key] = true
		adj[c.before] = append(adj[c.before], c.after)
		inDegree[c.after]++
	}
	for i := range adj {
		sort.Ints(adj[i])
	}

	// Ready set ordered by original index for deterministic tie-breaking.
	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			ready = append(ready, i)
		}
	}
	sort.Ints(ready)

	order := make([]int, 0, n)
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		for _, m := range adj[next] {
			inDegree[m]--
			if inDegree[m] == 0 {
				pos := sort.SearchInts(ready, m)
				ready = append(ready, 0)
				copy(ready[pos+1:], ready[pos:])
				ready[pos] = m
			}
		}
	}

	if len(order) != n {
		remaining := make([]int, 0, n-len(order))
		done := make(map[int]bool, len(order))
		for _, i := range order {
			done[i] = true
		}
		for i := 0; i < n; i++ {
			if !done[i] {
				remaining = append(remaining, i)
			}
		}
		cycles := findCycles(remaining, adj, changes)
		return nil, &pgerr.CyclicDependencyError{Cycles: cycles}
	}

	out := make([]change.Change, n)
	for i, idx := range order {
		out[i] = changes[idx]
	}
	return out, nil
}

// findCycles enumerates simple cycles among the given node indices using
// depth-first search with an on-stack marker, describing each cycle by
// stable_id and operation kind for a human-readable report.
func findCycles(nodes []int, adj [][]int, changes []change.Change) []pgerr.Cycle {
	inSet := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		inSet[n] = true
	}

	var cycles []pgerr.Cycle
	found := make(map[string]bool)
	onStack := make(map[int]bool)
	var stack []int

	var visit func(node int)
	visit = func(node int) {
		onStack[node] = true
		stack = append(stack, node)

		for _, next := range adj[node] {
			if !inSet[next] {
				continue
			}
			if onStack[next] {
				cycle := cycleFrom(stack, next, changes)
				key := cycle.String()
				if !found[key] {
					found[key] = true
					cycles = append(cycles, cycle)
				}
				continue
			}
			visit(next)
		}

		stack = stack[:len(stack)-1]
		onStack[node] = false
	}

	sorted := append([]int(nil), nodes...)
	sort.Ints(sorted)
	for _, n := range sorted {
		if !onStack[n] {
			visit(n)
		}
	}
	return cycles
}

func cycleFrom(stack []int, closeAt int, changes []change.Change) pgerr.Cycle {
	start := 0
	for i, v := range stack {
		if v == closeAt {
			start = i
			break
		}
	}
	steps := make([]string, 0, len(stack)-start)
	for _, idx := range stack[start:] {
		steps = append(steps, describe(changes[idx]))
	}
	return pgerr.Cycle{Steps: steps}
}

func describe(c change.Change) string {
	return string(c.Kind()) + " " + c.StableID() + " (" + operationName(c.Operation()) + ")"
}

func operationName(op change.Operation) string {
	switch {
	case op.IsDrop():
		return "drop"
	case op.IsCreate():
		return "create"
	case op.IsAlter():
		return "alter"
	case op.IsReplace():
		return "replace"
	default:
		return "unknown"
	}
}
