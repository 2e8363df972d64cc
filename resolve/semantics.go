// Package resolve turns an unordered changeset into an execution order safe
// to run against a live database: it builds BEFORE constraints from the
// dependency graph and same-object operation priority, then solves them with
// a deterministic topological sort that fails loudly, with full cycle
// enumeration, rather than silently breaking ties.
package resolve

import (
	"sort"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/depgraph"
)

// constraint is an internal BEFORE edge between two change indices.
type constraint struct {
	before int
	after  int
	reason string
}

// generateConstraints builds every BEFORE constraint implied by the
// dependency model and by same-object operation priority.
func generateConstraints(changes []change.Change, model *depgraph.Model) []constraint {
	var out []constraint
	out = append(out, dependencyConstraints(changes, model)...)
	out = append(out, sameObjectConstraints(changes)...)
	return out
}

func dependencyConstraints(changes []change.Change, model *depgraph.Model) []constraint {
	var out []constraint
	for i, a := range changes {
		for j, b := range changes {
			if i == j {
				continue
			}
			if c := analyzePair(i, a, j, b, model); c != nil {
				out = append(out, *c)
			}
		}
	}
	return out
}

func originFor(c change.Change) catalog.Origin {
	if c.Operation().IsDrop() {
		return catalog.OriginSource
	}
	return catalog.OriginTarget
}

func hasEdge(model *depgraph.Model, dependent, referenced string, origin catalog.Origin) bool {
	for _, r := range model.DependenciesOf(dependent, origin) {
		if r == referenced {
			return true
		}
	}
	return false
}

func analyzePair(i int, a change.Change, j int, b change.Change, model *depgraph.Model) *constraint {
	originA := originFor(a)
	originB := originFor(b)

	aDependsOnB := hasEdge(model, a.StableID(), b.StableID(), originA)
	bDependsOnA := hasEdge(model, b.StableID(), a.StableID(), originB)

	if aDependsOnB {
		return dependencySemanticRule(i, a, j, b, "a_depends_on_b")
	}
	if bDependsOnA {
		return dependencySemanticRule(j, b, i, a, "b_depends_on_a")
	}
	return nil
}

// dependencySemanticRule decides, given that the change at depIdx depends on
// the change at refIdx, which one must execute first.
func dependencySemanticRule(depIdx int, dependent change.Change, refIdx int, referenced change.Change, reason string) *constraint {
	// A sequence OWNED BY a column reports the sequence as depending on its
	// table in pg_depend, but on creation the table's column default needs
	// the sequence to already exist: invert the edge for this one shape.
	if dependent.Operation().IsCreate() && referenced.Operation().IsCreate() {
		if _, isSeq := dependent.(*change.CreateSequence); isSeq {
			if _, isTable := referenced.(*change.CreateTable); isTable {
				return &constraint{before: depIdx, after: refIdx, reason: "create sequence before table that uses it (" + reason + ")"}
			}
		}
	}

	dependentDrop := dependent.Operation().IsDrop()
	referencedDrop := referenced.Operation().IsDrop()
	dependentForward := dependent.Operation().IsCreate() || dependent.Operation().IsAlter() || dependent.Operation().IsReplace()
	referencedForward := referenced.Operation().IsCreate() || referenced.Operation().IsAlter() || referenced.Operation().IsReplace()

	switch {
	case dependentDrop && referencedDrop:
		// Drop the dependent object before the thing it depends on.
		return &constraint{before: depIdx, after: refIdx, reason: "drop dependent before dependency (" + reason + ")"}
	case dependentForward && referencedForward:
		// Bring the dependency into existence (or up to date) first.
		return &constraint{before: refIdx, after: depIdx, reason: "dependency before dependent (" + reason + ")"}
	case referencedDrop && dependentForward:
		return &constraint{before: refIdx, after: depIdx, reason: "drop before create/alter/replace (" + reason + ")"}
	}
	return nil
}

func sameObjectConstraints(changes []change.Change) []constraint {
	groups := make(map[string][]int)
	for i, c := range changes {
		groups[c.StableID()] = append(groups[c.StableID()], i)
	}

	var out []constraint
	for _, indices := range groups {
		if len(indices) < 2 {
			continue
		}
		sorted := append([]int(nil), indices...)
		sort.SliceStable(sorted, func(a, b int) bool {
			return changes[sorted[a]].Operation().Priority() < changes[sorted[b]].Operation().Priority()
		})
		for k := 0; k < len(sorted)-1; k++ {
			out = append(out, constraint{
				before: sorted[k],
				after:  sorted[k+1],
				reason: "same object operation priority",
			})
		}
	}
	return out
}
