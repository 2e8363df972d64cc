// Package depgraph builds the dependency model the resolver's constraint
// generator consults: a bounded transitive-closure walk over pg_depend-
// derived edges from both the source and target catalogs, tagged by which
// catalog each edge came from.
package depgraph

import "github.com/pgdelta/pgdelta-go/catalog"

// Model indexes dependency edges from one or more catalogs, keeping the
// origin tag on every edge so callers can ask origin-specific questions
// (e.g. "what does this object depend on in the target catalog, post-
// change?").
type Model struct {
	edges   []catalog.Dependency
	seen    map[string]bool            // dependent|referenced|origin, for Add dedup
	forward map[string]map[string]bool // dependent -> referenced set, any origin
	reverse map[string]map[string]bool // referenced -> dependent set, any origin
}

// NewModel builds an empty Model.
func NewModel() *Model {
	return &Model{
		seen:    make(map[string]bool),
		forward: make(map[string]map[string]bool),
		reverse: make(map[string]map[string]bool),
	}
}

// edgeKey identifies an edge for dedup purposes. Origin is part of the key:
// the same (dependent, referenced) pair recorded against both the source and
// target catalogs is two distinct edges, not one, since callers ask
// origin-specific questions about which catalog an edge holds in.
func edgeKey(dep catalog.Dependency) string {
	return dep.Dependent + "\x00" + dep.Referenced + "\x00" + string(dep.Origin)
}

// Add records a dependency edge if this exact (dependent, referenced, origin)
// triple is not already present.
func (m *Model) Add(dep catalog.Dependency) {
	key := edgeKey(dep)
	if m.seen[key] {
		return
	}
	m.seen[key] = true

	if m.forward[dep.Dependent] == nil {
		m.forward[dep.Dependent] = make(map[string]bool)
	}
	m.forward[dep.Dependent][dep.Referenced] = true

	if m.reverse[dep.Referenced] == nil {
		m.reverse[dep.Referenced] = make(map[string]bool)
	}
	m.reverse[dep.Referenced][dep.Dependent] = true

	m.edges = append(m.edges, dep)
}

// Edges returns every edge added to the model, in insertion order.
func (m *Model) Edges() []catalog.Dependency {
	return m.edges
}

// DependenciesOf returns the set of objects objID directly depends on,
// optionally filtered by origin. Pass "" for origin to include both.
func (m *Model) DependenciesOf(objID string, origin catalog.Origin) []string {
	var out []string
	for ref := range m.forward[objID] {
		if origin != "" && !m.hasEdge(objID, ref, origin) {
			continue
		}
		out = append(out, ref)
	}
	return out
}

// DependentsOf returns the set of objects that directly depend on objID,
// optionally filtered by origin.
func (m *Model) DependentsOf(objID string, origin catalog.Origin) []string {
	var out []string
	for dep := range m.reverse[objID] {
		if origin != "" && !m.hasEdge(dep, objID, origin) {
			continue
		}
		out = append(out, dep)
	}
	return out
}

func (m *Model) hasEdge(dependent, referenced string, origin catalog.Origin) bool {
	for _, e := range m.edges {
		if e.Dependent == dependent && e.Referenced == referenced && e.Origin == origin {
			return true
		}
	}
	return false
}
