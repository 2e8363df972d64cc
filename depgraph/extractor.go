package depgraph

import (
	"strings"

	"github.com/pgdelta/pgdelta-go/catalog"
)

// unknownPrefix marks a pg_depend endpoint the extractor could not resolve
// to a tracked stable_id (e.g. a pinned dependency on a system object). Such
// endpoints are dropped rather than propagated, matching the source project.
const unknownPrefix = "unknown."

// Extractor builds a Model scoped to the objects relevant to a changeset,
// rather than the full transitive closure of both catalogs, which keeps the
// resolver's constraint generation cheap on large schemas.
type Extractor struct {
	// MaxDepth bounds the BFS expansion from the changeset's own stable_ids
	// out to their dependencies and dependents. Two hops covers the common
	// case (a table's constraint referencing a function referencing a type);
	// raise it for deeper chains such as policy -> function -> type ->
	// function.
	MaxDepth int
}

// NewExtractor returns an Extractor with the default depth used throughout
// the resolver.
func NewExtractor() *Extractor {
	return &Extractor{MaxDepth: 2}
}

// ExtractForChangeset returns a Model containing only the edges relevant to
// changeIDs: edges from source and target whose endpoints are both within
// the MaxDepth-bounded neighborhood of the changeset.
func (e *Extractor) ExtractForChangeset(source, target *catalog.Catalog, changeIDs []string) *Model {
	maxDepth := e.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 2
	}

	relevant := make(map[string]bool, len(changeIDs))
	for _, id := range changeIDs {
		relevant[id] = true
	}

	for depth := 0; depth < maxDepth; depth++ {
		added := false
		current := make([]string, 0, len(relevant))
		for id := range relevant {
			current = append(current, id)
		}
		for _, id := range current {
			for _, neighbor := range directNeighbors(id, source) {
				if !relevant[neighbor] {
					relevant[neighbor] = true
					added = true
				}
			}
			for _, neighbor := range directNeighbors(id, target) {
				if !relevant[neighbor] {
					relevant[neighbor] = true
					added = true
				}
			}
		}
		if !added {
			break
		}
	}

	model := NewModel()
	extractFromCatalog(model, source, relevant, catalog.OriginSource)
	extractFromCatalog(model, target, relevant, catalog.OriginTarget)
	return model
}

// directNeighbors returns every stable_id directly connected to objID in cat,
// in either direction, excluding unresolved ("unknown.") endpoints.
func directNeighbors(objID string, cat *catalog.Catalog) []string {
	var out []string
	for _, dep := range cat.Dependencies {
		if isUnknown(dep.Dependent) || isUnknown(dep.Referenced) {
			continue
		}
		if dep.Dependent == objID {
			out = append(out, dep.Referenced)
		}
		if dep.Referenced == objID {
			out = append(out, dep.Dependent)
		}
	}
	return out
}

func extractFromCatalog(model *Model, cat *catalog.Catalog, relevant map[string]bool, origin catalog.Origin) {
	for _, dep := range cat.Dependencies {
		if isUnknown(dep.Dependent) || isUnknown(dep.Referenced) {
			continue
		}
		if !relevant[dep.Dependent] || !relevant[dep.Referenced] {
			continue
		}
		model.Add(catalog.Dependency{
			Dependent:  dep.Dependent,
			Referenced: dep.Referenced,
			Origin:     origin,
		})
	}
}

func isUnknown(id string) bool {
	return strings.HasPrefix(id, unknownPrefix)
}
