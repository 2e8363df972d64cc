package resolve

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/depgraph"
)

// Resolve orders an unordered changeset into an execution-safe sequence. An
// empty changeset is returned unchanged without touching the catalogs or
// extractor.
func Resolve(changes []change.Change, source, target *catalog.Catalog, extractor *depgraph.Extractor) ([]change.Change, error) {
	if len(changes) == 0 {
		return changes, nil
	}
	if extractor == nil {
		extractor = depgraph.NewExtractor()
	}

	ids := make([]string, len(changes))
	for i, c := range changes {
		ids[i] = c.StableID()
	}

	model := extractor.ExtractForChangeset(source, target, ids)
	constraints := generateConstraints(changes, model)
	return solve(changes, constraints)
}
