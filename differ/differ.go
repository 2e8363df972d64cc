// Package differ computes the changeset between two catalog snapshots, one
// entity kind at a time. Every per-kind function is a pure function of its
// two input maps: present-only-in-target is a Create, present-only-in-source
// is a Drop, present in both but not SemanticEqual is an Alter or Replace
// (whichever the entity kind supports) or, absent an in-place path, a
// Drop-then-Create pair.
package differ

import (
	"sort"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// Diff computes the full changeset transforming source into target. Changes
// are appended in a fixed kind order (schemas, extensions, types, sequences,
// tables/views/materialized views, functions/procedures, constraints,
// indexes, policies, triggers) and are lexicographically ordered by
// stable_id within each kind, so the same pair of catalogs always yields the
// same unordered-but-deterministic changeset before resolve.Resolve imposes
// execution order on top.
func Diff(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	out = append(out, diffSchemas(source, target)...)
	out = append(out, diffExtensions(source, target)...)
	out = append(out, diffTypes(source, target)...)
	out = append(out, diffSequences(source, target)...)
	out = append(out, diffTables(source, target)...)
	out = append(out, diffViews(source, target)...)
	out = append(out, diffMaterializedViews(source, target)...)
	out = append(out, diffFunctions(source, target)...)
	out = append(out, diffProcedures(source, target)...)
	out = append(out, diffConstraints(source, target)...)
	out = append(out, diffIndexes(source, target)...)
	out = append(out, diffPolicies(source, target)...)
	out = append(out, diffTriggers(source, target)...)
	return out
}

// sortedKeys returns the union of keys present in either map, sorted, so
// per-kind differs process objects in deterministic stable_id order.
func sortedKeys[A, B any](left map[string]A, right map[string]B) []string {
	seen := make(map[string]bool, len(left)+len(right))
	for k := range left {
		seen[k] = true
	}
	for k := range right {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
