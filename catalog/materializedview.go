package catalog

// MaterializedView represents a materialized view. Unlike a plain view, a
// materialized view has no ALTER ... AS path in PostgreSQL, so the differ
// emits a ReplaceMaterializedView on any semantic difference, which the
// emitter lowers to DROP followed by CREATE (see pg_class_diff grounding in
// the differ package).
type MaterializedView struct {
	// identity
	Schema string
	Name   string

	// data
	Definition string
	Columns    []string

	// internal
	OID int64
}

func (m *MaterializedView) StableID() string {
	return PrefixMaterializedView + ":" + QualifiedName(m.Schema, m.Name)
}

func (m *MaterializedView) SemanticEqual(other Entity) bool {
	o, ok := other.(*MaterializedView)
	if !ok {
		return false
	}
	if m.Schema != o.Schema || m.Name != o.Name {
		return false
	}
	return m.Definition == o.Definition &&
		equalStringSlice(m.Columns, o.Columns)
}
