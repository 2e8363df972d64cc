package catalog

// View represents an ordinary (non-materialized) view. Definition is the
// captured pg_get_viewdef() text, normalized (surrounding whitespace and a
// trailing semicolon stripped; inner whitespace is kept as is) by the
// extractor before comparison.
type View struct {
	// identity
	Schema string
	Name   string

	// data
	Definition string
	Columns    []string

	// internal
	OID int64
}

func (v *View) StableID() string {
	return PrefixView + ":" + QualifiedName(v.Schema, v.Name)
}

func (v *View) SemanticEqual(other Entity) bool {
	o, ok := other.(*View)
	if !ok {
		return false
	}
	if v.Schema != o.Schema || v.Name != o.Name {
		return false
	}
	return v.Definition == o.Definition &&
		equalStringSlice(v.Columns, o.Columns)
}
