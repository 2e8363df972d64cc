package catalog

// ConstraintKind enumerates the pg_constraint.contype values pgdelta tracks.
type ConstraintKind string

const (
	ConstraintPrimaryKey ConstraintKind = "p"
	ConstraintUnique     ConstraintKind = "u"
	ConstraintForeignKey ConstraintKind = "f"
	ConstraintCheck      ConstraintKind = "c"
	ConstraintExclusion  ConstraintKind = "x"
)

// Constraint represents a table constraint. Definition is the captured
// pg_get_constraintdef() text and is reused verbatim by the emitter rather
// than reconstructed from the structured fields.
type Constraint struct {
	// identity
	Schema string
	Table  string
	Name   string

	// data
	Kind            ConstraintKind
	Definition      string
	Columns         []string
	ForeignSchema   string
	ForeignTable    string
	ForeignColumns  []string
	Deferrable      bool
	InitiallyDeferred bool
	Validated       bool

	// internal
	OID int64
}

func (c *Constraint) StableID() string {
	return PrefixConstraint + ":" + ScopedName(c.Schema, c.Table, c.Name)
}

func (c *Constraint) SemanticEqual(other Entity) bool {
	o, ok := other.(*Constraint)
	if !ok {
		return false
	}
	if c.Schema != o.Schema || c.Table != o.Table || c.Name != o.Name {
		return false
	}
	return c.Kind == o.Kind &&
		c.Definition == o.Definition &&
		equalStringSlice(c.Columns, o.Columns) &&
		c.ForeignSchema == o.ForeignSchema &&
		c.ForeignTable == o.ForeignTable &&
		equalStringSlice(c.ForeignColumns, o.ForeignColumns) &&
		c.Deferrable == o.Deferrable &&
		c.InitiallyDeferred == o.InitiallyDeferred &&
		c.Validated == o.Validated
}

func equalStringSlice(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
