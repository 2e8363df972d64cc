package catalog

// Procedure represents a pg_proc entry created with CREATE PROCEDURE
// (prokind='p'). Procedures have no return type and are invoked with CALL,
// but otherwise share Function's identity and replace semantics.
type Procedure struct {
	// identity
	Schema         string
	Name           string
	ArgTypesSuffix string

	// data
	Definition string
	Language   string

	// internal
	OID int64
}

// StableID uses PrefixFunction, not a separate procedure prefix: pgdelta's
// stable_id scheme has exactly one row for "function / procedure" (spec §3),
// and ArgTypesSuffix already disambiguates overloads the same way Function
// does.
func (p *Procedure) StableID() string {
	return PrefixFunction + ":" + QualifiedName(p.Schema, p.Name+"("+p.ArgTypesSuffix+")")
}

func (p *Procedure) SemanticEqual(other Entity) bool {
	o, ok := other.(*Procedure)
	if !ok {
		return false
	}
	if p.Schema != o.Schema || p.Name != o.Name || p.ArgTypesSuffix != o.ArgTypesSuffix {
		return false
	}
	return p.Definition == o.Definition &&
		p.Language == o.Language
}
