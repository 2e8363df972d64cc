// Package catalog implements the canonical PostgreSQL catalog data model:
// the entity types, the stable-identifier scheme, and the semantic-equality
// discipline every other package builds on.
//
// Field classification (identity / data / internal) is expressed the Go way
// the design notes call for: as compile-time behavior on each concrete type
// rather than as runtime field metadata. Every entity implements Entity, and
// its SemanticEqual method is the single place that decides which of its
// fields participate in semantic equality (identity + data) versus which
// are extraction-only bookkeeping (internal) and therefore ignored.
package catalog

// Entity is implemented by every catalog object kind (schema, table, column,
// constraint, index, sequence, view, materialized view, function, procedure,
// trigger, type, policy, extension).
type Entity interface {
	// StableID returns the cross-database canonical identifier of the
	// entity: "prefix:qualified_name". It is derived entirely from identity
	// fields and is total and pure.
	StableID() string

	// SemanticEqual reports whether this entity and other have the same
	// concrete type and equal identity+data fields. Internal fields (raw
	// extractor object ids used only for dependency correlation) are never
	// consulted.
	SemanticEqual(other Entity) bool
}

// Prefixes used to build stable_id values. See spec §3. Functions and
// procedures share PrefixFunction: pg_proc's prokind is not part of a
// pg_depend endpoint's identity, and both kinds already disambiguate
// overloads via ArgTypesSuffix.
const (
	PrefixSchema            = "s"
	PrefixTable             = "t"
	PrefixView              = "v"
	PrefixMaterializedView  = "m"
	PrefixIndex             = "i"
	PrefixSequence          = "S"
	PrefixConstraint        = "c"
	PrefixTrigger           = "tg"
	PrefixFunction          = "f"
	PrefixType              = "typ"
	PrefixPolicy            = "p"
	PrefixColumn            = "col"
	PrefixExtension         = "x"
)
