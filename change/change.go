// Package change defines the tagged-variant taxonomy of DDL changes the
// differ produces and the resolver orders: one Create/Drop/Alter/Replace
// type per entity kind, plus AlterTable's ordered column sub-operations.
// Changes are immutable values; nothing in this package executes SQL.
package change

// Kind identifies the entity a Change targets.
type Kind string

const (
	KindSchema           Kind = "schema"
	KindTable            Kind = "table"
	KindColumn           Kind = "column" // AlterTable sub-op bookkeeping, not a top-level Change kind
	KindView             Kind = "view"
	KindMaterializedView Kind = "materialized_view"
	KindConstraint       Kind = "constraint"
	KindIndex            Kind = "index"
	KindSequence         Kind = "sequence"
	KindFunction         Kind = "function"
	KindProcedure        Kind = "procedure"
	KindTrigger          Kind = "trigger"
	KindType             Kind = "type"
	KindPolicy           Kind = "policy"
	KindExtension        Kind = "extension"
)

// Operation identifies what a Change does to its target entity. Priority
// gives the same-object tie-break order the resolver's constraint generator
// uses: Drop before Create before Alter before Replace.
type Operation int

const (
	OpDrop Operation = iota
	OpCreate
	OpAlter
	OpReplace
)

func (o Operation) Priority() int { return int(o) }

func (o Operation) IsCreate() bool  { return o == OpCreate }
func (o Operation) IsDrop() bool    { return o == OpDrop }
func (o Operation) IsAlter() bool   { return o == OpAlter }
func (o Operation) IsReplace() bool { return o == OpReplace }

func (o Operation) String() string {
	switch o {
	case OpDrop:
		return "Drop"
	case OpCreate:
		return "Create"
	case OpAlter:
		return "Alter"
	case OpReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Change is implemented by every concrete change type in this package. It
// carries just enough identity for the resolver to build ordering
// constraints without knowing the entity kind's internal shape.
type Change interface {
	// StableID is the target entity's stable_id.
	StableID() string
	Kind() Kind
	Operation() Operation
}
