package catalog

// Table represents an ordinary heap table (relkind 'r') or partitioned table
// (relkind 'p'). Columns, constraints, indexes, triggers, and policies are
// tracked as separate entities scoped to the table rather than nested here,
// matching pg_catalog's own normalization.
type Table struct {
	// identity
	Schema string
	Name   string

	// data
	Owner              string
	IsPartitioned      bool
	PartitionStrategy  string // "", "range", "list", "hash"
	PartitionKey       string // raw partition key expression, empty if not partitioned
	PartitionOf        string // parent table qualified name, empty if not a partition
	PartitionBound     string // FOR VALUES ... clause, empty if not a partition
	RowSecurityEnabled bool

	// internal — extraction-only, used to correlate pg_depend edges.
	OID int64
}

func (t *Table) StableID() string {
	return PrefixTable + ":" + QualifiedName(t.Schema, t.Name)
}

func (t *Table) SemanticEqual(other Entity) bool {
	o, ok := other.(*Table)
	if !ok {
		return false
	}
	if t.Schema != o.Schema || t.Name != o.Name {
		return false
	}
	return t.Owner == o.Owner &&
		t.IsPartitioned == o.IsPartitioned &&
		t.PartitionStrategy == o.PartitionStrategy &&
		t.PartitionKey == o.PartitionKey &&
		t.PartitionOf == o.PartitionOf &&
		t.PartitionBound == o.PartitionBound &&
		t.RowSecurityEnabled == o.RowSecurityEnabled
}
