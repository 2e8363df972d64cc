package catalog

import (
	"fmt"

	"github.com/pgdelta/pgdelta-go/pgerr"
)

// Catalog is an immutable snapshot of a PostgreSQL database's catalog,
// keyed by stable_id within each collection. Once built by New it is never
// mutated; every downstream package (differ, depgraph, resolve) takes
// Catalogs by value/pointer and reads them only.
type Catalog struct {
	Schemas           map[string]*Schema
	Tables            map[string]*Table
	Columns           map[string]*Column
	Constraints       map[string]*Constraint
	Indexes           map[string]*Index
	Sequences         map[string]*Sequence
	Views             map[string]*View
	MaterializedViews map[string]*MaterializedView
	Functions         map[string]*Function
	Procedures        map[string]*Procedure
	Triggers          map[string]*Trigger
	Types             map[string]*Type
	Policies          map[string]*Policy
	Extensions        map[string]*Extension
	Dependencies      []Dependency
}

// New builds a Catalog from its constituent collections and validates its
// structural invariants: every map key equals its entity's StableID, no
// stable_id appears twice anywhere in the catalog, a table's schema resolves,
// and the table of every column, constraint, index, trigger and policy
// resolves within the same catalog. The schema of views, materialized views,
// sequences, functions, procedures, types and extensions is not checked. A
// violation is returned as a *pgerr.InvariantError. It does not validate dependency edges,
// which may legitimately reference objects outside the snapshot (e.g. a
// system catalog OID the extractor chose not to resolve).
func New(
	schemas map[string]*Schema,
	tables map[string]*Table,
	columns map[string]*Column,
	constraints map[string]*Constraint,
	indexes map[string]*Index,
	sequences map[string]*Sequence,
	views map[string]*View,
	materializedViews map[string]*MaterializedView,
	functions map[string]*Function,
	procedures map[string]*Procedure,
	triggers map[string]*Trigger,
	types map[string]*Type,
	policies map[string]*Policy,
	extensions map[string]*Extension,
	dependencies []Dependency,
) (*Catalog, error) {
	c := &Catalog{
		Schemas:           schemas,
		Tables:            tables,
		Columns:           columns,
		Constraints:       constraints,
		Indexes:           indexes,
		Sequences:         sequences,
		Views:             views,
		MaterializedViews: materializedViews,
		Functions:         functions,
		Procedures:        procedures,
		Triggers:          triggers,
		Types:             types,
		Policies:          policies,
		Extensions:        extensions,
		Dependencies:      dependencies,
	}
	if err := c.validate(); err != nil {
		return nil, &pgerr.InvariantError{Reason: err.Error()}
	}
	return c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	add := func(id string) error {
		if seen[id] {
			return fmt.Errorf("catalog: duplicate stable_id %q", id)
		}
		seen[id] = true
		return nil
	}

	for id, s := range c.Schemas {
		if id != s.StableID() {
			return fmt.Errorf("catalog: schema map key %q does not match StableID %q", id, s.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, t := range c.Tables {
		if id != t.StableID() {
			return fmt.Errorf("catalog: table map key %q does not match StableID %q", id, t.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
		if _, ok := c.Schemas[PrefixSchema+":"+t.Schema]; !ok {
			return fmt.Errorf("catalog: table %q references unknown schema %q", id, t.Schema)
		}
	}
	for id, col := range c.Columns {
		if id != col.StableID() {
			return fmt.Errorf("catalog: column map key %q does not match StableID %q", id, col.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
		if _, ok := c.Tables[PrefixTable+":"+QualifiedName(col.Schema, col.Table)]; !ok {
			return fmt.Errorf("catalog: column %q references unknown table %s.%s", id, col.Schema, col.Table)
		}
	}
	for id, con := range c.Constraints {
		if id != con.StableID() {
			return fmt.Errorf("catalog: constraint map key %q does not match StableID %q", id, con.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
		if _, ok := c.Tables[PrefixTable+":"+QualifiedName(con.Schema, con.Table)]; !ok {
			return fmt.Errorf("catalog: constraint %q references unknown table %s.%s", id, con.Schema, con.Table)
		}
	}
	for id, idx := range c.Indexes {
		if id != idx.StableID() {
			return fmt.Errorf("catalog: index map key %q does not match StableID %q", id, idx.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
		if _, ok := c.Tables[PrefixTable+":"+QualifiedName(idx.Schema, idx.Table)]; !ok {
			return fmt.Errorf("catalog: index %q references unknown table %s.%s", id, idx.Schema, idx.Table)
		}
	}
	for id, seq := range c.Sequences {
		if id != seq.StableID() {
			return fmt.Errorf("catalog: sequence map key %q does not match StableID %q", id, seq.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, v := range c.Views {
		if id != v.StableID() {
			return fmt.Errorf("catalog: view map key %q does not match StableID %q", id, v.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, mv := range c.MaterializedViews {
		if id != mv.StableID() {
			return fmt.Errorf("catalog: materialized view map key %q does not match StableID %q", id, mv.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, fn := range c.Functions {
		if id != fn.StableID() {
			return fmt.Errorf("catalog: function map key %q does not match StableID %q", id, fn.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, p := range c.Procedures {
		if id != p.StableID() {
			return fmt.Errorf("catalog: procedure map key %q does not match StableID %q", id, p.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, tg := range c.Triggers {
		if id != tg.StableID() {
			return fmt.Errorf("catalog: trigger map key %q does not match StableID %q", id, tg.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
		if _, ok := c.Tables[PrefixTable+":"+QualifiedName(tg.Schema, tg.Table)]; !ok {
			return fmt.Errorf("catalog: trigger %q references unknown table %s.%s", id, tg.Schema, tg.Table)
		}
	}
	for id, ty := range c.Types {
		if id != ty.StableID() {
			return fmt.Errorf("catalog: type map key %q does not match StableID %q", id, ty.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	for id, p := range c.Policies {
		if id != p.StableID() {
			return fmt.Errorf("catalog: policy map key %q does not match StableID %q", id, p.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
		if _, ok := c.Tables[PrefixTable+":"+QualifiedName(p.Schema, p.Table)]; !ok {
			return fmt.Errorf("catalog: policy %q references unknown table %s.%s", id, p.Schema, p.Table)
		}
	}
	for id, ext := range c.Extensions {
		if id != ext.StableID() {
			return fmt.Errorf("catalog: extension map key %q does not match StableID %q", id, ext.StableID())
		}
		if err := add(id); err != nil {
			return err
		}
	}
	return nil
}

// SemanticEqual reports whether two catalogs describe the same logical
// schema, ignoring OIDs and other internal bookkeeping. Dependency edges are
// excluded from the comparison since they are derived data, not state.
func (c *Catalog) SemanticEqual(other *Catalog) bool {
	return MapsSemanticEqual(c.Schemas, other.Schemas) &&
		MapsSemanticEqual(c.Tables, other.Tables) &&
		MapsSemanticEqual(c.Columns, other.Columns) &&
		MapsSemanticEqual(c.Constraints, other.Constraints) &&
		MapsSemanticEqual(c.Indexes, other.Indexes) &&
		MapsSemanticEqual(c.Sequences, other.Sequences) &&
		MapsSemanticEqual(c.Views, other.Views) &&
		MapsSemanticEqual(c.MaterializedViews, other.MaterializedViews) &&
		MapsSemanticEqual(c.Functions, other.Functions) &&
		MapsSemanticEqual(c.Procedures, other.Procedures) &&
		MapsSemanticEqual(c.Triggers, other.Triggers) &&
		MapsSemanticEqual(c.Types, other.Types) &&
		MapsSemanticEqual(c.Policies, other.Policies) &&
		MapsSemanticEqual(c.Extensions, other.Extensions)
}
