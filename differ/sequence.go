package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffSequences treats every data field except DataType, OwnedByTable, and
// OwnedByColumn as in-place alterable (Postgres's ALTER SEQUENCE covers
// increment/min/max/cycle/cache and RESTART WITH); a change to ownership or
// the underlying type has no alter path and forces drop-then-create.
func diffSequences(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Sequences, target.Sequences) {
		s, sOK := source.Sequences[id]
		t, tOK := target.Sequences[id]
		switch {
		case !sOK:
			out = append(out, createSequence(id, t))
			if owner := setSequenceOwner(id, t); owner != nil {
				out = append(out, owner)
			}
		case !tOK:
			out = append(out, &change.DropSequence{ID: id, Schema: s.Schema, Name: s.Name})
		case s.SemanticEqual(t):
			continue
		case s.DataType != t.DataType || s.OwnedByTable != t.OwnedByTable || s.OwnedByColumn != t.OwnedByColumn:
			out = append(out, &change.DropSequence{ID: id, Schema: s.Schema, Name: s.Name})
			out = append(out, createSequence(id, t))
			if owner := setSequenceOwner(id, t); owner != nil {
				out = append(out, owner)
			}
		default:
			out = append(out, alterSequence(id, s, t))
		}
	}
	return out
}

func createSequence(id string, t *catalog.Sequence) *change.CreateSequence {
	return &change.CreateSequence{
		ID: id, Schema: t.Schema, Name: t.Name, DataType: t.DataType,
		StartValue: t.StartValue, Increment: t.Increment, MinValue: t.MinValue,
		MaxValue: t.MaxValue, Cycle: t.Cycle, CacheSize: t.CacheSize,
	}
}

// setSequenceOwner returns the OWNED BY statement for a freshly created
// sequence, or nil if the target sequence has no owning column.
func setSequenceOwner(id string, t *catalog.Sequence) *change.SetSequenceOwner {
	if t.OwnedByTable == "" || t.OwnedByColumn == "" {
		return nil
	}
	return &change.SetSequenceOwner{
		ID: id, Schema: t.Schema, Name: t.Name,
		OwnedByTable: t.OwnedByTable, OwnedByColumn: t.OwnedByColumn,
	}
}

func alterSequence(id string, s, t *catalog.Sequence) *change.AlterSequence {
	a := &change.AlterSequence{ID: id, Schema: t.Schema, Name: t.Name}
	if s.Increment != t.Increment {
		v := t.Increment
		a.Increment = &v
	}
	if !equalInt64Ptr(s.MinValue, t.MinValue) {
		a.MinValue = t.MinValue
	}
	if !equalInt64Ptr(s.MaxValue, t.MaxValue) {
		a.MaxValue = t.MaxValue
	}
	if s.Cycle != t.Cycle {
		v := t.Cycle
		a.Cycle = &v
	}
	if s.CacheSize != t.CacheSize {
		v := t.CacheSize
		a.CacheSize = &v
	}
	if s.StartValue != t.StartValue {
		v := t.StartValue
		a.RestartValue = &v
	}
	return a
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
