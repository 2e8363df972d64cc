package differ

import (
	"testing"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

func emptyCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		map[string]*catalog.Schema{}, map[string]*catalog.Table{}, map[string]*catalog.Column{},
		map[string]*catalog.Constraint{}, map[string]*catalog.Index{}, map[string]*catalog.Sequence{},
		map[string]*catalog.View{}, map[string]*catalog.MaterializedView{}, map[string]*catalog.Function{},
		map[string]*catalog.Procedure{}, map[string]*catalog.Trigger{}, map[string]*catalog.Type{},
		map[string]*catalog.Policy{}, map[string]*catalog.Extension{}, nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDiffAddColumn(t *testing.T) {
	source := emptyCatalog(t)
	source.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	source.Tables["t:public.users"] = &catalog.Table{Schema: "public", Name: "users"}
	source.Columns["col:public.users.id"] = &catalog.Column{Schema: "public", Table: "users", Name: "id", Position: 1, DataType: "int"}

	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	target.Tables["t:public.users"] = &catalog.Table{Schema: "public", Name: "users"}
	target.Columns["col:public.users.id"] = &catalog.Column{Schema: "public", Table: "users", Name: "id", Position: 1, DataType: "int"}
	target.Columns["col:public.users.email"] = &catalog.Column{Schema: "public", Table: "users", Name: "email", Position: 2, DataType: "text", Nullable: true}

	changes := Diff(source, target)

	var alter *change.AlterTable
	for _, c := range changes {
		if a, ok := c.(*change.AlterTable); ok {
			alter = a
		}
	}
	if alter == nil {
		t.Fatalf("expected an AlterTable change, got %#v", changes)
	}
	if len(alter.Operations) != 1 {
		t.Fatalf("expected exactly one column op, got %d", len(alter.Operations))
	}
	add, ok := alter.Operations[0].(change.AddColumn)
	if !ok {
		t.Fatalf("expected AddColumn, got %#v", alter.Operations[0])
	}
	if add.Column.Name != "email" || add.Column.DataType != "text" || !add.Column.Nullable {
		t.Errorf("unexpected AddColumn payload: %#v", add.Column)
	}
}

func TestDiffCreateSchemaTableIndex(t *testing.T) {
	source := emptyCatalog(t)
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	target.Tables["t:public.users"] = &catalog.Table{Schema: "public", Name: "users"}
	target.Columns["col:public.users.id"] = &catalog.Column{Schema: "public", Table: "users", Name: "id", Position: 1, DataType: "int"}
	target.Indexes["i:public.users_id_idx"] = &catalog.Index{Schema: "public", Table: "users", Name: "users_id_idx", Definition: "CREATE INDEX users_id_idx ON public.users (id)"}

	changes := Diff(source, target)
	kinds := map[change.Kind]bool{}
	for _, c := range changes {
		kinds[c.Kind()] = true
	}
	for _, want := range []change.Kind{change.KindSchema, change.KindTable, change.KindIndex} {
		if !kinds[want] {
			t.Errorf("expected a %s change, got %#v", want, changes)
		}
	}
}

func TestDiffDropWithDependentIndex(t *testing.T) {
	source := emptyCatalog(t)
	source.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	source.Tables["t:public.users"] = &catalog.Table{Schema: "public", Name: "users"}
	source.Indexes["i:public.users_id_idx"] = &catalog.Index{Schema: "public", Table: "users", Name: "users_id_idx", Definition: "CREATE INDEX users_id_idx ON public.users (id)"}
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}

	changes := Diff(source, target)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes (drop table, drop index), got %d: %#v", len(changes), changes)
	}
	for _, c := range changes {
		if c.Operation() != change.OpDrop {
			t.Errorf("expected only drops, got %#v", c)
		}
	}
}

func TestDiffViewReplacement(t *testing.T) {
	source := emptyCatalog(t)
	source.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	source.Views["v:public.active_users"] = &catalog.View{Schema: "public", Name: "active_users", Definition: "SELECT id FROM users WHERE active"}
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	target.Views["v:public.active_users"] = &catalog.View{Schema: "public", Name: "active_users", Definition: "SELECT id, email FROM users WHERE active"}

	changes := Diff(source, target)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %#v", len(changes), changes)
	}
	if _, ok := changes[0].(*change.ReplaceView); !ok {
		t.Fatalf("expected ReplaceView, got %#v", changes[0])
	}
}

func TestDiffNoChangesWhenIdentical(t *testing.T) {
	source := emptyCatalog(t)
	source.Schemas["s:public"] = &catalog.Schema{Name: "public", Owner: "postgres"}
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public", Owner: "postgres"}

	changes := Diff(source, target)
	if len(changes) != 0 {
		t.Fatalf("expected no changes for identical catalogs, got %#v", changes)
	}
}

func TestDiffEnumAppendUsesAlterTypeAddValue(t *testing.T) {
	source := emptyCatalog(t)
	source.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	source.Types["typ:public.status"] = &catalog.Type{Schema: "public", Name: "status", Kind: catalog.TypeEnum, Labels: []string{"active", "inactive"}}
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	target.Types["typ:public.status"] = &catalog.Type{Schema: "public", Name: "status", Kind: catalog.TypeEnum, Labels: []string{"active", "inactive", "archived"}}

	changes := Diff(source, target)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %#v", len(changes), changes)
	}
	add, ok := changes[0].(*change.AlterTypeAddValue)
	if !ok {
		t.Fatalf("expected AlterTypeAddValue, got %#v", changes[0])
	}
	if add.Value != "archived" {
		t.Errorf("expected archived, got %s", add.Value)
	}
}

func TestDiffEnumReorderDropsAndRecreates(t *testing.T) {
	source := emptyCatalog(t)
	source.Types["typ:public.status"] = &catalog.Type{Schema: "public", Name: "status", Kind: catalog.TypeEnum, Labels: []string{"active", "inactive"}}
	target := emptyCatalog(t)
	target.Types["typ:public.status"] = &catalog.Type{Schema: "public", Name: "status", Kind: catalog.TypeEnum, Labels: []string{"inactive", "active"}}

	changes := Diff(source, target)
	if len(changes) != 2 {
		t.Fatalf("expected drop+create for reordered enum, got %d: %#v", len(changes), changes)
	}
	if changes[0].Operation() != change.OpDrop || changes[1].Operation() != change.OpCreate {
		t.Fatalf("expected drop then create, got %#v", changes)
	}
}

func TestDiffCreateTableOrdersColumnsByPosition(t *testing.T) {
	source := emptyCatalog(t)
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	target.Tables["t:public.widgets"] = &catalog.Table{Schema: "public", Name: "widgets"}
	// Inserted out of alphabetical order: id, zcode, aemail by position.
	target.Columns["col:public.widgets.zcode"] = &catalog.Column{Schema: "public", Table: "widgets", Name: "zcode", Position: 2, DataType: "text"}
	target.Columns["col:public.widgets.aemail"] = &catalog.Column{Schema: "public", Table: "widgets", Name: "aemail", Position: 3, DataType: "text"}
	target.Columns["col:public.widgets.id"] = &catalog.Column{Schema: "public", Table: "widgets", Name: "id", Position: 1, DataType: "int"}

	changes := Diff(source, target)

	var create *change.CreateTable
	for _, c := range changes {
		if ct, ok := c.(*change.CreateTable); ok {
			create = ct
		}
	}
	if create == nil {
		t.Fatalf("expected a CreateTable change, got %#v", changes)
	}
	got := make([]string, len(create.Columns))
	for i, c := range create.Columns {
		got[i] = c.Name
	}
	want := []string{"id", "zcode", "aemail"}
	if len(got) != len(want) {
		t.Fatalf("column count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected columns in position order %v, got %v", want, got)
		}
	}
}

func TestDiffCreateSequenceEmitsOwnedBy(t *testing.T) {
	source := emptyCatalog(t)
	target := emptyCatalog(t)
	target.Schemas["s:public"] = &catalog.Schema{Name: "public"}
	target.Tables["t:public.widgets"] = &catalog.Table{Schema: "public", Name: "widgets"}
	target.Sequences["S:public.widgets_id_seq"] = &catalog.Sequence{
		Schema: "public", Name: "widgets_id_seq", DataType: "bigint",
		Increment: 1, CacheSize: 1, OwnedByTable: "widgets", OwnedByColumn: "id",
	}

	changes := Diff(source, target)

	var create *change.CreateSequence
	var owner *change.SetSequenceOwner
	createIdx, ownerIdx, tableIdx := -1, -1, -1
	for i, c := range changes {
		switch v := c.(type) {
		case *change.CreateSequence:
			create = v
			createIdx = i
		case *change.SetSequenceOwner:
			owner = v
			ownerIdx = i
		case *change.CreateTable:
			tableIdx = i
		}
	}
	if create == nil {
		t.Fatalf("expected a CreateSequence change, got %#v", changes)
	}
	if owner == nil {
		t.Fatalf("expected a SetSequenceOwner change, got %#v", changes)
	}
	if owner.OwnedByTable != "widgets" || owner.OwnedByColumn != "id" {
		t.Errorf("unexpected ownership payload: %#v", owner)
	}
	if owner.StableID() != create.StableID() {
		t.Errorf("expected SetSequenceOwner to share the sequence's stable_id, got %q vs %q", owner.StableID(), create.StableID())
	}
	if createIdx > ownerIdx {
		t.Errorf("expected CreateSequence before SetSequenceOwner in the unordered changeset, got indices %d, %d", createIdx, ownerIdx)
	}
	_ = tableIdx
}

func TestDiffConstraintValidateOnly(t *testing.T) {
	source := emptyCatalog(t)
	source.Constraints["c:public.orders.orders_amount_check"] = &catalog.Constraint{
		Schema: "public", Table: "orders", Name: "orders_amount_check",
		Kind: catalog.ConstraintCheck, Definition: "CHECK (amount > 0)", Validated: false,
	}
	target := emptyCatalog(t)
	target.Constraints["c:public.orders.orders_amount_check"] = &catalog.Constraint{
		Schema: "public", Table: "orders", Name: "orders_amount_check",
		Kind: catalog.ConstraintCheck, Definition: "CHECK (amount > 0)", Validated: true,
	}

	changes := Diff(source, target)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %#v", len(changes), changes)
	}
	alter, ok := changes[0].(*change.AlterConstraint)
	if !ok {
		t.Fatalf("expected AlterConstraint, got %#v", changes[0])
	}
	if !alter.Validate {
		t.Errorf("expected Validate=true, got %#v", alter)
	}
	if alter.SetDeferrable != nil || alter.SetInitiallyDeferred != nil {
		t.Errorf("expected no deferrability change, got %#v", alter)
	}
}

func TestDiffConstraintUnvalidateForcesRecreate(t *testing.T) {
	source := emptyCatalog(t)
	source.Constraints["c:public.orders.orders_amount_check"] = &catalog.Constraint{
		Schema: "public", Table: "orders", Name: "orders_amount_check",
		Kind: catalog.ConstraintCheck, Definition: "CHECK (amount > 0)", Validated: true,
	}
	target := emptyCatalog(t)
	target.Constraints["c:public.orders.orders_amount_check"] = &catalog.Constraint{
		Schema: "public", Table: "orders", Name: "orders_amount_check",
		Kind: catalog.ConstraintCheck, Definition: "CHECK (amount > 0)", Validated: false,
	}

	changes := Diff(source, target)
	if len(changes) != 2 {
		t.Fatalf("expected drop+create since a constraint can't be un-validated in place, got %d: %#v", len(changes), changes)
	}
	if changes[0].Operation() != change.OpDrop || changes[1].Operation() != change.OpCreate {
		t.Fatalf("expected drop then create, got %#v", changes)
	}
}
