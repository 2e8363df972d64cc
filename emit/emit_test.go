package emit

import (
	"strings"
	"testing"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/pgerr"
)

func TestEmitAddColumn(t *testing.T) {
	c := &change.AlterTable{
		Schema: "public", Name: "users",
		Operations: []change.ColumnOp{
			change.AddColumn{Column: change.ColumnDef{Name: "email", DataType: "text", Nullable: true}},
		},
	}
	got := Emit(c)
	want := `ALTER TABLE "public"."users" ADD COLUMN "email" text;`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitCreateSchema(t *testing.T) {
	got := Emit(&change.CreateSchema{Name: "reporting"})
	if got != `CREATE SCHEMA "reporting";` {
		t.Errorf("unexpected: %s", got)
	}
}

func TestEmitDropTable(t *testing.T) {
	got := Emit(&change.DropTable{Schema: "public", Name: "users"})
	if got != `DROP TABLE "public"."users";` {
		t.Errorf("unexpected: %s", got)
	}
}

func TestEmitReplaceViewSubstitutesCreatePrefix(t *testing.T) {
	got := Emit(&change.ReplaceView{Schema: "public", Name: "active_users", Definition: "SELECT id FROM users"})
	if !strings.HasPrefix(got, "CREATE OR REPLACE VIEW") {
		t.Errorf("expected CREATE OR REPLACE VIEW prefix, got %s", got)
	}
}

func TestEmitReplaceFunctionReusesDefinitionText(t *testing.T) {
	def := `CREATE FUNCTION public.f() RETURNS int LANGUAGE sql AS $$ SELECT 1 $$`
	got := Emit(&change.ReplaceFunction{Schema: "public", Name: "f", Definition: def})
	if !strings.HasPrefix(got, "CREATE OR REPLACE FUNCTION") {
		t.Errorf("expected CREATE OR REPLACE FUNCTION prefix, got %s", got)
	}
	if !strings.Contains(got, "SELECT 1") {
		t.Errorf("expected captured body reused verbatim, got %s", got)
	}
}

func TestEmitReplaceMaterializedViewDropsThenCreates(t *testing.T) {
	got := Emit(&change.ReplaceMaterializedView{Schema: "public", Name: "mv", Definition: "SELECT 1"})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two statements, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "DROP MATERIALIZED VIEW") {
		t.Errorf("expected DROP first, got %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "CREATE MATERIALIZED VIEW") {
		t.Errorf("expected CREATE second, got %s", lines[1])
	}
}

func TestEmitSetSequenceOwner(t *testing.T) {
	got := Emit(&change.SetSequenceOwner{Schema: "public", Name: "orders_id_seq", OwnedByTable: "orders", OwnedByColumn: "id"})
	want := `ALTER SEQUENCE "public"."orders_id_seq" OWNED BY "orders"."id";`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitAlterConstraintValidateOnly(t *testing.T) {
	got := Emit(&change.AlterConstraint{Schema: "public", Table: "orders", Name: "orders_amount_check", Validate: true})
	want := `ALTER TABLE "public"."orders" VALIDATE CONSTRAINT "orders_amount_check";`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitAlterConstraintDeferrabilityAndValidate(t *testing.T) {
	deferrable := true
	got := Emit(&change.AlterConstraint{Schema: "public", Table: "orders", Name: "orders_amount_check", SetDeferrable: &deferrable, Validate: true})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two statements, got %v", lines)
	}
	if !strings.Contains(lines[0], "ALTER CONSTRAINT") {
		t.Errorf("expected deferrability clause first, got %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `ALTER TABLE "public"."orders" VALIDATE CONSTRAINT`) {
		t.Errorf("expected VALIDATE CONSTRAINT second, got %s", lines[1])
	}
}

func TestEmitPanicsOnUnsupportedChange(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unsupported change variant")
		}
		if _, ok := r.(*pgerr.UnsupportedChangeError); !ok {
			t.Fatalf("expected *pgerr.UnsupportedChangeError, got %T", r)
		}
	}()
	Emit(unsupportedChange{})
}

type unsupportedChange struct{}

func (unsupportedChange) StableID() string       { return "x" }
func (unsupportedChange) Kind() change.Kind      { return change.KindTable }
func (unsupportedChange) Operation() change.Operation { return change.OpCreate }

func TestEmitAllPreservesOrder(t *testing.T) {
	changes := []change.Change{
		&change.CreateSchema{Name: "a"},
		&change.CreateSchema{Name: "b"},
	}
	got := EmitAll(changes)
	if len(got) != 2 || got[0] != `CREATE SCHEMA "a";` || got[1] != `CREATE SCHEMA "b";` {
		t.Errorf("unexpected: %v", got)
	}
}
