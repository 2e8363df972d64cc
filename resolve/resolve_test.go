package resolve

import (
	"errors"
	"testing"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/pgerr"
)

func TestResolveEmptyChangeset(t *testing.T) {
	out, err := Resolve(nil, &catalog.Catalog{}, &catalog.Catalog{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}

func TestResolveOrdersDependencyBeforeDependent(t *testing.T) {
	// index depends on its table; both being created, table must come first.
	changes := []change.Change{
		&change.CreateIndex{ID: "i:public.users_email_idx", Schema: "public", Table: "users", Name: "users_email_idx"},
		&change.CreateTable{ID: "t:public.users", Schema: "public", Name: "users"},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "i:public.users_email_idx", Referenced: "t:public.users", Origin: catalog.OriginTarget},
		},
	}
	out, err := Resolve(changes, &catalog.Catalog{}, target, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].StableID() != "t:public.users" {
		t.Fatalf("expected table created before index, got order %v, %v", out[0].StableID(), out[1].StableID())
	}
}

func TestResolveInvertsSequenceBeforeTable(t *testing.T) {
	// pg_depend reports the sequence as depending on the table (ownership),
	// but on create the table's column default needs the sequence to exist
	// first — the inversion rule must flip this.
	changes := []change.Change{
		&change.CreateTable{ID: "t:public.orders", Schema: "public", Name: "orders"},
		&change.CreateSequence{ID: "S:public.orders_id_seq", Schema: "public", Name: "orders_id_seq"},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "S:public.orders_id_seq", Referenced: "t:public.orders", Origin: catalog.OriginTarget},
		},
	}
	out, err := Resolve(changes, &catalog.Catalog{}, target, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].StableID() != "S:public.orders_id_seq" {
		t.Fatalf("expected sequence created before table, got %v then %v", out[0].StableID(), out[1].StableID())
	}
}

func TestResolveOrdersSetSequenceOwnerAfterTable(t *testing.T) {
	// Full identity-column create shape: sequence before table (inversion
	// rule), but the OWNED BY statement itself must come after the table it
	// names, since it references the table's column directly.
	changes := []change.Change{
		&change.CreateTable{ID: "t:public.orders", Schema: "public", Name: "orders"},
		&change.CreateSequence{ID: "S:public.orders_id_seq", Schema: "public", Name: "orders_id_seq"},
		&change.SetSequenceOwner{ID: "S:public.orders_id_seq", Schema: "public", Name: "orders_id_seq", OwnedByTable: "orders", OwnedByColumn: "id"},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "S:public.orders_id_seq", Referenced: "t:public.orders", Origin: catalog.OriginTarget},
		},
	}
	out, err := Resolve(changes, &catalog.Catalog{}, target, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := make(map[string]int, len(out))
	for i, c := range out {
		if _, ok := c.(*change.SetSequenceOwner); ok {
			pos["owner"] = i
			continue
		}
		pos[c.StableID()] = i
	}
	if pos["S:public.orders_id_seq"] >= pos["t:public.orders"] {
		t.Fatalf("expected sequence created before table, got order %v", out)
	}
	if pos["owner"] <= pos["t:public.orders"] {
		t.Fatalf("expected OWNED BY statement after the table it references, got order %v", out)
	}
	if pos["owner"] <= pos["S:public.orders_id_seq"] {
		t.Fatalf("expected OWNED BY statement after CreateSequence (same-object priority), got order %v", out)
	}
}

func TestResolveDropsDependentBeforeDependency(t *testing.T) {
	changes := []change.Change{
		&change.DropTable{ID: "t:public.users", Schema: "public", Name: "users"},
		&change.DropIndex{ID: "i:public.users_email_idx", Schema: "public", Table: "users", Name: "users_email_idx"},
	}
	source := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "i:public.users_email_idx", Referenced: "t:public.users", Origin: catalog.OriginSource},
		},
	}
	out, err := Resolve(changes, source, &catalog.Catalog{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].StableID() != "i:public.users_email_idx" {
		t.Fatalf("expected index dropped before table, got %v then %v", out[0].StableID(), out[1].StableID())
	}
}

func TestResolveSameObjectDropBeforeCreate(t *testing.T) {
	changes := []change.Change{
		&change.CreateView{ID: "v:public.active_users", Schema: "public", Name: "active_users", Definition: "SELECT 1"},
		&change.DropView{ID: "v:public.active_users", Schema: "public", Name: "active_users"},
	}
	out, err := Resolve(changes, &catalog.Catalog{}, &catalog.Catalog{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out[0].(*change.DropView); !ok {
		t.Fatalf("expected drop before create for same object, got %#v first", out[0])
	}
}

func TestResolveDeterministicTieBreak(t *testing.T) {
	changes := []change.Change{
		&change.CreateTable{ID: "t:public.b", Schema: "public", Name: "b"},
		&change.CreateTable{ID: "t:public.a", Schema: "public", Name: "a"},
	}
	out1, err := Resolve(changes, &catalog.Catalog{}, &catalog.Catalog{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := Resolve(changes, &catalog.Catalog{}, &catalog.Catalog{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out1[0].StableID() != out2[0].StableID() || out1[1].StableID() != out2[1].StableID() {
		t.Fatal("expected deterministic ordering across repeated resolves of the same input")
	}
	// no constraint between them: original emission order (b, a) wins.
	if out1[0].StableID() != "t:public.b" {
		t.Fatalf("expected original emission order preserved for unconstrained nodes, got %v first", out1[0].StableID())
	}
}

func TestResolveHonorsReversedDependencyInTargetOnly(t *testing.T) {
	// Source has a -> b (a selects from b); target reverses it to b -> a.
	// Neither snapshot has a cycle. Only the live target edge should drive
	// ordering: b must be replaced before a. A stale source-only edge must
	// never be allowed to also fire and flip the result.
	changes := []change.Change{
		&change.ReplaceView{ID: "v:public.a", Schema: "public", Name: "a", Definition: "SELECT 1"},
		&change.ReplaceView{ID: "v:public.b", Schema: "public", Name: "b", Definition: "SELECT * FROM public.a"},
	}
	source := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "v:public.a", Referenced: "v:public.b", Origin: catalog.OriginSource},
		},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "v:public.b", Referenced: "v:public.a", Origin: catalog.OriginTarget},
		},
	}
	out, err := Resolve(changes, source, target, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].StableID() != "v:public.a" {
		t.Fatalf("expected a replaced before b (target's b->a edge), got %v then %v", out[0].StableID(), out[1].StableID())
	}
}

func TestResolveReportsCycle(t *testing.T) {
	changes := []change.Change{
		&change.ReplaceView{ID: "v:public.a", Schema: "public", Name: "a", Definition: "SELECT * FROM public.b"},
		&change.ReplaceView{ID: "v:public.b", Schema: "public", Name: "b", Definition: "SELECT * FROM public.a"},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "v:public.a", Referenced: "v:public.b", Origin: catalog.OriginTarget},
			{Dependent: "v:public.b", Referenced: "v:public.a", Origin: catalog.OriginTarget},
		},
	}
	_, err := Resolve(changes, &catalog.Catalog{}, target, nil)
	if err == nil {
		t.Fatal("expected cyclic dependency error")
	}
	var cycleErr *pgerr.CyclicDependencyError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *pgerr.CyclicDependencyError, got %T: %v", err, err)
	}
	if len(cycleErr.Cycles) == 0 {
		t.Fatal("expected at least one reported cycle")
	}
	found := false
	for _, c := range cycleErr.Cycles {
		s := c.String()
		if containsAll(s, "v:public.a", "v:public.b") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cycle report to name both views, got %+v", cycleErr.Cycles)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !contains(s, sub) {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
