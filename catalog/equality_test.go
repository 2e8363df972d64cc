package catalog

import "testing"

func TestMapsSemanticEqualDetectsMissingKey(t *testing.T) {
	left := map[string]*Schema{"s:public": {Name: "public"}}
	right := map[string]*Schema{}
	if MapsSemanticEqual(left, right) {
		t.Fatal("expected inequality for differing key sets")
	}
}

func TestMapsSemanticEqualIgnoresInternalFields(t *testing.T) {
	left := map[string]*Schema{"s:public": {Name: "public", Owner: "postgres", OID: 1}}
	right := map[string]*Schema{"s:public": {Name: "public", Owner: "postgres", OID: 2}}
	if !MapsSemanticEqual(left, right) {
		t.Fatal("expected equality; OID is internal and must not affect SemanticEqual")
	}
}

func TestStableIDPrefixes(t *testing.T) {
	cases := []struct {
		name   string
		entity Entity
		want   string
	}{
		{"schema", &Schema{Name: "public"}, "s:public"},
		{"table", &Table{Schema: "public", Name: "users"}, "t:public.users"},
		{"column", &Column{Schema: "public", Table: "users", Name: "id"}, "col:public.users.id"},
		{"index", &Index{Schema: "public", Table: "users", Name: "users_pkey"}, "i:public.users_pkey"},
		{"sequence", &Sequence{Schema: "public", Name: "users_id_seq"}, "S:public.users_id_seq"},
		{"extension", &Extension{Schema: "public", Name: "pgcrypto"}, "x:public.pgcrypto"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entity.StableID(); got != tc.want {
				t.Errorf("StableID() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTypeSemanticEqualEnum(t *testing.T) {
	a := &Type{Schema: "public", Name: "status", Kind: TypeEnum, Labels: []string{"active", "inactive"}}
	b := &Type{Schema: "public", Name: "status", Kind: TypeEnum, Labels: []string{"active", "inactive"}}
	c := &Type{Schema: "public", Name: "status", Kind: TypeEnum, Labels: []string{"active", "inactive", "archived"}}
	if !a.SemanticEqual(b) {
		t.Fatal("expected identical enums to be semantically equal")
	}
	if a.SemanticEqual(c) {
		t.Fatal("expected enums with different label sets to be semantically unequal")
	}
}

func TestEnumOnlyAppended(t *testing.T) {
	a := &Type{Labels: []string{"active", "inactive"}}
	appended := &Type{Labels: []string{"active", "inactive", "archived"}}
	reordered := &Type{Labels: []string{"inactive", "active"}}
	removed := &Type{Labels: []string{"active"}}

	if !a.EnumOnlyAppended(appended) {
		t.Error("expected append-only change to be detected")
	}
	if a.EnumOnlyAppended(reordered) {
		t.Error("expected reordering to not be append-only")
	}
	if a.EnumOnlyAppended(removed) {
		t.Error("expected removal to not be append-only")
	}
	if got := a.EnumAddedLabels(appended); len(got) != 1 || got[0] != "archived" {
		t.Errorf("EnumAddedLabels = %v, want [archived]", got)
	}
}
