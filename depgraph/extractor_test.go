package depgraph

import (
	"testing"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func TestExtractForChangesetBoundsDepth(t *testing.T) {
	// chain: a -> b -> c -> d, changeset touches only "a".
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "a", Referenced: "b"},
			{Dependent: "b", Referenced: "c"},
			{Dependent: "c", Referenced: "d"},
		},
	}
	source := &catalog.Catalog{}

	e := &Extractor{MaxDepth: 2}
	model := e.ExtractForChangeset(source, target, []string{"a"})

	deps := model.DependenciesOf("a", catalog.OriginTarget)
	if len(deps) != 1 || deps[0] != "b" {
		t.Fatalf("DependenciesOf(a) = %v, want [b]", deps)
	}
	// depth 2 from "a" reaches b then c, but not d.
	if got := model.DependenciesOf("b", catalog.OriginTarget); len(got) != 1 || got[0] != "c" {
		t.Fatalf("DependenciesOf(b) = %v, want [c]", got)
	}
	if got := model.DependenciesOf("c", catalog.OriginTarget); len(got) != 0 {
		t.Fatalf("expected c->d edge to fall outside depth 2, got %v", got)
	}
}

func TestExtractForChangesetDropsUnknownEndpoints(t *testing.T) {
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "a", Referenced: "unknown.16384"},
		},
	}
	e := NewExtractor()
	model := e.ExtractForChangeset(&catalog.Catalog{}, target, []string{"a"})
	if edges := model.Edges(); len(edges) != 0 {
		t.Fatalf("expected unknown-prefixed endpoint to be dropped, got %v", edges)
	}
}

func TestExtractForChangesetTagsOrigin(t *testing.T) {
	source := &catalog.Catalog{
		Dependencies: []catalog.Dependency{{Dependent: "a", Referenced: "b"}},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{{Dependent: "a", Referenced: "c"}},
	}
	model := NewExtractor().ExtractForChangeset(source, target, []string{"a"})

	if deps := model.DependenciesOf("a", catalog.OriginSource); len(deps) != 1 || deps[0] != "b" {
		t.Fatalf("source deps = %v, want [b]", deps)
	}
	if deps := model.DependenciesOf("a", catalog.OriginTarget); len(deps) != 1 || deps[0] != "c" {
		t.Fatalf("target deps = %v, want [c]", deps)
	}
}

func TestExtractForChangesetKeepsIdenticalEdgeFromBothCatalogs(t *testing.T) {
	// The dependency a -> b is unchanged between source and target: both
	// catalogs report the identical (dependent, referenced) pair. Both
	// origin-tagged copies must survive, not just the first one added.
	source := &catalog.Catalog{
		Dependencies: []catalog.Dependency{{Dependent: "a", Referenced: "b"}},
	}
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{{Dependent: "a", Referenced: "b"}},
	}
	model := NewExtractor().ExtractForChangeset(source, target, []string{"a"})

	if deps := model.DependenciesOf("a", catalog.OriginSource); len(deps) != 1 || deps[0] != "b" {
		t.Fatalf("source deps = %v, want [b]", deps)
	}
	if deps := model.DependenciesOf("a", catalog.OriginTarget); len(deps) != 1 || deps[0] != "b" {
		t.Fatalf("target deps = %v, want [b]", deps)
	}
	if edges := model.Edges(); len(edges) != 2 {
		t.Fatalf("expected both origin-tagged copies of a->b to be kept, got %v", edges)
	}
}

func TestExtractForChangesetDepthThreeChain(t *testing.T) {
	// policy -> function -> type -> function, verifying the configurable
	// MaxDepth reaches a third-hop object a default depth of 2 would miss.
	target := &catalog.Catalog{
		Dependencies: []catalog.Dependency{
			{Dependent: "p:public.orders.rls", Referenced: "f:public.check_owner()"},
			{Dependent: "f:public.check_owner()", Referenced: "typ:public.owner_kind"},
			{Dependent: "typ:public.owner_kind", Referenced: "f:public.owner_kind_in()"},
		},
	}
	e := &Extractor{MaxDepth: 3}
	model := e.ExtractForChangeset(&catalog.Catalog{}, target, []string{"p:public.orders.rls"})

	deps := model.DependenciesOf("typ:public.owner_kind", catalog.OriginTarget)
	if len(deps) != 1 || deps[0] != "f:public.owner_kind_in()" {
		t.Fatalf("expected depth-3 chain to reach owner_kind_in, got %v", deps)
	}
}
