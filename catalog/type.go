package catalog

// TypeKind distinguishes the three user-defined type shapes tracked.
// Ranges and base types are extraction targets pgdelta itself never
// supported and are out of scope here too.
type TypeKind string

const (
	TypeEnum      TypeKind = "enum"
	TypeComposite TypeKind = "composite"
	TypeDomain    TypeKind = "domain"
)

// Type represents a CREATE TYPE ... AS {ENUM|composite}, or CREATE DOMAIN.
// Enum value additions have an ALTER TYPE ... ADD VALUE path (append-only,
// no reordering or removal); composite and domain changes are always
// drop-then-create.
type Type struct {
	// identity
	Schema string
	Name   string

	// data
	Kind    TypeKind
	Labels  []string // TypeEnum: ordered label list
	Fields  []CompositeField // TypeComposite
	BaseType   string // TypeDomain: underlying type name
	NotNull    bool   // TypeDomain
	Default    *string // TypeDomain
	CheckExpr  string  // TypeDomain, empty if none

	// internal
	OID int64
}

// CompositeField is one attribute of a composite type.
type CompositeField struct {
	Name     string
	DataType string
}

func (t *Type) StableID() string {
	return PrefixType + ":" + QualifiedName(t.Schema, t.Name)
}

func (t *Type) SemanticEqual(other Entity) bool {
	o, ok := other.(*Type)
	if !ok {
		return false
	}
	if t.Schema != o.Schema || t.Name != o.Name || t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TypeEnum:
		return equalStringSlice(t.Labels, o.Labels)
	case TypeComposite:
		return equalCompositeFields(t.Fields, o.Fields)
	case TypeDomain:
		return t.BaseType == o.BaseType &&
			t.NotNull == o.NotNull &&
			equalStringPtr(t.Default, o.Default) &&
			t.CheckExpr == o.CheckExpr
	default:
		return false
	}
}

func equalCompositeFields(a, b []CompositeField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EnumAddedLabels returns the labels present in next but not in t, in next's
// order, for building an ALTER TYPE ... ADD VALUE change. It does not detect
// removals or reorderings, which have no equivalent ALTER path.
func (t *Type) EnumAddedLabels(next *Type) []string {
	existing := make(map[string]bool, len(t.Labels))
	for _, l := range t.Labels {
		existing[l] = true
	}
	var added []string
	for _, l := range next.Labels {
		if !existing[l] {
			added = append(added, l)
		}
	}
	return added
}

// EnumOnlyAppended reports whether next's labels are exactly t's labels plus
// zero or more appended-at-the-end entries, i.e. whether the difference
// between t and next can be expressed purely as ALTER TYPE ... ADD VALUE
// calls instead of a drop-and-recreate.
func (t *Type) EnumOnlyAppended(next *Type) bool {
	if len(next.Labels) < len(t.Labels) {
		return false
	}
	for i, l := range t.Labels {
		if next.Labels[i] != l {
			return false
		}
	}
	return true
}
