package catalog

// Trigger represents a pg_trigger entry. Definition is the captured
// pg_get_triggerdef() text; triggers have no ALTER-in-place path for
// timing/event/function changes so the differ treats any difference as
// drop-then-create.
type Trigger struct {
	// identity
	Schema string
	Table  string
	Name   string

	// data
	Definition   string
	FunctionName string

	// internal
	OID int64
}

func (t *Trigger) StableID() string {
	return PrefixTrigger + ":" + ScopedName(t.Schema, t.Table, t.Name)
}

func (t *Trigger) SemanticEqual(other Entity) bool {
	o, ok := other.(*Trigger)
	if !ok {
		return false
	}
	if t.Schema != o.Schema || t.Table != o.Table || t.Name != o.Name {
		return false
	}
	return t.Definition == o.Definition &&
		t.FunctionName == o.FunctionName
}
