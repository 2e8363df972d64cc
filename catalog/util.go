package catalog

// QualifiedName joins a schema and an object name the way every stable_id
// does: "schema.name".
func QualifiedName(schema, name string) string {
	return schema + "." + name
}

// ScopedName joins a schema, an owning table, and an object name for
// table-scoped entities (columns, constraints, triggers, policies):
// "schema.table.name".
func ScopedName(schema, table, name string) string {
	return schema + "." + table + "." + name
}
