package query

// FieldSet is a per-entity registry of queryable field names and the columns
// they resolve to. Each repository builds its set once at startup; the same
// set gates filtering and sorting, which is the security boundary that keeps
// caller-supplied names out of raw SQL.
type FieldSet struct {
	columns map[string]string
}

// NewFieldSet registers fields whose query name equals the column name.
func NewFieldSet(names ...string) FieldSet {
	columns := make(map[string]string, len(names))
	for _, name := range names {
		columns[name] = name
	}
	return FieldSet{columns: columns}
}

// WithColumn registers a field whose exposed name differs from its column.
func (fs FieldSet) WithColumn(name, column string) FieldSet {
	fs.columns[name] = column
	return fs
}

// Contains reports whether name is an allowed query field.
func (fs FieldSet) Contains(name string) bool {
	_, ok := fs.columns[name]
	return ok
}

// Resolve maps a query field name to its column.
func (fs FieldSet) Resolve(name string) (string, bool) {
	column, ok := fs.columns[name]
	return column, ok
}

// Len returns the number of registered fields.
func (fs FieldSet) Len() int {
	return len(fs.columns)
}
