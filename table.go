package smbios

// Table owns a fully decoded structure table: the specification version the
// entry point reported and every structure in original buffer order.
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	Version Version

	structures []TypedStructure
	byHandle   map[Handle]TypedStructure
}

// Decode classifies a raw structure table buffer into a queryable Table.
//
// A malformed buffer yields one of the table-level sentinel errors together
// with a Table holding every structure decoded before the failure point;
// callers that cannot use partial data should discard the Table on error.
func Decode(data []byte, version Version) (*Table, error) {
	ss, err := DecodeStructures(data)

	t := &Table{
		Version:    version,
		structures: make([]TypedStructure, 0, len(ss)),
		byHandle:   make(map[Handle]TypedStructure, len(ss)),
	}
	for _, s := range ss {
		ts := classify(s)
		t.structures = append(t.structures, ts)
		// First occurrence wins; well-formed firmware does not reuse handles.
		if _, dup := t.byHandle[s.Handle]; !dup {
			t.byHandle[s.Handle] = ts
		}
	}

	return t, err
}

// All returns every decoded structure in original table order. The returned
// slice is shared; callers must not modify it.
func (t *Table) All() []TypedStructure {
	return t.structures
}

// FindByHandle resolves a cross-structure reference. A handle that no
// structure in this table carries is a normal miss, not an error: firmware
// dumps routinely contain dangling references.
func (t *Table) FindByHandle(h Handle) (TypedStructure, bool) {
	ts, ok := t.byHandle[h]
	return ts, ok
}

// First returns the first structure of the requested kind in table order.
// Singleton kinds such as SystemInformation have at most one match in
// well-formed tables, but this is not enforced.
func First[T TypedStructure](t *Table) (T, bool) {
	for _, ts := range t.structures {
		if v, ok := ts.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Collect returns every structure of the requested kind in table order.
func Collect[T TypedStructure](t *Table) []T {
	var out []T
	for _, ts := range t.structures {
		if v, ok := ts.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
