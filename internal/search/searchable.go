package search

// Field is one labeled piece of searchable text derived from a record.
type Field struct {
	Name  string
	Value string
}

// Searchable is the capability a record type exposes to the engine: an
// ordered list of labeled text fields. The order is stable per record type
// but carries no meaning for matching; weights are looked up by field name.
type Searchable interface {
	SearchFields() []Field
}
