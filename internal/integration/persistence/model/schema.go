// Package model defines database models and schema descriptors for the persistence layer.
package model

import "reflect"

// Row is a flat column-name to value mapping of a single database record.
type Row map[string]interface{}

// Schema statically describes an entity's table: its name, primary-key
// column, and the set of writable columns. The generic entity store takes
// table and column identifiers exclusively from a Schema value, never from
// caller input, so all caller-supplied data stays in bound parameters.
type Schema struct {
	Table      string
	PrimaryKey string
	Columns    []string
}

// SelectColumns returns the explicit column list for reads: the primary
// key followed by every writable column.
func (s Schema) SelectColumns() []string {
	cols := make([]string, 0, len(s.Columns)+1)
	cols = append(cols, s.PrimaryKey)
	cols = append(cols, s.Columns...)
	return cols
}

// FilterWritable reduces values to the schema's writable column subset.
// The primary key and any collection-typed values are dropped; what
// remains is exactly what an insert or update statement may bind.
func (s Schema) FilterWritable(values Row) Row {
	filtered := make(Row, len(s.Columns))
	for _, col := range s.Columns {
		value, ok := values[col]
		if !ok || isCollection(value) {
			continue
		}
		filtered[col] = value
	}
	return filtered
}

// isCollection reports whether value is a slice, array or map. Scalar
// columns only; a collection slipping into a row would silently change
// the statement shape.
func isCollection(value interface{}) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
