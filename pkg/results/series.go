package results

import (
	"github.com/pkg/errors"
)

// Series is one measured quantity, one value per result row.
type Series struct {
	Name   string
	Values []float64
}

// Len returns number of values.
func (s Series) Len() int {
	return len(s.Values)
}

// Column returns a copy of column index as series called name.
func (t *Table) Column(index int, name string) (Series, error) {
	if index < 0 || index >= t.Width() {
		return Series{}, errors.Errorf("column %d (%s) is out of range for %q with %d columns", index, name, t.Path, t.Width())
	}

	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[index]
	}
	return Series{Name: name, Values: values}, nil
}

// Named returns column called name according to schema.
func (t *Table) Named(schema Schema, name string) (Series, error) {
	index := schema.Index(name)
	if index < 0 {
		return Series{}, errors.Errorf("schema %s has no column %q", schema.Name, name)
	}
	return t.Column(index, name)
}
