package table

import (
	"strings"

	"personalityPairing/pkg/errs"
)

// Field is a logical column resolved against the first candidate present in a table.
type Field struct {
	Name       string
	Candidates []string
	Optional   bool
}

type Schema struct {
	Name   string
	Fields []Field
}

// Binding maps logical field names to the concrete columns of one table.
type Binding map[string]string

// Column returns the concrete column for field, "" when an optional field was not found.
func (b Binding) Column(field string) string {
	return b[field]
}

func (b Binding) Has(field string) bool {
	return b[field] != ""
}

// Bind resolves every field once. All required fields with no matching column are
// reported together.
func (s Schema) Bind(t *Table) (Binding, error) {
	b := make(Binding, len(s.Fields))
	e := errs.NewMulti()

	for _, f := range s.Fields {
		candidates := f.Candidates
		if len(candidates) == 0 {
			candidates = []string{f.Name}
		}

		for _, c := range candidates {
			if t.Has(c) {
				b[f.Name] = c
				break
			}
		}

		if !b.Has(f.Name) && !f.Optional {
			e.Err("%s table: no column for %q, expected one of [%s]", s.Name, f.Name, strings.Join(candidates, ", "))
		}
	}

	if e.HasErrors() {
		return nil, e
	}

	return b, nil
}
