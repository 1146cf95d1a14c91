// Package table holds the in-memory tabular model the recommenders and the aggregator work on.
// A Table is never changed after it is built: every filter, sort or sample returns a new Table.
package table

import (
	"math/rand"
	"sort"

	"personalityPairing/pkg/utils"
)

// Record is a single row. A missing cell is nil.
type Record map[string]interface{}

func (r Record) Get(column string) (interface{}, bool) {
	v, ok := r[column]
	return v, ok
}

func (r Record) IsNull(column string) bool {
	return r[column] == nil
}

// String returns "" for missing cells.
func (r Record) String(column string) string {
	return utils.ParseStr(r[column])
}

// Float coerces the cell to a number; text that is not numeric reports false.
func (r Record) Float(column string) (float64, bool) {
	return utils.ParseFloat(r[column])
}

func (r Record) clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

type Table struct {
	columns []string
	index   map[string]int
	rows    []Record
}

// New builds a table with the given schema. Cells of columns outside the schema are dropped
// and schema columns absent from a row become nil.
func New(columns []string, rows ...Record) *Table {
	t := &Table{
		columns: append([]string{}, columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([]Record, 0, len(rows)),
	}
	for i, c := range t.columns {
		t.index[c] = i
	}

	for _, r := range rows {
		row := make(Record, len(t.columns))
		for _, c := range t.columns {
			row[c] = r[c]
		}
		t.rows = append(t.rows, row)
	}

	return t
}

func (t *Table) derive(rows []Record) *Table {
	return &Table{columns: t.columns, index: t.index, rows: rows}
}

func (t *Table) Columns() []string {
	return append([]string{}, t.columns...)
}

func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns a copy of the i-th record.
func (t *Table) Row(i int) Record {
	return t.rows[i].clone()
}

// Rows returns copies of all records in order.
func (t *Table) Rows() []Record {
	res := make([]Record, len(t.rows))
	for i, r := range t.rows {
		res[i] = r.clone()
	}
	return res
}

// Column returns the values of one column in row order, nil when the column is unknown.
func (t *Table) Column(name string) []interface{} {
	if !t.Has(name) {
		return nil
	}

	res := make([]interface{}, len(t.rows))
	for i, r := range t.rows {
		res[i] = r[name]
	}
	return res
}

// Filter keeps the rows pred accepts. pred receives the stored record and must not modify it.
func (t *Table) Filter(pred func(Record) bool) *Table {
	rows := make([]Record, 0, len(t.rows))
	for _, r := range t.rows {
		if pred(r) {
			rows = append(rows, r)
		}
	}
	return t.derive(rows)
}

// SortBy orders rows by the numeric value of column. The sort is stable and rows whose
// value is not numeric go last regardless of direction.
func (t *Table) SortBy(column string, desc bool) *Table {
	rows := append([]Record{}, t.rows...)

	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := rows[i].Float(column)
		b, bok := rows[j].Float(column)
		switch {
		case !aok:
			return false
		case !bok:
			return true
		case desc:
			return a > b
		default:
			return a < b
		}
	})

	return t.derive(rows)
}

func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return t.derive(append([]Record{}, t.rows[:n]...))
}

// Sample picks n distinct rows at random. When n covers the whole table every row is
// returned in random order.
func (t *Table) Sample(n int, rnd *rand.Rand) *Table {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	if n <= 0 {
		return t.derive([]Record{})
	}

	rows := make([]Record, 0, n)
	for _, i := range rnd.Perm(len(t.rows))[:n] {
		rows = append(rows, t.rows[i])
	}
	return t.derive(rows)
}
