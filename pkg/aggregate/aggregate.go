// Package aggregate groups table rows by a categorical column and summarizes numeric columns per group.
package aggregate

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"personalityPairing/pkg/errs"
	"personalityPairing/pkg/table"
	"personalityPairing/pkg/utils"
)

type Row struct {
	Key   string
	Count int
	// Means holds only the columns for which at least one value of the group was numeric.
	Means map[string]float64
	// Samples counts the numeric values behind each mean.
	Samples map[string]int
}

func (r Row) Mean(column string) (float64, bool) {
	m, ok := r.Means[column]
	return m, ok
}

type Summary struct {
	KeyColumn string
	Columns   []string
	Rows      []Row
}

func (s *Summary) Len() int {
	return len(s.Rows)
}

func (s *Summary) Keys() []string {
	keys := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		keys[i] = r.Key
	}
	return keys
}

func (s *Summary) Counts() []int {
	counts := make([]int, len(s.Rows))
	for i, r := range s.Rows {
		counts[i] = r.Count
	}
	return counts
}

// Series returns the means of column in key order with NaN for groups without numeric values.
func (s *Summary) Series(column string) []float64 {
	res := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		m, ok := r.Mean(column)
		if !ok {
			m = math.NaN()
		}
		res[i] = m
	}
	return res
}

// Find looks key up with a binary search, so Rows must be in key order as Aggregate leaves them.
func (s *Summary) Find(key string) (Row, bool) {
	i := sort.Search(len(s.Rows), func(i int) bool { return s.Rows[i].Key >= key })
	if i < len(s.Rows) && s.Rows[i].Key == key {
		return s.Rows[i], true
	}
	return Row{}, false
}

type accumulator struct {
	count int
	sums  map[string]float64
	n     map[string]int
}

// Aggregate partitions t by keyColumn and computes the per-group mean of every value column.
// Rows with a missing key are skipped, values that do not coerce to a number are left out of
// the mean while their row still counts. Rows are ordered by key.
// Only a column that is not part of the table schema is an error.
func Aggregate(t *table.Table, keyColumn string, columns []string) (*Summary, error) {
	e := errs.NewMulti()
	if !t.Has(keyColumn) {
		e.Err("unknown group key column %q", keyColumn)
	}
	for _, c := range columns {
		if !t.Has(c) {
			e.Err("unknown value column %q", c)
		}
	}
	if e.HasErrors() {
		return nil, errors.Wrap(e, "failed to aggregate")
	}

	groups := map[string]*accumulator{}
	for _, r := range t.Rows() {
		if r.IsNull(keyColumn) {
			continue
		}
		key := utils.ParseStr(r[keyColumn])

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{sums: map[string]float64{}, n: map[string]int{}}
			groups[key] = acc
		}
		acc.count++

		for _, c := range columns {
			v, ok := r.Float(c)
			if !ok {
				continue
			}
			acc.sums[c] += v
			acc.n[c]++
		}
	}

	s := &Summary{
		KeyColumn: keyColumn,
		Columns:   append([]string{}, columns...),
		Rows:      make([]Row, 0, len(groups)),
	}

	for key, acc := range groups {
		row := Row{
			Key:     key,
			Count:   acc.count,
			Means:   make(map[string]float64, len(columns)),
			Samples: make(map[string]int, len(columns)),
		}
		for _, c := range columns {
			if acc.n[c] == 0 {
				continue
			}
			row.Means[c] = acc.sums[c] / float64(acc.n[c])
			row.Samples[c] = acc.n[c]
		}
		s.Rows = append(s.Rows, row)
	}

	sort.Slice(s.Rows, func(i, j int) bool { return s.Rows[i].Key < s.Rows[j].Key })

	return s, nil
}
