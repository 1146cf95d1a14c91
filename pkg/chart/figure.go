// Package chart turns aggregated summaries into column-oriented figure descriptions
// that plotly-compatible front-ends render as is.
package chart

import (
	"encoding/json"
	"math"
	"strconv"

	"personalityPairing/pkg/aggregate"
)

type Trace struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Mode string `json:"mode,omitempty"`

	X []string   `json:"x,omitempty"`
	Y []*float64 `json:"y,omitempty"`

	Locations    []string   `json:"locations,omitempty"`
	LocationMode string     `json:"locationmode,omitempty"`
	Z            []*float64 `json:"z,omitempty"`
	Text         []string   `json:"text,omitempty"`
	ColorScale   string     `json:"colorscale,omitempty"`
}

type Axis struct {
	Title string `json:"title,omitempty"`
}

type Geo struct {
	Projection string `json:"projection,omitempty"`
	ShowFrame  bool   `json:"showframe"`
}

type Layout struct {
	Title string `json:"title,omitempty"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
	Geo   *Geo   `json:"geo,omitempty"`
}

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

func (f *Figure) JSON() ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// nullable turns NaN gaps into JSON nulls.
func nullable(values []float64) []*float64 {
	res := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		res[i] = &v
	}
	return res
}

// Line draws one line with markers per summary column over the group keys.
func Line(s *aggregate.Summary, title string) *Figure {
	f := &Figure{
		Data: make([]Trace, 0, len(s.Columns)),
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: s.KeyColumn},
			YAxis: &Axis{Title: "mean"},
		},
	}

	keys := s.Keys()
	for _, c := range s.Columns {
		f.Data = append(f.Data, Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: c,
			X:    keys,
			Y:    nullable(s.Series(c)),
		})
	}

	return f
}

// Choropleth colors countries, the summary keys, by the mean of column.
func Choropleth(s *aggregate.Summary, column, title string) *Figure {
	counts := s.Counts()
	hover := make([]string, len(counts))
	for i, r := range s.Rows {
		hover[i] = r.Key + ": " + plural(counts[i], "review")
	}

	return &Figure{
		Data: []Trace{{
			Type:         "choropleth",
			Name:         column,
			Locations:    s.Keys(),
			LocationMode: "country names",
			Z:            nullable(s.Series(column)),
			Text:         hover,
			ColorScale:   "Reds",
		}},
		Layout: Layout{
			Title: title,
			Geo:   &Geo{Projection: "natural earth"},
		},
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
