package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalityPairing/pkg/aggregate"
	"personalityPairing/pkg/profile"
	"personalityPairing/pkg/recommend"
)

func TestFormatRecommendation(t *testing.T) {
	p, _ := profile.Lookup("ENTP")
	rec := &recommend.Recommendation{
		Profile: p,
		Songs:   []recommend.Song{{Track: "Flowers", Artist: "Miley Cyrus"}},
		Wines:   []recommend.Wine{{Title: "Pale One", Country: "France", Points: 88}},
	}

	expected := "*ENTP* — Innovative, talkative, curious #ffcce6\n" +
		"Ideal wine: *Rosé*\n" +
		"\nYour songs:\n" +
		"- *Flowers* — _Miley Cyrus_\n" +
		"\nCompatible wines:\n" +
		"- *Pale One* (France) — 88 pts"

	assert.Equal(t, expected, FormatRecommendation(rec))
}

func TestFormatRecommendationEscapesMarkdown(t *testing.T) {
	p, _ := profile.Lookup("INFP")
	rec := &recommend.Recommendation{
		Profile: p,
		Songs:   []recommend.Song{{Track: "*NSYNC_Mix", Artist: "[x]`y`"}},
		Wines: []recommend.Wine{{
			Title:       "Domaine_du *Clos*",
			Country:     "US",
			Points:      90,
			Description: "notes of [red] fruit_",
		}},
		Warnings: []string{"no match for Pinot_Noir"},
	}

	out := FormatRecommendation(rec)
	assert.Contains(t, out, "- *\\*NSYNC\\_Mix* — _\\[x]\\`y\\`_\n")
	assert.Contains(t, out, "- *Domaine\\_du \\*Clos\\** (US) — 90 pts\n")
	assert.Contains(t, out, "  notes of \\[red] fruit\\_\n")
	assert.Contains(t, out, "⚠ no match for Pinot\\_Noir")
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, "plain text", escapeMarkdown("plain text"))
	assert.Equal(t, "a\\_b\\*c\\`d\\[e]", escapeMarkdown("a_b*c`d[e]"))
}

func TestFormatSummary(t *testing.T) {
	s := &aggregate.Summary{
		KeyColumn: "country",
		Columns:   []string{"points", "price"},
		Rows: []aggregate.Row{
			{Key: "Chile", Count: 3, Means: map[string]float64{"points": 86.66666}},
			{Key: "US", Count: 1, Means: map[string]float64{"points": 90, "price": 12.25}},
		},
	}

	assert.Equal(t, "Chile (3): points=86.7, price=n/a\nUS (1): points=90.0, price=12.3", FormatSummary(s))
	assert.Equal(t, "no data", FormatSummary(&aggregate.Summary{}))
}

func TestTopGroups(t *testing.T) {
	s := &aggregate.Summary{
		Columns: []string{"points"},
		Rows: []aggregate.Row{
			{Key: "A", Means: map[string]float64{"points": 80}},
			{Key: "B", Means: map[string]float64{}},
			{Key: "C", Means: map[string]float64{"points": 95}},
			{Key: "D", Means: map[string]float64{"points": 90}},
		},
	}

	top := TopGroups(s, "points", 2)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].Key)
	assert.Equal(t, "D", top[1].Key)
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.Keys())
	assert.Equal(t, "C (0): points=95.0\nD (0): points=90.0", formatRows(s.Columns, top))

	// the source summary stays key-ordered, so lookups keep working
	row, ok := s.Find("D")
	require.True(t, ok)
	assert.Equal(t, 90.0, row.Means["points"])
}
