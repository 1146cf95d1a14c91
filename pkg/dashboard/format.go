package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"personalityPairing/pkg/aggregate"
	"personalityPairing/pkg/profile"
	"personalityPairing/pkg/recommend"
)

// markdownEscaper backslash-escapes the entity markers of Telegram's legacy Markdown.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func FormatProfiles(profiles []profile.Profile) string {
	sb := new(strings.Builder)
	sb.WriteString("Personality types:\n")
	for _, p := range profiles {
		fmt.Fprintf(sb, "\n*%s* — %s (%s)", escapeMarkdown(p.Code), escapeMarkdown(p.Description), escapeMarkdown(p.Wine))
	}

	return sb.String()
}

func FormatRecommendation(rec *recommend.Recommendation) string {
	sb := new(strings.Builder)

	fmt.Fprintf(sb, "*%s* — %s %s\n",
		escapeMarkdown(rec.Profile.Code), escapeMarkdown(rec.Profile.Description), escapeMarkdown(rec.Profile.Color))
	fmt.Fprintf(sb, "Ideal wine: *%s*\n", escapeMarkdown(rec.Profile.Wine))

	if len(rec.Songs) > 0 {
		sb.WriteString("\nYour songs:\n")
		for _, s := range rec.Songs {
			fmt.Fprintf(sb, "- *%s* — _%s_\n", escapeMarkdown(s.Track), escapeMarkdown(s.Artist))
		}
	}

	if len(rec.Wines) > 0 {
		sb.WriteString("\nCompatible wines:\n")
		for _, w := range rec.Wines {
			fmt.Fprintf(sb, "- *%s* (%s) — %g pts\n", escapeMarkdown(w.Title), escapeMarkdown(w.Country), w.Points)
			if w.Description != "" {
				fmt.Fprintf(sb, "  %s\n", escapeMarkdown(w.Description))
			}
		}
	}

	for _, warn := range rec.Warnings {
		fmt.Fprintf(sb, "\n⚠ %s", escapeMarkdown(warn))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatSummary prints one line per group: the key, its size and the mean of every column.
func FormatSummary(s *aggregate.Summary) string {
	return formatRows(s.Columns, s.Rows)
}

func formatRows(columns []string, rows []aggregate.Row) string {
	if len(rows) == 0 {
		return "no data"
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		parts := make([]string, 0, len(columns))
		for _, c := range columns {
			parts = append(parts, fmt.Sprintf("%s=%s", c, formatMean(r, c)))
		}
		lines = append(lines, fmt.Sprintf("%s (%d): %s", r.Key, r.Count, strings.Join(parts, ", ")))
	}

	return strings.Join(lines, "\n")
}

// TopGroups returns the n groups with the highest mean of column, best first.
// The result is a ranking, not a Summary: Summary.Find needs key order.
func TopGroups(s *aggregate.Summary, column string, n int) []aggregate.Row {
	rows := make([]aggregate.Row, 0, s.Len())
	for _, r := range s.Rows {
		if _, ok := r.Mean(column); ok {
			rows = append(rows, r)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Means[column] > rows[j].Means[column]
	})
	if len(rows) > n {
		rows = rows[:n]
	}

	return rows
}

func formatMean(r aggregate.Row, column string) string {
	m, ok := r.Mean(column)
	if !ok {
		return "n/a"
	}

	return fmt.Sprintf("%.1f", math.Round(m*10)/10)
}
