// Package render turns query results into plain terminal output: aligned
// tables, scaled bar charts and a shaded heatmap grid. It depends only on the
// analyze result types and tolerates empty inputs.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rmehra23/chatlens/internal/analyze"
)

// Table renders rows under a header line, columns padded to the widest cell.
// Widths are measured with runewidth so emoji and CJK cells stay aligned.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styleHeader.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styleDim.Render(strings.Repeat("-", w)))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// BarItem is one labeled count in a bar chart.
type BarItem struct {
	Label string
	Count int
}

// BarChart renders horizontal count bars scaled so the longest fits width
// columns. Empty input renders to an empty string.
func BarChart(items []BarItem, width int) string {
	if len(items) == 0 {
		return ""
	}
	if width <= 0 {
		width = 40
	}

	max := 0
	labelW := 0
	for _, it := range items {
		if it.Count > max {
			max = it.Count
		}
		if w := runewidth.StringWidth(it.Label); w > labelW {
			labelW = w
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, it := range items {
		n := it.Count * width / max
		if n == 0 && it.Count > 0 {
			n = 1
		}
		bar := styleBar.Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "%s  %s %d\n", pad(it.Label, labelW), bar, it.Count)
	}
	return b.String()
}

// shades map cell intensity to block characters, coolest to hottest.
var shades = []string{" ", "░", "▒", "▓", "█"}

// HeatmapGrid renders the weekday × hour matrix with shaded cells; the
// hottest cells use the densest block. All-zero grids render as blanks.
func HeatmapGrid(hm analyze.Heatmap) string {
	max := hm.MaxCount()

	var b strings.Builder
	dayW := 0
	for _, d := range hm.Days {
		if len(d) > dayW {
			dayW = len(d)
		}
	}

	// column header: two-digit start hour of each window
	b.WriteString(pad("", dayW))
	for _, p := range hm.Periods {
		b.WriteString(" " + styleDim.Render(p[:2]))
	}
	b.WriteString("\n")

	for r, day := range hm.Days {
		b.WriteString(pad(day, dayW))
		for c := range hm.Periods {
			b.WriteString(" " + cell(hm.Counts[r][c], max))
		}
		b.WriteString("\n")
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("peak cell: %d messages", max)))
	b.WriteString("\n")
	return b.String()
}

func cell(n, max int) string {
	if max == 0 || n == 0 {
		return shades[0] + shades[0]
	}
	idx := 1 + n*(len(shades)-2)/max
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	s := shades[idx] + shades[idx]
	if n == max {
		return styleHot.Render(s)
	}
	return styleBar.Render(s)
}
