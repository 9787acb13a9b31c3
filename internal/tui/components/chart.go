package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finsage-cli/finsage/internal/tui/theme"
)

// ChartSlice is one labeled, colored portion of a proportional chart.
type ChartSlice struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// SliceWidths splits barWidth proportionally across the slice values. Every
// slice with a positive value gets at least one cell; widths sum to barWidth.
func SliceWidths(slices []ChartSlice, barWidth int) []int {
	widths := make([]int, len(slices))
	if barWidth <= 0 {
		return widths
	}

	total := 0.0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total == 0 {
		return widths
	}

	used := 0
	last := -1
	for i, s := range slices {
		if s.Value <= 0 {
			continue
		}
		w := int(s.Value / total * float64(barWidth))
		if w < 1 {
			w = 1
		}
		widths[i] = w
		used += w
		last = i
	}

	// Push rounding error into the largest slice so the bar fills exactly
	if last >= 0 {
		largest := last
		for i, s := range slices {
			if widths[i] > 0 && s.Value > slices[largest].Value {
				largest = i
			}
		}
		widths[largest] += barWidth - used
		if widths[largest] < 1 {
			widths[largest] = 1
		}
	}

	return widths
}

// PieChart renders a proportional split as a stacked horizontal bar with a
// legend line per slice (label, value, share). Zero-value slices are skipped.
func PieChart(slices []ChartSlice, formatValue func(float64) string, width int) string {
	t := theme.Active

	total := 0.0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("no data to chart")
	}

	barWidth := width
	if barWidth < 10 {
		barWidth = 10
	}
	widths := SliceWidths(slices, barWidth)

	var bar strings.Builder
	for i, s := range slices {
		if widths[i] == 0 {
			continue
		}
		seg := lipgloss.NewStyle().Foreground(s.Color)
		bar.WriteString(seg.Render(strings.Repeat("█", widths[i])))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(bar.String())
	b.WriteString("\n")
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		dot := lipgloss.NewStyle().Foreground(s.Color).Render("■")
		pct := s.Value / total * 100
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			dot,
			labelStyle.Render(s.Label),
			valueStyle.Render(fmt.Sprintf("%s (%.0f%%)", formatValue(s.Value), pct)),
		))
	}

	return strings.TrimRight(b.String(), "\n")
}
