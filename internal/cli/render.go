package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finsage-cli/finsage/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// StatusColor maps a suggestion status to its display color.
func StatusColor(s model.SuggestionStatus) lipgloss.Color {
	switch s {
	case model.StatusGood:
		return ColorGreen
	case model.StatusWarning:
		return ColorOrange
	case model.StatusAlert:
		return ColorRed
	}
	return ColorTextMuted
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width)
	return border.Render(titleStyle.Width(width).Render(title))
}

// RenderProfile renders the profile summary lines for the advise command.
func RenderProfile(p model.UserProfile, currency string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Profile"))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render(fmt.Sprintf("%-18s", label)), valueStyle.Render(value)))
	}
	row("Age", fmt.Sprintf("%d", p.Age))
	row("Monthly income", FormatMoney(currency, p.MonthlyIncome))
	row("Monthly expenses", FormatMoney(currency, p.MonthlyExpenses))
	row("Current savings", FormatMoney(currency, p.CurrentSavings))
	row("Savings capacity", FormatMoney(currency, p.SavingsCapacity())+"/mo")
	row("Risk tolerance", string(p.Risk))
	row("Goal", string(p.Goal))
	return b.String()
}

// RenderBreakdown renders a labeled proportional bar per breakdown part.
func RenderBreakdown(title string, parts []model.BreakdownPart, currency string, barWidth int) string {
	if len(parts) == 0 {
		return ""
	}
	if barWidth < 10 {
		barWidth = 10
	}

	maxVal := 0.0
	for _, p := range parts {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, p := range parts {
		w := int(p.Value / maxVal * float64(barWidth))
		if w < 1 {
			w = 1
		}
		bar := strings.Repeat("█", w) + strings.Repeat("░", barWidth-w)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-24s", p.Label)),
			lipgloss.NewStyle().Foreground(ColorAccent).Render(bar),
			valueStyle.Render(FormatMoney(currency, p.Value)),
		))
	}
	return b.String()
}

// RenderAnalysis renders the full advise output: overview plus one block per
// suggestion in received order.
func RenderAnalysis(result model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Overview"))
	b.WriteString("\n")
	b.WriteString("  " + valueStyle.Render(wrap(result.Overview, 76)))
	b.WriteString("\n\n")

	for _, s := range result.Suggestions {
		statusStyle := lipgloss.NewStyle().Foreground(StatusColor(s.Status)).Bold(true)
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			statusStyle.Render("● "+string(s.Status)),
			headerStyle.Render(s.Title),
			dimStyle.Render("["+s.Field+"]"),
		))
		b.WriteString("  " + valueStyle.Render(wrap(s.Content, 76)) + "\n")
		b.WriteString("  " + lipgloss.NewStyle().Foreground(ColorAccent).Render("→ "+s.ActionItem) + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// wrap breaks text into lines of at most width runes, indented to match the
// two-space body indent.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n  ")
}
