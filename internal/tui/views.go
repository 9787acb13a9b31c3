package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finsage-cli/finsage/internal/cli"
	"github.com/finsage-cli/finsage/internal/model"
	"github.com/finsage-cli/finsage/internal/tui/components"
	"github.com/finsage-cli/finsage/internal/tui/theme"
	"github.com/finsage-cli/finsage/internal/wizard"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols), finsage needs at least %d.\n", a.width, minTerminalWidth)
	}

	var b strings.Builder
	b.WriteString(a.viewHeader())

	if a.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		b.WriteString(errStyle.Render("  ! " + a.errMsg))
		b.WriteString("\n\n")
	}

	switch a.session.Step() {
	case wizard.Loading:
		b.WriteString(a.viewLoading())
	case wizard.ShowingResults:
		b.WriteString(a.viewResults())
	default:
		if a.form != nil {
			b.WriteString(a.form.View())
		}
	}

	return b.String()
}

func (a App) viewHeader() string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◆ finsage")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · " + a.stepLabel())
	return "\n  " + logo + sub + "\n\n"
}

func (a App) stepLabel() string {
	switch a.session.Step() {
	case wizard.CollectingProfile:
		return "step 1 of 3 · profile"
	case wizard.SelectingTopics:
		return "step 2 of 3 · topics"
	case wizard.Loading:
		return "generating advice"
	case wizard.ShowingResults:
		return "your advice"
	}
	return ""
}

func (a App) viewLoading() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	var b strings.Builder
	b.WriteString("  " + a.spinner.View() + muted.Render(" Analyzing your profile..."))
	b.WriteString("\n\n")
	b.WriteString(muted.Render(fmt.Sprintf("  %d topics selected · one request, no retries", len(a.session.Topics()))))
	b.WriteString("\n")
	return b.String()
}

func (a App) viewResults() string {
	result := a.session.Result()
	if result == nil {
		return ""
	}

	t := theme.Active
	cw := a.contentWidth() - 4
	profile := a.session.Profile()
	currency := a.cfg.Advice.Currency
	money := func(v float64) string { return cli.FormatMoney(currency, v) }

	var b strings.Builder

	// Metric cards: the numbers the advice was based on
	cards := []struct{ Label, Value string }{
		{"Income", money(profile.MonthlyIncome) + "/mo"},
		{"Expenses", money(profile.MonthlyExpenses) + "/mo"},
		{"Capacity", money(profile.SavingsCapacity()) + "/mo"},
		{"Saved", money(profile.CurrentSavings)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Overview", wrapTo(result.Overview, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Cash-flow pie plus the positive-only context breakdown
	split := chartSlices(profile.CashflowSplit(), []lipgloss.Color{t.Red, t.Green})
	pie := components.PieChart(split, money, components.CardInnerWidth(cw))
	b.WriteString(components.ContentCard("Monthly Cash Flow", pie, cw))
	b.WriteString("\n")

	ctx := chartSlices(profile.ContextBreakdown(), []lipgloss.Color{t.Red, t.Green, t.Blue})
	if len(ctx) > 0 {
		b.WriteString(components.ContentCard("Savings Context", components.PieChart(ctx, money, components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
	}

	for _, s := range result.Suggestions {
		b.WriteString(components.SuggestionCard(s.Field, string(s.Status), s.Title, s.Content, s.ActionItem, statusColor(s.Status), cw))
		b.WriteString("\n")
	}

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("  j/k scroll · r restart · q quit")
	body := b.String() + hint + "\n"

	return clipLines(body, a.scroll, a.height-4)
}

// chartSlices pairs breakdown parts with theme colors, cycling if short.
func chartSlices(parts []model.BreakdownPart, colors []lipgloss.Color) []components.ChartSlice {
	slices := make([]components.ChartSlice, len(parts))
	for i, p := range parts {
		slices[i] = components.ChartSlice{
			Label: p.Label,
			Value: p.Value,
			Color: colors[i%len(colors)],
		}
	}
	return slices
}

func statusColor(s model.SuggestionStatus) lipgloss.Color {
	t := theme.Active
	switch s {
	case model.StatusGood:
		return t.Green
	case model.StatusWarning:
		return t.Orange
	case model.StatusAlert:
		return t.Red
	}
	return t.TextMuted
}

// wrapTo breaks text into lines of at most width runes.
func wrapTo(text string, width int) string {
	if width < 10 {
		width = 10
	}
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
	return strings.Join(lines, "\n")
}

// clipLines shows height lines of s starting at offset, clamping the offset
// so the last page stays full.
func clipLines(s string, offset, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
