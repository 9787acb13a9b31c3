package advice

import (
	"fmt"
	"strings"

	"github.com/finsage-cli/finsage/internal/model"
)

// BuildPrompt renders the advice prompt for a profile and topic selection.
// The output is deterministic: topics appear in the fixed display order and
// all profile labels are the exact enum strings.
func BuildPrompt(p model.UserProfile, topics []model.Topic) string {
	labels := make([]string, len(topics))
	for i, t := range topics {
		labels[i] = string(t)
	}

	var b strings.Builder
	b.WriteString("You are a professional financial advisor. Analyze this financial profile and provide personalized advice.\n\n")
	b.WriteString("Profile:\n")
	fmt.Fprintf(&b, "- Age: %d\n", p.Age)
	fmt.Fprintf(&b, "- Monthly income: %.2f\n", p.MonthlyIncome)
	fmt.Fprintf(&b, "- Monthly expenses: %.2f\n", p.MonthlyExpenses)
	fmt.Fprintf(&b, "- Current savings: %.2f\n", p.CurrentSavings)
	fmt.Fprintf(&b, "- Monthly savings capacity: %.2f\n", p.SavingsCapacity())
	fmt.Fprintf(&b, "- Risk tolerance: %s\n", p.Risk)
	fmt.Fprintf(&b, "- Primary goal: %s\n\n", p.Goal)
	fmt.Fprintf(&b, "Topics of interest: %s\n\n", strings.Join(labels, ", "))
	b.WriteString("Return an overview of the overall financial situation, then one suggestion per topic of interest. ")
	b.WriteString("For each suggestion set \"field\" to the topic label, pick a status of Good, Warning, or Alert for how the profile looks in that area, ")
	b.WriteString("and give a short title, a concrete explanation, and a single actionable next step.")
	return b.String()
}
