// Package model defines the core domain types for finsage: the user's
// financial profile, the selectable advice topics, and the structured
// analysis returned by the advice service.
package model

// RiskLevel is the user's self-reported risk tolerance.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels lists all risk levels in display order.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// FinancialGoal is the user's primary savings goal.
type FinancialGoal string

const (
	GoalHouse      FinancialGoal = "House"
	GoalCar        FinancialGoal = "Car"
	GoalRetirement FinancialGoal = "Retirement"
	GoalWealth     FinancialGoal = "Wealth"
	GoalEducation  FinancialGoal = "Education"
)

// FinancialGoals lists all goals in display order.
var FinancialGoals = []FinancialGoal{GoalHouse, GoalCar, GoalRetirement, GoalWealth, GoalEducation}

// UserProfile holds the financial inputs collected in step one of the wizard.
// Fields are replaced whole; the wizard session owns the profile for the
// duration of one run.
type UserProfile struct {
	Age             int
	MonthlyIncome   float64
	MonthlyExpenses float64
	CurrentSavings  float64
	Risk            RiskLevel
	Goal            FinancialGoal
}

// DefaultProfile returns the profile the wizard starts a session with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Age:  30,
		Risk: RiskMedium,
		Goal: GoalWealth,
	}
}

// SavingsCapacity is the monthly amount left after expenses, floored at zero.
func (p UserProfile) SavingsCapacity() float64 {
	c := p.MonthlyIncome - p.MonthlyExpenses
	if c < 0 {
		return 0
	}
	return c
}

// BreakdownPart is one labeled slice of a cash-flow breakdown chart.
type BreakdownPart struct {
	Label string
	Value float64
}

// CashflowSplit returns the two-part monthly split used by the main chart:
// expenses versus savings capacity.
func (p UserProfile) CashflowSplit() []BreakdownPart {
	return []BreakdownPart{
		{Label: "Expenses", Value: p.MonthlyExpenses},
		{Label: "Savings Capacity", Value: p.SavingsCapacity()},
	}
}

// ContextBreakdown returns the three-part contextual breakdown, omitting any
// part whose value is not strictly positive.
func (p UserProfile) ContextBreakdown() []BreakdownPart {
	all := []BreakdownPart{
		{Label: "Expenses", Value: p.MonthlyExpenses},
		{Label: "Potential Savings", Value: p.SavingsCapacity()},
		{Label: "Current Savings (Total)", Value: p.CurrentSavings},
	}
	parts := make([]BreakdownPart, 0, len(all))
	for _, part := range all {
		if part.Value > 0 {
			parts = append(parts, part)
		}
	}
	return parts
}
