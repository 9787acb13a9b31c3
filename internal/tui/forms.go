package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/finsage-cli/finsage/internal/model"
)

// formValues backs the huh forms. Numeric fields stay strings until the
// profile step completes so the user can edit freely.
type formValues struct {
	age      string
	income   string
	expenses string
	savings  string
	risk     model.RiskLevel
	goal     model.FinancialGoal
	topics   []model.Topic
}

func valuesFromProfile(p model.UserProfile) formValues {
	v := formValues{
		age:  strconv.Itoa(p.Age),
		risk: p.Risk,
		goal: p.Goal,
	}
	if p.MonthlyIncome > 0 {
		v.income = strconv.FormatFloat(p.MonthlyIncome, 'f', -1, 64)
	}
	if p.MonthlyExpenses > 0 {
		v.expenses = strconv.FormatFloat(p.MonthlyExpenses, 'f', -1, 64)
	}
	if p.CurrentSavings > 0 {
		v.savings = strconv.FormatFloat(p.CurrentSavings, 'f', -1, 64)
	}
	return v
}

// toProfile parses the collected strings. Empty money fields count as zero.
func (v formValues) toProfile() (model.UserProfile, error) {
	age, err := strconv.Atoi(strings.TrimSpace(v.age))
	if err != nil || age <= 0 {
		return model.UserProfile{}, errors.New("age must be a positive number")
	}

	parseMoney := func(s string) (float64, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, errors.New("amounts must be zero or more")
		}
		return f, nil
	}

	income, err := parseMoney(v.income)
	if err != nil {
		return model.UserProfile{}, err
	}
	expenses, err := parseMoney(v.expenses)
	if err != nil {
		return model.UserProfile{}, err
	}
	savings, err := parseMoney(v.savings)
	if err != nil {
		return model.UserProfile{}, err
	}

	return model.UserProfile{
		Age:             age,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		CurrentSavings:  savings,
		Risk:            v.risk,
		Goal:            v.goal,
	}, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

func validateMoney(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return errors.New("enter an amount of zero or more")
	}
	return nil
}

// newProfileForm builds the step-one form over the shared values.
func newProfileForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Age").
				Value(&v.age).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Monthly income").
				Placeholder("50000").
				Value(&v.income).
				Validate(validateMoney),
			huh.NewInput().
				Title("Monthly expenses").
				Placeholder("30000").
				Value(&v.expenses).
				Validate(validateMoney),
			huh.NewInput().
				Title("Current savings").
				Placeholder("10000").
				Value(&v.savings).
				Validate(validateMoney),
			huh.NewSelect[model.RiskLevel]().
				Title("Risk tolerance").
				Options(huh.NewOptions(model.RiskLevels...)...).
				Value(&v.risk),
			huh.NewSelect[model.FinancialGoal]().
				Title("Primary goal").
				Options(huh.NewOptions(model.FinancialGoals...)...).
				Value(&v.goal),
		).Title("Your financial profile"),
	)
}

// newTopicsForm builds the step-two multi-select over the shared values.
func newTopicsForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[model.Topic]().
				Title("Topics of interest").
				Description("Pick the areas you want advice on (esc to go back)").
				Options(huh.NewOptions(model.Topics...)...).
				Value(&v.topics),
		),
	)
}
