package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finsage-cli/finsage/internal/cli"
	"github.com/finsage-cli/finsage/internal/config"
	"github.com/finsage-cli/finsage/internal/model"
	"github.com/finsage-cli/finsage/internal/wizard"
)

var (
	flagAge      int
	flagIncome   float64
	flagExpenses float64
	flagSavings  float64
	flagRisk     string
	flagGoal     string
	flagTopics   []string
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate advice non-interactively from flags",
	Long: "Run the whole pipeline in one shot: validate the profile, call the\n" +
		"advice service, and print the analysis. Useful for scripting.",
	RunE: runAdvise,
}

func init() {
	adviseCmd.Flags().IntVar(&flagAge, "age", 30, "Age in years")
	adviseCmd.Flags().Float64Var(&flagIncome, "income", 0, "Monthly income")
	adviseCmd.Flags().Float64Var(&flagExpenses, "expenses", 0, "Monthly expenses")
	adviseCmd.Flags().Float64Var(&flagSavings, "savings", 0, "Current total savings")
	adviseCmd.Flags().StringVar(&flagRisk, "risk", "Medium", "Risk tolerance: Low, Medium, or High")
	adviseCmd.Flags().StringVar(&flagGoal, "goal", "Wealth", "Goal: House, Car, Retirement, Wealth, or Education")
	adviseCmd.Flags().StringSliceVarP(&flagTopics, "topics", "t", nil, "Topics of interest (repeatable)")
	rootCmd.AddCommand(adviseCmd)
}

// parseFlagProfile validates the enum flags and assembles the profile.
func parseFlagProfile() (model.UserProfile, error) {
	risk := model.RiskLevel(flagRisk)
	switch risk {
	case model.RiskLow, model.RiskMedium, model.RiskHigh:
	default:
		return model.UserProfile{}, fmt.Errorf("unknown risk level %q", flagRisk)
	}

	goal := model.FinancialGoal(flagGoal)
	switch goal {
	case model.GoalHouse, model.GoalCar, model.GoalRetirement, model.GoalWealth, model.GoalEducation:
	default:
		return model.UserProfile{}, fmt.Errorf("unknown goal %q", flagGoal)
	}

	if flagAge <= 0 {
		return model.UserProfile{}, fmt.Errorf("age must be positive")
	}
	if flagIncome < 0 || flagExpenses < 0 || flagSavings < 0 {
		return model.UserProfile{}, fmt.Errorf("amounts must be zero or more")
	}

	return model.UserProfile{
		Age:             flagAge,
		MonthlyIncome:   flagIncome,
		MonthlyExpenses: flagExpenses,
		CurrentSavings:  flagSavings,
		Risk:            risk,
		Goal:            goal,
	}, nil
}

func parseFlagTopics() ([]model.Topic, error) {
	topics := make([]model.Topic, 0, len(flagTopics))
	for _, label := range flagTopics {
		t, ok := model.ParseTopic(label)
		if !ok {
			return nil, fmt.Errorf("unknown topic %q (run 'finsage topics' for the list)", label)
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	profile, err := parseFlagProfile()
	if err != nil {
		return err
	}
	topics, err := parseFlagTopics()
	if err != nil {
		return err
	}

	// Same guards the interactive wizard enforces
	session := wizard.New()
	session.SetProfile(profile)
	if err := session.Next(); err != nil {
		return err
	}
	session.SetTopics(topics)
	if err := session.BeginGenerate(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "  Generating advice for %d topics...\n", len(topics))

	result, err := newClient(cfg).Generate(context.Background(), profile, topics)
	if err != nil {
		_ = session.FailGenerate()
		return err
	}
	_ = session.CompleteGenerate(result)

	currency := cfg.Advice.Currency
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderTitle("finsage · Financial Advice"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderProfile(profile, currency))
	fmt.Fprintln(out, cli.RenderBreakdown("Monthly Cash Flow", profile.CashflowSplit(), currency, 30))
	if parts := profile.ContextBreakdown(); len(parts) > 0 {
		fmt.Fprintln(out, cli.RenderBreakdown("Savings Context", parts, currency, 30))
	}
	fmt.Fprintln(out, cli.RenderAnalysis(result))

	return nil
}
