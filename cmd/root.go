package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/finsage-cli/finsage/internal/advice"
	"github.com/finsage-cli/finsage/internal/config"
	"github.com/finsage-cli/finsage/internal/tui"
	"github.com/finsage-cli/finsage/internal/tui/theme"
)

var (
	flagModel   string
	flagBaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "finsage",
	Short: "AI financial advice wizard for the terminal",
	Long: "Walk through a short financial profile, pick the topics you care about,\n" +
		"and get structured, actionable advice rendered right in your terminal.",
	RunE: runWizard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagModel, "model", "m", "", "Override the generation model")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Override the advice service base URL")
}

// newClient builds the advice client from config plus flag overrides.
func newClient(cfg config.Config) *advice.Client {
	opts := advice.Options{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout(),
	}
	if flagModel != "" {
		opts.Model = flagModel
	}
	if flagBaseURL != "" {
		opts.BaseURL = flagBaseURL
	}
	return advice.NewClient(opts)
}

func runWizard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, newClient(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
