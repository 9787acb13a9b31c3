// Package tui provides the interactive Bubble Tea wizard for finsage.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/finsage-cli/finsage/internal/advice"
	"github.com/finsage-cli/finsage/internal/config"
	"github.com/finsage-cli/finsage/internal/model"
	"github.com/finsage-cli/finsage/internal/tui/theme"
	"github.com/finsage-cli/finsage/internal/wizard"
)

// adviceMsg is sent when the advice request completes, ok or not.
type adviceMsg struct {
	result model.AnalysisResult
	err    error
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
)

// App is the root Bubble Tea model. It owns one wizard session and drives
// the three-step flow: profile form, topic selection, results.
type App struct {
	session *wizard.Session
	client  *advice.Client
	cfg     config.Config

	// Active huh form for the current step, nil while loading or on results
	form *huh.Form
	vals formValues

	spinner spinner.Model
	errMsg  string

	width  int
	height int
	scroll int // results view line offset
}

// NewApp creates the wizard TUI model.
func NewApp(cfg config.Config, client *advice.Client) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	session := wizard.New()
	a := App{
		session: session,
		client:  client,
		cfg:     cfg,
		spinner: sp,
	}
	a.vals = valuesFromProfile(session.Profile())
	a.form = newProfileForm(&a.vals)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.form.Init(), a.spinner.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.session.Step() {
		case wizard.SelectingTopics:
			// Step two can go back to the profile form
			if key == "esc" {
				if err := a.session.Back(); err == nil {
					a.errMsg = ""
					a.vals = valuesFromProfile(a.session.Profile())
					a.vals.topics = a.session.Topics()
					a.form = newProfileForm(&a.vals).WithWidth(a.contentWidth())
					return a, a.form.Init()
				}
			}

		case wizard.Loading:
			// No transitions while the request is in flight
			return a, nil

		case wizard.ShowingResults:
			return a.updateResults(key)
		}

	case adviceMsg:
		if msg.err != nil {
			// Back to topic selection; profile and topics survive for retry
			_ = a.session.FailGenerate()
			a.errMsg = failureNotice(msg.err)
			a.form = newTopicsForm(&a.vals).WithWidth(a.contentWidth())
			return a, a.form.Init()
		}
		_ = a.session.CompleteGenerate(msg.result)
		a.errMsg = ""
		a.form = nil
		a.scroll = 0
		return a, nil

	case spinner.TickMsg:
		if a.session.Step() == wizard.Loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a.updateForm(msg)
}

// updateForm forwards a message to the active form and handles completion.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}
	if a.form.State != huh.StateCompleted {
		return a, cmd
	}

	switch a.session.Step() {
	case wizard.CollectingProfile:
		return a.completeProfileStep()
	case wizard.SelectingTopics:
		return a.completeTopicsStep()
	}
	return a, cmd
}

// completeProfileStep applies the form values and advances to topics.
func (a App) completeProfileStep() (tea.Model, tea.Cmd) {
	profile, err := a.vals.toProfile()
	if err != nil {
		// Field validators should make this unreachable; re-show the form
		a.errMsg = err.Error()
		a.form = newProfileForm(&a.vals).WithWidth(a.contentWidth())
		return a, a.form.Init()
	}

	a.session.SetProfile(profile)
	if err := a.session.Next(); err != nil {
		a.errMsg = err.Error()
		a.form = newProfileForm(&a.vals).WithWidth(a.contentWidth())
		return a, a.form.Init()
	}

	a.errMsg = ""
	a.session.SetTopics(a.vals.topics)
	a.form = newTopicsForm(&a.vals).WithWidth(a.contentWidth())
	return a, a.form.Init()
}

// completeTopicsStep stores the selection and fires the advice request.
func (a App) completeTopicsStep() (tea.Model, tea.Cmd) {
	a.session.SetTopics(a.vals.topics)
	if err := a.session.BeginGenerate(); err != nil {
		a.errMsg = err.Error()
		a.form = newTopicsForm(&a.vals).WithWidth(a.contentWidth())
		return a, a.form.Init()
	}

	a.errMsg = ""
	a.form = nil
	return a, tea.Batch(a.spinner.Tick, generateCmd(a.client, a.session.Profile(), a.session.Topics()))
}

// updateResults handles keys on the results screen.
func (a App) updateResults(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		if err := a.session.Restart(); err == nil {
			a.errMsg = ""
			a.scroll = 0
			a.vals = valuesFromProfile(a.session.Profile())
			a.form = newProfileForm(&a.vals).WithWidth(a.contentWidth())
			return a, a.form.Init()
		}
	case "j", "down":
		a.scroll++
	case "k", "up":
		if a.scroll > 0 {
			a.scroll--
		}
	case "g":
		a.scroll = 0
	}
	return a, nil
}

// generateCmd runs the single advice request off the UI loop.
func generateCmd(client *advice.Client, p model.UserProfile, topics []model.Topic) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Generate(context.Background(), p, topics)
		return adviceMsg{result: result, err: err}
	}
}

// failureNotice maps client errors to the message shown above the form.
func failureNotice(err error) string {
	if errors.Is(err, advice.ErrMissingAPIKey) {
		return err.Error()
	}
	return "Could not generate advice. Check your connection and try again."
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	if cw < minTerminalWidth {
		cw = minTerminalWidth
	}
	return cw
}
