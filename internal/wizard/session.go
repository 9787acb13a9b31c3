// Package wizard implements the linear state machine behind the finsage
// advice flow: collect a profile, pick topics, generate, show results.
// It holds no I/O; the TUI and the advise command drive it and run the
// advice call themselves.
package wizard

import (
	"fmt"

	"github.com/finsage-cli/finsage/internal/model"
)

// Step is the wizard's current position in the flow.
type Step int

const (
	// CollectingProfile is the initial step: the financial profile form.
	CollectingProfile Step = iota
	// SelectingTopics is the topic multi-select step.
	SelectingTopics
	// Loading means a generate request is in flight. No other transition
	// is accepted until it completes or fails.
	Loading
	// ShowingResults displays the stored analysis until restart.
	ShowingResults
)

// String returns the step name for logs and errors.
func (s Step) String() string {
	switch s {
	case CollectingProfile:
		return "collecting-profile"
	case SelectingTopics:
		return "selecting-topics"
	case Loading:
		return "loading"
	case ShowingResults:
		return "showing-results"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ValidationError blocks a transition without changing state. The message
// is shown to the user as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Session is one run of the wizard. Zero value is not usable; call New.
type Session struct {
	step    Step
	profile model.UserProfile
	topics  map[model.Topic]bool
	result  *model.AnalysisResult
}

// New returns a session at the profile step with default profile values.
func New() *Session {
	return &Session{
		step:    CollectingProfile,
		profile: model.DefaultProfile(),
		topics:  make(map[model.Topic]bool),
	}
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Profile returns the current profile.
func (s *Session) Profile() model.UserProfile { return s.profile }

// SetProfile replaces the profile wholesale. Only meaningful while
// collecting; later steps keep the profile frozen.
func (s *Session) SetProfile(p model.UserProfile) {
	if s.step == CollectingProfile {
		s.profile = p
	}
}

// Result returns the stored analysis, or nil before one completes.
func (s *Session) Result() *model.AnalysisResult { return s.result }

// Topics returns the selected topics in the fixed display order.
func (s *Session) Topics() []model.Topic {
	out := make([]model.Topic, 0, len(s.topics))
	for _, t := range model.Topics {
		if s.topics[t] {
			out = append(out, t)
		}
	}
	return out
}

// Selected reports whether t is currently selected.
func (s *Session) Selected(t model.Topic) bool { return s.topics[t] }

// ToggleTopic adds t to the selection, or removes it if already present.
func (s *Session) ToggleTopic(t model.Topic) {
	if s.topics[t] {
		delete(s.topics, t)
		return
	}
	s.topics[t] = true
}

// SetTopics replaces the selection wholesale, dropping duplicates.
func (s *Session) SetTopics(topics []model.Topic) {
	s.topics = make(map[model.Topic]bool, len(topics))
	for _, t := range topics {
		s.topics[t] = true
	}
}

// Next advances from the profile step to topic selection. The profile must
// have positive monthly income; otherwise a ValidationError is returned and
// the session stays put.
func (s *Session) Next() error {
	if s.step != CollectingProfile {
		return fmt.Errorf("wizard: next not defined from %s", s.step)
	}
	if s.profile.MonthlyIncome <= 0 {
		return &ValidationError{Msg: "Monthly income must be greater than zero."}
	}
	s.step = SelectingTopics
	return nil
}

// Back returns from topic selection to the profile step. Step one has no
// back target.
func (s *Session) Back() error {
	if s.step != SelectingTopics {
		return fmt.Errorf("wizard: back not defined from %s", s.step)
	}
	s.step = CollectingProfile
	return nil
}

// BeginGenerate moves from topic selection into Loading. At least one topic
// must be selected. A second call while already Loading is rejected, which
// is what keeps duplicate in-flight requests out.
func (s *Session) BeginGenerate() error {
	if s.step == Loading {
		return fmt.Errorf("wizard: generate already in flight")
	}
	if s.step != SelectingTopics {
		return fmt.Errorf("wizard: generate not defined from %s", s.step)
	}
	if len(s.topics) == 0 {
		return &ValidationError{Msg: "Select at least one topic to get advice on."}
	}
	s.step = Loading
	return nil
}

// CompleteGenerate stores the result and moves to ShowingResults.
func (s *Session) CompleteGenerate(result model.AnalysisResult) error {
	if s.step != Loading {
		return fmt.Errorf("wizard: complete not defined from %s", s.step)
	}
	s.result = &result
	s.step = ShowingResults
	return nil
}

// FailGenerate discards the in-flight request and returns to topic
// selection. Profile and topic selection are preserved so the user can
// retry without re-entering anything.
func (s *Session) FailGenerate() error {
	if s.step != Loading {
		return fmt.Errorf("wizard: fail not defined from %s", s.step)
	}
	s.step = SelectingTopics
	return nil
}

// Restart returns from results to the profile step, clearing the topic
// selection and the stored result. Profile fields are kept so a repeat run
// starts from the same numbers.
func (s *Session) Restart() error {
	if s.step != ShowingResults {
		return fmt.Errorf("wizard: restart not defined from %s", s.step)
	}
	s.step = CollectingProfile
	s.topics = make(map[model.Topic]bool)
	s.result = nil
	return nil
}
