package session

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/summary"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseRevealed
	phaseQuitConfirm
)

// SessionScreen drives one live practice session: question display, answer
// capture, reveal + self-grading, navigation, and the countdown.
type SessionScreen struct {
	manager   *practice.Manager
	sessionID string

	phase         phase
	choices       components.ChoiceList
	essay         textarea.Model
	bandCursor    int
	questionStart time.Time
	width         int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscInterceptor = (*SessionScreen)(nil)

// New creates a SessionScreen bound to an already-started session.
func New(manager *practice.Manager, sessionID string) *SessionScreen {
	s := &SessionScreen{
		manager:   manager,
		sessionID: sessionID,
	}
	s.syncQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	sess := s.manager.CurrentSession()
	if sess == nil {
		return "Practice"
	}
	return "Practice — " + sess.CategoryName
}

func (s *SessionScreen) HeaderStatus() string {
	return "⏱ " + layout.FormatClock(s.manager.Remaining())
}

func (s *SessionScreen) InterceptEsc() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "S", Description: "Save & end"},
			{Key: "D", Description: "Discard"},
			{Key: "Esc", Description: "Keep going"},
		}
	case phaseRevealed:
		if s.awaitingBand() {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Rate yourself"},
				{Key: "Enter", Description: "Confirm"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "P", Description: "Previous"},
			{Key: "Esc", Description: "End session"},
		}
	default:
		if s.currentQuestion().Format == bank.FormatEssay {
			return []layout.KeyHint{
				{Key: "Ctrl+S", Description: "Submit answer"},
				{Key: "Esc", Description: "End session"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "End session"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.essay.SetWidth(essayWidth(msg.Width))
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering && s.currentQuestion().Format == bank.FormatEssay {
		var cmd tea.Cmd
		s.essay, cmd = s.essay.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleTick() (screen.Screen, tea.Cmd) {
	res := s.manager.Tick(s.sessionID)
	if res.Ended != nil {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(s.manager, res.Ended, true)}
		}
	}

	sess := s.manager.CurrentSession()
	if sess == nil || sess.ID != s.sessionID {
		// Session was discarded elsewhere; stop ticking.
		return s, nil
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.phase == phaseQuitConfirm {
		switch key {
		case "s", "S":
			ended, err := s.manager.EndSession()
			if err != nil {
				return s, popCmd()
			}
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(s.manager, ended, true)}
			}
		case "d", "D":
			_ = s.manager.ResetSession()
			return s, popCmd()
		case "esc", "n", "N":
			s.phase = s.phaseForCurrent()
		}
		return s, nil
	}

	if key == "esc" {
		s.phase = phaseQuitConfirm
		return s, nil
	}

	if s.phase == phaseRevealed {
		return s.handleRevealedKey(key)
	}
	return s.handleAnsweringKey(msg)
}

func (s *SessionScreen) handleAnsweringKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.currentQuestion()

	if q.Format == bank.FormatMultipleChoice {
		switch msg.String() {
		case "p", "left", "h":
			_ = s.manager.PreviousQuestion()
			s.syncQuestion()
			return s, nil
		}
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		if s.choices.Locked {
			return s.submit(s.choices.PickedID)
		}
		return s, cmd
	}

	if msg.String() == "ctrl+s" {
		answer := strings.TrimSpace(s.essay.Value())
		if answer == "" {
			return s, nil
		}
		return s.submit(answer)
	}

	var cmd tea.Cmd
	s.essay, cmd = s.essay.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleRevealedKey(key string) (screen.Screen, tea.Cmd) {
	if s.awaitingBand() {
		bands := practice.AllBands()
		switch key {
		case "up", "k":
			if s.bandCursor > 0 {
				s.bandCursor--
			}
		case "down", "j":
			if s.bandCursor < len(bands)-1 {
				s.bandCursor++
			}
		case "enter":
			_ = s.manager.GradeEssay(s.currentQuestion().ID, bands[s.bandCursor])
		}
		return s, nil
	}

	switch key {
	case "enter", "n", "right", "l":
		return s.advance()
	case "p", "left", "h":
		// At the first question this is a no-op.
		_ = s.manager.PreviousQuestion()
		s.syncQuestion()
	}
	return s, nil
}

func (s *SessionScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	taken := int(time.Since(s.questionStart).Seconds())
	if err := s.manager.SubmitAnswer(answer, taken); err != nil {
		return s, nil
	}

	q := s.currentQuestion()
	if q.Format == bank.FormatMultipleChoice {
		correctID := ""
		if ch, ok := q.CorrectChoice(); ok {
			correctID = ch.ID
		}
		s.choices.Reveal(correctID)
	}

	s.phase = phaseRevealed
	s.bandCursor = 0
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.manager.NextQuestion(); err != nil {
		return s, nil
	}

	sess := s.manager.CurrentSession()
	if sess != nil && sess.IsComplete {
		// All questions seen; hand over to the summary, which decides
		// whether the run is saved to history or discarded.
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(s.manager, sess, false)}
		}
	}

	s.syncQuestion()
	return s, nil
}

// syncQuestion rebuilds input components for the current question and picks
// the phase based on whether it already has a submitted result.
func (s *SessionScreen) syncQuestion() {
	sess := s.manager.CurrentSession()
	if sess == nil {
		return
	}
	q := sess.CurrentQuestion()

	if q.Format == bank.FormatMultipleChoice {
		opts := make([]components.ChoiceOption, len(q.Choices))
		for i, c := range q.Choices {
			opts[i] = components.ChoiceOption{ID: c.ID, Text: c.Text}
		}
		s.choices = components.NewChoiceList(opts)
	} else {
		ta := textarea.New()
		ta.Placeholder = "Write your answer, then Ctrl+S to submit..."
		ta.SetWidth(essayWidth(s.width))
		ta.SetHeight(8)
		ta.Focus()
		s.essay = ta
	}

	s.bandCursor = 0
	s.questionStart = time.Now()
	s.phase = s.phaseForCurrent()

	// Re-entering an answered MC question shows the locked reveal state.
	if s.phase == phaseRevealed && q.Format == bank.FormatMultipleChoice {
		if i := sess.ResultFor(q.ID); i >= 0 {
			s.choices.PickedID = sess.Results[i].Answer
		}
		if ch, ok := q.CorrectChoice(); ok {
			s.choices.Reveal(ch.ID)
		}
	}
}

// phaseForCurrent returns revealed when the current question already has a
// result, answering otherwise.
func (s *SessionScreen) phaseForCurrent() phase {
	sess := s.manager.CurrentSession()
	if sess == nil {
		return phaseAnswering
	}
	if sess.Answered(sess.CurrentIndex) {
		return phaseRevealed
	}
	return phaseAnswering
}

// awaitingBand reports whether the current result is an ungraded essay
// waiting for a self-assessment.
func (s *SessionScreen) awaitingBand() bool {
	sess := s.manager.CurrentSession()
	if sess == nil {
		return false
	}
	q := sess.CurrentQuestion()
	if q.Format != bank.FormatEssay {
		return false
	}
	i := sess.ResultFor(q.ID)
	return i >= 0 && !sess.Results[i].Graded
}

func (s *SessionScreen) currentQuestion() bank.Question {
	sess := s.manager.CurrentSession()
	if sess == nil {
		return bank.Question{}
	}
	return sess.CurrentQuestion()
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func essayWidth(width int) int {
	w := components.ContentWidth(width) - 6
	if w < 20 {
		w = 20
	}
	return w
}
