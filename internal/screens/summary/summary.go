package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// SummaryScreen shows the results of a finished session. For a run that has
// not been committed yet it forces an explicit save-or-discard choice.
type SummaryScreen struct {
	manager   *practice.Manager
	session   *practice.PracticeSession
	committed bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscInterceptor = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the given session.
func New(manager *practice.Manager, session *practice.PracticeSession, committed bool) *SummaryScreen {
	return &SummaryScreen{
		manager:   manager,
		session:   session,
		committed: committed,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) InterceptEsc() bool {
	// An uncommitted run must be saved or discarded explicitly.
	return !s.committed
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.committed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Save to history"},
		{Key: "D", Description: "Discard"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.committed {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "s", "S":
		if ended, err := s.manager.EndSession(); err == nil {
			s.session = ended
		}
		s.committed = true
		return s, nil
	case "d", "D":
		_ = s.manager.ResetSession()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.session
	if sess == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	// Duration, when the session ran to an end.
	if sess.EndTime != nil {
		d := sess.EndTime.Sub(sess.StartTime)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %s", sess.CategoryName,
				layout.FormatClock(int(d.Seconds())))))
		b.WriteString("\n\n")
	}

	score := fmt.Sprintf("Score: %d%%", sess.TotalScore)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ScoreColor(sess.TotalScore)).
		Bold(true).
		Render(score))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Answered %d of %d questions",
			len(sess.Results), len(sess.Questions))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-question results.
	for _, q := range sess.Questions {
		i := sess.ResultFor(q.ID)
		prompt := q.Prompt
		if len(prompt) > 48 {
			prompt = prompt[:45] + "..."
		}

		var line string
		var style lipgloss.Style
		if i < 0 {
			line = fmt.Sprintf("  %-50s %s", prompt, "skipped")
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		} else {
			r := sess.Results[i]
			pct := int(r.Score * 100)
			line = fmt.Sprintf("  %-50s %3d%%", prompt, pct)
			style = lipgloss.NewStyle().Foreground(theme.ScoreColor(pct))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if !s.committed {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("S save to history · D discard")))
		b.WriteString("\n")
	}

	return b.String()
}
