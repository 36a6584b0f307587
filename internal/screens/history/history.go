package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// HistoryScreen lists committed sessions, most recent first, with
// expandable per-question detail.
type HistoryScreen struct {
	sessions []*practice.PracticeSession
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(manager *practice.Manager) *HistoryScreen {
	return &HistoryScreen{
		sessions: manager.History(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.StartTime.Format("Jan 02, 2006")

		durationStr := "—"
		if sess.EndTime != nil {
			durationStr = layout.FormatClock(int(sess.EndTime.Sub(sess.StartTime).Seconds()))
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-14s  %d questions  %s  %d%%",
			prefix, dateStr, sess.CategoryName, len(sess.Questions), durationStr, sess.TotalScore)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, q := range sess.Questions {
				ri := sess.ResultFor(q.ID)
				prompt := q.Prompt
				if len(prompt) > 44 {
					prompt = prompt[:41] + "..."
				}

				var detail string
				var style lipgloss.Style
				if ri < 0 {
					detail = fmt.Sprintf("    %-46s skipped", prompt)
					style = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
				} else {
					r := sess.Results[ri]
					pct := int(r.Score * 100)
					detail = fmt.Sprintf("    %-46s %3d%%  %ds", prompt, pct, r.TimeTaken)
					style = lipgloss.NewStyle().Foreground(theme.ScoreColor(pct))
				}
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
