package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// StatsScreen shows the cross-session dashboard.
type StatsScreen struct {
	stats practice.Stats
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen from the current history.
func New(manager *practice.Manager) *StatsScreen {
	return &StatsScreen{stats: manager.Stats()}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.stats.TotalSessions == 0 {
		return components.CenterIn(
			theme.Hint.Render("No stats yet. Complete a session first."),
			width, height)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Your progress"))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("Sessions: %d      Questions practiced: %d",
		s.stats.TotalSessions, s.stats.QuestionsPracticed)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).
		Align(lipgloss.Center).Render(totals))
	b.WriteString("\n\n")

	avg := components.NewProgressBar("Average score",
		float64(s.stats.AverageScore)/100, true, cw)
	b.WriteString(avg.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("By topic"))
	b.WriteString("\n")

	// Stable ordering for the per-category rows.
	ids := make([]string, 0, len(s.stats.ByCategory))
	for id := range s.stats.ByCategory {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		cs := s.stats.ByCategory[id]
		label := fmt.Sprintf("%-14s %d sessions", cs.CategoryName, cs.Sessions)
		bar := components.NewProgressBar(label, float64(cs.AverageScore)/100, true, cw)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return components.CenterIn(content, width, height)
}
