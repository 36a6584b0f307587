package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/resume"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/history"
	"github.com/abhisek/prepdeck/internal/screens/resumeedit"
	"github.com/abhisek/prepdeck/internal/screens/setup"
	"github.com/abhisek/prepdeck/internal/screens/stats"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	manager *practice.Manager
	catalog *bank.Catalog
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(manager *practice.Manager, catalog *bank.Catalog, resumeSvc *resume.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(manager, catalog)}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(manager)}
			}
		}},
		{Label: "Stats", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(manager)}
			}
		}},
		{Label: "Resume Builder", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: resumeedit.New(resumeSvc)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		manager: manager,
		catalog: catalog,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render("PREPDECK")
	subtitle := theme.Subtitle.Width(cw).
		Render("Interview prep studio — practice, review, build")

	s := h.manager.Stats()
	statsLine := fmt.Sprintf("%d questions in the bank", h.catalog.Len())
	if s.TotalSessions > 0 {
		statsLine = fmt.Sprintf("%d questions in the bank   %d sessions   avg %d%%",
			h.catalog.Len(), s.TotalSessions, s.AverageScore)
	}
	statsBar := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(statsLine)

	menu := components.Card(h.menu.View(), cw)

	content := strings.Join([]string{title, subtitle, "", statsBar, "", menu}, "\n")
	return components.CenterIn(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
