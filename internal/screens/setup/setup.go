package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/session"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

const (
	rowCategory = iota
	rowCount
	rowTimeLimit
	rowFormat
	rowStart
	rowMax
)

var (
	countOptions = []int{3, 5, 8, 10}
	limitOptions = []int{5, 10, 15, 20, 30}
)

// formatOption pairs a label with an optional format filter.
type formatOption struct {
	label  string
	filter *bank.Format
}

// SetupScreen collects session parameters before starting practice.
type SetupScreen struct {
	manager    *practice.Manager
	catalog    *bank.Catalog
	categories []bank.Category

	row       int
	category  int
	count     int
	timeLimit int
	format    int
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(manager *practice.Manager, catalog *bank.Catalog) *SetupScreen {
	categories := append([]bank.Category{{ID: bank.CategoryAll, Name: "All Topics"}},
		catalog.Categories()...)

	return &SetupScreen{
		manager:    manager,
		catalog:    catalog,
		categories: categories,
		count:      1, // default 5 questions
		timeLimit:  2, // default 15 minutes
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func formatOptions() []formatOption {
	essay := bank.FormatEssay
	mc := bank.FormatMultipleChoice
	return []formatOption{
		{label: "Mixed", filter: nil},
		{label: "Essay only", filter: &essay},
		{label: "Multiple choice only", filter: &mc},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < rowMax-1 {
			s.row++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		if s.row == rowStart {
			return s.start()
		}
		s.row++
		if s.row >= rowMax {
			s.row = rowStart
		}
	}

	return s, nil
}

func (s *SetupScreen) cycle(delta int) {
	s.errMsg = ""
	switch s.row {
	case rowCategory:
		s.category = wrap(s.category+delta, len(s.categories))
	case rowCount:
		s.count = wrap(s.count+delta, len(countOptions))
	case rowTimeLimit:
		s.timeLimit = wrap(s.timeLimit+delta, len(limitOptions))
	case rowFormat:
		s.format = wrap(s.format+delta, len(formatOptions()))
	}
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	cat := s.categories[s.category]
	opt := formatOptions()[s.format]

	sess, err := s.manager.Start(
		cat.ID, cat.Name,
		countOptions[s.count], limitOptions[s.timeLimit],
		opt.filter,
	)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: session.New(s.manager, sess.ID)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	rows := []string{
		s.renderRow(rowCategory, "Topic", s.categories[s.category].Name),
		s.renderRow(rowCount, "Questions", fmt.Sprintf("%d", countOptions[s.count])),
		s.renderRow(rowTimeLimit, "Time limit", fmt.Sprintf("%d min", limitOptions[s.timeLimit])),
		s.renderRow(rowFormat, "Format", formatOptions()[s.format].label),
		"",
		s.renderStart(),
	}

	form := components.Card(strings.Join(rows, "\n"), cw)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Set up your session"), "", form)

	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Align(lipgloss.Center).Render(s.errMsg))
	}

	return components.CenterIn(strings.Join(sections, "\n"), width, height)
}

func (s *SetupScreen) renderRow(row int, label, value string) string {
	prefix := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)

	if s.row == row {
		prefix = "▸ "
		labelStyle = labelStyle.Foreground(theme.Text)
		valueStyle = valueStyle.Foreground(theme.Primary).Bold(true)
	}

	return fmt.Sprintf("%s%s  %s",
		prefix,
		labelStyle.Render(fmt.Sprintf("%-12s", label)),
		valueStyle.Render("‹ "+value+" ›"))
}

func (s *SetupScreen) renderStart() string {
	return "  " + components.NewButton("Begin Practice", s.row == rowStart, nil).View()
}

func wrap(v, n int) int {
	if n == 0 {
		return 0
	}
	return ((v % n) + n) % n
}
