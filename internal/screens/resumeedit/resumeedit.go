package resumeedit

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/resume"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
)

type itemKind int

const (
	itemProfile itemKind = iota
	itemEducation
	itemExperience
	itemSkillGroup
	itemAddEducation
	itemAddExperience
	itemAddSkillGroup
)

// navItem is one selectable row in the browse view.
type navItem struct {
	kind  itemKind
	id    string
	label string
	dim   bool
}

// ResumeScreen is the resume builder: browse sections, edit entries inline,
// reorder with shift-J/K.
type ResumeScreen struct {
	svc    *resume.Service
	items  []navItem
	cursor int

	mode   mode
	editor *entryEditor
}

var _ screen.Screen = (*ResumeScreen)(nil)
var _ screen.KeyHintProvider = (*ResumeScreen)(nil)
var _ screen.EscInterceptor = (*ResumeScreen)(nil)

// New creates a new ResumeScreen.
func New(svc *resume.Service) *ResumeScreen {
	s := &ResumeScreen{svc: svc}
	s.rebuild()
	return s
}

func (s *ResumeScreen) Init() tea.Cmd {
	return nil
}

func (s *ResumeScreen) Title() string {
	return "Resume Builder"
}

func (s *ResumeScreen) InterceptEsc() bool {
	return s.mode == modeEdit
}

func (s *ResumeScreen) KeyHints() []layout.KeyHint {
	if s.mode == modeEdit {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+S", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Edit"},
		{Key: "X", Description: "Delete"},
		{Key: "Shift+J/K", Description: "Reorder"},
		{Key: "Esc", Description: "Back"},
	}
}

// rebuild regenerates the browse rows from the current document.
func (s *ResumeScreen) rebuild() {
	doc := s.svc.Document()
	items := []navItem{}

	name := doc.Profile.FullName
	if name == "" {
		name = "(not set)"
	}
	items = append(items, navItem{kind: itemProfile, label: "Profile — " + name})

	for _, e := range doc.Education {
		items = append(items, navItem{
			kind:  itemEducation,
			id:    e.ID,
			label: fmt.Sprintf("%s, %s", e.School, e.Degree),
		})
	}
	items = append(items, navItem{kind: itemAddEducation, label: "+ Add education", dim: true})

	for _, e := range doc.Experience {
		items = append(items, navItem{
			kind:  itemExperience,
			id:    e.ID,
			label: fmt.Sprintf("%s — %s", e.Company, e.Role),
		})
	}
	items = append(items, navItem{kind: itemAddExperience, label: "+ Add experience", dim: true})

	for _, g := range doc.SkillGroups {
		items = append(items, navItem{
			kind:  itemSkillGroup,
			id:    g.ID,
			label: fmt.Sprintf("%s (%d skills)", g.Name, len(g.Skills)),
		})
	}
	items = append(items, navItem{kind: itemAddSkillGroup, label: "+ Add skill group", dim: true})

	s.items = items
	if s.cursor >= len(items) {
		s.cursor = len(items) - 1
	}
}

func (s *ResumeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.mode == modeEdit {
		return s.updateEdit(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "K", "shift+up":
		s.move(-1)
	case "J", "shift+down":
		s.move(1)
	case "x", "X":
		s.remove()
	case "enter":
		return s.edit()
	}
	return s, nil
}

func (s *ResumeScreen) move(delta int) {
	it := s.items[s.cursor]
	var err error
	switch it.kind {
	case itemEducation:
		err = s.svc.MoveEducation(it.id, delta)
	case itemExperience:
		err = s.svc.MoveExperience(it.id, delta)
	case itemSkillGroup:
		err = s.svc.MoveSkillGroup(it.id, delta)
	default:
		return
	}
	if err == nil {
		s.rebuild()
		// Keep the cursor on the moved entry.
		for i, candidate := range s.items {
			if candidate.id == it.id {
				s.cursor = i
				break
			}
		}
	}
}

func (s *ResumeScreen) remove() {
	it := s.items[s.cursor]
	switch it.kind {
	case itemEducation:
		_ = s.svc.RemoveEducation(it.id)
	case itemExperience:
		_ = s.svc.RemoveExperience(it.id)
	case itemSkillGroup:
		_ = s.svc.RemoveSkillGroup(it.id)
	default:
		return
	}
	s.rebuild()
}

func (s *ResumeScreen) edit() (screen.Screen, tea.Cmd) {
	it := s.items[s.cursor]
	doc := s.svc.Document()
	s.editor = newEntryEditor(it, doc)
	if s.editor == nil {
		return s, nil
	}
	s.mode = modeEdit
	return s, s.editor.Init()
}

func (s *ResumeScreen) updateEdit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeBrowse
			s.editor = nil
			return s, nil
		case "ctrl+s":
			s.editor.apply(s.svc)
			s.mode = modeBrowse
			s.editor = nil
			s.rebuild()
			return s, nil
		}
	}

	cmd := s.editor.Update(msg)
	return s, cmd
}

func (s *ResumeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.mode == modeEdit {
		return components.CenterIn(s.editor.View(cw), width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Resume"))
	b.WriteString("\n\n")

	for i, it := range s.items {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if it.dim {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i == s.cursor {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(prefix + it.label))
		b.WriteString("\n")

		// Blank line between sections.
		if it.kind == itemProfile || it.kind == itemAddEducation || it.kind == itemAddExperience {
			b.WriteString("\n")
		}
	}

	content := components.Card(lipgloss.NewStyle().Width(cw-6).Render(b.String()), cw)
	return components.CenterIn(content, width, height)
}
