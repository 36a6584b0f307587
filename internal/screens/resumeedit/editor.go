package resumeedit

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/resume"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// field is one labelled input in the entry editor.
type field struct {
	label string
	input components.TextInput
}

// entryEditor edits one resume entry as a vertical stack of text inputs.
type entryEditor struct {
	title   string
	kind    itemKind
	id      string
	fields  []field
	focused int
}

func newField(label, value string) field {
	in := components.NewTextInput("", false, 120)
	in.Model.SetValue(value)
	in.Model.Blur()
	return field{label: label, input: in}
}

// newEntryEditor builds the editor for the selected row. Add rows start from
// zero values; edit rows are pre-filled from the document.
func newEntryEditor(it navItem, doc *resume.Resume) *entryEditor {
	switch it.kind {
	case itemProfile:
		p := doc.Profile
		return &entryEditor{
			title: "Profile",
			kind:  itemProfile,
			fields: []field{
				newField("Full name", p.FullName),
				newField("Title", p.Title),
				newField("Email", p.Email),
				newField("Phone", p.Phone),
				newField("Location", p.Location),
				newField("Summary", p.Summary),
			},
		}

	case itemEducation, itemAddEducation:
		var e resume.Education
		for _, cand := range doc.Education {
			if cand.ID == it.id {
				e = cand
			}
		}
		return &entryEditor{
			title: "Education",
			kind:  itemEducation,
			id:    e.ID,
			fields: []field{
				newField("School", e.School),
				newField("Degree", e.Degree),
				newField("Field of study", e.Field),
				newField("Start year", e.StartYear),
				newField("End year", e.EndYear),
			},
		}

	case itemExperience, itemAddExperience:
		var e resume.Experience
		for _, cand := range doc.Experience {
			if cand.ID == it.id {
				e = cand
			}
		}
		return &entryEditor{
			title: "Experience",
			kind:  itemExperience,
			id:    e.ID,
			fields: []field{
				newField("Company", e.Company),
				newField("Role", e.Role),
				newField("Start", e.Start),
				newField("End", e.End),
				newField("Highlights (separate with ;)", strings.Join(e.Highlights, "; ")),
			},
		}

	case itemSkillGroup, itemAddSkillGroup:
		var g resume.SkillGroup
		for _, cand := range doc.SkillGroups {
			if cand.ID == it.id {
				g = cand
			}
		}
		return &entryEditor{
			title: "Skill group",
			kind:  itemSkillGroup,
			id:    g.ID,
			fields: []field{
				newField("Group name", g.Name),
				newField("Skills (separate with ,)", strings.Join(g.Skills, ", ")),
			},
		}
	}
	return nil
}

func (e *entryEditor) Init() tea.Cmd {
	return e.focus(0)
}

func (e *entryEditor) focus(i int) tea.Cmd {
	e.fields[e.focused].input.Model.Blur()
	e.focused = i
	return e.fields[i].input.Model.Focus()
}

func (e *entryEditor) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "enter", "down":
			return e.focus((e.focused + 1) % len(e.fields))
		case "shift+tab", "up":
			return e.focus((e.focused - 1 + len(e.fields)) % len(e.fields))
		}
	}

	var cmd tea.Cmd
	e.fields[e.focused].input, cmd = e.fields[e.focused].input.Update(msg)
	return cmd
}

// apply writes the edited entry back through the service.
func (e *entryEditor) apply(svc *resume.Service) {
	v := func(i int) string { return strings.TrimSpace(e.fields[i].input.Value()) }

	switch e.kind {
	case itemProfile:
		svc.SetProfile(resume.Profile{
			FullName: v(0),
			Title:    v(1),
			Email:    v(2),
			Phone:    v(3),
			Location: v(4),
			Summary:  v(5),
		})

	case itemEducation:
		entry := resume.Education{
			ID:        e.id,
			School:    v(0),
			Degree:    v(1),
			Field:     v(2),
			StartYear: v(3),
			EndYear:   v(4),
		}
		if e.id == "" {
			svc.AddEducation(entry)
		} else {
			_ = svc.UpdateEducation(entry)
		}

	case itemExperience:
		entry := resume.Experience{
			ID:         e.id,
			Company:    v(0),
			Role:       v(1),
			Start:      v(2),
			End:        v(3),
			Highlights: splitList(v(4), ";"),
		}
		if e.id == "" {
			svc.AddExperience(entry)
		} else {
			_ = svc.UpdateExperience(entry)
		}

	case itemSkillGroup:
		entry := resume.SkillGroup{
			ID:     e.id,
			Name:   v(0),
			Skills: splitList(v(1), ","),
		}
		if e.id == "" {
			svc.AddSkillGroup(entry)
		} else {
			_ = svc.UpdateSkillGroup(entry)
		}
	}
}

func (e *entryEditor) View(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render("Edit " + e.title))
	b.WriteString("\n\n")

	for i, f := range e.fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == e.focused {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}

	return components.Card(lipgloss.NewStyle().Width(cw-6).Render(b.String()), cw)
}

// splitList splits on sep, trimming whitespace and dropping empty parts.
func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
