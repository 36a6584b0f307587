package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// ChoiceOption is one selectable answer in a multiple-choice list.
type ChoiceOption struct {
	ID   string
	Text string
}

// ChoiceList is a multiple-choice answer selector. After locking, the correct
// option is highlighted and a wrong pick is shown in the error color.
type ChoiceList struct {
	Options   []ChoiceOption
	Cursor    int
	Locked    bool
	PickedID  string
	CorrectID string
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []ChoiceOption) ChoiceList {
	return ChoiceList{Options: options}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and locks the pick on enter.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		if len(c.Options) > 0 {
			c.Locked = true
			c.PickedID = c.Options[c.Cursor].ID
		}
	}

	return c, nil
}

// Reveal locks the list and marks the correct option for rendering.
func (c *ChoiceList) Reveal(correctID string) {
	c.Locked = true
	c.CorrectID = correctID
}

// View renders the choice list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !c.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt.Text)

		switch {
		case c.Locked && c.CorrectID != "" && opt.ID == c.CorrectID:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.Locked && opt.ID == c.PickedID:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
