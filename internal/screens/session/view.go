package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	sess := s.manager.CurrentSession()
	if sess == nil {
		return components.CenterIn(
			theme.Hint.Render("No session in progress."), width, height)
	}

	if s.phase == phaseQuitConfirm {
		return s.renderQuitConfirm(width, height)
	}
	return s.renderQuestion(sess, width, height)
}

func (s *SessionScreen) renderQuitConfirm(width, height int) string {
	cw := components.ContentWidth(width)

	body := strings.Join([]string{
		theme.Title.Width(cw - 6).Render("End this session?"),
		"",
		theme.Body.Render("  S  Save what you've answered to history"),
		theme.Body.Render("  D  Discard the session"),
		theme.Hint.Render("  Esc  Keep practicing"),
	}, "\n")

	return components.CenterIn(components.Card(body, cw), width, height)
}

func (s *SessionScreen) renderQuestion(sess *practice.PracticeSession, width, height int) string {
	cw := components.ContentWidth(width)
	q := sess.CurrentQuestion()

	var b strings.Builder

	// Progress line.
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", sess.CurrentIndex+1, len(sess.Questions)),
		float64(sess.CurrentIndex+1)/float64(len(sess.Questions)),
		false, cw)
	b.WriteString(progress.View())
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s · ~%d min", q.Difficulty, q.Format.DisplayName(), q.EstMinutes)
	b.WriteString(theme.Hint.Render(meta))
	b.WriteString("\n\n")

	// Prompt.
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw - 6).
		Render(q.Prompt)
	b.WriteString(components.Card(prompt, cw))
	b.WriteString("\n\n")

	// Answer area.
	if s.phase == phaseAnswering {
		if q.Format == bank.FormatMultipleChoice {
			b.WriteString(s.choices.View())
		} else {
			b.WriteString(s.essay.View())
		}
	} else {
		b.WriteString(s.renderRevealed(sess, q, cw))
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return components.CenterIn(content, width, height)
}

func (s *SessionScreen) renderRevealed(sess *practice.PracticeSession, q bank.Question, cw int) string {
	var b strings.Builder

	i := sess.ResultFor(q.ID)
	if i < 0 {
		return ""
	}
	result := sess.Results[i]

	if q.Format == bank.FormatMultipleChoice {
		b.WriteString(s.choices.View())
		b.WriteString("\n")
		style := theme.Correct
		if result.Score == 0 {
			style = theme.Incorrect
		}
		b.WriteString(style.Render(result.Feedback))
		b.WriteString("\n")
		return b.String()
	}

	// Essay: show the learner's answer next to the canonical one.
	b.WriteString(theme.Hint.Render("Your answer"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(cw - 2).Render(result.Answer))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("Model answer"))
	b.WriteString("\n")
	answer := lipgloss.NewStyle().Foreground(theme.Success).Width(cw - 6).Render(q.Answer)
	b.WriteString(components.Card(answer, cw))
	b.WriteString("\n")

	if q.Example != "" {
		b.WriteString(theme.Hint.Render("Example"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw - 2).Render(q.Example))
		b.WriteString("\n\n")
	}

	if s.awaitingBand() {
		b.WriteString(theme.Body.Bold(true).Render("How close were you?"))
		b.WriteString("\n")
		for j, band := range practice.AllBands() {
			line := fmt.Sprintf("  %s (%d%%)", band.Label(), int(float64(band)*100))
			if j == s.bandCursor {
				b.WriteString(theme.Selected.Render("▸" + line[1:]))
			} else {
				b.WriteString(theme.Unselected.Render(line))
			}
			b.WriteString("\n")
		}
	} else {
		score := int(result.Score * 100)
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.ScoreColor(score)).
			Bold(true).
			Render(fmt.Sprintf("%s — %d%%", result.Feedback, score)))
		b.WriteString("\n")
	}

	return b.String()
}
