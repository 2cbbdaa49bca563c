package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/praclab/internal/quiz"
	"github.com/abhisek/praclab/internal/ui/components"
	"github.com/abhisek/praclab/internal/ui/theme"
)

// Messages shown by the practice screen.
const (
	msgCorrect   = "Correct! Well done!"
	msgIncorrect = "Incorrect. Try again."
	msgComplete  = "You've completed all questions in this set!"
	msgEmpty     = "No questions available. Please check your question files."
	msgLoading   = "Loading question sets..."
)

func (s *PracticeScreen) View(width, height int) string {
	contentWidth := min(width-4, 90)
	if contentWidth < 20 {
		contentWidth = 20
	}

	var body string
	switch {
	case !s.listed:
		body = theme.Hint.Render(msgLoading)
	case s.machine.Status() == quiz.StatusEmpty:
		body = s.renderEmpty(contentWidth)
	case s.machine.Status() == quiz.StatusComplete:
		body = s.renderComplete(contentWidth)
	default:
		body = s.renderQuestion(contentWidth)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *PracticeScreen) renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(msgEmpty))
	b.WriteString("\n\n")
	switch {
	case s.listErr != nil:
		b.WriteString(wrap(theme.Body, width).Render(s.listErr.Error()))
		b.WriteString("\n\n")
	case s.loadErr != nil:
		b.WriteString(wrap(theme.Body, width).Render(s.loadErr.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("Press Ctrl+O to choose another question set."))
	return b.String()
}

func (s *PracticeScreen) renderComplete(width int) string {
	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")
	if s.flashing {
		b.WriteString(theme.Correct.Render(msgCorrect))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Title.Render(msgComplete))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Alt+P or Ctrl+G to review, Ctrl+O for another set."))
	b.WriteString("\n\n")
	b.WriteString(s.renderNav())
	b.WriteString(s.renderPrompt())
	return b.String()
}

func (s *PracticeScreen) renderQuestion(width int) string {
	q, err := s.machine.CurrentQuestion()
	if err != nil {
		return ""
	}
	state := s.machine.Snapshot()

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Width(width).Render(theme.Body.Bold(true).Render(q.Text)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render("Answer:"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case s.flashing:
		b.WriteString(theme.Correct.Render(msgCorrect))
		b.WriteString("\n")
	case s.incorrect:
		b.WriteString(theme.Incorrect.Render(msgIncorrect))
		b.WriteString("\n")
	}
	if state.WrongAttempts > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Attempts: %d", state.WrongAttempts)))
		b.WriteString("\n")
	}

	if state.ShowAnswer {
		b.WriteString("\n")
		panel := theme.Correct.Render("Answer: ") + theme.Body.Render(q.Answer) + "\n\n" +
			wrap(theme.Body, width-6).Render(q.Explanation)
		b.WriteString(theme.Card.Width(width).Render(panel))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderNav())
	b.WriteString(s.renderPrompt())
	return b.String()
}

func (s *PracticeScreen) renderProgress(width int) string {
	current, total := s.machine.Progress()
	label := fmt.Sprintf("Question %d of %d", min(current, total), total)
	percent := 0.0
	if total > 0 {
		percent = float64(current-1) / float64(total)
	}
	return components.NewProgressBar(label, percent, width).View()
}

// renderNav draws the Previous/Next buttons, dimmed where navigation is unavailable.
func (s *PracticeScreen) renderNav() string {
	prev := components.Button{Label: "Previous", Key: "Alt+P", Disabled: s.machine.IsFirst()}
	next := components.Button{Label: "Next", Key: "Alt+N", Disabled: s.machine.IsLast()}
	return lipgloss.JoinHorizontal(lipgloss.Top, prev.View(), "  ", next.View())
}

// renderPrompt draws the go-to prompt and any pending notice.
func (s *PracticeScreen) renderPrompt() string {
	var b strings.Builder
	if s.goingTo {
		_, total := s.machine.Progress()
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Go to question (1-%d):", total)))
		b.WriteString("\n")
		b.WriteString(s.gotoInput.View())
	}
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.notice))
	}
	return b.String()
}

func wrap(style lipgloss.Style, width int) lipgloss.Style {
	if width < 10 {
		width = 10
	}
	return style.Width(width)
}
