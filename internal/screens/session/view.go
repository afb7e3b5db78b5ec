package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amical-najul/SumasRestas/internal/questions"
	sess "github.com/amical-najul/SumasRestas/internal/session"
	"github.com/amical-najul/SumasRestas/internal/ui/components"
	"github.com/amical-najul/SumasRestas/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width int) string {
	r := s.runner

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s",
			questions.CategoryDisplayName(r.Category),
			s.levelLabel()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pregunta %d/%d  %s %d  %s %d",
			r.Attempt+1,
			sess.TotalQuestions,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			r.Stats.Correct,
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			r.Stats.Incorrect,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(r.Question.Text + " = ?"))
	b.WriteString("\n\n")

	// Answer input.
	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Respuesta: " + s.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n\n")

	// Countdown.
	timer := components.NewTimerBar(r.TimeLeft, r.TimeLimit, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, timer.View()))

	return b.String()
}

// renderFeedback renders the pause between questions.
func (s *SessionScreen) renderFeedback(width int) string {
	r := s.runner

	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch r.Feedback {
	case sess.FeedbackCorrect:
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("¡Correcto!"))
	case sess.FeedbackTimeout:
		b.WriteString(center.Foreground(theme.Warning).Bold(true).Render("¡Se acabó el tiempo!"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s = %d", r.Question.Text, r.Question.Answer)))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Incorrecto"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s = %d", r.Question.Text, r.Question.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pregunta %d de %d", r.Attempt+1, sess.TotalQuestions)))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("¿Abandonar la partida?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("El progreso de esta partida no se guardará."))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Error).Render("[Y] Sí, abandonar"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, seguir jugando"))

	return b.String()
}

// renderSaving renders the end-of-session persistence state.
func renderSaving(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Guardando resultados...")
}

// levelLabel returns the difficulty label for the info line.
func (s *SessionScreen) levelLabel() string {
	if s.runner.Category == questions.CategoryChallenge {
		return "Progresivo"
	}
	return questions.DifficultyDisplayName(s.runner.Difficulty)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
