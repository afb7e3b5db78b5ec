package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/router"
	"github.com/amical-najul/SumasRestas/internal/screen"
	"github.com/amical-najul/SumasRestas/internal/session"
	"github.com/amical-najul/SumasRestas/internal/ui/components"
	"github.com/amical-najul/SumasRestas/internal/ui/layout"
	"github.com/amical-najul/SumasRestas/internal/ui/theme"
)

// ResultsScreen displays the finished session's score and offers a replay.
type ResultsScreen struct {
	summary  session.Summary
	newLevel int
	unlocked bool
	saveErr  error
	menu     components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. again builds a fresh session screen with the
// same settings for the replay action.
func New(summary session.Summary, newLevel int, unlocked bool, saveErr error, again func() screen.Screen) *ResultsScreen {
	items := []components.MenuItem{
		{Label: "Jugar otra vez", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: again()}
			}
		}},
		{Label: "Menú principal", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	}

	return &ResultsScreen{
		summary:  summary,
		newLevel: newLevel,
		unlocked: unlocked,
		saveErr:  saveErr,
		menu:     components.NewMenu(items),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

// HandlesEsc tells the root model to deliver Esc here: the stack below still
// holds the finished session, so the default pop would land on it.
func (s *ResultsScreen) HandlesEsc() bool {
	return true
}

func (s *ResultsScreen) Title() string {
	return "Resultados"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")

	// Headline.
	if sum.Score >= progress.PassThreshold {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("¡Partida superada!"))
	} else {
		b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Partida terminada"))
	}
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s",
			questions.CategoryDisplayName(sum.Category),
			s.levelLabel())))
	b.WriteString("\n\n")

	// Score.
	b.WriteString(center.Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Puntuación: %d / 100", sum.Score)))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Aciertos: %d      Fallos: %d      Tiempo medio: %.2fs",
		sum.Correct, sum.Incorrect, sum.AvgTime)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	// Unlock banner.
	if s.unlocked {
		b.WriteString(center.Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("★ ¡Has desbloqueado el Nivel %d!", s.newLevel+1)))
		b.WriteString("\n\n")
	}

	// Persistence problems are recoverable: the player sees the results
	// either way and can keep playing.
	if s.saveErr != nil {
		b.WriteString(center.Foreground(theme.Warning).
			Render(fmt.Sprintf("No se pudieron guardar los resultados: %v", s.saveErr)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

// levelLabel returns the difficulty label for the sub-header.
func (s *ResultsScreen) levelLabel() string {
	if s.summary.Category == questions.CategoryChallenge {
		return "Progresivo"
	}
	return questions.DifficultyDisplayName(s.summary.Difficulty)
}
