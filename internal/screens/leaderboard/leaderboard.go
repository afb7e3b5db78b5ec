package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/screen"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/amical-najul/SumasRestas/internal/ui/layout"
	"github.com/amical-najul/SumasRestas/internal/ui/theme"
)

// TopLimit is how many records the board shows.
const TopLimit = 5

// scoresLoadedMsg carries the fetched records.
type scoresLoadedMsg struct {
	Records []store.ScoreRecord
	Err     error
}

// LeaderboardScreen shows the player's best scores.
type LeaderboardScreen struct {
	scores   store.ScoreRepo
	username string

	records []store.ScoreRecord
	loaded  bool
	err     error
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen for the given player.
func New(scores store.ScoreRepo, username string) *LeaderboardScreen {
	return &LeaderboardScreen{
		scores:   scores,
		username: username,
	}
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	scores := l.scores
	username := l.username
	return func() tea.Msg {
		recs, err := scores.TopByUser(context.Background(), username, TopLimit)
		return scoresLoadedMsg{Records: recs, Err: err}
	}
}

func (l *LeaderboardScreen) Title() string {
	return "Clasificación"
}

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(scoresLoadedMsg); ok {
		l.records = loaded.Records
		l.err = loaded.Err
		l.loaded = true
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Mejores partidas de %s", l.username)))
	b.WriteString("\n\n")

	switch {
	case l.err != nil:
		b.WriteString(center.Foreground(theme.Error).
			Render(fmt.Sprintf("Error al cargar la clasificación: %v", l.err)))
	case !l.loaded:
		b.WriteString(center.Foreground(theme.TextDim).Render("Cargando..."))
	case len(l.records) == 0:
		b.WriteString(center.Foreground(theme.TextDim).
			Render("Todavía no hay partidas guardadas. ¡Juega una!"))
	default:
		header := fmt.Sprintf("%-3s %-14s %-10s %6s %9s %9s %12s",
			"#", "Categoría", "Nivel", "Punt.", "Aciertos", "Fallos", "T. medio")
		b.WriteString(center.Foreground(theme.TextDim).Render(header))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Border).
			Render(strings.Repeat("─", lipgloss.Width(header))))
		b.WriteString("\n")

		for i, rec := range l.records {
			line := fmt.Sprintf("%-3d %-14s %-10s %6d %9d %9d %11.2fs",
				i+1,
				questions.CategoryDisplayName(questions.Category(rec.Category)),
				difficultyLabel(rec.Difficulty),
				rec.Score,
				rec.CorrectCount,
				rec.ErrorCount,
				rec.AvgTime,
			)
			style := center.Foreground(theme.Text)
			if i == 0 {
				style = center.Foreground(theme.Accent).Bold(true)
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// difficultyLabel maps a stored difficulty value to its display label,
// including the "mixed" sentinel used by challenge records.
func difficultyLabel(d string) string {
	if d == "mixed" {
		return "Mixto"
	}
	return questions.DifficultyDisplayName(questions.Difficulty(d))
}
