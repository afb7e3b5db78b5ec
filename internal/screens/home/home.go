package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/router"
	"github.com/amical-najul/SumasRestas/internal/screen"
	"github.com/amical-najul/SumasRestas/internal/screens/leaderboard"
	"github.com/amical-najul/SumasRestas/internal/screens/levels"
	sessionscreen "github.com/amical-najul/SumasRestas/internal/screens/session"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/amical-najul/SumasRestas/internal/ui/components"
	"github.com/amical-najul/SumasRestas/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	user       *store.User
	totalGames int
	accuracy   int
	hasStats   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with one entry per category plus the
// leaderboard and exit entries.
func New(gen *questions.Generator, user *store.User, scores store.ScoreRepo, progressRepo store.ProgressRepo) *HomeScreen {
	// Lifetime totals for the stats line, best effort.
	var totalGames, totalCorrect, totalErrors int
	var hasStats bool
	if progressRepo != nil && user != nil {
		if rows, err := progressRepo.ForUser(context.Background(), user.Username); err == nil {
			for _, row := range rows {
				totalGames += row.TotalGames
				totalCorrect += row.TotalCorrect
				totalErrors += row.TotalErrors
			}
			hasStats = totalGames > 0
		}
	}

	var items []components.MenuItem
	for _, cat := range questions.AllCategories() {
		cat := cat
		if cat == questions.CategoryChallenge {
			// Challenge picks its own difficulty per question, so it skips
			// the level picker and starts straight away.
			items = append(items, components.MenuItem{
				Label: questions.CategoryDisplayName(cat),
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{
							Screen: sessionscreen.New(gen, user, scores, progressRepo, cat, questions.DifficultyEasy),
						}
					}
				},
			})
			continue
		}
		items = append(items, components.MenuItem{
			Label: questions.CategoryDisplayName(cat),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: levels.New(gen, user, scores, progressRepo, cat),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Clasificación", Action: func() tea.Cmd {
			username := ""
			if user != nil {
				username = user.Username
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(scores, username)}
			}
		}},
		components.MenuItem{Label: "Salir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	accuracy := 0
	if totalCorrect+totalErrors > 0 {
		accuracy = 100 * totalCorrect / (totalCorrect + totalErrors)
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		user:       user,
		totalGames: totalGames,
		accuracy:   accuracy,
		hasStats:   hasStats,
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
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("SUMAS Y RESTAS"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Practica cálculo mental por niveles"))
	b.WriteString("\n\n")

	if h.user != nil {
		greeting := fmt.Sprintf("Hola, %s", h.user.Username)
		if h.user.IsAdmin() {
			greeting += " (admin)"
		}
		b.WriteString(center.Foreground(theme.Secondary).Render(greeting))
		b.WriteString("\n")
	}

	if h.hasStats {
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Partidas: %d   Precisión: %d%%   Aprobado desde: %d puntos",
				h.totalGames, h.accuracy, progress.PassThreshold)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
