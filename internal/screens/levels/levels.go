package levels

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
	sessionscreen "github.com/amical-najul/SumasRestas/internal/screens/session"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/amical-najul/SumasRestas/internal/ui/components"
	"github.com/amical-najul/SumasRestas/internal/ui/theme"
)

// LevelsScreen lets the player pick a difficulty for a category. Levels above
// the player's unlocked level render locked; admins bypass every lock.
type LevelsScreen struct {
	category questions.Category
	menu     components.Menu
	unlocked int
	loadErr  error
}

var _ screen.Screen = (*LevelsScreen)(nil)

// New creates a LevelsScreen for the given category. The unlocked level is
// read up front so lock markers are correct on first paint.
func New(gen *questions.Generator, user *store.User, scores store.ScoreRepo, progressRepo store.ProgressRepo, cat questions.Category) *LevelsScreen {
	var unlocked int
	var loadErr error
	username := ""
	if user != nil {
		username = user.Username
	}
	if progressRepo != nil {
		unlocked, loadErr = progressRepo.UnlockedLevel(context.Background(), username, cat)
	}

	items := make([]components.MenuItem, 0, len(questions.DifficultyOrder())+1)
	for i, diff := range questions.DifficultyOrder() {
		diff := diff
		locked := !user.IsAdmin() && progress.Locked(i, unlocked)
		item := components.MenuItem{
			Label:    questions.DifficultyDisplayName(diff),
			Disabled: locked,
		}
		if locked {
			item.Hint = "🔒"
		} else {
			item.Action = func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(gen, user, scores, progressRepo, cat, diff),
					}
				}
			}
		}
		items = append(items, item)
	}

	// Free practice over the full tables, outside the progression ladder.
	if cat == questions.CategoryMultiplication {
		items = append(items, components.MenuItem{
			Label: questions.DifficultyDisplayName(questions.DifficultyRandomTables),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(gen, user, scores, progressRepo, cat, questions.DifficultyRandomTables),
					}
				}
			},
		})
	}

	return &LevelsScreen{
		category: cat,
		menu:     components.NewMenu(items),
		unlocked: unlocked,
		loadErr:  loadErr,
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (l *LevelsScreen) Title() string {
	return questions.CategoryDisplayName(l.category)
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LevelsScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Elige el nivel"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Supera un nivel con %d puntos o más para desbloquear el siguiente", progress.PassThreshold)))
	b.WriteString("\n\n")

	if l.loadErr != nil {
		b.WriteString(center.Foreground(theme.Warning).
			Render(fmt.Sprintf("No se pudo leer tu progreso: %v", l.loadErr)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.menu.View()))

	return b.String()
}
