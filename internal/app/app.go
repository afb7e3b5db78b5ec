package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/router"
	"github.com/amical-najul/SumasRestas/internal/screen"
	"github.com/amical-najul/SumasRestas/internal/screens/home"
	sessionscreen "github.com/amical-najul/SumasRestas/internal/screens/session"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/amical-najul/SumasRestas/internal/ui/layout"
)

// Options carries the dependencies injected into the TUI.
type Options struct {
	Generator *questions.Generator
	User      *store.User
	Scores    store.ScoreRepo
	Progress  store.ProgressRepo

	// StartTables opens straight into the multiplication free-practice
	// session, with the home screen underneath it on the stack.
	StartTables bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	user    *store.User
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Generator, opts.User, opts.Scores, opts.Progress)
	r := router.New(homeScreen)

	var initCmd tea.Cmd
	if opts.StartTables {
		initCmd = r.Push(sessionscreen.New(
			opts.Generator, opts.User, opts.Scores, opts.Progress,
			questions.CategoryMultiplication, questions.DifficultyRandomTables))
	}

	return AppModel{
		router:  r,
		user:    opts.User,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own Esc handling (quit confirm, results)
			// receive the key instead of the default pop.
			if activeHandlesEsc(m.router.Active()) {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	player := "invitado"
	level := 0
	if m.user != nil {
		player = m.user.Username
		level = m.user.UnlockedLevel
	}
	header := layout.RenderHeader(title, player, level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Volver"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navegar"},
				{Key: "Enter", Description: "Elegir"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// escHandler is implemented by screens that consume Esc themselves.
type escHandler interface {
	HandlesEsc() bool
}

func activeHandlesEsc(s screen.Screen) bool {
	h, ok := s.(escHandler)
	return ok && h.HandlesEsc()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
