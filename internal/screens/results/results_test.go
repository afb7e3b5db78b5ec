package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/router"
	"github.com/amical-najul/SumasRestas/internal/screen"
	"github.com/amical-najul/SumasRestas/internal/session"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}
func (stubScreen) View(int, int) string { return "" }
func (stubScreen) Title() string        { return "stub" }

func passedSummary() session.Summary {
	return session.Summary{
		Category:   questions.CategoryAddition,
		Difficulty: questions.DifficultyEasy,
		Correct:    40,
		Incorrect:  10,
		TotalTime:  300,
		Score:      80,
		AvgTime:    6.0,
	}
}

func newResults(sum session.Summary, newLevel int, unlocked bool) *ResultsScreen {
	return New(sum, newLevel, unlocked, nil, func() screen.Screen { return stubScreen{} })
}

func TestResultsScreen_Title(t *testing.T) {
	s := newResults(passedSummary(), 0, false)
	if s.Title() != "Resultados" {
		t.Errorf("Title = %q, want %q", s.Title(), "Resultados")
	}
}

func TestResultsScreen_ShowsScore(t *testing.T) {
	s := newResults(passedSummary(), 0, false)
	view := s.View(80, 24)
	if !strings.Contains(view, "80") {
		t.Error("expected score in view")
	}
	if !strings.Contains(view, "Sumas") {
		t.Error("expected category label in view")
	}
}

func TestResultsScreen_UnlockBanner(t *testing.T) {
	s := newResults(passedSummary(), 1, true)
	view := s.View(80, 24)
	if !strings.Contains(view, "Nivel 2") {
		t.Error("expected unlock banner naming the new level")
	}

	without := newResults(passedSummary(), 0, false).View(80, 24)
	if strings.Contains(without, "desbloqueado") {
		t.Error("unexpected unlock banner")
	}
}

func TestResultsScreen_ReplayReplacesScreen(t *testing.T) {
	s := newResults(passedSummary(), 0, false)

	// First item is the replay action.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestResultsScreen_EscGoesHome(t *testing.T) {
	s := newResults(passedSummary(), 0, false)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}
