package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/router"
	"github.com/amical-najul/SumasRestas/internal/screen"
	"github.com/amical-najul/SumasRestas/internal/screens/results"
	sess "github.com/amical-najul/SumasRestas/internal/session"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/amical-najul/SumasRestas/internal/ui/components"
	"github.com/amical-najul/SumasRestas/internal/ui/layout"
)

// answerDigits caps the answer entry length.
const answerDigits = 6

// SessionScreen implements screen.Screen for a running game session.
type SessionScreen struct {
	runner       *sess.Runner
	user         *store.User
	scores       store.ScoreRepo
	progressRepo store.ProgressRepo
	gen          *questions.Generator

	input       components.AnswerInput
	quitConfirm bool
	saving      bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the given category and difficulty. The
// user's custom timers, if any, override the per-level countdown.
func New(gen *questions.Generator, user *store.User, scores store.ScoreRepo, progressRepo store.ProgressRepo, cat questions.Category, diff questions.Difficulty) *SessionScreen {
	var custom map[questions.Difficulty]int
	if user != nil {
		custom = user.Settings.CustomTimers
	}
	return &SessionScreen{
		runner:       sess.NewRunner(gen, cat, diff, custom),
		user:         user,
		scores:       scores,
		progressRepo: progressRepo,
		gen:          gen,
		input:        components.NewAnswerInput("?", answerDigits),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		tickCmd(),
	)
}

// HandlesEsc tells the root model to deliver Esc here instead of popping,
// so the quit confirmation can intercept it.
func (s *SessionScreen) HandlesEsc() bool {
	return true
}

func (s *SessionScreen) Title() string {
	return questions.CategoryDisplayName(s.runner.Category)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandonar"},
			{Key: "N", Description: "Seguir jugando"},
		}
	}
	if s.runner.Phase == sess.PhaseFeedback {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Salir"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.saving {
		return renderSaving(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.runner.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case persistDoneMsg:
		return s.handlePersistDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a question is active.
	if s.runner.Phase == sess.PhaseActive && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.runner.Done() || s.saving {
		return s, nil
	}

	// The countdown pauses while the quit dialog is open; keep the tick loop
	// alive so it resumes when the dialog closes.
	if s.quitConfirm {
		return s, tickCmd()
	}

	if s.runner.Tick() {
		// Countdown hit zero: judged as a timeout.
		s.input.Submit(false)
		return s, tea.Batch(tickCmd(), feedbackCmd(s.runner.FeedbackDelay()))
	}

	return s, tickCmd()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.runner.Advance() {
		s.input = components.NewAnswerInput("?", answerDigits)
		return s, s.input.Init()
	}
	return s, func() tea.Msg { return sessionEndMsg{} }
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	s.saving = true
	return s, s.persistResults()
}

func (s *SessionScreen) handlePersistDone(msg persistDoneMsg) (screen.Screen, tea.Cmd) {
	gen := s.gen
	user := s.user
	scores := s.scores
	progressRepo := s.progressRepo
	cat := s.runner.Category
	diff := s.runner.Difficulty

	again := func() screen.Screen {
		return New(gen, user, scores, progressRepo, cat, diff)
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(msg.Summary, msg.NewLevel, msg.Unlocked, msg.Err, again),
		}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.saving {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			// Abandoned sessions are discarded, nothing is recorded.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// The feedback pause is fixed; key presses during it are ignored so a
	// second Enter cannot double-submit.
	if s.runner.Phase == sess.PhaseFeedback {
		return s, nil
	}

	if s.runner.Phase == sess.PhaseActive {
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer judges the typed answer.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	if value == "" {
		return s, nil
	}

	if !s.runner.Submit(value) {
		return s, nil
	}

	s.input.Submit(s.runner.Feedback == sess.FeedbackCorrect)
	return s, feedbackCmd(s.runner.FeedbackDelay())
}

// persistResults saves the score record, accumulates category progress, and
// requests a level unlock when the score earns one. Admins bypass the
// progression ladder, so no unlock is requested for them.
func (s *SessionScreen) persistResults() tea.Cmd {
	runner := s.runner
	user := s.user
	scores := s.scores
	progressRepo := s.progressRepo

	return func() tea.Msg {
		ctx := context.Background()
		summary := sess.BuildSummary(runner)

		username := ""
		if user != nil {
			username = user.Username
		}

		out := persistDoneMsg{Summary: summary}

		if scores != nil {
			err := scores.Save(ctx, store.ScoreRecord{
				User:         username,
				Score:        summary.Score,
				CorrectCount: summary.Correct,
				ErrorCount:   summary.Incorrect,
				AvgTime:      summary.AvgTime,
				Category:     string(summary.Category),
				Difficulty:   summary.RecordDifficulty(),
			})
			if err != nil {
				out.Err = err
				return out
			}
		}

		if progressRepo != nil {
			err := progressRepo.RecordGame(ctx, username, summary.Category,
				summary.Score, summary.Correct, summary.Incorrect, summary.TotalTime)
			if err != nil {
				out.Err = err
				return out
			}

			if !user.IsAdmin() {
				if next, ok := progress.NextUnlock(summary.Category, summary.Difficulty, summary.Score); ok {
					current, err := progressRepo.UnlockedLevel(ctx, username, summary.Category)
					if err != nil {
						out.Err = err
						return out
					}
					if err := progressRepo.RaiseUnlockedLevel(ctx, username, summary.Category, next); err != nil {
						out.Err = err
						return out
					}
					if next > current {
						out.NewLevel = next
						out.Unlocked = true
					}
				}
			}
		}

		return out
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// feedbackCmd schedules the end of the feedback pause.
func feedbackCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
