package session

import (
	"context"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/router"
	sess "github.com/amical-najul/SumasRestas/internal/session"
	"github.com/amical-najul/SumasRestas/internal/store"
)

// mockScoreRepo implements store.ScoreRepo for testing.
type mockScoreRepo struct {
	saved []store.ScoreRecord
}

func (m *mockScoreRepo) Save(_ context.Context, rec store.ScoreRecord) error {
	m.saved = append(m.saved, rec)
	return nil
}
func (m *mockScoreRepo) TopByUser(_ context.Context, _ string, _ int) ([]store.ScoreRecord, error) {
	return nil, nil
}

// mockProgressRepo implements store.ProgressRepo for testing.
type mockProgressRepo struct {
	unlocked int
	games    int
	raisedTo map[questions.Category]int
}

func (m *mockProgressRepo) ForUser(_ context.Context, _ string) ([]progress.CategoryProgress, error) {
	return nil, nil
}
func (m *mockProgressRepo) UnlockedLevel(_ context.Context, _ string, _ questions.Category) (int, error) {
	return m.unlocked, nil
}
func (m *mockProgressRepo) RecordGame(_ context.Context, _ string, _ questions.Category, _, _, _, _ int) error {
	m.games++
	return nil
}
func (m *mockProgressRepo) RaiseUnlockedLevel(_ context.Context, _ string, cat questions.Category, newLevel int) error {
	if m.raisedTo == nil {
		m.raisedTo = make(map[questions.Category]int)
	}
	m.raisedTo[cat] = newLevel
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testUser() *store.User {
	return &store.User{
		ID:       "u1",
		Username: "ana",
		Role:     store.RoleUser,
		Status:   store.StatusActive,
	}
}

func testScreen() (*SessionScreen, *mockScoreRepo, *mockProgressRepo) {
	scores := &mockScoreRepo{}
	prog := &mockProgressRepo{}
	s := New(nil, testUser(), scores, prog, questions.CategoryAddition, questions.DifficultyEasy)
	return s, scores, prog
}

func TestSessionScreen_Title(t *testing.T) {
	s, _, _ := testScreen()
	if s.Title() != "Sumas" {
		t.Errorf("Title = %q, want %q", s.Title(), "Sumas")
	}
}

func TestSessionScreen_TickCountsDown(t *testing.T) {
	s, _, _ := testScreen()
	before := s.runner.TimeLeft

	s.Update(timerTickMsg{})

	if s.runner.TimeLeft != before-1 {
		t.Errorf("TimeLeft = %d, want %d", s.runner.TimeLeft, before-1)
	}
}

func TestSessionScreen_TimeoutEntersFeedback(t *testing.T) {
	s, _, _ := testScreen()
	for i := 0; i < s.runner.TimeLimit; i++ {
		s.Update(timerTickMsg{})
	}

	if s.runner.Phase != sess.PhaseFeedback {
		t.Errorf("Phase = %v, want PhaseFeedback", s.runner.Phase)
	}
	if s.runner.Feedback != sess.FeedbackTimeout {
		t.Errorf("Feedback = %v, want FeedbackTimeout", s.runner.Feedback)
	}
}

func TestSessionScreen_SubmitCorrectAnswer(t *testing.T) {
	s, _, _ := testScreen()

	for _, r := range strconv.Itoa(s.runner.Question.Answer) {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if s.runner.Stats.Correct != 1 {
		t.Errorf("Correct = %d, want 1", s.runner.Stats.Correct)
	}
	if s.runner.Phase != sess.PhaseFeedback {
		t.Errorf("Phase = %v, want PhaseFeedback", s.runner.Phase)
	}
	if cmd == nil {
		t.Error("expected feedback delay command")
	}
}

func TestSessionScreen_EmptySubmitIgnored(t *testing.T) {
	s, _, _ := testScreen()

	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command for empty submission")
	}
	if s.runner.Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", s.runner.Phase)
	}
}

func TestSessionScreen_KeysIgnoredDuringFeedback(t *testing.T) {
	s, _, _ := testScreen()

	for _, r := range strconv.Itoa(s.runner.Question.Answer) {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	total := s.runner.Stats.Correct + s.runner.Stats.Incorrect
	if total != 1 {
		t.Errorf("judged attempts = %d, want 1", total)
	}
}

func TestSessionScreen_FeedbackDoneAdvances(t *testing.T) {
	s, _, _ := testScreen()

	for _, r := range strconv.Itoa(s.runner.Question.Answer) {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))
	s.Update(feedbackDoneMsg{})

	if s.runner.Attempt != 1 {
		t.Errorf("Attempt = %d, want 1", s.runner.Attempt)
	}
	if s.runner.Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", s.runner.Phase)
	}
}

func TestSessionScreen_EscOpensQuitConfirm(t *testing.T) {
	s, _, _ := testScreen()

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirm after Esc")
	}

	// Countdown pauses while the dialog is open.
	before := s.runner.TimeLeft
	s.Update(timerTickMsg{})
	if s.runner.TimeLeft != before {
		t.Errorf("TimeLeft = %d, want %d (paused)", s.runner.TimeLeft, before)
	}

	// N resumes.
	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Error("expected quit confirm dismissed after N")
	}
}

func TestSessionScreen_QuitConfirmYesPops(t *testing.T) {
	s, scores, _ := testScreen()

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command on Y")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on abandoned session")
	}
	if len(scores.saved) != 0 {
		t.Error("abandoned session must not be recorded")
	}
}

func TestSessionScreen_PersistSavesScoreAndProgress(t *testing.T) {
	s, scores, prog := testScreen()

	// A finished 30/20 session scores exactly at the pass threshold.
	s.runner.Stats = sess.Stats{Correct: 30, Incorrect: 20, TotalTime: 400}

	_, cmd := s.handleSessionEnd()
	if cmd == nil {
		t.Fatal("expected persistence command")
	}
	msg, ok := cmd().(persistDoneMsg)
	if !ok {
		t.Fatalf("expected persistDoneMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("persist error: %v", msg.Err)
	}

	if len(scores.saved) != 1 {
		t.Fatalf("saved records = %d, want 1", len(scores.saved))
	}
	rec := scores.saved[0]
	if rec.User != "ana" || rec.Score != 60 || rec.CorrectCount != 30 || rec.ErrorCount != 20 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.AvgTime != 8.0 {
		t.Errorf("AvgTime = %v, want 8.0", rec.AvgTime)
	}

	if prog.games != 1 {
		t.Errorf("recorded games = %d, want 1", prog.games)
	}
	if prog.raisedTo[questions.CategoryAddition] != 1 {
		t.Errorf("raised level = %d, want 1", prog.raisedTo[questions.CategoryAddition])
	}
	if !msg.Unlocked || msg.NewLevel != 1 {
		t.Errorf("unlock = (%v, %d), want (true, 1)", msg.Unlocked, msg.NewLevel)
	}
}

func TestSessionScreen_AdminNeverUnlocks(t *testing.T) {
	scores := &mockScoreRepo{}
	prog := &mockProgressRepo{}
	admin := testUser()
	admin.Role = store.RoleAdmin
	s := New(nil, admin, scores, prog, questions.CategoryAddition, questions.DifficultyEasy)

	s.runner.Stats = sess.Stats{Correct: 50, Incorrect: 0, TotalTime: 100}

	_, cmd := s.handleSessionEnd()
	msg := cmd().(persistDoneMsg)

	if msg.Unlocked {
		t.Error("admin sessions must not unlock levels")
	}
	if len(prog.raisedTo) != 0 {
		t.Errorf("expected no unlock requests, got %v", prog.raisedTo)
	}
	if len(scores.saved) != 1 {
		t.Error("admin scores are still recorded")
	}
}

func TestSessionScreen_FailingScoreDoesNotUnlock(t *testing.T) {
	s, _, prog := testScreen()
	s.runner.Stats = sess.Stats{Correct: 20, Incorrect: 30, TotalTime: 300}

	_, cmd := s.handleSessionEnd()
	msg := cmd().(persistDoneMsg)

	if msg.Unlocked {
		t.Error("score below threshold must not unlock")
	}
	if prog.games != 1 {
		t.Error("failed sessions still accumulate progress totals")
	}
}

func TestSessionScreen_ChallengeRecordsMixedDifficulty(t *testing.T) {
	scores := &mockScoreRepo{}
	prog := &mockProgressRepo{}
	s := New(nil, testUser(), scores, prog, questions.CategoryChallenge, questions.DifficultyEasy)

	s.runner.Stats = sess.Stats{Correct: 45, Incorrect: 5, TotalTime: 250}

	_, cmd := s.handleSessionEnd()
	msg := cmd().(persistDoneMsg)

	if msg.Unlocked {
		t.Error("challenge sessions never unlock levels")
	}
	if scores.saved[0].Difficulty != "mixed" {
		t.Errorf("Difficulty = %q, want %q", scores.saved[0].Difficulty, "mixed")
	}
}
