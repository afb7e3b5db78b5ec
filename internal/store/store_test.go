package store

import (
	"context"
	"testing"
	"time"

	"github.com/amical-najul/SumasRestas/internal/questions"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestUserEnsureAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()
	ctx := context.Background()

	u, err := repo.GetByName(ctx, "lucia")
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if u != nil {
		t.Fatal("expected nil for unknown user")
	}

	u, err = repo.Ensure(ctx, "lucia")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if u.Role != RoleUser || u.Status != StatusActive {
		t.Errorf("defaults = %s/%s, want USER/ACTIVE", u.Role, u.Status)
	}
	if u.ID == "" {
		t.Error("expected generated ID")
	}

	again, err := repo.Ensure(ctx, "lucia")
	if err != nil {
		t.Fatalf("ensure (existing): %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("ensure created a second account: %s vs %s", again.ID, u.ID)
	}
}

func TestUserSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()
	ctx := context.Background()

	u, err := repo.Ensure(ctx, "mateo")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	u.Role = RoleAdmin
	u.Settings.CustomTimers = map[questions.Difficulty]int{
		questions.DifficultyEasy: 20,
		questions.DifficultyHard: 30,
	}
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByName(ctx, "mateo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsAdmin() {
		t.Error("expected admin role to persist")
	}
	if got.Settings.CustomTimers[questions.DifficultyEasy] != 20 {
		t.Errorf("custom timers did not round-trip: %+v", got.Settings.CustomTimers)
	}
}

func TestScoresTopByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Scores()
	ctx := context.Background()

	scores := []int{40, 90, 75, 60, 88, 95, 12}
	for _, sc := range scores {
		err := repo.Save(ctx, ScoreRecord{
			User:         "lucia",
			Score:        sc,
			CorrectCount: sc / 2,
			ErrorCount:   50 - sc/2,
			AvgTime:      7.5,
			Date:         time.Now().UTC(),
			Category:     "addition",
			Difficulty:   "easy",
		})
		if err != nil {
			t.Fatalf("save score %d: %v", sc, err)
		}
	}
	// Someone else's score must not leak in.
	if err := repo.Save(ctx, ScoreRecord{User: "mateo", Score: 100}); err != nil {
		t.Fatalf("save other score: %v", err)
	}

	top, err := repo.TopByUser(ctx, "lucia", 5)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("len = %d, want 5", len(top))
	}
	want := []int{95, 90, 88, 75, 60}
	for i, rec := range top {
		if rec.Score != want[i] {
			t.Errorf("top[%d].Score = %d, want %d", i, rec.Score, want[i])
		}
		if rec.User != "lucia" {
			t.Errorf("top[%d].User = %q, want lucia", i, rec.User)
		}
	}
}

func TestProgressRecordGameAccumulates(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.RecordGame(ctx, "lucia", questions.CategoryAddition, 70, 35, 15, 300)
		if err != nil {
			t.Fatalf("record game: %v", err)
		}
	}

	rows, err := repo.ForUser(ctx, "lucia")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	p := rows[0]
	if p.TotalGames != 3 || p.TotalScore != 210 || p.TotalCorrect != 105 || p.TotalErrors != 45 || p.TotalTime != 900 {
		t.Errorf("accumulated progress = %+v", p)
	}
	if p.AvgScore() != 70 {
		t.Errorf("AvgScore = %d, want 70", p.AvgScore())
	}
}

func TestRaiseUnlockedLevelMonotonic(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	level, err := repo.UnlockedLevel(ctx, "lucia", questions.CategoryDivision)
	if err != nil {
		t.Fatalf("unlocked level (no row): %v", err)
	}
	if level != 0 {
		t.Fatalf("default level = %d, want 0", level)
	}

	steps := []struct {
		request int
		want    int
	}{
		{2, 2}, // raise
		{1, 2}, // stale request must not regress
		{2, 2}, // replay is a no-op
		{3, 3}, // raise again
	}
	for _, st := range steps {
		if err := repo.RaiseUnlockedLevel(ctx, "lucia", questions.CategoryDivision, st.request); err != nil {
			t.Fatalf("raise to %d: %v", st.request, err)
		}
		level, err = repo.UnlockedLevel(ctx, "lucia", questions.CategoryDivision)
		if err != nil {
			t.Fatalf("unlocked level: %v", err)
		}
		if level != st.want {
			t.Errorf("after request %d: level = %d, want %d", st.request, level, st.want)
		}
	}
}

func TestRaiseUnlockedLevelSyncsLegacyScalar(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Users().Ensure(ctx, "lucia"); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := s.Progress().RaiseUnlockedLevel(ctx, "lucia", questions.CategoryAddition, 2); err != nil {
		t.Fatalf("raise addition: %v", err)
	}
	if err := s.Progress().RaiseUnlockedLevel(ctx, "lucia", questions.CategorySubtraction, 4); err != nil {
		t.Fatalf("raise subtraction: %v", err)
	}

	u, err := s.Users().GetByName(ctx, "lucia")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.UnlockedLevel != 4 {
		t.Errorf("legacy scalar = %d, want max across categories 4", u.UnlockedLevel)
	}
}
