package progress

import "github.com/amical-najul/SumasRestas/internal/questions"

// PassThreshold is the minimum session score that unlocks the next level.
const PassThreshold = 60

// CategoryProgress mirrors one per-category progress row. The unlocked level
// is owned by the persistence layer, which only ever raises it; this package
// computes candidate values.
type CategoryProgress struct {
	Category      questions.Category
	UnlockedLevel int
	TotalGames    int
	TotalScore    int
	TotalCorrect  int
	TotalErrors   int
	TotalTime     int // seconds
}

// AccuracyRate returns the lifetime accuracy percentage for the category.
func (p CategoryProgress) AccuracyRate() int {
	total := p.TotalCorrect + p.TotalErrors
	if total == 0 {
		return 0
	}
	return 100 * p.TotalCorrect / total
}

// AvgScore returns the lifetime average session score for the category.
func (p CategoryProgress) AvgScore() int {
	if p.TotalGames == 0 {
		return 0
	}
	return p.TotalScore / p.TotalGames
}

// NextUnlock decides whether a finished session earns an unlock request.
// It returns the candidate next level and true when the played difficulty
// has a successor on the ladder and the score met the pass threshold.
//
// The decision is intentionally independent of the player's current unlocked
// level: replaying an already-cleared level and passing it again still issues
// an unlock request for its successor. Raising the stored level monotonically
// is the persistence layer's job, so a stale candidate can never regress it.
//
// Challenge sessions never reach this engine: their nominal difficulty does
// not reflect the sub-difficulties actually played. random_tables has no
// ladder position and never unlocks anything. Admin accounts bypass locks
// entirely and are handled by the caller.
func NextUnlock(cat questions.Category, diff questions.Difficulty, score int) (int, bool) {
	if cat == questions.CategoryChallenge {
		return 0, false
	}
	idx := questions.DifficultyIndex(diff)
	if idx < 0 || idx >= questions.MaxDifficultyIndex {
		return 0, false
	}
	if score < PassThreshold {
		return 0, false
	}
	return idx + 1, true
}

// Locked reports whether a difficulty index is locked for a standard user
// whose unlocked level for the category is unlockedLevel (0 when no progress
// record exists yet).
func Locked(diffIndex, unlockedLevel int) bool {
	return diffIndex > unlockedLevel
}
