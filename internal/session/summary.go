package session

import (
	"math"

	"github.com/amical-najul/SumasRestas/internal/questions"
)

// Summary holds the finalized results of a session, ready for display and
// for the score record hand-off. The Runner never persists anything itself;
// the caller submits the Summary to the persistence collaborator.
type Summary struct {
	Category   questions.Category
	Difficulty questions.Difficulty

	Correct   int
	Incorrect int
	TotalTime int

	// Score is round(100 × correct / total), 0 for an empty session.
	Score int

	// AvgTime is the average seconds per judged attempt, rounded to two
	// decimals for the score record.
	AvgTime float64
}

// BuildSummary computes the final statistics from the runner's state.
func BuildSummary(r *Runner) Summary {
	total := r.Stats.Correct + r.Stats.Incorrect

	var score int
	var avg float64
	if total > 0 {
		score = int(math.Round(100 * float64(r.Stats.Correct) / float64(total)))
		avg = math.Round(100*float64(r.Stats.TotalTime)/float64(total)) / 100
	}

	return Summary{
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Correct:    r.Stats.Correct,
		Incorrect:  r.Stats.Incorrect,
		TotalTime:  r.Stats.TotalTime,
		Score:      score,
		AvgTime:    avg,
	}
}

// RecordDifficulty returns the difficulty value to store on the score record.
// Challenge runs span multiple generated sub-difficulties, so they are
// recorded with the "mixed" sentinel instead of a single level.
func (s Summary) RecordDifficulty() string {
	if s.Category == questions.CategoryChallenge {
		return "mixed"
	}
	return string(s.Difficulty)
}
