package session

import (
	"time"

	"github.com/amical-najul/SumasRestas/internal/questions"
)

// TotalQuestions is the fixed number of attempts in a session.
const TotalQuestions = 50

// Feedback pause lengths. The longer pause on a miss is intentional: it gives
// the player time to read the correct answer before the next question.
const (
	FeedbackCorrectDelay = 800 * time.Millisecond
	FeedbackWrongDelay   = 2 * time.Second
)

// Phase represents where the runner is in the question loop.
type Phase int

const (
	PhaseActive   Phase = iota // question displayed, countdown running
	PhaseFeedback              // answer judged, transition delay pending
	PhaseComplete              // all attempts served, stats finalized
)

// Feedback classifies the outcome of the most recent attempt.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
	FeedbackTimeout
)

// Stats accumulates the session totals. Created at zero, mutated once per
// judged attempt, final after the last attempt.
type Stats struct {
	Correct   int
	Incorrect int

	// TotalTime is the sum of seconds actually spent answering.
	// Timeouts are charged at the full time limit.
	TotalTime int
}

// Runner drives a fixed 50-question session for one category/difficulty.
// It owns no timers itself: the caller delivers one Tick per second while a
// question is active and a single Advance after each feedback pause, which
// keeps exactly one countdown and at most one transition delay outstanding
// at any instant.
type Runner struct {
	Category   questions.Category
	Difficulty questions.Difficulty

	// Attempt is the zero-based index of the current question.
	Attempt int

	// Question is the active question.
	Question questions.Question

	// TimeLimit is the full countdown for the current question, in seconds.
	TimeLimit int

	// TimeLeft is the remaining countdown, in seconds.
	TimeLeft int

	Stats    Stats
	Phase    Phase
	Feedback Feedback

	gen    *questions.Generator
	custom map[questions.Difficulty]int
}

// NewRunner creates a Runner and loads the first question.
func NewRunner(gen *questions.Generator, cat questions.Category, diff questions.Difficulty, customTimers map[questions.Difficulty]int) *Runner {
	if gen == nil {
		gen = questions.NewGenerator(nil)
	}
	r := &Runner{
		Category:   cat,
		Difficulty: diff,
		gen:        gen,
		custom:     customTimers,
	}
	r.loadQuestion()
	return r
}

// loadQuestion prepares the question and countdown for the current attempt.
func (r *Runner) loadQuestion() {
	r.Question = r.gen.Generate(r.Attempt, r.Category, r.Difficulty)
	r.TimeLimit = questions.TimeLimit(r.Attempt, r.Difficulty, r.Category, r.custom)
	r.TimeLeft = r.TimeLimit
	r.Phase = PhaseActive
	r.Feedback = FeedbackNone
}
