package session

import (
	"strconv"
	"strings"
	"time"
)

// Tick delivers one second of countdown. It reports true when the countdown
// reached zero and the attempt was judged as a timeout. Ticks outside the
// active phase are ignored, so a stale timer firing during feedback or after
// completion cannot double-judge an attempt.
func (r *Runner) Tick() bool {
	if r.Phase != PhaseActive {
		return false
	}

	r.TimeLeft--
	if r.TimeLeft > 0 {
		return false
	}

	r.TimeLeft = 0
	r.Stats.Incorrect++
	r.Stats.TotalTime += r.TimeLimit
	r.Feedback = FeedbackTimeout
	r.Phase = PhaseFeedback
	return true
}

// Submit judges the player's input against the current question. It reports
// false when no judging happened: duplicate submissions during the feedback
// pause and submissions after completion are ignored. Non-numeric input is
// judged as simply incorrect, not treated as an error.
func (r *Runner) Submit(input string) bool {
	if r.Phase != PhaseActive {
		return false
	}

	answer, err := strconv.Atoi(strings.TrimSpace(input))
	correct := err == nil && answer == r.Question.Answer

	// Fast answers cost little: only the seconds consumed are charged.
	r.Stats.TotalTime += r.TimeLimit - r.TimeLeft

	if correct {
		r.Stats.Correct++
		r.Feedback = FeedbackCorrect
	} else {
		r.Stats.Incorrect++
		r.Feedback = FeedbackIncorrect
	}
	r.Phase = PhaseFeedback
	return true
}

// FeedbackDelay returns how long the current feedback should stay on screen
// before the caller invokes Advance.
func (r *Runner) FeedbackDelay() time.Duration {
	if r.Feedback == FeedbackCorrect {
		return FeedbackCorrectDelay
	}
	return FeedbackWrongDelay
}

// Advance moves past the feedback pause to the next question, or finalizes
// the session when all attempts have been served. It reports false once the
// session is complete.
func (r *Runner) Advance() bool {
	if r.Phase != PhaseFeedback {
		return r.Phase != PhaseComplete
	}

	r.Attempt++
	if r.Attempt >= TotalQuestions {
		r.Phase = PhaseComplete
		r.Feedback = FeedbackNone
		return false
	}

	r.loadQuestion()
	return true
}

// Done reports whether the session has reached its terminal state.
func (r *Runner) Done() bool {
	return r.Phase == PhaseComplete
}
