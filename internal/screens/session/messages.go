package session

import (
	"time"

	sess "github.com/amical-najul/SumasRestas/internal/session"
)

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}

// persistDoneMsg carries the result of saving the finished session.
type persistDoneMsg struct {
	Summary  sess.Summary
	NewLevel int
	Unlocked bool
	Err      error
}
