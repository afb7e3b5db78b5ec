package store

import (
	"context"
	"time"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
)

// Role determines what a user may do. Admins bypass every difficulty lock
// and never participate in level progression.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Status marks whether an account may play.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusBanned Status = "BANNED"
)

// Settings is the per-user settings bag, stored as JSON.
type Settings struct {
	// CustomTimers overrides the per-difficulty countdown, in seconds.
	CustomTimers map[questions.Difficulty]int `json:"customTimers,omitempty"`

	// UnlockedLevels is the legacy category→level map. The category_progress
	// table is the source of truth; this field is kept readable for records
	// written by older clients and is never written back.
	UnlockedLevels map[string]int `json:"unlockedLevels,omitempty"`
}

// User is a player account.
type User struct {
	ID       string
	Username string
	Email    string
	Role     Role
	Status   Status
	Settings Settings

	// UnlockedLevel is the legacy single-scalar unlocked level. It is derived
	// from the per-category table (the maximum across categories) and exists
	// only for compatibility with old score exports.
	UnlockedLevel int

	CreatedAt time.Time
	LastLogin *time.Time
}

// IsAdmin reports whether the user bypasses difficulty locks.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ScoreRecord is one finished session's result.
type ScoreRecord struct {
	ID           string
	User         string
	Score        int
	CorrectCount int
	ErrorCount   int
	AvgTime      float64
	Date         time.Time
	Category     string
	Difficulty   string
}

// UserRepo manages player accounts.
type UserRepo interface {
	// GetByName returns the user, or nil when no such user exists.
	GetByName(ctx context.Context, username string) (*User, error)

	// Ensure returns the user, creating a default active USER account on
	// first sight of the name.
	Ensure(ctx context.Context, username string) (*User, error)

	// Save upserts the user.
	Save(ctx context.Context, u *User) error

	// List returns all users, ordered by username.
	List(ctx context.Context) ([]User, error)
}

// ScoreRepo manages score records.
type ScoreRepo interface {
	// Save stores a new score record.
	Save(ctx context.Context, rec ScoreRecord) error

	// TopByUser returns the user's best records, sorted by score descending.
	TopByUser(ctx context.Context, user string, limit int) ([]ScoreRecord, error)
}

// ProgressRepo manages per-category progress. It owns the monotonicity
// invariant: a stored unlocked level only ever increases.
type ProgressRepo interface {
	// ForUser returns all progress rows for a user.
	ForUser(ctx context.Context, user string) ([]progress.CategoryProgress, error)

	// UnlockedLevel returns the stored unlocked level for a category,
	// 0 when no progress row exists yet.
	UnlockedLevel(ctx context.Context, user string, cat questions.Category) (int, error)

	// RecordGame accumulates a finished session into the category totals.
	RecordGame(ctx context.Context, user string, cat questions.Category, score, correct, errors, timeSecs int) error

	// RaiseUnlockedLevel raises the stored level for a category if and only
	// if newLevel exceeds the currently stored value.
	RaiseUnlockedLevel(ctx context.Context, user string, cat questions.Category, newLevel int) error
}
