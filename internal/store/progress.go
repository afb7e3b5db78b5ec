package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
)

type progressRepo struct {
	db *sql.DB
}

var _ ProgressRepo = (*progressRepo)(nil)

func (r *progressRepo) ForUser(ctx context.Context, user string) ([]progress.CategoryProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, unlocked_level, total_games, total_score, total_correct, total_errors, total_time_seconds
		 FROM category_progress WHERE username = ? ORDER BY category`, user)
	if err != nil {
		return nil, fmt.Errorf("progress for %q: %w", user, err)
	}
	defer rows.Close()

	var result []progress.CategoryProgress
	for rows.Next() {
		var (
			p   progress.CategoryProgress
			cat string
		)
		err := rows.Scan(&cat, &p.UnlockedLevel, &p.TotalGames, &p.TotalScore,
			&p.TotalCorrect, &p.TotalErrors, &p.TotalTime)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		p.Category = questions.Category(cat)
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *progressRepo) UnlockedLevel(ctx context.Context, user string, cat questions.Category) (int, error) {
	var level int
	err := r.db.QueryRowContext(ctx,
		`SELECT unlocked_level FROM category_progress WHERE username = ? AND category = ?`,
		user, string(cat)).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unlocked level for %q/%s: %w", user, cat, err)
	}
	return level, nil
}

func (r *progressRepo) RecordGame(ctx context.Context, user string, cat questions.Category, score, correct, errCount, timeSecs int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO category_progress
			(username, category, total_games, total_score, total_correct, total_errors, total_time_seconds)
		 VALUES (?, ?, 1, ?, ?, ?, ?)
		 ON CONFLICT (username, category) DO UPDATE SET
			total_games = total_games + 1,
			total_score = total_score + excluded.total_score,
			total_correct = total_correct + excluded.total_correct,
			total_errors = total_errors + excluded.total_errors,
			total_time_seconds = total_time_seconds + excluded.total_time_seconds`,
		user, string(cat), score, correct, errCount, timeSecs)
	if err != nil {
		return fmt.Errorf("record game for %q/%s: %w", user, cat, err)
	}
	return nil
}

// RaiseUnlockedLevel enforces the monotonicity invariant at the database
// level: the update only applies when the new value exceeds the stored one,
// so a stale or replayed unlock request can never regress a level.
func (r *progressRepo) RaiseUnlockedLevel(ctx context.Context, user string, cat questions.Category, newLevel int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO category_progress (username, category, unlocked_level)
		 VALUES (?, ?, ?)
		 ON CONFLICT (username, category) DO UPDATE SET
			unlocked_level = excluded.unlocked_level
		 WHERE excluded.unlocked_level > category_progress.unlocked_level`,
		user, string(cat), newLevel)
	if err != nil {
		return fmt.Errorf("raise unlocked level for %q/%s: %w", user, cat, err)
	}

	// Keep the legacy scalar on the user row in sync as a derived maximum.
	_, err = r.db.ExecContext(ctx,
		`UPDATE users SET unlocked_level = (
			SELECT COALESCE(MAX(unlocked_level), 0) FROM category_progress WHERE username = ?
		 ) WHERE username = ?`, user, user)
	if err != nil {
		return fmt.Errorf("sync legacy level for %q: %w", user, err)
	}
	return nil
}
