package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type scoreRepo struct {
	db *sql.DB
}

var _ ScoreRepo = (*scoreRepo)(nil)

func (r *scoreRepo) Save(ctx context.Context, rec ScoreRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scores (id, user, score, correct_count, error_count, avg_time, date, category, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.User, rec.Score, rec.CorrectCount, rec.ErrorCount,
		rec.AvgTime, rec.Date.UTC().Format(time.RFC3339), rec.Category, rec.Difficulty)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

func (r *scoreRepo) TopByUser(ctx context.Context, user string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user, score, correct_count, error_count, avg_time, date, category, difficulty
		 FROM scores WHERE user = ? ORDER BY score DESC, date DESC LIMIT ?`,
		user, limit)
	if err != nil {
		return nil, fmt.Errorf("top scores for %q: %w", user, err)
	}
	defer rows.Close()

	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreRecord, error) {
	var records []ScoreRecord
	for rows.Next() {
		var (
			rec  ScoreRecord
			date string
		)
		err := rows.Scan(&rec.ID, &rec.User, &rec.Score, &rec.CorrectCount,
			&rec.ErrorCount, &rec.AvgTime, &date, &rec.Category, &rec.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, date); err == nil {
			rec.Date = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
