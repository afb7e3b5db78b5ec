// Package api implements the persistence boundary against the remote REST
// backend. The Client satisfies the same repository interfaces as the local
// SQLite store, so the rest of the app never knows which one it talks to.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/amical-najul/SumasRestas/internal/progress"
	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/store"
)

const defaultTimeout = 10 * time.Second

// Client talks to the SumasRestas backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ store.ScoreRepo    = (*Client)(nil)
	_ store.ProgressRepo = (*Client)(nil)
)

// New creates a Client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// scoreRecord is the wire form of a score record.
type scoreRecord struct {
	ID           string  `json:"id,omitempty"`
	User         string  `json:"user"`
	Score        int     `json:"score"`
	CorrectCount int     `json:"correctCount"`
	ErrorCount   int     `json:"errorCount"`
	AvgTime      float64 `json:"avgTime"`
	Date         string  `json:"date"`
	Category     string  `json:"category,omitempty"`
	Difficulty   string  `json:"difficulty,omitempty"`
}

// categoryProgress is the wire form of a per-category progress row.
type categoryProgress struct {
	Category      string `json:"category"`
	UnlockedLevel int    `json:"unlocked_level"`
	TotalGames    int    `json:"total_games"`
	TotalScore    int    `json:"total_score"`
	TotalCorrect  int    `json:"total_correct"`
	TotalErrors   int    `json:"total_errors"`
	TotalTime     int    `json:"total_time_seconds"`
}

// Save submits a finished session's score record. A zero Date is stamped
// here, so callers may leave it unset just like with the local store.
func (c *Client) Save(ctx context.Context, rec store.ScoreRecord) error {
	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}
	body := scoreRecord{
		ID:           rec.ID,
		User:         rec.User,
		Score:        rec.Score,
		CorrectCount: rec.CorrectCount,
		ErrorCount:   rec.ErrorCount,
		AvgTime:      rec.AvgTime,
		Date:         rec.Date.UTC().Format(time.RFC3339),
		Category:     rec.Category,
		Difficulty:   rec.Difficulty,
	}
	return c.post(ctx, "/scores", body)
}

// TopByUser fetches the user's scores and returns the best ones, sorted by
// score descending. The backend returns the full list; trimming happens here.
func (c *Client) TopByUser(ctx context.Context, user string, limit int) ([]store.ScoreRecord, error) {
	if limit <= 0 {
		limit = 5
	}

	var wire []scoreRecord
	if err := c.get(ctx, "/scores?user="+url.QueryEscape(user), &wire); err != nil {
		return nil, err
	}

	sort.Slice(wire, func(i, j int) bool { return wire[i].Score > wire[j].Score })
	if len(wire) > limit {
		wire = wire[:limit]
	}

	records := make([]store.ScoreRecord, 0, len(wire))
	for _, w := range wire {
		rec := store.ScoreRecord{
			ID:           w.ID,
			User:         w.User,
			Score:        w.Score,
			CorrectCount: w.CorrectCount,
			ErrorCount:   w.ErrorCount,
			AvgTime:      w.AvgTime,
			Category:     w.Category,
			Difficulty:   w.Difficulty,
		}
		if t, err := time.Parse(time.RFC3339, w.Date); err == nil {
			rec.Date = t
		}
		records = append(records, rec)
	}
	return records, nil
}

// ForUser fetches all per-category progress rows for a user.
func (c *Client) ForUser(ctx context.Context, user string) ([]progress.CategoryProgress, error) {
	var wire []categoryProgress
	if err := c.get(ctx, "/progress?user="+url.QueryEscape(user), &wire); err != nil {
		return nil, err
	}

	result := make([]progress.CategoryProgress, 0, len(wire))
	for _, w := range wire {
		result = append(result, progress.CategoryProgress{
			Category:      questions.Category(w.Category),
			UnlockedLevel: w.UnlockedLevel,
			TotalGames:    w.TotalGames,
			TotalScore:    w.TotalScore,
			TotalCorrect:  w.TotalCorrect,
			TotalErrors:   w.TotalErrors,
			TotalTime:     w.TotalTime,
		})
	}
	return result, nil
}

// UnlockedLevel returns the stored unlocked level for one category,
// 0 when the user has no progress row for it yet.
func (c *Client) UnlockedLevel(ctx context.Context, user string, cat questions.Category) (int, error) {
	rows, err := c.ForUser(ctx, user)
	if err != nil {
		return 0, err
	}
	for _, p := range rows {
		if p.Category == cat {
			return p.UnlockedLevel, nil
		}
	}
	return 0, nil
}

// RecordGame accumulates a finished session into the category totals.
func (c *Client) RecordGame(ctx context.Context, user string, cat questions.Category, score, correct, errors, timeSecs int) error {
	body := map[string]any{
		"user":               user,
		"category":           string(cat),
		"score":              score,
		"correct":            correct,
		"errors":             errors,
		"total_time_seconds": timeSecs,
	}
	return c.post(ctx, "/progress", body)
}

// RaiseUnlockedLevel asks the backend to raise the stored level. The backend
// owns the monotonicity invariant and ignores requests that do not exceed
// the stored value.
func (c *Client) RaiseUnlockedLevel(ctx context.Context, user string, cat questions.Category, newLevel int) error {
	body := map[string]any{
		"user":     user,
		"category": string(cat),
		"level":    newLevel,
	}
	return c.post(ctx, "/progress/unlock", body)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: unexpected status %s", path, resp.Status)
	}
	return nil
}
