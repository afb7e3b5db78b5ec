package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type userRepo struct {
	db *sql.DB
}

var _ UserRepo = (*userRepo)(nil)

func (r *userRepo) GetByName(ctx context.Context, username string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, role, status, settings, unlocked_level, created_at, last_login
		 FROM users WHERE username = ?`, username)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return u, nil
}

func (r *userRepo) Ensure(ctx context.Context, username string) (*User, error) {
	u, err := r.GetByName(ctx, username)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &User{
		ID:        uuid.New().String(),
		Username:  username,
		Role:      RoleUser,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) Save(ctx context.Context, u *User) error {
	settings, err := json.Marshal(u.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	var lastLogin any
	if u.LastLogin != nil {
		lastLogin = u.LastLogin.UTC().Format(time.RFC3339)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, role, status, settings, unlocked_level, created_at, last_login)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (username) DO UPDATE SET
			email = excluded.email,
			role = excluded.role,
			status = excluded.status,
			settings = excluded.settings,
			unlocked_level = excluded.unlocked_level,
			last_login = excluded.last_login`,
		u.ID, u.Username, u.Email, string(u.Role), string(u.Status),
		string(settings), u.UnlockedLevel,
		u.CreatedAt.UTC().Format(time.RFC3339), lastLogin)
	if err != nil {
		return fmt.Errorf("save user %q: %w", u.Username, err)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, email, role, status, settings, unlocked_level, created_at, last_login
		 FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var (
		u         User
		role      string
		status    string
		settings  string
		createdAt string
		lastLogin sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &role, &status,
		&settings, &u.UnlockedLevel, &createdAt, &lastLogin)
	if err != nil {
		return nil, err
	}

	u.Role = Role(role)
	u.Status = Status(status)
	if err := json.Unmarshal([]byte(settings), &u.Settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	if lastLogin.Valid {
		if t, err := time.Parse(time.RFC3339, lastLogin.String); err == nil {
			u.LastLogin = &t
		}
	}
	return &u, nil
}
