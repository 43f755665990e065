// Package session persists the per-visitor shell state between requests.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/docshell/internal/db"
	"github.com/ziadkadry99/docshell/internal/navigation"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Session is the stored part of a visitor's shell state. The active routes
// are not stored; they are reloaded from the catalog for ActiveVersion.
type Session struct {
	ID            string
	ActiveVersion navigation.VersionID
	SidebarOpen   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Store provides CRUD operations for shell sessions.
type Store struct {
	db *db.DB
}

// NewStore creates a new session store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Create inserts a new session for version with the sidebar closed.
func (s *Store) Create(ctx context.Context, version navigation.VersionID) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:            uuid.NewString(),
		ActiveVersion: version,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shell_sessions (id, active_version, sidebar_open, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.ID, string(sess.ActiveVersion), sess.SidebarOpen, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// Get retrieves a session by ID.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	sess := &Session{}
	var version string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, active_version, sidebar_open, created_at, updated_at
		 FROM shell_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &version, &sess.SidebarOpen, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	sess.ActiveVersion = navigation.VersionID(version)
	return sess, nil
}

// Save writes sess, inserting it if it does not exist yet.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shell_sessions (id, active_version, sidebar_open, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   active_version = excluded.active_version,
		   sidebar_open = excluded.sidebar_open,
		   updated_at = excluded.updated_at`,
		sess.ID, string(sess.ActiveVersion), sess.SidebarOpen, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM shell_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Prune removes sessions not updated since before. Returns the number removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shell_sessions WHERE updated_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	return res.RowsAffected()
}
