// Package outbox keeps a local SQLite record of simulated contact
// transmissions. Nothing here talks to a network.
package outbox

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS transmissions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	body TEXT NOT NULL,
	sent_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transmissions_sent_at ON transmissions(sent_at);
`

type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

var _ ports.Outbox = (*Store)(nil)

// Open creates or opens <dataDir>/outbox.db and applies the schema.
func Open(dataDir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, opErr("outbox.mkdir", dataDir, err)
	}
	path := filepath.Join(dataDir, "outbox.db")

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, opErr("outbox.open", path, err)
	}
	// A single writer keeps SQLite happy; the TUI saves one message at a time.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, opErr("outbox.ping", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, opErr("outbox.migrate", path, err)
	}

	s := &Store{db: db, path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error { return s.db.Close() }

// Save stores msg, assigning an id and timestamp when missing.
func (s *Store) Save(ctx context.Context, msg domain.ContactMessage) (string, error) {
	if strings.TrimSpace(msg.Body) == "" {
		return "", &domain.OpError{
			Op:   "outbox.save",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = s.now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transmissions (id, name, email, body, sent_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Body, msg.SentAt.UTC().UnixMilli(),
	)
	if err != nil {
		return "", opErr("outbox.save", s.path, err)
	}
	return msg.ID, nil
}

// List returns the newest transmissions first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, body, sent_at FROM transmissions ORDER BY sent_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, opErr("outbox.list", s.path, err)
	}
	defer rows.Close()

	var out []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		var ms int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &ms); err != nil {
			return nil, opErr("outbox.scan", s.path, err)
		}
		m.SentAt = time.UnixMilli(ms).UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, opErr("outbox.list", s.path, err)
	}
	return out, nil
}

func opErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
