package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	apperrors "countdown/internal/errors"

	_ "github.com/mattn/go-sqlite3"
)

// Outcome describes how a countdown session ended.
type Outcome string

const (
	OutcomeExpired   Outcome = "expired"
	OutcomeCancelled Outcome = "cancelled"
)

// Session is one countdown window from open to close.
type Session struct {
	ID        int64
	Seconds   int
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   Outcome
}

// History keeps a log of finished countdown sessions in SQLite.
type History struct {
	db     *sql.DB
	dbFile string
}

// OpenHistory opens (and if needed creates) the history database.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrHistory, "create history directory")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrHistory, "open history database")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrHistory, "ping history database")
	}

	history := &History{db: db, dbFile: path}
	if err := history.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return history, nil
}

func (history *History) createTables(ctx context.Context) error {
	_, err := history.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seconds INTEGER NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL,
			outcome TEXT NOT NULL
		)`)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrHistory, "create sessions table")
	}
	return nil
}

// Record stores a finished session and returns its id.
func (history *History) Record(ctx context.Context, session Session) (int64, error) {
	if session.Seconds <= 0 {
		return 0, apperrors.Newf(apperrors.ErrHistory, "session must last a positive number of seconds, got %d", session.Seconds)
	}
	result, err := history.db.ExecContext(ctx,
		`INSERT INTO sessions (seconds, started_at, ended_at, outcome) VALUES (?, ?, ?, ?)`,
		session.Seconds, session.StartedAt.UTC(), session.EndedAt.UTC(), string(session.Outcome))
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrHistory, "insert session")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrHistory, "read session id")
	}
	return id, nil
}

// Recent returns up to limit sessions, newest first.
func (history *History) Recent(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := history.db.QueryContext(ctx,
		`SELECT id, seconds, started_at, ended_at, outcome FROM sessions ORDER BY ended_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrHistory, "query sessions")
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var session Session
		var outcome string
		if err := rows.Scan(&session.ID, &session.Seconds, &session.StartedAt, &session.EndedAt, &outcome); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrHistory, "scan session")
		}
		session.Outcome = Outcome(outcome)
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrHistory, "iterate sessions")
	}
	return sessions, nil
}

// Close releases the database handle.
func (history *History) Close() error {
	if history == nil || history.db == nil {
		return nil
	}
	if err := history.db.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrHistory, "close history database")
	}
	return nil
}
