package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = sql.ErrNoRows

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS artifacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		path TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Session records one upload-to-download workflow.
type Session struct {
	ID        string
	Subject   string
	CreatedAt time.Time
}

// Artifact records one file produced for a session (json, pdf or docx).
type Artifact struct {
	ID        int64
	SessionID string
	Kind      string
	Path      string
	CreatedAt time.Time
}

// UpsertSession records a session, updating the subject if it already exists.
func (s *Store) UpsertSession(id, subject string) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, subject, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET subject = ?`,
		id, subject, time.Now(), subject,
	)
	return err
}

// GetSession returns a session by ID.
func (s *Store) GetSession(id string) (Session, error) {
	var sess Session
	err := s.db.QueryRow(
		`SELECT id, subject, created_at FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.Subject, &sess.CreatedAt)
	return sess, err
}

// AddArtifact records a generated file for a session.
func (s *Store) AddArtifact(sessionID, kind, path string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO artifacts (session_id, kind, path, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, kind, path, time.Now(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListArtifacts returns the artifacts for a session in creation order.
func (s *Store) ListArtifacts(sessionID string) ([]Artifact, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, kind, path, created_at FROM artifacts WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var artifacts []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Kind, &a.Path, &a.CreatedAt); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

// RecentSessions returns the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT id, subject, created_at FROM sessions ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Subject, &sess.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Stats reports totals for the landing page.
type Stats struct {
	Sessions  int `json:"sessions"`
	Artifacts int `json:"artifacts"`
}

// GetStats returns session and artifact counts.
func (s *Store) GetStats() (Stats, error) {
	var st Stats
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&st.Sessions); err != nil {
		return st, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM artifacts`).Scan(&st.Artifacts); err != nil {
		return st, err
	}
	return st, nil
}

// DeleteSession removes a session and its artifact records.
func (s *Store) DeleteSession(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM artifacts WHERE session_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
