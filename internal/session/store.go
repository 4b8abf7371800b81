// internal/session/store.go
package session

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/user"
)

// The session database is the client-side analog of the browser's
// localStorage: a durable key-value table holding the bearer token and the
// cached profile, surviving restarts until explicitly cleared.
const schema = `
CREATE TABLE IF NOT EXISTS session (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

const (
	keyToken = "token"
	keyUser  = "user"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetSession stores the token and the profile in a single transaction so a
// crash can never leave one without the other.
func (s *Store) SetSession(token string, u *user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO session (key, value) VALUES (?, ?)
	                ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.Exec(upsert, keyToken, token); err != nil {
		return err
	}
	if _, err := tx.Exec(upsert, keyUser, string(raw)); err != nil {
		return err
	}

	return tx.Commit()
}

// Token returns the stored bearer token, or "" when no session exists.
// No expiry is checked here; a stale token surfaces as a 401 from the API.
func (s *Store) Token() (string, error) {
	var token string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", keyToken).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// User returns the cached profile, or nil when no session exists.
func (s *Store) User() (*user.User, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", keyUser).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}

// SetUser replaces only the cached profile, keeping the token. Used after a
// profile update round trip.
func (s *Store) SetUser(u *user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	const upsert = `INSERT INTO session (key, value) VALUES (?, ?)
	                ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err = s.db.Exec(upsert, keyUser, string(raw))
	return err
}

// Clear wipes the whole session (token and profile together).
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM session")
	return err
}
