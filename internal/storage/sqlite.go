package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/database"
)

// SQLiteKV stores keys in the kv table and lists in the kv_list table
type SQLiteKV struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteKV creates a store on a migrated connection
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db, now: time.Now}
}

func (s *SQLiteKV) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteKV) Put(key string, value []byte) error {
	if err := put(s.db, key, value, s.now()); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Append(list string, value []byte) error {
	if err := appendTo(s.db, list, value, s.now()); err != nil {
		return fmt.Errorf("failed to append to %s: %w", list, err)
	}
	return nil
}

func (s *SQLiteKV) List(list string) ([]Entry, error) {
	rows, err := s.db.Query("SELECT value, created_at FROM kv_list WHERE list = ? ORDER BY seq", list)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", list, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			value     []byte
			createdAt int64
		)
		if err := rows.Scan(&value, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s entry: %w", list, err)
		}
		entries = append(entries, Entry{Value: value, CreatedAt: time.Unix(0, createdAt).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", list, err)
	}
	return entries, nil
}

func (s *SQLiteKV) Record(key string, value []byte) error {
	now := s.now()
	return database.WithTransaction(s.db, func(tx *sql.Tx) error {
		if err := put(tx, key, value, now); err != nil {
			return err
		}
		return appendTo(tx, key, value, now)
	})
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func put(db execer, key string, value []byte, now time.Time) error {
	_, err := db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, now.UnixNano(),
	)
	return err
}

func appendTo(db execer, list string, value []byte, now time.Time) error {
	_, err := db.Exec(
		"INSERT INTO kv_list (list, value, created_at) VALUES (?, ?, ?)",
		list, value, now.UnixNano(),
	)
	return err
}
