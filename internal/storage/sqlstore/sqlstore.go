// Package sqlstore implements the tracker, category and record stores on top
// of database/sql. The sqlite and postgres packages wrap it with their own
// connection lifecycle.
package sqlstore

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/julianstephens/tracker/internal/errors"
)

// Dialect selects placeholder syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Store holds an open database handle. It is safe for concurrent use; each
// mutation runs in its own transaction.
type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, now: time.Now}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// querier is the subset shared by *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type boundQuerier struct {
	q querier
	s *Store
}

func (b boundQuerier) Exec(query string, args ...any) (sql.Result, error) {
	return b.q.Exec(b.s.rebind(query), args...)
}

func (b boundQuerier) Query(query string, args ...any) (*sql.Rows, error) {
	return b.q.Query(b.s.rebind(query), args...)
}

func (b boundQuerier) QueryRow(query string, args ...any) *sql.Row {
	return b.q.QueryRow(b.s.rebind(query), args...)
}

func (s *Store) conn() querier {
	return boundQuerier{q: s.db, s: s}
}

// withTx runs fn in a transaction and commits when fn returns nil. Errors are
// classified as persistence failures unless they already carry a domain sentinel.
func (s *Store) withTx(op, resource string, fn func(q querier) error) error {
	if s.db == nil {
		return apperrors.Persistence(op, resource, errNotLoaded)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return apperrors.Persistence(op, resource, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(boundQuerier{q: tx, s: s}); err != nil {
		return apperrors.Persistence(op, resource, err)
	}
	if err := tx.Commit(); err != nil {
		return apperrors.Persistence(op, resource, err)
	}
	return nil
}

func (s *Store) ready(op, resource string) error {
	if s.db == nil {
		return apperrors.Persistence(op, resource, errNotLoaded)
	}
	return nil
}

var errNotLoaded = errors.New("storage not loaded")

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
