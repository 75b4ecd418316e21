// Package storage persists scores and high scores. SQLite (pure-Go
// modernc.org/sqlite, no CGO) is the default; a postgres:// DSN switches to
// PostgreSQL through the pgx stdlib driver. Both share one database/sql code
// path and differ only in schema and placeholder syntax.
package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect selects SQL syntax for a backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Store manages the database connection. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the database named by dsn and runs migrations.
// postgres:// and postgresql:// URLs select PostgreSQL; anything else is a
// SQLite file path (a leading ~ expands to the home directory).
func Open(dsn string) (*Store, error) {
	var (
		db      *sql.DB
		dialect Dialect
		err     error
	)
	if IsPostgresDSN(dsn) {
		dialect = DialectPostgres
		db, err = openPostgres(dsn)
	} else {
		dialect = DialectSQLite
		db, err = openSQLite(dsn)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, dialect: dialect}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Dialect returns the backend in use.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate() error {
	schema := sqliteSchema
	if s.dialect == DialectPostgres {
		schema = postgresSchema
	}
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.addRunIDColumn()
}

// addRunIDColumn upgrades score tables created before runs were tracked,
// such as an arcade database at the same default path.
func (s *Store) addRunIDColumn() error {
	const alter = "ALTER TABLE scores ADD COLUMN %s run_id TEXT NOT NULL DEFAULT ''"
	if s.dialect == DialectPostgres {
		_, err := s.db.Exec(fmt.Sprintf(alter, "IF NOT EXISTS"))
		return err
	}

	ok, err := s.sqliteHasColumn("scores", "run_id")
	if err != nil || ok {
		return err
	}
	_, err = s.db.Exec(fmt.Sprintf(alter, ""))
	return err
}

func (s *Store) sqliteHasColumn(table, column string) (bool, error) {
	rows, err := s.db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// rebind rewrites ? placeholders into $n for PostgreSQL.
// Queries in this package never contain literal question marks.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// parseTime accepts what either driver returns for a timestamp column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
