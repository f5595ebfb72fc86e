// Package analytics is the append-only event log behind the admin dashboard.
// Events are never updated or deleted; the only writes are single-row
// inserts, and reads are the three aggregation queries the dashboard needs.
package analytics

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// timeFormat is a fixed-width ISO-8601 layout (millisecond precision). Fixed
// width keeps the TEXT column's lexicographic order equal to chronological
// order, which the recent-events query relies on.
const timeFormat = "2006-01-02T15:04:05.000Z"

// defaultRecentLimit is used when RecentEvents is called with a
// non-positive limit.
const defaultRecentLimit = 50

// Event is one logged tool invocation. Query, Category, and UserMessage are
// nil when the caller omitted them.
type Event struct {
	ID          int64     `json:"id"`
	Tool        string    `json:"tool"`
	Query       *string   `json:"query"`
	Category    *string   `json:"category"`
	UserMessage *string   `json:"user_message"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToolCount is one row of the per-tool aggregation.
type ToolCount struct {
	Tool  string `json:"tool"`
	Count int    `json:"count"`
}

// CategoryCount is one row of the per-category aggregation.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Store wraps a SQLite database holding the analytics event log. A Store is
// safe for concurrent use: the single-connection pool serializes writers,
// and every insert is one atomic row append.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the event log at path and runs pending migrations.
// Pass ":memory:" for an in-memory database (used by tests). Close must be
// called exactly once when the store is no longer needed.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection. The store must not be
// used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate reads embedded SQL migration files and applies any that haven't been run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// AppliedMigrations returns the list of applied migration versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Insert appends one event. The timestamp is stamped here with the current
// wall-clock time; e.ID and e.Timestamp are ignored on input. Omitted
// optional fields are stored as NULL.
func (s *Store) Insert(e Event) error {
	if e.Tool == "" {
		return fmt.Errorf("inserting analytics event: tool is required")
	}
	_, err := s.db.Exec(`
		INSERT INTO analytics_events (tool, query, category, user_message, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		e.Tool, nullable(e.Query), nullable(e.Category), nullable(e.UserMessage),
		time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting analytics event: %w", err)
	}
	return nil
}

// ToolCounts returns one row per distinct tool, ordered by count descending.
func (s *Store) ToolCounts() ([]ToolCount, error) {
	rows, err := s.db.Query(`
		SELECT tool, COUNT(*) AS count
		FROM analytics_events
		GROUP BY tool
		ORDER BY count DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying tool counts: %w", err)
	}
	defer rows.Close()

	counts := []ToolCount{}
	for rows.Next() {
		var c ToolCount
		if err := rows.Scan(&c.Tool, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning tool count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CategoryCounts returns one row per distinct non-NULL category, ordered by
// count descending. Events without a category are excluded entirely.
func (s *Store) CategoryCounts() ([]CategoryCount, error) {
	rows, err := s.db.Query(`
		SELECT category, COUNT(*) AS count
		FROM analytics_events
		WHERE category IS NOT NULL
		GROUP BY category
		ORDER BY count DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying category counts: %w", err)
	}
	defer rows.Close()

	counts := []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RecentEvents returns up to limit events, most recent first. Events sharing
// a timestamp are ordered by id descending, so the later insert wins.
// A non-positive limit falls back to the default of 50.
func (s *Store) RecentEvents(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.db.Query(`
		SELECT id, tool, query, category, user_message, timestamp
		FROM analytics_events
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		var query, category, userMessage sql.NullString
		var ts string
		if err := rows.Scan(&e.ID, &e.Tool, &query, &category, &userMessage, &ts); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		t, err := time.Parse(timeFormat, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp for event %d: %w", e.ID, err)
		}
		e.Timestamp = t
		e.Query = optional(query)
		e.Category = optional(category)
		e.UserMessage = optional(userMessage)
		events = append(events, e)
	}
	return events, rows.Err()
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optional(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
