// Package index persists the on-disk location of editable events and
// answers the narrow "where does this event live" query the editors need.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Location points at an event's editable representation. Line is nil when
// the event owns the whole file rather than a single line.
type Location struct {
	Path string
	Line *int
}

// Entry is one indexed event.
type Entry struct {
	ID       string
	Calendar int
	Title    string
	Location Location
}

// Index is a sqlite-backed event location index.
type Index struct {
	db      *sql.DB
	dataDir string
}

// Open creates or opens the index under dataDir.
func Open(dataDir string) (*Index, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "events.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	idx := &Index{db: db, dataDir: dataDir}
	if err := idx.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize index: %w", err)
	}
	return idx, nil
}

func (i *Index) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		calendar INTEGER NOT NULL,
		title TEXT NOT NULL,
		path TEXT NOT NULL,
		line INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_events_path ON events(path);
	`
	_, err := i.db.Exec(schema)
	return err
}

// NewID returns a fresh event identifier.
func NewID() string {
	return uuid.New().String()
}

// Put records or replaces an event's location.
func (i *Index) Put(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry has no id")
	}
	if e.Location.Path == "" {
		return fmt.Errorf("entry %s has no path", e.ID)
	}

	var line interface{}
	if e.Location.Line != nil {
		line = *e.Location.Line
	}
	query := `
	INSERT OR REPLACE INTO events (id, calendar, title, path, line)
	VALUES (?, ?, ?, ?, ?)
	`
	_, err := i.db.Exec(query, e.ID, e.Calendar, e.Title, e.Location.Path, line)
	return err
}

// Resolve returns the location of an event, or false when the event has no
// editable on-disk representation.
func (i *Index) Resolve(id string) (Location, bool, error) {
	query := `SELECT path, line FROM events WHERE id = ?`

	var loc Location
	var line sql.NullInt64
	err := i.db.QueryRow(query, id).Scan(&loc.Path, &line)
	if err == sql.ErrNoRows {
		return Location{}, false, nil
	}
	if err != nil {
		return Location{}, false, err
	}
	if line.Valid {
		n := int(line.Int64)
		loc.Line = &n
	}
	return loc, true, nil
}

// Delete removes an event from the index.
func (i *Index) Delete(id string) error {
	_, err := i.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	return err
}

// ByPath lists the events indexed under a file, ordered by line.
func (i *Index) ByPath(path string) ([]Entry, error) {
	query := `SELECT id, calendar, title, path, line FROM events WHERE path = ? ORDER BY line`

	rows, err := i.db.Query(query, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var line sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Calendar, &e.Title, &e.Location.Path, &line); err != nil {
			return nil, err
		}
		if line.Valid {
			n := int(line.Int64)
			e.Location.Line = &n
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (i *Index) Close() error {
	return i.db.Close()
}
