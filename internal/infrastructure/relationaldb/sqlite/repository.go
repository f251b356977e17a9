// Package sqlite writes registry snapshots to a SQLite database.
//
// A snapshot is an export artefact for other tools (sqlite3, BI tools); the
// registry never reloads it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/infrastructure/config"
)

// birthDateLayout is the column format of people.birth_date.
const birthDateLayout = "2006-01-02"

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.SnapshotWriter using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (or creates) the database at cfg.Path.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: keeps ":memory:" databases on a single handle.
	db.SetMaxOpenConns(1)

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS people (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		gender TEXT NOT NULL,
		birthplace TEXT NOT NULL,
		residence TEXT NOT NULL,
		group_code TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_people_last_name ON people(last_name);
	CREATE INDEX IF NOT EXISTS idx_people_birthplace ON people(birthplace);

	-- Ordered list fields (education, workplace, movie)
	CREATE TABLE IF NOT EXISTS person_items (
		person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		position INTEGER NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (person_id, kind, position)
	);
	CREATE INDEX IF NOT EXISTS idx_person_items_value ON person_items(kind, value);

	-- Undirected relations, stored with person_a <= person_b
	CREATE TABLE IF NOT EXISTS relations (
		position INTEGER PRIMARY KEY,
		person_a TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		person_b TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		UNIQUE(person_a, person_b)
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		people INTEGER NOT NULL,
		relations INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveSnapshot replaces the stored people and relations with the given ones
// in a single transaction and records the run in the snapshots table.
func (r *Repository) SaveSnapshot(ctx context.Context, people []entities.Person, relations []entities.Relation) (*entities.SnapshotInfo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM relations", "DELETE FROM person_items", "DELETE FROM people"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("clearing previous snapshot: %w", err)
		}
	}

	if err := insertPeople(ctx, tx, people); err != nil {
		return nil, err
	}
	if err := insertRelations(ctx, tx, relations); err != nil {
		return nil, err
	}

	info := &entities.SnapshotInfo{
		ID:        generateUUID(),
		People:    len(people),
		Relations: len(relations),
		CreatedAt: timeNow(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, people, relations, created_at) VALUES (?, ?, ?, ?)`,
		info.ID, info.People, info.Relations, info.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving snapshot record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing snapshot: %w", err)
	}
	return info, nil
}

func insertPeople(ctx context.Context, tx *sql.Tx, people []entities.Person) error {
	personStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO people (id, first_name, last_name, birth_date, gender, birthplace, residence, group_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing person insert: %w", err)
	}
	defer personStmt.Close()

	itemStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO person_items (person_id, kind, position, value) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing item insert: %w", err)
	}
	defer itemStmt.Close()

	for i := range people {
		p := &people[i]
		_, err := personStmt.ExecContext(ctx,
			p.ID, p.FirstName, p.LastName, p.BirthDate.Format(birthDateLayout),
			p.Gender, p.Birthplace, p.Residence, p.GroupCode,
		)
		if err != nil {
			return fmt.Errorf("saving person %s: %w", p.ID, err)
		}

		lists := []struct {
			kind   string
			values []string
		}{
			{"education", p.Education},
			{"workplace", p.Workplaces},
			{"movie", p.FavoriteMovies},
		}
		for _, list := range lists {
			for pos, value := range list.values {
				if _, err := itemStmt.ExecContext(ctx, p.ID, list.kind, pos, value); err != nil {
					return fmt.Errorf("saving %s of person %s: %w", list.kind, p.ID, err)
				}
			}
		}
	}
	return nil
}

func insertRelations(ctx context.Context, tx *sql.Tx, relations []entities.Relation) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO relations (position, person_a, person_b) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing relation insert: %w", err)
	}
	defer stmt.Close()

	for i, rel := range relations {
		key := rel.Key()
		if _, err := stmt.ExecContext(ctx, i, key.Lo, key.Hi); err != nil {
			return fmt.Errorf("saving relation %s-%s: %w", rel.PersonA, rel.PersonB, err)
		}
	}
	return nil
}

// CountPeople returns the number of people in the current snapshot.
func (r *Repository) CountPeople(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM people")
}

// CountRelations returns the number of relations in the current snapshot.
func (r *Repository) CountRelations(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM relations")
}

func (r *Repository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return n, nil
}

// ListSnapshots returns all recorded export runs, newest first.
func (r *Repository) ListSnapshots(ctx context.Context) ([]entities.SnapshotInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, people, relations, created_at FROM snapshots ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var result []entities.SnapshotInfo
	for rows.Next() {
		var s entities.SnapshotInfo
		if err := rows.Scan(&s.ID, &s.People, &s.Relations, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
