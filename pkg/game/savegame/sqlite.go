package savegame

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the save in a SQLite database with one row for the
// player and one row per held item.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and runs migrations.
// ":memory:" gives a throwaway database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A pooled second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	version := 0
	s.db.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS save (
				id       INTEGER PRIMARY KEY CHECK (id = 1),
				position TEXT NOT NULL,
				steps    INTEGER NOT NULL DEFAULT 0,
				seed     INTEGER,
				saved_at TEXT NOT NULL DEFAULT (datetime('now'))
			);

			CREATE TABLE IF NOT EXISTS save_items (
				ordinal INTEGER PRIMARY KEY,
				name    TEXT NOT NULL
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return err
		}
	}
	return nil
}

// Save replaces the stored game with st
func (s *SQLiteStore) Save(st State) error {
	st = normalize(st)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	var seed sql.NullInt64
	if st.HasSeed {
		seed = sql.NullInt64{Int64: st.Seed, Valid: true}
	}
	if _, err := tx.Exec(`
		INSERT INTO save (id, position, steps, seed, saved_at) VALUES (1, ?, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			position = excluded.position,
			steps    = excluded.steps,
			seed     = excluded.seed,
			saved_at = excluded.saved_at`,
		st.Position, st.Steps, seed); err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM save_items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	for i, name := range st.Items {
		if _, err := tx.Exec("INSERT INTO save_items (ordinal, name) VALUES (?, ?)", i, name); err != nil {
			return fmt.Errorf("write item %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load returns the stored game, or false if nothing has been saved
func (s *SQLiteStore) Load() (State, bool, error) {
	var st State
	var seed sql.NullInt64
	err := s.db.QueryRow("SELECT position, steps, seed FROM save WHERE id = 1").Scan(&st.Position, &st.Steps, &seed)
	if err == sql.ErrNoRows {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("read save: %w", err)
	}
	if seed.Valid {
		st.Seed = seed.Int64
		st.HasSeed = true
	}

	rows, err := s.db.Query("SELECT name FROM save_items ORDER BY ordinal")
	if err != nil {
		return State{}, false, fmt.Errorf("read items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return State{}, false, fmt.Errorf("scan item: %w", err)
		}
		st.Items = append(st.Items, name)
	}
	if err := rows.Err(); err != nil {
		return State{}, false, fmt.Errorf("read items: %w", err)
	}

	return normalize(st), true, nil
}
