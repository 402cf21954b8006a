package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const dbFile = ".duty/students.db"

// pragmas run before the schema is applied
var pragmas = []struct{ stmt, desc string }{
	{"PRAGMA journal_mode=WAL", "enable WAL mode"},
	{"PRAGMA busy_timeout=500", "set busy timeout"},
	{"PRAGMA synchronous=NORMAL", "set synchronous mode"},
}

// DB wraps the database connection
type DB struct {
	conn    *sql.DB
	baseDir string
}

// Open opens an existing database
func Open(baseDir string) (*DB, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found: run 'duty init' first")
	}

	return open(baseDir, dbPath)
}

// Initialize creates the database if needed and ensures the schema exists
func Initialize(baseDir string) (*DB, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	return open(baseDir, dbPath)
}

func open(baseDir, dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, p := range pragmas {
		if _, err := conn.Exec(p.stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", p.desc, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{conn: conn, baseDir: baseDir}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

// BaseDir returns the base directory for the database
func (db *DB) BaseDir() string {
	return db.baseDir
}
