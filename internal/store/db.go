package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	dropTables = `
		DROP TABLE IF EXISTS run_results;
		DROP TABLE IF EXISTS runs;
	`

	createTables = `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			target_length INTEGER NOT NULL,
			vocabulary_size INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS run_results (
			run_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			result TEXT NOT NULL,
			FOREIGN KEY (run_id) REFERENCES runs(id),
			PRIMARY KEY (run_id, position)
		);
	`
)

// ErrRunNotFound is returned when a run id has no stored row.
var ErrRunNotFound = errors.New("run not found")

// Run is one stored search.
type Run struct {
	ID             string
	TargetLength   int
	VocabularySize int
	CreatedAt      time.Time
	Results        []string
}

// RunInput describes a finished search to persist.
type RunInput struct {
	TargetLength   int
	VocabularySize int
	Results        []string
}

// InitDB initializes and returns a SQLite database connection
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the run tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(createTables); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// ResetSchema drops and recreates the run tables.
func ResetSchema(db *sql.DB) error {
	if _, err := db.Exec(dropTables); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return EnsureSchema(db)
}

// SaveRun stores a run and its results and returns the new run ID
func SaveRun(db *sql.DB, in RunInput) (string, error) {
	runID := uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertRunQuery := `INSERT INTO runs (id, target_length, vocabulary_size) VALUES (?, ?, ?)`
	if _, err := tx.Exec(insertRunQuery, runID, in.TargetLength, in.VocabularySize); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	insertResultQuery := `INSERT INTO run_results (run_id, position, result) VALUES (?, ?, ?)`
	stmt, err := tx.Prepare(insertResultQuery)
	if err != nil {
		return "", fmt.Errorf("failed to prepare result insert: %w", err)
	}
	defer stmt.Close()

	for i, result := range in.Results {
		if _, err := stmt.Exec(runID, i, result); err != nil {
			return "", fmt.Errorf("failed to insert run result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// GetRun fetches a run and its results by ID
func GetRun(db *sql.DB, id string) (*Run, error) {
	query := `SELECT id, target_length, vocabulary_size, created_at FROM runs WHERE id = ?`

	var r Run
	err := db.QueryRow(query, id).Scan(&r.ID, &r.TargetLength, &r.VocabularySize, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	rows, err := db.Query(`SELECT result FROM run_results WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run results: %w", err)
	}
	defer rows.Close()

	r.Results = []string{}
	for rows.Next() {
		var result string
		if err := rows.Scan(&result); err != nil {
			return nil, fmt.Errorf("failed to scan run result: %w", err)
		}
		r.Results = append(r.Results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run results: %w", err)
	}

	return &r, nil
}

// ListRuns fetches the most recent runs without their results
func ListRuns(db *sql.DB, limit int) ([]Run, error) {
	query := `SELECT id, target_length, vocabulary_size, created_at FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.TargetLength, &r.VocabularySize, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}
