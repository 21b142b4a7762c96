// Package history persists odds conversions to a local sqlite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Record is one recorded conversion: the raw input and the three forms it
// resolved to.
type Record struct {
	ID          string
	Input       string
	Decimal     float64
	Fractional  string
	Moneyline   string
	ImpliedProb float64
	CreatedAt   time.Time
}

// DB handles conversion history storage.
type DB struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		input TEXT NOT NULL,
		decimal REAL NOT NULL,
		fractional TEXT NOT NULL,
		moneyline TEXT NOT NULL,
		implied_prob REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_conversions_created ON conversions(created_at);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Add inserts a conversion record, assigning it an id if it has none, and
// returns the id.
func (d *DB) Add(rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := d.db.Exec(`
		INSERT INTO conversions (id, input, decimal, fractional, moneyline, implied_prob)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Input, rec.Decimal, rec.Fractional, rec.Moneyline, rec.ImpliedProb)
	if err != nil {
		return "", fmt.Errorf("inserting conversion: %w", err)
	}

	return rec.ID, nil
}

// Recent returns up to limit conversions, newest first.
func (d *DB) Recent(limit int) ([]Record, error) {
	rows, err := d.db.Query(`
		SELECT id, input, decimal, fractional, moneyline, implied_prob, created_at
		FROM conversions
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Decimal, &rec.Fractional,
			&rec.Moneyline, &rec.ImpliedProb, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
