package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wattlab/wattboard/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection holding raw meter readings
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL UNIQUE,
		kwh REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_readings_date ON readings(date);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertReading inserts a daily reading, ignoring duplicates for the same date
func (db *DB) InsertReading(r models.Reading) error {
	query := `
	INSERT OR IGNORE INTO readings (date, kwh, created_at)
	VALUES (?, ?, ?)
	`

	dateStr := r.Date.Format("2006-01-02")
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err := db.conn.Exec(query, dateStr, r.KWh, createdAt)
	if err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}

	return nil
}

// MonthlyTotal is one month's summed consumption
type MonthlyTotal struct {
	Month int
	KWh   float64
}

// MonthlyTotals sums the stored readings per calendar month of a year,
// ordered by month. Months without readings are absent from the result.
func (db *DB) MonthlyTotals(year int) ([]MonthlyTotal, error) {
	query := `
	SELECT CAST(strftime('%m', date) AS INTEGER) AS month, SUM(kwh)
	FROM readings
	WHERE strftime('%Y', date) = ?
	GROUP BY month
	ORDER BY month
	`

	rows, err := db.conn.Query(query, fmt.Sprintf("%04d", year))
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals: %w", err)
	}
	defer rows.Close()

	var results []MonthlyTotal
	for rows.Next() {
		var t MonthlyTotal
		if err := rows.Scan(&t.Month, &t.KWh); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, t)
	}

	return results, rows.Err()
}

// ReadingCount returns the number of stored readings for a year
func (db *DB) ReadingCount(year int) (int, error) {
	query := `SELECT COUNT(*) FROM readings WHERE strftime('%Y', date) = ?`

	var count int
	if err := db.conn.QueryRow(query, fmt.Sprintf("%04d", year)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting readings: %w", err)
	}
	return count, nil
}
