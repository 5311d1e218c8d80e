package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wattlab/wattboard/pkg/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	return d
}

func TestMonthlyTotals(t *testing.T) {
	db := newTestDB(t)

	readings := []models.Reading{
		{Date: day(t, "2025-01-01"), KWh: 6400.5},
		{Date: day(t, "2025-01-02"), KWh: 6100.25},
		{Date: day(t, "2025-02-01"), KWh: 5900},
		{Date: day(t, "2024-12-31"), KWh: 7000}, // other year, excluded
	}
	for _, r := range readings {
		if err := db.InsertReading(r); err != nil {
			t.Fatalf("inserting reading: %v", err)
		}
	}

	totals, err := db.MonthlyTotals(2025)
	if err != nil {
		t.Fatalf("MonthlyTotals failed: %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d", len(totals))
	}
	if totals[0].Month != 1 || totals[0].KWh != 12500.75 {
		t.Fatalf("unexpected January total: %+v", totals[0])
	}
	if totals[1].Month != 2 || totals[1].KWh != 5900 {
		t.Fatalf("unexpected February total: %+v", totals[1])
	}
}

func TestInsertReadingIgnoresDuplicateDate(t *testing.T) {
	db := newTestDB(t)

	r := models.Reading{Date: day(t, "2025-03-01"), KWh: 6000}
	if err := db.InsertReading(r); err != nil {
		t.Fatalf("inserting reading: %v", err)
	}
	r.KWh = 9999
	if err := db.InsertReading(r); err != nil {
		t.Fatalf("inserting duplicate: %v", err)
	}

	totals, err := db.MonthlyTotals(2025)
	if err != nil {
		t.Fatalf("MonthlyTotals failed: %v", err)
	}
	if len(totals) != 1 || totals[0].KWh != 6000 {
		t.Fatalf("duplicate was not ignored: %+v", totals)
	}
}

func TestReadingCount(t *testing.T) {
	db := newTestDB(t)

	if err := db.InsertReading(models.Reading{Date: day(t, "2025-05-10"), KWh: 6000}); err != nil {
		t.Fatalf("inserting reading: %v", err)
	}
	if err := db.InsertReading(models.Reading{Date: day(t, "2024-05-10"), KWh: 6000}); err != nil {
		t.Fatalf("inserting reading: %v", err)
	}

	count, err := db.ReadingCount(2025)
	if err != nil {
		t.Fatalf("ReadingCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 reading for 2025, got %d", count)
	}
}
