package history

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddAssignsID(t *testing.T) {
	db := openTestDB(t)

	id, err := db.Add(Record{
		Input:       "1.5",
		Decimal:     1.5,
		Fractional:  "1/2",
		Moneyline:   "-200",
		ImpliedProb: 0.6666666666666666,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == "" {
		t.Error("Add should assign an id")
	}
}

func TestAddKeepsExplicitID(t *testing.T) {
	db := openTestDB(t)

	id, err := db.Add(Record{ID: "fixed-id", Input: "-200", Decimal: 1.5,
		Fractional: "1/2", Moneyline: "-200", ImpliedProb: 2.0 / 3.0})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("Add returned id %q, want %q", id, "fixed-id")
	}
}

func TestRecent(t *testing.T) {
	db := openTestDB(t)

	inputs := []string{"1.5", "1/2", "-200"}
	for _, input := range inputs {
		if _, err := db.Add(Record{Input: input, Decimal: 1.5,
			Fractional: "1/2", Moneyline: "-200", ImpliedProb: 2.0 / 3.0}); err != nil {
			t.Fatalf("Add(%q): %v", input, err)
		}
	}

	records, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != len(inputs) {
		t.Fatalf("Recent returned %d records, want %d", len(records), len(inputs))
	}

	for _, rec := range records {
		if rec.ID == "" {
			t.Error("record missing id")
		}
		if rec.Decimal != 1.5 || rec.Fractional != "1/2" || rec.Moneyline != "-200" {
			t.Errorf("record %q has wrong forms: %+v", rec.Input, rec)
		}
		if rec.CreatedAt.IsZero() {
			t.Errorf("record %q missing created_at", rec.Input)
		}
	}

	limited, err := db.Recent(2)
	if err != nil {
		t.Fatalf("Recent(2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Recent(2) returned %d records, want 2", len(limited))
	}
}
