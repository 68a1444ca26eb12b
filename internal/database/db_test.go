package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNewDBCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "school_food.db")
	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"user", "menu_item"} {
		var n int
		if err := db.SQL.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestNewDBIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school_food.db")
	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("first NewDB failed: %v", err)
	}
	db.Close()

	// Re-running migrations against an up-to-date database is a no-op.
	db, err = NewDB(path)
	if err != nil {
		t.Fatalf("second NewDB failed: %v", err)
	}
	db.Close()
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(filepath.Join(t.TempDir(), "school_food.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer db.Close()

	if err := db.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	// Second run must not duplicate fixtures.
	if err := db.Seed(ctx); err != nil {
		t.Fatalf("repeat Seed failed: %v", err)
	}

	var users, items int
	if err := db.SQL.QueryRow(`SELECT COUNT(*) FROM user`).Scan(&users); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if err := db.SQL.QueryRow(`SELECT COUNT(*) FROM menu_item`).Scan(&items); err != nil {
		t.Fatalf("count menu items: %v", err)
	}
	if users != 3 {
		t.Errorf("seeded users = %d, want 3", users)
	}
	if items != 10 {
		t.Errorf("seeded menu items = %d, want 10", items)
	}

	var name string
	if err := db.SQL.QueryRow(`SELECT name FROM user ORDER BY id LIMIT 1`).Scan(&name); err != nil {
		t.Fatalf("query first user: %v", err)
	}
	if name != "Петров Алексей" {
		t.Errorf("first user = %q", name)
	}
}
