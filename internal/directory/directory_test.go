package directory

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"school-meal-reports/internal/database"
)

// newTestDB bootstraps a school database holding one user row per id, in
// the given order of ids.
func newTestDB(t *testing.T, ids []int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "school_food.db")
	db, err := database.NewDB(path)
	if err != nil {
		t.Fatalf("bootstrap school db: %v", err)
	}
	defer db.Close()

	for _, id := range ids {
		_, err := db.SQL.Exec(
			`INSERT INTO user (id, email, password_hash, name, role, student_class, balance)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, fmt.Sprintf("u%d@school.ru", id), "x", fmt.Sprintf("User %d", id), "student", "9А", 100.0)
		if err != nil {
			t.Fatalf("insert user %d: %v", id, err)
		}
	}
	return path
}

func TestResolveByRank(t *testing.T) {
	// Ids deliberately sparse and not inserted in ascending order: rank is
	// position in ascending-id order, never the id itself.
	dir := New(newTestDB(t, []int64{30, 10, 50, 20, 40}))
	ctx := context.Background()

	cases := []struct {
		token  string
		wantID int64 // 0 = expect nil
	}{
		{"user1", 10},
		{"user3", 30},
		{"user5", 50},
		{"user6", 0},
		{"user0", 0},
		{"3", 30}, // bare integers are ranks too, not ids
		{"30", 0}, // rank 30 out of range even though id 30 exists
		{"0", 0},
		{"-1", 0},
		{"userX", 0},
		{"3user", 0},
		{"user 3", 0},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			rec := dir.ResolveByRank(ctx, tc.token)
			if tc.wantID == 0 {
				if rec != nil {
					t.Fatalf("ResolveByRank(%q) = id %d, want nil", tc.token, rec.ID)
				}
				return
			}
			if rec == nil {
				t.Fatalf("ResolveByRank(%q) = nil, want id %d", tc.token, tc.wantID)
			}
			if rec.ID != tc.wantID {
				t.Errorf("ResolveByRank(%q) = id %d, want %d", tc.token, rec.ID, tc.wantID)
			}
		})
	}
}

func TestResolveByRankUnreachableStore(t *testing.T) {
	dir := New(filepath.Join(t.TempDir(), "missing.db"))
	if rec := dir.ResolveByRank(context.Background(), "user1"); rec != nil {
		t.Errorf("unreachable store should degrade to nil, got id %d", rec.ID)
	}
}

func TestResolveDisplayName(t *testing.T) {
	dir := New(newTestDB(t, []int64{10, 20, 30}))
	ctx := context.Background()

	res := dir.ResolveDisplayName(ctx, 20)
	if res.Degraded {
		t.Fatal("lookup of an existing id degraded")
	}
	if got := res.DisplayName(); got != "User 20" {
		t.Errorf("DisplayName() = %q, want %q", got, "User 20")
	}
	if res.Record.Class != "9А" || res.Record.Role != "student" {
		t.Errorf("record fields = (%q, %q)", res.Record.Class, res.Record.Role)
	}

	res = dir.ResolveDisplayName(ctx, 99)
	if !res.Degraded {
		t.Error("missing id should degrade")
	}
	if got := res.DisplayName(); got != UnknownName {
		t.Errorf("degraded DisplayName() = %q, want %q", got, UnknownName)
	}
}

func TestResolveDisplayNameUnreachableStore(t *testing.T) {
	dir := New(filepath.Join(t.TempDir(), "missing.db"))
	res := dir.ResolveDisplayName(context.Background(), 1)
	if !res.Degraded {
		t.Error("unreachable store should degrade, not fail")
	}
	if got := res.DisplayName(); got != UnknownName {
		t.Errorf("DisplayName() = %q, want %q", got, UnknownName)
	}
}

func TestLoadPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school_food.db")
	db, err := database.NewDB(path)
	if err != nil {
		t.Fatalf("bootstrap school db: %v", err)
	}
	if err := db.Seed(context.Background()); err != nil {
		t.Fatalf("seed school db: %v", err)
	}
	db.Close()

	prices, err := New(path).LoadPrices(context.Background())
	if err != nil {
		t.Fatalf("LoadPrices failed: %v", err)
	}
	if got := prices["Борщ украинский"]; got != 120 {
		t.Errorf("price of Борщ украинский = %v, want 120", got)
	}
	if got := prices["Компот из сухофруктов"]; got != 30 {
		t.Errorf("price of Компот из сухофруктов = %v, want 30", got)
	}
	if len(prices) != 10 {
		t.Errorf("got %d menu prices, want 10", len(prices))
	}
}

func TestLoadPricesUnreachableStore(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.db")).LoadPrices(context.Background())
	if err == nil {
		t.Error("price loading must propagate store failures")
	}
}
