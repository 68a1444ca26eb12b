package dish

import (
	"testing"

	"school-meal-reports/internal/ledger"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Category
	}{
		{"Борщ украинский", CategorySoup},
		{"СУП КУРИНЫЙ", CategorySoup},
		{"Уха по-фински", CategorySoup},
		{"Солянка сборная", CategorySoup},
		{"Рассольник", CategorySoup},
		{"Щи из свежей капусты", CategorySoup},
		{"Салат овощной", CategorySalad},
		{"салат Цезарь", CategorySalad},
		{"Макароны с сыром", CategoryNone},
		{"Компот из сухофруктов", CategoryNone},
		{"", CategoryNone},
	}
	for _, tc := range cases {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeCollapsesSoleCategoryDish(t *testing.T) {
	counts := map[Category]int{CategorySoup: 1, CategorySalad: 1}

	if got := Normalize("Борщ украинский", counts); got != "суп" {
		t.Errorf("sole soup = %q, want суп", got)
	}
	if got := Normalize("Салат овощной", counts); got != "салат" {
		t.Errorf("sole salad = %q, want салат", got)
	}
}

func TestNormalizeKeepsAmbiguousNames(t *testing.T) {
	counts := map[Category]int{CategorySoup: 2, CategorySalad: 1}

	if got := Normalize("Борщ украинский", counts); got != "Борщ украинский" {
		t.Errorf("one of two soups = %q, want the name unchanged", got)
	}
	if got := Normalize("Уха по-фински", counts); got != "Уха по-фински" {
		t.Errorf("one of two soups = %q, want the name unchanged", got)
	}
	// The salad still collapses independently of the soups.
	if got := Normalize("Салат Цезарь", counts); got != "салат" {
		t.Errorf("sole salad = %q, want салат", got)
	}
}

func TestNormalizeCompote(t *testing.T) {
	counts := map[Category]int{}
	if got := Normalize("Компот из сухофруктов", counts); got != "компот" {
		t.Errorf("compote = %q, want компот", got)
	}
	if got := Normalize("компот", counts); got != "компот" {
		t.Errorf("компот = %q, want компот", got)
	}
}

func TestNormalizeUnclassifiedUnchanged(t *testing.T) {
	counts := map[Category]int{CategorySoup: 1}
	if got := Normalize("Котлета куриная с пюре", counts); got != "Котлета куриная с пюре" {
		t.Errorf("plain dish = %q, want the name unchanged", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	countSets := []map[Category]int{
		{},
		{CategorySoup: 1},
		{CategorySoup: 2},
		{CategorySalad: 1},
		{CategorySoup: 1, CategorySalad: 1},
		{CategorySoup: 3, CategorySalad: 2},
	}
	names := []string{
		"Борщ украинский",
		"Суп куриный",
		"Салат овощной",
		"Компот из сухофруктов",
		"Макароны с сыром",
		"суп",
		"салат",
		"компот",
		"",
	}
	for _, counts := range countSets {
		for _, name := range names {
			once := Normalize(name, counts)
			twice := Normalize(once, counts)
			if once != twice {
				t.Errorf("Normalize not idempotent for %q with %v: %q then %q", name, counts, once, twice)
			}
		}
	}
}

func TestCategoryCounts(t *testing.T) {
	day := ledger.Day{
		Name: "monday",
		Users: []ledger.UserOrders{
			{Key: "user1", Dishes: []ledger.Dish{
				{Name: "Борщ украинский", Count: 1},
				{Name: "Салат овощной", Count: 1},
			}},
			{Key: "user2", Dishes: []ledger.Dish{
				{Name: "Борщ украинский", Count: 2}, // same soup again: still one distinct
				{Name: "Уха по-фински", Count: 1},
				{Name: "Компот из сухофруктов", Count: 1},
			}},
		},
	}

	counts := CategoryCounts(day)
	if counts[CategorySoup] != 2 {
		t.Errorf("soup count = %d, want 2", counts[CategorySoup])
	}
	if counts[CategorySalad] != 1 {
		t.Errorf("salad count = %d, want 1", counts[CategorySalad])
	}
	if _, ok := counts[CategoryNone]; ok {
		t.Error("unclassified dishes must not be counted")
	}
}
