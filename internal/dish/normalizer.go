// Package dish classifies dish names and collapses them to generic labels
// for roster lines. When a day's menu has a single soup option the roster can
// just say "суп"; with several soups the specific name is kept so entries
// stay unambiguous.
package dish

import (
	"strings"

	"school-meal-reports/internal/ledger"
)

// Category is a coarse dish class used only to decide name collapsing.
type Category string

const (
	CategoryNone  Category = ""
	CategorySoup  Category = "soup"
	CategorySalad Category = "salad"
)

// Keyword sets mirror the upstream kitchen vocabulary. Matching is
// case-insensitive substring containment, soups checked before salads.
var (
	soupKeywords  = []string{"суп", "борщ", "щи", "уха", "солянка", "рассольник"}
	saladKeywords = []string{"салат"}
)

// Generic labels used when a category collapses.
const (
	labelSoup    = "суп"
	labelSalad   = "салат"
	labelCompote = "компот"
)

// Classify returns the category of a dish name, or CategoryNone.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, kw := range soupKeywords {
		if strings.Contains(lower, kw) {
			return CategorySoup
		}
	}
	for _, kw := range saladKeywords {
		if strings.Contains(lower, kw) {
			return CategorySalad
		}
	}
	return CategoryNone
}

// CategoryCounts counts the distinct dish names per category across one
// day's orders. The result feeds Normalize.
func CategoryCounts(day ledger.Day) map[Category]int {
	distinct := make(map[Category]map[string]struct{})
	for _, user := range day.Users {
		for _, d := range user.Dishes {
			cat := Classify(d.Name)
			if cat == CategoryNone {
				continue
			}
			if distinct[cat] == nil {
				distinct[cat] = make(map[string]struct{})
			}
			distinct[cat][d.Name] = struct{}{}
		}
	}
	counts := make(map[Category]int, len(distinct))
	for cat, names := range distinct {
		counts[cat] = len(names)
	}
	return counts
}

// Normalize returns the roster label for a dish name given the day's
// category counts: the generic category label when the dish is the sole
// representative of its category that day, "компот" for any compote
// variant, otherwise the name unchanged. Normalize is idempotent.
func Normalize(name string, counts map[Category]int) string {
	switch Classify(name) {
	case CategorySoup:
		if counts[CategorySoup] == 1 {
			return labelSoup
		}
	case CategorySalad:
		if counts[CategorySalad] == 1 {
			return labelSalad
		}
	}
	if strings.Contains(strings.ToLower(name), labelCompote) {
		return labelCompote
	}
	return name
}
