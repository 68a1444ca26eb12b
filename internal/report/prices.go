package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// PriceTable maps dish names to unit prices in rubles. Dishes absent from
// the table price as zero.
type PriceTable map[string]float64

// DefaultPriceTable returns the built-in demo table, mirroring the web
// application's seed menu. It exists so reports can be generated without a
// configured price source; it is not production pricing.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		"Каша овсяная с фруктами":   80,
		"Омлет с сыром":             95,
		"Блинчики с творогом":       110,
		"Йогурт с мюсли":            75,
		"Борщ украинский":           120,
		"Котлета куриная с пюре":    150,
		"Рыба запеченная с овощами": 180,
		"Макароны с сыром":          100,
		"Салат овощной":             70,
		"Компот из сухофруктов":     30,
	}
}

// LoadPriceTable reads a dish-name -> price JSON object from path.
func LoadPriceTable(path string) (PriceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table: %w", err)
	}
	var prices PriceTable
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("parse price table %s: %w", path, err)
	}
	return prices, nil
}
