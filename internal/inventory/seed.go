package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type seedItem struct {
	id    int
	name  string
	qty   int
	price string
}

var groceryItems = []seedItem{
	{101, "Basmati Rice", 50, "75.50"},
	{102, "Toor Dal", 30, "120.00"},
	{103, "Cooking Oil", 25, "180.75"},
	{104, "Wheat Flour", 40, "45.25"},
	{105, "Sugar", 20, "42.00"},
	{106, "Tea Leaves", 15, "250.00"},
}

var groceryGrid = []struct {
	price, qty int
	value      string
}{
	{0, 0, "100.5"},
	{1, 2, "250.75"},
	{2, 1, "180.25"},
}

var groceryRare = []RareItem{
	{ItemID: 107, Frequency: 2},
	{ItemID: 108, Frequency: 1},
	{ItemID: 109, Frequency: 3},
}

// Seed loads the grocery store sample data into s.
func Seed(s *Store) error {
	for _, it := range groceryItems {
		if err := s.Insert(it.id, it.name, it.qty, decimal.RequireFromString(it.price)); err != nil {
			return fmt.Errorf("seed item %d: %w", it.id, err)
		}
	}
	for _, c := range groceryGrid {
		if err := s.SetGridCell(c.price, c.qty, decimal.RequireFromString(c.value)); err != nil {
			return fmt.Errorf("seed grid: %w", err)
		}
	}
	for _, r := range groceryRare {
		if err := s.AddRareItem(r.ItemID, r.Frequency); err != nil {
			return fmt.Errorf("seed rare item %d: %w", r.ItemID, err)
		}
	}
	return nil
}
