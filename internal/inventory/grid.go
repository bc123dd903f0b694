package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Grid is the price-range by quantity-range table. It is maintained by hand
// through SetGridCell and never derived from the items.
type Grid [PriceCategories][QtyCategories]decimal.Decimal

func validCell(priceRange, qtyRange int) bool {
	return priceRange >= 0 && priceRange < PriceCategories &&
		qtyRange >= 0 && qtyRange < QtyCategories
}

func (s *Store) SetGridCell(priceRange, qtyRange int, value decimal.Decimal) error {
	if !validCell(priceRange, qtyRange) {
		return fmt.Errorf("%w: (%d,%d)", ErrGridIndex, priceRange, qtyRange)
	}

	s.mu.Lock()
	s.grid[priceRange][qtyRange] = value
	s.mu.Unlock()
	return nil
}

func (s *Store) GridCell(priceRange, qtyRange int) (decimal.Decimal, bool) {
	if !validCell(priceRange, qtyRange) {
		return decimal.Zero, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid[priceRange][qtyRange], true
}

func (s *Store) ResetGrid() {
	s.mu.Lock()
	s.grid = Grid{}
	s.mu.Unlock()
}

// GridRowMajor returns rows indexed [price][qty].
func (s *Store) GridRowMajor() [][]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]decimal.Decimal, PriceCategories)
	for p := 0; p < PriceCategories; p++ {
		out[p] = make([]decimal.Decimal, QtyCategories)
		for q := 0; q < QtyCategories; q++ {
			out[p][q] = s.grid[p][q]
		}
	}
	return out
}

// GridColumnMajor returns rows indexed [qty][price].
func (s *Store) GridColumnMajor() [][]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]decimal.Decimal, QtyCategories)
	for q := 0; q < QtyCategories; q++ {
		out[q] = make([]decimal.Decimal, PriceCategories)
		for p := 0; p < PriceCategories; p++ {
			out[q][p] = s.grid[p][q]
		}
	}
	return out
}
