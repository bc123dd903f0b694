package inventory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGrid_StartsZeroed(t *testing.T) {
	s := NewStore()
	for p, row := range s.GridRowMajor() {
		for q, v := range row {
			if !v.IsZero() {
				t.Fatalf("cell (%d,%d)=%s", p, q, v)
			}
		}
	}
}

func TestGrid_SetOverwrites(t *testing.T) {
	s := NewStore()

	if err := s.SetGridCell(1, 2, dec("250.75")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetGridCell(1, 2, dec("10")); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok := s.GridCell(1, 2)
	if !ok || !v.Equal(dec("10")) {
		t.Fatalf("cell=%s ok=%v want=10", v, ok)
	}
}

func TestGrid_OutOfRange(t *testing.T) {
	s := NewStore()
	_ = s.SetGridCell(0, 0, dec("1"))
	before := s.GridRowMajor()

	cases := []struct{ p, q int }{
		{-1, 0},
		{0, -1},
		{PriceCategories, 0},
		{0, QtyCategories},
		{PriceCategories, QtyCategories},
	}
	for _, c := range cases {
		if err := s.SetGridCell(c.p, c.q, dec("99")); !errors.Is(err, ErrGridIndex) {
			t.Fatalf("(%d,%d): err=%v want ErrGridIndex", c.p, c.q, err)
		}
		if _, ok := s.GridCell(c.p, c.q); ok {
			t.Fatalf("(%d,%d): read accepted", c.p, c.q)
		}
	}

	after := s.GridRowMajor()
	for p := range before {
		for q := range before[p] {
			if !before[p][q].Equal(after[p][q]) {
				t.Fatalf("cell (%d,%d) changed", p, q)
			}
		}
	}
}

func TestGrid_TraversalOrderIndependent(t *testing.T) {
	s := NewStore()
	for p := 0; p < PriceCategories; p++ {
		for q := 0; q < QtyCategories; q++ {
			v := decimal.New(int64(p*1000+q*10+5), -2)
			if err := s.SetGridCell(p, q, v); err != nil {
				t.Fatalf("set: %v", err)
			}
		}
	}

	rows := s.GridRowMajor()
	cols := s.GridColumnMajor()

	if len(rows) != PriceCategories || len(cols) != QtyCategories {
		t.Fatalf("shape rows=%d cols=%d", len(rows), len(cols))
	}
	for p := 0; p < PriceCategories; p++ {
		for q := 0; q < QtyCategories; q++ {
			if !rows[p][q].Equal(cols[q][p]) {
				t.Fatalf("(%d,%d): row-major=%s column-major=%s", p, q, rows[p][q], cols[q][p])
			}
			cell, _ := s.GridCell(p, q)
			if !cell.Equal(rows[p][q]) {
				t.Fatalf("(%d,%d): cell=%s row-major=%s", p, q, cell, rows[p][q])
			}
		}
	}
}

func TestGrid_Reset(t *testing.T) {
	s := NewStore()
	_ = s.SetGridCell(4, 3, dec("7"))
	s.ResetGrid()

	if v, _ := s.GridCell(4, 3); !v.IsZero() {
		t.Fatalf("cell=%s after reset", v)
	}
}
