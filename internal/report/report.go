package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"GroceryStock/internal/inventory"
)

const (
	itemsRule = 70
	rareRule  = 50
	lowRule   = 60
)

type Renderer struct {
	w      io.Writer
	symbol string
	err    error
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, symbol: DefaultSymbol}
}

func (r *Renderer) WithSymbol(symbol string) *Renderer {
	r.symbol = symbol
	return r
}

// Err returns the first write error, if any. Later writes are skipped once
// one has failed.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) rule(n int) {
	r.printf("%s\n", strings.Repeat("-", n))
}

func (r *Renderer) ItemLine(it inventory.Item) string {
	return fmt.Sprintf("ID: %d | Name: %s | Stock: %d | Price: %s",
		it.ID, it.Name, it.Quantity, Currency(r.symbol, it.Price))
}

func (r *Renderer) Item(it inventory.Item) {
	r.printf("%s\n", r.ItemLine(it))
}

func (r *Renderer) Items(items []inventory.Item) {
	if len(items) == 0 {
		r.printf("Store is empty!\n")
		return
	}
	r.printf("\nCurrent Inventory (Total: %d):\n", len(items))
	r.rule(itemsRule)
	for _, it := range items {
		r.Item(it)
	}
	r.rule(itemsRule)
}

func (r *Renderer) GridRowMajor(rows [][]decimal.Decimal) {
	r.printf("\nPrice-Quantity Table (Row-Major):\n")
	r.gridLines("Price Range", rows)
}

func (r *Renderer) GridColumnMajor(cols [][]decimal.Decimal) {
	r.printf("\nPrice-Quantity Table (Column-Major):\n")
	r.gridLines("Quantity Range", cols)
}

func (r *Renderer) gridLines(label string, lines [][]decimal.Decimal) {
	for i, line := range lines {
		r.printf("%s %d: ", label, i+1)
		for _, v := range line {
			r.printf("%8s ", v.StringFixed(2))
		}
		r.printf("\n")
	}
}

func (r *Renderer) RareItems(rare []inventory.RareItem) {
	if len(rare) == 0 {
		r.printf("No rare items!\n")
		return
	}
	r.printf("\nRarely Restocked Items:\n")
	r.rule(rareRule)
	for _, ri := range rare {
		r.printf("Item ID: %d | Restock Freq: %d\n", ri.ItemID, ri.Frequency)
	}
	r.rule(rareRule)
}

func (r *Renderer) LowStock(threshold int, items []inventory.Item) {
	r.printf("\nLow Stock Alert (threshold: %d):\n", threshold)
	r.rule(lowRule)
	if len(items) == 0 {
		r.printf("All good, no low stock!\n")
	}
	for _, it := range items {
		r.printf("LOW: %s\n", r.ItemLine(it))
	}
	r.rule(lowRule)
}

func (r *Renderer) TotalValue(total decimal.Decimal) {
	r.printf("\nTotal Inventory Value: %s\n", Currency(r.symbol, total))
}

// Full writes every section for the current state of s.
func (r *Renderer) Full(s *inventory.Store, threshold int) error {
	r.Items(s.List())
	r.GridRowMajor(s.GridRowMajor())
	r.GridColumnMajor(s.GridColumnMajor())
	r.RareItems(s.RareItems())
	r.LowStock(threshold, s.LowStock(threshold))
	r.TotalValue(s.TotalValue())
	return r.err
}
