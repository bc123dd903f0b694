package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"GroceryStock/internal/inventory"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"75.50", "₹75.50"},
		{"120", "₹120.00"},
		{"42.05", "₹42.05"},
		{"0.004", "₹0.00"},
		{"0.005", "₹0.01"},
		{"9.999", "₹10.00"},
		{"7375", "₹7375.00"},
		{"-3.5", "-₹3.50"},
	}
	for _, c := range cases {
		if got := Currency(DefaultSymbol, decimal.RequireFromString(c.in)); got != c.want {
			t.Fatalf("Currency(%s)=%q want=%q", c.in, got, c.want)
		}
	}

	if got := Currency("$", decimal.RequireFromString("1.2")); got != "$1.20" {
		t.Fatalf("custom symbol: %q", got)
	}
}

func TestRenderer_ItemLine(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	it := inventory.Item{ID: 101, Name: "Basmati Rice", Quantity: 50, Price: decimal.RequireFromString("75.5")}

	want := "ID: 101 | Name: Basmati Rice | Stock: 50 | Price: ₹75.50"
	if got := r.ItemLine(it); got != want {
		t.Fatalf("line=%q want=%q", got, want)
	}

	if got := r.WithSymbol("Rs "); !strings.HasSuffix(got.ItemLine(it), "Price: Rs 75.50") {
		t.Fatalf("custom symbol line=%q", got.ItemLine(it))
	}
}

func TestRenderer_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Items(nil)
	r.RareItems(nil)
	r.LowStock(10, nil)

	out := buf.String()
	for _, want := range []string{"Store is empty!", "No rare items!", "All good, no low stock!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderer_GridOrders(t *testing.T) {
	s := inventory.NewStore()
	_ = s.SetGridCell(1, 2, decimal.RequireFromString("250.75"))

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.GridRowMajor(s.GridRowMajor())
	r.GridColumnMajor(s.GridColumnMajor())
	if err := r.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	var priceRow2, qtyRow3 string
	for _, l := range lines {
		if strings.HasPrefix(l, "Price Range 2: ") {
			priceRow2 = l
		}
		if strings.HasPrefix(l, "Quantity Range 3: ") {
			qtyRow3 = l
		}
	}

	if want := "Price Range 2:     0.00     0.00   250.75     0.00 "; priceRow2 != want {
		t.Fatalf("row-major line=%q want=%q", priceRow2, want)
	}
	if want := "Quantity Range 3:     0.00   250.75     0.00     0.00     0.00 "; qtyRow3 != want {
		t.Fatalf("column-major line=%q want=%q", qtyRow3, want)
	}
}

func TestRenderer_Full(t *testing.T) {
	s := inventory.NewStore()
	if err := inventory.Seed(s); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewRenderer(&buf).Full(s, 25); err != nil {
		t.Fatalf("full: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Current Inventory (Total: 6):",
		"LOW: ID: 103 | Name: Cooking Oil | Stock: 25 | Price: ₹180.75",
		"LOW: ID: 106 | Name: Tea Leaves | Stock: 15 | Price: ₹250.00",
		"Item ID: 108 | Restock Freq: 1",
		"Total Inventory Value: ₹18293.75",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "LOW: ID: 101") {
		t.Fatalf("item above threshold reported low:\n%s", out)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestRenderer_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	r := NewRenderer(w)

	err := r.Full(inventory.NewStore(), inventory.DefaultLowStockThreshold)
	if err == nil {
		t.Fatalf("expected error")
	}
	if w.n != 1 {
		t.Fatalf("writes after failure: %d", w.n)
	}
}
