package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"GroceryStock/internal/inventory"
	"GroceryStock/internal/report"
	"GroceryStock/pkg/kit"
)

func main() {
	log, err := kit.NewLogger("demo", os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(os.Stdout); err != nil {
		log.Fatal("demo failed", zap.Error(err))
	}
}

// run walks a fresh store through the grocery scenario and prints each step.
func run(w io.Writer) error {
	s := inventory.NewStore()
	r := report.NewRenderer(w)
	say := func(format string, args ...any) { _, _ = fmt.Fprintf(w, format+"\n", args...) }

	say("Welcome to Grocery Store Inventory System!")
	say("%s", strings.Repeat("=", 80))

	say("\n=== Adding Items ===")
	for _, it := range []struct {
		id    int
		name  string
		qty   int
		price string
	}{
		{101, "Basmati Rice", 50, "75.50"},
		{102, "Toor Dal", 30, "120.00"},
		{103, "Cooking Oil", 25, "180.75"},
		{104, "Wheat Flour", 40, "45.25"},
		{105, "Sugar", 20, "42.00"},
		{106, "Tea Leaves", 15, "250.00"},
	} {
		err := s.Insert(it.id, it.name, it.qty, decimal.RequireFromString(it.price))
		switch {
		case err == nil:
			say("Added %s to inventory!", it.name)
		case errors.Is(err, inventory.ErrStoreFull):
			say("Store is full!")
		case errors.Is(err, inventory.ErrDuplicateID):
			say("Item already exists!")
		default:
			return err
		}
	}

	say("\n=== Inventory ===")
	r.Items(s.List())

	say("\n=== Search ===")
	if it, ok := s.FindByID(103); ok {
		say("Found item:")
		r.Item(it)
	} else {
		say("Item with ID %d not found!", 103)
	}
	if it, ok := s.FindByName("Sugar"); ok {
		say("Found %s:", "Sugar")
		r.Item(it)
	} else {
		say("%s not found!", "Sugar")
	}

	say("\n=== Price-Quantity Table ===")
	for _, c := range []struct {
		price, qty int
		value      string
	}{
		{0, 0, "100.5"},
		{1, 2, "250.75"},
		{2, 1, "180.25"},
	} {
		v := decimal.RequireFromString(c.value)
		if err := s.SetGridCell(c.price, c.qty, v); err != nil {
			say("Invalid index!")
			continue
		}
		say("Updated table at (%d,%d) with %s", c.price, c.qty, v)
	}
	r.GridRowMajor(s.GridRowMajor())
	r.GridColumnMajor(s.GridColumnMajor())

	say("\n=== Rare Items ===")
	for _, ri := range []inventory.RareItem{{ItemID: 107, Frequency: 2}, {ItemID: 108, Frequency: 1}, {ItemID: 109, Frequency: 3}} {
		if err := s.AddRareItem(ri.ItemID, ri.Frequency); err != nil {
			say("Rare storage full!")
			continue
		}
		say("Added item %d to rare storage (freq: %d)", ri.ItemID, ri.Frequency)
	}
	r.RareItems(s.RareItems())

	say("\n=== Stock Check ===")
	r.LowStock(25, s.LowStock(25))
	r.TotalValue(s.TotalValue())

	say("\n=== Delete Item ===")
	if removed, err := s.Delete(106); err != nil {
		say("Item not found!")
	} else {
		say("Removed %s!", removed.Name)
	}
	r.Items(s.List())

	say("\n%s", strings.Repeat("=", 80))
	say("Demo finished!")
	return r.Err()
}
