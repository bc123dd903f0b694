package inventory

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	MaxItems        = 100
	PriceCategories = 5
	QtyCategories   = 4

	DefaultLowStockThreshold = 10
)

var (
	ErrStoreFull     = errors.New("store is full")
	ErrDuplicateID   = errors.New("item already exists")
	ErrNotFound      = errors.New("item not found")
	ErrInvalidItem   = errors.New("invalid item")
	ErrGridIndex     = errors.New("grid index out of range")
	ErrRareStoreFull = errors.New("rare storage is full")
)

type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Value is the stock value of a single line: quantity times unit price.
func (it Item) Value() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// RareItem tracks how often an item gets restocked. ItemID is not checked
// against the item list.
type RareItem struct {
	ItemID    int `json:"item_id"`
	Frequency int `json:"frequency"`
}
