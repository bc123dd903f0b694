package inventory

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Store keeps items in insertion order up to a fixed capacity, along with
// the price/quantity grid and the rarely restocked list. One lock guards
// all three; every operation is a linear scan at worst.
type Store struct {
	mu       sync.RWMutex
	capacity int
	items    []Item
	grid     Grid
	rare     []RareItem
}

func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = MaxItems
	}
	return &Store{
		capacity: capacity,
		items:    make([]Item, 0, capacity),
		rare:     make([]RareItem, 0, capacity),
	}
}

func NewStore() *Store {
	return New(MaxItems)
}

func (s *Store) Cap() int { return s.capacity }

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Insert(id int, name string, qty int, price decimal.Decimal) error {
	if qty < 0 || price.IsNegative() {
		return fmt.Errorf("%w: quantity and price must not be negative", ErrInvalidItem)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) >= s.capacity {
		return ErrStoreFull
	}
	if s.indexOf(id) != -1 {
		return fmt.Errorf("%w: id=%d", ErrDuplicateID, id)
	}

	s.items = append(s.items, Item{ID: id, Name: name, Quantity: qty, Price: price})
	return nil
}

// Delete removes the item and shifts the tail left, so survivors keep their
// relative order.
func (s *Store) Delete(id int) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return Item{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
	}

	removed := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = Item{}
	s.items = s.items[:len(s.items)-1]
	return removed, nil
}

func (s *Store) FindByID(id int) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return Item{}, false
	}
	return s.items[i], true
}

// FindByName returns the first item with the given name. Names are not
// unique; later items sharing a name are unreachable here.
func (s *Store) FindByName(name string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) LowStock(threshold int) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Quantity <= threshold {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) TotalValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Value())
	}
	return total
}

func (s *Store) AddRareItem(id, frequency int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rare) >= s.capacity {
		return ErrRareStoreFull
	}
	s.rare = append(s.rare, RareItem{ItemID: id, Frequency: frequency})
	return nil
}

func (s *Store) RareItems() []RareItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RareItem, len(s.rare))
	copy(out, s.rare)
	return out
}

func (s *Store) RareLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rare)
}

// caller holds s.mu
func (s *Store) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
