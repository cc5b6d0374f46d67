package store

import (
	"slices"

	"github.com/fairyhunter13/grocery-reverse/internal/model"
)

// Store keeps grocery items in arrival order. Items are held by value, so
// nothing returned by a Store aliases its contents.
type Store struct {
	items []model.GroceryItem
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(g model.GroceryItem) {
	s.items = append(s.items, g)
}

func (s *Store) Len() int { return len(s.items) }

// Items returns the items in arrival order.
func (s *Store) Items() []model.GroceryItem {
	return slices.Clone(s.items)
}

// Reversed returns the items newest first.
func (s *Store) Reversed() []model.GroceryItem {
	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out
}

// Sorted returns the items in ascending model.CompareItems order. Equivalent
// items keep their arrival order.
func (s *Store) Sorted() []model.GroceryItem {
	out := slices.Clone(s.items)
	slices.SortStableFunc(out, model.CompareItems)
	return out
}
