package model

import (
	"strings"

	"github.com/fairyhunter13/grocery-reverse/internal/money"
)

// Ordering is the result of a three-way comparison. Equivalent items are not
// necessarily identical: their prices may differ within money.AlmostEqual.
type Ordering int8

const (
	Less       Ordering = -1
	Equivalent Ordering = 0
	Greater    Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equivalent:
		return "equivalent"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Compare orders items by UPC code, then product name, then brand name, then
// price. Strings compare byte-wise; prices compare with money.Compare.
func (g GroceryItem) Compare(other GroceryItem) Ordering {
	if c := strings.Compare(g.upcCode, other.upcCode); c != 0 {
		return Ordering(c)
	}
	if c := strings.Compare(g.productName, other.productName); c != 0 {
		return Ordering(c)
	}
	if c := strings.Compare(g.brandName, other.brandName); c != 0 {
		return Ordering(c)
	}
	return Ordering(money.Compare(g.price, other.price))
}

// Equal reports whether all string fields match exactly and the prices are
// money.AlmostEqual. It agrees with Compare: g.Equal(o) iff
// g.Compare(o) == Equivalent.
func (g GroceryItem) Equal(other GroceryItem) bool {
	return g.upcCode == other.upcCode &&
		g.productName == other.productName &&
		g.brandName == other.brandName &&
		money.AlmostEqual(g.price, other.price)
}

// Less reports whether g orders strictly before other.
func (g GroceryItem) Less(other GroceryItem) bool { return g.Compare(other) == Less }

// CompareItems adapts Compare for slices.SortFunc and friends.
func CompareItems(a, b GroceryItem) int { return int(a.Compare(b)) }
