package model

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsDefaultItem(t *testing.T) {
	var g GroceryItem
	assert.Empty(t, g.ProductName())
	assert.Empty(t, g.BrandName())
	assert.Empty(t, g.UPCCode())
	assert.Zero(t, g.Price())
	assert.True(t, g.Equal(New("", "", "", 0)))
}

func TestNewKeepsConstructorOrder(t *testing.T) {
	g := New("Widget", "BrandA", "111", 1.99)
	assert.Equal(t, "Widget", g.ProductName())
	assert.Equal(t, "BrandA", g.BrandName())
	assert.Equal(t, "111", g.UPCCode())
	assert.Equal(t, 1.99, g.Price())

	product, brand, upc, price := g.Fields()
	assert.Equal(t, []any{"Widget", "BrandA", "111", 1.99}, []any{product, brand, upc, price})
}

func TestSettersChain(t *testing.T) {
	var g GroceryItem
	got := g.SetProductName("Gadget").SetBrandName("BrandB").SetUPCCode("222").SetPrice(-2.5)
	assert.Same(t, &g, got)
	assert.Equal(t, New("Gadget", "BrandB", "222", -2.5), g)

	g.SetPrice(math.Inf(1))
	assert.True(t, math.IsInf(g.Price(), 1))
}

func TestCloneIsIndependent(t *testing.T) {
	orig := New("Widget", "BrandA", "111", 1.99)
	cp := orig.Clone()
	cp.SetProductName("Other").SetPrice(3)

	assert.Equal(t, "Widget", orig.ProductName())
	assert.Equal(t, 1.99, orig.Price())
	assert.Equal(t, "Other", cp.ProductName())
}

func TestCompareTieBreaks(t *testing.T) {
	tests := []struct {
		name string
		a, b GroceryItem
		want Ordering
	}{
		{
			name: "upc decides first",
			a:    New("Zeta", "Zeta", "A", 99),
			b:    New("Alpha", "Alpha", "B", 1),
			want: Less,
		},
		{
			name: "product name after upc",
			a:    New("Beta", "Alpha", "A", 1),
			b:    New("Alpha", "Zeta", "A", 1),
			want: Greater,
		},
		{
			name: "brand name after product",
			a:    New("P", "Acme", "A", 5),
			b:    New("P", "Bolt", "A", 1),
			want: Less,
		},
		{
			name: "price last",
			a:    New("P", "B", "A", 1.0),
			b:    New("P", "B", "A", 1.0002),
			want: Less,
		},
		{
			name: "price within tolerance is equivalent",
			a:    New("P", "B", "A", 10.00000),
			b:    New("P", "B", "A", 10.00005),
			want: Equivalent,
		},
		{
			name: "case sensitive",
			a:    New("p", "B", "A", 1),
			b:    New("P", "B", "A", 1),
			want: Greater,
		},
		{
			name: "nan sorts last",
			a:    New("P", "B", "A", math.NaN()),
			b:    New("P", "B", "A", math.Inf(1)),
			want: Greater,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestEquivalentIsNotIdentical(t *testing.T) {
	a := New("P", "B", "A", 10.00000)
	b := New("P", "B", "A", 10.00005)
	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.Price(), b.Price())
}

func TestEqualAgreesWithCompare(t *testing.T) {
	items := []GroceryItem{
		{},
		New("Widget", "BrandA", "111", 1.99),
		New("Widget", "BrandA", "111", 1.99004),
		New("Widget", "BrandA", "111", 2.00),
		New("Widget", "BrandB", "111", 1.99),
		New("Gadget", "BrandA", "111", 1.99),
		New("Widget", "BrandA", "112", 1.99),
		New("Widget", "BrandA", "111", 1e9),
		New("Widget", "BrandA", "111", 1e9+0.005),
		New("Widget", "BrandA", "111", math.NaN()),
		New("Widget", "BrandA", "111", math.Inf(-1)),
	}
	for _, a := range items {
		assert.Equal(t, Equivalent, a.Compare(a), "reflexive for %v", a)
		for _, b := range items {
			assert.Equal(t, a.Compare(b) == Equivalent, a.Equal(b), "a=%v b=%v", a, b)
			assert.Equal(t, a.Compare(b), -b.Compare(a), "a=%v b=%v", a, b)
		}
	}
}

func TestSortByUPC(t *testing.T) {
	c := New("Same", "Same", "C", 1)
	a := New("Same", "Same", "A", 1)
	b := New("Same", "Same", "B", 1)

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))

	items := []GroceryItem{c, a, b}
	slices.SortStableFunc(items, CompareItems)
	assert.Equal(t, []GroceryItem{a, b, c}, items)
}

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equivalent", Equivalent.String())
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "invalid", Ordering(7).String())
}
