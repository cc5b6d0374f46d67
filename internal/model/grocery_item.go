// Package model defines the grocery item value type, its ordering and its
// text representation.
package model

// GroceryItem is a retail product record. The zero value is an item with
// empty names, an empty UPC code and a price of 0.
//
// GroceryItem has value semantics: assigning or passing it copies all four
// fields, and no two items ever share state.
type GroceryItem struct {
	productName string
	brandName   string
	upcCode     string
	price       float64
}

// New builds an item. Note the argument order (product, brand, UPC, price)
// differs from the text order (UPC, brand, product, price).
func New(productName, brandName, upcCode string, price float64) GroceryItem {
	return GroceryItem{
		productName: productName,
		brandName:   brandName,
		upcCode:     upcCode,
		price:       price,
	}
}

// Clone returns an independent copy of g.
func (g GroceryItem) Clone() GroceryItem { return g }

func (g GroceryItem) ProductName() string { return g.productName }
func (g GroceryItem) BrandName() string   { return g.brandName }
func (g GroceryItem) UPCCode() string     { return g.upcCode }
func (g GroceryItem) Price() float64      { return g.price }

// Fields decomposes g in constructor order.
func (g GroceryItem) Fields() (productName, brandName, upcCode string, price float64) {
	return g.productName, g.brandName, g.upcCode, g.price
}

// SetProductName replaces the product name and returns g for chaining.
func (g *GroceryItem) SetProductName(name string) *GroceryItem {
	g.productName = name
	return g
}

// SetBrandName replaces the brand name and returns g for chaining.
func (g *GroceryItem) SetBrandName(name string) *GroceryItem {
	g.brandName = name
	return g
}

// SetUPCCode replaces the UPC code and returns g for chaining.
func (g *GroceryItem) SetUPCCode(code string) *GroceryItem {
	g.upcCode = code
	return g
}

// SetPrice replaces the price and returns g for chaining. Any value is
// accepted, including negative and non-finite prices.
func (g *GroceryItem) SetPrice(price float64) *GroceryItem {
	g.price = price
	return g
}
