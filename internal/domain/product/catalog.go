// internal/domain/product/catalog.go
package product

import "strings"

// AllCategories is the category value that matches every product
const AllCategories = "all"

// Catalog is the read-only, ordered product list shared by request handlers
type Catalog struct {
	products []Product
	byID     map[uint]int
}

// NewCatalog builds a catalog preserving the given order
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[uint]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Products returns a copy of every product in catalog order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks a product up by identifier
func (c *Catalog) Find(id uint) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Search filters the catalog, see Filter
func (c *Catalog) Search(searchText, category string) []Product {
	return Filter(c.products, searchText, category)
}

// Categories lists the catalog's categories, see Categories
func (c *Catalog) Categories() []string {
	return Categories(c.products)
}

// Filter returns the products whose name or description contains searchText
// and whose category matches category, both compared case-insensitively.
// An empty searchText matches everything, as does the category "all".
// The relative order of products is preserved.
func Filter(products []Product, searchText, category string) []Product {
	query := strings.ToLower(searchText)
	matchAll := strings.EqualFold(category, AllCategories)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := matchAll || strings.EqualFold(p.Category, category)

		if matchesSearch && matchesCategory {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// Categories returns "all" followed by the distinct lower-cased category
// labels in order of first appearance.
func Categories(products []Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))

	for _, p := range products {
		label := strings.ToLower(p.Category)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		categories = append(categories, label)
	}

	return categories
}
