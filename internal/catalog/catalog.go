// Package catalog holds the in-memory product catalog and the pure query
// pipeline that powers browsing, search, filtering, and facets.
package catalog

// Catalog is an immutable snapshot of the browsable product set.
type Catalog struct {
	categories []Category
	products   []Product

	bySlug     map[string]int
	byID       map[int64]int
	byCategory map[string][]int
	catBySlug  map[string]int
}

// New builds the catalog from the deterministic seed data.
func New() *Catalog {
	return newWithProducts(Categories(), generateAll(defaultSeed))
}

// NewWithProducts builds a catalog over a caller-supplied product set,
// used by tests and by seeding tools.
func NewWithProducts(categories []Category, products []Product) *Catalog {
	return newWithProducts(categories, products)
}

func newWithProducts(categories []Category, products []Product) *Catalog {
	c := &Catalog{
		categories: categories,
		products:   products,
		bySlug:     make(map[string]int, len(products)),
		byID:       make(map[int64]int, len(products)),
		byCategory: make(map[string][]int),
		catBySlug:  make(map[string]int, len(categories)),
	}
	for i, p := range products {
		if _, exists := c.bySlug[p.Slug]; !exists {
			c.bySlug[p.Slug] = i
		}
		if _, exists := c.byID[p.ID]; !exists {
			c.byID[p.ID] = i
		}
		c.byCategory[p.CategorySlug] = append(c.byCategory[p.CategorySlug], i)
	}
	for i, cat := range categories {
		c.catBySlug[cat.Slug] = i
	}
	return c
}

// Categories returns the browse taxonomy.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryBySlug looks up one category.
func (c *Catalog) CategoryBySlug(slug string) (Category, bool) {
	i, ok := c.catBySlug[slug]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
