package catalog

import (
	"sort"
	"strings"

	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
)

const featuredLimit = 20

// ProductsByCategory returns every product in the category, in catalog order.
// An unknown slug yields an empty slice.
func (c *Catalog) ProductsByCategory(categorySlug string) []Product {
	idxs := c.byCategory[categorySlug]
	out := make([]Product, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.products[i])
	}
	return out
}

// ProductBySlug finds the first product carrying the slug.
func (c *Catalog) ProductBySlug(slug string) (Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// ProductByID finds a product by its numeric ID.
func (c *Catalog) ProductByID(id int64) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// FeaturedProducts returns the first 20 featured products in catalog order.
func (c *Catalog) FeaturedProducts() []Product {
	out := make([]Product, 0, featuredLimit)
	for _, p := range c.products {
		if !p.IsFeatured {
			continue
		}
		out = append(out, p)
		if len(out) == featuredLimit {
			break
		}
	}
	return out
}

// SearchProducts matches the query as a case-insensitive substring of the
// product name, brand, or description.
func (c *Catalog) SearchProducts(query string) []Product {
	q := strings.ToLower(query)
	out := []Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterProducts narrows the listing by category, filter criteria, and sort
// order. Sorting is stable, so equal-key products keep their catalog order.
func (c *Catalog) FilterProducts(categorySlug string, filters Filters, sortBy enums.SortKey) []Product {
	var filtered []Product
	if categorySlug != "" {
		filtered = c.ProductsByCategory(categorySlug)
	} else {
		filtered = c.Products()
	}

	filtered = applyFilters(filtered, filters)

	switch sortBy {
	case enums.SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DiscountPrice < filtered[j].DiscountPrice
		})
	case enums.SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DiscountPrice > filtered[j].DiscountPrice
		})
	case enums.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].RatingAvg > filtered[j].RatingAvg
		})
	case enums.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	case enums.SortDiscount:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DiscountPercent() > filtered[j].DiscountPercent()
		})
	}

	return filtered
}

func applyFilters(products []Product, filters Filters) []Product {
	if len(filters.Brands) == 0 && len(filters.Subcategories) == 0 &&
		!filters.HasMinPrice && !filters.HasMaxPrice && !filters.HasMinRating {
		return products
	}

	brands := toSet(filters.Brands)
	subcategories := toSet(filters.Subcategories)

	out := []Product{}
	for _, p := range products {
		if len(brands) > 0 && !brands[p.Brand] {
			continue
		}
		if len(subcategories) > 0 && !subcategories[p.Subcategory] {
			continue
		}
		if filters.HasMinPrice && p.DiscountPrice < filters.MinPrice {
			continue
		}
		if filters.HasMaxPrice && p.DiscountPrice > filters.MaxPrice {
			continue
		}
		if filters.HasMinRating && p.RatingAvg < filters.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// BrandsByCategory returns the category's distinct brands in first-seen order.
func (c *Catalog) BrandsByCategory(categorySlug string) []string {
	seen := map[string]bool{}
	brands := []string{}
	for _, p := range c.ProductsByCategory(categorySlug) {
		if seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	return brands
}

// PriceRangeFor reports the min/max charged price for the category, or for the
// whole catalog when the slug is empty. An empty listing yields {0, 100000}.
func (c *Catalog) PriceRangeFor(categorySlug string) PriceRange {
	var products []Product
	if categorySlug != "" {
		products = c.ProductsByCategory(categorySlug)
	} else {
		products = c.products
	}

	if len(products) == 0 {
		return PriceRange{Min: 0, Max: 100000}
	}

	r := PriceRange{Min: products[0].DiscountPrice, Max: products[0].DiscountPrice}
	for _, p := range products[1:] {
		if p.DiscountPrice < r.Min {
			r.Min = p.DiscountPrice
		}
		if p.DiscountPrice > r.Max {
			r.Max = p.DiscountPrice
		}
	}
	return r
}
