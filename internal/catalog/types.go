package catalog

// Category groups products for browsing.
type Category struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Subcategories []string `json:"subcategories"`
}

// Product is an in-memory catalog listing. Prices are whole rupees; the
// discount price is the amount actually charged.
type Product struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Description    string         `json:"description"`
	Price          int64          `json:"price"`
	DiscountPrice  int64          `json:"discount_price"`
	CategoryID     int64          `json:"category_id"`
	CategorySlug   string         `json:"category_slug"`
	Subcategory    string         `json:"subcategory"`
	Brand          string         `json:"brand"`
	Stock          int            `json:"stock"`
	RatingAvg      float64        `json:"rating_avg"`
	ReviewCount    int            `json:"review_count"`
	Specifications map[string]any `json:"specifications"`
	Images         []string       `json:"images"`
	IsFeatured     bool           `json:"is_featured"`
}

// DiscountPercent returns the effective markdown relative to the list price.
func (p Product) DiscountPercent() float64 {
	if p.Price <= 0 {
		return 0
	}
	return float64(p.Price-p.DiscountPrice) / float64(p.Price) * 100
}

// Filters narrows a product listing. Zero-valued fields are ignored;
// price and rating bounds apply only when the corresponding Has flag is set.
type Filters struct {
	Brands        []string
	Subcategories []string
	MinPrice      int64
	HasMinPrice   bool
	MaxPrice      int64
	HasMaxPrice   bool
	MinRating     float64
	HasMinRating  bool
}

// PriceRange is the min/max charged price across a listing.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}
