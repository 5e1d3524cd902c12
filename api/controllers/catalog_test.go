package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test-controllers", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func testCatalog() *catalog.Catalog {
	categories := []catalog.Category{
		{ID: 1, Name: "Electronics", Slug: "electronics", Subcategories: []string{"Audio", "Phones"}},
		{ID: 2, Name: "Fashion", Slug: "fashion"},
	}
	products := []catalog.Product{
		{ID: 1, Name: "Aurora Headphones", Slug: "aurora-headphones", Brand: "Aurora", CategoryID: 1, CategorySlug: "electronics", Subcategory: "Audio", Price: 4999, DiscountPrice: 3999, RatingAvg: 4.5, Stock: 10},
		{ID: 2, Name: "Volt Phone X", Slug: "volt-phone-x", Brand: "Volt", CategoryID: 1, CategorySlug: "electronics", Subcategory: "Phones", Price: 29999, DiscountPrice: 27999, RatingAvg: 4.1, Stock: 5, IsFeatured: true},
		{ID: 3, Name: "Linen Shirt", Slug: "linen-shirt", Brand: "Weave", CategoryID: 2, CategorySlug: "fashion", Price: 1499, DiscountPrice: 999, RatingAvg: 3.9, Stock: 20},
	}
	return catalog.NewWithProducts(categories, products)
}

func decodeListing(t *testing.T, body io.Reader) ProductListResponse {
	t.Helper()
	var envelope struct {
		Data ProductListResponse `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestListProductsSearch(t *testing.T) {
	handler := ListProducts(testCatalog(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products?q=aurora", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	listing := decodeListing(t, rec.Body)
	if listing.Total != 1 || len(listing.Products) != 1 {
		t.Fatalf("got %d products (total %d), want 1", len(listing.Products), listing.Total)
	}
	if listing.Products[0].Slug != "aurora-headphones" {
		t.Fatalf("got %q", listing.Products[0].Slug)
	}
}

func TestListProductsCategoryFilterAndSort(t *testing.T) {
	handler := ListProducts(testCatalog(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=electronics&sort=price-low", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	listing := decodeListing(t, rec.Body)
	if listing.Total != 2 {
		t.Fatalf("total = %d, want 2", listing.Total)
	}
	if listing.Products[0].ID != 1 || listing.Products[1].ID != 2 {
		t.Fatalf("unexpected order: %d then %d", listing.Products[0].ID, listing.Products[1].ID)
	}
}

func TestListProductsPagination(t *testing.T) {
	handler := ListProducts(testCatalog(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products?limit=2", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	listing := decodeListing(t, rec.Body)
	if len(listing.Products) != 2 || !listing.HasMore || listing.Total != 3 {
		t.Fatalf("page = %d items, has_more = %v, total = %d", len(listing.Products), listing.HasMore, listing.Total)
	}
}

func TestListProductsUnknownCategory(t *testing.T) {
	handler := ListProducts(testCatalog(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=toys", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListProductsBadSortKey(t *testing.T) {
	handler := ListProducts(testCatalog(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products?sort=alphabetical", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetProductBySlug(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/products/{slug}", GetProduct(testCatalog(), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/products/linen-shirt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var envelope struct {
		Data catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != 3 {
		t.Fatalf("product id = %d, want 3", envelope.Data.ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCategoryFacets(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/categories/{slug}/facets", CategoryFacets(testCatalog(), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/categories/electronics/facets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var envelope struct {
		Data CategoryFacetsResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Brands) != 2 {
		t.Fatalf("brands = %v, want two", envelope.Data.Brands)
	}
	if envelope.Data.PriceRange.Min != 3999 || envelope.Data.PriceRange.Max != 27999 {
		t.Fatalf("price range = %+v", envelope.Data.PriceRange)
	}
}
