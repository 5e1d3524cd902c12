package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopkartlabs/shopkart-backend/api/responses"
	"github.com/shopkartlabs/shopkart-backend/api/validators"
	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
	"github.com/shopkartlabs/shopkart-backend/pkg/pagination"
)

// ProductListResponse is a paginated slice of catalog listings.
type ProductListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	HasMore  bool              `json:"has_more"`
}

// CategoryFacetsResponse summarizes the filterable values within a category.
type CategoryFacetsResponse struct {
	Brands     []string           `json:"brands"`
	PriceRange catalog.PriceRange `json:"price_range"`
}

// ListProducts serves the browsable catalog with search, filtering, sorting,
// and offset paging. A search query takes precedence over category filters.
func ListProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listingParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var products []catalog.Product
		switch {
		case r.URL.Query().Get("q") != "":
			products = cat.SearchProducts(strings.TrimSpace(r.URL.Query().Get("q")))
		case r.URL.Query().Get("featured") == "true":
			products = cat.FeaturedProducts()
		default:
			categorySlug := strings.TrimSpace(r.URL.Query().Get("category"))
			if categorySlug != "" {
				if _, ok := cat.CategoryBySlug(categorySlug); !ok {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
					return
				}
			}
			filters, ferr := filtersFromQuery(r)
			if ferr != nil {
				responses.WriteError(r.Context(), logg, w, ferr)
				return
			}
			sortKey, serr := sortFromQuery(r)
			if serr != nil {
				responses.WriteError(r.Context(), logg, w, serr)
				return
			}
			products = cat.FilterProducts(categorySlug, filters, sortKey)
		}

		page, hasMore := pagination.Page(products, params)
		responses.WriteSuccess(w, ProductListResponse{
			Products: page,
			Total:    len(products),
			HasMore:  hasMore,
		})
	}
}

// GetProduct resolves a single listing by its URL slug.
func GetProduct(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		product, ok := cat.ProductBySlug(slug)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ListCategories returns every browsable category.
func ListCategories(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]any{"categories": cat.Categories()})
	}
}

// CategoryProducts lists a category's products with filters and sorting.
func CategoryProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if _, ok := cat.CategoryBySlug(slug); !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
			return
		}

		params, err := listingParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters, err := filtersFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sortKey, err := sortFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := cat.FilterProducts(slug, filters, sortKey)
		page, hasMore := pagination.Page(products, params)
		responses.WriteSuccess(w, ProductListResponse{
			Products: page,
			Total:    len(products),
			HasMore:  hasMore,
		})
	}
}

// CategoryFacets returns the brand list and charged-price range for a
// category, for building filter sidebars.
func CategoryFacets(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if _, ok := cat.CategoryBySlug(slug); !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
			return
		}
		responses.WriteSuccess(w, CategoryFacetsResponse{
			Brands:     cat.BrandsByCategory(slug),
			PriceRange: cat.PriceRangeFor(slug),
		})
	}
}

func listingParams(r *http.Request) (pagination.Params, error) {
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Limit: limit, Offset: offset}, nil
}

func filtersFromQuery(r *http.Request) (catalog.Filters, error) {
	filters := catalog.Filters{
		Brands:        validators.ParseQueryList(r, "brands"),
		Subcategories: validators.ParseQueryList(r, "subcategories"),
	}
	if minPrice, err := validators.ParseQueryInt64(r, "min_price"); err != nil {
		return catalog.Filters{}, err
	} else if minPrice != nil {
		filters.MinPrice, filters.HasMinPrice = *minPrice, true
	}
	if maxPrice, err := validators.ParseQueryInt64(r, "max_price"); err != nil {
		return catalog.Filters{}, err
	} else if maxPrice != nil {
		filters.MaxPrice, filters.HasMaxPrice = *maxPrice, true
	}
	if minRating, err := validators.ParseQueryFloat(r, "min_rating"); err != nil {
		return catalog.Filters{}, err
	} else if minRating != nil {
		filters.MinRating, filters.HasMinRating = *minRating, true
	}
	return filters, nil
}

func sortFromQuery(r *http.Request) (enums.SortKey, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("sort"))
	if raw == "" {
		return "", nil
	}
	sortKey, err := enums.ParseSortKey(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown sort key").
			WithDetails(map[string]any{"field": "sort"})
	}
	return sortKey, nil
}
