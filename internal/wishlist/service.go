package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/pagination"
)

type productLoader interface {
	ProductByID(id int64) (catalog.Product, bool)
}

// ItemView pairs a saved product with when it was added.
type ItemView struct {
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

// PageView is one load-more page of the wishlist.
type PageView struct {
	Items   []ItemView `json:"items"`
	HasMore bool       `json:"has_more"`
	Total   int        `json:"total"`
}

// Service exposes wishlist operations.
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, productID int64) error
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*PageView, error)
	ProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
}

type service struct {
	repo    *Repository
	catalog productLoader
}

// ServiceParams bundles the dependencies for the wishlist service.
type ServiceParams struct {
	Repo    *Repository
	Catalog productLoader
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("wishlist repository is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("product catalog is required")
	}
	return &service{repo: params.Repo, catalog: params.Catalog}, nil
}

// Add saves the product; saving twice is a no-op.
func (s *service) Add(ctx context.Context, userID uuid.UUID, productID int64) error {
	if _, ok := s.catalog.ProductByID(productID); !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err := s.repo.AddItem(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save wishlist item")
	}
	return nil
}

// Remove drops the entry regardless of prior state.
func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove wishlist item")
	}
	return nil
}

// List returns one page of saved products, newest first. Entries whose
// product no longer exists in the catalog are skipped.
func (s *service) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*PageView, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlist")
	}

	items := make([]ItemView, 0, len(rows))
	for _, row := range rows {
		product, ok := s.catalog.ProductByID(row.ProductID)
		if !ok {
			continue
		}
		items = append(items, ItemView{Product: product, AddedAt: row.CreatedAt})
	}

	page, hasMore := pagination.Page(items, params)
	return &PageView{Items: page, HasMore: hasMore, Total: len(items)}, nil
}

// ProductIDs returns every saved product ID for quick client-side lookups.
func (s *service) ProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlist")
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	return ids, nil
}
