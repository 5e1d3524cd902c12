package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/pkg/db"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
)

// Service exposes seller product management operations.
type Service interface {
	Create(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, sellerID uuid.UUID, role enums.Role, productID int64, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, sellerID uuid.UUID, role enums.Role, productID int64) error
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]ProductDTO, error)
}

type service struct {
	repo *Repository
}

// ServiceParams bundles the dependencies for the products service.
type ServiceParams struct {
	Repo *Repository
}

// NewService constructs a products service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("products repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// Create persists a new listing owned by the seller.
func (s *service) Create(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	price := decimal.NewFromFloat(input.Price)
	discount := price
	if input.DiscountPrice != nil {
		discount = decimal.NewFromFloat(*input.DiscountPrice)
		if discount.GreaterThan(price) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount price cannot exceed price")
		}
		if discount.LessThanOrEqual(decimal.Zero) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount price must be positive")
		}
	}

	owner := sellerID
	product := &models.Product{
		Name:           name,
		Slug:           catalog.Slugify(name),
		Description:    input.Description,
		Price:          price,
		DiscountPrice:  discount,
		CategoryID:     input.CategoryID,
		Subcategory:    input.Subcategory,
		Brand:          input.Brand,
		Stock:          input.Stock,
		SellerID:       &owner,
		Specifications: input.Specifications,
		Images:         pq.StringArray(input.Images),
		IsActive:       true,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a product with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return toDTO(created), nil
}

// Update applies partial changes to a listing the caller may edit.
func (s *service) Update(ctx context.Context, sellerID uuid.UUID, role enums.Role, productID int64, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.loadOwned(ctx, sellerID, role, productID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
		updates["slug"] = catalog.Slugify(name)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	price := product.Price
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		price = decimal.NewFromFloat(*input.Price)
		updates["price"] = price
	}
	if input.DiscountPrice != nil {
		discount := decimal.NewFromFloat(*input.DiscountPrice)
		if discount.GreaterThan(price) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount price cannot exceed price")
		}
		updates["discount_price"] = discount
	}
	if input.Subcategory != nil {
		updates["subcategory"] = *input.Subcategory
	}
	if input.Brand != nil {
		updates["brand"] = *input.Brand
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
		}
		updates["stock"] = *input.Stock
	}
	if input.Specifications != nil {
		updates["specifications"] = *input.Specifications
	}
	if input.Images != nil {
		updates["images"] = pq.StringArray(*input.Images)
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := s.repo.Update(ctx, productID, updates); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a product with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	fresh, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}
	return toDTO(fresh), nil
}

// Delete removes a listing the caller may edit.
func (s *service) Delete(ctx context.Context, sellerID uuid.UUID, role enums.Role, productID int64) error {
	if _, err := s.loadOwned(ctx, sellerID, role, productID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

// ListBySeller returns the caller's listings, newest first.
func (s *service) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]ProductDTO, error) {
	rows, err := s.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *toDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) loadOwned(ctx context.Context, sellerID uuid.UUID, role enums.Role, productID int64) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	if role == enums.RoleAdmin {
		return product, nil
	}
	if product.SellerID == nil || *product.SellerID != sellerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "product belongs to another seller")
	}
	return product, nil
}
