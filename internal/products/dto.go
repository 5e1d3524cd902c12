// Package products implements seller-managed product listings.
package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
)

// CreateProductInput holds the validated payload for a new listing.
type CreateProductInput struct {
	Name           string         `json:"name" validate:"required"`
	Description    *string        `json:"description,omitempty"`
	Price          float64        `json:"price" validate:"required,gt=0"`
	DiscountPrice  *float64       `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	CategoryID     int64          `json:"category_id" validate:"required,gt=0"`
	Subcategory    *string        `json:"subcategory,omitempty"`
	Brand          *string        `json:"brand,omitempty"`
	Stock          int            `json:"stock" validate:"gte=0"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Images         []string       `json:"images,omitempty"`
}

// UpdateProductInput carries optional mutations; nil means unchanged.
type UpdateProductInput struct {
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Price          *float64        `json:"price,omitempty" validate:"omitempty,gt=0"`
	DiscountPrice  *float64        `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	Subcategory    *string         `json:"subcategory,omitempty"`
	Brand          *string         `json:"brand,omitempty"`
	Stock          *int            `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Specifications *map[string]any `json:"specifications,omitempty"`
	Images         *[]string       `json:"images,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// ProductDTO is the transport shape for a seller listing.
type ProductDTO struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Description    *string         `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	DiscountPrice  decimal.Decimal `json:"discount_price"`
	CategoryID     int64           `json:"category_id"`
	Subcategory    *string         `json:"subcategory,omitempty"`
	Brand          *string         `json:"brand,omitempty"`
	Stock          int             `json:"stock"`
	SellerID       *uuid.UUID      `json:"seller_id,omitempty"`
	RatingAvg      decimal.Decimal `json:"rating_avg"`
	ReviewCount    int             `json:"review_count"`
	Specifications map[string]any  `json:"specifications,omitempty"`
	Images         []string        `json:"images,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func toDTO(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		CategoryID:     p.CategoryID,
		Subcategory:    p.Subcategory,
		Brand:          p.Brand,
		Stock:          p.Stock,
		SellerID:       p.SellerID,
		RatingAvg:      p.RatingAvg,
		ReviewCount:    p.ReviewCount,
		Specifications: p.Specifications,
		Images:         p.Images,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
