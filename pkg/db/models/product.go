package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing persisted for seller CRUD.
type Product struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string          `gorm:"column:name;not null"`
	Slug           string          `gorm:"column:slug;not null;uniqueIndex"`
	Description    *string         `gorm:"column:description"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	DiscountPrice  decimal.Decimal `gorm:"column:discount_price;type:numeric(10,2)"`
	CategoryID     int64           `gorm:"column:category_id;not null;index"`
	Subcategory    *string         `gorm:"column:subcategory"`
	Brand          *string         `gorm:"column:brand;index"`
	Stock          int             `gorm:"column:stock;not null;default:0"`
	SellerID       *uuid.UUID      `gorm:"column:seller_id;type:uuid;index"`
	RatingAvg      decimal.Decimal `gorm:"column:rating_avg;type:numeric(2,1);default:0"`
	ReviewCount    int             `gorm:"column:review_count;default:0"`
	Specifications map[string]any  `gorm:"column:specifications;type:jsonb;serializer:json"`
	Images         pq.StringArray  `gorm:"column:images;type:text[]"`
	IsFeatured     bool            `gorm:"column:is_featured;default:false"`
	IsActive       bool            `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
