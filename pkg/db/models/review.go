package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a product.
type Review struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID          int64     `gorm:"column:product_id;not null;index"`
	UserID             uuid.UUID `gorm:"column:user_id;type:uuid;not null"`
	Rating             int       `gorm:"column:rating;not null"`
	Title              *string   `gorm:"column:title"`
	Comment            *string   `gorm:"column:comment"`
	IsVerifiedPurchase bool      `gorm:"column:is_verified_purchase;default:false"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}
