package models

import (
	"time"

	"github.com/lib/pq"
)

// Category groups products for browsing.
type Category struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string         `gorm:"column:name;not null"`
	Slug          string         `gorm:"column:slug;not null;uniqueIndex"`
	Description   *string        `gorm:"column:description"`
	ImageURL      *string        `gorm:"column:image_url"`
	Subcategories pq.StringArray `gorm:"column:subcategories;type:text[]"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
}
