// Package reviews handles product ratings and the aggregate score kept on
// the product row.
package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
)

// Repository exposes review persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new review row.
func (r *Repository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListByProduct returns a product's reviews, newest first.
func (r *Repository) ListByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).
		Error
	return rows, err
}

// Aggregate returns the average rating and review count for a product.
func (r *Repository) Aggregate(ctx context.Context, productID int64) (decimal.Decimal, int, error) {
	var row struct {
		Avg   *float64
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).
		Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	if row.Avg == nil {
		return decimal.Zero, 0, nil
	}
	return decimal.NewFromFloat(*row.Avg).Round(1), row.Count, nil
}

// UpdateProductAggregate writes the rating summary onto the product row if
// one exists for the ID.
func (r *Repository) UpdateProductAggregate(ctx context.Context, productID int64, avg decimal.Decimal, count int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumns(map[string]any{
			"rating_avg":   avg,
			"review_count": count,
		}).Error
}

// HasPurchased reports whether the user has an order containing the product.
func (r *Repository) HasPurchased(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).
		Error
	return count > 0, err
}
