package reviews

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CreateReviewInput is the payload for posting a review.
type CreateReviewInput struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Title   *string `json:"title,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// Summary is the aggregate score for a product.
type Summary struct {
	RatingAvg   decimal.Decimal `json:"rating_avg"`
	ReviewCount int             `json:"review_count"`
}

// Service exposes review operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, productID int64, input CreateReviewInput) (*models.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]models.Review, error)
	SummaryFor(ctx context.Context, productID int64) (*Summary, error)
}

type service struct {
	repo *Repository
	tx   txRunner
}

// ServiceParams bundles the dependencies for the reviews service.
type ServiceParams struct {
	Repo *Repository
	Tx   txRunner
}

// NewService constructs a reviews service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reviews repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{repo: params.Repo, tx: params.Tx}, nil
}

// Create stores the review and refreshes the product's rating aggregate in
// the same transaction.
func (s *service) Create(ctx context.Context, userID uuid.UUID, productID int64, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if input.Comment != nil && strings.TrimSpace(*input.Comment) == "" {
		input.Comment = nil
	}

	verified, err := s.repo.HasPurchased(ctx, userID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check purchase history")
	}

	review := &models.Review{
		ProductID:          productID,
		UserID:             userID,
		Rating:             input.Rating,
		Title:              input.Title,
		Comment:            input.Comment,
		IsVerifiedPurchase: verified,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, review); err != nil {
			return err
		}
		avg, count, err := repo.Aggregate(ctx, productID)
		if err != nil {
			return err
		}
		return repo.UpdateProductAggregate(ctx, productID, avg, count)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save review")
	}
	return review, nil
}

// ListByProduct returns a product's reviews, newest first.
func (s *service) ListByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	rows, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}
	return rows, nil
}

// SummaryFor returns the current aggregate score for a product.
func (s *service) SummaryFor(ctx context.Context, productID int64) (*Summary, error) {
	avg, count, err := s.repo.Aggregate(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate reviews")
	}
	return &Summary{RatingAvg: avg, ReviewCount: count}, nil
}
