package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/cart"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CreateOrderInput carries everything needed to freeze a checkout into an order.
type CreateOrderInput struct {
	OrderNumber     string
	ShippingAddress types.ShippingAddress
	AddressID       *int64
	Items           []cart.Item
	Totals          cart.Totals
}

// Service exposes order placement and history.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*models.Order, error)
}

type service struct {
	repo *Repository
	tx   txRunner
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repo *Repository
	Tx   txRunner
}

// NewService builds an order service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: params.Repo, tx: params.Tx}, nil
}

// Create persists the order and all its line items in a single transaction,
// so a failure partway leaves no dangling order row.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.OrderNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot place an order with an empty cart")
	}

	addr := input.ShippingAddress
	order := &models.Order{
		OrderNumber:     input.OrderNumber,
		UserID:          userID,
		AddressID:       input.AddressID,
		Subtotal:        decimal.NewFromInt(input.Totals.Subtotal),
		Tax:             decimal.NewFromInt(input.Totals.Tax),
		Shipping:        decimal.NewFromInt(input.Totals.Shipping),
		TotalAmount:     decimal.NewFromInt(input.Totals.Total),
		PaymentStatus:   enums.PaymentStatusPaid,
		OrderStatus:     enums.OrderStatusConfirmed,
		ShippingAddress: &addr,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			items = append(items, models.OrderItem{
				OrderID:         order.ID,
				ProductID:       line.Product.ID,
				ProductName:     line.Product.Name,
				Quantity:        line.Quantity,
				PriceAtPurchase: decimal.NewFromInt(line.Product.DiscountPrice),
			})
		}
		return repo.CreateItems(ctx, items)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "placing order")
	}
	return order, nil
}

// ListByUser returns the user's order history, newest first.
func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}
	return rows, nil
}

// GetByID loads one order, scoped to its owner.
func (s *service) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	record, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}
	return record, nil
}
