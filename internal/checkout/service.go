package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopkartlabs/shopkart-backend/internal/cart"
	"github.com/shopkartlabs/shopkart-backend/internal/orders"
	"github.com/shopkartlabs/shopkart-backend/pkg/config"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

type cartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*cart.View, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type orderCreator interface {
	Create(ctx context.Context, userID uuid.UUID, input orders.CreateOrderInput) (*models.Order, error)
}

// PlaceOrderInput is the payload for the final checkout step.
type PlaceOrderInput struct {
	ShippingAddress types.ShippingAddress
	AddressID       *int64
}

// Service turns a validated cart and address into a placed order.
type Service interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*models.Order, error)
}

type service struct {
	cart   cartService
	orders orderCreator
	cfg    config.CheckoutConfig
	logg   *logger.Logger
	now    func() time.Time
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Cart   cartService
	Orders orderCreator
	Config config.CheckoutConfig
	Logger *logger.Logger
	Now    func() time.Time
}

// NewService builds a checkout service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order service required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		cart:   params.Cart,
		orders: params.Orders,
		cfg:    params.Config,
		logg:   params.Logger,
		now:    now,
	}, nil
}

// PlaceOrder validates the address, freezes the cart into an order, and
// clears the cart. Order rows and line items are written atomically by the
// order service; a cart-clear failure after the order exists is logged but
// does not fail the placement.
func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := ValidateShippingAddress(input.ShippingAddress); err != nil {
		return nil, err
	}

	view, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot place an order with an empty cart")
	}

	// simulated payment capture latency
	if s.cfg.ProcessingDelay > 0 {
		select {
		case <-time.After(s.cfg.ProcessingDelay):
		case <-ctx.Done():
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "checkout cancelled")
		}
	}

	order, err := s.orders.Create(ctx, userID, orders.CreateOrderInput{
		OrderNumber:     s.newOrderNumber(),
		ShippingAddress: input.ShippingAddress,
		AddressID:       input.AddressID,
		Items:           view.Items,
		Totals:          view.Totals,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx, userID); err != nil && s.logg != nil {
		s.logg.Error(ctx, "clearing cart after order placement", err)
	}
	return order, nil
}

func (s *service) newOrderNumber() string {
	return fmt.Sprintf("ORD%d", s.now().UnixMilli())
}
