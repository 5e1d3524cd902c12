package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkartlabs/shopkart-backend/internal/cart"
	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/internal/orders"
	"github.com/shopkartlabs/shopkart-backend/pkg/config"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
)

type stubCart struct {
	view    *cart.View
	cleared bool
}

func (s *stubCart) GetCart(_ context.Context, _ uuid.UUID) (*cart.View, error) {
	return s.view, nil
}

func (s *stubCart) Clear(_ context.Context, _ uuid.UUID) error {
	s.cleared = true
	return nil
}

type stubOrders struct {
	created *orders.CreateOrderInput
}

func (s *stubOrders) Create(_ context.Context, userID uuid.UUID, input orders.CreateOrderInput) (*models.Order, error) {
	s.created = &input
	return &models.Order{ID: 1, OrderNumber: input.OrderNumber, UserID: userID}, nil
}

func filledCart() *cart.View {
	items := []cart.Item{
		{Product: catalog.Product{ID: 1, Name: "Widget", DiscountPrice: 650}, Quantity: 2},
	}
	return &cart.View{Items: items, ItemCount: 2, Totals: cart.ComputeTotals(items)}
}

func newCheckout(t *testing.T, cartSvc *stubCart, orderSvc *stubOrders) Service {
	t.Helper()

	fixed := time.UnixMilli(1700000000000)
	svc, err := NewService(ServiceParams{
		Cart:   cartSvc,
		Orders: orderSvc,
		Config: config.CheckoutConfig{},
		Now:    func() time.Time { return fixed },
	})
	require.NoError(t, err)
	return svc
}

func TestPlaceOrderHappyPath(t *testing.T) {
	cartSvc := &stubCart{view: filledCart()}
	orderSvc := &stubOrders{}
	svc := newCheckout(t, cartSvc, orderSvc)

	order, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderInput{ShippingAddress: validAddress()})
	require.NoError(t, err)
	assert.Equal(t, "ORD1700000000000", order.OrderNumber)
	assert.True(t, cartSvc.cleared, "cart should be cleared after placement")

	require.NotNil(t, orderSvc.created)
	assert.Equal(t, int64(1300), orderSvc.created.Totals.Subtotal)
	assert.Equal(t, int64(234), orderSvc.created.Totals.Tax)
	assert.Equal(t, int64(0), orderSvc.created.Totals.Shipping)
}

func TestPlaceOrderNumberFormat(t *testing.T) {
	cartSvc := &stubCart{view: filledCart()}
	svc := newCheckout(t, cartSvc, &stubOrders{})

	order, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderInput{ShippingAddress: validAddress()})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(order.OrderNumber, "ORD"))
	assert.Len(t, order.OrderNumber, len("ORD")+13)
}

func TestPlaceOrderRejectsInvalidPhone(t *testing.T) {
	cartSvc := &stubCart{view: filledCart()}
	orderSvc := &stubOrders{}
	svc := newCheckout(t, cartSvc, orderSvc)

	addr := validAddress()
	addr.Phone = "123456789" // nine digits

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderInput{ShippingAddress: addr})
	require.Error(t, err)
	assert.Nil(t, orderSvc.created, "no order should be created on validation failure")
	assert.False(t, cartSvc.cleared, "cart must survive a failed checkout")
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	cartSvc := &stubCart{view: &cart.View{}}
	svc := newCheckout(t, cartSvc, &stubOrders{})

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderInput{ShippingAddress: validAddress()})
	require.Error(t, err)
}
