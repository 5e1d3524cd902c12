package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	carts := `
CREATE TABLE IF NOT EXISTS carts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`
	cartItems := `
CREATE TABLE IF NOT EXISTS cart_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  cart_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  UNIQUE (cart_id, product_id)
);`
	require.NoError(t, db.Exec(carts).Error)
	require.NoError(t, db.Exec(cartItems).Error)
	return db
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func testProducts() *catalog.Catalog {
	categories := []catalog.Category{{ID: 1, Slug: "test"}}
	products := []catalog.Product{
		{ID: 1, Name: "Widget", Slug: "widget", Price: 700, DiscountPrice: 650, CategorySlug: "test"},
		{ID: 2, Name: "Gadget", Slug: "gadget", Price: 400, DiscountPrice: 300, CategorySlug: "test"},
	}
	return catalog.NewWithProducts(categories, products)
}

func newCartService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(db),
		Tx:       gormTxRunner{db: db},
		Products: testProducts(),
	})
	require.NoError(t, err)
	return svc
}

func TestServiceAddItemMerges(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	userID := uuid.New()

	view, err := svc.AddItem(ctx, userID, 1, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	view, err = svc.AddItem(ctx, userID, 1, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.ItemCount)
}

func TestServiceAddUnknownProduct(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.AddItem(context.Background(), uuid.New(), 999, 1)
	require.Error(t, err)
}

func TestServiceUpdateQuantityZeroRemoves(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.AddItem(ctx, userID, 1, 2)
	require.NoError(t, err)

	view, err := svc.UpdateItemQuantity(ctx, userID, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestServiceUpdateAbsentItem(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.UpdateItemQuantity(context.Background(), uuid.New(), 1, 2)
	require.Error(t, err)
}

func TestServiceTotals(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.AddItem(ctx, userID, 1, 2)
	require.NoError(t, err)

	view, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1300), view.Totals.Subtotal)
	assert.Equal(t, int64(234), view.Totals.Tax)
	assert.Equal(t, int64(0), view.Totals.Shipping)
	assert.Equal(t, int64(1534), view.Totals.Total)
}

func TestServiceClear(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.AddItem(ctx, userID, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, 2, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, userID))

	view, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.Totals.Total)
}

func TestServiceCartsAreIsolatedPerUser(t *testing.T) {
	db := setupCartTestDB(t)
	svc := newCartService(t, db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.AddItem(ctx, alice, 1, 1)
	require.NoError(t, err)

	view, err := svc.GetCart(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
