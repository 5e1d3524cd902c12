package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/pagination"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  created_at DATETIME,
  UNIQUE (user_id, product_id)
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func testProducts() *catalog.Catalog {
	category := catalog.Category{ID: 1, Name: "Electronics", Slug: "electronics"}
	items := []catalog.Product{
		{ID: 1001, Name: "Widget", Slug: "widget", Price: 999, DiscountPrice: 650, CategoryID: 1, CategorySlug: "electronics"},
		{ID: 1002, Name: "Gadget", Slug: "gadget", Price: 400, DiscountPrice: 300, CategoryID: 1, CategorySlug: "electronics"},
		{ID: 1003, Name: "Doohickey", Slug: "doohickey", Price: 150, DiscountPrice: 150, CategoryID: 1, CategorySlug: "electronics"},
	}
	return catalog.NewWithProducts([]catalog.Category{category}, items)
}

func newWishlistService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{Repo: NewRepository(db), Catalog: testProducts()})
	require.NoError(t, err)
	return svc
}

func TestAddIsIdempotent(t *testing.T) {
	svc := newWishlistService(t, setupWishlistTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.Add(ctx, userID, 1001))
	require.NoError(t, svc.Add(ctx, userID, 1001))

	ids, err := svc.ProductIDs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1001}, ids)
}

func TestAddUnknownProductNotFound(t *testing.T) {
	svc := newWishlistService(t, setupWishlistTestDB(t))

	err := svc.Add(context.Background(), uuid.New(), 99999)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRemoveMissingEntryIsNoOp(t *testing.T) {
	svc := newWishlistService(t, setupWishlistTestDB(t))

	require.NoError(t, svc.Remove(context.Background(), uuid.New(), 1001))
}

func TestListNewestFirstWithPaging(t *testing.T) {
	svc := newWishlistService(t, setupWishlistTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.Add(ctx, userID, 1001))
	require.NoError(t, svc.Add(ctx, userID, 1002))
	require.NoError(t, svc.Add(ctx, userID, 1003))

	page, err := svc.List(ctx, userID, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, int64(1003), page.Items[0].Product.ID, "latest addition first")

	rest, err := svc.List(ctx, userID, pagination.Params{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest.Items, 1)
	assert.False(t, rest.HasMore)
}

func TestListScopedToUser(t *testing.T) {
	svc := newWishlistService(t, setupWishlistTestDB(t))
	ctx := context.Background()

	owner := uuid.New()
	require.NoError(t, svc.Add(ctx, owner, 1001))
	require.NoError(t, svc.Add(ctx, uuid.New(), 1002))

	ids, err := svc.ProductIDs(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []int64{1001}, ids)
}
