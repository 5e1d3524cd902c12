package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shopkartlabs/shopkart-backend/internal/addresses"
	internalauth "github.com/shopkartlabs/shopkart-backend/internal/auth"
	"github.com/shopkartlabs/shopkart-backend/internal/cart"
	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/internal/checkout"
	"github.com/shopkartlabs/shopkart-backend/internal/orders"
	"github.com/shopkartlabs/shopkart-backend/internal/products"
	"github.com/shopkartlabs/shopkart-backend/internal/reviews"
	"github.com/shopkartlabs/shopkart-backend/internal/users"
	"github.com/shopkartlabs/shopkart-backend/internal/wishlist"
	pkgAuth "github.com/shopkartlabs/shopkart-backend/pkg/auth"
	"github.com/shopkartlabs/shopkart-backend/pkg/config"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
	"github.com/shopkartlabs/shopkart-backend/pkg/pagination"
)

type stubAuthService struct{}

func (stubAuthService) Signup(context.Context, internalauth.SignupRequest) (*internalauth.AuthResponse, error) {
	return &internalauth.AuthResponse{AccessToken: "token"}, nil
}
func (stubAuthService) Login(context.Context, internalauth.LoginRequest) (*internalauth.AuthResponse, error) {
	return &internalauth.AuthResponse{AccessToken: "token"}, nil
}
func (stubAuthService) Logout(context.Context, *pkgAuth.AccessTokenClaims) error { return nil }
func (stubAuthService) Me(context.Context, uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{Email: "shopper@example.com"}, nil
}
func (stubAuthService) UpdateProfile(context.Context, uuid.UUID, internalauth.UpdateProfileRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

type stubProductsService struct{}

func (stubProductsService) Create(context.Context, uuid.UUID, products.CreateProductInput) (*products.ProductDTO, error) {
	return &products.ProductDTO{ID: 1}, nil
}
func (stubProductsService) Update(context.Context, uuid.UUID, enums.Role, int64, products.UpdateProductInput) (*products.ProductDTO, error) {
	return &products.ProductDTO{ID: 1}, nil
}
func (stubProductsService) Delete(context.Context, uuid.UUID, enums.Role, int64) error { return nil }
func (stubProductsService) ListBySeller(context.Context, uuid.UUID) ([]products.ProductDTO, error) {
	return []products.ProductDTO{}, nil
}

type stubCartService struct{}

func (stubCartService) GetCart(context.Context, uuid.UUID) (*cart.View, error) {
	return &cart.View{Items: []cart.Item{}}, nil
}
func (stubCartService) AddItem(context.Context, uuid.UUID, int64, int) (*cart.View, error) {
	return &cart.View{Items: []cart.Item{}}, nil
}
func (stubCartService) UpdateItemQuantity(context.Context, uuid.UUID, int64, int) (*cart.View, error) {
	return &cart.View{Items: []cart.Item{}}, nil
}
func (stubCartService) RemoveItem(context.Context, uuid.UUID, int64) (*cart.View, error) {
	return &cart.View{Items: []cart.Item{}}, nil
}
func (stubCartService) Clear(context.Context, uuid.UUID) error { return nil }

type stubCheckoutService struct{}

func (stubCheckoutService) PlaceOrder(context.Context, uuid.UUID, checkout.PlaceOrderInput) (*models.Order, error) {
	return &models.Order{ID: 1}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) Create(context.Context, uuid.UUID, orders.CreateOrderInput) (*models.Order, error) {
	return &models.Order{ID: 1}, nil
}
func (stubOrdersService) ListByUser(context.Context, uuid.UUID) ([]models.Order, error) {
	return []models.Order{}, nil
}
func (stubOrdersService) GetByID(context.Context, uuid.UUID, int64) (*models.Order, error) {
	return &models.Order{ID: 1}, nil
}

type stubAddressesService struct{}

func (stubAddressesService) Create(context.Context, uuid.UUID, addresses.CreateAddressInput) (*models.Address, error) {
	return &models.Address{ID: 1}, nil
}
func (stubAddressesService) List(context.Context, uuid.UUID) ([]models.Address, error) {
	return []models.Address{}, nil
}
func (stubAddressesService) Get(context.Context, uuid.UUID, int64) (*models.Address, error) {
	return &models.Address{ID: 1}, nil
}
func (stubAddressesService) SetDefault(context.Context, uuid.UUID, int64) error { return nil }
func (stubAddressesService) Delete(context.Context, uuid.UUID, int64) error     { return nil }

type stubReviewsService struct{}

func (stubReviewsService) Create(context.Context, uuid.UUID, int64, reviews.CreateReviewInput) (*models.Review, error) {
	return &models.Review{ID: 1}, nil
}
func (stubReviewsService) ListByProduct(context.Context, int64) ([]models.Review, error) {
	return []models.Review{}, nil
}
func (stubReviewsService) SummaryFor(context.Context, int64) (*reviews.Summary, error) {
	return &reviews.Summary{}, nil
}

type stubWishlistService struct{}

func (stubWishlistService) Add(context.Context, uuid.UUID, int64) error    { return nil }
func (stubWishlistService) Remove(context.Context, uuid.UUID, int64) error { return nil }
func (stubWishlistService) List(context.Context, uuid.UUID, pagination.Params) (*wishlist.PageView, error) {
	return &wishlist.PageView{Items: []wishlist.ItemView{}}, nil
}
func (stubWishlistService) ProductIDs(context.Context, uuid.UUID) ([]int64, error) {
	return []int64{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "routing-secret", Issuer: "shopkart", ExpirationMinutes: 30},
	}
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	categories := []catalog.Category{{ID: 1, Name: "Electronics", Slug: "electronics"}}
	items := []catalog.Product{{ID: 1, Name: "Aurora Headphones", Slug: "aurora-headphones", CategoryID: 1, CategorySlug: "electronics", Price: 4999, DiscountPrice: 3999}}

	return NewRouter(Deps{
		Config:    testConfig(),
		Logger:    logg,
		Catalog:   catalog.NewWithProducts(categories, items),
		Auth:      stubAuthService{},
		Products:  stubProductsService{},
		Cart:      stubCartService{},
		Checkout:  stubCheckoutService{},
		Orders:    stubOrdersService{},
		Addresses: stubAddressesService{},
		Reviews:   stubReviewsService{},
		Wishlist:  stubWishlistService{},
	})
}

func mintToken(t *testing.T, role enums.Role) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPublicRoutes(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/health/live", http.StatusOK},
		{http.MethodGet, "/health/ready", http.StatusOK},
		{http.MethodGet, "/api/products", http.StatusOK},
		{http.MethodGet, "/api/products/aurora-headphones", http.StatusOK},
		{http.MethodGet, "/api/products/aurora-headphones/reviews", http.StatusOK},
		{http.MethodGet, "/api/categories", http.StatusOK},
		{http.MethodGet, "/api/categories/electronics/products", http.StatusOK},
		{http.MethodGet, "/api/categories/electronics/facets", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.target, rec.Code, tc.want)
		}
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/addresses"},
		{http.MethodGet, "/api/wishlist"},
		{http.MethodGet, "/api/auth/user"},
		{http.MethodPost, "/api/products/aurora-headphones/reviews"},
		{http.MethodGet, "/api/seller/products"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token = %d, want 401", tc.method, tc.target, rec.Code)
		}
	}
}

func TestProtectedRoutesWithToken(t *testing.T) {
	router := testRouter(t)
	token := mintToken(t, enums.RoleUser)

	cases := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/cart", "", http.StatusOK},
		{http.MethodPost, "/api/cart/items", `{"product_id":1,"quantity":1}`, http.StatusOK},
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodGet, "/api/addresses", "", http.StatusOK},
		{http.MethodGet, "/api/wishlist", "", http.StatusOK},
		{http.MethodGet, "/api/wishlist/ids", "", http.StatusOK},
		{http.MethodGet, "/api/auth/user", "", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s %s = %d, want %d: %s", tc.method, tc.target, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestSellerRoutesEnforceRole(t *testing.T) {
	router := testRouter(t)

	shopperToken := mintToken(t, enums.RoleUser)
	req := httptest.NewRequest(http.MethodGet, "/api/seller/products", nil)
	req.Header.Set("Authorization", "Bearer "+shopperToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("shopper on seller route = %d, want 403", rec.Code)
	}

	sellerToken := mintToken(t, enums.RoleSeller)
	req = httptest.NewRequest(http.MethodGet, "/api/seller/products", nil)
	req.Header.Set("Authorization", "Bearer "+sellerToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("seller on seller route = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestPlaceOrderRoute(t *testing.T) {
	router := testRouter(t)
	token := mintToken(t, enums.RoleUser)

	body := `{"shipping_address":{"full_name":"Asha Rao","phone":"9876543210","address_line1":"12 MG Road","city":"Bengaluru","state":"Karnataka","postal_code":"560001","country":"India"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("place order = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}
