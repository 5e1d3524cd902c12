package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shopkartlabs/shopkart-backend/api/middleware"
	"github.com/shopkartlabs/shopkart-backend/internal/cart"
	pkgAuth "github.com/shopkartlabs/shopkart-backend/pkg/auth"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
)

type stubCartService struct {
	lastUserID    uuid.UUID
	lastProductID int64
	lastQuantity  int
	cleared       bool
}

func (s *stubCartService) GetCart(_ context.Context, userID uuid.UUID) (*cart.View, error) {
	s.lastUserID = userID
	return &cart.View{Items: []cart.Item{}}, nil
}

func (s *stubCartService) AddItem(_ context.Context, userID uuid.UUID, productID int64, quantity int) (*cart.View, error) {
	s.lastUserID, s.lastProductID, s.lastQuantity = userID, productID, quantity
	return &cart.View{Items: []cart.Item{}, ItemCount: quantity}, nil
}

func (s *stubCartService) UpdateItemQuantity(_ context.Context, userID uuid.UUID, productID int64, quantity int) (*cart.View, error) {
	s.lastUserID, s.lastProductID, s.lastQuantity = userID, productID, quantity
	return &cart.View{Items: []cart.Item{}}, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, userID uuid.UUID, productID int64) (*cart.View, error) {
	s.lastUserID, s.lastProductID = userID, productID
	return &cart.View{Items: []cart.Item{}}, nil
}

func (s *stubCartService) Clear(_ context.Context, userID uuid.UUID) error {
	s.lastUserID = userID
	s.cleared = true
	return nil
}

func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	claims := &pkgAuth.AccessTokenClaims{UserID: userID, Role: enums.RoleUser}
	return req.WithContext(middleware.WithUser(req.Context(), claims))
}

func TestAddCartItemDefaultsQuantity(t *testing.T) {
	svc := &stubCartService{}
	handler := AddCartItem(svc, testLogger())
	userID := uuid.New()

	req := authedRequest(http.MethodPost, "/api/cart/items", `{"product_id": 42}`, userID)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if svc.lastUserID != userID {
		t.Fatalf("service saw user %s, want %s", svc.lastUserID, userID)
	}
	if svc.lastProductID != 42 || svc.lastQuantity != 1 {
		t.Fatalf("service saw product %d qty %d, want 42 qty 1", svc.lastProductID, svc.lastQuantity)
	}
}

func TestAddCartItemRejectsMissingProduct(t *testing.T) {
	handler := AddCartItem(&stubCartService{}, testLogger())

	req := authedRequest(http.MethodPost, "/api/cart/items", `{"quantity": 2}`, uuid.New())
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateCartItemParsesPathParam(t *testing.T) {
	svc := &stubCartService{}
	router := chi.NewRouter()
	router.Patch("/api/cart/items/{productId}", UpdateCartItem(svc, testLogger()))

	req := authedRequest(http.MethodPatch, "/api/cart/items/7", `{"quantity": 3}`, uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if svc.lastProductID != 7 || svc.lastQuantity != 3 {
		t.Fatalf("service saw product %d qty %d, want 7 qty 3", svc.lastProductID, svc.lastQuantity)
	}
}

func TestUpdateCartItemAcceptsZeroQuantity(t *testing.T) {
	svc := &stubCartService{lastQuantity: -1}
	router := chi.NewRouter()
	router.Patch("/api/cart/items/{productId}", UpdateCartItem(svc, testLogger()))

	req := authedRequest(http.MethodPatch, "/api/cart/items/7", `{"quantity": 0}`, uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if svc.lastQuantity != 0 {
		t.Fatalf("service saw qty %d, want 0", svc.lastQuantity)
	}
}

func TestUpdateCartItemRejectsBadParam(t *testing.T) {
	router := chi.NewRouter()
	router.Patch("/api/cart/items/{productId}", UpdateCartItem(&stubCartService{}, testLogger()))

	req := authedRequest(http.MethodPatch, "/api/cart/items/banana", `{"quantity": 3}`, uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestClearCart(t *testing.T) {
	svc := &stubCartService{}
	handler := ClearCart(svc, testLogger())

	req := authedRequest(http.MethodDelete, "/api/cart", "", uuid.New())
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !svc.cleared {
		t.Fatal("cart was not cleared")
	}
}
