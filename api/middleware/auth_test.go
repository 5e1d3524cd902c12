package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgAuth "github.com/shopkartlabs/shopkart-backend/pkg/auth"
	"github.com/shopkartlabs/shopkart-backend/pkg/config"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
)

type stubDenylist struct {
	denied map[string]bool
	err    error
}

func (s *stubDenylist) IsTokenDenied(_ context.Context, jti string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.denied[jti], nil
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "shopkart", ExpirationMinutes: 30}
}

func mintToken(t *testing.T, jti string) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(authTestConfig(), time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.RoleUser,
		JTI:    jti,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authorization string, denylist TokenDenyChecker) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	handler := Auth(authTestConfig(), denylist, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if UserIDFromContext(r.Context()) == uuid.Nil {
			t.Errorf("expected user id in context")
		}
		if ClaimsFromContext(r.Context()) == nil {
			t.Errorf("expected claims in context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, called
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	rec, called := runAuth(t, "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler must not run without credentials")
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	rec, called := runAuth(t, "Bearer not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler must not run with an invalid token")
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token := mintToken(t, uuid.NewString())
	rec, called := runAuth(t, "Bearer "+token, &stubDenylist{})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Fatalf("handler should have run")
	}
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	jti := uuid.NewString()
	token := mintToken(t, jti)
	denylist := &stubDenylist{denied: map[string]bool{jti: true}}

	rec, called := runAuth(t, "Bearer "+token, denylist)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler must not run with a revoked token")
	}
}

func TestRequireRoleFiltersByRole(t *testing.T) {
	handler := RequireRole(nil, enums.RoleSeller, enums.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		role enums.Role
		want int
	}{
		{enums.RoleSeller, http.StatusOK},
		{enums.RoleAdmin, http.StatusOK},
		{enums.RoleUser, http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/seller", nil)
		claims := &pkgAuth.AccessTokenClaims{UserID: uuid.New(), Role: tc.role}
		req = req.WithContext(WithUser(req.Context(), claims))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("role %q: expected %d, got %d", tc.role, tc.want, rec.Code)
		}
	}
}
