package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopkartlabs/shopkart-backend/internal/users"
	pkgAuth "github.com/shopkartlabs/shopkart-backend/pkg/auth"
	"github.com/shopkartlabs/shopkart-backend/pkg/config"
	"github.com/shopkartlabs/shopkart-backend/pkg/db/models"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/security"
)

type stubUserRepo struct {
	byEmail   map[string]*models.User
	createErr error
	lastLogin *time.Time
	updated   *users.UpdateProfileDTO
}

func newStubUserRepo(seed ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{byEmail: map[string]*models.User{}}
	for _, u := range seed {
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (s *stubUserRepo) Create(_ context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, exists := s.byEmail[dto.Email]; exists {
		return nil, errors.New("UNIQUE constraint failed: users.email")
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	s.byEmail[dto.Email] = user
	return user, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range s.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, at time.Time) error {
	s.lastLogin = &at
	return nil
}

func (s *stubUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, dto users.UpdateProfileDTO) error {
	s.updated = &dto
	for _, user := range s.byEmail {
		if user.ID == id {
			if dto.FirstName != nil {
				user.FirstName = *dto.FirstName
			}
			if dto.LastName != nil {
				user.LastName = *dto.LastName
			}
			if dto.Phone != nil {
				user.Phone = dto.Phone
			}
			if dto.ProfileImageURL != nil {
				user.ProfileImageURL = dto.ProfileImageURL
			}
		}
	}
	return nil
}

type stubRevoker struct {
	denied map[string]time.Duration
	err    error
}

func (s *stubRevoker) DenyToken(_ context.Context, jti string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	if s.denied == nil {
		s.denied = map[string]time.Duration{}
	}
	s.denied[jti] = ttl
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "shopkart", ExpirationMinutes: 30}
}

func buildTestService(t *testing.T, repo *stubUserRepo, revoker *stubRevoker) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		TokenRevoker:   revoker,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func seededUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: mustHashPassword(t, password),
		FirstName:    "Asha",
		LastName:     "Rao",
		Role:         enums.RoleUser,
		IsApproved:   true,
	}
}

func TestSignupMintsTokenAndReturnsProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := buildTestService(t, repo, &stubRevoker{})

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Email:     " Shopper@Example.COM ",
		Password:  "Sup3rSecret",
		FirstName: "Asha",
		LastName:  "Rao",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if resp.User == nil || resp.User.Email != "shopper@example.com" {
		t.Fatalf("expected normalized email, got %+v", resp.User)
	}
	if resp.User.Role != enums.RoleUser {
		t.Fatalf("expected default role user, got %s", resp.User.Role)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Fatalf("token subject mismatch: %s vs %s", claims.UserID, resp.User.ID)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti on minted token")
	}
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), &stubRevoker{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:     "weak@example.com",
		Password:  "alllowercase1",
		FirstName: "Weak",
		LastName:  "Password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSignupRejectsAdminRole(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), &stubRevoker{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:     "escalate@example.com",
		Password:  "Sup3rSecret",
		FirstName: "No",
		LastName:  "Admin",
		Role:      "admin",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSignupAllowsSellerRole(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), &stubRevoker{})

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Email:     "seller@example.com",
		Password:  "Sup3rSecret",
		FirstName: "Sita",
		LastName:  "Vendor",
		Role:      "seller",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if resp.User.Role != enums.RoleSeller {
		t.Fatalf("expected seller role, got %s", resp.User.Role)
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	repo := newStubUserRepo(seededUser(t, "taken@example.com", "Sup3rSecret"))
	svc := buildTestService(t, repo, &stubRevoker{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:     "taken@example.com",
		Password:  "Sup3rSecret",
		FirstName: "Second",
		LastName:  "Taker",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestLoginSuccessRecordsLastLogin(t *testing.T) {
	password := "Sup3rSecret"
	user := seededUser(t, "shopper@example.com", password)
	repo := newStubUserRepo(user)
	svc := buildTestService(t, repo, &stubRevoker{})

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Shopper@Example.com",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if repo.lastLogin == nil {
		t.Fatalf("expected last login to be recorded")
	}
	if resp.User.LastLoginAt == nil {
		t.Fatalf("expected last login on returned profile")
	}
}

func TestLoginWrongPasswordAndUnknownEmailMatch(t *testing.T) {
	user := seededUser(t, "shopper@example.com", "Sup3rSecret")
	svc := buildTestService(t, newStubUserRepo(user), &stubRevoker{})
	ctx := context.Background()

	_, wrongPass := svc.Login(ctx, LoginRequest{Email: user.Email, Password: "WrongPass1"})
	_, unknown := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "Sup3rSecret"})

	for _, err := range []error{wrongPass, unknown} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("credential failures must be indistinguishable: %q vs %q", wrongPass, unknown)
	}
}

func TestLoginRejectsUnapprovedAccount(t *testing.T) {
	password := "Sup3rSecret"
	user := seededUser(t, "pending@example.com", password)
	user.IsApproved = false
	svc := buildTestService(t, newStubUserRepo(user), &stubRevoker{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogoutDeniesTokenForRemainingLifetime(t *testing.T) {
	user := seededUser(t, "shopper@example.com", "Sup3rSecret")
	revoker := &stubRevoker{}
	svc := buildTestService(t, newStubUserRepo(user), revoker)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	ttl, ok := revoker.denied[claims.ID]
	if !ok {
		t.Fatalf("expected jti %s to be denied", claims.ID)
	}
	if ttl <= 0 || ttl > testJWTConfig().Expiration() {
		t.Fatalf("unexpected denylist ttl %s", ttl)
	}
}

func TestLogoutWithoutClaimsIsUnauthorized(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), &stubRevoker{})

	err := svc.Logout(context.Background(), nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateProfileAppliesPartialChanges(t *testing.T) {
	user := seededUser(t, "shopper@example.com", "Sup3rSecret")
	repo := newStubUserRepo(user)
	svc := buildTestService(t, repo, &stubRevoker{})

	phone := "9876543210"
	dto, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if dto.Phone == nil || *dto.Phone != phone {
		t.Fatalf("expected phone to be updated, got %+v", dto.Phone)
	}
	if dto.FirstName != "Asha" {
		t.Fatalf("unrelated fields must be untouched, got %q", dto.FirstName)
	}
	if repo.updated == nil || repo.updated.FirstName != nil {
		t.Fatalf("expected only the phone field to be sent to the repo")
	}
}

func TestUpdateProfileRejectsBlankName(t *testing.T) {
	user := seededUser(t, "shopper@example.com", "Sup3rSecret")
	svc := buildTestService(t, newStubUserRepo(user), &stubRevoker{})

	blank := "  "
	_, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{FirstName: &blank})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMeReturnsNotFoundForMissingUser(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), &stubRevoker{})

	_, err := svc.Me(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
