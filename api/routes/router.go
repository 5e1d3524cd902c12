// Package routes assembles the storefront HTTP surface.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopkartlabs/shopkart-backend/api/controllers"
	"github.com/shopkartlabs/shopkart-backend/api/middleware"
	"github.com/shopkartlabs/shopkart-backend/internal/addresses"
	internalauth "github.com/shopkartlabs/shopkart-backend/internal/auth"
	"github.com/shopkartlabs/shopkart-backend/internal/cart"
	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/internal/checkout"
	"github.com/shopkartlabs/shopkart-backend/internal/orders"
	"github.com/shopkartlabs/shopkart-backend/internal/products"
	"github.com/shopkartlabs/shopkart-backend/internal/reviews"
	"github.com/shopkartlabs/shopkart-backend/internal/wishlist"
	"github.com/shopkartlabs/shopkart-backend/pkg/config"
	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
	"github.com/shopkartlabs/shopkart-backend/pkg/metrics"
	"github.com/shopkartlabs/shopkart-backend/pkg/redis"
)

// Deps bundles everything the router needs. Catalog and the services are
// required; Gatherer and HTTPMetrics may be nil to disable /metrics.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       *redis.Client
	DBPinger    controllers.Pinger
	Catalog     *catalog.Catalog
	Auth        internalauth.Service
	Products    products.Service
	Cart        cart.Service
	Checkout    checkout.Service
	Orders      orders.Service
	Addresses   addresses.Service
	Reviews     reviews.Service
	Wishlist    wishlist.Service
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

// NewRouter wires the middleware stack and every storefront route.
func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if d.HTTPMetrics != nil {
		r.Use(middleware.Metrics(d.HTTPMetrics))
	}

	var denylist middleware.TokenDenyChecker
	if d.Redis != nil {
		denylist = d.Redis
	}
	authMW := middleware.Auth(cfg.JWT, denylist, logg)

	rateLimited := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if d.Redis == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, d.Redis, logg)
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	healthDeps := map[string]controllers.Pinger{}
	if d.DBPinger != nil {
		healthDeps["database"] = d.DBPinger
	}
	if d.Redis != nil {
		healthDeps["redis"] = d.Redis
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(logg, healthDeps))
	})

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(rateLimited(signupPolicy)).Post("/signup", controllers.Signup(d.Auth, logg))
		r.With(rateLimited(loginPolicy)).Post("/login", controllers.Login(d.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(authMW)
			r.Post("/logout", controllers.Logout(d.Auth, logg))
			r.Get("/user", controllers.Me(d.Auth, logg))
			r.Patch("/user", controllers.UpdateProfile(d.Auth, logg))
		})
	})

	// Browsing endpoints stay public; the storefront renders them before
	// any sign-in.
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(d.Catalog, logg))
		r.With(authMW, middleware.RequireRole(logg, enums.RoleSeller, enums.RoleAdmin)).
			Post("/", controllers.CreateProduct(d.Products, logg))
		r.Get("/{slug}", controllers.GetProduct(d.Catalog, logg))
		r.Get("/{slug}/reviews", controllers.ListReviews(d.Catalog, d.Reviews, logg))
		r.With(authMW).Post("/{slug}/reviews", controllers.CreateReview(d.Catalog, d.Reviews, logg))
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", controllers.ListCategories(d.Catalog, logg))
		r.Get("/{slug}/products", controllers.CategoryProducts(d.Catalog, logg))
		r.Get("/{slug}/facets", controllers.CategoryFacets(d.Catalog, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(authMW)

		r.Route("/api/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(d.Cart, logg))
			r.Delete("/", controllers.ClearCart(d.Cart, logg))
			r.Post("/items", controllers.AddCartItem(d.Cart, logg))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(d.Cart, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(d.Cart, logg))
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(d.Orders, logg))
			r.Post("/", controllers.PlaceOrder(d.Checkout, logg))
			r.Get("/{id}", controllers.GetOrder(d.Orders, logg))
		})

		r.Route("/api/addresses", func(r chi.Router) {
			r.Get("/", controllers.ListAddresses(d.Addresses, logg))
			r.Post("/", controllers.CreateAddress(d.Addresses, logg))
			r.Post("/{id}/default", controllers.SetDefaultAddress(d.Addresses, logg))
			r.Delete("/{id}", controllers.DeleteAddress(d.Addresses, logg))
		})

		r.Route("/api/wishlist", func(r chi.Router) {
			r.Get("/", controllers.ListWishlist(d.Wishlist, logg))
			r.Get("/ids", controllers.WishlistIDs(d.Wishlist, logg))
			r.Post("/{productId}", controllers.AddWishlistItem(d.Wishlist, logg))
			r.Delete("/{productId}", controllers.RemoveWishlistItem(d.Wishlist, logg))
		})

		r.Route("/api/seller/products", func(r chi.Router) {
			r.Use(middleware.RequireRole(logg, enums.RoleSeller, enums.RoleAdmin))
			r.Get("/", controllers.ListSellerProducts(d.Products, logg))
			r.Post("/", controllers.CreateProduct(d.Products, logg))
			r.Patch("/{id}", controllers.UpdateProduct(d.Products, logg))
			r.Delete("/{id}", controllers.DeleteProduct(d.Products, logg))
		})
	})

	return r
}
