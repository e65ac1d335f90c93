package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Tokens           TokenValidator
	Auth             AuthAPI
	Catalog          CatalogAPI
	Cart             CartAPI
	Wishlist         WishlistAPI
	Checkout         CheckoutAPI
	Orders           OrdersAPI
	FeaturedCategory string
	RequestTimeout   time.Duration
}

// NewRouter wires the full route tree: public catalog and auth routes,
// authenticated storefront routes, and an admin subtree.
func NewRouter(cfg RouterConfig) chi.Router {
	authHandler := NewAuthHandler(cfg.Auth, cfg.Cart, cfg.RequestTimeout)
	productHandler := NewProductHandler(cfg.Catalog, cfg.FeaturedCategory, cfg.RequestTimeout)
	cartHandler := NewCartHandler(cfg.Cart, cfg.RequestTimeout)
	wishlistHandler := NewWishlistHandler(cfg.Wishlist, cfg.RequestTimeout)
	checkoutHandler := NewCheckoutHandler(cfg.Checkout, cfg.RequestTimeout)
	ordersHandler := NewOrdersHandler(cfg.Orders, cfg.RequestTimeout)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/products", productHandler.List)
		r.Get("/products/picks", productHandler.FeaturedPicks)
		r.Get("/products/{product_id}", productHandler.Get)

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(Authenticator(cfg.Tokens))

			r.Get("/auth/profile", authHandler.Profile)
			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.Get)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
				r.Delete("/", cartHandler.Clear)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.Get)
				r.Post("/", wishlistHandler.Add)
				r.Delete("/{product_id}", wishlistHandler.Remove)
			})

			r.Post("/checkout", checkoutHandler.Checkout)
			r.Post("/checkout/verify", checkoutHandler.VerifyPayment)

			r.Get("/orders", ordersHandler.ListMine)
			r.Get("/orders/{order_id}", ordersHandler.Get)

			// Admin
			r.Group(func(r chi.Router) {
				r.Use(AdminOnly)

				r.Post("/products", productHandler.Create)
				r.Put("/products/{product_id}", productHandler.Update)
				r.Patch("/orders/{order_id}/status", ordersHandler.UpdateStatus)
			})
		})
	})

	return r
}
