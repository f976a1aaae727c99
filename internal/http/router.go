package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/cache"
	"github.com/balapuneethsujay07/zenkira-store/internal/recommend"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

// NewRouter wires every handler onto the /v1 API surface.
func NewRouter(s store.Store, c *cache.Cache, rec recommend.Recommender, log *zap.Logger) chi.Router {
	products := NewProductHandler(s, c, log)
	cart := NewCartHandler(s, log)
	wishlist := NewWishlistHandler(s, log)
	orders := NewOrderHandler(s, log)
	auth := NewAuthHandler(s, log)
	recommendations := NewRecommendHandler(rec, log)
	session := NewSessionAuth(s)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Get("/products/{id}", products.Get)
		r.Get("/series", products.Series)

		r.Group(func(r chi.Router) {
			r.Use(session.RequireAdmin)
			r.Post("/products", products.Create)
			r.Put("/products/{id}", products.Update)
			r.Delete("/products/{id}", products.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(session.RequireLogin)
			r.Post("/products/{id}/reviews", products.AddReview)
			r.Post("/checkout", orders.Checkout)
			r.Get("/orders", orders.List)
			r.Get("/orders/{id}", orders.Get)
		})

		r.Get("/cart", cart.Get)
		r.Post("/cart/items", cart.AddItem)
		r.Patch("/cart/items/{id}", cart.UpdateQuantity)
		r.Delete("/cart/items/{id}", cart.RemoveItem)

		r.Get("/wishlist", wishlist.Get)
		r.Post("/wishlist/{id}", wishlist.Toggle)

		r.Post("/auth/login", auth.Login)
		r.Post("/auth/logout", auth.Logout)
		r.Get("/auth/me", auth.Me)

		r.Post("/recommendations", recommendations.Suggest)
	})

	return r
}
