package http

import (
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Product *ProductHandler
	Cart    *CartHandler
	Quote   *QuoteHandler
}

// RegisterRoutes mounts the storefront API. Static product routes are
// declared before the {id} wildcard so chi matches them first.
func RegisterRoutes(r chi.Router, h Handlers) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.ListProducts)
			r.Get("/featured", h.Product.FeaturedProducts)
			r.Get("/facets", h.Product.Facets)
			r.Get("/stats", h.Product.Statistics)
			r.Get("/{id}", h.Product.GetProduct)
			r.Get("/{id}/related", h.Product.RelatedProducts)
		})

		r.Post("/recommendations", h.Product.Recommend)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Post("/", h.Cart.AddToCart)
			r.Delete("/", h.Cart.ClearCart)
			r.Put("/{id}", h.Cart.UpdateCartItem)
			r.Delete("/{id}", h.Cart.RemoveCartItem)
		})

		r.Post("/quote-request", h.Quote.CreateQuoteRequest)
		r.Get("/quote-requests", h.Quote.ListQuoteRequests)
	})
}
