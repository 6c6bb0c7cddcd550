package routes

import (
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/router"
)

// RegisterPublicRoutes registers the unauthenticated storefront API.
func RegisterPublicRoutes(r *router.Router, deps PublicDeps) {
	public := r.Group(middleware.MaxBodySize(middleware.MB))

	public.Get("/v1/products", deps.ProductHandler.List)
	public.Get("/v1/featured-products", deps.ProductHandler.Featured)
	public.Get("/v1/products/{id}", deps.ProductHandler.Get)
	public.Get("/v1/categories", deps.ProductHandler.Categories)

	public.Post("/contact", deps.ContactHandler.Create)
}
