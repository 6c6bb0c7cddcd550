package routes

import (
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/router"
)

// RegisterAdminRoutes registers the management API. Login is the only open
// route; everything else requires a bearer token, and user create/delete
// additionally require the superadmin role.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	r.Post("/admin/login", deps.AuthHandler.Login,
		middleware.MaxBodySize(middleware.MB))

	admin := r.Group(middleware.RequireAuth, middleware.MaxBodySize(middleware.UploadMaxBodySize))

	admin.Post("/admin/logout", deps.AuthHandler.Logout)
	admin.Get("/admin/user", deps.AuthHandler.Me)

	// Profile and password
	admin.Get("/admin/profile", deps.ProfileHandler.Get)
	admin.Post("/admin/profile", deps.ProfileHandler.Update)
	admin.Post("/admin/change-password", deps.ProfileHandler.ChangePassword)

	// Categories
	admin.Get("/admin/categories", deps.CategoryHandler.List)
	admin.Post("/admin/categories", deps.CategoryHandler.Create)
	admin.Get("/admin/categories/{id}", deps.CategoryHandler.Get)
	admin.Post("/admin/categories/{id}", deps.CategoryHandler.Update)
	admin.Delete("/admin/categories/{id}", deps.CategoryHandler.Delete)
	admin.Get("/admin/categories/{categoryId}/subcategories", deps.SubcategoryHandler.ListByCategory)

	// Subcategories
	admin.Get("/admin/subcategories", deps.SubcategoryHandler.List)
	admin.Post("/admin/subcategories", deps.SubcategoryHandler.Create)
	admin.Get("/admin/subcategories/generate-id", deps.SubcategoryHandler.GenerateID)
	admin.Get("/admin/subcategories/{id}", deps.SubcategoryHandler.Get)
	admin.Post("/admin/subcategories/{id}", deps.SubcategoryHandler.Update)
	admin.Delete("/admin/subcategories/{id}", deps.SubcategoryHandler.Delete)

	// Products
	admin.Get("/admin/products", deps.ProductHandler.List)
	admin.Post("/admin/products", deps.ProductHandler.Create)
	admin.Get("/admin/products/generate-id", deps.ProductHandler.GenerateID)
	admin.Get("/admin/products/{id}", deps.ProductHandler.Get)
	admin.Post("/admin/products/{id}", deps.ProductHandler.Update)
	admin.Delete("/admin/products/{id}", deps.ProductHandler.Delete)

	// Admin users
	admin.Get("/admin/users", deps.UserHandler.List)
	admin.Post("/admin/users", deps.UserHandler.Create, middleware.RequireSuperadmin)
	admin.Get("/admin/users/{id}", deps.UserHandler.Get)
	admin.Put("/admin/users/{id}", deps.UserHandler.Update)
	admin.Delete("/admin/users/{id}", deps.UserHandler.Delete, middleware.RequireSuperadmin)

	// Contact inbox
	admin.Get("/admin/contact-messages", deps.ContactHandler.List)
	admin.Patch("/admin/contact-messages/{id}/read", deps.ContactHandler.MarkRead)
	admin.Delete("/admin/contact-messages/{id}", deps.ContactHandler.Delete)
}
