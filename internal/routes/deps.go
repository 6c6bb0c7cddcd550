package routes

import (
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler/admin"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler/api"
)

// PublicDeps contains dependencies for the public storefront routes.
type PublicDeps struct {
	ProductHandler *api.ProductHandler
	ContactHandler *api.ContactHandler
}

// AdminDeps contains dependencies for the authenticated admin routes.
type AdminDeps struct {
	AuthHandler        *admin.AuthHandler
	CategoryHandler    *admin.CategoryHandler
	SubcategoryHandler *admin.SubcategoryHandler
	ProductHandler     *admin.ProductHandler
	UserHandler        *admin.UserHandler
	ContactHandler     *admin.ContactHandler
	ProfileHandler     *admin.ProfileHandler
}
