// Package api holds the public storefront handlers: no authentication, read
// side of the catalog plus the contact form.
package api

import (
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/storage"
)

// ProductHandler serves the public catalog endpoints.
type ProductHandler struct {
	products   domain.ProductService
	categories domain.CategoryService
	storage    storage.Storage
	logger     *slog.Logger
}

func NewProductHandler(products domain.ProductService, categories domain.CategoryService, store storage.Storage, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products:   products,
		categories: categories,
		storage:    store,
		logger:     logger,
	}
}

// List serves GET /v1/products?category=<name>. The category filter is a
// display name; "All" or absent means unfiltered.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	h.listWithFilter(w, r, domain.PublicProductFilter{
		Category: r.URL.Query().Get("category"),
	})
}

// Featured serves GET /v1/featured-products.
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	h.listWithFilter(w, r, domain.PublicProductFilter{
		Category:     r.URL.Query().Get("category"),
		FeaturedOnly: true,
	})
}

func (h *ProductHandler) listWithFilter(w http.ResponseWriter, r *http.Request, filter domain.PublicProductFilter) {
	rows, err := h.products.ListPublic(r.Context(), filter)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	cards := make([]domain.ProductCard, 0, len(rows))
	for _, row := range rows {
		// Stored keys become servable URLs before projection.
		if row.FirstImagePath != nil && *row.FirstImagePath != "" {
			url := h.storage.URL(*row.FirstImagePath)
			row.FirstImagePath = &url
		}
		cards = append(cards, domain.BuildProductCard(row))
	}

	handler.Success(w, http.StatusOK, "", cards)
}

// Get serves GET /v1/products/{id}: the full public detail of one product.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	for i := range detail.Images {
		detail.Images[i].ImagePath = h.storage.URL(detail.Images[i].ImagePath)
	}

	handler.Success(w, http.StatusOK, "", detail)
}

// Categories serves GET /v1/categories: active categories for the public
// filter bar.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	type categoryCard struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	}

	cards := make([]categoryCard, 0, len(categories))
	for _, c := range categories {
		if c.Status != domain.CategoryStatusActive {
			continue
		}
		image := domain.PlaceholderImage
		if c.ImagePath != nil && *c.ImagePath != "" {
			image = h.storage.URL(*c.ImagePath)
		}
		cards = append(cards, categoryCard{ID: c.CategoryID, Name: c.Name, Image: image})
	}

	handler.Success(w, http.StatusOK, "", cards)
}
