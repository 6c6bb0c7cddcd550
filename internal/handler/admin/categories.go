package admin

import (
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
)

// CategoryHandler serves the admin category endpoints.
type CategoryHandler struct {
	categories domain.CategoryService
	logger     *slog.Logger
}

func NewCategoryHandler(categories domain.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{categories: categories, logger: logger}
}

// List serves GET /admin/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", categories)
}

// Get serves GET /admin/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", category)
}

// Create serves POST /admin/categories (multipart: name, description,
// status, optional image).
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	image, err := formImage(r, "image")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	category, err := h.categories.Create(r.Context(), domain.CreateCategoryParams{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Status:      domain.CategoryStatus(formValue(r, "status")),
		Image:       image,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusCreated, "Category created successfully.", category)
}

// Update serves POST /admin/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	image, err := formImage(r, "image")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	category, err := h.categories.Update(r.Context(), r.PathValue("id"), domain.UpdateCategoryParams{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Status:      domain.CategoryStatus(formValue(r, "status")),
		Image:       image,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Category updated successfully.", category)
}

// Delete serves DELETE /admin/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.Context(), r.PathValue("id")); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "Category deleted successfully.", nil)
}
