package admin

import (
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
)

// SubcategoryHandler serves the admin subcategory endpoints.
type SubcategoryHandler struct {
	subcategories domain.SubcategoryService
	logger        *slog.Logger
}

func NewSubcategoryHandler(subcategories domain.SubcategoryService, logger *slog.Logger) *SubcategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubcategoryHandler{subcategories: subcategories, logger: logger}
}

// List serves GET /admin/subcategories.
func (h *SubcategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.subcategories.List(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", subcategories)
}

// ListByCategory serves GET /admin/categories/{categoryId}/subcategories,
// feeding the product form's dependent dropdown.
func (h *SubcategoryHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.subcategories.ListByCategory(r.Context(), r.PathValue("categoryId"))
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", subcategories)
}

// GenerateID serves GET /admin/subcategories/generate-id: an advisory
// preview of the next business id for the create form.
func (h *SubcategoryHandler) GenerateID(w http.ResponseWriter, r *http.Request) {
	id, err := h.subcategories.NextID(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", map[string]string{"sub_category_id": id})
}

// Get serves GET /admin/subcategories/{id}.
func (h *SubcategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	subcategory, err := h.subcategories.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", subcategory)
}

// Create serves POST /admin/subcategories (multipart: category_id, name,
// description, status, optional image).
func (h *SubcategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	image, err := formImage(r, "image")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	subcategory, err := h.subcategories.Create(r.Context(), domain.CreateSubcategoryParams{
		CategoryID:  formValue(r, "category_id"),
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Status:      domain.CategoryStatus(formValue(r, "status")),
		Image:       image,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusCreated, "Subcategory created successfully.", subcategory)
}

// Update serves POST /admin/subcategories/{id}.
func (h *SubcategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	image, err := formImage(r, "image")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	subcategory, err := h.subcategories.Update(r.Context(), r.PathValue("id"), domain.UpdateSubcategoryParams{
		CategoryID:  formValue(r, "category_id"),
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Status:      domain.CategoryStatus(formValue(r, "status")),
		Image:       image,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Subcategory updated successfully.", subcategory)
}

// Delete serves DELETE /admin/subcategories/{id}.
func (h *SubcategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.subcategories.Delete(r.Context(), r.PathValue("id")); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "Subcategory deleted successfully.", nil)
}
