package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
)

// ProductHandler serves the admin product endpoints. Create and update are
// multipart so image files travel with the fields; specifications and
// variants arrive as JSON-encoded form values.
type ProductHandler struct {
	products domain.ProductService
	logger   *slog.Logger
}

func NewProductHandler(products domain.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{products: products, logger: logger}
}

// List serves GET /admin/products?page=&per_page=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	result, err := h.products.List(r.Context(), page, perPage)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", result)
}

// GenerateID serves GET /admin/products/generate-id.
func (h *ProductHandler) GenerateID(w http.ResponseWriter, r *http.Request) {
	id, err := h.products.NextID(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", map[string]string{"product_id": id})
}

// Get serves GET /admin/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", detail)
}

// Create serves POST /admin/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	images, err := formImages(r, "images")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	specs, err := formSpecifications(r)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	variants, err := formVariants(r)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	detail, err := h.products.Create(r.Context(), domain.CreateProductParams{
		Name:           formValue(r, "name"),
		Description:    formValue(r, "description"),
		CategoryID:     formValue(r, "category_id"),
		SubcategoryID:  formValue(r, "sub_category_id"),
		Price:          formDecimal(r, "price"),
		CostPrice:      formDecimalPtr(r, "cost_price"),
		StockQuantity:  formInt32(r, "stock_quantity"),
		SKU:            formStringPtr(r, "sku"),
		Barcode:        formStringPtr(r, "barcode"),
		Weight:         formDecimalPtr(r, "weight"),
		Status:         domain.ProductStatus(formValue(r, "status")),
		Featured:       formBool(r, "featured"),
		Images:         images,
		Specifications: specs,
		Variants:       variants,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusCreated, "Product created successfully.", detail)
}

// Update serves POST /admin/products/{id}. Submitting images replaces the
// full image set; the same holds for specifications and variants.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	images, err := formImages(r, "images")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	specs, err := formSpecifications(r)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	variants, err := formVariants(r)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	detail, err := h.products.Update(r.Context(), r.PathValue("id"), domain.UpdateProductParams{
		Name:           formValue(r, "name"),
		Description:    formValue(r, "description"),
		CategoryID:     formValue(r, "category_id"),
		SubcategoryID:  formValue(r, "sub_category_id"),
		Price:          formDecimal(r, "price"),
		CostPrice:      formDecimalPtr(r, "cost_price"),
		StockQuantity:  formInt32(r, "stock_quantity"),
		SKU:            formStringPtr(r, "sku"),
		Barcode:        formStringPtr(r, "barcode"),
		Weight:         formDecimalPtr(r, "weight"),
		Status:         domain.ProductStatus(formValue(r, "status")),
		Featured:       formBool(r, "featured"),
		Images:         images,
		Specifications: specs,
		Variants:       variants,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Product updated successfully.", detail)
}

// Delete serves DELETE /admin/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), r.PathValue("id")); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "Product deleted successfully.", nil)
}
