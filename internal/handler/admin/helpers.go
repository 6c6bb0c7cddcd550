// Package admin holds the authenticated management handlers. Catalog writes
// arrive as multipart forms so image files can ride along with the fields;
// everything else is JSON.
package admin

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

// maxMultipartMemory is the in-memory buffer for multipart parsing; larger
// files spill to disk.
const maxMultipartMemory = 10 << 20

// parseMultipart parses the request as a multipart form, falling back to a
// regular urlencoded form when no boundary is present.
func parseMultipart(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return domain.Invalid("handler.parse_form", "malformed multipart form")
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return domain.Invalid("handler.parse_form", "malformed form body")
	}
	return nil
}

// formImage returns the uploaded file for a field, or nil when absent.
func formImage(r *http.Request, field string) (*domain.ImageUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	return openUpload(files[0])
}

// formImages returns all uploaded files for a field, preserving submission
// order. Both "images" and "images[]" naming are accepted.
func formImages(r *http.Request, field string) ([]domain.ImageUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		files = r.MultipartForm.File[field+"[]"]
	}

	uploads := make([]domain.ImageUpload, 0, len(files))
	for _, fh := range files {
		upload, err := openUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

func openUpload(fh *multipart.FileHeader) (*domain.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, domain.Invalid("handler.parse_form", "unreadable uploaded file")
	}
	return &domain.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     f,
	}, nil
}

func formValue(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

// formBool accepts the usual truthy form encodings.
func formBool(r *http.Request, field string) bool {
	switch strings.ToLower(formValue(r, field)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func formInt32(r *http.Request, field string) int32 {
	n, _ := strconv.ParseInt(formValue(r, field), 10, 32)
	return int32(n)
}

// formDecimal parses a money/weight field; empty or malformed input yields
// zero, leaving the rejection to service-level validation.
func formDecimal(r *http.Request, field string) decimal.Decimal {
	d, err := decimal.NewFromString(formValue(r, field))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formDecimalPtr(r *http.Request, field string) *decimal.Decimal {
	v := formValue(r, field)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

func formStringPtr(r *http.Request, field string) *string {
	v := formValue(r, field)
	if v == "" {
		return nil
	}
	return &v
}

// formSpecifications decodes the specifications field: a JSON array of
// {key, value} objects. Empty input means no specifications.
func formSpecifications(r *http.Request) ([]domain.SpecificationInput, error) {
	raw := formValue(r, "specifications")
	if raw == "" {
		return nil, nil
	}
	var specs []domain.SpecificationInput
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil, domain.NewValidationError("handler.parse_form",
			"specifications", "The specifications must be a valid JSON array.")
	}
	return specs, nil
}

// formVariants decodes the variants field: a JSON array of {name, options}
// objects.
func formVariants(r *http.Request) ([]domain.VariantInput, error) {
	raw := formValue(r, "variants")
	if raw == "" {
		return nil, nil
	}
	var variants []domain.VariantInput
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return nil, domain.NewValidationError("handler.parse_form",
			"variants", "The variants must be a valid JSON array.")
	}
	return variants, nil
}

// pathID parses a numeric path segment.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, domain.Invalid("handler.path", "malformed id")
	}
	return id, nil
}
