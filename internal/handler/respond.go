// Package handler holds the shared HTTP plumbing for the API: the response
// envelope, domain error mapping and request decoding/validation.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

// envelope is the uniform response shape: success flag, optional message,
// and either data or a field-keyed errors map.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes a raw JSON response.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Default().Error("failed to encode response", "error", err)
		}
	}
}

// Success writes a success envelope.
func Success(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// Error maps a domain error to its HTTP response. Validation errors return
// the full field map with 422; internal errors log the cause and return a
// generic message.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if fields := domain.ValidationFields(err); fields != nil {
		JSON(w, http.StatusUnprocessableEntity, envelope{
			Success: false,
			Message: "The given data was invalid.",
			Errors:  fields,
		})
		return
	}

	code := domain.ErrorCode(err)
	status := statusFromCode(code)

	if code == domain.EINTERNAL {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"op", domain.ErrorOp(err),
			"error", err,
		)
	}

	JSON(w, status, envelope{Success: false, Message: domain.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a JSON request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("handler.decode", "malformed request body")
	}
	return nil
}

// validate is a shared validator instance configured to report fields by
// their json tag names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs struct validation on a request DTO and converts failures to
// the field-keyed validation error map.
func Validate(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return domain.Internal(err, "handler.validate", "validation setup error")
	}

	var verr error
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr = domain.AddFieldError(verr, fe.Field(), validationMessage(fe))
		}
	}
	return verr
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
