package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.NotFound("x.get", "thing", "1"), http.StatusNotFound},
		{"unauthorized", domain.Unauthorized("x", "nope"), http.StatusUnauthorized},
		{"forbidden", domain.Forbidden("x", "nope"), http.StatusForbidden},
		{"invalid", domain.Invalid("x", "bad"), http.StatusBadRequest},
		{"conflict", domain.Conflict("x", "taken"), http.StatusConflict},
		{"internal", domain.Internal(errors.New("boom"), "x", "failed"), http.StatusInternalServerError},
		{"plain error treated as internal", errors.New("boom"), http.StatusInternalServerError},
	}

	logger := slog.New(slog.DiscardHandler)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/x", nil)
			Error(w, r, logger, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body envelope
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json response: %v", err)
			}
			if body.Success {
				t.Error("success should be false")
			}
		})
	}
}

func TestError_InternalHidesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	Error(w, r, slog.New(slog.DiscardHandler),
		domain.Internal(errors.New("pq: duplicate key value"), "product.create", "insert failed"))

	body := w.Body.String()
	if got := w.Code; got != http.StatusInternalServerError {
		t.Errorf("status = %d", got)
	}
	for _, leaked := range []string{"pq:", "duplicate key", "insert failed"} {
		if strings.Contains(body, leaked) {
			t.Errorf("response leaked internal detail %q: %s", leaked, body)
		}
	}
}

func TestError_ValidationFields(t *testing.T) {
	var verr error
	verr = domain.AddFieldError(verr, "name", "The name field is required.")
	verr = domain.AddFieldError(verr, "price", "The price must be at least 0.")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/x", nil)
	Error(w, r, slog.New(slog.DiscardHandler), verr)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Errors) != 2 {
		t.Errorf("expected both field errors, got %v", body.Errors)
	}
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	type dto struct {
		FullName string `json:"full_name" validate:"required"`
	}

	err := Validate(dto{})
	fields := domain.ValidationFields(err)
	if _, ok := fields["full_name"]; !ok {
		t.Errorf("expected json tag name in field map, got %v", fields)
	}
}
