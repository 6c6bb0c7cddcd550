package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "product.create",
				Message: "invalid input",
			},
			expected: "product.create: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "product.create",
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "product.create: failed to save: database connection failed",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "failed to save: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", NotFound("product.get", "product", "PRD0001"), ENOTFOUND},
		{"wrapped domain error", fmt.Errorf("outer: %w", Conflict("product.create", "taken")), ECONFLICT},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("internal errors hide detail", func(t *testing.T) {
		err := Internal(errors.New("pq: connection refused"), "product.create", "failed to create product")
		msg := ErrorMessage(err)
		if msg == "failed to create product" || msg == "pq: connection refused" {
			t.Errorf("internal detail leaked: %q", msg)
		}
	})

	t.Run("client errors pass through", func(t *testing.T) {
		err := Forbidden("user.delete", "only superadmins can delete admin users")
		if got := ErrorMessage(err); got != "only superadmins can delete admin users" {
			t.Errorf("ErrorMessage() = %q", got)
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("accumulates all fields", func(t *testing.T) {
		var err error
		err = AddFieldError(err, "name", "The name field is required.")
		err = AddFieldError(err, "price", "The price must be at least 0.")

		fields := ValidationFields(err)
		if len(fields) != 2 {
			t.Fatalf("expected 2 field errors, got %d", len(fields))
		}
		if fields["name"] == "" || fields["price"] == "" {
			t.Errorf("missing field messages: %v", fields)
		}
	})

	t.Run("is not a coded error", func(t *testing.T) {
		err := NewValidationError("product.create", "name", "required")
		if !IsValidationError(err) {
			t.Error("expected IsValidationError to be true")
		}
		if IsCode(err, EINVALID) {
			t.Error("validation errors are separate from EINVALID")
		}
	})

	t.Run("non validation error yields nil fields", func(t *testing.T) {
		if ValidationFields(errors.New("boom")) != nil {
			t.Error("expected nil fields for plain error")
		}
	})
}
