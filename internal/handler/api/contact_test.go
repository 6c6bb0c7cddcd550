package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

type notifierFunc func(ctx context.Context, contact *domain.Contact) error

func (f notifierFunc) Notify(ctx context.Context, contact *domain.Contact) error {
	return f(ctx, contact)
}

func contactBody() string {
	return `{
		"full_name": "Aishath Naseem",
		"email": "aishath@example.com",
		"subject": "Order inquiry",
		"message": "Where is my order?",
		"newsletter": true
	}`
}

func TestContactHandler_Create(t *testing.T) {
	var created domain.CreateContactParams
	contacts := &domain.MockContactService{
		CreateFn: func(ctx context.Context, params domain.CreateContactParams) (*domain.Contact, error) {
			created = params
			return &domain.Contact{ID: 1, FullName: params.FullName, Email: params.Email}, nil
		},
	}

	notified := false
	notifier := notifierFunc(func(ctx context.Context, contact *domain.Contact) error {
		notified = true
		return nil
	})

	h := NewContactHandler(contacts, notifier, nil)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(contactBody()))
	w := httptest.NewRecorder()
	h.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, notified)
	assert.Equal(t, "Aishath Naseem", created.FullName)
	assert.True(t, created.Newsletter)
}

// A broken mail server must never lose the submission.
func TestContactHandler_CreateNotificationFailure(t *testing.T) {
	contacts := &domain.MockContactService{
		CreateFn: func(ctx context.Context, params domain.CreateContactParams) (*domain.Contact, error) {
			return &domain.Contact{ID: 7}, nil
		},
	}
	notifier := notifierFunc(func(ctx context.Context, contact *domain.Contact) error {
		return errors.New("smtp: connection refused")
	})

	h := NewContactHandler(contacts, notifier, nil)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(contactBody()))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestContactHandler_CreateValidation(t *testing.T) {
	h := NewContactHandler(&domain.MockContactService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/contact",
		strings.NewReader(`{"full_name":"","email":"not-an-email","subject":"","message":""}`))
	w := httptest.NewRecorder()
	h.Create(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)

	// Every failed field is reported, not just the first.
	for _, field := range []string{"full_name", "email", "subject", "message"} {
		assert.Contains(t, body.Errors, field)
	}
}
