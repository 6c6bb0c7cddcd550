package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
)

// ContactNotifier delivers the internal notification for a stored
// submission.
type ContactNotifier interface {
	Notify(ctx context.Context, contact *domain.Contact) error
}

// ContactHandler serves the public contact form.
type ContactHandler struct {
	contacts domain.ContactService
	notifier ContactNotifier
	logger   *slog.Logger
}

func NewContactHandler(contacts domain.ContactService, notifier ContactNotifier, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{contacts: contacts, notifier: notifier, logger: logger}
}

type contactRequest struct {
	FullName   string  `json:"full_name" validate:"required,max=255"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Phone      *string `json:"phone"`
	Subject    string  `json:"subject" validate:"required,max=255"`
	Message    string  `json:"message" validate:"required"`
	Newsletter bool    `json:"newsletter"`
}

// Create serves POST /contact. The submission is stored first; a failed
// notification email is logged but never fails the request.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	if err := handler.Validate(req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	contact, err := h.contacts.Create(r.Context(), domain.CreateContactParams{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		Newsletter: req.Newsletter,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	if h.notifier != nil {
		if err := h.notifier.Notify(r.Context(), contact); err != nil {
			h.logger.Error("contact notification failed",
				"contact_id", contact.ID, "error", err)
		}
	}

	handler.Success(w, http.StatusCreated,
		"Thank you for contacting us. We will get back to you soon.", contact)
}
