package admin

import (
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
)

// ContactHandler serves the admin contact inbox.
type ContactHandler struct {
	contacts domain.ContactService
	logger   *slog.Logger
}

func NewContactHandler(contacts domain.ContactService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{contacts: contacts, logger: logger}
}

// List serves GET /admin/contact-messages.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", contacts)
}

// MarkRead serves PATCH /admin/contact-messages/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	if err := h.contacts.MarkRead(r.Context(), id); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "Message marked as read.", nil)
}

// Delete serves DELETE /admin/contact-messages/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	if err := h.contacts.Delete(r.Context(), id); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "Message deleted.", nil)
}
