package domain

import (
	"context"
	"time"
)

// Contact is a customer-submitted message from the public contact form.
// It is independent of the catalog; no foreign keys.
type Contact struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Newsletter bool      `json:"newsletter"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateContactParams struct {
	FullName   string
	Email      string
	Phone      *string
	Subject    string
	Message    string
	Newsletter bool
}

// ContactService stores contact submissions and manages the admin inbox.
type ContactService interface {
	Create(ctx context.Context, params CreateContactParams) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
