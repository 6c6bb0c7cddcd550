package postgres

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

// ContactService implements domain.ContactService on Postgres. Storing a
// submission never depends on email delivery; the notification is the
// caller's concern.
type ContactService struct {
	db     *DB
	logger *slog.Logger
}

var _ domain.ContactService = (*ContactService)(nil)

func NewContactService(db *DB, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{db: db, logger: logger}
}

const contactColumns = `id, full_name, email, phone, subject, message, newsletter, read, created_at, updated_at`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Subject,
		&c.Message, &c.Newsletter, &c.Read, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create validates and stores a contact submission.
func (s *ContactService) Create(ctx context.Context, params domain.CreateContactParams) (*domain.Contact, error) {
	const op = "contact.create"

	if err := validateContactParams(op, params); err != nil {
		return nil, err
	}

	c, err := scanContact(s.db.pool.QueryRow(ctx, `
		INSERT INTO contacts (full_name, email, phone, subject, message, newsletter)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+contactColumns,
		params.FullName, params.Email, params.Phone,
		params.Subject, params.Message, params.Newsletter,
	))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to save contact submission")
	}

	s.logger.Info("contact submission stored", "contact_id", c.ID, "email", c.Email)
	return c, nil
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	const op = "contact.list"

	rows, err := s.db.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list contacts")
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan contact")
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read contacts")
	}

	return contacts, nil
}

// MarkRead flags a submission as handled.
func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	const op = "contact.mark_read"

	tag, err := s.db.pool.Exec(ctx,
		`UPDATE contacts SET read = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return domain.Internal(err, op, "failed to mark contact as read")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(op, "contact", "")
	}
	return nil
}

// Delete removes a submission.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	const op = "contact.delete"

	tag, err := s.db.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return domain.Internal(err, op, "failed to delete contact")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(op, "contact", "")
	}
	return nil
}

func validateContactParams(op string, params domain.CreateContactParams) error {
	var verr error

	if strings.TrimSpace(params.FullName) == "" {
		verr = domain.AddFieldError(verr, "full_name", "The full name field is required.")
	}
	if strings.TrimSpace(params.Email) == "" {
		verr = domain.AddFieldError(verr, "email", "The email field is required.")
	} else if _, err := mail.ParseAddress(params.Email); err != nil {
		verr = domain.AddFieldError(verr, "email", "The email must be a valid email address.")
	}
	if strings.TrimSpace(params.Subject) == "" {
		verr = domain.AddFieldError(verr, "subject", "The subject field is required.")
	}
	if strings.TrimSpace(params.Message) == "" {
		verr = domain.AddFieldError(verr, "message", "The message field is required.")
	}

	if ve, ok := verr.(*domain.ValidationError); ok {
		ve.Op = op
		return ve
	}
	return verr
}
